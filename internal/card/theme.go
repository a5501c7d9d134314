package card

// Theme is the dark/light flag read by every view.
type Theme struct {
	dark bool
}

func NewTheme(dark bool) *Theme {
	return &Theme{dark: dark}
}

func (t *Theme) Dark() bool {
	return t.dark
}

// Toggle flips the theme and returns the new value.
func (t *Theme) Toggle() bool {
	t.dark = !t.dark
	return t.dark
}
