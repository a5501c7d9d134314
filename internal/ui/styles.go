package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

var (
	helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("243")).
		Italic(true)

	errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196")).
		Bold(true)
)

// palette holds the colors of one theme.
type palette struct {
	page       string
	rain       string
	cardTop    string
	cardBottom string
	footer     string
	border     string
	text       string
	muted      string
	accent     string
	button     string
	buttonText string
	toggle     string
	toggleText string
	userBubble string
	userText   string
	botBubble  string
	botText    string
	botBorder  string
}

var lightPalette = palette{
	page:       "#cc9793",
	rain:       "#e1c8a3",
	cardTop:    "#b7bff1",
	cardBottom: "#f7caff",
	footer:     "#f7caff",
	border:     "#b7bff1",
	text:       "#111827",
	muted:      "#374151",
	accent:     "#06b6d4",
	button:     "#ffffff",
	buttonText: "#374151",
	toggle:     "#e1c8a3",
	toggleText: "#1f2937",
	userBubble: "#b7bff1",
	userText:   "#111827",
	botBubble:  "#ffffff",
	botText:    "#111827",
	botBorder:  "#b7bff1",
}

var darkPalette = palette{
	page:       "#755334",
	rain:       "#da931e",
	cardTop:    "#1d1d1d",
	cardBottom: "#1d1d1d",
	footer:     "#1d1d1d",
	border:     "#d0d0d0",
	text:       "#ffffff",
	muted:      "#f3f4f6",
	accent:     "#fb923c",
	button:     "#d0d0d0",
	buttonText: "#1d1d1d",
	toggle:     "#da931e",
	toggleText: "#111827",
	userBubble: "#d0d0d0",
	userText:   "#1d1d1d",
	botBubble:  "#1d1d1d",
	botText:    "#ffffff",
	botBorder:  "#d0d0d0",
}

// blend mixes two hex colors; t=0 is a, t=1 is b.
func blend(a, b string, t float64) string {
	ca, err := colorful.Hex(a)
	if err != nil {
		return a
	}
	cb, err := colorful.Hex(b)
	if err != nil {
		return a
	}
	return ca.BlendRgb(cb, t).Clamped().Hex()
}

// dim darkens a color the way a half-transparent black backdrop would.
func dim(hex string) string {
	return blend(hex, "#000000", 0.5)
}

// styles are the lipgloss styles derived from a palette.
type styles struct {
	page       lipgloss.Style
	rain       lipgloss.Style
	wave       lipgloss.Style
	card       lipgloss.Style
	handle     lipgloss.Style
	title      lipgloss.Style
	accent     lipgloss.Style
	tagline    lipgloss.Style
	button     lipgloss.Style
	focused    lipgloss.Style
	footer     lipgloss.Style
	footerText lipgloss.Style
	toggle     lipgloss.Style
	modal      lipgloss.Style
	modalTitle lipgloss.Style
	modalText  lipgloss.Style
	userBubble lipgloss.Style
	botBubble  lipgloss.Style
	input      lipgloss.Style
	send       lipgloss.Style
	sendOff    lipgloss.Style
	tooltip    lipgloss.Style
}

func newStyles(dark, dimmed bool) styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}
	cardBody := blend(p.cardTop, p.cardBottom, 0.5)

	page, rain := p.page, p.rain
	if dimmed {
		page, rain = dim(page), dim(rain)
	}

	return styles{
		page: lipgloss.NewStyle().Background(lipgloss.Color(page)),
		rain: lipgloss.NewStyle().
			Foreground(lipgloss.Color(rain)).
			Background(lipgloss.Color(page)),
		wave: lipgloss.NewStyle().Background(lipgloss.Color(rain)),
		card: lipgloss.NewStyle().
			Background(lipgloss.Color(cardBody)).
			Foreground(lipgloss.Color(p.text)),
		handle: lipgloss.NewStyle().
			Background(lipgloss.Color(p.cardTop)).
			Foreground(lipgloss.Color(p.muted)),
		title: lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color(cardBody)).
			Foreground(lipgloss.Color(p.text)),
		accent: lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color(cardBody)).
			Foreground(lipgloss.Color(p.accent)),
		tagline: lipgloss.NewStyle().
			Background(lipgloss.Color(cardBody)).
			Foreground(lipgloss.Color(p.muted)),
		button: lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color(p.button)).
			Foreground(lipgloss.Color(p.buttonText)),
		focused: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Underline(true).
			Background(lipgloss.Color(p.accent)).
			Foreground(lipgloss.Color(p.buttonText)),
		footer: lipgloss.NewStyle().
			Background(lipgloss.Color(p.footer)).
			Foreground(lipgloss.Color(p.border)),
		footerText: lipgloss.NewStyle().
			Background(lipgloss.Color(p.footer)).
			Foreground(lipgloss.Color(p.muted)),
		toggle: lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color(p.toggle)).
			Foreground(lipgloss.Color(p.toggleText)),
		modal: lipgloss.NewStyle().
			Padding(1, 2).
			Background(lipgloss.Color(cardBody)).
			Foreground(lipgloss.Color(p.text)),
		modalTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(p.text)),
		modalText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(p.muted)),
		userBubble: lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color(p.userBubble)).
			Foreground(lipgloss.Color(p.userText)),
		botBubble: lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.botBorder)).
			Background(lipgloss.Color(p.botBubble)).
			Foreground(lipgloss.Color(p.botText)),
		input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(p.border)).
			Padding(0, 1),
		send: lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true).
			Background(lipgloss.Color(p.userBubble)).
			Foreground(lipgloss.Color(p.userText)),
		sendOff: lipgloss.NewStyle().
			Padding(0, 1).
			Faint(true).
			Foreground(lipgloss.Color(p.muted)),
		tooltip: lipgloss.NewStyle().
			Padding(0, 1).
			Background(lipgloss.Color("#1f2937")).
			Foreground(lipgloss.Color("#ffffff")),
	}
}
