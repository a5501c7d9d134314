package models

type Sender int

const (
	SenderUser Sender = iota
	SenderBot
)

func (s Sender) String() string {
	if s == SenderBot {
		return "bot"
	}
	return "user"
}

// ChatMessage is a single transcript entry. It is never mutated after
// being appended.
type ChatMessage struct {
	Text   string
	Sender Sender
}

type Modal int

const (
	ModalNone Modal = iota
	ModalAbout
	ModalContact
)

func (m Modal) String() string {
	switch m {
	case ModalAbout:
		return "about"
	case ModalContact:
		return "contact"
	default:
		return "none"
	}
}

// Offset is the cumulative translation of the card, in terminal cells.
type Offset struct {
	X int
	Y int
}

type Link struct {
	Label   string `yaml:"label" koanf:"label"`
	URL     string `yaml:"url" koanf:"url"`
	Tooltip string `yaml:"tooltip" koanf:"tooltip"`
}
