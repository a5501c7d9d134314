package card

import (
	"log/slog"

	"github.com/saravenpi/folio/internal/models"
)

// Resetter is implemented by state that must be torn down when the
// contact overlay goes away.
type Resetter interface {
	Reset()
}

// Modals tracks which overlay is open.
type Modals struct {
	active models.Modal
	chat   Resetter
	logger *slog.Logger
}

func NewModals(chat Resetter, logger *slog.Logger) *Modals {
	if logger == nil {
		logger = slog.Default()
	}
	return &Modals{chat: chat, logger: logger}
}

func (m *Modals) Active() models.Modal {
	return m.active
}

// Open switches to target from any state. Entering the contact overlay
// starts a new chat session; leaving it for another overlay ends it.
func (m *Modals) Open(target models.Modal) {
	if target == models.ModalNone {
		m.Close()
		return
	}
	if target == m.active {
		return
	}

	if target == models.ModalContact || m.active == models.ModalContact {
		m.chat.Reset()
	}

	m.logger.Debug("modal: open", "from", m.active, "to", target)
	m.active = target
}

// Close hides the open overlay and resets the chat. It does nothing when
// no overlay is open.
func (m *Modals) Close() {
	if m.active == models.ModalNone {
		return
	}

	m.logger.Debug("modal: close", "from", m.active)
	m.active = models.ModalNone
	m.chat.Reset()
}
