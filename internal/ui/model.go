package ui

import (
	"log/slog"
	"math/rand/v2"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/saravenpi/folio/internal/ambient"
	"github.com/saravenpi/folio/internal/browser"
	"github.com/saravenpi/folio/internal/card"
	"github.com/saravenpi/folio/internal/chat"
	"github.com/saravenpi/folio/internal/config"
	"github.com/saravenpi/folio/internal/models"
)

const frameInterval = 100 * time.Millisecond

type frameMsg time.Time

// stageMsg delivers a chat stage once its delay has elapsed.
type stageMsg struct {
	stage chat.Stage
}

type linkOpenedMsg struct {
	url string
	err error
}

// Model is the whole profile card screen: the ambient backdrop, the
// draggable card and whichever overlay is open.
type Model struct {
	profile config.ProfileConfig

	theme    *card.Theme
	position *card.Position
	modals   *card.Modals
	chat     *chat.Engine
	scene    *ambient.Scene

	input    textinput.Model
	viewport viewport.Model
	spinner  spinner.Model
	help     help.Model
	keys     keyMap

	focus     int
	dragging  bool
	dragFrom  models.Offset
	dragDelta models.Offset

	started      time.Time
	elapsed      time.Duration
	windowWidth  int
	windowHeight int
	err          error

	openURL func(string) error
	logger  *slog.Logger
}

// NewModel builds the screen from cfg. A nil logger uses slog.Default.
func NewModel(cfg *config.Config, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	engine := chat.NewEngine(
		chat.WithDelays(cfg.Chat.TypingDelay, cfg.Chat.ReplyDelay),
		chat.WithLogger(logger),
	)

	s := spinner.New()
	s.Spinner = spinner.Points

	ti := textinput.New()
	ti.Placeholder = "Type a message..."
	ti.Prompt = ""
	ti.CharLimit = 500
	ti.Width = 40

	vp := viewport.New(60, 10)

	rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), rand.Uint64()))

	return Model{
		profile:      cfg.Profile,
		theme:        card.NewTheme(cfg.Dark),
		position:     card.NewPosition(),
		modals:       card.NewModals(engine, logger),
		chat:         engine,
		scene:        ambient.NewScene(cfg.Rain.Drops, cfg.WaveSettings(), rng),
		input:        ti,
		viewport:     vp,
		spinner:      s,
		help:         help.New(),
		keys:         newKeyMap(),
		started:      time.Now(),
		windowWidth:  80,
		windowHeight: 30,
		openURL:      browser.Open,
		logger:       logger,
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) schedule(s chat.Stage) tea.Cmd {
	return tea.Tick(s.Delay, func(time.Time) tea.Msg {
		return stageMsg{stage: s}
	})
}

func (m Model) openLinkCmd(url string) tea.Cmd {
	open := m.openURL
	return func() tea.Msg {
		return linkOpenedMsg{url: url, err: open(url)}
	}
}

func (m Model) Init() tea.Cmd {
	return frameTick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.resizeChat()
		m.updateTranscript()
		return m, nil

	case frameMsg:
		m.elapsed = time.Time(msg).Sub(m.started)
		return m, frameTick()

	case stageMsg:
		next, ok := m.chat.Fire(msg.stage)
		m.updateTranscript()
		if !ok {
			return m, nil
		}
		return m, tea.Batch(m.schedule(next), m.spinner.Tick)

	case spinner.TickMsg:
		if !m.chat.Typing() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.updateTranscript()
		return m, cmd

	case linkOpenedMsg:
		m.err = msg.err
		if msg.err != nil {
			m.logger.Error("failed to open link", "url", msg.url, "error", msg.err)
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.modals.Active() == models.ModalContact {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQ) {
		return m, tea.Quit
	}

	switch m.modals.Active() {
	case models.ModalContact:
		switch {
		case key.Matches(msg, m.keys.Close):
			m.closeModal()
			return m, nil
		case key.Matches(msg, m.keys.Send):
			cmd := m.submit()
			return m, cmd
		case key.Matches(msg, m.keys.ScrollUp), key.Matches(msg, m.keys.ScrollDn):
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.chat.SetInput(m.input.Value())
		return m, cmd

	case models.ModalAbout:
		switch {
		case key.Matches(msg, m.keys.Close):
			m.closeModal()
		case key.Matches(msg, m.keys.Contact):
			cmd := m.openModal(models.ModalContact)
			return m, cmd
		case key.Matches(msg, m.keys.Theme):
			m.theme.Toggle()
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % len(m.targets())
	case key.Matches(msg, m.keys.Prev):
		n := len(m.targets())
		m.focus = (m.focus - 1 + n) % n
	case key.Matches(msg, m.keys.Select):
		cmd := m.activate(m.targets()[m.focus])
		return m, cmd
	case key.Matches(msg, m.keys.About):
		cmd := m.openModal(models.ModalAbout)
		return m, cmd
	case key.Matches(msg, m.keys.Contact):
		cmd := m.openModal(models.ModalContact)
		return m, cmd
	case key.Matches(msg, m.keys.Theme):
		m.theme.Toggle()
	case key.Matches(msg, m.keys.Up):
		m.position.ApplyDelta(0, -1)
	case key.Matches(msg, m.keys.Down):
		m.position.ApplyDelta(0, 1)
	case key.Matches(msg, m.keys.Left):
		m.position.ApplyDelta(-2, 0)
	case key.Matches(msg, m.keys.Right):
		m.position.ApplyDelta(2, 0)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.dragging {
		switch msg.Action {
		case tea.MouseActionMotion:
			m.dragDelta = models.Offset{X: msg.X - m.dragFrom.X, Y: msg.Y - m.dragFrom.Y}
		case tea.MouseActionRelease:
			dx, dy := msg.X-m.dragFrom.X, msg.Y-m.dragFrom.Y
			offset := m.position.ApplyDelta(dx, dy)
			m.logger.Debug("card: drag end", "dx", dx, "dy", dy, "x", offset.X, "y", offset.Y)
			m.dragging = false
			m.dragDelta = models.Offset{}
		}
		return m, nil
	}

	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if m.modals.Active() != models.ModalNone {
		_, modalRect := m.modalLayout()
		if !modalRect.contains(msg.X, msg.Y) {
			m.closeModal()
		}
		return m, nil
	}

	toggle := rect{x: 1, y: 0, w: lipgloss.Width(m.toggleButton(newStyles(m.theme.Dark(), false))), h: 1}
	if toggle.contains(msg.X, msg.Y) {
		m.focus = 0
		m.theme.Toggle()
		return m, nil
	}

	l := m.cardLayout()
	for _, z := range l.zones {
		if z.rect.contains(msg.X, msg.Y) {
			m.focus = z.index
			cmd := m.activate(m.targets()[z.index])
			return m, cmd
		}
	}
	if l.handle.contains(msg.X, msg.Y) {
		m.dragging = true
		m.dragFrom = models.Offset{X: msg.X, Y: msg.Y}
		m.dragDelta = models.Offset{}
	}
	return m, nil
}

func (m *Model) activate(t target) tea.Cmd {
	switch t.kind {
	case targetTheme:
		m.theme.Toggle()
	case targetAbout:
		return m.openModal(models.ModalAbout)
	case targetContact:
		return m.openModal(models.ModalContact)
	case targetLink:
		return m.openLinkCmd(m.profile.Links[t.link].URL)
	}
	return nil
}

func (m *Model) openModal(target models.Modal) tea.Cmd {
	wasContact := m.modals.Active() == models.ModalContact
	m.modals.Open(target)
	m.err = nil

	if target != models.ModalContact {
		m.input.Blur()
		return nil
	}
	if !wasContact {
		m.input.Reset()
		m.resizeChat()
		m.updateTranscript()
	}
	return m.input.Focus()
}

func (m *Model) closeModal() {
	m.modals.Close()
	m.input.Reset()
	m.input.Blur()
	m.viewport.SetContent("")
}

// submit sends the pending input and schedules the typing stage. Blank
// input is a no-op.
func (m *Model) submit() tea.Cmd {
	m.chat.SetInput(m.input.Value())
	stage, ok := m.chat.SubmitInput()
	if !ok {
		return nil
	}
	m.input.Reset()
	m.updateTranscript()
	return m.schedule(stage)
}
