package ui

import (
	"log/slog"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/saravenpi/folio/internal/chat"
	"github.com/saravenpi/folio/internal/config"
	"github.com/saravenpi/folio/internal/models"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Chat.TypingDelay = time.Millisecond
	cfg.Chat.ReplyDelay = time.Millisecond
	cfg.Rain.Drops = 5

	m := NewModel(cfg, slog.New(slog.DiscardHandler))
	return update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(Model)
}

func updateCmd(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// stages runs cmd, descending into batches, and returns the chat stages
// it produced.
func stages(cmd tea.Cmd) []stageMsg {
	if cmd == nil {
		return nil
	}
	var out []stageMsg
	switch msg := cmd().(type) {
	case stageMsg:
		out = append(out, msg)
	case tea.BatchMsg:
		for _, c := range msg {
			out = append(out, stages(c)...)
		}
	}
	return out
}

func onlyStage(t *testing.T, cmd tea.Cmd, kind chat.StageKind) stageMsg {
	t.Helper()
	got := stages(cmd)
	if len(got) != 1 || got[0].stage.Kind != kind {
		t.Fatalf("expected a single %v stage, got %+v", kind, got)
	}
	return got[0]
}

func TestContactConversation(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, runes("c"))
	if m.modals.Active() != models.ModalContact {
		t.Fatalf("expected contact overlay, got %v", m.modals.Active())
	}

	m = update(t, m, runes("hi"))
	if m.chat.Input() != "hi" {
		t.Fatalf("input buffer = %q, want %q", m.chat.Input(), "hi")
	}

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.input.Value() != "" || m.chat.Input() != "" {
		t.Error("input should be cleared after sending")
	}
	if len(m.chat.Transcript()) != 1 || m.chat.Typing() {
		t.Fatal("expected one user message and no typing indicator yet")
	}

	typing := onlyStage(t, cmd, chat.StageTyping)
	m, cmd = updateCmd(t, m, typing)
	if !m.chat.Typing() {
		t.Fatal("typing indicator should be on")
	}

	reply := onlyStage(t, cmd, chat.StageReply)
	m = update(t, m, reply)
	if m.chat.Typing() {
		t.Fatal("typing indicator should be off after the reply")
	}
	tr := m.chat.Transcript()
	if len(tr) != 2 || tr[1].Sender != models.SenderBot || tr[1].Text != chat.Reply(1) {
		t.Fatalf("unexpected transcript: %+v", tr)
	}
	if !strings.Contains(m.viewport.View(), "Sorry") {
		t.Error("reply not rendered in the transcript pane")
	}
}

func TestBlankSubmitIsIgnored(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, runes("c"))
	m = update(t, m, runes("   "))

	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("blank submit should not schedule anything")
	}
	if len(m.chat.Transcript()) != 0 {
		t.Error("blank submit should not touch the transcript")
	}
}

func TestCloseDropsPendingReply(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, runes("c"))
	m = update(t, m, runes("x"))
	m, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	typing := onlyStage(t, cmd, chat.StageTyping)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.modals.Active() != models.ModalNone {
		t.Fatal("esc should close the overlay")
	}
	m = update(t, m, runes("c"))

	m, cmd = updateCmd(t, m, typing)
	if cmd != nil {
		t.Error("stale stage should not schedule a reply")
	}
	if m.chat.Typing() || len(m.chat.Transcript()) != 0 {
		t.Fatalf("stale stage leaked into the new session: typing=%v transcript=%+v",
			m.chat.Typing(), m.chat.Transcript())
	}
}

func TestDragMovesCard(t *testing.T) {
	m := newTestModel(t)
	l := m.cardLayout()
	x, y := l.handle.x+3, l.handle.y

	m = update(t, m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if !m.dragging {
		t.Fatal("press on the handle should start a drag")
	}

	m = update(t, m, tea.MouseMsg{X: x + 4, Y: y + 2, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	if got := m.cardLayout().rect; got.x != l.rect.x+4 || got.y != l.rect.y+2 {
		t.Errorf("card should follow the pointer during a drag: %+v", got)
	}
	if m.position.Offset() != (models.Offset{}) {
		t.Error("offset should not change until the drag ends")
	}

	m = update(t, m, tea.MouseMsg{X: x + 5, Y: y - 3, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	if m.dragging {
		t.Fatal("release should end the drag")
	}
	if got := m.position.Offset(); got != (models.Offset{X: 5, Y: -3}) {
		t.Fatalf("offset = %+v, want {5 -3}", got)
	}
}

func TestArrowKeysNudgeCard(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	if got := m.position.Offset(); got != (models.Offset{X: 2, Y: 2}) {
		t.Fatalf("offset = %+v, want {2 2}", got)
	}
}

func TestClickNavButtonOpensModal(t *testing.T) {
	m := newTestModel(t)

	var about zone
	for _, z := range m.cardLayout().zones {
		if z.index == 1 {
			about = z
		}
	}
	if about.rect.w == 0 {
		t.Fatal("about button has no hit zone")
	}

	m = update(t, m, tea.MouseMsg{X: about.rect.x, Y: about.rect.y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.modals.Active() != models.ModalAbout {
		t.Fatalf("expected about overlay, got %v", m.modals.Active())
	}

	m = update(t, m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.modals.Active() != models.ModalNone {
		t.Fatal("clicking the backdrop should close the overlay")
	}
}

func TestClickInsideModalKeepsItOpen(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, runes("a"))

	_, r := m.modalLayout()
	m = update(t, m, tea.MouseMsg{X: r.x + 1, Y: r.y + 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.modals.Active() != models.ModalAbout {
		t.Fatal("clicking inside the overlay should not close it")
	}
}

func TestThemeToggleAndTooltip(t *testing.T) {
	m := newTestModel(t)
	if got := m.tooltip(m.targets()[m.focus]); got != "Switch to dark mode" {
		t.Fatalf("tooltip = %q", got)
	}

	m = update(t, m, runes("t"))
	if !m.theme.Dark() {
		t.Fatal("t should switch to the dark theme")
	}
	if got := m.tooltip(m.targets()[m.focus]); got != "Switch to light mode" {
		t.Fatalf("tooltip = %q", got)
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if got := m.tooltip(m.targets()[m.focus]); got != "View about" {
		t.Fatalf("tooltip after tab = %q", got)
	}
}

func TestOpenFocusedLink(t *testing.T) {
	m := newTestModel(t)
	var opened string
	m.openURL = func(u string) error {
		opened = u
		return nil
	}

	for range 3 {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if got := m.tooltip(m.targets()[m.focus]); got != "LinkedIn Profile" {
		t.Fatalf("tooltip = %q", got)
	}

	_, cmd := updateCmd(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command to open the link")
	}
	msg, ok := cmd().(linkOpenedMsg)
	if !ok || msg.err != nil {
		t.Fatalf("unexpected result: %+v", msg)
	}
	if opened != "https://www.linkedin.com/in/yinbochen/" {
		t.Fatalf("opened %q", opened)
	}
}

func TestAboutSwitchesToContact(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, runes("a"))
	m = update(t, m, runes("c"))
	if m.modals.Active() != models.ModalContact {
		t.Fatalf("expected contact overlay, got %v", m.modals.Active())
	}
	m = update(t, m, runes("q"))
	if m.chat.Input() != "q" {
		t.Fatal("keys typed in the contact overlay belong to the input")
	}
}

func TestView(t *testing.T) {
	m := newTestModel(t)
	view := m.View()
	for _, want := range []string{"hello,", "about", "contact", "LinkedIn"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if lines := strings.Split(view, "\n"); len(lines) != 40 {
		t.Errorf("view has %d lines, want 40", len(lines))
	}

	m = update(t, m, runes("a"))
	if !strings.Contains(m.View(), "About") {
		t.Error("about overlay not rendered")
	}
}

func TestCardCanLeaveTheScreen(t *testing.T) {
	m := newTestModel(t)
	m.position.ApplyDelta(-500, 500)
	view := m.View()
	if strings.Contains(view, "hello,") {
		t.Error("card dragged off-screen should not be visible")
	}
	if lines := strings.Split(view, "\n"); len(lines) != 40 {
		t.Errorf("view has %d lines, want 40", len(lines))
	}
}
