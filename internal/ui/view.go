package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/saravenpi/folio/internal/models"
)

type targetKind int

const (
	targetTheme targetKind = iota
	targetAbout
	targetContact
	targetLink
)

// target is a focusable control on the card.
type target struct {
	kind targetKind
	link int
}

func (m Model) targets() []target {
	ts := []target{{kind: targetTheme}, {kind: targetAbout}, {kind: targetContact}}
	for i := range m.profile.Links {
		ts = append(ts, target{kind: targetLink, link: i})
	}
	return ts
}

func (m Model) tooltip(t target) string {
	switch t.kind {
	case targetTheme:
		if m.theme.Dark() {
			return "Switch to light mode"
		}
		return "Switch to dark mode"
	case targetAbout:
		return "View about"
	case targetContact:
		return "View contact"
	case targetLink:
		return m.profile.Links[t.link].Tooltip
	}
	return ""
}

type zone struct {
	index int
	rect  rect
}

type placedCard struct {
	block  string
	rect   rect
	handle rect
	zones  []zone
}

func (m Model) cardWidth() int {
	return min(64, max(m.windowWidth-4, 30))
}

func (m Model) button(st styles, label string, index int) string {
	if index == m.focus {
		return st.focused.Render(label)
	}
	return st.button.Render(label)
}

// buttonRow renders buttons separated by gap and returns the row along
// with each button's column within it.
func buttonRow(buttons []string, gap int) (string, []int, []int) {
	var cols, widths []int
	col := 0
	for i, b := range buttons {
		if i > 0 {
			col += gap
		}
		w := lipgloss.Width(b)
		cols = append(cols, col)
		widths = append(widths, w)
		col += w
	}
	return strings.Join(buttons, strings.Repeat(" ", gap)), cols, widths
}

// cardLayout renders the card and places it on screen. The card sits in
// the middle of the window, shifted by the committed offset plus any drag
// in progress.
func (m Model) cardLayout() placedCard {
	st := newStyles(m.theme.Dark(), false)
	w := m.cardWidth()
	center := func(s lipgloss.Style) lipgloss.Style {
		return s.Width(w).Align(lipgloss.Center)
	}

	var lines []string
	var zones []zone
	type pendingRow struct {
		row     int
		left    int
		cols    []int
		widths  []int
		indexes []int
	}
	var rows []pendingRow

	lines = append(lines, st.handle.Width(w).Render(" ⠿ ● ● ●"))
	lines = append(lines, st.card.Width(w).Render(""))
	greeting := st.title.Render(m.profile.Greeting+" ") + st.accent.Render(m.profile.Accent)
	lines = append(lines, center(st.card).Render(greeting))
	lines = append(lines, st.card.Width(w).Render(""))
	for _, l := range strings.Split(wordwrap.String(m.profile.Tagline, w-8), "\n") {
		lines = append(lines, center(st.tagline).Render(l))
	}
	lines = append(lines, st.card.Width(w).Render(""))

	nav, cols, widths := buttonRow([]string{
		m.button(st, "ⓘ about", 1),
		m.button(st, "✉ contact", 2),
	}, 4)
	rows = append(rows, pendingRow{row: len(lines), left: (w - lipgloss.Width(nav)) / 2, cols: cols, widths: widths, indexes: []int{1, 2}})
	lines = append(lines, center(st.card).Render(nav))
	lines = append(lines, st.card.Width(w).Render(""))

	lines = append(lines, st.footer.Render(strings.Repeat("─", w)))
	var links []string
	var linkIdx []int
	for i, l := range m.profile.Links {
		links = append(links, m.button(st, l.Label, 3+i))
		linkIdx = append(linkIdx, 3+i)
	}
	if len(links) > 0 {
		row, cols, widths := buttonRow(links, 3)
		rows = append(rows, pendingRow{row: len(lines), left: (w - lipgloss.Width(row)) / 2, cols: cols, widths: widths, indexes: linkIdx})
		lines = append(lines, center(st.footer).Render(row))
	}
	for _, l := range strings.Split(wordwrap.String(m.profile.Footer, w-6), "\n") {
		lines = append(lines, center(st.footerText).Render(l))
	}
	lines = append(lines, st.footer.Width(w).Render(""))

	block := strings.Join(lines, "\n")
	h := len(lines)
	offset := m.position.Offset()
	x := (m.windowWidth-w)/2 + offset.X + m.dragDelta.X
	y := (m.windowHeight-h)/2 + offset.Y + m.dragDelta.Y

	for _, r := range rows {
		for i, idx := range r.indexes {
			zones = append(zones, zone{
				index: idx,
				rect:  rect{x: x + r.left + r.cols[i], y: y + r.row, w: r.widths[i], h: 1},
			})
		}
	}

	return placedCard{
		block:  block,
		rect:   rect{x: x, y: y, w: w, h: h},
		handle: rect{x: x, y: y, w: w, h: 1},
		zones:  zones,
	}
}

func (m Model) toggleButton(st styles) string {
	label := "☾"
	if m.theme.Dark() {
		label = "☀"
	}
	if m.focus == 0 && m.modals.Active() == models.ModalNone {
		return st.focused.Render(label)
	}
	return st.toggle.Render(label)
}

func (m Model) modalWidth() int {
	return min(72, max(m.windowWidth-4, 30))
}

// modalInner is the usable width inside the overlay's padding.
func (m Model) modalInner() int {
	return m.modalWidth() - 4
}

func (m Model) modalHeader(st styles, title string) string {
	inner := m.modalInner()
	gap := max(inner-lipgloss.Width(title)-1, 1)
	return st.modalTitle.Render(title) + strings.Repeat(" ", gap) + st.modalTitle.Render("×")
}

// modalLayout renders the open overlay and its on-screen rectangle.
func (m Model) modalLayout() (string, rect) {
	st := newStyles(m.theme.Dark(), false)
	inner := m.modalInner()

	var body string
	switch m.modals.Active() {
	case models.ModalAbout:
		var paras []string
		for _, p := range m.profile.About {
			paras = append(paras, st.modalText.Render(wordwrap.String(p, inner)))
		}
		body = m.modalHeader(st, "About") + "\n\n" + strings.Join(paras, "\n\n")

	case models.ModalContact:
		sendStyle := st.sendOff
		if m.chat.CanSend() {
			sendStyle = st.send
		}
		send := sendStyle.Render("➤")
		box := st.input.Width(inner - lipgloss.Width(send) - 3).Render(m.input.View())
		row := lipgloss.JoinHorizontal(lipgloss.Center, box, " ", send)
		body = m.modalHeader(st, "Contact") + "\n\n" + m.viewport.View() + "\n" + row

	default:
		return "", rect{}
	}

	block := st.modal.Width(m.modalWidth()).Render(body)
	w, h := blockSize(block)
	x := (m.windowWidth - w) / 2
	y := (m.windowHeight - h) / 2
	return block, rect{x: x, y: y, w: w, h: h}
}

func (m *Model) resizeChat() {
	inner := m.modalInner()
	m.viewport.Width = inner
	m.viewport.Height = min(12, max(m.windowHeight-14, 3))
	m.input.Width = max(inner-12, 10)
}

// updateTranscript re-renders the conversation into the viewport, oldest
// message at the top, and keeps the newest in view.
func (m *Model) updateTranscript() {
	if m.modals.Active() != models.ModalContact {
		return
	}
	st := newStyles(m.theme.Dark(), false)
	width := m.viewport.Width
	if width <= 0 {
		width = 60
	}
	bubbleWidth := max(min(width*2/3, 44), 10)

	var content strings.Builder
	for i, msg := range m.chat.Transcript() {
		if i > 0 {
			content.WriteString("\n")
		}
		text := wordwrap.String(msg.Text, bubbleWidth)
		if msg.Sender == models.SenderUser {
			content.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Right, st.userBubble.Render(text)))
		} else {
			content.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Left, st.botBubble.Render(text)))
		}
	}
	if m.chat.Typing() {
		if content.Len() > 0 {
			content.WriteString("\n")
		}
		content.WriteString(st.botBubble.Render(m.spinner.View()))
	}

	m.viewport.SetContent(content.String())
	m.viewport.GotoBottom()
}

func (m Model) statusLine(st styles) string {
	if m.err != nil {
		return errorStyle.Render("Error: " + m.err.Error())
	}

	var line string
	switch m.modals.Active() {
	case models.ModalAbout:
		line = m.help.View(aboutHelp(m.keys))
	case models.ModalContact:
		line = m.help.View(contactHelp(m.keys))
	default:
		line = st.tooltip.Render(m.tooltip(m.targets()[m.focus])) + "  " + m.help.View(cardHelp(m.keys))
	}
	return truncate.String(line, uint(max(m.windowWidth, 0)))
}

func (m Model) View() string {
	dimmed := m.modals.Active() != models.ModalNone
	bgStyles := newStyles(m.theme.Dark(), dimmed)
	st := newStyles(m.theme.Dark(), false)
	width, height := m.windowWidth, m.windowHeight

	screen := renderBackground(m.scene, bgStyles, width, height, m.elapsed)

	c := m.cardLayout()
	screen = placeAt(screen, c.block, c.rect.x, c.rect.y, width)
	screen = placeAt(screen, m.toggleButton(st), 1, 0, width)

	if dimmed {
		block, r := m.modalLayout()
		screen = placeAt(screen, block, r.x, r.y, width)
	}

	if height > 0 {
		screen = placeAt(screen, helpStyle.Render(m.statusLine(st)), 0, height-1, width)
	}
	return strings.Join(screen, "\n")
}
