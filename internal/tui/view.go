package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/wordwrap"

	"blocpad/internal/core/block"
	"blocpad/internal/core/markup"
	"blocpad/internal/core/styles"
)

const sidebarWidth = 34

// termRenderer styles links, bold and italic spans for terminal display.
var termRenderer = markup.NewTermRenderer(
	func(s string) string { return styles.LinkStyle.Render(s) },
	func(s string) string { return styles.BoldStyle.Render(s) },
	func(s string) string { return styles.ItalicStyle.Render(s) },
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	main := m.viewBlocks()
	if m.cfg.UI.TasksVisible() || m.cfg.UI.CountdownVisible() {
		main = lipgloss.JoinHorizontal(lipgloss.Top, main, m.viewSidebar())
	}

	sections := []string{m.viewHeader(), main, m.help.View(m.keys)}
	if toasts := m.toastView.View(); toasts != "" {
		sections = append(sections, toasts)
	}
	return strings.Join(sections, "\n")
}

func (m *Model) viewHeader() string {
	return styles.TitleStyle.Render("blocpad") + " " +
		styles.TextMutedStyle.Render(fmt.Sprintf("%d blocks", m.store.Len()))
}

func (m *Model) viewBlocks() string {
	display := m.store.Display()
	if len(display) == 0 {
		return styles.TextMutedStyle.Render("no blocks yet, press n to create one")
	}

	editingID, _ := m.ctrl.Editing()

	var b strings.Builder
	for i, blk := range display {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(m.viewBlock(blk, i == m.selected, blk.ID == editingID))
	}
	return b.String()
}

func (m *Model) viewBlock(blk block.Block, selected, editing bool) string {
	width := m.contentWidth()

	title := blk.Title
	if title == "" {
		title = styles.BlockTagStyle.Render("#" + blk.Tag)
	} else {
		title = styles.BlockTitleStyle.Render(title)
	}
	if m.state == stateEditTitle && selected {
		title = m.titleInput.View()
	}

	var status string
	switch {
	case m.armedID == blk.ID:
		status = styles.DeleteArmedStyle.Render("press d again to delete")
	case m.copiedID == blk.ID:
		status = styles.CopiedStyle.Render("copied!")
	}
	header := title
	if status != "" {
		header += "  " + status
	}

	var body string
	if editing {
		body = m.viewEditor()
	} else {
		body = termRenderer.Render(wordwrap.String(blk.Content, width))
		if body == "" {
			body = styles.PlaceholderStyle.Render("empty")
		}
	}

	frame := styles.BlockBorderStyle
	if editing || (selected && m.state == stateList) {
		frame = styles.BlockEditingStyle
	}
	return frame.Width(width + 2).Render(header + "\n" + body)
}

// viewEditor renders the content editor with the picker dropdown spliced in
// under the caret row, indented to the caret column.
func (m *Model) viewEditor() string {
	view := m.editor.View()
	count := styles.TextMutedStyle.Render(fmt.Sprintf("%d chars", CharCount(m.editor.Value())))

	if !m.pickerOpen || m.picker.Empty() {
		return view + "\n" + count
	}

	pos := m.editor.CaretPosition()
	lines := strings.Split(view, "\n")

	indent := strings.Repeat(" ", min(pos.Left, m.editor.Width()/2))
	var dropdown []string
	for _, row := range strings.Split(m.picker.View(m.editor.Width()-len(indent)), "\n") {
		dropdown = append(dropdown, indent+row)
	}

	at := pos.Top + 1
	if at > len(lines) {
		at = len(lines)
	}
	out := make([]string, 0, len(lines)+len(dropdown)+1)
	out = append(out, lines[:at]...)
	out = append(out, dropdown...)
	out = append(out, lines[at:]...)
	out = append(out, count)
	return strings.Join(out, "\n")
}

func (m *Model) viewSidebar() string {
	var parts []string

	if m.cfg.UI.CountdownVisible() && m.event != nil {
		parts = append(parts, m.viewCountdown())
	}
	if m.cfg.UI.TasksVisible() {
		parts = append(parts, m.tasks.View(m.state == stateTasks))
	}
	if len(parts) == 0 {
		return ""
	}

	return lipgloss.NewStyle().
		Width(sidebarWidth).
		PaddingLeft(2).
		Render(strings.Join(parts, "\n\n"))
}

func (m *Model) viewCountdown() string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(m.event.Name))
	b.WriteByte('\n')
	b.WriteString(styles.CountdownStyle.Render(m.remaining.String()))
	b.WriteByte('\n')
	b.WriteString(styles.TextMutedStyle.Render(m.remaining.Message()))
	return b.String()
}

func lineWidth(s string) int { return lipgloss.Width(s) }

func truncate(s string, width int) string {
	if width < 1 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}
