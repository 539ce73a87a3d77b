package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"blocpad/internal/core/styles"
	"blocpad/internal/core/task"
)

// TasksPanel is the daily-task sidebar. Completion state resets each day at
// load time; the panel only edits the in-memory list and reports changes so
// the model can persist them.
type TasksPanel struct {
	tasks  []task.Task
	cursor int
	input  textinput.Model
	adding bool

	// armedID holds the task a first delete press armed; a second press on
	// the same task removes it, any other key disarms.
	armedID string
}

func NewTasksPanel(tasks []task.Task) TasksPanel {
	ti := textinput.New()
	ti.Placeholder = "new task"
	ti.CharLimit = 120
	ti.Width = 28
	return TasksPanel{tasks: tasks, input: ti}
}

// Tasks returns the current list.
func (p *TasksPanel) Tasks() []task.Task { return p.tasks }

// SetTasks replaces the list, clamping the cursor.
func (p *TasksPanel) SetTasks(tasks []task.Task) {
	p.tasks = tasks
	p.armedID = ""
	p.clamp()
}

// Adding reports whether the new-task input is open.
func (p *TasksPanel) Adding() bool { return p.adding }

func (p *TasksPanel) clamp() {
	if p.cursor >= len(p.tasks) {
		p.cursor = len(p.tasks) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// Update handles a key message. changed reports that the task list was
// mutated and should be persisted.
func (p *TasksPanel) Update(msg tea.KeyMsg) (changed bool, cmd tea.Cmd) {
	if p.adding {
		switch msg.String() {
		case "enter":
			text := strings.TrimSpace(p.input.Value())
			p.adding = false
			p.input.Reset()
			p.input.Blur()
			if text == "" {
				return false, nil
			}
			p.tasks = append(p.tasks, task.New(text, ""))
			p.cursor = len(p.tasks) - 1
			return true, nil
		case "esc":
			p.adding = false
			p.input.Reset()
			p.input.Blur()
			return false, nil
		}
		p.input, cmd = p.input.Update(msg)
		return false, cmd
	}

	switch msg.String() {
	case "up", "k":
		p.armedID = ""
		if p.cursor > 0 {
			p.cursor--
		}
	case "down", "j":
		p.armedID = ""
		if p.cursor < len(p.tasks)-1 {
			p.cursor++
		}
	case "a":
		p.armedID = ""
		p.adding = true
		p.input.Focus()
		return false, textinput.Blink
	case " ", "enter":
		p.armedID = ""
		if p.cursor < len(p.tasks) {
			p.tasks = task.Toggle(p.tasks, p.tasks[p.cursor].ID)
			return true, nil
		}
	case "x", "d":
		if p.cursor >= len(p.tasks) {
			return false, nil
		}
		id := p.tasks[p.cursor].ID
		if p.armedID != id {
			p.armedID = id
			return false, nil
		}
		p.armedID = ""
		p.tasks = task.Remove(p.tasks, id)
		p.clamp()
		return true, nil
	default:
		p.armedID = ""
	}
	return false, nil
}

// View renders the panel. focused controls the cursor marker.
func (p *TasksPanel) View(focused bool) string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render("Daily tasks"))
	b.WriteByte('\n')

	if len(p.tasks) == 0 && !p.adding {
		b.WriteString(styles.TextMutedStyle.Render("  nothing for today"))
	}

	for i, t := range p.tasks {
		b.WriteByte('\n')
		marker := "  "
		if focused && i == p.cursor {
			marker = styles.TitleStyle.Render("> ")
		}
		box := "[ ]"
		text := t.Text
		if t.Completed {
			box = "[x]"
			text = styles.TaskDoneStyle.Render(text)
		}
		b.WriteString(fmt.Sprintf("%s%s %s", marker, box, text))
		if t.ID == p.armedID {
			b.WriteString(styles.DeleteArmedStyle.Render(" x again to remove"))
		}
	}

	if p.adding {
		b.WriteByte('\n')
		b.WriteString("  " + p.input.View())
	}
	return b.String()
}
