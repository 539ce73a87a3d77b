package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"blocpad/internal/data/stores"
)

// Feedback windows mirror the persisted behaviors: a copy confirmation shows
// for two seconds, and an armed delete disarms after three.
const (
	copiedTTL   = 2 * time.Second
	deleteTTL   = 3 * time.Second
	countdownHz = time.Second
)

type (
	// dataChangedMsg arrives when another process rewrote a data file.
	dataChangedMsg stores.Change

	// watcherClosedMsg signals that the change channel drained, so the
	// model stops re-subscribing.
	watcherClosedMsg struct{}

	// copyResultMsg carries the outcome of a clipboard write.
	copyResultMsg struct {
		blockID string
		err     error
	}

	// copiedExpiredMsg ends the copy confirmation window. gen guards
	// against a stale timer clearing a newer confirmation.
	copiedExpiredMsg struct{ gen int }

	// deleteExpiredMsg disarms a pending delete. gen guards against a
	// stale timer disarming a re-armed delete.
	deleteExpiredMsg struct{ gen int }

	// countdownTickMsg drives the once-a-second countdown refresh.
	countdownTickMsg time.Time
)

func waitForChange(w *stores.Watcher) tea.Cmd {
	return func() tea.Msg {
		change, ok := <-w.Events()
		if !ok {
			return watcherClosedMsg{}
		}
		return dataChangedMsg(change)
	}
}

func expireCopied(gen int) tea.Cmd {
	return tea.Tick(copiedTTL, func(time.Time) tea.Msg {
		return copiedExpiredMsg{gen: gen}
	})
}

func expireDelete(gen int) tea.Cmd {
	return tea.Tick(deleteTTL, func(time.Time) tea.Msg {
		return deleteExpiredMsg{gen: gen}
	})
}

func scheduleCountdownTick() tea.Cmd {
	return tea.Tick(countdownHz, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}
