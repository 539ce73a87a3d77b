// Package countdown implements the single-event countdown widget.
package countdown

import (
	"fmt"
	"time"
)

// Event is the persisted countdown target.
type Event struct {
	Name string    `json:"name"`
	Date time.Time `json:"date"`
}

// Urgency buckets for the remaining time, used to pick display color and
// message.
type Urgency int

const (
	// UrgencyCalm: more than 15 minutes remain.
	UrgencyCalm Urgency = iota
	// UrgencyClose: 15 minutes or less remain.
	UrgencyClose
	// UrgencyCritical: 5 minutes or less remain.
	UrgencyCritical
	// UrgencyDone: the event has started.
	UrgencyDone
)

// Remaining describes the time left until an event.
type Remaining struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Urgency Urgency
}

// Until computes the remaining time from now until the event.
func (e Event) Until(now time.Time) Remaining {
	d := e.Date.Sub(now)
	if d <= 0 {
		return Remaining{Urgency: UrgencyDone}
	}

	total := int(d.Seconds())
	r := Remaining{
		Days:    total / 86400,
		Hours:   total / 3600 % 24,
		Minutes: total / 60 % 60,
		Seconds: total % 60,
	}

	switch minutes := total / 60; {
	case minutes <= 5:
		r.Urgency = UrgencyCritical
	case minutes <= 15:
		r.Urgency = UrgencyClose
	default:
		r.Urgency = UrgencyCalm
	}
	return r
}

// String formats the remaining time as "2d 5h 31m 8s", or the started
// message once the event has begun.
func (r Remaining) String() string {
	if r.Urgency == UrgencyDone {
		return "Event started!"
	}
	return fmt.Sprintf("%dd %dh %dm %ds", r.Days, r.Hours, r.Minutes, r.Seconds)
}

// Message returns the cheer line for the current urgency.
func (r Remaining) Message() string {
	switch r.Urgency {
	case UrgencyCritical:
		return "Hurry up! 😱🔥"
	case UrgencyClose:
		return "Almost there! 🏃💨"
	case UrgencyDone:
		return "Enjoy! 🎉🥳"
	default:
		return "Keep going! 🚀"
	}
}
