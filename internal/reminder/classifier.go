// Package reminder classifies scheduling state into review reminders and
// runs the periodic daemon that emits them.
package reminder

import (
	"time"

	"github.com/mnemora/mnemora/internal/review"
)

// Kind distinguishes the reminder buckets.
type Kind string

const (
	KindOverdue Kind = "overdue"
	KindDueSoon Kind = "due_soon"
)

// Severity expresses how urgent a reminder is.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
)

// Reminder is one classified review subject. Hours is whole hours overdue
// for KindOverdue, or whole hours until due (never negative) for
// KindDueSoon.
type Reminder struct {
	UserID      int64
	ContentID   int64
	ContentKind review.ContentKind
	Kind        Kind
	Severity    Severity
	Hours       int
}

// Classification windows around now.
const (
	overdueAfter = time.Hour
	dueSoonAhead = 2 * time.Hour
)

// Classify sorts scheduling states into at most one reminder each. A
// subject more than an hour past due is overdue; a subject due between an
// hour ago and two hours from now is due soon. Both window boundaries
// belong to the due-soon bucket. Subjects outside both windows, or never
// scheduled at all, produce no reminder.
func Classify(states []review.SchedulingState, now time.Time) []Reminder {
	var reminders []Reminder
	for _, state := range states {
		if state.NextReview.IsZero() {
			continue
		}

		switch {
		case state.NextReview.Before(now.Add(-overdueAfter)):
			reminders = append(reminders, Reminder{
				UserID:      state.UserID,
				ContentID:   state.ContentID,
				ContentKind: state.ContentKind,
				Kind:        KindOverdue,
				Severity:    SeverityHigh,
				Hours:       int(now.Sub(state.NextReview).Hours()),
			})
		case !state.NextReview.After(now.Add(dueSoonAhead)):
			hours := int(state.NextReview.Sub(now).Hours())
			if hours < 0 {
				hours = 0
			}
			reminders = append(reminders, Reminder{
				UserID:      state.UserID,
				ContentID:   state.ContentID,
				ContentKind: state.ContentKind,
				Kind:        KindDueSoon,
				Severity:    SeverityMedium,
				Hours:       hours,
			})
		}
	}
	return reminders
}
