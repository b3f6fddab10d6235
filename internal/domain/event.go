package domain

import (
	"time"
	_ "time/tzdata" // IANA zones for event timezones on hosts without zoneinfo

	"github.com/google/uuid"
)

// DefaultTimezone is applied to events created without a timezone.
const DefaultTimezone = "Asia/Ho_Chi_Minh"

// CountdownEvent is a dated event the user counts down to.
type CountdownEvent struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description *string
	EventDate   time.Time
	Recurring   *Recurrence
	Timezone    string
	Color       Color
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   *time.Time
}

// EventPatch holds the updatable fields of an event.
type EventPatch struct {
	Title       Optional[string]
	Description Optional[string]
	EventDate   Optional[time.Time]
	Recurring   Optional[Recurrence]
	Timezone    Optional[string]
	Color       Optional[Color]
}

// EventFilter narrows an event listing.
type EventFilter struct {
	Upcoming bool
	Page     Page
}

// Location resolves the event timezone, falling back to UTC for unknown names.
func (e *CountdownEvent) Location() *time.Location {
	loc, err := time.LoadLocation(e.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// NextOccurrence returns the first occurrence at or after now. Non-recurring
// events return EventDate even when it lies in the past.
func (e *CountdownEvent) NextOccurrence(now time.Time) time.Time {
	loc := e.Location()
	start := e.EventDate.In(loc)
	if e.Recurring == nil || !start.Before(now) {
		return start
	}

	switch *e.Recurring {
	case RecurrenceDaily, RecurrenceWeekly:
		step := 24 * time.Hour
		if *e.Recurring == RecurrenceWeekly {
			step *= 7
		}
		days := int(step / (24 * time.Hour))
		n := int(now.Sub(start) / step)
		next := start.AddDate(0, 0, n*days)
		for next.Before(now) {
			n++
			next = start.AddDate(0, 0, n*days)
		}
		return next
	case RecurrenceMonthly:
		n := monthsBetween(start, now.In(loc))
		for {
			next := addMonthsClamped(start, n)
			if !next.Before(now) {
				return next
			}
			n++
		}
	case RecurrenceYearly:
		n := now.In(loc).Year() - start.Year()
		for {
			next := addMonthsClamped(start, n*12)
			if !next.Before(now) {
				return next
			}
			n++
		}
	}
	return start
}

// DaysRemaining counts calendar days from now to the next occurrence in the
// event timezone. Past non-recurring events yield a negative value.
func (e *CountdownEvent) DaysRemaining(now time.Time) int {
	loc := e.Location()
	next := e.NextOccurrence(now).In(loc)
	today := now.In(loc)
	a := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func monthsBetween(a, b time.Time) int {
	n := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if n < 0 {
		return 0
	}
	return n
}

// addMonthsClamped adds n months keeping the day of month, clamped to the
// last day of the target month (Jan 31 + 1 month = Feb 28/29).
func addMonthsClamped(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + n
	y += total / 12
	m = time.Month(total%12 + 1)
	if last := daysIn(y, m); d > last {
		d = last
	}
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
