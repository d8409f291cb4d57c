package core

import "time"

// Window is a relative date range used for report aggregation.
type Window string

const (
	Daily   Window = "daily"
	Weekly  Window = "weekly"
	Monthly Window = "monthly"
)

func (w Window) IsValid() bool {
	switch w {
	case Daily, Weekly, Monthly:
		return true
	default:
		return false
	}
}

// Range resolves the window to an inclusive [from, to] day range relative
// to now: Daily is the current calendar day, Weekly the last seven days,
// Monthly the current calendar month.
func (w Window) Range(now time.Time) (from, to Date) {
	today := DateOf(now)
	switch w {
	case Weekly:
		return DateOf(now.AddDate(0, 0, -7)), today
	case Monthly:
		first := NewDate(now.Year(), int(now.Month()), 1)
		last := Date{Time: first.AddDate(0, 1, -1)}
		return first, last
	default:
		return today, today
	}
}

// Label returns the Portuguese phrase used in report texts.
func (w Window) Label() string {
	switch w {
	case Weekly:
		return "nos últimos 7 dias"
	case Monthly:
		return "neste mês"
	default:
		return "hoje"
	}
}
