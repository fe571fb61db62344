package recurrence

import (
	"fmt"
	"time"
)

// PeriodUnit is the calendar unit a recurrence advances by.
type PeriodUnit int8

const (
	PeriodDay PeriodUnit = iota
	PeriodWeek
	PeriodMonth
	PeriodYear
)

// Add advances t by stride periods of u using calendar arithmetic, so month
// and year steps follow calendar lengths rather than fixed durations.
func (u PeriodUnit) Add(t time.Time, stride int) time.Time {
	switch u {
	case PeriodDay:
		return t.AddDate(0, 0, stride)
	case PeriodWeek:
		return t.AddDate(0, 0, 7*stride)
	case PeriodMonth:
		return t.AddDate(0, stride, 0)
	case PeriodYear:
		return t.AddDate(stride, 0, 0)
	}
	panic(fmt.Sprintf("recurrence: unknown period unit %d", u))
}

func (u PeriodUnit) String() string {
	switch u {
	case PeriodDay:
		return "day"
	case PeriodWeek:
		return "week"
	case PeriodMonth:
		return "month"
	case PeriodYear:
		return "year"
	}
	panic(fmt.Sprintf("recurrence: unknown period unit %d", u))
}

// Type is the closed set of recurrence variants a template can carry. Every
// variant must be handled by both PeriodUnit and Continuous; adding a variant
// without extending both switches panics at first use, which is a defect in
// the variant set rather than a data error.
type Type int8

const (
	None Type = iota
	Daily
	DailyContinuous
	Weekly
	WeeklyContinuous
	Monthly
	MonthlyContinuous
	Yearly
	YearlyContinuous
)

// PeriodUnit returns the calendar unit a variant advances by. The second
// return is false only for None, which occurs exactly once.
func (t Type) PeriodUnit() (PeriodUnit, bool) {
	switch t {
	case None:
		return 0, false
	case Daily, DailyContinuous:
		return PeriodDay, true
	case Weekly, WeeklyContinuous:
		return PeriodWeek, true
	case Monthly, MonthlyContinuous:
		return PeriodMonth, true
	case Yearly, YearlyContinuous:
		return PeriodYear, true
	}
	panic(fmt.Sprintf("recurrence: unknown type %d", t))
}

// Continuous reports whether the variant spreads its amount across each
// period instead of projecting the full amount at each occurrence.
func (t Type) Continuous() bool {
	switch t {
	case None, Daily, Weekly, Monthly, Yearly:
		return false
	case DailyContinuous, WeeklyContinuous, MonthlyContinuous, YearlyContinuous:
		return true
	}
	panic(fmt.Sprintf("recurrence: unknown type %d", t))
}

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Daily:
		return "daily"
	case DailyContinuous:
		return "daily-continuous"
	case Weekly:
		return "weekly"
	case WeeklyContinuous:
		return "weekly-continuous"
	case Monthly:
		return "monthly"
	case MonthlyContinuous:
		return "monthly-continuous"
	case Yearly:
		return "yearly"
	case YearlyContinuous:
		return "yearly-continuous"
	}
	panic(fmt.Sprintf("recurrence: unknown type %d", t))
}
