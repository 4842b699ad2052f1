package rollup_period

import (
	"time"

	"courierdesk/internal/entities"
)

// PeriodFactory обрезает время до начала дня, недели (с понедельника) или месяца в локальном поясе.
type PeriodFactory struct {
	loc *time.Location
}

func New(loc *time.Location) *PeriodFactory {
	if loc == nil {
		loc = time.UTC
	}
	return &PeriodFactory{loc: loc}
}

func (f *PeriodFactory) Location() *time.Location {
	return f.loc
}

func (f *PeriodFactory) PeriodStart(period entities.RollupPeriod, t time.Time) time.Time {
	local := t.In(f.loc)
	year, month, day := local.Date()

	switch period {
	case entities.RollupMonth:
		return time.Date(year, month, 1, 0, 0, 0, 0, f.loc)
	case entities.RollupWeek:
		// Weekday: воскресенье 0, сдвигаем так, чтобы понедельник был 0
		offset := (int(local.Weekday()) + 6) % 7
		return time.Date(year, month, day-offset, 0, 0, 0, 0, f.loc)
	default:
		return time.Date(year, month, day, 0, 0, 0, 0, f.loc)
	}
}
