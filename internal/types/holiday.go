package types

import "sync/atomic"

// HolidayTemplate is a named set of non-trading YYYYMMDD dates, shared by
// every commodity that references its id. It also carries the one piece of
// mutable process state in the model: the cached current trading date,
// advanced by a calendar-advance driver. The cache is atomic so concurrent
// readers never observe a half-written value.
type HolidayTemplate struct {
	ID       string
	Holidays map[uint32]struct{}

	curTDate atomic.Uint32
}

// NewHolidayTemplate creates an empty template.
func NewHolidayTemplate(id string) *HolidayTemplate {
	return &HolidayTemplate{
		ID:       id,
		Holidays: make(map[uint32]struct{}),
	}
}

// AddHoliday marks a YYYYMMDD date as a holiday.
func (t *HolidayTemplate) AddHoliday(date uint32) {
	t.Holidays[date] = struct{}{}
}

// IsHoliday reports whether the YYYYMMDD date is in the holiday set.
func (t *HolidayTemplate) IsHoliday(date uint32) bool {
	_, ok := t.Holidays[date]

	return ok
}

// CurrentTradingDate returns the cached current trading date, 0 if unset.
func (t *HolidayTemplate) CurrentTradingDate() uint32 {
	return t.curTDate.Load()
}

// SetCurrentTradingDate pins the cached current trading date.
func (t *HolidayTemplate) SetCurrentTradingDate(date uint32) {
	t.curTDate.Store(date)
}
