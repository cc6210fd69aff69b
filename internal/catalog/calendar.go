package catalog

import (
	"github.com/rxtech-lab/argo-refdata/internal/timeutil"
)

// IsHoliday reports whether the date is a non-trading day for the given
// holiday template (isTpl) or product key. Saturday and Sunday are always
// holidays; an unresolved template is permissive and marks nothing else.
func (c *Catalog) IsHoliday(id string, date uint32, isTpl bool) bool {
	if timeutil.IsWeekend(date) {
		return true
	}

	tplID := id
	if !isTpl {
		tplID = c.templateByProduct(id)
	}

	tpl, ok := c.templates[tplID]
	if !ok {
		return false
	}

	return tpl.IsHoliday(date)
}

// IsTradingDate reports whether the date is neither a weekend nor a
// holiday under the resolved template.
func (c *Catalog) IsTradingDate(id string, date uint32, isTpl bool) bool {
	return !timeutil.IsWeekend(date) && !c.IsHoliday(id, date, isTpl)
}

// NextTradingDate walks forward one calendar day at a time from the given
// date, counting only days that trade, until the requested number of
// trading days has been consumed. Termination relies on real calendars
// having finite runs of consecutive non-trading days.
func (c *Catalog) NextTradingDate(id string, date uint32, days int, isTpl bool) uint32 {
	return c.stepTradingDate(id, date, days, 1, isTpl)
}

// PrevTradingDate is NextTradingDate walking backward.
func (c *Catalog) PrevTradingDate(id string, date uint32, days int, isTpl bool) uint32 {
	return c.stepTradingDate(id, date, days, -1, isTpl)
}

func (c *Catalog) stepTradingDate(id string, date uint32, days, dir int, isTpl bool) uint32 {
	curDate := date
	left := days

	for {
		curDate = timeutil.AddDays(curDate, dir)
		if timeutil.IsWeekend(curDate) || c.IsHoliday(id, curDate, isTpl) {
			continue
		}

		left--
		if left == 0 {
			return curDate
		}
	}
}

// TradingDate returns the current trading date for the template resolved
// from id. Without an explicit reference date the per-template cache is
// consulted first; a weekend reference date advances to the next trading
// date and refreshes the cache. Weekday reference dates pass through
// unchanged and uncached, so an explicit date never poisons the cache.
func (c *Catalog) TradingDate(id string, offDate uint32, isTpl bool) uint32 {
	tplID := id
	if !isTpl {
		tplID = c.templateByProduct(id)
	}

	curDate := timeutil.CurDate()

	tpl, ok := c.templates[tplID]
	if !ok {
		return curDate
	}

	if cached := tpl.CurrentTradingDate(); cached != 0 && offDate == 0 {
		return cached
	}

	if offDate == 0 {
		offDate = curDate
	}

	if timeutil.IsWeekend(offDate) {
		tDate := c.NextTradingDate(tplID, offDate, 1, true)
		tpl.SetCurrentTradingDate(tDate)

		return tDate
	}

	return offDate
}

// SetTradingDate pins the cached current trading date for the template
// resolved from id, typically once the exchange confirms day rollover.
// Unknown templates are ignored.
func (c *Catalog) SetTradingDate(id string, date uint32, isTpl bool) {
	tplID := id
	if !isTpl {
		tplID = c.templateByProduct(id)
	}

	tpl, ok := c.templates[tplID]
	if !ok {
		return
	}

	tpl.SetCurrentTradingDate(date)
}
