package catalog

import (
	"github.com/rxtech-lab/argo-refdata/internal/timeutil"
	"github.com/rxtech-lab/argo-refdata/internal/types"
	"github.com/rxtech-lab/argo-refdata/pkg/errors"
)

// resolveSessionTemplate resolves an id into the session plus the holiday
// template coordinates the date arithmetic runs under. A session id pairs
// with the default template; a product key pairs with its commodity's
// session and template.
func (c *Catalog) resolveSessionTemplate(id string, isSession bool) (*types.Session, string, bool, error) {
	if isSession {
		sInfo, err := c.Session(id)
		if err != nil {
			return nil, "", false, err
		}

		return sInfo, DefaultHolidayTemplate, true, nil
	}

	commInfo, err := c.Commodity(id)
	if err != nil {
		return nil, "", false, err
	}

	if commInfo.Session == nil {
		return nil, "", false, errors.Newf(errors.ErrCodeNoSessionBound, "commodity %s has no session bound", id)
	}

	return commInfo.Session, id, false, nil
}

// CalcTradingDate attributes a wall-clock (date, HHMM time) pair to the
// trading date it belongs to under the session's offset rules. A zero date
// means "now". Unresolvable ids degrade permissively to the calendar date,
// keeping the hot query path total.
func (c *Catalog) CalcTradingDate(id string, date, tm uint32, isSession bool) uint32 {
	if date == 0 {
		date, tm = timeutil.CurDateTime()
	}

	sInfo, tplID, isTpl, err := c.resolveSessionTemplate(id, isSession)
	if err != nil {
		return date
	}

	offMin := sInfo.OffsetTime(tm, true)

	// A 24-hour session has no closed gap to disambiguate: the trading
	// date follows purely from which side of the offset boundary the
	// time falls on.
	if sInfo.Is24Hour() {
		if sInfo.OffsetMins > 0 && tm > offMin {
			return timeutil.AddDays(date, 1)
		}

		if sInfo.OffsetMins < 0 && tm < offMin {
			return timeutil.AddDays(date, -1)
		}

		return date
	}

	weekend := timeutil.IsWeekend(date)

	switch {
	case sInfo.OffsetMins > 0:
		// The night portion counts toward the next trading date, so
		// a time past the rollover boundary has already crossed over,
		// e.g. 20151016 23:00 with offset 300.
		if tm > offMin {
			return c.NextTradingDate(tplID, date, 1, isTpl)
		}

		if weekend {
			// e.g. 20151017 01:00, a Saturday, belongs to 20151019
			return c.NextTradingDate(tplID, date, 1, isTpl)
		}
	case sInfo.OffsetMins < 0:
		// The close rolls past midnight, so early-morning times still
		// belong to the previous trading date, e.g. 20151017 01:00
		// with offset -300.
		if tm < offMin {
			return c.PrevTradingDate(tplID, date, 1, isTpl)
		}

		if weekend {
			return c.NextTradingDate(tplID, date, 1, isTpl)
		}
	default:
		if weekend {
			return c.NextTradingDate(tplID, date, 1, isTpl)
		}
	}

	return date
}

// BoundaryTime returns the literal open (isStart) or close timestamp of a
// trading date, packed as YYYYMMDDHHMM. A trading date landing on a
// weekend is first normalized to the adjacent trading date in the
// requested direction.
func (c *Catalog) BoundaryTime(id string, tDate uint32, isSession, isStart bool) (uint64, error) {
	if tDate == 0 {
		tDate = timeutil.CurDate()
	}

	sInfo, tplID, isTpl, err := c.resolveSessionTemplate(id, isSession)
	if err != nil {
		return 0, err
	}

	if timeutil.IsWeekend(tDate) {
		if isStart {
			tDate = c.NextTradingDate(tplID, tDate, 1, isTpl)
		} else {
			tDate = c.PrevTradingDate(tplID, tDate, 1, isTpl)
		}
	}

	if sInfo.OffsetMins == 0 {
		if isStart {
			return timeutil.PackDateTime(tDate, sInfo.OpenTime()), nil
		}

		return timeutil.PackDateTime(tDate, sInfo.CloseTime()), nil
	}

	if sInfo.OffsetMins < 0 {
		// Forward-rolled close: the open stays on the trading date and
		// the close lands on the next calendar day, holidays included.
		if isStart {
			return timeutil.PackDateTime(tDate, sInfo.OpenTime()), nil
		}

		return timeutil.PackDateTime(timeutil.NextDate(tDate), sInfo.CloseTime()), nil
	}

	// Night session counted toward the next trading date: the close needs
	// no adjustment, and the open is always the evening of the previous
	// trading date, which absorbs the awkward first-day-after-holiday
	// cases in one step.
	if !isStart {
		return timeutil.PackDateTime(tDate, sInfo.CloseTime()), nil
	}

	tDate = c.PrevTradingDate(tplID, tDate, 1, isTpl)

	return timeutil.PackDateTime(tDate, sInfo.OpenTime()), nil
}
