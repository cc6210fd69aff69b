package types

import (
	"github.com/rxtech-lab/argo-refdata/internal/timeutil"
)

// TimeRange is a trading or auction window given as HHMM times of day.
// A To at or before From means the window wraps across midnight.
type TimeRange struct {
	From uint32 `yaml:"from" json:"from"`
	To   uint32 `yaml:"to" json:"to"`
}

// Minutes returns the length of the window in minutes.
func (r TimeRange) Minutes() int {
	d := timeutil.MinuteOfDay(r.To) - timeutil.MinuteOfDay(r.From)
	if d <= 0 {
		d += 1440
	}

	return d
}

// Session is a named trading-hours template. The offset describes how the
// session's hours relate to the calendar day used for date keeping:
// positive offsets mean the night portion counts toward the next trading
// date, negative offsets mean the close rolls past midnight into the next
// calendar day. Sessions are immutable once loaded and are owned by the
// catalog; commodities hold references only.
type Session struct {
	ID         string
	Name       string
	OffsetMins int32
	Auctions   []TimeRange
	Sections   []TimeRange
}

// NewSession creates a session with no windows configured.
func NewSession(id, name string, offsetMins int32) *Session {
	return &Session{
		ID:         id,
		Name:       name,
		OffsetMins: offsetMins,
		Auctions:   nil,
		Sections:   nil,
	}
}

// AddAuctionTime appends an auction window.
func (s *Session) AddAuctionTime(from, to uint32) {
	s.Auctions = append(s.Auctions, TimeRange{From: from, To: to})
}

// AddTradingSection appends a trading section. Sections are expected in
// session order and non-overlapping.
func (s *Session) AddTradingSection(from, to uint32) {
	s.Sections = append(s.Sections, TimeRange{From: from, To: to})
}

// OpenTime returns the raw HHMM open of the first trading section.
func (s *Session) OpenTime() uint32 {
	if len(s.Sections) == 0 {
		return 0
	}

	return s.Sections[0].From
}

// CloseTime returns the raw HHMM close of the last trading section.
func (s *Session) CloseTime() uint32 {
	if len(s.Sections) == 0 {
		return 0
	}

	return s.Sections[len(s.Sections)-1].To
}

// TradingMinutes returns the total minutes of trading across all sections.
// A full 1440 marks a 24-hour session, which trading-date resolution
// treats as a degenerate case with no closed gap.
func (s *Session) TradingMinutes() int {
	total := 0
	for _, sec := range s.Sections {
		total += sec.Minutes()
	}

	return total
}

// Is24Hour reports whether the session trades around the clock.
func (s *Session) Is24Hour() bool {
	return s.TradingMinutes() == 1440
}

// OffsetTime shifts an HHMM time of day into the session's offset minute
// space and re-encodes it as HHMM. With alignLeft the result wraps into
// [0:00, 24:00); otherwise it wraps into (0:00, 24:00], so that a shifted
// midnight close stays at 2400 rather than folding back to 0.
func (s *Session) OffsetTime(t uint32, alignLeft bool) uint32 {
	return timeutil.FromMinuteOfDay(s.offsetMinute(t, alignLeft))
}

func (s *Session) offsetMinute(t uint32, alignLeft bool) int {
	off := timeutil.MinuteOfDay(t) + int(s.OffsetMins)
	if alignLeft {
		if off < 0 {
			off += 1440
		} else if off >= 1440 {
			off -= 1440
		}
	} else {
		if off <= 0 {
			off += 1440
		} else if off > 1440 {
			off -= 1440
		}
	}

	return off
}

// IsInTradingTime reports whether the HHMM time of day falls inside one of
// the trading sections. The check runs in offset space so sections that
// straddle midnight in wall-clock terms compare contiguously.
func (s *Session) IsInTradingTime(t uint32) bool {
	offT := s.offsetMinute(t, true)
	for _, sec := range s.Sections {
		if inOffsetRange(offT, s.offsetMinute(sec.From, true), s.offsetMinute(sec.To, false)) {
			return true
		}
	}

	return false
}

// IsInAuctionTime reports whether the HHMM time of day falls inside one of
// the auction windows.
func (s *Session) IsInAuctionTime(t uint32) bool {
	offT := s.offsetMinute(t, true)
	for _, a := range s.Auctions {
		if inOffsetRange(offT, s.offsetMinute(a.From, true), s.offsetMinute(a.To, false)) {
			return true
		}
	}

	return false
}

func inOffsetRange(t, from, to int) bool {
	if from < to {
		return from <= t && t < to
	}
	// window still wraps after offsetting
	return t >= from || t < to
}
