// Package timeutil provides date and time-of-day arithmetic on the compact
// integer encodings used throughout the catalog: dates as YYYYMMDD and
// times of day as HHMM (900 means 09:00).
package timeutil

import "time"

// ToTime converts a YYYYMMDD date into a time.Time at midnight local time.
func ToTime(date uint32) time.Time {
	year := int(date / 10000)
	month := time.Month(date % 10000 / 100)
	day := int(date % 100)

	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// FromTime converts a time.Time into a YYYYMMDD date.
func FromTime(t time.Time) uint32 {
	return uint32(t.Year())*10000 + uint32(t.Month())*100 + uint32(t.Day())
}

// CurDate returns the current wall-clock date as YYYYMMDD.
func CurDate() uint32 {
	return FromTime(time.Now())
}

// CurDateTime returns the current wall-clock date as YYYYMMDD and the
// current time of day as HHMM.
func CurDateTime() (uint32, uint32) {
	now := time.Now()

	return FromTime(now), uint32(now.Hour())*100 + uint32(now.Minute())
}

// WeekDay returns the day of the week for a YYYYMMDD date,
// 0 for Sunday through 6 for Saturday.
func WeekDay(date uint32) int {
	return int(ToTime(date).Weekday())
}

// IsWeekend reports whether a YYYYMMDD date falls on Saturday or Sunday.
func IsWeekend(date uint32) bool {
	wd := ToTime(date).Weekday()

	return wd == time.Saturday || wd == time.Sunday
}

// AddDays shifts a YYYYMMDD date by the given number of calendar days.
// Month and year rollovers are handled by the time package.
func AddDays(date uint32, days int) uint32 {
	return FromTime(ToTime(date).AddDate(0, 0, days))
}

// NextDate returns the calendar day after the given YYYYMMDD date.
func NextDate(date uint32) uint32 {
	return AddDays(date, 1)
}

// MinuteOfDay converts an HHMM time of day into minutes since midnight.
func MinuteOfDay(hhmm uint32) int {
	return int(hhmm/100)*60 + int(hhmm%100)
}

// FromMinuteOfDay converts minutes since midnight into an HHMM time of day.
func FromMinuteOfDay(minutes int) uint32 {
	return uint32(minutes/60)*100 + uint32(minutes%60)
}

// PackDateTime packs a YYYYMMDD date and an HHMM time into a single
// YYYYMMDDHHMM integer, the wire form used for boundary timestamps.
func PackDateTime(date uint32, hhmm uint32) uint64 {
	return uint64(date)*10000 + uint64(hhmm)
}
