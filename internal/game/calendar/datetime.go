package calendar

import "fmt"

var monthNames = [MonthsPerYear]string{
	"Morning Star", "Sun's Dawn", "First Seed", "Rain's Hand", "Second Seed", "Midyear",
	"Sun's Height", "Last Seed", "Hearthfire", "Frostfall", "Sun's Dusk", "Evening Star",
}

var weekdayNames = [...]string{
	"Sundas", "Morndas", "Tirdas", "Middas", "Turdas", "Fredas", "Loredas",
}

const (
	dawnHour = 6
	duskHour = 18
)

// DateTime is a point in game time measured in minutes since the start of
// year zero.
type DateTime struct {
	Minutes uint32
}

// At returns the DateTime for a calendar position. Month and day are
// 1-based.
//
// Precondition: 1 <= month <= 12; 1 <= day <= 30; 0 <= hour < 24; 0 <= minute < 60.
func At(year, month, day, hour, minute int) DateTime {
	days := year*DaysPerYear + (month-1)*DaysPerMonth + (day - 1)
	return DateTime{Minutes: uint32(days*MinutesPerDay + hour*MinutesPerHour + minute)}
}

// Year returns the year number.
func (d DateTime) Year() int { return int(d.Minutes / MinutesPerYear) }

// DayOfYear returns the 1-based day of the year.
func (d DateTime) DayOfYear() int { return DayOfYear(d.Minutes) }

// Month returns the 1-based month.
func (d DateTime) Month() int { return (d.DayOfYear()-1)/DaysPerMonth + 1 }

// Day returns the 1-based day of the month.
func (d DateTime) Day() int { return (d.DayOfYear()-1)%DaysPerMonth + 1 }

// Hour returns the hour of the day in [0, 23].
func (d DateTime) Hour() int { return int(d.Minutes % MinutesPerDay / MinutesPerHour) }

// Minute returns the minute of the hour in [0, 59].
func (d DateTime) Minute() int { return int(d.Minutes % MinutesPerHour) }

// MonthName returns the month's name.
func (d DateTime) MonthName() string { return monthNames[d.Month()-1] }

// Weekday returns the day of the week's name.
func (d DateTime) Weekday() string {
	return weekdayNames[int(d.Minutes/MinutesPerDay)%len(weekdayNames)]
}

// IsDay reports whether the sun is up: from 06:00 until 17:59.
func (d DateTime) IsDay() bool {
	h := d.Hour()
	return h >= dawnHour && h < duskHour
}

// Add returns d advanced by minutes.
func (d DateTime) Add(minutes uint32) DateTime { return DateTime{Minutes: d.Minutes + minutes} }

// HolidayID returns the holiday regionIndex celebrates on d, or 0.
func (d DateTime) HolidayID(regionIndex int) int { return GetHolidayID(d.Minutes, regionIndex) }

// String formats d as "Fredas, 4 Last Seed 405, 13:07".
func (d DateTime) String() string {
	return fmt.Sprintf("%s, %d %s %d, %02d:%02d", d.Weekday(), d.Day(), d.MonthName(), d.Year(), d.Hour(), d.Minute())
}

// Surroundings tells recovery-rate calculations the time of day and whether
// the entity is indoors.
type Surroundings struct {
	Now    DateTime
	Inside bool
}

// IsDay reports whether it is daytime.
func (s Surroundings) IsDay() bool { return s.Now.IsDay() }

// IsInside reports whether the entity is indoors.
func (s Surroundings) IsInside() bool { return s.Inside }
