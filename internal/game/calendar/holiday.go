// Package calendar implements the game calendar: a 360-day year of twelve
// 30-day months, holiday lookup, and the day/night oracle used by recovery
// rates.
package calendar

const (
	MinutesPerHour = 60
	MinutesPerDay  = 1440
	DaysPerMonth   = 30
	MonthsPerYear  = 12
	DaysPerYear    = DaysPerMonth * MonthsPerYear
	MinutesPerYear = MinutesPerDay * DaysPerYear

	// lastHolidayDay is the last day of the year a holiday can fall on.
	lastHolidayDay = 355
	// allRegions marks a holiday celebrated everywhere.
	allRegions = 0xFF
)

// holidayRegions maps holiday index to the celebrating region index plus one.
var holidayRegions = [...]byte{
	0xFF, 0x19, 0x01, 0xFF, 0x1D, 0x05, 0x19, 0x06, 0x3C, 0xFF, 0x29, 0x1A,
	0xFF, 0x02, 0x19, 0x01, 0x0E, 0x12, 0x14, 0xFF, 0xFF, 0x1C, 0x21, 0x1F, 0x2C, 0xFF, 0x12,
	0x23, 0xFF, 0x38, 0xFF, 0x01, 0x30, 0x29, 0x0B, 0x16, 0xFF, 0xFF, 0x11, 0x17, 0x14, 0x01,
	0xFF, 0x13, 0xFF, 0x33, 0x3C, 0x2E, 0xFF, 0xFF, 0x01, 0x2D, 0x18,
}

// holidayDays maps holiday index to the day of the year it falls on.
var holidayDays = [...]int{
	0x01, 0x02, 0x0C, 0x0F, 0x10, 0x12, 0x20, 0x23, 0x26, 0x2E, 0x39, 0x3A,
	0x43, 0x45, 0x55, 0x56, 0x5B, 0x67, 0x6E, 0x76, 0x7F, 0x81, 0x8C, 0x96, 0x97, 0xA6, 0xAD,
	0xAE, 0xBE, 0xC0, 0xC8, 0xD1, 0xD4, 0xDD, 0xE0, 0xE7, 0xED, 0xF3, 0xF6, 0xFC, 0x103, 0x113,
	0x11B, 0x125, 0x12C, 0x12F, 0x134, 0x13E, 0x140, 0x159, 0x15C, 0x162, 0x163,
}

// HolidayCount is the number of holidays in the table.
const HolidayCount = len(holidayDays)

// GetHolidayID returns the 1-based id of the holiday region regionIndex
// celebrates at gameMinutes, or 0 when there is none. When two holidays
// match, the lower id wins.
//
// Postcondition: Returns a value in [0, HolidayCount]; always 0 after day 355.
func GetHolidayID(gameMinutes uint32, regionIndex int) int {
	day := DayOfYear(gameMinutes)
	if day > lastHolidayDay {
		return 0
	}
	for i, d := range holidayDays {
		region := holidayRegions[i]
		if d == day && (region == allRegions || int(region) == regionIndex+1) {
			return i + 1
		}
	}
	return 0
}

// HolidayDay returns the day of the year holiday id falls on.
//
// Postcondition: ok is false when id is outside [1, HolidayCount].
func HolidayDay(id int) (day int, ok bool) {
	if id < 1 || id > HolidayCount {
		return 0, false
	}
	return holidayDays[id-1], true
}

// DayOfYear returns the 1-based day of the year at gameMinutes.
//
// Postcondition: Returns a value in [1, DaysPerYear].
func DayOfYear(gameMinutes uint32) int {
	return int(gameMinutes%MinutesPerYear/MinutesPerDay) + 1
}
