package create_appointment

import "time"

// BuildTimestamp собирает время записи: календарный день date в часовом поясе loc,
// час hour, минуты и секунды = 0
func BuildTimestamp(date time.Time, hour int, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.Local
	}
	year, month, day := date.In(loc).Date()
	return time.Date(year, month, day, hour, 0, 0, 0, loc)
}
