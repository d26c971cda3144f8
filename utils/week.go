package utils

import "time"

// ISOWeekRange returns the Monday and Sunday dates of an ISO week, at
// midnight UTC. January 4th is always inside week 1, so the range is
// anchored there.
func ISOWeekRange(year, week int) (time.Time, time.Time) {
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)

	wd := int(jan4.Weekday())
	if wd == 0 {
		wd = 7
	}
	week1Monday := jan4.AddDate(0, 0, 1-wd)

	start := week1Monday.AddDate(0, 0, (week-1)*7)
	end := start.AddDate(0, 0, 6)
	return start, end
}

func HumanDate(t time.Time) string {
	return t.Format("2006-01-02")
}

func HumanTimestamp(t time.Time) string {
	return t.Format("2006-01-02 15:04")
}
