package utils

import (
	"testing"
	"time"
)

func TestISOWeekRange(t *testing.T) {
	tests := []struct {
		year, week int
		wantStart  string
		wantEnd    string
	}{
		{2026, 1, "2025-12-29", "2026-01-04"},
		{2026, 37, "2026-09-07", "2026-09-13"},
		{2026, 53, "2026-12-28", "2027-01-03"},
		{2020, 1, "2019-12-30", "2020-01-05"},
		{2021, 1, "2021-01-04", "2021-01-10"},
	}
	for _, tt := range tests {
		start, end := ISOWeekRange(tt.year, tt.week)
		if got := start.Format("2006-01-02"); got != tt.wantStart {
			t.Errorf("ISOWeekRange(%d, %d) start = %s, want %s", tt.year, tt.week, got, tt.wantStart)
		}
		if got := end.Format("2006-01-02"); got != tt.wantEnd {
			t.Errorf("ISOWeekRange(%d, %d) end = %s, want %s", tt.year, tt.week, got, tt.wantEnd)
		}
	}
}

func TestISOWeekRangeRoundTrip(t *testing.T) {
	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	for day.Year() < 2027 {
		year, week := day.ISOWeek()
		start, end := ISOWeekRange(year, week)

		if start.Weekday() != time.Monday {
			t.Fatalf("week start %s is a %s, want Monday", start.Format("2006-01-02"), start.Weekday())
		}
		if day.Before(start) || day.After(end) {
			t.Fatalf("%s not inside ISOWeekRange(%d, %d) = [%s, %s]",
				day.Format("2006-01-02"), year, week,
				start.Format("2006-01-02"), end.Format("2006-01-02"))
		}
		day = day.AddDate(0, 0, 1)
	}
}

func TestHumanFormats(t *testing.T) {
	ts := time.Date(2026, time.September, 7, 14, 5, 0, 0, time.UTC)
	if got := HumanDate(ts); got != "2026-09-07" {
		t.Errorf("HumanDate() = %s, want 2026-09-07", got)
	}
	if got := HumanTimestamp(ts); got != "2026-09-07 14:05" {
		t.Errorf("HumanTimestamp() = %s, want 2026-09-07 14:05", got)
	}
}
