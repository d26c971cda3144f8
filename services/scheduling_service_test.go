package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/adamzur/lesson_tutor/models"
)

// 2026-09-07 is a Monday.
var monday = time.Date(2026, time.September, 7, 0, 0, 0, 0, time.UTC)

func mondayRange(hourFrom, minuteFrom, hourTo, minuteTo int) models.AvailableHourRange {
	return models.AvailableHourRange{
		Weekday:    1,
		HourFrom:   hourFrom,
		MinuteFrom: minuteFrom,
		HourTo:     hourTo,
		MinuteTo:   minuteTo,
	}
}

func TestISOWeekday(t *testing.T) {
	if got := ISOWeekday(monday); got != 1 {
		t.Errorf("ISOWeekday(monday) = %d, want 1", got)
	}
	sunday := monday.AddDate(0, 0, 6)
	if got := ISOWeekday(sunday); got != 7 {
		t.Errorf("ISOWeekday(sunday) = %d, want 7", got)
	}
}

func TestIsWindowCovered(t *testing.T) {
	nineToTwelve := []models.AvailableHourRange{mondayRange(9, 0, 12, 0)}

	tests := []struct {
		name   string
		ranges []models.AvailableHourRange
		date   time.Time
		window Window
		want   bool
	}{
		{
			name:   "window inside range",
			ranges: nineToTwelve,
			date:   monday,
			window: Window{StartHour: 10, EndHour: 11},
			want:   true,
		},
		{
			name:   "window equals range exactly",
			ranges: nineToTwelve,
			date:   monday,
			window: Window{StartHour: 9, EndHour: 12},
			want:   true,
		},
		{
			name:   "window starts before range",
			ranges: nineToTwelve,
			date:   monday,
			window: Window{StartHour: 8, EndHour: 9, EndMinute: 30},
			want:   false,
		},
		{
			name:   "window ends after range",
			ranges: nineToTwelve,
			date:   monday,
			window: Window{StartHour: 11, EndHour: 12, EndMinute: 30},
			want:   false,
		},
		{
			name:   "start minute before range start minute on same hour",
			ranges: []models.AvailableHourRange{mondayRange(9, 30, 12, 0)},
			date:   monday,
			window: Window{StartHour: 9, StartMinute: 15, EndHour: 11},
			want:   false,
		},
		{
			name:   "start minute on range start minute on same hour",
			ranges: []models.AvailableHourRange{mondayRange(9, 30, 12, 0)},
			date:   monday,
			window: Window{StartHour: 9, StartMinute: 30, EndHour: 11},
			want:   true,
		},
		{
			name:   "end minute past range end minute on same hour",
			ranges: []models.AvailableHourRange{mondayRange(9, 0, 12, 30)},
			date:   monday,
			window: Window{StartHour: 10, EndHour: 12, EndMinute: 45},
			want:   false,
		},
		{
			name: "window spanning two adjacent ranges is not covered",
			ranges: []models.AvailableHourRange{
				mondayRange(9, 0, 11, 0),
				mondayRange(11, 0, 13, 0),
			},
			date:   monday,
			window: Window{StartHour: 10, EndHour: 12},
			want:   false,
		},
		{
			name:   "empty weekday fails closed",
			ranges: nineToTwelve,
			date:   monday.AddDate(0, 0, 1),
			window: Window{StartHour: 10, EndHour: 11},
			want:   false,
		},
		{
			name:   "no ranges at all fails closed",
			ranges: nil,
			date:   monday,
			window: Window{StartHour: 10, EndHour: 11},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsWindowCovered(tt.ranges, tt.date, tt.window); got != tt.want {
				t.Errorf("IsWindowCovered() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsWindowCoveredProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 2000; i++ {
		var ranges []models.AvailableHourRange
		for j := 0; j < rng.Intn(4); j++ {
			from := rng.Intn(23 * 60)
			to := from + 1 + rng.Intn(24*60-from-1)
			ranges = append(ranges, models.AvailableHourRange{
				Weekday:    1 + rng.Intn(7),
				HourFrom:   from / 60,
				MinuteFrom: from % 60,
				HourTo:     to / 60,
				MinuteTo:   to % 60,
			})
		}

		start := rng.Intn(23 * 60)
		end := start + 1 + rng.Intn(24*60-start-1)
		w := Window{
			StartHour:   start / 60,
			StartMinute: start % 60,
			EndHour:     end / 60,
			EndMinute:   end % 60,
		}
		date := monday.AddDate(0, 0, rng.Intn(7))

		covering := false
		for _, r := range ranges {
			if r.Weekday == ISOWeekday(date) &&
				r.FromMinutes() <= w.StartMinutes() && r.ToMinutes() >= w.EndMinutes() {
				covering = true
			}
		}

		if got := IsWindowCovered(ranges, date, w); got != covering {
			t.Fatalf("iteration %d: IsWindowCovered() = %v, want %v (ranges=%v window=%v)",
				i, got, covering, ranges, w)
		}
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"disjoint", 9 * 60, 10 * 60, 11 * 60, 12 * 60, false},
		{"touching endpoints do not conflict", 9 * 60, 10 * 60, 10 * 60, 11 * 60, false},
		{"partial overlap", 10 * 60, 11 * 60, 10*60 + 30, 11*60 + 30, true},
		{"containment", 9 * 60, 12 * 60, 10 * 60, 11 * 60, true},
		{"identical windows", 10 * 60, 11 * 60, 10 * 60, 11 * 60, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOverlapsProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	for i := 0; i < 2000; i++ {
		aStart := rng.Intn(23 * 60)
		aEnd := aStart + 1 + rng.Intn(24*60-aStart-1)
		bStart := rng.Intn(23 * 60)
		bEnd := bStart + 1 + rng.Intn(24*60-bStart-1)

		ab := Overlaps(aStart, aEnd, bStart, bEnd)
		ba := Overlaps(bStart, bEnd, aStart, aEnd)
		if ab != ba {
			t.Fatalf("overlap is not symmetric for [%d,%d) and [%d,%d)", aStart, aEnd, bStart, bEnd)
		}

		if !Overlaps(aStart, aEnd, aStart, aEnd) {
			t.Fatalf("window [%d,%d) does not conflict with itself", aStart, aEnd)
		}
	}
}

func TestStartInstant(t *testing.T) {
	w := Window{StartHour: 10, StartMinute: 30, EndHour: 11, EndMinute: 30}
	got := StartInstant(monday, w)
	want := time.Date(2026, time.September, 7, 10, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("StartInstant() = %v, want %v", got, want)
	}
}
