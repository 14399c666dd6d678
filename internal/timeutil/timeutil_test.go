package timeutil

import (
	"testing"
	"time"
)

func TestWeekday(t *testing.T) {
	cases := []struct {
		in   time.Weekday
		want int
	}{
		{time.Sunday, 6},
		{time.Monday, 0},
		{time.Tuesday, 1},
		{time.Wednesday, 2},
		{time.Thursday, 3},
		{time.Friday, 4},
		{time.Saturday, 5},
	}

	for _, tc := range cases {
		t.Run(tc.in.String(), func(t *testing.T) {
			got := Weekday(tc.in)
			if got != tc.want {
				t.Errorf("expected %s to map to %d, but got: %d", tc.in, tc.want, got)
			}
		})
	}
}

func TestNextAt(t *testing.T) {
	loc := time.UTC
	now := time.Date(2024, time.June, 26, 15, 30, 0, 0, loc)

	cases := []struct {
		name         string
		hour, minute int
		want         time.Time
	}{
		{"later today", 18, 5, time.Date(2024, time.June, 26, 18, 5, 0, 0, loc)},
		{"earlier today rolls over", 11, 0, time.Date(2024, time.June, 27, 11, 0, 0, 0, loc)},
		{"exactly now rolls over", 15, 30, time.Date(2024, time.June, 27, 15, 30, 0, 0, loc)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := NextAt(now, tc.hour, tc.minute)
			if !got.Equal(tc.want) {
				t.Errorf("expected %v, but got: %v", tc.want, got)
			}
		})
	}
}

func TestSecsToMinsAndSecs(t *testing.T) {
	cases := []struct {
		in         float64
		mins, secs int
	}{
		{0, 0, 0},
		{59.2, 1, 0},
		{60, 1, 0},
		{125, 2, 5},
		{-3, 0, 0},
	}

	for _, tc := range cases {
		m, s := SecsToMinsAndSecs(tc.in)
		if m != tc.mins || s != tc.secs {
			t.Errorf("%v: expected %02d:%02d, but got: %02d:%02d", tc.in, tc.mins, tc.secs, m, s)
		}
	}
}
