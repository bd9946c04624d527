package engine

import (
	"testing"
	"time"
)

func TestLogicDay(t *testing.T) {
	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{
			name: "midday belongs to same date",
			ts:   time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC),
			want: "2026-03-15",
		},
		{
			name: "exactly at boundary belongs to same date",
			ts:   time.Date(2026, 3, 15, 6, 0, 0, 0, time.UTC),
			want: "2026-03-15",
		},
		{
			name: "just before boundary belongs to previous date",
			ts:   time.Date(2026, 3, 15, 5, 59, 59, 0, time.UTC),
			want: "2026-03-14",
		},
		{
			name: "midnight belongs to previous date",
			ts:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			want: "2026-03-14",
		},
		{
			name: "late evening belongs to same date",
			ts:   time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC),
			want: "2026-03-15",
		},
		{
			name: "early morning on the 1st rolls back a month",
			ts:   time.Date(2026, 3, 1, 2, 0, 0, 0, time.UTC),
			want: "2026-02-28",
		},
		{
			name: "early morning on Jan 1st rolls back a year",
			ts:   time.Date(2026, 1, 1, 3, 30, 0, 0, time.UTC),
			want: "2025-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LogicDay(tt.ts); got != tt.want {
				t.Errorf("LogicDay() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDayDistance(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want int
	}{
		{name: "same day", from: "2026-03-15", to: "2026-03-15", want: 0},
		{name: "adjacent days", from: "2026-03-14", to: "2026-03-15", want: 1},
		{name: "two days apart", from: "2026-03-13", to: "2026-03-15", want: 2},
		{name: "order does not matter", from: "2026-03-15", to: "2026-03-13", want: 2},
		{name: "across month boundary", from: "2026-02-28", to: "2026-03-01", want: 1},
		{name: "across year boundary", from: "2025-12-31", to: "2026-01-01", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := dayDistance(tt.from, tt.to); got != tt.want {
				t.Errorf("dayDistance() = %v, want %v", got, tt.want)
			}
		})
	}
}
