package domain

import (
	"errors"
	"testing"
	"time"
)

func TestFormatLaunchTime(t *testing.T) {
	ts := time.Date(2024, 7, 11, 14, 30, 0, 0, time.UTC)

	if got := FormatLaunchTime(ts, DayMonthFirst); got != "14:30 11/07" {
		t.Errorf("day-month: got %q", got)
	}
	if got := FormatLaunchTime(ts, MonthDayFirst); got != "14:30 07/11" {
		t.Errorf("month-day: got %q", got)
	}
	if got := FormatLaunchTime(ts, ""); got != "14:30 11/07" {
		t.Errorf("default order: got %q", got)
	}
}

func TestParseTier(t *testing.T) {
	cases := map[string]Tier{
		"compact":     TierCompact,
		"small":       TierCompact,
		"Medium":      TierMedium,
		" large ":     TierLarge,
		"extraLarge":  TierExtraLarge,
		"extra-large": TierExtraLarge,
		"xl":          TierExtraLarge,
	}
	for in, want := range cases {
		got, err := ParseTier(in)
		if err != nil || got != want {
			t.Errorf("ParseTier(%q) = %q, %v; want %q", in, got, err, want)
		}
	}

	if _, err := ParseTier("huge"); !errors.Is(err, ErrUnknownTier) {
		t.Errorf("expected ErrUnknownTier, got %v", err)
	}
}

func TestParseDateOrder(t *testing.T) {
	if o, err := ParseDateOrder(""); err != nil || o != DayMonthFirst {
		t.Errorf("default: %q, %v", o, err)
	}
	if o, err := ParseDateOrder("mm/dd"); err != nil || o != MonthDayFirst {
		t.Errorf("mm/dd: %q, %v", o, err)
	}
	if _, err := ParseDateOrder("yyyy"); err == nil {
		t.Error("expected error")
	}
}
