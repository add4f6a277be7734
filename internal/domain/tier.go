package domain

import (
	"fmt"
	"strings"
	"time"
)

type Tier string

const (
	TierCompact    Tier = "compact"
	TierMedium     Tier = "medium"
	TierLarge      Tier = "large"
	TierExtraLarge Tier = "extra_large"
)

var Tiers = []Tier{TierCompact, TierMedium, TierLarge, TierExtraLarge}

func (t Tier) Valid() bool {
	for _, v := range Tiers {
		if v == t {
			return true
		}
	}
	return false
}

// ParseTier accepts the canonical names plus the host widget-family
// spellings (small, extraLarge, extra-large, xl).
func ParseTier(s string) (Tier, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "compact", "small":
		return TierCompact, nil
	case "medium":
		return TierMedium, nil
	case "large":
		return TierLarge, nil
	case "extra_large", "extra-large", "extralarge", "xl":
		return TierExtraLarge, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTier, s)
}

type DateOrder string

const (
	DayMonthFirst DateOrder = "day_month"
	MonthDayFirst DateOrder = "month_day"
)

func ParseDateOrder(s string) (DateOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "day_month", "dd/mm", "dmy":
		return DayMonthFirst, nil
	case "month_day", "mm/dd", "mdy":
		return MonthDayFirst, nil
	}
	return "", fmt.Errorf("unknown date order %q", s)
}

// FormatLaunchTime renders "HH:mm dd/MM" or "HH:mm MM/dd" in t's location.
func FormatLaunchTime(t time.Time, order DateOrder) string {
	if order == MonthDayFirst {
		return t.Format("15:04 01/02")
	}
	return t.Format("15:04 02/01")
}
