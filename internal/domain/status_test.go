package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestStatusClassFor(t *testing.T) {
	want := map[int]StatusClass{1: GoForLaunch, 2: ToBeDetermined, 8: ToBeConfirmed}
	for id := -1; id <= 10; id++ {
		got, ok := StatusClassFor(id)
		exp, eligible := want[id]
		if ok != eligible || got != exp {
			t.Errorf("id %d: got (%q, %v), want (%q, %v)", id, got, ok, exp, eligible)
		}
	}
}

func TestStatusLabelFor(t *testing.T) {
	cases := []struct {
		class StatusClass
		tag   StatusTag
	}{
		{GoForLaunch, StatusTag{"Go", ColorGo}},
		{ToBeDetermined, StatusTag{"TBD", ColorPending}},
		{ToBeConfirmed, StatusTag{"TBC", ColorUnconfirmed}},
	}
	for _, tc := range cases {
		if got := StatusLabelFor(tc.class); got != tc.tag {
			t.Errorf("%s: got %+v, want %+v", tc.class, got, tc.tag)
		}
	}
}

func TestFallbackMessage(t *testing.T) {
	msg, detail := FallbackMessage(fmt.Errorf("refresh: %w", &UnavailableError{Detail: "Internal Server Error"}))
	if msg != MessageUnavailable || detail != "Internal Server Error" {
		t.Errorf("unavailable: %q %q", msg, detail)
	}

	if msg, _ := FallbackMessage(fmt.Errorf("%w: %q", ErrUnknownTier, "x")); msg != MessageInvalidTier {
		t.Errorf("tier: %q", msg)
	}

	if msg, detail := FallbackMessage(errors.New("boom")); msg != MessageUnavailable || detail != "boom" {
		t.Errorf("other: %q %q", msg, detail)
	}
}
