package snapshot_fs

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/davarch/launch-schedule/internal/domain"
)

func TestSink_WriteCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "snap.json")

	at := time.Date(2024, 7, 11, 14, 30, 0, 0, time.UTC)
	c := New(path)
	s := domain.Snapshot{
		Model: &domain.PresentationModel{
			Tier:  domain.TierMedium,
			State: domain.StateReady,
			Primary: &domain.Entry{
				Name:        "Falcon 9 X",
				StatusClass: domain.GoForLaunch,
				Color:       domain.ColorGo,
				StatusLabel: "Go for Launch",
				LaunchTime:  &at,
				TimeText:    "14:30 11/07",
				Detail:      domain.DetailFull,
			},
			Secondary: []domain.Entry{{Name: "Electron", StatusClass: domain.ToBeConfirmed, Color: domain.ColorUnconfirmed, Detail: domain.DetailMinimal}},
		},
		Retrieved: 123,
	}
	if err := c.Write(context.Background(), s); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not created: %v", err)
	}

	var got snapshotOut
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if got.State != "ready" || got.Primary == nil || got.Primary.Status != "Go" || got.Primary.At != "2024-07-11T14:30:00Z" {
		t.Errorf("unexpected primary: %+v", got)
	}
	if len(got.Secondary) != 1 || got.Secondary[0].Color != "unconfirmed" {
		t.Errorf("unexpected secondary: %+v", got.Secondary)
	}
}

func TestSink_MinimalEntryHasNoLabelOrTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	at := time.Date(2024, 7, 12, 9, 0, 0, 0, time.UTC)
	primary := domain.Entry{Name: "A", StatusClass: domain.GoForLaunch, Color: domain.ColorGo, LaunchTime: &at, TimeText: "09:00 12/07", Detail: domain.DetailFull}
	secondary := []domain.Entry{
		{Name: "B", StatusClass: domain.ToBeDetermined, Color: domain.ColorPending, StatusLabel: "To Be Determined", LaunchTime: &at, TimeText: "09:00 12/07", Detail: domain.DetailMinimal},
	}
	s := domain.Snapshot{Model: &domain.PresentationModel{
		Tier:      domain.TierMedium,
		State:     domain.StateReady,
		Primary:   &primary,
		Secondary: secondary,
	}}
	if err := New(path).Write(context.Background(), s); err != nil {
		t.Fatal(err)
	}

	b, _ := os.ReadFile(path)
	var raw struct {
		Secondary []map[string]any `json:"secondary"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatal(err)
	}
	if len(raw.Secondary) != 1 {
		t.Fatalf("expected 1 secondary, got %d", len(raw.Secondary))
	}

	want := map[string]any{"name": "B", "color": "pending"}
	if len(raw.Secondary[0]) != len(want) || raw.Secondary[0]["name"] != "B" || raw.Secondary[0]["color"] != "pending" {
		t.Errorf("minimal entry leaked fields: %v", raw.Secondary[0])
	}
}

func TestSink_WriteFallback(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snap.json")
	s := domain.Snapshot{Message: domain.MessageUnavailable, Detail: "Internal Server Error"}
	if err := New(path).Write(context.Background(), s); err != nil {
		t.Fatal(err)
	}

	b, _ := os.ReadFile(path)
	var got snapshotOut
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatal(err)
	}
	if got.State != "error" || got.Detail != "Internal Server Error" || got.Primary != nil {
		t.Errorf("unexpected snapshot: %+v", got)
	}
}

func TestSink_EmptyPath(t *testing.T) {
	if err := New("").Write(context.Background(), domain.Snapshot{}); err == nil {
		t.Fatal("expected error")
	}
}
