package snapshot_fs

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/davarch/launch-schedule/internal/domain"
)

// FSSink writes the latest refresh result for an external renderer to pick
// up. Each write replaces the file atomically.
type FSSink struct {
	path string
}

func New(path string) *FSSink { return &FSSink{path: path} }

type entryOut struct {
	Name   string `json:"name"`
	Status string `json:"status,omitempty"`
	Label  string `json:"label,omitempty"`
	Color  string `json:"color"`
	Time   string `json:"time,omitempty"`
	At     string `json:"at,omitempty"`
}

type snapshotOut struct {
	State     string     `json:"state"`
	Tier      string     `json:"tier,omitempty"`
	Message   string     `json:"message,omitempty"`
	Detail    string     `json:"detail,omitempty"`
	Primary   *entryOut  `json:"primary,omitempty"`
	Secondary []entryOut `json:"secondary,omitempty"`
	Retrieved int64      `json:"retrieved"`
}

func (c *FSSink) Write(_ context.Context, s domain.Snapshot) error {
	if c.path == "" {
		return errors.New("snapshot path is empty")
	}

	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return err
	}

	tmp := c.path + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")

	if err := enc.Encode(toOut(s)); err != nil {
		return err
	}

	if err := f.Close(); err != nil {
		return err
	}

	return os.Rename(tmp, c.path)
}

func toOut(s domain.Snapshot) snapshotOut {
	out := snapshotOut{
		State:     "error",
		Message:   s.Message,
		Detail:    s.Detail,
		Retrieved: s.Retrieved,
	}

	m := s.Model
	if m == nil {
		return out
	}

	out.State = string(m.State)
	out.Tier = string(m.Tier)
	if m.Primary != nil {
		p := toEntry(*m.Primary)
		out.Primary = &p
	}
	for _, e := range m.Secondary {
		out.Secondary = append(out.Secondary, toEntry(e))
	}

	return out
}

func toEntry(e domain.Entry) entryOut {
	out := entryOut{Name: e.Name, Color: string(e.Color)}
	if e.Detail != domain.DetailFull {
		return out
	}

	out.Status = domain.StatusLabelFor(e.StatusClass).Label
	out.Label = e.StatusLabel
	out.Time = e.TimeText
	if e.LaunchTime != nil {
		out.At = e.LaunchTime.UTC().Format(time.RFC3339)
	}
	return out
}
