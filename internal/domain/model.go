package domain

import (
	"encoding/json"
	"time"
)

type RawStatus struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Abbrev string `json:"abbrev"`
}

type RawLaunch struct {
	Name   string    `json:"name"`
	Net    string    `json:"net"`
	Status RawStatus `json:"status"`
}

// Payload is the decoded upcoming-launch document. Results stays raw so that
// an absent or malformed list can be told apart from an empty one.
type Payload struct {
	Results json.RawMessage `json:"results,omitempty"`
	Detail  string          `json:"detail,omitempty"`
}

type EligibleLaunch struct {
	Name          string
	LaunchTimeUTC time.Time
	StatusClass   StatusClass
	StatusLabel   string
	StatusAbbrev  string
}

type DetailLevel string

const (
	DetailFull    DetailLevel = "full"
	DetailMinimal DetailLevel = "minimal"
)

type ModelState string

const (
	StateReady ModelState = "ready"
	StateEmpty ModelState = "empty"
)

// Entry is one displayed launch. Minimal entries carry only the name and
// status color; labels and times are left empty.
type Entry struct {
	Name         string      `json:"name"`
	StatusClass  StatusClass `json:"status_class"`
	Color        ColorClass  `json:"color"`
	StatusLabel  string      `json:"status_label,omitempty"`
	StatusAbbrev string      `json:"status_abbrev,omitempty"`
	LaunchTime   *time.Time  `json:"launch_time,omitempty"`
	TimeText     string      `json:"time_text,omitempty"`
	Detail       DetailLevel `json:"detail"`
}

type PresentationModel struct {
	Tier      Tier       `json:"tier"`
	State     ModelState `json:"state"`
	Primary   *Entry     `json:"primary,omitempty"`
	Secondary []Entry    `json:"secondary,omitempty"`
}

// Len counts primary and secondary entries.
func (m PresentationModel) Len() int {
	if m.Primary == nil {
		return 0
	}
	return 1 + len(m.Secondary)
}

func (m PresentationModel) Empty() bool { return m.State == StateEmpty }

// Snapshot is what a render hand-off receives after one refresh: either a
// model or a fallback message with optional detail.
type Snapshot struct {
	Model     *PresentationModel
	Message   string
	Detail    string
	Retrieved int64
}
