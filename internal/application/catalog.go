package application

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/davarch/launch-schedule/internal/domain"
)

// Filter projects the payload's results onto the launches that can be shown,
// keeping source order. A payload without a results array is unavailable; an
// empty array is not an error.
func Filter(p domain.Payload) ([]domain.EligibleLaunch, error) {
	raw := bytes.TrimSpace(p.Results)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return nil, &domain.UnavailableError{Detail: p.Detail}
	}

	var records []domain.RawLaunch
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, &domain.UnavailableError{Detail: p.Detail}
	}

	out := make([]domain.EligibleLaunch, 0, len(records))
	for _, r := range records {
		class, ok := domain.StatusClassFor(r.Status.ID)
		if !ok {
			continue
		}

		at, err := time.Parse(time.RFC3339, r.Net)
		if err != nil {
			continue
		}

		out = append(out, domain.EligibleLaunch{
			Name:          r.Name,
			LaunchTimeUTC: at.UTC(),
			StatusClass:   class,
			StatusLabel:   r.Status.Name,
			StatusAbbrev:  r.Status.Abbrev,
		})
	}

	return out, nil
}
