package render_term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/davarch/launch-schedule/internal/domain"
	"github.com/stretchr/testify/assert"
)

func model() domain.PresentationModel {
	return domain.PresentationModel{
		Tier:  domain.TierLarge,
		State: domain.StateReady,
		Primary: &domain.Entry{
			Name: "Falcon 9 X", StatusClass: domain.GoForLaunch, Color: domain.ColorGo,
			StatusLabel: "Go for Launch", TimeText: "14:30 11/07", Detail: domain.DetailFull,
		},
		Secondary: []domain.Entry{
			{Name: "Electron", StatusClass: domain.ToBeDetermined, Color: domain.ColorPending, TimeText: "09:00 12/07", Detail: domain.DetailFull},
			{Name: "Vulcan", StatusClass: domain.ToBeConfirmed, Color: domain.ColorUnconfirmed, Detail: domain.DetailMinimal},
		},
	}
}

func TestRenderer_Model(t *testing.T) {
	out := New(&bytes.Buffer{}).Model(model())

	for _, want := range []string{"Falcon 9 X", "Go for Launch", "14:30 11/07", "• Electron", "TBD 09:00 12/07", "• Vulcan"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Electron"), strings.Index(out, "Vulcan"))
}

func TestRenderer_EmptyAndFallback(t *testing.T) {
	r := New(&bytes.Buffer{})

	out := r.Model(domain.PresentationModel{Tier: domain.TierMedium, State: domain.StateEmpty})
	assert.Contains(t, out, domain.MessageNoLaunches)

	out = r.Fallback(domain.MessageUnavailable, "Internal Server Error")
	assert.Contains(t, out, "Unable to fetch upcoming launches.")
	assert.Contains(t, out, "Internal Server Error")
}
