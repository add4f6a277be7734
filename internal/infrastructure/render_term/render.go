package render_term

import (
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davarch/launch-schedule/internal/domain"
)

var statusColors = map[domain.ColorClass]lipgloss.Color{
	domain.ColorGo:          lipgloss.Color("#22ba48"),
	domain.ColorPending:     lipgloss.Color("#ff8c00"),
	domain.ColorUnconfirmed: lipgloss.Color("#fdd835"),
}

// Renderer draws a presentation model as terminal text. Color output follows
// the capabilities of the writer it was created for.
type Renderer struct {
	r         *lipgloss.Renderer
	primary   lipgloss.Style
	secondary lipgloss.Style
	muted     lipgloss.Style
	badge     lipgloss.Style
}

func New(w io.Writer) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		r:         r,
		primary:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffffff")),
		secondary: r.NewStyle().Foreground(lipgloss.Color("#ffffff")),
		muted:     r.NewStyle().Foreground(lipgloss.Color("#999999")),
		badge:     r.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#1e1e1e")),
	}
}

func (r *Renderer) Model(m domain.PresentationModel) string {
	if m.Primary == nil {
		return r.Fallback(domain.MessageNoLaunches, "")
	}

	lines := []string{
		r.primary.Render(m.Primary.Name),
		r.info(*m.Primary),
	}

	if len(m.Secondary) > 0 {
		lines = append(lines, "")
	}
	for _, e := range m.Secondary {
		lines = append(lines, r.row(e))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...) + "\n"
}

func (r *Renderer) Fallback(message, detail string) string {
	var b strings.Builder
	b.WriteString(r.primary.Render(message))
	b.WriteString("\n")
	if detail != "" {
		b.WriteString(r.muted.Render(detail))
		b.WriteString("\n")
	}
	return b.String()
}

func (r *Renderer) info(e domain.Entry) string {
	label := e.StatusLabel
	if label == "" {
		label = domain.StatusLabelFor(e.StatusClass).Label
	}
	badge := r.badge.Background(statusColors[e.Color]).Render(label)
	return lipgloss.JoinHorizontal(lipgloss.Center, badge, "  ", r.muted.Render(e.TimeText))
}

func (r *Renderer) row(e domain.Entry) string {
	point := r.r.NewStyle().Bold(true).Foreground(statusColors[e.Color]).Render("•")
	line := point + " " + r.secondary.Render(e.Name)
	if e.Detail == domain.DetailFull {
		line += "  " + r.muted.Render(domain.StatusLabelFor(e.StatusClass).Label+" "+e.TimeText)
	}
	return line
}
