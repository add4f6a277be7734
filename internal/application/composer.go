package application

import (
	"fmt"
	"time"

	"github.com/davarch/launch-schedule/internal/domain"
)

// ReducedLargeCapacity is the large/extra-large capacity of the desktop
// widget variant.
const ReducedLargeCapacity = 5

type TierSpec struct {
	Capacity int
	Detail   domain.DetailLevel
}

// ComposerConfig holds the per-tier capacity table and date settings.
// Location is the zone launch times are shown in; nil means UTC.
type ComposerConfig struct {
	Tiers     map[domain.Tier]TierSpec
	DateOrder domain.DateOrder
	Location  *time.Location
}

func DefaultComposerConfig() ComposerConfig {
	return ComposerConfig{
		Tiers: map[domain.Tier]TierSpec{
			domain.TierCompact:    {Capacity: 1, Detail: domain.DetailFull},
			domain.TierMedium:     {Capacity: 4, Detail: domain.DetailMinimal},
			domain.TierLarge:      {Capacity: 6, Detail: domain.DetailFull},
			domain.TierExtraLarge: {Capacity: 6, Detail: domain.DetailFull},
		},
		DateOrder: domain.DayMonthFirst,
		Location:  time.UTC,
	}
}

// WithCapacity returns a copy with one tier's capacity replaced.
func (c ComposerConfig) WithCapacity(t domain.Tier, capacity int) ComposerConfig {
	tiers := make(map[domain.Tier]TierSpec, len(c.Tiers))
	for k, v := range c.Tiers {
		tiers[k] = v
	}
	spec := tiers[t]
	spec.Capacity = capacity
	if spec.Detail == "" {
		spec.Detail = domain.DetailFull
	}
	tiers[t] = spec
	c.Tiers = tiers
	return c
}

func (c ComposerConfig) WithReducedLarge() ComposerConfig {
	return c.WithCapacity(domain.TierLarge, ReducedLargeCapacity).
		WithCapacity(domain.TierExtraLarge, ReducedLargeCapacity)
}

type TierComposer struct {
	tiers map[domain.Tier]TierSpec
	order domain.DateOrder
	loc   *time.Location
}

// NewTierComposer validates cfg. Tiers missing from cfg.Tiers keep their
// default spec, so every known tier can be composed.
func NewTierComposer(cfg ComposerConfig) (*TierComposer, error) {
	tiers := DefaultComposerConfig().Tiers
	for t, spec := range cfg.Tiers {
		if !t.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownTier, t)
		}
		if spec.Capacity < 1 {
			return nil, fmt.Errorf("tier %s: capacity must be at least 1, got %d", t, spec.Capacity)
		}
		switch spec.Detail {
		case domain.DetailFull, domain.DetailMinimal:
		default:
			return nil, fmt.Errorf("tier %s: unknown detail level %q", t, spec.Detail)
		}
		tiers[t] = spec
	}

	order := cfg.DateOrder
	if order == "" {
		order = domain.DayMonthFirst
	}
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	return &TierComposer{tiers: tiers, order: order, loc: loc}, nil
}

func (c *TierComposer) Spec(t domain.Tier) (TierSpec, bool) {
	spec, ok := c.tiers[t]
	return spec, ok
}

// Compose shapes launches for tier. The first launch is the primary entry at
// full detail; up to capacity-1 following launches become secondaries at the
// tier's detail level. The tail beyond capacity is dropped.
func (c *TierComposer) Compose(launches []domain.EligibleLaunch, tier domain.Tier) (domain.PresentationModel, error) {
	spec, ok := c.tiers[tier]
	if !ok {
		return domain.PresentationModel{}, fmt.Errorf("%w: %q", domain.ErrUnknownTier, tier)
	}

	if len(launches) == 0 {
		return domain.PresentationModel{Tier: tier, State: domain.StateEmpty}, nil
	}

	primary := c.entry(launches[0], domain.DetailFull)
	m := domain.PresentationModel{
		Tier:    tier,
		State:   domain.StateReady,
		Primary: &primary,
	}

	n := min(len(launches)-1, spec.Capacity-1)
	if n > 0 {
		m.Secondary = make([]domain.Entry, 0, n)
		for _, l := range launches[1 : 1+n] {
			m.Secondary = append(m.Secondary, c.entry(l, spec.Detail))
		}
	}

	return m, nil
}

func (c *TierComposer) entry(l domain.EligibleLaunch, detail domain.DetailLevel) domain.Entry {
	e := domain.Entry{
		Name:        l.Name,
		StatusClass: l.StatusClass,
		Color:       domain.StatusLabelFor(l.StatusClass).Color,
		Detail:      detail,
	}
	if detail == domain.DetailFull {
		at := l.LaunchTimeUTC
		e.LaunchTime = &at
		e.StatusLabel = l.StatusLabel
		e.StatusAbbrev = l.StatusAbbrev
		e.TimeText = domain.FormatLaunchTime(l.LaunchTimeUTC.In(c.loc), c.order)
	}
	return e
}
