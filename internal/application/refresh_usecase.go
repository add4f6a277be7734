package application

import (
	"context"
	"sync"
	"time"

	"github.com/davarch/launch-schedule/internal/domain"
)

type primaryKey struct {
	name   string
	status domain.StatusClass
}

type RefreshUseCase struct {
	src  domain.LaunchSource
	note domain.Notifier
	sink domain.ModelSink

	mu       sync.Mutex
	composer *TierComposer
	last     *primaryKey
}

// NewRefreshUseCase wires one fetch-filter-compose pipeline. note and sink may
// be nil.
func NewRefreshUseCase(src domain.LaunchSource, note domain.Notifier, sink domain.ModelSink, c *TierComposer) *RefreshUseCase {
	return &RefreshUseCase{src: src, note: note, sink: sink, composer: c}
}

// RefreshOnce returns either a model (ready or empty) or one of
// *domain.UnavailableError and domain.ErrUnknownTier. A context error is
// returned as is and nothing is published.
func (uc *RefreshUseCase) RefreshOnce(ctx context.Context, tier domain.Tier) (domain.PresentationModel, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	payload, err := uc.src.Upcoming(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return domain.PresentationModel{}, ctx.Err()
		}
		err = &domain.UnavailableError{Detail: err.Error()}
		uc.publish(ctx, nil, err)
		return domain.PresentationModel{}, err
	}

	launches, err := Filter(payload)
	if err != nil {
		uc.publish(ctx, nil, err)
		return domain.PresentationModel{}, err
	}

	m, err := uc.composer.Compose(launches, tier)
	if err != nil {
		uc.publish(ctx, nil, err)
		return domain.PresentationModel{}, err
	}

	uc.publish(ctx, &m, nil)
	uc.notifyIfChanged(ctx, m)

	return m, nil
}

// SetComposer swaps the tier table used by later refreshes.
func (uc *RefreshUseCase) SetComposer(c *TierComposer) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.composer = c
}

func (uc *RefreshUseCase) publish(ctx context.Context, m *domain.PresentationModel, err error) {
	if uc.sink == nil {
		return
	}

	s := domain.Snapshot{Model: m, Retrieved: time.Now().Unix()}
	if err != nil {
		s.Message, s.Detail = domain.FallbackMessage(err)
	} else if m.Empty() {
		s.Message = domain.MessageNoLaunches
	}
	_ = uc.sink.Write(ctx, s)
}

func (uc *RefreshUseCase) notifyIfChanged(ctx context.Context, m domain.PresentationModel) {
	if m.Primary == nil {
		uc.last = nil
		return
	}

	p := m.Primary
	if uc.last != nil && uc.last.name == p.Name && uc.last.status == p.StatusClass {
		return
	}

	uc.last = &primaryKey{p.Name, p.StatusClass}

	if uc.note == nil {
		return
	}
	_ = uc.note.Notify(ctx, titleFor(p.StatusClass), p.Name+"\n"+p.TimeText, "")
}

func titleFor(c domain.StatusClass) string {
	switch c {
	case domain.GoForLaunch:
		return "🚀 Next launch: Go"
	case domain.ToBeDetermined:
		return "🕓 Next launch: TBD"
	case domain.ToBeConfirmed:
		return "⏳ Next launch: TBC"
	default:
		return "ℹ️ Next launch"
	}
}
