package cli

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/davarch/launch-schedule/internal/application"
	"github.com/davarch/launch-schedule/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newWatchFixture(t *testing.T) (string, *application.RefreshUseCase, *application.Scheduler) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("display:\n  tier: medium\n"), 0o644))

	c, err := application.NewTierComposer(application.DefaultComposerConfig())
	require.NoError(t, err)
	uc := application.NewRefreshUseCase(&domain.MockSource{}, nil, nil, c)
	sched := application.NewScheduler(zap.NewNop(), uc, domain.TierMedium, time.Hour, "")
	return path, uc, sched
}

func TestWatchAndReload_StopsWithContext(t *testing.T) {
	path, uc, sched := newWatchFixture(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := watchAndReload(ctx, path, zap.NewNop(), uc, sched)
	require.NotNil(t, done)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}

func TestWatchAndReload_AppliesTierChange(t *testing.T) {
	path, uc, sched := newWatchFixture(t)
	t.Setenv("LAUNCH_TIER", "")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := watchAndReload(ctx, path, zap.NewNop(), uc, sched)
	require.NotNil(t, done)

	require.NoError(t, os.WriteFile(path, []byte("display:\n  tier: large\n"), 0o644))

	assert.Eventually(t, func() bool {
		return sched.Tier() == domain.TierLarge
	}, 3*time.Second, 20*time.Millisecond)

	cancel()
	<-done
}

func TestWatchAndReload_NoPath(t *testing.T) {
	_, uc, sched := newWatchFixture(t)
	assert.Nil(t, watchAndReload(context.Background(), "", zap.NewNop(), uc, sched))
}
