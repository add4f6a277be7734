package cli

import (
	"context"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/davarch/launch-schedule/internal/application"
	"github.com/davarch/launch-schedule/internal/domain"
	"github.com/davarch/launch-schedule/internal/infrastructure/config"
	"github.com/davarch/launch-schedule/internal/infrastructure/logging"
	"github.com/davarch/launch-schedule/internal/infrastructure/notify_libnotify"
	"github.com/davarch/launch-schedule/internal/infrastructure/snapshot_fs"
	"github.com/davarch/launch-schedule/internal/infrastructure/spacedevs_http"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Refresh launches periodically, write the snapshot and notify on changes",
	Run: func(cmd *cobra.Command, args []string) {
		log := logging.New()
		defer func() { _ = log.Sync() }()

		cfg, err := config.Load(cfgPath)
		if err != nil {
			log.Fatal("config", zap.Error(err))
		}

		composer, err := newComposer(cfg)
		if err != nil {
			log.Fatal("display config", zap.Error(err))
		}

		tier, err := domain.ParseTier(cfg.Display.Tier)
		if err != nil {
			log.Fatal("display config", zap.Error(err))
		}

		src := spacedevs_http.New(cfg.API.BaseURL, cfg.API.Limit, cfg.API.Timeout)
		sink := snapshot_fs.New(cfg.Snapshot.Path)

		var note domain.Notifier
		if cfg.Poll.Notify {
			note = notify_libnotify.NewSoft(notifyOptions(cfg))
		}

		uc := application.NewRefreshUseCase(src, note, sink, composer)
		sched := application.NewScheduler(log, uc, tier, cfg.Poll.Interval, cfg.Poll.PauseFile)

		ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		watchAndReload(ctx, cfgPath, log, uc, sched)

		log.Info("start",
			zap.String("version", version),
			zap.String("tier", string(tier)),
			zap.Duration("every", cfg.Poll.Interval),
			zap.String("snapshot", cfg.Snapshot.Path),
			zap.String("api", cfg.API.BaseURL),
			zap.String("pause_file", cfg.Poll.PauseFile),
		)
		sched.Run(ctx)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// watchAndReload re-reads the config file on change and pushes the tier and
// capacity table into the running scheduler. Invalid edits are logged and
// ignored. The watcher stops with ctx; the returned channel is closed once it
// has, and is nil when no watcher was started.
func watchAndReload(ctx context.Context, cfgPath string, log *zap.Logger, uc *application.RefreshUseCase, sched *application.Scheduler) <-chan struct{} {
	if cfgPath == "" {
		return nil
	}

	dir := filepath.Dir(cfgPath)
	base := filepath.Base(cfgPath)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		log.Warn("fsnotify init failed", zap.Error(err))
		return nil
	}

	if err := w.Add(dir); err != nil {
		log.Warn("fsnotify add dir failed", zap.String("dir", dir), zap.Error(err))
		_ = w.Close()
		return nil
	}

	reload := func() {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			log.Warn("config reload failed", zap.Error(err))
			return
		}

		composer, err := newComposer(cfg)
		if err != nil {
			log.Warn("config reload: display", zap.Error(err))
			return
		}

		tier, err := domain.ParseTier(cfg.Display.Tier)
		if err != nil {
			log.Warn("config reload: tier", zap.Error(err))
			return
		}

		uc.SetComposer(composer)
		sched.UpdateTier(tier)
	}

	done := make(chan struct{})
	go func() {
		var timer *time.Timer
		defer func() {
			if timer != nil {
				timer.Stop()
			}
			_ = w.Close()
			close(done)
		}()

		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}

				if filepath.Base(ev.Name) != base {
					continue
				}

				if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					if timer == nil {
						timer = time.AfterFunc(300*time.Millisecond, reload)
					} else {
						timer.Reset(300 * time.Millisecond)
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Warn("fsnotify error", zap.Error(err))
			}
		}
	}()

	return done
}
