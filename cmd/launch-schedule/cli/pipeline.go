package cli

import (
	"time"

	"github.com/davarch/launch-schedule/internal/application"
	"github.com/davarch/launch-schedule/internal/infrastructure/config"
	"github.com/davarch/launch-schedule/internal/infrastructure/notify_libnotify"
	"github.com/spf13/cobra"
)

func newComposer(cfg config.Config) (*application.TierComposer, error) {
	cc, err := cfg.ComposerConfig()
	if err != nil {
		return nil, err
	}
	return application.NewTierComposer(cc)
}

func notifyOptions(cfg config.Config) notify_libnotify.Options {
	return notify_libnotify.Options{
		Urgency: "low",
		Expire:  10 * time.Second,
		Icon:    cfg.Poll.Icon,
	}
}

func completeTiers(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return tierNames(toComplete), cobra.ShellCompDirectiveNoFileComp
}
