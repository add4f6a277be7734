package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/davarch/launch-schedule/internal/application"
	"github.com/davarch/launch-schedule/internal/domain"
	"github.com/davarch/launch-schedule/internal/infrastructure/config"
	"github.com/davarch/launch-schedule/internal/infrastructure/render_term"
	"github.com/davarch/launch-schedule/internal/infrastructure/snapshot_fs"
	"github.com/davarch/launch-schedule/internal/infrastructure/spacedevs_http"
	"github.com/spf13/cobra"
)

var (
	showTier      string
	showDateOrder string
	showJSON      bool
	showSnapshot  bool
)

type showResult struct {
	Model   *domain.PresentationModel `json:"model,omitempty"`
	Message string                    `json:"message,omitempty"`
	Detail  string                    `json:"detail,omitempty"`
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Fetch upcoming launches once and print them for a size tier",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}
		if showTier != "" {
			cfg.Display.Tier = showTier
		}
		if showDateOrder != "" {
			cfg.Display.DateOrder = showDateOrder
		}

		composer, err := newComposer(cfg)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()

		tier, err := domain.ParseTier(cfg.Display.Tier)
		if err != nil {
			return printResult(out, domain.PresentationModel{}, err)
		}

		src := spacedevs_http.New(cfg.API.BaseURL, cfg.API.Limit, cfg.API.Timeout)
		var sink domain.ModelSink
		if showSnapshot {
			sink = snapshot_fs.New(cfg.Snapshot.Path)
		}

		uc := application.NewRefreshUseCase(src, nil, sink, composer)
		m, err := uc.RefreshOnce(cmd.Context(), tier)
		return printResult(out, m, err)
	},
}

// printResult renders a model or its fallback. Only errors outside the
// fallback states are returned.
func printResult(w io.Writer, m domain.PresentationModel, err error) error {
	var ue *domain.UnavailableError
	if err != nil && !errors.As(err, &ue) && !errors.Is(err, domain.ErrUnknownTier) {
		return err
	}

	if showJSON {
		res := showResult{}
		if err != nil {
			res.Message, res.Detail = domain.FallbackMessage(err)
		} else {
			res.Model = &m
			if m.Empty() {
				res.Message = domain.MessageNoLaunches
			}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	r := render_term.New(w)
	if err != nil {
		_, _ = fmt.Fprint(w, r.Fallback(domain.FallbackMessage(err)))
		return nil
	}
	_, _ = fmt.Fprint(w, r.Model(m))
	return nil
}

func init() {
	showCmd.Flags().StringVar(&showTier, "tier", "", "size tier: compact, medium, large, extra_large")
	showCmd.Flags().StringVar(&showDateOrder, "date-order", "", "date order: day_month or month_day")
	showCmd.Flags().BoolVar(&showJSON, "json", false, "print JSON")
	showCmd.Flags().BoolVar(&showSnapshot, "write-snapshot", false, "also write the snapshot file")

	_ = showCmd.RegisterFlagCompletionFunc("tier", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return tierNames(toComplete), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(showCmd)
}
