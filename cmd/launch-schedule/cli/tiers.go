package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/davarch/launch-schedule/internal/domain"
	"github.com/davarch/launch-schedule/internal/infrastructure/config"
	"github.com/spf13/cobra"
)

var tiersJSON bool

type tierRow struct {
	Tier     domain.Tier        `json:"tier"`
	Capacity int                `json:"capacity"`
	Detail   domain.DetailLevel `json:"secondary_detail"`
	Active   bool               `json:"active"`
}

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "List size tiers with their effective capacity",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgPath)
		if err != nil {
			return err
		}

		composer, err := newComposer(cfg)
		if err != nil {
			return err
		}
		active, _ := domain.ParseTier(cfg.Display.Tier)

		rows := make([]tierRow, 0, len(domain.Tiers))
		for _, t := range domain.Tiers {
			spec, ok := composer.Spec(t)
			if !ok {
				continue
			}
			rows = append(rows, tierRow{Tier: t, Capacity: spec.Capacity, Detail: spec.Detail, Active: t == active})
		}

		if tiersJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(rows)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		_, _ = fmt.Fprintln(w, "TIER\tCAPACITY\tSECONDARY\tACTIVE")
		for _, r := range rows {
			detail := string(r.Detail)
			if r.Capacity == 1 {
				detail = "-"
			}
			_, _ = fmt.Fprintf(w, "%s\t%d\t%s\t%t\n", r.Tier, r.Capacity, detail, r.Active)
		}
		_ = w.Flush()
		return nil
	},
}

var setTierCmd = &cobra.Command{
	Use:               "set-tier <tier>",
	Short:             "Set the default size tier in config.yaml",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeTiers,
	RunE: func(cmd *cobra.Command, args []string) error {
		tier, err := domain.ParseTier(args[0])
		if err != nil {
			return err
		}

		if err := config.SetValue(cfgPath, string(tier), "display", "tier"); err != nil {
			return err
		}

		fmt.Printf("tier: %s\n", tier)
		return nil
	},
}

func tierNames(prefix string) []string {
	out := make([]string, 0, len(domain.Tiers))
	for _, t := range domain.Tiers {
		if strings.HasPrefix(string(t), prefix) {
			out = append(out, string(t))
		}
	}
	return out
}

func init() {
	tiersCmd.Flags().BoolVar(&tiersJSON, "json", false, "print JSON")

	rootCmd.AddCommand(tiersCmd)
	rootCmd.AddCommand(setTierCmd)
}
