package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"rozkladctl/pkg/config"
	"rozkladctl/pkg/schedule"
	"rozkladctl/pkg/tui"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage rozkladctl configuration",
	Long:  "View or edit your local configuration settings (default specialization, semester start, accent color).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		setSpec, _ := cmd.Flags().GetString("set-spec")
		setStart, _ := cmd.Flags().GetString("set-start")
		changed := false

		if setSpec != "" {
			if !schedule.FEN.Valid(setSpec) {
				return fmt.Errorf("unknown specialization %q: must be one of %s", setSpec, joinCodes())
			}
			cfg.DefaultSpec = setSpec
			changed = true
		}
		if setStart != "" {
			if _, err := time.Parse("2006-01-02", setStart); err != nil {
				return fmt.Errorf("invalid semester start %q: %w", setStart, err)
			}
			cfg.SemesterStart = setStart
			changed = true
		}

		if changed {
			if err := config.Save(cfg); err != nil {
				return err
			}
			fmt.Println("✅ Configuration saved")
			return nil
		}

		// If no flags are given, launch the interactive settings flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-spec", "", "Set the default specialization code")
	configCmd.Flags().String("set-start", "", "Set the Monday of study week 1 (YYYY-MM-DD)")
}
