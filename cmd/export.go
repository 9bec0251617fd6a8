package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"rozkladctl/pkg/config"
	"rozkladctl/pkg/exporter"
	"rozkladctl/pkg/reader"
	"rozkladctl/pkg/schedule"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Export a timetable document to an ICS calendar",
	Long: `Export a normalized schedule to an .ics file. Week numbers are anchored to
the Monday of the first study week, taken from --start or the configured
semester start.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		start, _ := cmd.Flags().GetString("start")

		if start == "" {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			start = cfg.SemesterStart
		}
		if start == "" {
			return fmt.Errorf("no semester start date: pass --start YYYY-MM-DD or set it via 'rozkladctl config'")
		}
		semesterStart, err := time.Parse("2006-01-02", start)
		if err != nil {
			return fmt.Errorf("invalid semester start %q: %w", start, err)
		}

		opts, err := pipelineOptions(cmd)
		if err != nil {
			return err
		}
		pipeline, err := schedule.New(opts)
		if err != nil {
			return err
		}

		rows, err := reader.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read schedule: %w", err)
		}
		records := pipeline.Run(rows)
		if len(records) == 0 {
			return fmt.Errorf("no schedule records found in %s", args[0])
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(records, semesterStart, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported %d records to %s\n", len(records), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
	exportCmd.Flags().StringP("start", "s", "", "Monday of study week 1 (YYYY-MM-DD)")
	addFilterFlags(exportCmd)
}
