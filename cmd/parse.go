package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"rozkladctl/pkg/exporter"
	"rozkladctl/pkg/reader"
	"rozkladctl/pkg/schedule"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Normalize a timetable document into JSON",
	Long: `Parse a timetable document and write the canonical schedule as JSON.
By default the records are nested course → group → day with time, hall and
week-set leaves; --flat writes the record list as-is.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")
		flat, _ := cmd.Flags().GetBool("flat")
		nestPath, _ := cmd.Flags().GetString("nest")

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

		var data any
		if flat {
			data = records
		} else {
			data = schedule.Nest(records, strings.Split(nestPath, ","),
				map[string]string{
					"час":       schedule.FieldTime,
					"аудиторія": schedule.FieldHall,
					"тижні":     schedule.FieldWeeks,
				}, opts.DayShape)
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.WriteJSON(file, data); err != nil {
			return fmt.Errorf("failed to write JSON: %w", err)
		}

		fmt.Printf("Successfully wrote %d records to %s\n", len(records), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().StringP("output", "o", "data.json", "Output file path")
	parseCmd.Flags().Bool("flat", false, "Write a flat record list instead of a nested mapping")
	parseCmd.Flags().String("nest", "course,group,day", "Comma-separated nesting key path")
	addFilterFlags(parseCmd)
}
