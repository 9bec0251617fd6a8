package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"rozkladctl/pkg/reader"
	"rozkladctl/pkg/schedule"
	"rozkladctl/pkg/tui"
)

var showCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a normalized timetable as a table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := pipelineOptions(cmd)
		if err != nil {
			return err
		}
		pipeline, err := schedule.New(opts)
		if err != nil {
			return err
		}

		var records []schedule.Record
		var readErr error
		_ = spinner.New().
			Title(fmt.Sprintf("Reading %s...", args[0])).
			Action(func() {
				var rows []schedule.RawRow
				rows, readErr = reader.ReadFile(args[0])
				if readErr != nil {
					return
				}
				records = pipeline.Run(rows)
			}).
			Run()
		if readErr != nil {
			return fmt.Errorf("failed to read schedule: %w", readErr)
		}
		if len(records) == 0 {
			return fmt.Errorf("no schedule records found in %s", args[0])
		}

		fmt.Println(tui.RenderSchedule(records))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	addFilterFlags(showCmd)
}
