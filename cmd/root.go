package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"rozkladctl/pkg/config"
	"rozkladctl/pkg/schedule"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "rozkladctl",
	Short: "A CLI and TUI for messy university timetables",
	Long: `rozkladctl converts human-authored timetable tables (xlsx, docx or saved
HTML pages) into a canonical machine-readable schedule: one record per course,
group and day with a concrete set of active week numbers. The result can be
previewed, saved as nested JSON or exported to an .ics calendar, optionally
filtered by a FEN specialization.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log dropped rows and filter decisions")
}

// addFilterFlags registers the specialization filtering flags shared by the
// data-producing commands.
func addFilterFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("fen", false, "Filter the schedule by a FEN specialization")
	cmd.Flags().String("spec", "", "Specialization code (implies --fen); one of: "+joinCodes())
	cmd.Flags().String("day-shape", "name", "Day representation in output: name or index")
}

func joinCodes() string {
	out := ""
	for i, code := range schedule.FEN.Codes() {
		if i > 0 {
			out += ", "
		}
		out += code
	}
	return out
}

// pipelineOptions resolves the shared flags (falling back to the configured
// default specialization) into pipeline options.
func pipelineOptions(cmd *cobra.Command) (schedule.Options, error) {
	fen, _ := cmd.Flags().GetBool("fen")
	spec, _ := cmd.Flags().GetString("spec")
	dayShape, _ := cmd.Flags().GetString("day-shape")

	opts := schedule.Options{}
	switch dayShape {
	case "", "name":
		opts.DayShape = schedule.DayName
	case "index":
		opts.DayShape = schedule.DayIndex
	default:
		return opts, fmt.Errorf("invalid --day-shape %q: must be name or index", dayShape)
	}

	if spec != "" {
		fen = true
	}
	if fen && spec == "" {
		if cfg, err := config.Load(); err == nil {
			spec = cfg.DefaultSpec
		}
	}
	opts.FENMode = fen
	opts.Spec = spec
	return opts, nil
}
