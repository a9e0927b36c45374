package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var (
	flagPlain     bool
	flagRunsGame  string
	flagRunsLimit int
)

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Browse recorded runs",
	Long: `List recorded runs, newest first. Without --plain the list opens in
an interactive browser; Enter replays the selected run.

Examples:
  snake runs
  snake runs --plain
  snake runs --plain --game snake_autopilot --limit 5`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

var rmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Delete a recorded run",
	Long: `Delete a recorded run. The ID may be shortened to any unique prefix.

Examples:
  snake rm 3f2a9c1e`,
	Args: cobra.ExactArgs(1),
	Run:  runRm,
}

func init() {
	runsCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a plain table instead of the browser")
	runsCmd.Flags().StringVar(&flagRunsGame, "game", "", "Only show runs of this mode")
	runsCmd.Flags().IntVar(&flagRunsLimit, "limit", 20, "Maximum runs to print with --plain")
}

func runRuns(_ *cobra.Command, _ []string) {
	if flagRunsGame != "" && !registry.Exists(flagRunsGame) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", flagRunsGame)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening recordings database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if !flagPlain {
		width, height := terminalSize()
		browseRuns(store, width, height)
		return
	}

	runs, err := store.RecentRecordings(flagRunsGame, flagRunsLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		return
	}

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake play' to record the first one!")
		return
	}

	fmt.Printf("  %-8s  %-16s  %6s  %7s  %-7s  %-9s  %s\n", "ID", "Mode", "Score", "Ticks", "Board", "Ended", "When")
	fmt.Printf("  %-8s  %-16s  %6s  %7s  %-7s  %-9s  %s\n", "--", "----", "-----", "-----", "-----", "-----", "----")
	for _, r := range runs {
		fmt.Printf("  %-8s  %-16s  %6d  %7s  %-7s  %-9s  %s\n",
			shortID(r.ID),
			r.GameID,
			r.Score,
			humanize.Comma(int64(r.Ticks)),
			fmt.Sprintf("%dx%d", r.GridW, r.GridH),
			r.EndReason,
			humanize.Time(r.CreatedAt),
		)
	}
}

func runRm(_ *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening recordings database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	rec, err := store.LoadRecording(args[0])
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := store.DeleteRecording(rec.ID); err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Deleted run %s\n", rec.ID)
}

// shortID trims a recording ID for tables.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
