package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-dragon/internal/storage"
)

var flagLimit int

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Show recent SSH connections",
	Long: `Display the most recent connections recorded by 'dragon serve'.

Examples:
  dragon sessions
  dragon sessions --limit 5
  dragon sessions --db ./sessions.db`,
	Args: cobra.NoArgs,
	Run:  runSessions,
}

func init() {
	sessionsCmd.Flags().StringVar(&flagDBPath, "db", "~/.dragon/sessions.db", "Path to session ledger database")
	sessionsCmd.Flags().IntVar(&flagLimit, "limit", 20, "Number of sessions to show")
}

func runSessions(cmd *cobra.Command, _ []string) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(cfg.SSH.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening session ledger: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	records, err := store.RecentSessions(flagLimit)
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving sessions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent SSH sessions")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Run 'dragon serve' and connect with ssh to record one.")
		return
	}

	// Print header
	fmt.Printf("  %-16s  %-22s  %-16s  %s\n", "User", "Remote", "Started", "Duration")
	fmt.Printf("  %-16s  %-22s  %-16s  %s\n", "----", "------", "-------", "--------")

	for _, rec := range records {
		fmt.Printf("  %-16s  %-22s  %-16s  %s\n",
			rec.Username,
			rec.RemoteAddr,
			rec.StartedAt.Format("2006-01-02 15:04"),
			rec.Duration().Round(time.Second),
		)
	}

	if total, err := store.SessionCount(); err == nil {
		fmt.Println()
		fmt.Printf("Total: %d\n", total)
	}
}
