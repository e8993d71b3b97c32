package cli

import (
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Sync periodically until interrupted",
		Long:  "Run one sync cycle immediately, then one per interval. Ticks that fire while a cycle is still running are skipped.",
		Run:   runWatch,
	}

	cmd.Flags().Duration("interval", 0, "Interval between cycles (default from config)")

	RootCmd.AddCommand(cmd)
}

func runWatch(cmd *cobra.Command, args []string) {
	interval, _ := cmd.Flags().GetDuration("interval")

	e, err := openEnv(cmd.Context())
	if err != nil {
		exitErr("watch", err)
	}
	defer e.close()

	if interval <= 0 {
		interval = time.Duration(e.cfg.SyncInterval)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Syncing every %s, Ctrl-C to stop.\n", interval)
	e.service.RunPeriodic(ctx, interval)
	fmt.Println("Stopped.")
}
