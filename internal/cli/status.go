package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show local state and sync status",
		Run:   runStatus,
	}

	RootCmd.AddCommand(cmd)
}

func runStatus(cmd *cobra.Command, args []string) {
	e, err := openEnv(cmd.Context())
	if err != nil {
		exitErr("status", err)
	}
	defer e.close()

	records := e.store.Records()
	published := 0
	for _, record := range records {
		if record.Published() {
			published++
		}
	}

	fmt.Printf("Quotes:        %d (%d published)\n", len(records), published)
	fmt.Printf("Pending sync:  %d\n", e.store.DirtyCount())
	fmt.Printf("Conflicts:     %d\n", len(e.store.Conflicts()))

	lastSync := e.store.LastSync()
	if lastSync.IsZero() {
		fmt.Println("Last sync:     never")
	} else {
		fmt.Printf("Last sync:     %s\n", lastSync.Format("2006-01-02 15:04:05"))
	}
	fmt.Printf("Server:        %s\n", e.cfg.ServerURL)
}
