package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "conflicts",
		Short: "List logged sync conflicts",
		Long:  "List conflicts where a server copy superseded a dirty local edit. Use 'restore' to re-assert a local version.",
		Run:   runConflicts,
	}

	RootCmd.AddCommand(cmd)
}

func runConflicts(cmd *cobra.Command, args []string) {
	e, err := openEnv(cmd.Context())
	if err != nil {
		exitErr("conflicts", err)
	}
	defer e.close()

	entries := e.store.Conflicts()
	if len(entries) == 0 {
		fmt.Println("No conflicts.")
		return
	}

	for i, entry := range entries {
		fmt.Printf("[%d] remote:%s detected:%s\n", i, entry.Server.RemoteID, entry.DetectedAt.Format("2006-01-02 15:04:05"))
		fmt.Printf("    local:  %q — %s\n", entry.Local.Text, entry.Local.Category)
		fmt.Printf("    server: %q — %s\n", entry.Server.Text, entry.Server.Category)
	}
}
