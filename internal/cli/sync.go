package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Run one sync cycle now",
		Run:   runSync,
	}

	RootCmd.AddCommand(cmd)
}

func runSync(cmd *cobra.Command, args []string) {
	e, err := openEnv(cmd.Context())
	if err != nil {
		exitErr("sync", err)
	}
	defer e.close()

	result, err := e.service.RunCycle(cmd.Context())
	if err != nil {
		exitErr("sync", err)
	}

	fmt.Printf("Pushed to server:   %d\n", result.Pushed)
	fmt.Printf("Pulled from server: %d\n", result.Pulled)
	fmt.Printf("Merged locally:     %d\n", result.Merged)
	if result.Conflicts > 0 {
		fmt.Printf("Conflicts logged:   %d\n", result.Conflicts)
	}
}
