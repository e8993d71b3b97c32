package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "restore <index>",
		Short: "Restore the local version of a logged conflict",
		Long:  "Re-apply the local snapshot of the chosen conflict entry onto the live record and mark it dirty so the next sync re-asserts it.",
		Args:  cobra.ExactArgs(1),
		Run:   runRestore,
	}

	RootCmd.AddCommand(cmd)
}

func runRestore(cmd *cobra.Command, args []string) {
	index, err := strconv.Atoi(args[0])
	if err != nil {
		exitErr("restore", fmt.Errorf("index must be a number: %q", args[0]))
	}

	e, err := openEnv(cmd.Context())
	if err != nil {
		exitErr("restore", err)
	}
	defer e.close()

	if !e.store.RestoreConflict(cmd.Context(), index) {
		fmt.Printf("No conflict at index %d, nothing restored.\n", index)
		return
	}
	fmt.Println("Local version restored and marked for sync.")
}
