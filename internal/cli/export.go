package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dicklancube/quotesync/internal/transfer"
)

func init() {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export quotes to a JSON file",
		Args:  cobra.MaximumNArgs(1),
		Run:   runExport,
	}

	RootCmd.AddCommand(cmd)
}

func runExport(cmd *cobra.Command, args []string) {
	path := "quotes.json"
	if len(args) > 0 {
		path = args[0]
	}

	e, err := openEnv(cmd.Context())
	if err != nil {
		exitErr("export", err)
	}
	defer e.close()

	records := e.store.Records()
	if err := transfer.ExportFile(path, records); err != nil {
		exitErr("export", err)
	}
	fmt.Printf("Exported %d quotes to %s\n", len(records), path)
}
