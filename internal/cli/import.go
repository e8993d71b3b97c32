package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dicklancube/quotesync/internal/transfer"
)

func init() {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import quotes from a JSON file",
		Long:  "Import a JSON list of quotes. Entries with empty text or category are skipped; imported quotes are marked dirty and published on the next sync.",
		Args:  cobra.ExactArgs(1),
		Run:   runImport,
	}

	RootCmd.AddCommand(cmd)
}

func runImport(cmd *cobra.Command, args []string) {
	e, err := openEnv(cmd.Context())
	if err != nil {
		exitErr("import", err)
	}
	defer e.close()

	records, err := transfer.ImportFile(args[0])
	if err != nil {
		exitErr("import", err)
	}

	added := e.store.Import(cmd.Context(), records)
	if added == 0 {
		exitErr("import", fmt.Errorf("no valid quotes found in file"))
	}
	fmt.Printf("Imported %d quotes.\n", added)
}
