package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "add [text]",
		Short: "Add a quote",
		Long:  "Add a quote to the local collection. It is marked dirty and published on the next sync.",
		Args:  cobra.MinimumNArgs(1),
		Run:   runAdd,
	}

	cmd.Flags().StringP("category", "c", "", "Quote category (required)")
	cmd.MarkFlagRequired("category")

	RootCmd.AddCommand(cmd)
}

func runAdd(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")
	text := strings.Join(args, " ")

	e, err := openEnv(cmd.Context())
	if err != nil {
		exitErr("add", err)
	}
	defer e.close()

	record, err := e.store.Add(cmd.Context(), text, category)
	if err != nil {
		exitErr("add", err)
	}

	fmt.Printf("Added %s: %q — %s\n", record.ID, record.Text, record.Category)
}
