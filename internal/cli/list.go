package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List quotes",
		Run:   runList,
	}

	cmd.Flags().StringP("category", "c", "", "Only show quotes in this category")

	RootCmd.AddCommand(cmd)
}

func runList(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")

	e, err := openEnv(cmd.Context())
	if err != nil {
		exitErr("list", err)
	}
	defer e.close()

	for _, record := range e.store.Records() {
		if category != "" && !strings.EqualFold(record.Category, category) {
			continue
		}

		marker := " "
		if e.store.IsDirty(record.ID) {
			marker = "*"
		}
		remoteID := record.RemoteID
		if remoteID == "" {
			remoteID = "-"
		}
		fmt.Printf("%s %-38s remote:%-6s [%s] %s\n", marker, record.ID, remoteID, record.Category, record.Text)
	}
}
