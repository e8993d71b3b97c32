package cli

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dicklancube/quotesync/internal/models"
)

func init() {
	cmd := &cobra.Command{
		Use:   "random",
		Short: "Show a random quote",
		Run:   runRandom,
	}

	cmd.Flags().StringP("category", "c", "", "Pick only from this category")

	RootCmd.AddCommand(cmd)
}

func runRandom(cmd *cobra.Command, args []string) {
	category, _ := cmd.Flags().GetString("category")

	e, err := openEnv(cmd.Context())
	if err != nil {
		exitErr("random", err)
	}
	defer e.close()

	var pool []*models.Record
	for _, record := range e.store.Records() {
		if category == "" || strings.EqualFold(record.Category, category) {
			pool = append(pool, record)
		}
	}

	if len(pool) == 0 {
		fmt.Println("No quotes for this category yet. Add one with 'quotesync add'.")
		return
	}

	q := pool[rand.Intn(len(pool))]
	fmt.Printf("%q — %s\n", q.Text, q.Category)
}
