package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lattice-dev/lattice/internal/ledger"
	"github.com/lattice-dev/lattice/internal/ui"
)

type ledgerView struct {
	Kind      string   `json:"kind"`
	Name      string   `json:"name"`
	RoutePath string   `json:"route_path,omitempty"`
	Files     []string `json:"files"`
	CreatedAt string   `json:"created_at"`
}

var ledgerCmd = &cobra.Command{
	Use:   "ledger",
	Short: "List recorded generate runs",
	Long: `List what the generators created, straight from the artifact ledger.

Each record holds the exact file list a generate run produced, which is
what 'lattice destroy' removes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := getLayout()

		led, err := ledger.Open(l.LatticeDir())
		if err != nil {
			return handleError(ErrLedgerError, err, "")
		}
		defer led.Close()

		records, err := led.List()
		if err != nil {
			return handleError(ErrLedgerError, err, "")
		}

		views := make([]ledgerView, 0, len(records))
		for _, r := range records {
			views = append(views, ledgerView{
				Kind:      r.Kind,
				Name:      r.Name,
				RoutePath: r.RoutePath,
				Files:     r.Files,
				CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
			})
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{"artifacts": views}, &Meta{Count: len(views)})
			return nil
		}

		if len(views) == 0 {
			fmt.Println("No recorded artifacts. Run 'lattice generate' to create some.")
			return nil
		}

		fmt.Println(ui.Header("Recorded artifacts:"))
		for _, v := range views {
			line := fmt.Sprintf("  %-10s %-24s %s", v.Kind, v.Name, ui.Count(len(v.Files), "file", "files"))
			if v.RoutePath != "" {
				line += " " + ui.RoutePath(v.RoutePath)
			}
			fmt.Println(line)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ledgerCmd)
}
