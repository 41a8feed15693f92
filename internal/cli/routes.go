package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lattice-dev/lattice/internal/routes"
	"github.com/lattice-dev/lattice/internal/ui"
)

type routeView struct {
	Name     string `json:"name,omitempty"`
	Path     string `json:"path,omitempty"`
	Page     string `json:"page"`
	NotFound bool   `json:"notfound,omitempty"`
}

var routesCmd = &cobra.Command{
	Use:   "routes",
	Short: "List the route table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		l := getLayout()

		data, err := os.ReadFile(l.RoutesFile)
		if err != nil {
			return handleError(ErrFileReadError, fmt.Errorf("failed to read %s: %w", l.Rel(l.RoutesFile), err), "")
		}

		entries := routes.Parse(string(data))
		views := make([]routeView, 0, len(entries))
		for _, e := range entries {
			views = append(views, routeView{
				Name:     e.Name,
				Path:     e.Path,
				Page:     e.Page,
				NotFound: e.NotFound,
			})
		}

		if isJSONOutput() {
			outputSuccess(map[string]interface{}{
				"file":   l.Rel(l.RoutesFile),
				"routes": views,
			}, &Meta{Count: len(views)})
			return nil
		}

		if len(views) == 0 {
			fmt.Printf("No routes in %s\n", l.Rel(l.RoutesFile))
			return nil
		}

		fmt.Println(ui.Header(l.Rel(l.RoutesFile)))
		for _, v := range views {
			if v.NotFound {
				fmt.Printf("  %-16s %-20s %s\n", ui.Hint("(notfound)"), "", v.Page)
				continue
			}
			fmt.Printf("  %-16s %-20s %s\n", v.Name, ui.RoutePath(v.Path), v.Page)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(routesCmd)
}
