// Package cli provides an embeddable cobra command that reports a
// service's resolved route table.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/localshred/flauta/internal/tables"
	"github.com/localshred/flauta/pkg/router"
)

// RoutesCommand returns a "routes" subcommand that resolves the host
// application's route table through load and prints the valid and invalid
// route tables to the command's output.
func RoutesCommand(load func() (router.Resolved, error)) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the resolved route table",
		RunE: func(cmd *cobra.Command, args []string) error {
			resolved, err := load()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), Report(resolved))
			return nil
		},
	}
}

// Report renders the valid and invalid route tables for a resolved router.
func Report(resolved router.Resolved) string {
	valid := tables.Table{
		Title:  "Valid Routes",
		Header: []string{"Alias", "Verb", "URI", "Controller", "Handler"},
		Rows:   validRows(resolved.Routes),
	}

	invalid := tables.Table{
		Title:  "Invalid Routes",
		Header: []string{"Alias", "Verb", "URI", "Controller", "Handler", "Error"},
		Rows:   invalidRows(resolved.Invalid),
	}

	return valid.Render() + "\n" + invalid.Render()
}

func validRows(tuples []router.RouteModule) [][]string {
	rows := make([][]string, 0, len(tuples))
	for _, rm := range tuples {
		rows = append(rows, []string{
			rm.Route.Alias,
			string(rm.Route.Method),
			rm.Route.Path,
			rm.Route.Controller,
			rm.Route.Handler,
		})
	}
	return rows
}

func invalidRows(tuples []router.RouteModule) [][]string {
	rows := make([][]string, 0, len(tuples))
	for _, rm := range tuples {
		message := ""
		if rm.Err != nil {
			message = rm.Err.Error()
		}
		rows = append(rows, []string{
			rm.Route.Alias,
			string(rm.Route.Method),
			rm.Route.Path,
			rm.Route.Controller,
			rm.Route.Handler,
			message,
		})
	}
	return rows
}
