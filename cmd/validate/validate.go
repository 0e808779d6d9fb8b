// Package validate handles the payment-row validation command
package validate

import (
	"tdv/nomina-txt/cmd/root"
	"tdv/nomina-txt/internal/catalog"
	"tdv/nomina-txt/internal/config"
	"tdv/nomina-txt/internal/models"
	"tdv/nomina-txt/internal/nomina"
	"tdv/nomina-txt/internal/rowsource"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Cmd represents the validate command
var Cmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate payment rows without generating a file",
	Long:  `Validate checks the header and every payment row and reports the complete list of findings, not just the first one.`,
	Run:   validateFunc,
}

func validateFunc(cmd *cobra.Command, args []string) {
	root.Log.Infof("Input rows file: %s", root.SharedFlags.Input)

	rows, err := rowsource.Read(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading rows: %v", err)
	}
	cat, err := config.ResolveCatalog(root.Cfg)
	if err != nil {
		root.Log.Fatalf("Error loading catalog: %v", err)
	}

	result := nomina.Validate(root.Header(), rows, catalog.NewResolver(cat))
	if result.Valid {
		root.Log.WithField("rows", len(rows)).Info("All rows are valid")
		return
	}
	for _, e := range result.Errors {
		entry := root.Log.WithFields(logrus.Fields{
			"scope": string(e.Scope),
			"field": e.Field,
		})
		if e.Scope == models.ScopeRow {
			entry = entry.WithField("row", e.RowIndex+1)
		}
		entry.Error(e.Message)
	}
	root.Log.Fatalf("%d validation errors found", len(result.Errors))
}
