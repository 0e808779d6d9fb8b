// Package generate handles the nomina file generation command
package generate

import (
	"os"
	"path/filepath"

	"tdv/nomina-txt/cmd/root"
	"tdv/nomina-txt/internal/catalog"
	"tdv/nomina-txt/internal/config"
	"tdv/nomina-txt/internal/nomina"
	"tdv/nomina-txt/internal/rowsource"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var grouped bool

// Cmd represents the generate command
var Cmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the fixed-width nomina file",
	Long: `Generate validates the payment rows and renders the bank's fixed-width
nomina file, one record pair per row, or consolidated per account with
--grouped.`,
	Run: generateFunc,
}

func init() {
	Cmd.Flags().BoolVarP(&grouped, "grouped", "g", false, "Consolidate rows sharing an account into one net record")
}

func generateFunc(cmd *cobra.Command, args []string) {
	root.Log.Infof("Input rows file: %s", root.SharedFlags.Input)

	rows, err := rowsource.Read(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error reading rows: %v", err)
	}
	cat, err := config.ResolveCatalog(root.Cfg)
	if err != nil {
		root.Log.Fatalf("Error loading catalog: %v", err)
	}

	file, err := nomina.Generate(root.Header(), rows, catalog.NewResolver(cat), grouped)
	if err != nil {
		root.Log.Fatalf("Error generating nomina: %v", err)
	}

	outDir := root.SharedFlags.Output
	if outDir == "" {
		outDir = root.Cfg.Output.Directory
	}
	if err := os.MkdirAll(outDir, 0750); err != nil {
		root.Log.Fatalf("Error creating output directory: %v", err)
	}
	outPath := filepath.Join(outDir, file.FileName)
	if err := os.WriteFile(outPath, []byte(file.Content), 0600); err != nil {
		root.Log.Fatalf("Error writing nomina file: %v", err)
	}

	root.Log.WithFields(logrus.Fields{
		"file":  outPath,
		"lines": file.LineCount,
		"total": file.TotalAmount.StringFixed(0),
		"mode":  string(file.Mode),
	}).Info("Nomina file written")
}
