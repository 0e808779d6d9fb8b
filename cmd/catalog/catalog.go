// Package catalog handles catalog inspection and export commands
package catalog

import (
	"fmt"

	"tdv/nomina-txt/cmd/root"
	"tdv/nomina-txt/internal/config"

	"github.com/spf13/cobra"

	catalogs "tdv/nomina-txt/internal/catalog"
)

// Cmd represents the catalog command
var Cmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect or export the reference catalogs",
	Long:  `Catalog lists the active bank, payment-method and document-type catalogs, or exports them to YAML for editing.`,
	Run:   listFunc,
}

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the active catalog to a YAML file",
	Args:  cobra.MaximumNArgs(1),
	Run:   exportFunc,
}

func init() {
	Cmd.AddCommand(exportCmd)
}

func listFunc(cmd *cobra.Command, args []string) {
	cat, err := config.ResolveCatalog(root.Cfg)
	if err != nil {
		root.Log.Fatalf("Error loading catalog: %v", err)
	}

	fmt.Println("Bancos:")
	for _, b := range cat.Banks {
		fmt.Printf("  %s  %s\n", b.Code, b.Name)
	}
	fmt.Println("Formas de pago:")
	for _, m := range cat.PaymentMethods {
		fmt.Printf("  %s   %s\n", m.Code, m.Name)
	}
	fmt.Println("Tipos de documento:")
	for _, d := range cat.DocumentTypes {
		fmt.Printf("  %s   %s\n", d.Code, d.Name)
	}
}

func exportFunc(cmd *cobra.Command, args []string) {
	path := "catalog.yaml"
	if len(args) == 1 {
		path = args[0]
	}
	cat, err := config.ResolveCatalog(root.Cfg)
	if err != nil {
		root.Log.Fatalf("Error loading catalog: %v", err)
	}
	if err := catalogs.Save(cat, path); err != nil {
		root.Log.Fatalf("Error exporting catalog: %v", err)
	}
	root.Log.WithField("file", path).Info("Catalog exported")
}
