// Package root contains the root command for the application
package root

import (
	"tdv/nomina-txt/internal/catalog"
	"tdv/nomina-txt/internal/config"
	"tdv/nomina-txt/internal/models"
	"tdv/nomina-txt/internal/nomina"
	"tdv/nomina-txt/internal/rowsource"
	"tdv/nomina-txt/internal/textutils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are shared by multiple commands
type CommonFlags struct {
	Input      string
	Output     string
	Company    string
	CompanyRUT string
	Agreement  string
	Date       string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cfg is the loaded application configuration, set before any
	// subcommand runs
	Cfg *config.Config

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "nomina-txt",
		Short: "A CLI tool to validate refund payments and generate bank nomina files.",
		Long: `nomina-txt validates refund payment rows and renders them as the
fixed-width nomina file the bank's payment-processing system consumes.
Rows can be read from CSV or XLSX exports of the backoffice.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to nomina-txt!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			cfg, err := config.Load()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			Cfg = cfg
			Log = config.ConfigureLogging(cfg)

			// Fan the configured logger out to every engine package
			textutils.SetLogger(Log)
			catalog.SetLogger(Log)
			nomina.SetLogger(Log)
			rowsource.SetLogger(Log)
		},
	}

	// SharedFlags holds the flags common to validate and generate
	SharedFlags = CommonFlags{}
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input rows file (.csv or .xlsx)")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output directory (defaults to the configured one)")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Company, "company", "", "Company name for the file header")
	Cmd.PersistentFlags().StringVar(&SharedFlags.CompanyRUT, "rut", "", "Company RUT for the file header")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Agreement, "agreement", "", "Bank agreement number")
	Cmd.PersistentFlags().StringVar(&SharedFlags.Date, "date", "", "Process date (YYYY-MM-DD, defaults to today)")
}

// Header builds the HeaderInput from the shared flags.
func Header() models.HeaderInput {
	return models.HeaderInput{
		CompanyName: SharedFlags.Company,
		CompanyRUT:  SharedFlags.CompanyRUT,
		Agreement:   SharedFlags.Agreement,
		ProcessDate: SharedFlags.Date,
	}
}
