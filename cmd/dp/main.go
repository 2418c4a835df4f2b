package main

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/logandonley/docprint/internal/config"
	"github.com/logandonley/docprint/internal/logger"
	"github.com/logandonley/docprint/pkg/printer"
	"github.com/logandonley/docprint/pkg/printing"
)

var (
	v          = viper.New()
	configFile string
	cfg        *config.Config
	log        = zap.NewNop()
	manager    *printer.Manager
)

func init() {
	// AppKit only runs its print panel on the main thread
	runtime.LockOSThread()
}

func main() {
	manager = printer.NewManager()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dp",
	Short: "dp prints PDF documents on Linux, macOS and Windows",
	Long: `A PDF printing tool that talks to the system print service:
CUPS on Linux and macOS, the Windows shell elsewhere.

Examples:
  # List printers
  dp printers

  # Print two copies on a named printer
  dp print report.pdf -p Office -n 2

  # Print pages 2 to 5 in landscape on Letter paper
  dp print report.pdf --pages 2-5 --orientation landscape --paper letter

  # Open the native print dialog
  dp dialog report.pdf`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("margin") {
			margin, _ := cmd.Flags().GetFloat64("margin")
			for _, side := range []string{"top", "right", "bottom", "left"} {
				v.Set("margins."+side, margin)
			}
		}

		var err error
		cfg, err = config.Load(v, configFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}

		log = logger.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
		log.Debug("configuration loaded",
			zap.String("backend", printer.Backend()),
			zap.String("config_file", v.ConfigFileUsed()),
		)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

var printersCmd = &cobra.Command{
	Use:   "printers",
	Short: "List available printers",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		printers, err := manager.GetPrinters()
		if err != nil {
			return fmt.Errorf("listing printers: %w", err)
		}
		log.Debug("enumerated printers", zap.Int("count", len(printers)))

		if len(printers) == 0 {
			fmt.Println("No printers found")
			return nil
		}

		fmt.Println("Printers:")
		for _, p := range printers {
			line := "  - " + p.Name
			if p.IsDefault {
				line += " (default)"
			}
			var features []string
			if p.SupportsColor {
				features = append(features, "color")
			}
			if p.SupportsDuplex {
				features = append(features, "duplex")
			}
			if len(features) > 0 {
				line += " [" + strings.Join(features, ", ") + "]"
			}
			fmt.Println(line)
		}
		return nil
	},
}

var printCmd = &cobra.Command{
	Use:   "print [file]",
	Short: "Print a PDF document",
	Long: `Print a PDF document with the configured settings.
Flags override the config file and DOCPRINT_* environment variables.

Examples:
  # Print on the default printer
  dp print invoice.pdf

  # Duplex, monochrome, no scaling
  dp print invoice.pdf --duplex --color=false --fit=false

  # Only the third page with 5mm margins
  dp print invoice.pdf --pages 3 --margin 5`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if err := checkFile(path); err != nil {
			return err
		}

		settings := cfg.Settings
		if err := settings.Validate(); err != nil {
			return err
		}

		target := cfg.Printer
		if target == "" {
			target = "default printer"
		}
		log.Info("submitting print job",
			zap.String("file", path),
			zap.String("printer", target),
			zap.Stringer("paper", settings.PaperSize),
			zap.Stringer("orientation", settings.Orientation),
			zap.Int("copies", settings.Copies),
			zap.Bool("duplex", settings.Duplex),
		)

		if err := manager.PrintPDF(path, settings, cfg.Printer); err != nil {
			log.Error("print job failed",
				zap.String("file", path),
				zap.Stringer("kind", printing.KindOf(err)),
				zap.Error(err),
			)
			return err
		}

		fmt.Printf("Sent %s to %s\n", path, target)
		return nil
	},
}

var dialogCmd = &cobra.Command{
	Use:   "dialog [file]",
	Short: "Open the native print dialog for a PDF document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if err := checkFile(path); err != nil {
			return err
		}

		log.Info("opening print dialog", zap.String("file", path))
		if err := manager.ShowPrintDialog(path); err != nil {
			return err
		}
		return nil
	},
}

var papersCmd = &cobra.Command{
	Use:   "papers",
	Short: "List supported paper sizes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Paper sizes:")
		for _, p := range printing.PaperSizes() {
			w, h := p.DimensionsMM()
			fmt.Printf("  - %-8s %g x %g mm\n", p, w, h)
		}
	},
}

var backendCmd = &cobra.Command{
	Use:   "backend",
	Short: "Show the print backend compiled into this binary",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(printer.Backend())
	},
}

// checkFile rejects paths that do not name a regular file
func checkFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("opening document: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("%s is not a regular file", path)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(printersCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(dialogCmd)
	rootCmd.AddCommand(papersCmd)
	rootCmd.AddCommand(backendCmd)

	defaults := printing.DefaultSettings()

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/docprint/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "Log format (console, json)")

	flags := printCmd.Flags()
	flags.StringP("printer", "p", "", "Printer name (default is the system default printer)")
	flags.String("paper", string(defaults.PaperSize), "Paper size (A4, A3, A5, Letter, Legal, Tabloid)")
	flags.String("orientation", string(defaults.Orientation), "Orientation (portrait, landscape)")
	flags.IntP("copies", "n", defaults.Copies, "Number of copies")
	flags.Bool("duplex", defaults.Duplex, "Print on both sides")
	flags.Bool("color", defaults.Color, "Print in color")
	flags.Bool("fit", defaults.ScaleToFit, "Scale pages to fit the paper")
	flags.String("pages", "", "Pages to print, e.g. 3 or 2-5 (default is all pages)")
	flags.Float64("margin", defaults.Margins.Top, "Margin in millimetres on every side")

	bindings := map[string]string{
		"log.level":    "log-level",
		"log.format":   "log-format",
		"printer":      "printer",
		"paper_size":   "paper",
		"orientation":  "orientation",
		"copies":       "copies",
		"duplex":       "duplex",
		"color":        "color",
		"scale_to_fit": "fit",
		"pages":        "pages",
	}
	for key, name := range bindings {
		flag := rootCmd.PersistentFlags().Lookup(name)
		if flag == nil {
			flag = flags.Lookup(name)
		}
		if err := v.BindPFlag(key, flag); err != nil {
			panic(fmt.Sprintf("binding flag %s: %v", name, err))
		}
	}
}
