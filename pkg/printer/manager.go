// Package printer is the entry point for printing from the application. It
// forwards every call to the backend compiled for the current platform.
package printer

import (
	"github.com/logandonley/docprint/internal/platform"
	"github.com/logandonley/docprint/pkg/printing"
)

// Manager handles print operations through one backend
type Manager struct {
	backend printing.Printer
}

// NewManager creates a manager using the platform's backend
func NewManager() *Manager {
	return &Manager{backend: platform.New()}
}

// NewManagerWithBackend creates a manager over the given backend
func NewManagerWithBackend(backend printing.Printer) *Manager {
	return &Manager{backend: backend}
}

// Backend returns the name of the backend compiled for this platform
func Backend() string {
	return platform.BackendName
}

// GetPrinters lists the printers registered with the system
func (m *Manager) GetPrinters() ([]printing.PrinterInfo, error) {
	return m.backend.GetPrinters()
}

// DefaultPrinter returns the system default printer
func (m *Manager) DefaultPrinter() (printing.PrinterInfo, error) {
	printers, err := m.backend.GetPrinters()
	if err != nil {
		return printing.PrinterInfo{}, err
	}
	for _, p := range printers {
		if p.IsDefault {
			return p, nil
		}
	}
	return printing.PrinterInfo{}, printing.NewNoPrinterError("no default printer configured")
}

// PrintPDF prints the document at path. An empty printerName selects the
// default printer.
func (m *Manager) PrintPDF(path string, settings printing.PrintSettings, printerName string) error {
	return m.backend.PrintPDF(path, settings, printerName)
}

// ShowPrintDialog opens the platform's print dialog for the document at path
func (m *Manager) ShowPrintDialog(path string) error {
	return m.backend.ShowPrintDialog(path)
}

var defaultManager = NewManager()

// GetPrinters lists printers through the platform backend
func GetPrinters() ([]printing.PrinterInfo, error) {
	return defaultManager.GetPrinters()
}

// PrintPDF prints through the platform backend
func PrintPDF(path string, settings printing.PrintSettings, printerName string) error {
	return defaultManager.PrintPDF(path, settings, printerName)
}

// ShowPrintDialog opens the print dialog through the platform backend
func ShowPrintDialog(path string) error {
	return defaultManager.ShowPrintDialog(path)
}
