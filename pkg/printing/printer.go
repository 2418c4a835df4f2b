// Package printing defines the print job model, the error taxonomy, and the
// Printer contract every platform backend satisfies.
package printing

// PrinterInfo is a read-only snapshot of an enumerated printer
type PrinterInfo struct {
	Name           string
	IsDefault      bool
	SupportsColor  bool
	SupportsDuplex bool
}

// Printer is implemented once per platform. Every operation is synchronous
// and returns either nil or an *Error.
type Printer interface {
	// GetPrinters enumerates system-registered printers. Order carries no
	// meaning beyond the IsDefault flag.
	GetPrinters() ([]PrinterInfo, error)

	// PrintPDF submits the document at path. An empty printerName selects
	// the default printer. Settings are honored best-effort; combinations
	// the device cannot do are left to the platform.
	PrintPDF(path string, settings PrintSettings, printerName string) error

	// ShowPrintDialog hands the document to the OS print UI and blocks until
	// the platform returns control.
	ShowPrintDialog(path string) error
}
