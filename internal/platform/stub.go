package platform

import "github.com/logandonley/docprint/pkg/printing"

const unsupportedMessage = "printing not supported on this platform"

// Stub is the backend for targets without native printing integration.
// Every operation fails with a KindPlatform error.
type Stub struct{}

// NewStub returns the Stub backend
func NewStub() *Stub {
	return &Stub{}
}

func (s *Stub) GetPrinters() ([]printing.PrinterInfo, error) {
	return nil, printing.NewPlatformError(unsupportedMessage, nil)
}

func (s *Stub) PrintPDF(string, printing.PrintSettings, string) error {
	return printing.NewPlatformError(unsupportedMessage, nil)
}

func (s *Stub) ShowPrintDialog(string) error {
	return printing.NewPlatformError(unsupportedMessage, nil)
}
