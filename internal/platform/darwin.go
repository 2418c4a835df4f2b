//go:build darwin

package platform

import (
	"github.com/logandonley/docprint/internal/cocoa"
	"github.com/logandonley/docprint/pkg/printing"
)

// BackendName identifies the backend compiled for this target
const BackendName = "darwin"

// Darwin enumerates and submits jobs through the CUPS that ships with macOS
// and shows the AppKit print panel for interactive printing
type Darwin struct {
	*CUPS
}

// NewDarwin returns the macOS backend
func NewDarwin() *Darwin {
	return &Darwin{CUPS: NewCUPS()}
}

// ShowPrintDialog opens the PDFKit document in an NSPrintOperation. It must
// be called from the main thread.
func (d *Darwin) ShowPrintDialog(path string) error {
	return cocoa.ShowNativePrintDialog(path)
}

func newPlatformPrinter() printing.Printer {
	return NewDarwin()
}
