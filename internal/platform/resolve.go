package platform

import (
	"fmt"
	"strings"

	"github.com/logandonley/docprint/pkg/printing"
)

// resolvePrinter picks the destination for a job. An empty requested name
// selects defaultName.
func resolvePrinter(names []string, defaultName, requested string) (string, error) {
	if requested == "" {
		if defaultName == "" {
			return "", printing.NewNoPrinterError("no default printer configured")
		}
		return defaultName, nil
	}

	for _, name := range names {
		if strings.EqualFold(name, requested) {
			return name, nil
		}
	}
	return "", printing.NewNoPrinterError(fmt.Sprintf("printer %q not found", requested))
}
