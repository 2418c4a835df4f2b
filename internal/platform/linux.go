//go:build linux

package platform

import "github.com/logandonley/docprint/pkg/printing"

// BackendName identifies the backend compiled for this target
const BackendName = "cups"

func newPlatformPrinter() printing.Printer {
	return NewCUPS()
}
