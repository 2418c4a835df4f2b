//go:build !darwin && !linux && !windows

package platform

import "github.com/logandonley/docprint/pkg/printing"

// BackendName identifies the backend compiled for this target
const BackendName = "stub"

func newPlatformPrinter() printing.Printer {
	return NewStub()
}
