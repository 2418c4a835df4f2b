// Package platform holds one printing backend per operating system family
// and selects exactly one of them at build time.
//
// linux builds use CUPS, darwin builds use CUPS plus the AppKit print panel,
// windows builds use the shell print verbs, and every other target gets the
// Stub, which fails every operation. A backend is either complete or a Stub;
// no target gets a partial implementation.
package platform

import "github.com/logandonley/docprint/pkg/printing"

// New returns the backend compiled for this target
func New() printing.Printer {
	return newPlatformPrinter()
}
