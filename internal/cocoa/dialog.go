// Package cocoa drives the AppKit/PDFKit print dialog through raw
// Objective-C message dispatch.
//
// The dialog sequence in this file is platform-neutral and talks to a
// Bridge; the darwin build supplies a Bridge backed by the Objective-C
// runtime. Every object the sequence creates is owned by a scope that
// releases it exactly once on every return path.
package cocoa

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/logandonley/docprint/pkg/printing"
)

// ID is an Objective-C object pointer. Zero is nil.
type ID uintptr

// Bridge sends the messages the print dialog needs. Constructors return
// objects the caller owns (+1 retain count) or 0 on failure.
type Bridge interface {
	// SharedApplication returns NSApp, creating it if needed; not owned
	SharedApplication() ID
	// ActivateApplication makes app a regular foreground application
	ActivateApplication(app ID)
	// NewString returns an owned NSString holding s
	NewString(s string) ID
	// NewFileURL returns an owned file NSURL for the path string
	NewFileURL(path ID) ID
	// NewDocument returns an owned PDFDocument loaded from url
	NewDocument(url ID) ID
	// NewView returns an owned PDFView displaying doc
	NewView(doc ID) ID
	// SharedPrintInfo returns the process-wide NSPrintInfo; not owned
	SharedPrintInfo() ID
	// NewPrintOperation returns an autoreleased NSPrintOperation; not owned
	NewPrintOperation(view, info ID) ID
	// RunOperation runs op synchronously
	RunOperation(op ID)
	// Release sends release to obj
	Release(obj ID)
}

// scope owns objects and releases them in reverse order of acquisition
type scope struct {
	bridge Bridge
	owned  []ID
}

func (s *scope) own(obj ID) ID {
	if obj != 0 {
		s.owned = append(s.owned, obj)
	}
	return obj
}

func (s *scope) close() {
	for i := len(s.owned) - 1; i >= 0; i-- {
		s.bridge.Release(s.owned[i])
	}
	s.owned = nil
}

// ShowPrintDialog opens the native print panel for the PDF at path and
// blocks until the print session ends
func ShowPrintDialog(b Bridge, path string) error {
	if err := checkPath(path); err != nil {
		return err
	}

	// The print panel runs app-modal through NSApp
	app := b.SharedApplication()
	if app == 0 {
		return printing.NewInitError("NSApplication unavailable", nil)
	}
	b.ActivateApplication(app)

	s := &scope{bridge: b}
	defer s.close()

	str := s.own(b.NewString(path))
	if str == 0 {
		return printing.NewPrintError("failed to create NSString", nil)
	}

	url := s.own(b.NewFileURL(str))
	if url == 0 {
		return printing.NewPrintError("failed to create NSURL", nil)
	}

	doc := s.own(b.NewDocument(url))
	if doc == 0 {
		return printing.NewPrintError("failed to create PDFDocument", nil)
	}

	view := s.own(b.NewView(doc))
	if view == 0 {
		return printing.NewPrintError("failed to create PDFView", nil)
	}

	op := b.NewPrintOperation(view, b.SharedPrintInfo())
	if op == 0 {
		return printing.NewPrintError("failed to create NSPrintOperation", nil)
	}

	b.RunOperation(op)
	return nil
}

// checkPath rejects paths the runtime cannot represent as a C string and
// paths that do not name a regular file
func checkPath(path string) error {
	if path == "" {
		return printing.NewPrintError("invalid PDF path: empty", nil)
	}
	if !utf8.ValidString(path) || strings.IndexByte(path, 0) >= 0 {
		return printing.NewPrintError("invalid path encoding", nil)
	}
	info, err := os.Stat(path)
	if err != nil {
		return printing.NewPrintError("invalid PDF path", err)
	}
	if !info.Mode().IsRegular() {
		return printing.NewPrintError(fmt.Sprintf("invalid PDF path: %s is not a regular file", path), nil)
	}
	return nil
}
