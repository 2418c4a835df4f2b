//go:build windows

package platform

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"

	"golang.org/x/sys/windows"

	"github.com/logandonley/docprint/pkg/printing"
)

// BackendName identifies the backend compiled for this target
const BackendName = "windows"

// Windows enumerates printers through CIM and prints through the shell's
// print verbs, which hand the file to its registered handler application
type Windows struct {
	run   runner
	shell func(verb, path, args string, show int32) error
}

// NewWindows returns the Windows backend
func NewWindows() *Windows {
	return &Windows{run: runCommand, shell: shellExecute}
}

func (w *Windows) GetPrinters() ([]printing.PrinterInfo, error) {
	output, err := w.run("powershell", "-NoProfile", "-NonInteractive", "-Command", enumerateScript)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return nil, printing.NewInitError("PowerShell not available", err)
		}
		return nil, printing.NewPlatformError("enumerating printers failed", err)
	}

	printers, err := parseWin32Printers(output)
	if err != nil {
		return nil, printing.NewPlatformError("enumerating printers failed", err)
	}
	return printers, nil
}

// PrintPDF sends one printto request per copy. The handler application owns
// the remaining settings.
func (w *Windows) PrintPDF(path string, settings printing.PrintSettings, printerName string) error {
	printers, err := w.GetPrinters()
	if err != nil {
		return err
	}

	names, defaultName := splitDefault(printers)
	dest, err := resolvePrinter(names, defaultName, printerName)
	if err != nil {
		return err
	}

	copies := settings.Copies
	if copies < 1 {
		copies = 1
	}
	for i := 0; i < copies; i++ {
		if err := w.shell("printto", path, `"`+dest+`"`, windows.SW_HIDE); err != nil {
			return err
		}
	}
	return nil
}

func (w *Windows) ShowPrintDialog(path string) error {
	return w.shell("print", path, "", windows.SW_SHOWNORMAL)
}

func shellExecute(verb, path, args string, show int32) error {
	verbPtr, err := windows.UTF16PtrFromString(verb)
	if err != nil {
		return printing.NewPrintError("invalid shell verb", err)
	}
	filePtr, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return printing.NewPrintError("invalid path encoding", err)
	}
	var argsPtr *uint16
	if args != "" {
		if argsPtr, err = windows.UTF16PtrFromString(args); err != nil {
			return printing.NewPrintError("invalid printer name", err)
		}
	}

	if err := windows.ShellExecute(0, verbPtr, filePtr, argsPtr, nil, show); err != nil {
		return printing.NewPrintError(fmt.Sprintf("shell rejected %s request for %s", verb, filepath.Base(path)), err)
	}
	return nil
}

func newPlatformPrinter() printing.Printer {
	return NewWindows()
}
