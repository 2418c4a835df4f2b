package platform

import (
	"errors"
	"fmt"
	"math"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/logandonley/docprint/pkg/printing"
)

// CUPS drives the CUPS command-line clients (lpstat, lpoptions, lp)
type CUPS struct {
	run            runner
	runDialog      runner
	lookPath       func(file string) (string, error)
	countPages     func(path string) (int, error)
	dialogCommands []string
}

// NewCUPS returns a CUPS backend using the system's client tools
func NewCUPS() *CUPS {
	return &CUPS{
		run:            runCommand,
		runDialog:      runInteractive,
		lookPath:       exec.LookPath,
		countPages:     countPages,
		dialogCommands: []string{"gtklp", "xpp"},
	}
}

func (c *CUPS) GetPrinters() ([]printing.PrinterInfo, error) {
	names, err := c.destinations()
	if err != nil {
		return nil, err
	}

	defaultName, err := c.defaultDestination()
	if err != nil {
		return nil, err
	}

	printers := make([]printing.PrinterInfo, 0, len(names))
	for _, name := range names {
		info := printing.PrinterInfo{
			Name:      name,
			IsDefault: name == defaultName,
		}
		// Capabilities stay false when the PPD cannot be read
		if output, err := c.run("lpoptions", "-p", name, "-l"); err == nil {
			info.SupportsColor, info.SupportsDuplex = parseCapabilities(output)
		}
		printers = append(printers, info)
	}

	return printers, nil
}

func (c *CUPS) PrintPDF(path string, settings printing.PrintSettings, printerName string) error {
	if err := checkArgPath(path); err != nil {
		return err
	}

	names, err := c.destinations()
	if err != nil {
		return err
	}

	defaultName := ""
	if printerName == "" {
		if defaultName, err = c.defaultDestination(); err != nil {
			return err
		}
	}

	dest, err := resolvePrinter(names, defaultName, printerName)
	if err != nil {
		return err
	}

	args, err := c.jobArgs(path, settings, dest)
	if err != nil {
		return err
	}

	if _, err := c.run("lp", args...); err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return printing.NewInitError("CUPS client tools not installed", err)
		}
		return printing.NewPrintError(fmt.Sprintf("submitting %s to %s", filepath.Base(path), dest), err)
	}

	return nil
}

// ShowPrintDialog runs the first installed interactive CUPS front-end and
// waits for it to exit
func (c *CUPS) ShowPrintDialog(path string) error {
	if err := checkArgPath(path); err != nil {
		return err
	}

	for _, name := range c.dialogCommands {
		bin, err := c.lookPath(name)
		if err != nil {
			continue
		}
		if _, err := c.runDialog(bin, path); err != nil {
			return printing.NewPrintError(name+" exited with an error", err)
		}
		return nil
	}

	return printing.NewInitError(
		fmt.Sprintf("no interactive print dialog installed (tried %s)", strings.Join(c.dialogCommands, ", ")), nil)
}

func (c *CUPS) destinations() ([]string, error) {
	output, err := c.run("lpstat", "-e")
	if err != nil {
		if stderrContains(err, "no destinations") {
			return nil, nil
		}
		return nil, cupsError("listing destinations", err)
	}

	var names []string
	for _, line := range strings.Split(string(output), "\n") {
		if name := strings.TrimSpace(line); name != "" {
			names = append(names, name)
		}
	}
	return names, nil
}

func (c *CUPS) defaultDestination() (string, error) {
	output, err := c.run("lpstat", "-d")
	if err != nil {
		if stderrContains(err, "no system default") {
			return "", nil
		}
		return "", cupsError("reading default destination", err)
	}

	line := strings.TrimSpace(string(output))
	if _, name, ok := strings.Cut(line, "system default destination:"); ok {
		return strings.TrimSpace(name), nil
	}
	return "", nil
}

// jobArgs builds the lp command line for one job
func (c *CUPS) jobArgs(path string, s printing.PrintSettings, dest string) ([]string, error) {
	copies := s.Copies
	if copies < 1 {
		copies = 1
	}

	args := []string{
		"-d", dest,
		"-n", strconv.Itoa(copies),
		"-t", filepath.Base(path),
		"-o", "media=" + media(s.PaperSize),
		"-o", "orientation-requested=" + orientationRequested(s.Orientation),
		"-o", "sides=" + sides(s),
		"-o", "print-color-mode=" + colorMode(s.Color),
	}
	if s.ScaleToFit {
		args = append(args, "-o", "fit-to-page")
	}
	args = append(args,
		"-o", "page-top="+points(s.Margins.Top),
		"-o", "page-right="+points(s.Margins.Right),
		"-o", "page-bottom="+points(s.Margins.Bottom),
		"-o", "page-left="+points(s.Margins.Left),
	)

	r, ok, err := c.pageRange(path, s.PageRange)
	if err != nil {
		return nil, err
	}
	if ok {
		args = append(args, "-o", fmt.Sprintf("page-ranges=%d-%d", r.Start+1, r.End+1))
	}

	return append(args, "--", path), nil
}

// pageRange resolves the requested range against the document's page count.
// The bool is false when no page-ranges option should be sent.
func (c *CUPS) pageRange(path string, requested *printing.PageRange) (printing.PageRange, bool, error) {
	count, err := c.countPages(path)
	if err != nil {
		// Let CUPS decide when the page tree cannot be read
		if requested == nil {
			return printing.PageRange{}, false, nil
		}
		return *requested, true, nil
	}

	if requested == nil {
		return printing.AllPages(count), true, nil
	}

	r := *requested
	if count > 0 && r.Start > count-1 {
		return printing.PageRange{}, false, printing.NewPrintError(
			fmt.Sprintf("page range starts at page %d but the document has %d pages", r.Start+1, count), nil)
	}
	if count > 0 && r.End > count-1 {
		r.End = count - 1
	}
	return r, true, nil
}

func cupsError(op string, err error) error {
	if errors.Is(err, exec.ErrNotFound) {
		return printing.NewInitError("CUPS client tools not installed", err)
	}
	for _, reason := range []string{"scheduler is not running", "unable to connect", "connection refused"} {
		if stderrContains(err, reason) {
			return printing.NewInitError("CUPS scheduler unavailable", err)
		}
	}
	return printing.NewPlatformError(op+" failed", err)
}

// parseCapabilities reads color and duplex support from lpoptions -l output
func parseCapabilities(output []byte) (color, duplex bool) {
	for _, line := range strings.Split(string(output), "\n") {
		key, values, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key, _, _ = strings.Cut(key, "/")

		for _, choice := range strings.Fields(strings.ToLower(values)) {
			choice = strings.TrimPrefix(choice, "*")
			switch strings.ToLower(strings.TrimSpace(key)) {
			case "colormodel", "colormode", "print-color-mode":
				if strings.Contains(choice, "rgb") || strings.Contains(choice, "cmy") || choice == "color" {
					color = true
				}
			case "duplex", "sides":
				if strings.Contains(choice, "tumble") || strings.HasPrefix(choice, "two-sided") {
					duplex = true
				}
			}
		}
	}
	return color, duplex
}

func media(p printing.PaperSize) string {
	if !p.IsValid() {
		return string(printing.PaperSizeA4)
	}
	return string(p)
}

// orientationRequested maps to the IPP enum: 3 portrait, 4 landscape
func orientationRequested(o printing.Orientation) string {
	if o == printing.OrientationLandscape {
		return "4"
	}
	return "3"
}

func sides(s printing.PrintSettings) string {
	switch {
	case !s.Duplex:
		return "one-sided"
	case s.Orientation == printing.OrientationLandscape:
		return "two-sided-short-edge"
	default:
		return "two-sided-long-edge"
	}
}

func colorMode(color bool) string {
	if color {
		return "color"
	}
	return "monochrome"
}

// points converts millimeters to PostScript points
func points(mm float64) string {
	if mm < 0 {
		mm = 0
	}
	return strconv.Itoa(int(math.Round(mm * 72 / 25.4)))
}

// checkArgPath rejects paths that cannot be passed as a process argument
func checkArgPath(path string) error {
	if path == "" {
		return printing.NewPrintError("invalid PDF path: empty", nil)
	}
	if strings.IndexByte(path, 0) >= 0 {
		return printing.NewPrintError("invalid path encoding", nil)
	}
	return nil
}
