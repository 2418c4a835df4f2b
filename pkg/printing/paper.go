package printing

import (
	"fmt"
	"strings"
)

// PaperSize is a named physical sheet format
type PaperSize string

const (
	PaperSizeA4      PaperSize = "A4"      // 210mm x 297mm
	PaperSizeA3      PaperSize = "A3"      // 297mm x 420mm
	PaperSizeA5      PaperSize = "A5"      // 148mm x 210mm
	PaperSizeLetter  PaperSize = "Letter"  // 216mm x 279mm
	PaperSizeLegal   PaperSize = "Legal"   // 216mm x 356mm
	PaperSizeTabloid PaperSize = "Tabloid" // 279mm x 432mm
)

// PaperSizes returns every supported paper size in declaration order
func PaperSizes() []PaperSize {
	return []PaperSize{
		PaperSizeA4,
		PaperSizeA3,
		PaperSizeA5,
		PaperSizeLetter,
		PaperSizeLegal,
		PaperSizeTabloid,
	}
}

// IsValid checks if the PaperSize is a valid value
func (p PaperSize) IsValid() bool {
	switch p {
	case PaperSizeA4, PaperSizeA3, PaperSizeA5, PaperSizeLetter, PaperSizeLegal, PaperSizeTabloid:
		return true
	}
	return false
}

// String returns the string representation of PaperSize
func (p PaperSize) String() string {
	return string(p)
}

// DimensionsMM returns the sheet dimensions in millimeters (width, height)
// in portrait orientation. Unknown sizes report A4.
func (p PaperSize) DimensionsMM() (width, height float64) {
	switch p {
	case PaperSizeA3:
		return 297, 420
	case PaperSizeA5:
		return 148, 210
	case PaperSizeLetter:
		return 216, 279
	case PaperSizeLegal:
		return 216, 356
	case PaperSizeTabloid:
		return 279, 432
	default:
		return 210, 297
	}
}

// ParsePaperSize matches a paper size name case-insensitively
func ParsePaperSize(s string) (PaperSize, error) {
	for _, p := range PaperSizes() {
		if strings.EqualFold(strings.TrimSpace(s), string(p)) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown paper size %q", s)
}

// Orientation is the page orientation for printing
type Orientation string

const (
	OrientationPortrait  Orientation = "Portrait"
	OrientationLandscape Orientation = "Landscape"
)

// IsValid checks if the Orientation is a valid value
func (o Orientation) IsValid() bool {
	switch o {
	case OrientationPortrait, OrientationLandscape:
		return true
	}
	return false
}

// String returns the string representation of Orientation
func (o Orientation) String() string {
	return string(o)
}

// ParseOrientation matches an orientation name case-insensitively
func ParseOrientation(s string) (Orientation, error) {
	for _, o := range []Orientation{OrientationPortrait, OrientationLandscape} {
		if strings.EqualFold(strings.TrimSpace(s), string(o)) {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown orientation %q", s)
}
