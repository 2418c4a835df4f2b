package printing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// PageRange is an inclusive, 0-based span of pages to print
type PageRange struct {
	Start int `validate:"gte=0"`
	End   int `validate:"gtefield=Start"`
}

// NewPageRange creates a PageRange covering start through end
func NewPageRange(start, end int) PageRange {
	return PageRange{Start: start, End: end}
}

// AllPages returns the range covering a document of pageCount pages.
// A zero page count saturates to the single-page range {0, 0}.
func AllPages(pageCount int) PageRange {
	end := pageCount - 1
	if end < 0 {
		end = 0
	}
	return PageRange{Start: 0, End: end}
}

// Count returns the number of pages in the range
func (r PageRange) Count() int {
	return r.End - r.Start + 1
}

// ParsePageRange parses 1-based user input such as "3" or "2-5" into a
// 0-based PageRange
func ParsePageRange(s string) (PageRange, error) {
	s = strings.TrimSpace(s)
	first, last, found := strings.Cut(s, "-")
	start, err := strconv.Atoi(strings.TrimSpace(first))
	if err != nil {
		return PageRange{}, fmt.Errorf("invalid page range %q: %w", s, err)
	}
	end := start
	if found {
		end, err = strconv.Atoi(strings.TrimSpace(last))
		if err != nil {
			return PageRange{}, fmt.Errorf("invalid page range %q: %w", s, err)
		}
	}
	if start < 1 || end < start {
		return PageRange{}, fmt.Errorf("invalid page range %q", s)
	}
	return PageRange{Start: start - 1, End: end - 1}, nil
}

// Margins holds page margins in millimeters
type Margins struct {
	Top    float64 `validate:"gte=0"`
	Right  float64 `validate:"gte=0"`
	Bottom float64 `validate:"gte=0"`
	Left   float64 `validate:"gte=0"`
}

// DefaultMargins returns 10mm on every side
func DefaultMargins() Margins {
	return Margins{
		Top:    10,
		Right:  10,
		Bottom: 10,
		Left:   10,
	}
}

// PrintSettings describes a single print job request.
//
// A nil PageRange means every page; the backend resolves it against the
// document's actual page count.
type PrintSettings struct {
	PaperSize   PaperSize   `validate:"enum"`
	Orientation Orientation `validate:"enum"`
	PageRange   *PageRange
	Copies      int `validate:"min=1"`
	Duplex      bool
	Color       bool
	ScaleToFit  bool
	Margins     Margins
}

// DefaultSettings returns the settings used when the caller chose nothing
func DefaultSettings() PrintSettings {
	return PrintSettings{
		PaperSize:   PaperSizeA4,
		Orientation: OrientationPortrait,
		PageRange:   nil,
		Copies:      1,
		Duplex:      false,
		Color:       true,
		ScaleToFit:  true,
		Margins:     DefaultMargins(),
	}
}

// PageSizeMM returns the sheet dimensions with the orientation applied
func (s PrintSettings) PageSizeMM() (width, height float64) {
	width, height = s.PaperSize.DimensionsMM()
	if s.Orientation == OrientationLandscape {
		width, height = height, width
	}
	return width, height
}

// PrintableAreaMM returns the page size minus margins. The result can be
// negative for oversized margins; Validate does not reject that.
func (s PrintSettings) PrintableAreaMM() (width, height float64) {
	width, height = s.PageSizeMM()
	return width - s.Margins.Left - s.Margins.Right, height - s.Margins.Top - s.Margins.Bottom
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("enum", func(fl validator.FieldLevel) bool {
		e, ok := fl.Field().Interface().(interface{ IsValid() bool })
		return ok && e.IsValid()
	})
	return v
}

// Validate checks the settings for values no backend can honor. Backends do
// not call it; callers validate user input before submitting a job.
func (s PrintSettings) Validate() error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return NewPrintError("invalid print settings", err)
	}

	problems := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		problems = append(problems, fmt.Sprintf("%s failed %q (value %v)", fe.Namespace(), fe.Tag(), fe.Value()))
	}
	return NewPrintError("invalid print settings: "+strings.Join(problems, "; "), nil)
}
