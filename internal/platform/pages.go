package platform

import (
	"fmt"

	"github.com/tsawler/tabula/reader"
)

// countPages reads the page tree of the PDF at path
func countPages(path string) (int, error) {
	r, err := reader.Open(path)
	if err != nil {
		return 0, fmt.Errorf("opening %s: %w", path, err)
	}
	defer r.Close()

	n, err := r.PageCount()
	if err != nil {
		return 0, fmt.Errorf("counting pages of %s: %w", path, err)
	}
	return n, nil
}
