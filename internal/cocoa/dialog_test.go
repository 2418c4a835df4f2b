package cocoa_test

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/logandonley/docprint/internal/cocoa"
	"github.com/logandonley/docprint/pkg/printing"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

// Mock bridge that counts owned objects and can fail a chosen step
type mockBridge struct {
	failAt string

	next      cocoa.ID
	owned     map[cocoa.ID]string
	released  map[cocoa.ID]int
	unowned   map[cocoa.ID]string
	ran       cocoa.ID
	sequence  []string
	boundView map[cocoa.ID]cocoa.ID
	app       cocoa.ID
	activated cocoa.ID
}

func newMockBridge(failAt string) *mockBridge {
	return &mockBridge{
		failAt:    failAt,
		owned:     make(map[cocoa.ID]string),
		released:  make(map[cocoa.ID]int),
		unowned:   make(map[cocoa.ID]string),
		boundView: make(map[cocoa.ID]cocoa.ID),
	}
}

func (b *mockBridge) construct(step string) cocoa.ID {
	b.sequence = append(b.sequence, step)
	if b.failAt == step {
		return 0
	}
	b.next++
	b.owned[b.next] = step
	return b.next
}

func (b *mockBridge) SharedApplication() cocoa.ID {
	b.sequence = append(b.sequence, "application")
	if b.failAt == "application" {
		return 0
	}
	b.next++
	b.unowned[b.next] = "application"
	b.app = b.next
	return b.next
}

func (b *mockBridge) ActivateApplication(app cocoa.ID) {
	b.sequence = append(b.sequence, "activate")
	b.activated = app
}

func (b *mockBridge) NewString(string) cocoa.ID { return b.construct("string") }
func (b *mockBridge) NewFileURL(cocoa.ID) cocoa.ID { return b.construct("url") }
func (b *mockBridge) NewDocument(cocoa.ID) cocoa.ID {
	return b.construct("document")
}

func (b *mockBridge) NewView(doc cocoa.ID) cocoa.ID {
	view := b.construct("view")
	if view != 0 {
		b.boundView[view] = doc
	}
	return view
}

func (b *mockBridge) SharedPrintInfo() cocoa.ID {
	b.next++
	b.unowned[b.next] = "printInfo"
	return b.next
}

func (b *mockBridge) NewPrintOperation(view, info cocoa.ID) cocoa.ID {
	b.sequence = append(b.sequence, "operation")
	if b.failAt == "operation" {
		return 0
	}
	b.next++
	b.unowned[b.next] = "operation"
	return b.next
}

func (b *mockBridge) RunOperation(op cocoa.ID) {
	b.ran = op
}

func (b *mockBridge) Release(obj cocoa.ID) {
	b.released[obj]++
}

// leaked returns owned objects that were never released
func (b *mockBridge) leaked() []string {
	var leaks []string
	for id, name := range b.owned {
		if b.released[id] == 0 {
			leaks = append(leaks, name)
		}
	}
	return leaks
}

// overReleased returns objects released more than once or not owned at all
func (b *mockBridge) overReleased() []cocoa.ID {
	var bad []cocoa.ID
	for id, n := range b.released {
		if _, ok := b.owned[id]; !ok || n > 1 {
			bad = append(bad, id)
		}
	}
	return bad
}

var _ = Describe("ShowPrintDialog", func() {
	var (
		tempDir string
		pdfPath string
	)

	BeforeEach(func() {
		var err error
		tempDir, err = os.MkdirTemp("", "cocoa-test-*")
		Expect(err).NotTo(HaveOccurred())

		pdfPath = filepath.Join(tempDir, "sample.pdf")
		Expect(os.WriteFile(pdfPath, []byte("%PDF-1.4\n%%EOF\n"), 0644)).To(Succeed())
	})

	AfterEach(func() {
		os.RemoveAll(tempDir)
	})

	It("should run the print operation and release every owned object", func() {
		bridge := newMockBridge("")
		Expect(cocoa.ShowPrintDialog(bridge, pdfPath)).To(Succeed())

		Expect(bridge.sequence).To(Equal([]string{"application", "activate", "string", "url", "document", "view", "operation"}))
		Expect(bridge.ran).NotTo(BeZero())
		Expect(bridge.unowned[bridge.ran]).To(Equal("operation"))
		Expect(bridge.owned).To(HaveLen(4))
		Expect(bridge.leaked()).To(BeEmpty())
		Expect(bridge.overReleased()).To(BeEmpty())
	})

	It("should activate the shared application before running the panel", func() {
		bridge := newMockBridge("")
		Expect(cocoa.ShowPrintDialog(bridge, pdfPath)).To(Succeed())

		Expect(bridge.app).NotTo(BeZero())
		Expect(bridge.activated).To(Equal(bridge.app))
		Expect(bridge.released).NotTo(HaveKey(bridge.app))
	})

	It("should fail to initialize without an application object", func() {
		bridge := newMockBridge("application")
		err := cocoa.ShowPrintDialog(bridge, pdfPath)

		Expect(errors.Is(err, printing.ErrInit)).To(BeTrue())
		Expect(bridge.sequence).To(Equal([]string{"application"}))
		Expect(bridge.owned).To(BeEmpty())
		Expect(bridge.ran).To(BeZero())
	})

	It("should bind the view to the document", func() {
		bridge := newMockBridge("")
		Expect(cocoa.ShowPrintDialog(bridge, pdfPath)).To(Succeed())

		for view, doc := range bridge.boundView {
			Expect(bridge.owned[view]).To(Equal("view"))
			Expect(bridge.owned[doc]).To(Equal("document"))
		}
	})

	It("should never release the shared print info or the operation", func() {
		bridge := newMockBridge("")
		Expect(cocoa.ShowPrintDialog(bridge, pdfPath)).To(Succeed())

		for id := range bridge.unowned {
			Expect(bridge.released).NotTo(HaveKey(id))
		}
	})

	DescribeTable("should release earlier objects when a step fails",
		func(step string, constructed int) {
			bridge := newMockBridge(step)
			err := cocoa.ShowPrintDialog(bridge, pdfPath)

			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, printing.ErrPrint)).To(BeTrue())
			Expect(bridge.owned).To(HaveLen(constructed))
			Expect(bridge.leaked()).To(BeEmpty())
			Expect(bridge.overReleased()).To(BeEmpty())
			Expect(bridge.ran).To(BeZero())
		},
		Entry("string", "string", 0),
		Entry("url", "url", 1),
		Entry("document", "document", 2),
		Entry("view", "view", 3),
		Entry("print operation", "operation", 4),
	)

	DescribeTable("should reject unusable paths without constructing objects",
		func(path func() string) {
			bridge := newMockBridge("")
			err := cocoa.ShowPrintDialog(bridge, path())

			Expect(err).To(HaveOccurred())
			Expect(printing.KindOf(err)).To(Equal(printing.KindPrint))
			Expect(bridge.sequence).To(BeEmpty())
			Expect(bridge.released).To(BeEmpty())
		},
		Entry("empty", func() string { return "" }),
		Entry("missing file", func() string { return filepath.Join(tempDir, "missing.pdf") }),
		Entry("directory", func() string { return tempDir }),
		Entry("interior NUL", func() string { return pdfPath + "\x00.pdf" }),
		Entry("invalid UTF-8", func() string { return filepath.Join(tempDir, "\xff\xfe.pdf") }),
	)
})
