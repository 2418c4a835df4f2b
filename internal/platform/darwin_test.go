//go:build darwin

package platform_test

import (
	"github.com/logandonley/docprint/internal/platform"
	"github.com/logandonley/docprint/pkg/printing"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Darwin backend", func() {
	It("should be the backend compiled for darwin", func() {
		Expect(platform.New()).To(BeAssignableToTypeOf(&platform.Darwin{}))
	})

	It("should enumerate and print through the embedded CUPS backend", func() {
		runner := newMockRunner()
		runner.outputs["lpstat -e"] = "Office\n"
		runner.outputs["lpstat -d"] = "system default destination: Office\n"
		runner.outputs["lpoptions -p Office -l"] = officeOptions

		backend := platform.NewDarwinWith(platform.NewCUPSWith(runner.run, noDialogs, fixedPages(2), nil))

		printers, err := backend.GetPrinters()
		Expect(err).NotTo(HaveOccurred())
		Expect(printers).To(Equal([]printing.PrinterInfo{
			{Name: "Office", IsDefault: true, SupportsColor: true, SupportsDuplex: true},
		}))

		Expect(backend.PrintPDF("/tmp/sample.pdf", printing.DefaultSettings(), "")).To(Succeed())
		Expect(runner.lastCall("lp")).To(ContainElements("-d", "Office"))
	})

	It("should reject unusable paths in the native dialog", func() {
		runner := newMockRunner()
		backend := platform.NewDarwinWith(platform.NewCUPSWith(runner.run, noDialogs, fixedPages(1), nil))

		err := backend.ShowPrintDialog("")
		Expect(printing.KindOf(err)).To(Equal(printing.KindPrint))
		Expect(runner.calls).To(BeEmpty())
	})
})
