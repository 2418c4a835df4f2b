package platform_test

import (
	"errors"
	"os/exec"
	"strings"

	"github.com/logandonley/docprint/internal/platform"
	"github.com/logandonley/docprint/pkg/printing"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Platform", func() {
	Context("Backend selection", func() {
		It("should return the backend compiled for this target", func() {
			backend := platform.New()
			Expect(backend).NotTo(BeNil())

			switch platform.BackendName {
			case "cups":
				Expect(backend).To(BeAssignableToTypeOf(&platform.CUPS{}))
			case "stub":
				Expect(backend).To(BeAssignableToTypeOf(&platform.Stub{}))
			default:
				Expect(platform.BackendName).To(BeElementOf("darwin", "windows"))
			}
		})
	})

	Context("Stub", func() {
		var stub *platform.Stub

		BeforeEach(func() {
			stub = platform.NewStub()
		})

		It("should fail enumeration", func() {
			printers, err := stub.GetPrinters()
			Expect(printers).To(BeNil())
			Expect(errors.Is(err, printing.ErrPlatform)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("not supported on this platform"))
		})

		It("should fail printing regardless of input", func() {
			for _, path := range []string{"/tmp/sample.pdf", "", "\x00"} {
				err := stub.PrintPDF(path, printing.DefaultSettings(), "")
				Expect(printing.KindOf(err)).To(Equal(printing.KindPlatform))
			}
			err := stub.PrintPDF("/tmp/sample.pdf", printing.DefaultSettings(), "Office")
			Expect(printing.KindOf(err)).To(Equal(printing.KindPlatform))
		})

		It("should fail the print dialog", func() {
			err := stub.ShowPrintDialog("/tmp/sample.pdf")
			Expect(printing.KindOf(err)).To(Equal(printing.KindPlatform))
			Expect(err.Error()).To(ContainSubstring("not supported on this platform"))
		})
	})

	Context("Printer resolution", func() {
		names := []string{"Office", "Lab_Color"}

		It("should use the default when no name is given", func() {
			name, err := platform.ResolvePrinter(names, "Office", "")
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("Office"))
		})

		It("should match named printers case-insensitively", func() {
			name, err := platform.ResolvePrinter(names, "", "lab_color")
			Expect(err).NotTo(HaveOccurred())
			Expect(name).To(Equal("Lab_Color"))
		})

		It("should fail without a default", func() {
			_, err := platform.ResolvePrinter(names, "", "")
			Expect(errors.Is(err, printing.ErrNoPrinter)).To(BeTrue())
		})

		It("should fail for an unknown printer", func() {
			_, err := platform.ResolvePrinter(names, "Office", "Basement")
			Expect(errors.Is(err, printing.ErrNoPrinter)).To(BeTrue())
			Expect(err.Error()).To(ContainSubstring("Basement"))
		})
	})

	Context("Commands", func() {
		It("should report a missing binary as not found", func() {
			_, err := platform.RunCommand("docprint-no-such-binary")
			Expect(err).To(HaveOccurred())
			Expect(errors.Is(err, exec.ErrNotFound)).To(BeTrue())
		})

		It("should run print-service clients under the C locale", func() {
			if _, err := exec.LookPath("sh"); err != nil {
				Skip("sh not available")
			}
			GinkgoT().Setenv("LC_ALL", "de_DE.UTF-8")

			output, err := platform.RunCommand("sh", "-c", "echo LC_ALL=$LC_ALL")
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.TrimSpace(string(output))).To(Equal("LC_ALL=C"))
		})

		It("should keep the caller's locale for interactive programs", func() {
			if _, err := exec.LookPath("sh"); err != nil {
				Skip("sh not available")
			}
			GinkgoT().Setenv("LC_ALL", "de_DE.UTF-8")

			output, err := platform.RunInteractive("sh", "-c", "echo LC_ALL=$LC_ALL")
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.TrimSpace(string(output))).To(Equal("LC_ALL=de_DE.UTF-8"))
		})

		It("should capture standard error of a failed command", func() {
			if _, err := exec.LookPath("sh"); err != nil {
				Skip("sh not available")
			}

			_, err := platform.RunCommand("sh", "-c", "echo 'lpstat: scheduler is not running' >&2; exit 1")
			Expect(err).To(MatchError(ContainSubstring("scheduler is not running")))
		})
	})
})
