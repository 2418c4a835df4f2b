package logger_test

import (
	"bytes"
	"encoding/json"

	"github.com/logandonley/docprint/internal/logger"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

var _ = Describe("Logger", func() {
	var buf *bytes.Buffer

	BeforeEach(func() {
		buf = &bytes.Buffer{}
	})

	It("should write structured JSON entries", func() {
		log := logger.New("info", "json", buf)
		log.Info("submitted job", zap.String("printer", "Office"), zap.Int("copies", 2))

		var entry map[string]any
		Expect(json.Unmarshal(buf.Bytes(), &entry)).To(Succeed())
		Expect(entry).To(HaveKeyWithValue("level", "info"))
		Expect(entry).To(HaveKeyWithValue("msg", "submitted job"))
		Expect(entry).To(HaveKeyWithValue("printer", "Office"))
		Expect(entry).To(HaveKeyWithValue("copies", BeNumerically("==", 2)))
		Expect(entry).To(HaveKey("time"))
	})

	It("should write console entries by default", func() {
		log := logger.New("info", "", buf)
		log.Info("listing printers")

		Expect(buf.String()).To(ContainSubstring("INFO"))
		Expect(buf.String()).To(ContainSubstring("listing printers"))
	})

	DescribeTable("should filter by level",
		func(level string, debug, info, warn bool) {
			log := logger.New(level, "json", buf)
			Expect(log.Core().Enabled(zap.DebugLevel)).To(Equal(debug))
			Expect(log.Core().Enabled(zap.InfoLevel)).To(Equal(info))
			Expect(log.Core().Enabled(zap.WarnLevel)).To(Equal(warn))
		},
		Entry("debug", "debug", true, true, true),
		Entry("info", "INFO", false, true, true),
		Entry("warn", "warn", false, false, true),
		Entry("error", "error", false, false, false),
		Entry("unknown falls back to warn", "verbose", false, false, true),
	)
})
