package log_test

import (
	"tokenrelay/pkg/log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("Log", func() {
	Describe("ParseLevel", func() {
		It("should parse known levels", func() {
			level, err := log.ParseLevel("warn")
			Expect(err).NotTo(HaveOccurred())
			Expect(level).To(Equal(zapcore.WarnLevel))
		})

		It("should reject unknown levels", func() {
			level, err := log.ParseLevel("loud")
			Expect(err).To(HaveOccurred())
			Expect(level).To(Equal(zapcore.InfoLevel))
		})
	})

	Describe("NewZapLogger", func() {
		It("should honour the level", func() {
			logger := log.NewZapLogger("test", zapcore.ErrorLevel)
			Expect(logger.Desugar().Core().Enabled(zapcore.InfoLevel)).To(BeFalse())
			Expect(logger.Desugar().Core().Enabled(zapcore.ErrorLevel)).To(BeTrue())
		})
	})
})
