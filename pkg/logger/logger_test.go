package logger_test

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/pdfstat/pkg/logger"
)

var _ = Describe("Logger", func() {
	var (
		buf *bytes.Buffer
		log *logger.Logger
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		log = logger.New(
			logger.WithOutput(buf),
			logger.WithPrefix("[test] "),
			logger.WithFlags(0),
		)
	})

	It("should always print info and warn messages", func() {
		log.Info("pages: %d", 3)
		log.Warn("page %d failed", 2)
		Expect(buf.String()).To(Equal("[test] INFO: pages: 3\n[test] WARN: page 2 failed\n"))
	})

	It("should print debug messages only in verbose mode", func() {
		log.Debug("hidden")
		Expect(buf.String()).To(BeEmpty())

		log.SetVerbose(true)
		log.Debug("shown")
		Expect(buf.String()).To(Equal("[test] DEBUG: shown\n"))
	})

	It("should print trace messages only at trace level", func() {
		log.SetVerbose(true)
		log.Trace("hidden")
		Expect(buf.String()).To(BeEmpty())

		log.SetLevel(logger.LevelTrace)
		log.Trace("pixel %d", 7)
		Expect(buf.String()).To(Equal("[test] TRACE: pixel 7\n"))
	})
})
