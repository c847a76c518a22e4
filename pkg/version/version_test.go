package version_test

import (
	"runtime/debug"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kpauljoseph/pdfstat/pkg/version"
)

var _ = Describe("Version", func() {
	var info *debug.BuildInfo

	BeforeEach(func() {
		info = &debug.BuildInfo{
			Main:     debug.Module{Path: "github.com/kpauljoseph/pdfstat", Version: "v1.2.0"},
			Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc123"}},
		}
	})

	It("should keep injected values", func() {
		v, commit := version.ResolveFrom("v0.9.0", "deadbeef", info)
		Expect(v).To(Equal("v0.9.0"))
		Expect(commit).To(Equal("deadbeef"))
	})

	It("should fill placeholders from build info", func() {
		v, commit := version.ResolveFrom("VERSION_PLACEHOLDER", "COMMIT_PLACEHOLDER", info)
		Expect(v).To(Equal("v1.2.0"))
		Expect(commit).To(Equal("abc123"))
	})

	It("should keep the placeholder for development builds", func() {
		info.Main.Version = "(devel)"
		info.Settings = nil
		v, commit := version.ResolveFrom("VERSION_PLACEHOLDER", "COMMIT_PLACEHOLDER", info)
		Expect(v).To(Equal("VERSION_PLACEHOLDER"))
		Expect(commit).To(Equal("COMMIT_PLACEHOLDER"))
	})

	It("should name the product in the detailed info", func() {
		Expect(version.GetDetailedVersionInfo()).To(HavePrefix("pdfstat\nVersion:  "))
		Expect(version.GetVersionInfo()).To(HavePrefix("pdfstat "))
	})
})
