// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

//go:build integration

package integration

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/oklog/ulid/v2"
	. "github.com/onsi/ginkgo/v2" //nolint:revive // ginkgo convention
	. "github.com/onsi/gomega"    //nolint:revive // gomega convention

	"github.com/DougDougDevDev/DougDougEmojiChat/internal/chat"
	"github.com/DougDougDevDev/DougDougEmojiChat/internal/config"
	"github.com/DougDougDevDev/DougDougEmojiChat/internal/emoji"
)

// writeConfig writes a config fixture and returns its path.
func writeConfig(contents string) string {
	path := filepath.Join(GinkgoT().TempDir(), "emojichat.yml")
	Expect(os.WriteFile(path, []byte(contents), 0o600)).To(Succeed())
	return path
}

// loadPipeline builds the full config-to-chat pipeline from a config
// file, the way the serve command wires it.
func loadPipeline(path string) (*emoji.Handler, *chat.Service) {
	cfg, err := config.Load(path, nil)
	Expect(err).NotTo(HaveOccurred())

	logger := slog.New(slog.DiscardHandler)
	handler := emoji.NewHandler(logger)
	handler.Load(cfg.Settings())
	return handler, chat.NewService(handler, logger)
}

var _ = Describe("Chat pipeline", func() {
	const baseConfig = `
pack-variant: 1
shortcuts:
  "100": ["hundred", "century"]
disabled-emojis: []
disable-emojis: false
fix-emoji-coloring: false
`

	var (
		handler *emoji.Handler
		svc     *chat.Service
		user    ulid.ULID
	)

	BeforeEach(func() {
		handler, svc = loadPipeline(writeConfig(baseConfig))
		user = ulid.MustNew(1, nil)
	})

	It("expands shortcuts and then tokens", func() {
		res := svc.ProcessInbound(user, "nice one hundred")

		Expect(res.Rejected).To(BeFalse())
		Expect(res.Message).To(Equal("nice one 가"))
	})

	It("expands tokens directly", func() {
		res := svc.ProcessInbound(user, "straight :100: talk")

		Expect(res.Message).To(Equal("straight 가 talk"))
	})

	It("leaves unknown tokens untouched", func() {
		res := svc.ProcessInbound(user, ":definitely-not-a-token:")

		Expect(res.Message).To(Equal(":definitely-not-a-token:"))
	})

	Describe("opt-out", func() {
		It("skips shortcut expansion for opted-out users but keeps tokens", func() {
			Expect(svc.ToggleShortcuts(user)).To(BeTrue())

			res := svc.ProcessInbound(user, "hundred :100:")

			Expect(res.Message).To(Equal("hundred 가"))
		})

		It("survives a configuration reload", func() {
			Expect(svc.ToggleShortcuts(user)).To(BeTrue())

			cfg, err := config.Load(writeConfig(baseConfig), nil)
			Expect(err).NotTo(HaveOccurred())
			handler.Load(cfg.Settings())

			Expect(handler.HasShortcutsOff(user)).To(BeTrue())
		})
	})

	Describe("disabled glyphs", func() {
		const disabledConfig = `
pack-variant: 1
shortcuts: {}
disabled-emojis: [":100:"]
disable-emojis: true
fix-emoji-coloring: false
`

		BeforeEach(func() {
			handler, svc = loadPipeline(writeConfig(disabledConfig))
		})

		It("rejects messages carrying the raw glyph", func() {
			res := svc.ProcessInbound(user, "pasted 가 directly")

			Expect(res.Rejected).To(BeTrue())
		})

		It("leaves the disabled token literal", func() {
			res := svc.ProcessInbound(user, "typed :100: honestly")

			Expect(res.Rejected).To(BeFalse())
			Expect(res.Message).To(Equal("typed :100: honestly"))
		})
	})

	Describe("color fix-up", func() {
		const coloringConfig = `
pack-variant: 1
shortcuts: {}
disabled-emojis: []
disable-emojis: false
fix-emoji-coloring: true
`

		BeforeEach(func() {
			handler, svc = loadPipeline(writeConfig(coloringConfig))
		})

		It("resets to neutral and resumes the message color", func() {
			res := svc.ProcessInbound(user, "§a:100:§a")

			Expect(res.Message).To(Equal("§a" + emoji.ColorWhite + "가§a" + "§a"))
		})

		It("leaves short messages plain", func() {
			res := svc.ProcessInbound(user, "ab")

			Expect(res.Message).To(Equal("ab"))
		})
	})

	Describe("kill switch", func() {
		It("drops all translation and opt-out state", func() {
			Expect(svc.ToggleShortcuts(user)).To(BeTrue())
			handler.Disable()

			res := svc.ProcessInbound(user, "hundred :100:")
			Expect(res.Message).To(Equal("hundred :100:"))
			Expect(handler.HasShortcutsOff(user)).To(BeFalse())
		})
	})
})
