package console_test

import (
	"strings"

	. "github.com/dogmatiq/derby/console"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("var ANSI", func() {
	var w *strings.Builder

	BeforeEach(func() {
		w = &strings.Builder{}
	})

	Describe("func CursorUp()", func() {
		It("writes the cursor-up escape sequence", func() {
			err := ANSI.CursorUp(w, 5)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(w.String()).To(Equal("\033[5A"))
		})

		It("writes nothing if n is not positive", func() {
			err := ANSI.CursorUp(w, 0)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(w.String()).To(BeEmpty())
		})
	})

	Describe("func Clear()", func() {
		It("writes the clear-screen escape sequence", func() {
			err := ANSI.Clear(w)
			Expect(err).ShouldNot(HaveOccurred())
			Expect(w.String()).To(Equal("\033[H\033[2J"))
		})
	})
})

var _ = Describe("var Discard", func() {
	It("writes nothing", func() {
		w := &strings.Builder{}

		Expect(Discard.CursorUp(w, 5)).To(Succeed())
		Expect(Discard.Clear(w)).To(Succeed())
		Expect(w.String()).To(BeEmpty())
	})
})
