package main

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("func readCount()", func() {
	It("prompts for and returns the number of horses", func() {
		out := gbytes.NewBuffer()

		n, err := readCount(strings.NewReader(" 7 \n"), out)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(n).To(Equal(7))
		Expect(string(out.Contents())).To(Equal(Prompt))
	})

	It("reads only the first line", func() {
		n, err := readCount(strings.NewReader("3\n4\n"), gbytes.NewBuffer())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(n).To(Equal(3))
	})

	It("returns negative numbers as given", func() {
		n, err := readCount(strings.NewReader("-2\n"), gbytes.NewBuffer())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(n).To(Equal(-2))
	})

	It("returns an error if the answer is not a whole number", func() {
		_, err := readCount(strings.NewReader("three\n"), gbytes.NewBuffer())
		Expect(err).To(MatchError(`"three" is not a whole number`))
	})

	It("returns an error if there is no answer", func() {
		_, err := readCount(strings.NewReader(""), gbytes.NewBuffer())
		Expect(err).To(MatchError("no answer was given"))
	})
})
