package gomegax_test

import (
	. "github.com/dogmatiq/derby/internal/x/gomegax"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("func EqualX()", func() {
	It("matches equal values", func() {
		Expect([]int{1, 2}).To(EqualX([]int{1, 2}))
	})

	It("does not match different values", func() {
		Expect([]int{1, 2}).NotTo(EqualX([]int{2, 1}))
	})

	It("treats nil and empty slices as equal by default", func() {
		Expect([]int{}).To(EqualX([]int(nil)))
	})

	It("returns an error if the actual value is of a different type", func() {
		ok, err := EqualX([]int{1}).Match("<string>")
		Expect(ok).To(BeFalse())
		Expect(err).To(HaveOccurred())
	})

	It("includes a diff in the failure message", func() {
		m := EqualX([]int{1, 2})
		Expect(m.FailureMessage([]int{1, 3})).To(ContainSubstring("-expected +actual"))
	})
})
