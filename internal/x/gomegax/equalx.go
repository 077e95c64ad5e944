// Package gomegax contains additional Gomega matchers.
package gomegax

import (
	"fmt"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
)

// EqualX returns a matcher that compares values using go-cmp instead of
// reflect.DeepEqual(), and reports failures as a diff.
//
// If no options are given, nil and empty slices and maps are considered equal.
func EqualX[T any](expected T, options ...cmp.Option) types.GomegaMatcher {
	if len(options) == 0 {
		options = []cmp.Option{cmpopts.EquateEmpty()}
	}

	return &equalX[T]{expected, options}
}

type equalX[T any] struct {
	expected T
	options  cmp.Options
}

func (m *equalX[T]) Match(actual any) (bool, error) {
	v, ok := actual.(T)
	if !ok {
		return false, fmt.Errorf(
			"EqualX expects a value of type %T, got:\n%s",
			m.expected,
			format.Object(actual, 1),
		)
	}

	return cmp.Equal(m.expected, v, m.options), nil
}

func (m *equalX[T]) FailureMessage(actual any) string {
	return "Expected values to be equal, diff (-expected +actual):\n" +
		format.IndentString(cmp.Diff(m.expected, actual, m.options), 1)
}

func (m *equalX[T]) NegatedFailureMessage(actual any) string {
	return format.Message(actual, "not to equal", m.expected)
}
