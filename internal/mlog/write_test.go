package mlog_test

import (
	"fmt"

	. "github.com/dogmatiq/derby/internal/mlog"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var entries = []any{
	Entry(
		"renders a standard log message",
		"⚑ 123  ♞ 7  ▶ ⚠  <foo> ● <bar>",
		[]IconWithLabel{
			RaceIDIcon.WithLabel("123"),
			HorseIDIcon.WithLabel("7"),
		},
		[]Icon{
			StartIcon,
			WarningIcon,
		},
		[]string{
			"<foo>",
			"<bar>",
		},
	),
	Entry(
		"renders a hyphen in place of empty labels",
		"⚑ 123  ♞ -  ▶ ⚠  <foo> ● <bar>",
		[]IconWithLabel{
			RaceIDIcon.WithLabel("123"),
			HorseIDIcon.WithLabel(""),
		},
		[]Icon{
			StartIcon,
			WarningIcon,
		},
		[]string{
			"<foo>",
			"<bar>",
		},
	),
	Entry(
		"pads empty icons to the same width",
		"⚑ 123  ♞ 7  ■    <foo> ● <bar>",
		[]IconWithLabel{
			RaceIDIcon.WithLabel("123"),
			HorseIDIcon.WithLabel("7"),
		},
		[]Icon{
			FinishIcon,
			"",
		},
		[]string{
			"<foo>",
			"<bar>",
		},
	),
	Entry(
		"skips empty text",
		"⚑ 123  ♞ 7  ▶ ⚠  <foo> ● <bar>",
		[]IconWithLabel{
			RaceIDIcon.WithLabel("123"),
			HorseIDIcon.WithLabel("7"),
		},
		[]Icon{
			StartIcon,
			WarningIcon,
		},
		[]string{
			"<foo>",
			"",
			"<bar>",
		},
	),
}

var _ = DescribeTable(
	"func String()",
	append(
		[]any{
			func(expected string, ids []IconWithLabel, icons []Icon, text []string) {
				Expect(
					String(ids, icons, text...),
				).To(Equal(expected))
			},
		},
		entries...,
	)...,
)

var _ = DescribeTable(
	"type Line",
	append(
		[]any{
			func(expected string, ids []IconWithLabel, icons []Icon, text []string) {
				line := Line{
					IDs:   ids,
					Icons: icons,
					Text:  text,
				}

				Expect(line.String()).To(Equal(expected))
				Expect(fmt.Sprint(line)).To(Equal(expected))
			},
		},
		entries...,
	)...,
)
