package main

import (
	"context"
	"os"
	"strings"
	"time"

	"github.com/dogmatiq/dodeca/config"
	"github.com/dogmatiq/derby/monitor"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/onsi/gomega/gbytes"
)

var _ = Describe("func run()", func() {
	var (
		ctx    context.Context
		cancel context.CancelFunc
		stdin  *strings.Reader
		stdout *gbytes.Buffer
		stderr *gbytes.Buffer
	)

	env := map[string]string{
		"DERBY_STEP_INTERVAL":    "1ms",
		"DERBY_REFRESH_INTERVAL": "1ms",
		"DERBY_SETTLE_PERIOD":    "1ms",
		"DERBY_START_DELAY":      "1ms",
		"DERBY_MONITOR_TIMEOUT":  "1s",
	}

	BeforeEach(func() {
		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)

		stdin = strings.NewReader("")
		stdout = gbytes.NewBuffer()
		stderr = gbytes.NewBuffer()

		for k, v := range env {
			os.Setenv(k, v)
		}
	})

	AfterEach(func() {
		cancel()

		for k := range env {
			os.Unsetenv(k)
		}

		os.Unsetenv("DERBY_DEBUG")
		os.Unsetenv("DERBY_LOG_FORMAT")
	})

	exec := func(args ...string) int {
		return run(ctx, args, stdin, stdout, stderr, config.Environment())
	}

	It("runs a race with the number of horses given on the command line", func() {
		code := exec("-n", "3", "-plain")
		Expect(code).To(Equal(exitOK))

		Expect(stdout).To(gbytes.Say(monitor.Header))
		Expect(stdout).To(gbytes.Say("Final standings"))
		Expect(string(stdout.Contents())).To(ContainSubstring(" 3. Horse "))
		Expect(string(stdout.Contents())).NotTo(ContainSubstring(Prompt))

		Expect(stderr).To(gbytes.Say("derby started"))
		Expect(stderr).To(gbytes.Say(`horse \d won the race`))
		Expect(stderr).To(gbytes.Say("derby stopped"))
	})

	It("prompts for the number of horses if it is not given", func() {
		stdin = strings.NewReader("2\n")

		code := exec("-plain")
		Expect(code).To(Equal(exitOK))

		Expect(stdout).To(gbytes.Say(`How many horses are racing\? `))
		Expect(stdout).To(gbytes.Say(" 2. Horse "))
	})

	It("runs a race with seeded strides", func() {
		code := exec("-n", "4", "-plain", "-seed", "42")
		Expect(code).To(Equal(exitOK))
		Expect(string(stdout.Contents())).To(ContainSubstring(" 4. Horse "))
	})

	It("clears the screen before the race when asked", func() {
		code := exec("-n", "1", "-clear")
		Expect(code).To(Equal(exitOK))
		Expect(string(stdout.Contents())).To(HavePrefix("\033[H\033[2J"))
	})

	It("exits with a usage error if the number of horses is less than one", func() {
		code := exec("-n", "0")
		Expect(code).To(Equal(exitUsage))
		Expect(stderr).To(gbytes.Say("the number of horses must be at least 1"))
		Expect(string(stdout.Contents())).To(BeEmpty())
	})

	It("exits with a usage error if the answer to the prompt is malformed", func() {
		stdin = strings.NewReader("many\n")

		code := exec()
		Expect(code).To(Equal(exitUsage))
		Expect(stderr).To(gbytes.Say(`invalid input: "many" is not a whole number`))
		Expect(string(stdout.Contents())).NotTo(ContainSubstring(monitor.Header))
	})

	It("exits with a usage error if the flags are malformed", func() {
		code := exec("-n", "lots")
		Expect(code).To(Equal(exitUsage))
	})

	It("exits with a usage error if the log format is not recognized", func() {
		os.Setenv("DERBY_LOG_FORMAT", "xml")

		code := exec("-n", "1")
		Expect(code).To(Equal(exitUsage))
		Expect(stderr).To(gbytes.Say(`unrecognized log format "xml"`))
	})

	It("writes JSON log messages when asked", func() {
		os.Setenv("DERBY_LOG_FORMAT", "json")

		code := exec("-n", "2", "-plain")
		Expect(code).To(Equal(exitOK))
		Expect(stderr).To(gbytes.Say(`"msg":".*derby started"`))
	})

	It("writes debug messages when asked", func() {
		os.Setenv("DERBY_DEBUG", "true")

		code := exec("-n", "2", "-plain")
		Expect(code).To(Equal(exitOK))
		Expect(stderr).To(gbytes.Say("entered the race"))
	})

	It("does not write debug messages by default", func() {
		code := exec("-n", "2", "-plain")
		Expect(code).To(Equal(exitOK))
		Expect(string(stderr.Contents())).NotTo(ContainSubstring("entered the race"))
	})

	It("exits with the interrupted code if the race is canceled", func() {
		os.Setenv("DERBY_START_DELAY", "1h")

		go func() {
			time.Sleep(10 * time.Millisecond)
			cancel()
		}()

		code := exec("-n", "2", "-plain")
		Expect(code).To(Equal(exitInterrupted))
		Expect(stderr).To(gbytes.Say("the race was abandoned"))
	})

	It("exits with a failure if the output can not be written", func() {
		code := run(ctx, []string{"-n", "1", "-plain"}, stdin, failingWriter{}, stderr, config.Environment())
		Expect(code).To(Equal(exitFailure))
		Expect(stderr).To(gbytes.Say("the race failed: "))
	})
})

// failingWriter is an io.Writer that always fails.
type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, os.ErrClosed
}
