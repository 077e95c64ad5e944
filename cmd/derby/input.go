package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt is the question asked when the number of horses is not given on the
// command line.
const Prompt = "How many horses are racing? "

// readCount prompts for the number of horses on w and reads the answer from r.
func readCount(r io.Reader, w io.Writer) (int, error) {
	if _, err := io.WriteString(w, Prompt); err != nil {
		return 0, err
	}

	s := bufio.NewScanner(r)

	if !s.Scan() {
		if err := s.Err(); err != nil {
			return 0, err
		}

		return 0, errors.New("no answer was given")
	}

	text := strings.TrimSpace(s.Text())

	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, fmt.Errorf("%q is not a whole number", text)
	}

	return n, nil
}
