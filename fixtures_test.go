package derby_test

import (
	"io"
	"sync"
)

// stallingWriter is an io.Writer that blocks the first call to Write() until
// Release() is called. Subsequent writes succeed immediately.
type stallingWriter struct {
	once    sync.Once
	release chan struct{}

	m    sync.Mutex
	data []byte
}

func newStallingWriter() *stallingWriter {
	return &stallingWriter{
		release: make(chan struct{}),
	}
}

func (w *stallingWriter) Write(data []byte) (int, error) {
	first := false
	w.once.Do(func() { first = true })

	if first {
		<-w.release
		return len(data), nil
	}

	w.m.Lock()
	defer w.m.Unlock()

	w.data = append(w.data, data...)
	return len(data), nil
}

func (w *stallingWriter) Release() {
	close(w.release)
}

func (w *stallingWriter) String() string {
	w.m.Lock()
	defer w.m.Unlock()

	return string(w.data)
}

// failingWriter is an io.Writer that always fails.
type failingWriter struct {
	err error
}

func (w failingWriter) Write([]byte) (int, error) {
	return 0, w.err
}

// stallingTerminal is a Terminal whose CursorUp() blocks until Release() is
// called.
type stallingTerminal struct {
	release chan struct{}
}

func newStallingTerminal() *stallingTerminal {
	return &stallingTerminal{
		release: make(chan struct{}),
	}
}

func (t *stallingTerminal) CursorUp(io.Writer, int) error {
	<-t.release
	return nil
}

func (t *stallingTerminal) Clear(io.Writer) error {
	return nil
}

func (t *stallingTerminal) Release() {
	close(t.release)
}
