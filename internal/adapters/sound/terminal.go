package sound

import (
	"io"
	"os"
	"sync"
)

// NewSharedTerminal wraps out so the TUI renderer and the bell take turns
// writing to it. Pass the result to tea.WithOutput and to the bell player.
// An *os.File keeps its descriptor, so Bubble Tea still detects the TTY and
// its size.
func NewSharedTerminal(out io.Writer) io.Writer {
	if f, ok := out.(*os.File); ok {
		return &sharedFile{File: f}
	}
	return &sharedWriter{out: out}
}

type sharedFile struct {
	*os.File
	mu sync.Mutex
}

func (s *sharedFile) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.File.Write(p)
}

// WriteString shadows the promoted os.File method, which would skip the lock
func (s *sharedFile) WriteString(str string) (int, error) {
	return s.Write([]byte(str))
}

type sharedWriter struct {
	mu  sync.Mutex
	out io.Writer
}

func (s *sharedWriter) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.out.Write(p)
}
