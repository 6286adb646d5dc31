package sound

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagreeflow/lagree/internal/ports"
)

// overlapDetector records whether two writes were ever in flight at once
type overlapDetector struct {
	buf      bytes.Buffer
	inFlight atomic.Int32
	overlap  atomic.Bool
}

func (o *overlapDetector) Write(p []byte) (int, error) {
	if o.inFlight.Add(1) > 1 {
		o.overlap.Store(true)
	}
	defer o.inFlight.Add(-1)
	// Split the frame in two so a concurrent write has room to land inside it
	half := len(p) / 2
	o.buf.Write(p[:half])
	time.Sleep(time.Millisecond)
	o.buf.Write(p[half:])
	return len(p), nil
}

func TestSharedTerminal_BellNeverSplitsAFrame(t *testing.T) {
	dest := &overlapDetector{}
	terminal := NewSharedTerminal(dest)
	player := NewBellPlayer(terminal)
	frame := "\x1b[H" + strings.Repeat("0:45 Work ", 8) + "\r\n"

	var wg sync.WaitGroup
	for range 20 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_, _ = terminal.Write([]byte(frame))
		}()
		go func() {
			defer wg.Done()
			_ = player.PlaySoundForEvent(ports.SoundRest)
		}()
	}
	wg.Wait()

	assert.False(t, dest.overlap.Load(), "writes must not overlap")
	out := dest.buf.String()
	assert.Equal(t, 20, strings.Count(out, "\a"))
	assert.Equal(t, 20, strings.Count(out, frame), "every frame arrives whole")
}

func TestSharedTerminal_KeepsFileDescriptor(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "tty"))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })

	terminal := NewSharedTerminal(f)

	withFd, ok := terminal.(interface{ Fd() uintptr })
	require.True(t, ok, "Bubble Tea needs the descriptor to detect a TTY")
	assert.Equal(t, f.Fd(), withFd.Fd())

	sw, ok := terminal.(interface{ WriteString(string) (int, error) })
	require.True(t, ok)
	_, err = sw.WriteString("\x1b[?1049h")
	require.NoError(t, err)
	_, err = terminal.Write([]byte("\a"))
	require.NoError(t, err)

	data, err := os.ReadFile(f.Name())
	require.NoError(t, err)
	assert.Equal(t, "\x1b[?1049h\a", string(data))
}
