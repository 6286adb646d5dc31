package sound

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lagreeflow/lagree/internal/ports"
)

func TestBellPlayerWritesBell(t *testing.T) {
	var buf bytes.Buffer
	p := NewBellPlayer(&buf)

	require.NoError(t, p.PlaySoundForEvent(ports.SoundWork))
	require.NoError(t, p.PlaySound())

	assert.Equal(t, "\a\a", buf.String())
}

func TestPlayerImplementsPort(t *testing.T) {
	var _ ports.SoundPlayer = NewPlayer(&bytes.Buffer{})
}
