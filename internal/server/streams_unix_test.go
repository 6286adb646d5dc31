//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package server

import (
	"testing"

	"github.com/charmbracelet/ssh"
	"github.com/stretchr/testify/assert"
)

type fakeSession struct {
	ssh.Session
	emulated bool
	hasPty   bool
}

func (f *fakeSession) Pty() (ssh.Pty, <-chan ssh.Window, bool) {
	return ssh.Pty{Term: "xterm-256color"}, nil, f.hasPty
}

func (f *fakeSession) EmulatedPty() bool {
	return f.emulated
}

func TestSessionStreams_FallsBackToSession(t *testing.T) {
	tests := []struct {
		name string
		sess *fakeSession
	}{
		{name: "no pty", sess: &fakeSession{}},
		{name: "emulated pty", sess: &fakeSession{hasPty: true, emulated: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input, output := sessionStreams(tt.sess)
			assert.Same(t, tt.sess, input)
			assert.Same(t, tt.sess, output)
		})
	}
}
