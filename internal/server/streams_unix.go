//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris

package server

import (
	"io"

	"github.com/charmbracelet/ssh"
)

// sessionStreams returns the program's input and output. An allocated PTY is
// used directly; an emulated one goes through the session.
func sessionStreams(sess ssh.Session) (io.Reader, io.Writer) {
	pty, _, ok := sess.Pty()
	if !ok || sess.EmulatedPty() {
		return sess, sess
	}
	return pty.Slave, pty.Slave
}
