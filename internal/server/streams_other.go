//go:build !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd && !solaris

package server

import (
	"io"

	"github.com/charmbracelet/ssh"
)

// sessionStreams returns the session itself; PTYs are emulated on this platform
func sessionStreams(sess ssh.Session) (io.Reader, io.Writer) {
	return sess, sess
}
