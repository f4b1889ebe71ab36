package ipc

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"sync"

	"golang.org/x/sys/unix"
)

// Listener receives control datagrams on a unixgram socket. The daemon never
// replies; senders cannot learn whether a command succeeded.
type Listener struct {
	path      string
	conn      *net.UnixConn
	closeOnce sync.Once
	closeErr  error
}

// Listen binds the control socket at path, removing any stale file first.
func Listen(path string) (*Listener, error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to remove old socket %s: %w", path, err)
	}

	conn, err := net.ListenUnixgram("unixgram", &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		return nil, fmt.Errorf("failed to bind control socket %s: %w", path, err)
	}

	// Set socket permissions
	if err := os.Chmod(path, 0600); err != nil {
		conn.Close()
		os.Remove(path)
		return nil, fmt.Errorf("failed to set socket permissions: %w", err)
	}

	return &Listener{path: path, conn: conn}, nil
}

// Path returns the filesystem path of the socket.
func (l *Listener) Path() string {
	return l.path
}

// Receive blocks until the next datagram arrives. After Close it returns an
// error matching net.ErrClosed.
func (l *Listener) Receive() ([]byte, error) {
	buf := make([]byte, MaxDatagramSize)
	n, _, flags, _, err := l.conn.ReadMsgUnix(buf, nil)
	if err != nil {
		return nil, err
	}
	if flags&unix.MSG_TRUNC != 0 {
		return nil, fmt.Errorf("datagram larger than %d bytes dropped", MaxDatagramSize)
	}
	return buf[:n], nil
}

// Close closes the socket and removes its file. It is safe to call more than once.
func (l *Listener) Close() error {
	l.closeOnce.Do(func() {
		l.closeErr = l.conn.Close()
		if err := os.Remove(l.path); err != nil && !errors.Is(err, fs.ErrNotExist) && l.closeErr == nil {
			l.closeErr = fmt.Errorf("failed to remove socket %s: %w", l.path, err)
		}
	})
	return l.closeErr
}
