package ipc

import (
	"errors"
	"io/fs"
	"net"
	"os"
	"path/filepath"
	"testing"

	"github.com/1broseidon/splitd/internal/split"
)

// socketPath returns a short socket path; sun_path is limited to 108 bytes
// and t.TempDir paths can exceed that.
func socketPath(t *testing.T) string {
	t.Helper()
	dir, err := os.MkdirTemp("", "splitd")
	if err != nil {
		t.Fatalf("MkdirTemp: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })
	return filepath.Join(dir, "s.sock")
}

func TestListen_RemovesStaleFile(t *testing.T) {
	path := socketPath(t)
	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	l, err := Listen(path)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode()&fs.ModeSocket == 0 {
		t.Fatalf("expected socket at %s, got mode %v", path, info.Mode())
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Fatalf("socket permissions = %o, want 600", perm)
	}
}

func TestClientSend_ListenerReceive(t *testing.T) {
	path := socketPath(t)
	l, err := Listen(path)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	client := NewClient(path)
	for _, cmd := range []split.Command{split.CommandSplitLeft, split.CommandRestore, split.CommandQuit} {
		if err := client.Send(cmd); err != nil {
			t.Fatalf("Send(%s): %v", cmd, err)
		}
		data, err := l.Receive()
		if err != nil {
			t.Fatalf("Receive: %v", err)
		}
		got, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode: %v", err)
		}
		if got != cmd {
			t.Fatalf("received %s, want %s", got, cmd)
		}
	}
}

func TestReceive_DropsOversizedDatagram(t *testing.T) {
	path := socketPath(t)
	l, err := Listen(path)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	conn, err := net.DialUnix("unixgram", nil, &net.UnixAddr{Name: path, Net: "unixgram"})
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()
	if _, err := conn.Write(make([]byte, MaxDatagramSize+1)); err != nil {
		t.Fatalf("write: %v", err)
	}

	if _, err := l.Receive(); err == nil {
		t.Fatal("expected error for oversized datagram")
	}
}

func TestClose_RemovesSocketAndUnblocksReceive(t *testing.T) {
	path := socketPath(t)
	l, err := Listen(path)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}

	done := make(chan error, 1)
	go func() {
		_, err := l.Receive()
		done <- err
	}()

	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := <-done; !errors.Is(err, net.ErrClosed) {
		t.Fatalf("Receive after Close = %v, want net.ErrClosed", err)
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("socket file still present: %v", err)
	}
	if err := l.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	err = NewClient(path).Send(split.CommandRestore)
	if !errors.Is(err, ErrEndpointNotFound) {
		t.Fatalf("Send after Close = %v, want ErrEndpointNotFound", err)
	}
}

func TestClientSend_StaleSocketFile(t *testing.T) {
	path := socketPath(t)
	l, err := Listen(path)
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	// Close the descriptor but leave the file behind, as after a crash.
	if err := l.conn.Close(); err != nil {
		t.Fatalf("close conn: %v", err)
	}

	err = NewClient(path).Send(split.CommandSave)
	if !errors.Is(err, ErrEndpointNotFound) {
		t.Fatalf("Send to stale socket = %v, want ErrEndpointNotFound", err)
	}
}
