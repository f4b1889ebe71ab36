package ipc

import (
	"errors"
	"fmt"

	"github.com/1broseidon/splitd/internal/split"
)

// ProtocolVersion is the envelope version this build speaks.
const ProtocolVersion = 1

// MaxDatagramSize bounds a single control datagram.
const MaxDatagramSize = 1024

var (
	// ErrUnsupportedVersion is returned for envelopes from another protocol version.
	ErrUnsupportedVersion = errors.New("unsupported protocol version")
	// ErrMissingCommand is returned for envelopes without a command field.
	ErrMissingCommand = errors.New("command not found in message")
)

// envelope is the wire form of a control message: one CBOR map per datagram.
type envelope struct {
	Version uint   `cbor:"v"`
	Command string `cbor:"command"`
}

// Encode serializes a command into a versioned envelope.
func Encode(cmd split.Command) ([]byte, error) {
	if _, err := split.ParseCommand(cmd.String()); err != nil {
		return nil, err
	}
	data, err := marshal(envelope{Version: ProtocolVersion, Command: cmd.String()})
	if err != nil {
		return nil, fmt.Errorf("failed to encode command: %w", err)
	}
	return data, nil
}

// Decode parses a datagram into a command.
func Decode(data []byte) (split.Command, error) {
	var env envelope
	if err := unmarshal(data, &env); err != nil {
		return 0, fmt.Errorf("failed to decode message: %w", err)
	}
	if env.Version != ProtocolVersion {
		return 0, fmt.Errorf("%w: %d", ErrUnsupportedVersion, env.Version)
	}
	if env.Command == "" {
		return 0, ErrMissingCommand
	}
	return split.ParseCommand(env.Command)
}
