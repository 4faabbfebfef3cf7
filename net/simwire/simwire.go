// Package simwire implements the vehicle simulator's ASCII line protocol:
// the client sends "r\r\n" to request state, the peer answers with a
// tab-separated "<x>\t<y>\t<angle>" triple, and the client steers by
// sending "<value>\r\n" with value in [-1, 1]. A clean connection close by
// the peer signals the end of an episode and is reported one layer up, not
// here.
package simwire

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

const (
	CommandMin = -1.0
	CommandMax = 1.0

	// MaxStateLen bounds a state reply; the peer sends three short ASCII
	// floats and two separators.
	MaxStateLen = 128
)

var (
	ErrUnexpectedStateFormat = errors.New("failed to parse state: unexpected format")
	ErrCommandOutOfRange     = errors.New("invalid command: value must be in [-1, 1]")
)

// A State is one parsed simulator reply: normalized positions in [0, 1]
// and the heading angle in degrees.
type State struct {
	X     float64
	Y     float64
	Angle float64
}

// AppendStateRequest appends the state request message to b.
func AppendStateRequest(b []byte) []byte {
	return append(b, 'r', '\r', '\n')
}

// ParseState decodes a state reply. A trailing CR/LF is tolerated but not
// required.
func ParseState(b []byte) (State, error) {
	s := strings.TrimRight(string(b), "\r\n")
	fields := strings.Split(s, "\t")
	if len(fields) != 3 {
		return State{}, ErrUnexpectedStateFormat
	}
	var vs [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return State{}, ErrUnexpectedStateFormat
		}
		vs[i] = v
	}
	return State{X: vs[0], Y: vs[1], Angle: vs[2]}, nil
}

// AppendCommand appends a steering command message to b. The value is
// validated before any encoding so that an out-of-range command never
// reaches the wire.
func AppendCommand(b []byte, v float64) ([]byte, error) {
	if math.IsNaN(v) || v < CommandMin || v > CommandMax {
		return b, ErrCommandOutOfRange
	}
	b = strconv.AppendFloat(b, v, 'f', -1, 64)
	return append(b, '\r', '\n'), nil
}
