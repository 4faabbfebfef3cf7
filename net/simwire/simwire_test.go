package simwire_test

import (
	"errors"
	"strconv"
	"strings"
	"testing"

	"example.com/fuzzy-steer/net/simwire"
)

func TestAppendStateRequest(t *testing.T) {
	b := simwire.AppendStateRequest(nil)
	if string(b) != "r\r\n" {
		t.Errorf("state request: got %q, want %q", b, "r\r\n")
	}
}

func TestParseState(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    simwire.State
		wantErr bool
	}{
		{
			name:  "Plain triple",
			input: "0.5\t0.3\t90.0",
			want:  simwire.State{X: 0.5, Y: 0.3, Angle: 90.0},
		},
		{
			name:  "Trailing CRLF",
			input: "0.5\t0.3\t90.0\r\n",
			want:  simwire.State{X: 0.5, Y: 0.3, Angle: 90.0},
		},
		{
			name:  "Negative and integer fields",
			input: "-0.25\t1\t180",
			want:  simwire.State{X: -0.25, Y: 1, Angle: 180},
		},
		{
			name:    "Too few fields",
			input:   "0.5\t0.3",
			wantErr: true,
		},
		{
			name:    "Too many fields",
			input:   "0.5\t0.3\t90.0\t7",
			wantErr: true,
		},
		{
			name:    "Non-numeric field",
			input:   "0.5\tabc\t90.0",
			wantErr: true,
		},
		{
			name:    "Empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "NaN field",
			input:   "NaN\t0.3\t90.0",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := simwire.ParseState([]byte(tt.input))
			if tt.wantErr {
				if !errors.Is(err, simwire.ErrUnexpectedStateFormat) {
					t.Fatalf("ParseState(%q): got err %v, want ErrUnexpectedStateFormat", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseState(%q): %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseState(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestAppendCommand(t *testing.T) {
	tests := []struct {
		name    string
		v       float64
		wantErr bool
	}{
		{name: "Zero", v: 0},
		{name: "Lower bound", v: -1},
		{name: "Upper bound", v: 1},
		{name: "Fractional", v: -0.123456},
		{name: "Below range", v: -1.01, wantErr: true},
		{name: "Above range", v: 1.01, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := simwire.AppendCommand(nil, tt.v)
			if tt.wantErr {
				if !errors.Is(err, simwire.ErrCommandOutOfRange) {
					t.Fatalf("AppendCommand(%v): got err %v, want ErrCommandOutOfRange", tt.v, err)
				}
				if len(b) != 0 {
					t.Errorf("AppendCommand(%v) wrote %q before failing", tt.v, b)
				}
				return
			}
			if err != nil {
				t.Fatalf("AppendCommand(%v): %v", tt.v, err)
			}
			s := string(b)
			if !strings.HasSuffix(s, "\r\n") {
				t.Fatalf("AppendCommand(%v) = %q, missing CRLF", tt.v, s)
			}
			parsed, err := strconv.ParseFloat(strings.TrimSuffix(s, "\r\n"), 64)
			if err != nil {
				t.Fatalf("command %q does not round-trip: %v", s, err)
			}
			if parsed != tt.v {
				t.Errorf("command round-trip: got %v, want %v", parsed, tt.v)
			}
		})
	}
}
