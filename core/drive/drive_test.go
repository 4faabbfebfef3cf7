package drive_test

import (
	"bufio"
	"context"
	"fmt"
	"math"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"example.com/fuzzy-steer/core/drive"
	"example.com/fuzzy-steer/core/steering"
	"example.com/fuzzy-steer/driver/truck"
)

// startEpisode runs a scripted simulator peer for one episode: it serves
// the given states in order, expects exactly one command after each state,
// and then closes the connection.
func startEpisode(t *testing.T, states [][3]float64) (addr string, cmds <-chan float64) {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	t.Cleanup(func() { _ = l.Close() })

	ch := make(chan float64, len(states)+1)
	go func() {
		defer close(ch)
		conn, err := l.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		r := bufio.NewReader(conn)
		for _, s := range states {
			line, err := r.ReadString('\n')
			if err != nil || strings.TrimRight(line, "\r\n") != "r" {
				return
			}
			reply := fmt.Sprintf("%v\t%v\t%v", s[0], s[1], s[2])
			if _, err := conn.Write([]byte(reply)); err != nil {
				return
			}
			line, err = r.ReadString('\n')
			if err != nil {
				return
			}
			v, err := strconv.ParseFloat(strings.TrimRight(line, "\r\n"), 64)
			if err != nil {
				return
			}
			ch <- v
		}
		// Wait for the final state request, then close to end the episode.
		_, _ = r.ReadString('\n')
	}()
	return l.Addr().String(), ch
}

func TestRunEpisode(t *testing.T) {
	states := [][3]float64{
		{0.2, 0.9, 85},
		{0.3, 0.8, 88},
		{0.45, 0.7, 90},
		{0.5, 0.6, 90},
	}
	addr, cmds := startEpisode(t, states)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := truck.Dial(ctx, zap.NewNop(), addr)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()

	ctrl, err := steering.NewController(steering.DefaultConfig())
	if err != nil {
		t.Fatalf("failed to build controller: %v", err)
	}

	err = drive.Run(ctx, zap.NewNop(), conn, ctrl)
	if err != nil {
		t.Fatalf("drive loop failed: %v", err)
	}

	n := 0
	for v := range cmds {
		if math.Abs(v) > 1 {
			t.Errorf("command %d out of range: %v", n, v)
		}
		n++
	}
	if n != len(states) {
		t.Errorf("peer received %d commands, want %d", n, len(states))
	}
}

func TestRunLeftOfCenterSteersRight(t *testing.T) {
	// A single state left of center and upright: the commanded correction
	// must be positive (steer back toward the center line).
	addr, cmds := startEpisode(t, [][3]float64{{0.1, 0.5, 90}})

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := truck.Dial(ctx, zap.NewNop(), addr)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()

	ctrl, err := steering.NewController(steering.DefaultConfig())
	if err != nil {
		t.Fatalf("failed to build controller: %v", err)
	}

	if err := drive.Run(ctx, zap.NewNop(), conn, ctrl); err != nil {
		t.Fatalf("drive loop failed: %v", err)
	}

	v, ok := <-cmds
	if !ok {
		t.Fatalf("peer received no command")
	}
	if v <= 0 {
		t.Errorf("command: got %v, want > 0", v)
	}
}
