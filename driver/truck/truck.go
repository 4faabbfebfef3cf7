// Package truck talks to the vehicle simulator over a single TCP
// connection, one state request or steering command at a time.
package truck

import (
	"context"
	"fmt"
	"io"
	"net"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go.uber.org/zap"

	"example.com/fuzzy-steer/base/metrics"
	"example.com/fuzzy-steer/net/simwire"
)

type truckMetrics struct {
	reqsSent       prometheus.Counter
	statesReceived prometheus.Counter
	cmdsSent       prometheus.Counter
	parseErrs      prometheus.Counter
}

var mtrcs atomic.Pointer[truckMetrics]

func init() {
	mtrcs.Store(newTruckMetrics())
}

func newTruckMetrics() *truckMetrics {
	return &truckMetrics{
		reqsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: metrics.TruckReqsSentN,
			Help: metrics.TruckReqsSentH,
		}),
		statesReceived: promauto.NewCounter(prometheus.CounterOpts{
			Name: metrics.TruckStatesReceivedN,
			Help: metrics.TruckStatesReceivedH,
		}),
		cmdsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: metrics.TruckCmdsSentN,
			Help: metrics.TruckCmdsSentH,
		}),
		parseErrs: promauto.NewCounter(prometheus.CounterOpts{
			Name: metrics.TruckParseErrsN,
			Help: metrics.TruckParseErrsH,
		}),
	}
}

// A Conn is the client side of one simulator episode. It is not safe for
// concurrent use.
type Conn struct {
	Log *zap.Logger

	conn net.Conn
	buf  []byte
	done bool
}

func Dial(ctx context.Context, log *zap.Logger, remoteAddr string) (*Conn, error) {
	d := net.Dialer{}
	conn, err := d.DialContext(ctx, "tcp", remoteAddr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to simulator at %s: %w", remoteAddr, err)
	}
	log.Debug("connected to simulator", zap.Stringer("peer", conn.RemoteAddr()))
	return &Conn{
		Log:  log,
		conn: conn,
		buf:  make([]byte, simwire.MaxStateLen),
	}, nil
}

func (c *Conn) setDeadline(ctx context.Context) error {
	deadline, deadlineIsSet := ctx.Deadline()
	if !deadlineIsSet {
		deadline = time.Time{}
	}
	return c.conn.SetDeadline(deadline)
}

// RequestState asks the peer for the current vehicle state. Once the peer
// has closed the connection, this and every subsequent call return
// ErrEpisodeDone without touching the wire.
func (c *Conn) RequestState(ctx context.Context) (simwire.State, error) {
	if c.done {
		return simwire.State{}, ErrEpisodeDone
	}
	m := mtrcs.Load()
	if err := c.setDeadline(ctx); err != nil {
		return simwire.State{}, err
	}
	_, err := c.conn.Write(simwire.AppendStateRequest(c.buf[:0]))
	if err != nil {
		return simwire.State{}, fmt.Errorf("failed to send state request: %w", err)
	}
	m.reqsSent.Inc()

	n, err := c.conn.Read(c.buf)
	if n == 0 && err == io.EOF {
		c.done = true
		c.Log.Debug("peer closed connection")
		return simwire.State{}, ErrEpisodeDone
	}
	if err != nil && n == 0 {
		return simwire.State{}, fmt.Errorf("failed to read state: %w", err)
	}

	state, err := simwire.ParseState(c.buf[:n])
	if err != nil {
		m.parseErrs.Inc()
		c.Log.Info("failed to parse state", zap.ByteString("reply", c.buf[:n]), zap.Error(err))
		return simwire.State{}, err
	}
	m.statesReceived.Inc()
	return state, nil
}

// SendCommand transmits a normalized steering command in [-1, 1]. The
// range is checked before anything is written.
func (c *Conn) SendCommand(ctx context.Context, v float64) error {
	if c.done {
		return ErrEpisodeDone
	}
	m := mtrcs.Load()
	b, err := simwire.AppendCommand(c.buf[:0], v)
	if err != nil {
		return err
	}
	if err := c.setDeadline(ctx); err != nil {
		return err
	}
	_, err = c.conn.Write(b)
	if err != nil {
		return fmt.Errorf("failed to send command: %w", err)
	}
	m.cmdsSent.Inc()
	return nil
}

// Done reports whether the peer has ended the episode.
func (c *Conn) Done() bool { return c.done }

func (c *Conn) Close() error {
	return c.conn.Close()
}
