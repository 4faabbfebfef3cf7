// Package drive runs the steering control loop: request the vehicle state,
// compute a fuzzy steering correction, command the simulator, repeat until
// the peer ends the episode.
package drive

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"go.uber.org/zap"

	"example.com/fuzzy-steer/base/metrics"
	"example.com/fuzzy-steer/core/steering"
	"example.com/fuzzy-steer/driver/truck"
)

var (
	tickCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: metrics.DriveTicksN,
		Help: metrics.DriveTicksH,
	})
	computeErrCounter = promauto.NewCounter(prometheus.CounterOpts{
		Name: metrics.DriveComputeErrsN,
		Help: metrics.DriveComputeErrsH,
	})
	corrGauge = promauto.NewGauge(prometheus.GaugeOpts{
		Name: metrics.DriveCorrN,
		Help: metrics.DriveCorrH,
	})
)

// Run drives one episode to completion. It returns nil when the peer ends
// the episode and the first error otherwise; the loop imposes no pacing of
// its own, the peer does by answering state requests.
func Run(ctx context.Context, log *zap.Logger, conn *truck.Conn, ctrl *steering.Controller) error {
	corrGauge.Set(0)
	for {
		state, err := conn.RequestState(ctx)
		if errors.Is(err, truck.ErrEpisodeDone) {
			log.Info("episode finished")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read vehicle state: %w", err)
		}

		cmd, err := ctrl.Steer(state.X, state.Angle)
		if err != nil {
			computeErrCounter.Inc()
			return fmt.Errorf("failed to compute steering correction: %w", err)
		}

		err = conn.SendCommand(ctx, cmd)
		if err != nil {
			return fmt.Errorf("failed to steer: %w", err)
		}

		corrGauge.Set(cmd)
		tickCounter.Inc()
		log.Debug("steering tick",
			zap.Float64("x", state.X),
			zap.Float64("y", state.Y),
			zap.Float64("angle [deg]", state.Angle),
			zap.Float64("command", cmd),
		)
	}
}
