// Package benchmark measures steering tick latency against a running
// simulator: one full request/compute/command cycle per recorded value.
package benchmark

import (
	"context"
	"errors"
	"log"
	"os"
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"

	"example.com/fuzzy-steer/core/steering"
	"example.com/fuzzy-steer/driver/truck"

	"go.uber.org/zap"
)

func RunTickBenchmark(remoteAddr string) {
	const numClientGoroutine = 1
	const numTicksPerClient = 100_000
	var mu sync.Mutex
	sg := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(numClientGoroutine)
	for i := numClientGoroutine; i > 0; i-- {
		go func() {
			hg := hdrhistogram.New(1, 50_000, 5)

			ctx := context.Background()
			conn, err := truck.Dial(ctx, zap.NewNop(), remoteAddr)
			if err != nil {
				log.Printf("Failed to connect to simulator: %v", err)
				return
			}
			defer conn.Close()

			ctrl, err := steering.NewController(steering.DefaultConfig())
			if err != nil {
				log.Printf("Failed to build controller: %v", err)
				return
			}

			defer wg.Done()
			<-sg
			for j := numTicksPerClient; j > 0; j-- {
				t0 := time.Now()

				state, err := conn.RequestState(ctx)
				if errors.Is(err, truck.ErrEpisodeDone) {
					break
				}
				if err != nil {
					log.Printf("Failed to read vehicle state: %v", err)
					return
				}
				cmd, err := ctrl.Steer(state.X, state.Angle)
				if err != nil {
					log.Printf("Failed to compute steering correction: %v", err)
					return
				}
				err = conn.SendCommand(ctx, cmd)
				if err != nil {
					log.Printf("Failed to steer: %v", err)
					return
				}

				err = hg.RecordValue(time.Since(t0).Microseconds())
				if err != nil {
					log.Printf("Failed to record histogram value: %v", err)
					return
				}
			}
			mu.Lock()
			defer mu.Unlock()
			hg.PercentilesPrint(os.Stdout, 1, 1.0)
		}()
	}
	t0 := time.Now()
	close(sg)
	wg.Wait()
	log.Print(time.Since(t0))
}
