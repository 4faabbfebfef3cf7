// Fuzzy vehicle steering service

package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"

	"github.com/pelletier/go-toml/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"example.com/fuzzy-steer/benchmark"
	"example.com/fuzzy-steer/core/drive"
	"example.com/fuzzy-steer/core/steering"
	"example.com/fuzzy-steer/driver/truck"
)

const defaultMonitorAddr = "127.0.0.1:8080"

type svcConfig struct {
	RemoteAddr  string          `toml:"remote_address,omitempty"`
	MonitorAddr string          `toml:"monitor_address,omitempty"`
	Controller  steering.Config `toml:"controller,omitempty"`
}

var (
	log *zap.Logger
)

func initLogger(verbose bool) {
	c := zap.NewDevelopmentConfig()
	c.DisableStacktrace = true
	c.EncoderConfig.EncodeCaller = func(
		caller zapcore.EntryCaller, enc zapcore.PrimitiveArrayEncoder) {
		p := caller.TrimmedPath()
		if len(p) > 30 {
			p = "..." + p[len(p)-27:]
		}
		enc.AppendString(fmt.Sprintf("%30s", p))
	}
	if !verbose {
		c.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	var err error
	log, err = c.Build()
	if err != nil {
		panic(err)
	}
}

func runMonitor(log *zap.Logger, monitorAddr string) {
	http.Handle("/metrics", promhttp.Handler())
	err := http.ListenAndServe(monitorAddr, nil)
	log.Fatal("failed to serve metrics", zap.Error(err))
}

func loadConfig(configFile string) svcConfig {
	raw, err := os.ReadFile(configFile)
	if err != nil {
		log.Fatal("failed to load configuration", zap.Error(err))
	}
	var cfg svcConfig
	err = toml.NewDecoder(bytes.NewReader(raw)).DisallowUnknownFields().Decode(&cfg)
	if err != nil {
		log.Fatal("failed to decode configuration", zap.Error(err))
	}
	return cfg
}

func remoteAddress(cfg svcConfig) string {
	if cfg.RemoteAddr == "" {
		log.Fatal("remote_address not specified in config")
	}
	return cfg.RemoteAddr
}

func monitorAddress(cfg svcConfig) string {
	if cfg.MonitorAddr == "" {
		return defaultMonitorAddr
	}
	return cfg.MonitorAddr
}

func newController(cfg svcConfig) *steering.Controller {
	table := cfg.Controller
	if len(table.Rules) == 0 {
		log.Debug("no controller table in config, using built-in table")
		table = steering.DefaultConfig()
	}
	ctrl, err := steering.NewController(table)
	if err != nil {
		log.Fatal("failed to build controller", zap.Error(err))
	}
	return ctrl
}

func runDrive(configFile string) {
	ctx := context.Background()

	cfg := loadConfig(configFile)
	remoteAddr := remoteAddress(cfg)
	ctrl := newController(cfg)

	conn, err := truck.Dial(ctx, log, remoteAddr)
	if err != nil {
		log.Fatal("failed to connect to simulator", zap.Error(err))
	}
	defer conn.Close()

	go runMonitor(log, monitorAddress(cfg))

	err = drive.Run(ctx, log, conn, ctrl)
	if err != nil {
		log.Fatal("drive loop failed", zap.Error(err))
	}
}

func runTool(configFile string, x, angle float64) {
	var ctrl *steering.Controller
	if configFile != "" {
		ctrl = newController(loadConfig(configFile))
	} else {
		ctrl = newController(svcConfig{})
	}

	cmd, err := ctrl.Steer(x, angle)
	if err != nil {
		log.Fatal("failed to compute steering correction",
			zap.Float64("x", x), zap.Float64("angle [deg]", angle), zap.Error(err))
	}
	fmt.Printf("%v\n", cmd)
}

func runBenchmark(configFile string) {
	cfg := loadConfig(configFile)
	remoteAddr := remoteAddress(cfg)
	benchmark.RunTickBenchmark(remoteAddr)
}

func exitWithUsage() {
	fmt.Println("<usage>")
	os.Exit(1)
}

func main() {
	var (
		verbose    bool
		configFile string
		x          float64
		angle      float64
	)

	driveFlags := flag.NewFlagSet("drive", flag.ExitOnError)
	toolFlags := flag.NewFlagSet("tool", flag.ExitOnError)
	benchmarkFlags := flag.NewFlagSet("benchmark", flag.ExitOnError)

	driveFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	driveFlags.StringVar(&configFile, "config", "", "Config file")

	toolFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	toolFlags.StringVar(&configFile, "config", "", "Config file")
	toolFlags.Float64Var(&x, "x", 0.5, "Lateral position in [0, 1]")
	toolFlags.Float64Var(&angle, "angle", 90, "Heading angle in degrees")

	benchmarkFlags.BoolVar(&verbose, "verbose", false, "Verbose logging")
	benchmarkFlags.StringVar(&configFile, "config", "", "Config file")

	if len(os.Args) < 2 {
		exitWithUsage()
	}

	switch os.Args[1] {
	case driveFlags.Name():
		err := driveFlags.Parse(os.Args[2:])
		if err != nil || driveFlags.NArg() != 0 {
			exitWithUsage()
		}
		if configFile == "" {
			exitWithUsage()
		}
		initLogger(verbose)
		runDrive(configFile)
	case toolFlags.Name():
		err := toolFlags.Parse(os.Args[2:])
		if err != nil || toolFlags.NArg() != 0 {
			exitWithUsage()
		}
		initLogger(verbose)
		runTool(configFile, x, angle)
	case benchmarkFlags.Name():
		err := benchmarkFlags.Parse(os.Args[2:])
		if err != nil || benchmarkFlags.NArg() != 0 {
			exitWithUsage()
		}
		if configFile == "" {
			exitWithUsage()
		}
		initLogger(verbose)
		runBenchmark(configFile)
	default:
		exitWithUsage()
	}
}
