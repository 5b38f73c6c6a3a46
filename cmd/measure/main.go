// measure converts and inspects quantities from the command line.
//
// Usage:
//
//	measure convert "10 mi" km
//	measure angle -400 190
//	measure arc -start 30 -size 60 20 45 200
//	measure travel -speed "60 MPH" -time 1h30m -accel "0.5 m/s²"
//	measure span 3663.25
//
// Settings are read from the YAML file named by -config or MEASURE_CONFIG.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/phanxgames/measure/internal/config"
)

const defaultConfigPath = "measure.yaml"

func main() {
	configPath := flag.String("config", "", "path to YAML config (default $MEASURE_CONFIG or "+defaultConfigPath+")")
	flag.Usage = usage
	flag.Parse()

	if err := run(*configPath, flag.Args(), os.Stdout); err != nil {
		slog.Error("measure failed", "err", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), `usage: measure [-config file] <command> [args]

commands:
  convert <quantity> <unit>          convert a quantity to another unit
  angle <degrees>...                 show normalized forms of angles
  arc -start D (-size D | -end D) <degrees>...
                                     clamp angles into an arc
  travel -speed S -time T [-accel A] distance covered and final speed
  span <time>                        format a time span as HH:MM:SS

`)
	flag.PrintDefaults()
}

func run(configPath string, args []string, out io.Writer) error {
	if configPath == "" {
		configPath = defaultConfigPath
		if p := os.Getenv("MEASURE_CONFIG"); p != "" {
			configPath = p
		}
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))
	slog.Debug("config loaded", "path", configPath, "precision", cfg.Precision,
		"distance_unit", cfg.DistanceUnit, "speed_unit", cfg.SpeedUnit)

	if len(args) == 0 {
		usage()
		return fmt.Errorf("no command given")
	}

	cmd, rest := args[0], args[1:]
	var lines []string
	switch cmd {
	case "convert":
		lines, err = runConvert(cfg, rest)
	case "angle":
		lines, err = runAngle(cfg, rest)
	case "arc":
		lines, err = runArc(cfg, rest)
	case "travel":
		lines, err = runTravel(cfg, rest)
	case "span":
		lines, err = runSpan(rest)
	default:
		usage()
		return fmt.Errorf("unknown command %q", cmd)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", cmd, err)
	}

	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	return nil
}
