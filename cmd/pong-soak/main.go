package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"github.com/plus3/pong/arena"
	"github.com/plus3/pong/config"
)

func main() {
	frames := flag.Int64("frames", 1_000_000, "The number of frames to run.")
	duration := flag.Duration("duration", 0, "Stop early after this much wall time (0 means no limit).")
	seed := flag.Uint64("seed", 1, "Seed for the scripted player input.")
	hold := flag.Int("hold", 30, "Frames each scripted key combination is held for.")
	pauseEvery := flag.Int64("pause-every", 0, "Toggle pause every N frames (0 disables).")
	configPath := flag.String("config", "", "Optional YAML or TOML config file for the arena setup.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = loaded
	}

	log.Println("Starting pong soak test...")

	world := arena.NewWorld(cfg.Setup())
	driver := arena.NewDriver(world, nil, nil)
	script := NewScript(*seed, *hold, *pauseEvery)
	checker := NewChecker(world)

	report := &Report{
		Frames:         *frames,
		Seed:           *seed,
		Hold:           *hold,
		PauseEvery:     *pauseEvery,
		GCPauseMetrics: *gcPauseMetrics,
		FrameTime: Stats{
			Samples: make([]time.Duration, 0, min(*frames, 1<<20)),
		},
	}

	runtime.ReadMemStats(&report.MemStatsStart)

	ctx := context.Background()
	if *duration > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, *duration)
		defer cancel()
	}

	log.Printf("Running %d frames...\n", *frames)
	startTime := time.Now()
	canvas := arena.NopCanvas{}

Loop:
	for frame := int64(0); frame < *frames; frame++ {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		in := script.Next(frame)
		frameStart := time.Now()
		driver.Once(in, canvas)
		report.FrameTime.Record(time.Since(frameStart))

		checker.Check(frame)
	}

	report.TotalTime = time.Since(startTime)
	report.Driver = *driver.Stats()
	report.Score = world.Score
	report.Violations = checker.Violations()
	report.ViolationTotal = checker.Total()
	report.FrameTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Println("Soak run finished.")

	fmt.Println("\n\n--- Soak Test Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		log.Fatalf("Failed to generate report: %v", err)
	}
	fmt.Println("--- End of Report ---")

	if report.ViolationTotal > 0 {
		log.Printf("Soak test found %d invariant violations.", report.ViolationTotal)
		os.Exit(1)
	}
	log.Println("Soak test complete.")
}
