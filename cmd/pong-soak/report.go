package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/pong/arena"
)

type Report struct {
	// Configuration
	Frames     int64
	Seed       uint64
	Hold       int
	PauseEvery int64

	// Results
	TotalTime      time.Duration
	FrameTime      Stats
	Driver         arena.DriverStats
	Score          arena.Scoreboard
	Violations     []Violation
	ViolationTotal int
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

// Record appends a sample while the run is in progress.
func (s *Stats) Record(d time.Duration) {
	s.Samples = append(s.Samples, d)
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Pong Soak Test Report

## Configuration
- **Frames Requested:** {{.Frames}}
- **Input Seed:** {{.Seed}}
- **Hold (frames):** {{.Hold}}
- **Pause Every:** {{if .PauseEvery}}{{.PauseEvery}} frames{{else}}never{{end}}

## Game Results
- **Frames Run:** {{.Driver.Frames}}
- **Final State:** {{.Driver.CurrentState}} ({{.Driver.StateSwitch}} switches)
- **Score:** player {{.Score.Player}} : enemy {{.Score.Enemy}}

## Performance Results
- **Total Test Time:** {{.TotalTime}}
- **Frame Time:**
  - **Avg:** {{.FrameTime.Avg}}
  - **Min:** {{.FrameTime.Min}}
  - **Max:** {{.FrameTime.Max}}
{{range .Driver.Phases}}- **{{.Name}} phase:** {{.ExecutionCount}} runs, avg {{.AvgDuration}}, max {{.MaxDuration}}
{{end}}
## Invariants
{{if .ViolationTotal}}- **Violations:** {{.ViolationTotal}}
{{range .Violations}}  - frame {{.Frame}}: {{.Message}}
{{end}}{{else}}- all invariants held
{{end}}
## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc:    {{mb .MemStatsStart.TotalAlloc}} MB (start) -> {{mb .MemStatsEnd.TotalAlloc}} MB (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}} bytes
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}`

	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
