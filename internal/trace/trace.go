package trace

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/vinser/tilestep/internal/charutil"
	"github.com/vinser/tilestep/internal/dweller"
)

// Config controls a headless run.
type Config struct {
	Ticks int
	Tick  time.Duration
	// Turns queues a desired direction before the given tick (0-based).
	Turns map[int]charutil.Direction
}

// Sample is one traced tick.
type Sample struct {
	Tick int
	dweller.Step
	Collides bool // a wall lies ahead in the travel direction
}

// Run updates w for cfg.Ticks ticks and records each step.
func Run(w *dweller.Walker, cfg Config) []Sample {
	layout := w.Layout()
	elapsedMs := float64(cfg.Tick) / float64(time.Millisecond)
	samples := make([]Sample, 0, cfg.Ticks)
	for i := 0; i < cfg.Ticks; i++ {
		if d, ok := cfg.Turns[i]; ok {
			w.SetDesired(d)
		}
		step := w.Update(elapsedMs)
		samples = append(samples, Sample{
			Tick:     i,
			Step:     step,
			Collides: charutil.CheckForWallCollision(step.Grid, layout, step.Direction),
		})
	}
	return samples
}

// Write prints samples as an aligned table.
func Write(out io.Writer, samples []Sample) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TICK\tDIR\tTOP\tLEFT\tGRID X\tGRID Y\tCROSSED\tBLOCKED\tWALL AHEAD\tSPRITE")
	for _, s := range samples {
		fmt.Fprintf(tw, "%d\t%s\t%.2f\t%.2f\t%.3f\t%.3f\t%s\t%s\t%s\t%s\n",
			s.Tick, s.Direction, s.Position.Top, s.Position.Left, s.Grid.X, s.Grid.Y,
			mark(s.Crossed), mark(s.Blocked), mark(s.Collides), s.Visibility)
	}
	return tw.Flush()
}

func mark(b bool) string {
	if b {
		return "x"
	}
	return "-"
}
