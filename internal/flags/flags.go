package flags

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/vinser/tilestep/internal/charutil"
)

// Flags stores the parsed command-line options
type Flags struct {
	MazePath  string
	Seed      int64
	TileSize  float64
	Speed     float64 // pixels per second
	Direction charutil.Direction
	Ticks     int
	Tick      time.Duration
	Trace     bool
	Script    string
	LogPath   string
	Reset     bool

	set *FlagSetWithVisit
}

// Defaults
const (
	DefaultTileSize  = 8
	DefaultSpeed     = 88
	DefaultDirection = "left"
	DefaultTicks     = 60
	DefaultTick      = 50 * time.Millisecond
)

// defaultOutput is where usage goes when Parse is called from main.
var defaultOutput io.Writer = os.Stderr

var (
	errTileSize = errors.New("tile size must be positive")
	errSpeed    = errors.New("speed must not be negative")
	errTicks    = errors.New("ticks must not be negative")
	errTick     = errors.New("tick must be positive")
)

// IsCustom reports whether the named flag was given on the command line.
func (f *Flags) IsCustom(name string) bool {
	return f.set != nil && f.set.IsCustom(name)
}

// Parse parses command-line flags, exiting with usage on invalid input.
func Parse() *Flags {
	f, err := ParseArgs(os.Args[0], os.Args[1:], defaultOutput)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		os.Exit(1)
	}
	return f
}

// ParseArgs parses args. Errors are reported to out together with the usage.
func ParseArgs(name string, args []string, out io.Writer) (*Flags, error) {
	var f Flags
	var dir string

	fs := NewFlagSetWithVisit(name, flag.ContinueOnError, out)
	fs.StringVar(&f.MazePath, "maze", "m", "", "Maze layout file, one row per line, 'X' or '#' for walls (default: generated)")
	fs.Int64Var(&f.Seed, "seed", "s", 0, "Seed for the generated maze (0: new random seed, default: last used)")
	fs.Float64Var(&f.TileSize, "tile-size", "t", DefaultTileSize, "Tile size in pixels")
	fs.Float64Var(&f.Speed, "speed", "v", DefaultSpeed, "Walker speed in pixels per second")
	fs.StringVar(&dir, "dir", "d", DefaultDirection, "Start direction: up, down, left or right")
	fs.IntVar(&f.Ticks, "ticks", "n", DefaultTicks, "Number of ticks to trace")
	fs.DurationVar(&f.Tick, "tick", "k", DefaultTick, "Simulation tick")
	fs.BoolVar(&f.Trace, "trace", "r", false, "Print a headless trace instead of starting the viewer")
	fs.StringVar(&f.Script, "script", "c", "", "YAML file with turns to apply during the trace")
	fs.StringVar(&f.LogPath, "log", "l", "", "Write debug log to this file")
	fs.BoolVar(&f.Reset, "reset", "", false, "Reset saved settings")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	f.set = fs

	d, err := charutil.ParseDirection(dir)
	if err != nil {
		return nil, usageError(fs, out, fmt.Errorf("invalid direction: %s. Use 'up', 'down', 'left' or 'right'", dir))
	}
	f.Direction = d
	f.MazePath = strings.TrimSpace(f.MazePath)

	switch {
	case f.TileSize <= 0:
		return nil, usageError(fs, out, errTileSize)
	case f.Speed < 0:
		return nil, usageError(fs, out, errSpeed)
	case f.Ticks < 0:
		return nil, usageError(fs, out, errTicks)
	case f.Tick <= 0:
		return nil, usageError(fs, out, errTick)
	}
	return &f, nil
}

func usageError(fs *FlagSetWithVisit, out io.Writer, err error) error {
	fmt.Fprintf(out, "%v\n", err)
	fs.Usage()
	return err
}
