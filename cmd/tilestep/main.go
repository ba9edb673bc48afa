package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/tilestep/internal/app"
	"github.com/vinser/tilestep/internal/charutil"
	"github.com/vinser/tilestep/internal/dweller"
	"github.com/vinser/tilestep/internal/flags"
	"github.com/vinser/tilestep/internal/floor"
	"github.com/vinser/tilestep/internal/state"
	"github.com/vinser/tilestep/internal/trace"
)

var version = "dev"

func main() {
	fl := flags.Parse()

	st := getState(fl)
	f, err := getFloor(st)
	if err != nil {
		log.Fatal(err)
	}
	dir, err := charutil.ParseDirection(st.Direction)
	if err != nil {
		dir = charutil.Left
	}
	w := dweller.NewWalker(f.Layout, st.TileSize, f.Start(), dir, st.Speed)

	if fl.Trace {
		cfg, err := traceConfig(fl, st)
		if err != nil {
			log.Fatal(err)
		}
		if err := runTrace(os.Stdout, w, cfg, st); err != nil {
			log.Fatal(err)
		}
		return
	}

	if fl.LogPath != "" {
		lf, err := tea.LogToFile(fl.LogPath, "tilestep")
		if err != nil {
			log.Fatalf("open log: %v", err)
		}
		defer lf.Close()
		log.Printf("tilestep %s started", version)
	} else {
		log.SetOutput(io.Discard)
	}

	p := tea.NewProgram(app.New(st, f, w), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// getState loads saved settings and applies the command-line overrides.
func getState(fl *flags.Flags) *state.State {
	if fl.Reset {
		if err := state.Reset(); err != nil {
			log.Printf("reset state: %v", err)
		}
		st := state.New()
		st.Apply(fl)
		return st
	}
	st := state.Load()
	st.Apply(fl)
	return st
}

func getFloor(st *state.State) (*floor.Floor, error) {
	if st.MazePath != "" {
		return floor.Load(st.MazePath)
	}
	return floor.Generate(0, st.Seed)
}

// traceConfig merges the optional turn script with the tick flags.
func traceConfig(fl *flags.Flags, st *state.State) (trace.Config, error) {
	cfg := trace.Config{Ticks: fl.Ticks, Tick: st.Tick}
	if fl.Script == "" {
		return cfg, nil
	}
	s, err := trace.LoadScript(fl.Script)
	if err != nil {
		return cfg, err
	}
	return s.Configure(cfg, fl.IsCustom("ticks")), nil
}

// runTrace writes a headless run to out and saves the settings it ran with.
func runTrace(out io.Writer, w *dweller.Walker, cfg trace.Config, st *state.State) error {
	if err := trace.Write(out, trace.Run(w, cfg)); err != nil {
		return err
	}
	if err := st.Save(); err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	return nil
}
