package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/plus3/rockfall/sim"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	input := flag.String("input", "input.txt", "Path to the jet pattern file.")
	rocks := flag.Int64("rocks", 1_000_000_000_000, "Number of rocks to drop.")
	maxRocks := flag.Int64("max-rocks", sim.DefaultMaxRocks, "Give up on cycle detection after this many simulated rocks.")
	render := flag.Int("render", 0, "Print the top N chamber rows after the run.")
	report := flag.Bool("report", false, "Print a run report after the result.")
	verbose := flag.Bool("v", false, "Enable debug logging.")
	fingerprint := sim.FingerprintSurface
	flag.Var(&fingerprint, "fingerprint", "Cycle detection key: surface, fullrow or none.")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	data, err := os.ReadFile(*input)
	if err != nil {
		log.Fatal().Err(err).Str("input", *input).Msg("Failed to read jet pattern")
	}

	moves, err := sim.ParseMoves(string(data))
	if err != nil {
		log.Fatal().Err(err).Str("input", *input).Msg("Failed to parse jet pattern")
	}
	log.Info().Str("input", *input).Int("moves", len(moves)).Msg("Jet pattern loaded")

	simulation, err := sim.New(sim.Config{
		Moves:       moves,
		Fingerprint: fingerprint,
		MaxRocks:    *maxRocks,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to set up simulation")
	}

	start := time.Now()
	result, err := simulation.Run(*rocks)
	if err != nil {
		log.Fatal().Err(err).Int64("rocks", *rocks).Msg("Simulation failed")
	}
	elapsed := time.Since(start)

	log.Info().
		Int64("simulated", result.Simulated).
		Bool("extrapolated", result.Extrapolated).
		Dur("elapsed", elapsed).
		Msg("Simulation finished")

	fmt.Println(result.Height)

	if *render > 0 {
		if err := simulation.Chamber().Render(os.Stdout, *render); err != nil {
			log.Fatal().Err(err).Msg("Failed to render chamber")
		}
	}

	if *report {
		r := &Report{
			Input:       *input,
			Moves:       len(moves),
			Fingerprint: fingerprint.String(),
			MaxRocks:    *maxRocks,
			Result:      result,
			Compactions: simulation.Compactions(),
			Snapshots:   simulation.Snapshots(),
			Phase:       simulation.Phase(),
			Elapsed:     elapsed,
			Stages:      simulation.Stats(),
		}
		if err := r.Generate(os.Stdout); err != nil {
			log.Fatal().Err(err).Msg("Failed to generate report")
		}
	}
}
