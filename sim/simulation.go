// Package sim drops rocks into a chamber under a cyclic jet pattern and
// extrapolates the tower height for very large rock counts by detecting when
// the simulation starts repeating itself.
package sim

import (
	"fmt"
	"strings"

	"github.com/plus3/rockfall/chamber"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultMaxRocks bounds the cycle search.
const DefaultMaxRocks = 100_000

// Fingerprint selects which chamber state is compared between rocks.
type Fingerprint int

const (
	// FingerprintSurface snapshots after every rock, keyed by the phase and
	// the region of the chamber falling rocks can still reach.
	FingerprintSurface Fingerprint = iota
	// FingerprintFullRow snapshots only after a full row was compacted,
	// keyed by the phase and the rows above the new floor.
	FingerprintFullRow
	// FingerprintNone disables cycle detection.
	FingerprintNone
)

var fingerprintNames = map[Fingerprint]string{
	FingerprintSurface: "surface",
	FingerprintFullRow: "fullrow",
	FingerprintNone:    "none",
}

func (f Fingerprint) String() string {
	if name, ok := fingerprintNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Fingerprint(%d)", int(f))
}

// Set parses a fingerprint name, so a *Fingerprint can be used as a flag.
func (f *Fingerprint) Set(name string) error {
	for k, v := range fingerprintNames {
		if strings.EqualFold(v, name) {
			*f = k
			return nil
		}
	}
	return fmt.Errorf("unknown fingerprint %q (want surface, fullrow or none)", name)
}

// Config describes a simulation. Zero values select the defaults.
type Config struct {
	Moves       []Move
	Catalog     chamber.Catalog
	Fingerprint Fingerprint
	MaxRocks    int64
	Logger      *zerolog.Logger
}

// Result is the outcome of Run.
type Result struct {
	Rocks        int64
	Height       int64
	Simulated    int64
	Extrapolated bool
	Cycle        *Cycle
}

// Simulation owns the chamber and all bookkeeping. It is not safe for
// concurrent use.
type Simulation struct {
	world       *World
	scheduler   *Scheduler
	detector    *Detector
	fingerprint Fingerprint
	maxRocks    int64
}

// New validates the configuration and sets up an empty chamber.
func New(cfg Config) (*Simulation, error) {
	if len(cfg.Moves) == 0 {
		return nil, ErrEmptyMoves
	}

	catalog := cfg.Catalog
	if catalog == nil {
		catalog = chamber.StandardCatalog()
	}
	catalog, err := chamber.NewCatalog(catalog...)
	if err != nil {
		return nil, err
	}

	if _, ok := fingerprintNames[cfg.Fingerprint]; !ok {
		return nil, fmt.Errorf("unknown fingerprint %d", int(cfg.Fingerprint))
	}

	maxRocks := cfg.MaxRocks
	switch {
	case maxRocks < 0:
		return nil, fmt.Errorf("max rocks %d: %w", maxRocks, ErrNegativeRun)
	case maxRocks == 0:
		maxRocks = DefaultMaxRocks
	}

	logger := log.With().Str("module", "sim").Logger()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	world := &World{
		Chamber: chamber.New(),
		Moves:   cfg.Moves,
		Catalog: catalog,
		Cursor:  newCursor(len(cfg.Moves), len(catalog)),
		Log:     logger,
	}

	detector := NewDetector()

	scheduler := NewScheduler(world)
	scheduler.Register(&SpawnStage{})
	scheduler.Register(&DropStage{})
	scheduler.Register(&CompactStage{})
	scheduler.Register(&DetectStage{Detector: detector, Fingerprint: cfg.Fingerprint})

	return &Simulation{
		world:       world,
		scheduler:   scheduler,
		detector:    detector,
		fingerprint: cfg.Fingerprint,
		maxRocks:    maxRocks,
	}, nil
}

// Step drops a single rock.
func (s *Simulation) Step() {
	s.scheduler.Once()
}

// Advance drops rocks until n have settled, without taking any shortcut.
func (s *Simulation) Advance(n int64) {
	for s.world.Rocks < n {
		s.Step()
	}
}

// Run returns the tower height after n rocks. It simulates until n rocks
// have settled or the state repeats, in which case the rest is
// extrapolated. With a fingerprint enabled, failing to find a cycle within
// the configured bound returns ErrNoCycle.
func (s *Simulation) Run(n int64) (Result, error) {
	if n < 0 {
		return Result{}, ErrNegativeRun
	}

	w := s.world
	for w.Rocks < n && w.Cycle == nil {
		if s.fingerprint != FingerprintNone && w.Rocks >= s.maxRocks {
			return Result{}, fmt.Errorf("%w within %d rocks", ErrNoCycle, s.maxRocks)
		}
		s.Step()
	}

	res := Result{Rocks: n, Simulated: w.Rocks}
	if w.Cycle != nil {
		c := *w.Cycle
		res.Cycle = &c
	}

	if n <= w.Rocks {
		h, ok := s.detector.HeightAt(n)
		if !ok {
			return Result{}, fmt.Errorf("%w %d", ErrLedgerGap, n)
		}
		res.Height = h
		return res, nil
	}

	h, err := s.detector.Extrapolate(n)
	if err != nil {
		return Result{}, err
	}
	res.Height = h
	res.Extrapolated = true

	w.Log.Debug().
		Int64("rocks", n).
		Int64("height", h).
		Stringer("cycle", res.Cycle).
		Msg("extrapolated")
	return res, nil
}

// Height is the tower height after the rocks settled so far.
func (s *Simulation) Height() int64 { return s.world.Height }

// Rocks is the number of settled rocks.
func (s *Simulation) Rocks() int64 { return s.world.Rocks }

// Phase is the current position inside the move and rock sequences.
func (s *Simulation) Phase() Phase { return s.world.Cursor.Phase }

// Chamber returns the live chamber. Callers must not modify it.
func (s *Simulation) Chamber() *chamber.Chamber { return s.world.Chamber }

// LastRock is the most recently settled rock.
func (s *Simulation) LastRock() Rock { return s.world.Falling }

// Compactions is the number of full-row compactions so far.
func (s *Simulation) Compactions() int64 { return s.world.Compactions }

// Snapshots is the number of distinct states recorded.
func (s *Simulation) Snapshots() int { return s.detector.Len() }

// Cycle returns the detected cycle, if any.
func (s *Simulation) Cycle() (Cycle, bool) { return s.detector.Cycle() }

// Stats returns per-stage execution statistics.
func (s *Simulation) Stats() *SchedulerStats { return s.scheduler.Stats() }
