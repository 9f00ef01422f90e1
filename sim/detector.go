package sim

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

var (
	ErrNoCycle     = errors.New("no cycle found")
	ErrLedgerGap   = errors.New("no height recorded for rock count")
	ErrOverflow    = errors.New("extrapolated height overflows int64")
	ErrNegativeRun = errors.New("rock count must not be negative")
)

// Snapshot is one entry of the snapshot table: the progress at which a
// chamber state was first seen, plus the heights recorded during the period
// leading up to it.
type Snapshot struct {
	Index  int
	Rocks  int64
	Height int64
	Ledger *Ledger
}

// Cycle describes a repeated state: the snapshot first seen after
// FirstRocks rocks came back after Rocks rocks.
type Cycle struct {
	FirstIndex  int
	FirstRocks  int64
	FirstHeight int64
	Rocks       int64
	Height      int64
}

// Period is the number of rocks per repetition.
func (c Cycle) Period() int64 {
	return c.Rocks - c.FirstRocks
}

// Gain is the tower height added per repetition.
func (c Cycle) Gain() int64 {
	return c.Height - c.FirstHeight
}

func (c Cycle) String() string {
	return fmt.Sprintf("rocks %d..%d, period %d, gain %d", c.FirstRocks, c.Rocks, c.Period(), c.Gain())
}

// Extrapolate returns the height after n rocks. heightAt must answer for
// every rock count in [FirstRocks, Rocks).
func (c Cycle) Extrapolate(n int64, heightAt func(rocks int64) (int64, bool)) (int64, error) {
	if n < 0 {
		return 0, ErrNegativeRun
	}
	if n < c.FirstRocks {
		h, ok := heightAt(n)
		if !ok {
			return 0, fmt.Errorf("%w %d", ErrLedgerGap, n)
		}
		return h, nil
	}

	period := c.Period()
	whole := (n - c.FirstRocks) / period
	offset := (n - c.FirstRocks) % period

	h, ok := heightAt(c.FirstRocks + offset)
	if !ok {
		return 0, fmt.Errorf("%w %d", ErrLedgerGap, c.FirstRocks+offset)
	}

	gain := c.Gain()
	if gain > 0 && whole > (math.MaxInt64-h)/gain {
		return 0, ErrOverflow
	}
	return h + whole*gain, nil
}

// Detector keeps the insertion-ordered snapshot table and the running
// ledger of the current period.
type Detector struct {
	index     map[string]int
	snapshots []Snapshot
	running   *Ledger
	cycle     *Cycle
}

func NewDetector() *Detector {
	d := &Detector{
		index:   make(map[string]int),
		running: NewLedger(),
	}
	d.running.Put(0, 0)
	return d
}

// Record adds a settled rock to the running ledger.
func (d *Detector) Record(rocks, height int64) {
	d.running.Put(rocks, height)
}

// Observe looks the state key up in the snapshot table. On a repeat it
// returns the cycle; otherwise the key is stored together with the running
// ledger, which then starts over.
func (d *Detector) Observe(key string, rocks, height int64) (Cycle, bool) {
	if i, ok := d.index[key]; ok {
		first := d.snapshots[i]
		c := Cycle{
			FirstIndex:  i,
			FirstRocks:  first.Rocks,
			FirstHeight: first.Height,
			Rocks:       rocks,
			Height:      height,
		}
		if d.cycle == nil {
			d.cycle = &c
		}
		return c, true
	}

	d.index[key] = len(d.snapshots)
	d.snapshots = append(d.snapshots, Snapshot{
		Index:  len(d.snapshots),
		Rocks:  rocks,
		Height: height,
		Ledger: d.running,
	})
	d.running = NewLedger()
	return Cycle{}, false
}

// Cycle returns the first cycle found.
func (d *Detector) Cycle() (Cycle, bool) {
	if d.cycle == nil {
		return Cycle{}, false
	}
	return *d.cycle, true
}

func (d *Detector) Len() int {
	return len(d.snapshots)
}

// Snapshot returns the i-th inserted snapshot.
func (d *Detector) Snapshot(i int) Snapshot {
	return d.snapshots[i]
}

// HeightAt looks the rock count up in the ledgers. Each snapshot's ledger
// covers the rocks after the previous snapshot up to its own; the running
// ledger covers the rest.
func (d *Detector) HeightAt(rocks int64) (int64, bool) {
	i := sort.Search(len(d.snapshots), func(i int) bool {
		return d.snapshots[i].Rocks >= rocks
	})
	if i < len(d.snapshots) {
		if h, ok := d.snapshots[i].Ledger.Get(rocks); ok {
			return h, true
		}
	}
	return d.running.Get(rocks)
}

// Extrapolate applies the first cycle found to n rocks.
func (d *Detector) Extrapolate(n int64) (int64, error) {
	if d.cycle == nil {
		return 0, ErrNoCycle
	}
	return d.cycle.Extrapolate(n, d.HeightAt)
}
