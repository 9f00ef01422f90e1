package sim_test

import (
	"testing"
	"time"

	"github.com/plus3/rockfall/sim"
	"github.com/stretchr/testify/assert"
)

type traceStage struct {
	name  string
	trace *[]string
}

func (s *traceStage) Execute(w *sim.World) {
	*s.trace = append(*s.trace, s.name)
	w.Rocks++
}

type idleStage struct{}

func (s *idleStage) Execute(w *sim.World) {}

func TestSchedulerRunsStagesInOrder(t *testing.T) {
	var trace []string
	w := &sim.World{}

	scheduler := sim.NewScheduler(w)
	scheduler.Register(&traceStage{name: "first", trace: &trace})
	scheduler.Register(&traceStage{name: "second", trace: &trace})

	scheduler.Once()
	scheduler.Once()

	assert.Equal(t, []string{"first", "second", "first", "second"}, trace)
	assert.Equal(t, int64(4), w.Rocks)
}

func TestSchedulerStats(t *testing.T) {
	scheduler := sim.NewScheduler(&sim.World{})
	scheduler.Register(&idleStage{})

	stats := scheduler.Stats()
	assert.Equal(t, 1, stats.StageCount)
	assert.Equal(t, int64(0), stats.Frames)
	assert.Equal(t, time.Duration(0), stats.Stages[0].MinDuration)

	for range 3 {
		scheduler.Once()
	}

	stats = scheduler.Stats()
	assert.Equal(t, int64(3), stats.Frames)
	assert.Equal(t, int64(3), stats.TotalExecutions)
	assert.Equal(t, "idleStage", stats.Stages[0].Name)
	assert.Equal(t, int64(3), stats.Stages[0].ExecutionCount)
	assert.LessOrEqual(t, stats.Stages[0].MinDuration, stats.Stages[0].MaxDuration)
	assert.LessOrEqual(t, stats.Stages[0].AvgDuration, stats.Stages[0].MaxDuration)
}
