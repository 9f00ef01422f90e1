package sim

import (
	"reflect"
	"time"
)

// Stage is one step of a rock's life. Stages run in registration order, once
// per rock, against the shared World.
type Stage interface {
	Execute(w *World)
}

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	StageCount      int
	Frames          int64
	TotalExecutions int64
	Stages          []StageStats
}

// StageStats provides execution statistics for a single stage.
type StageStats struct {
	Name           string
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type stageStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

// Scheduler runs the registered stages in order.
type Scheduler struct {
	world      *World
	stages     []Stage
	stageStats []*stageStatsInternal
	frames     int64
}

// NewScheduler creates a scheduler driving the given world.
func NewScheduler(world *World) *Scheduler {
	return &Scheduler{
		world:  world,
		stages: make([]Stage, 0),
	}
}

// Register appends a stage.
func (s *Scheduler) Register(stage Stage) {
	s.stages = append(s.stages, stage)

	stageType := reflect.TypeOf(stage)
	if stageType.Kind() == reflect.Ptr {
		stageType = stageType.Elem()
	}

	s.stageStats = append(s.stageStats, &stageStatsInternal{
		name:        stageType.Name(),
		minDuration: time.Duration(1<<63 - 1),
	})
}

// Once executes every stage once.
func (s *Scheduler) Once() {
	for i, stage := range s.stages {
		start := time.Now()
		stage.Execute(s.world)
		duration := time.Since(start)

		stats := s.stageStats[i]
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}
	s.frames++
}

// Stats returns statistics about stage execution.
func (s *Scheduler) Stats() *SchedulerStats {
	stats := &SchedulerStats{
		StageCount: len(s.stages),
		Frames:     s.frames,
		Stages:     make([]StageStats, len(s.stageStats)),
	}

	var totalExecs int64
	for i, internal := range s.stageStats {
		avgDuration := time.Duration(0)
		minDuration := internal.minDuration
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		} else {
			minDuration = 0
		}

		stats.Stages[i] = StageStats{
			Name:           internal.name,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
