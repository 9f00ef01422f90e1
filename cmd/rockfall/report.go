package main

import (
	"io"
	"text/template"
	"time"

	"github.com/plus3/rockfall/sim"
)

type Report struct {
	// Configuration
	Input       string
	Moves       int
	Fingerprint string
	MaxRocks    int64

	// Results
	Result      sim.Result
	Compactions int64
	Snapshots   int
	Phase       sim.Phase
	Elapsed     time.Duration
	Stages      *sim.SchedulerStats
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Rockfall Report

## Configuration
- **Input:** {{.Input}} ({{.Moves}} moves)
- **Fingerprint:** {{.Fingerprint}}
- **Cycle Search Bound:** {{.MaxRocks}} rocks

## Result
- **Rocks:** {{.Result.Rocks}}
- **Tower Height:** {{.Result.Height}}
- **Simulated Rocks:** {{.Result.Simulated}}
- **Extrapolated:** {{.Result.Extrapolated}}
{{- with .Result.Cycle}}
- **Cycle:** first seen after {{.FirstRocks}} rocks (height {{.FirstHeight}}), repeated after {{.Rocks}} rocks (height {{.Height}})
  - **Period:** {{.Period}} rocks
  - **Gain:** {{.Gain}} rows per period
{{- end}}
- **Snapshots Recorded:** {{.Snapshots}}
- **Full-Row Compactions:** {{.Compactions}}
- **Final Phase:** {{.Phase}}
- **Elapsed:** {{.Elapsed}}

## Stage Timings ({{.Stages.Frames}} rocks)
{{- range .Stages.Stages}}
- **{{.Name}}:** avg {{.AvgDuration}}, min {{.MinDuration}}, max {{.MaxDuration}}, total {{.TotalDuration}}
{{- end}}
`

	tmpl, err := template.New("report").Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
