package report

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"strata/internal/gen"
)

// Record is one sweep result line.
type Record struct {
	RunID      string          `json:"run_id"`
	Time       time.Time       `json:"time"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	Seed       uint32          `json:"seed"`
	TotalMS    float64         `json:"total_ms"`
	Stages     []StageRecord   `json:"stages"`
	MinHeight  float32         `json:"min_height"`
	MaxHeight  float32         `json:"max_height"`
	MeanHeight float64         `json:"mean_height"`
	RiverCells int             `json:"river_cells"`
	LakeCells  int             `json:"lake_cells"`
	WaveCells  int             `json:"wave_cells"`
	Categories []CategoryCount `json:"categories"`
	Error      string          `json:"error,omitempty"`
}

// StageRecord is a stage duration in milliseconds.
type StageRecord struct {
	Stage string  `json:"stage"`
	MS    float64 `json:"ms"`
}

// CategoryCount is one histogram bucket.
type CategoryCount struct {
	Category string `json:"category"`
	Cells    int    `json:"cells"`
}

// FromReport converts a pipeline report into a record with a fresh run id.
func FromReport(r *gen.Report, now time.Time) Record {
	rec := Record{
		RunID:      uuid.NewString(),
		Time:       now.UTC(),
		Width:      r.Width,
		Height:     r.Height,
		Seed:       r.Seed,
		TotalMS:    ms(r.Total),
		MinHeight:  r.MinHeight,
		MaxHeight:  r.MaxHeight,
		MeanHeight: r.MeanHeight,
		RiverCells: r.RiverCells,
		LakeCells:  r.LakeCells,
		WaveCells:  r.WaveCells,
	}
	for _, s := range r.Stages {
		rec.Stages = append(rec.Stages, StageRecord{Stage: s.Stage, MS: ms(s.Duration)})
	}
	for name, n := range r.Categories {
		rec.Categories = append(rec.Categories, CategoryCount{Category: name, Cells: n})
	}
	sort.Slice(rec.Categories, func(i, j int) bool {
		if rec.Categories[i].Cells != rec.Categories[j].Cells {
			return rec.Categories[i].Cells > rec.Categories[j].Cells
		}
		return rec.Categories[i].Category < rec.Categories[j].Category
	})
	return rec
}

// Failed builds a record for a run that aborted.
func Failed(width, height int, seed uint32, err error, now time.Time) Record {
	return Record{
		RunID:  uuid.NewString(),
		Time:   now.UTC(),
		Width:  width,
		Height: height,
		Seed:   seed,
		Error:  err.Error(),
	}
}

func ms(d time.Duration) float64 { return float64(d) / float64(time.Millisecond) }
