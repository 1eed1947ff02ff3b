package gen

import (
	"errors"
	"fmt"
	"time"

	"strata/internal/config"
	icore "strata/internal/core"
	"strata/internal/world"
)

// StageTiming is how long one stage took.
type StageTiming struct {
	Stage    string        `json:"stage"`
	Duration time.Duration `json:"duration_ns"`
}

// Report summarizes one pipeline run.
type Report struct {
	Width      int            `json:"width"`
	Height     int            `json:"height"`
	Seed       uint32         `json:"seed"`
	Stages     []StageTiming  `json:"stages"`
	Total      time.Duration  `json:"total_ns"`
	MinHeight  float32        `json:"min_height"`
	MaxHeight  float32        `json:"max_height"`
	MeanHeight float64        `json:"mean_height"`
	RiverCells int            `json:"river_cells"`
	LakeCells  int            `json:"lake_cells"`
	WaveCells  int            `json:"wave_cells"`
	Categories map[string]int `json:"categories"`
}

// Pipeline runs the generation stages in order.
type Pipeline struct {
	env
	stages []Stage
}

// NewPipeline builds the standard stage order: height, thermal, hydraulic,
// slope, mountains, rivers, lakes, classify, border.
func NewPipeline(cfg config.Config, opts ...Option) *Pipeline {
	p := &Pipeline{env: newEnv(cfg, opts)}
	p.stages = []Stage{
		NewHeightSynthesizer(cfg, opts...),
		NewThermalEroder(cfg, opts...),
		NewHydraulicEroder(cfg, opts...),
		NewSlopeAspectCalculator(cfg, opts...),
		NewMountainMassifGenerator(cfg, opts...),
		NewRiverNetworkSimulator(cfg, opts...),
		NewLakeFormer(cfg, opts...),
		NewTileClassifier(cfg, opts...),
		NewBorderWallPlacer(cfg, opts...),
	}
	return p
}

// Run executes every stage against w with offsets 0, stride, 2*stride...
// The first failing stage aborts the run with a *world.StageError.
func (p *Pipeline) Run(w *world.World, seed uint32) (*Report, error) {
	if w.Finalized() {
		return nil, world.ErrFinalized
	}
	log := p.log.With("seed", seed, "width", w.Width(), "height", w.Height())
	log.Info("generation started", "stages", len(p.stages))

	sw := icore.NewStopwatch()
	var offset int32
	for _, s := range p.stages {
		if err := runStage(s, w, seed, offset); err != nil {
			log.Error("generation aborted", "stage", s.Name(), "err", err)
			return nil, err
		}
		d := sw.Lap(s.Name())
		log.Debug("stage finished", "stage", s.Name(), "took", d)
		offset += p.cfg.SeedStride
	}
	w.Finalize()

	r := summarize(w, seed)
	for _, l := range sw.Laps() {
		r.Stages = append(r.Stages, StageTiming{Stage: l.Name, Duration: l.Duration})
	}
	r.Total = sw.Total()
	log.Info("generation finished", "took", r.Total, "lakes", r.LakeCells, "rivers", r.RiverCells)
	return r, nil
}

func runStage(s Stage, w *world.World, seed uint32, offset int32) error {
	err := s.Process(w, seed, offset)
	if err == nil {
		err = w.Verify()
	}
	if err == nil {
		return nil
	}
	var se *world.StageError
	if errors.As(err, &se) {
		return err
	}
	if !errors.Is(err, world.ErrStageFailure) {
		err = fmt.Errorf("%w: %w", world.ErrStageFailure, err)
	}
	return &world.StageError{Stage: s.Name(), Err: err}
}

// Generate allocates a world from cfg and runs the standard pipeline on it.
func Generate(cfg config.Config, opts ...Option) (*world.World, *Report, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	w, err := world.New(cfg.Width, cfg.Height)
	if err != nil {
		return nil, nil, err
	}
	r, err := NewPipeline(cfg, opts...).Run(w, cfg.Seed)
	if err != nil {
		return nil, nil, err
	}
	return w, r, nil
}

func summarize(w *world.World, seed uint32) *Report {
	r := &Report{
		Width:      w.Width(),
		Height:     w.Height(),
		Seed:       seed,
		MinHeight:  1,
		Categories: make(map[string]int),
	}
	var sum float64
	for i, h := range w.Heights {
		r.MinHeight = min(r.MinHeight, h)
		r.MaxHeight = max(r.MaxHeight, h)
		sum += float64(h)
		if w.River[i] {
			r.RiverCells++
		}
		if w.Lake[i] {
			r.LakeCells++
		}
		if w.WaveEligible[i] {
			r.WaveCells++
		}
		r.Categories[w.Categories[i].String()]++
	}
	r.MeanHeight = sum / float64(w.Len())
	return r
}
