package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/dustin/go-humanize"

	"strata/internal/app"
	"strata/internal/config"
	"strata/internal/gen"
	"strata/internal/report"
)

type result struct {
	seed uint32
	rep  *gen.Report
	err  error
}

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	runs := flag.Int("runs", 16, "number of seeds to generate")
	parallel := flag.Int("parallel", max(1, runtime.NumCPU()/4), "worlds generated concurrently")
	out := flag.String("out", "sweep.jsonl.zst", "zstd JSONL output path")
	inspect := flag.String("inspect", "", "print the records of an existing sweep file and exit")
	flag.Parse()

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	if *inspect != "" {
		if err := printSweep(*inspect); err != nil {
			log.Error("inspect", "path", *inspect, "err", err)
			os.Exit(1)
		}
		return
	}

	base, err := flags.Resolve(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *parallel < 1 {
		*parallel = 1
	}
	// Split the CPUs between concurrent worlds unless -workers was given.
	opts := []gen.Option{gen.WithWorkers(max(1, runtime.NumCPU() / *parallel))}
	if flags.Workers > 0 {
		opts = nil
	}

	w, err := report.Create(*out)
	if err != nil {
		log.Error("create output", "path", *out, "err", err)
		os.Exit(1)
	}

	fmt.Printf("Sweeping %d seeds from %d (%d concurrent, %dx%d)\n", *runs, base.Seed, *parallel, base.Width, base.Height)

	jobs := make(chan uint32)
	results := make(chan result)
	var wg sync.WaitGroup
	for i := 0; i < *parallel; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- runSeed(base, seed, log, opts)
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	go func() {
		for i := 0; i < *runs; i++ {
			jobs <- base.Seed + uint32(i)
		}
		close(jobs)
	}()

	start := time.Now()
	var ok []result
	failed := 0
	for res := range results {
		var rec report.Record
		if res.err != nil {
			failed++
			log.Error("run failed", "seed", res.seed, "err", res.err)
			rec = report.Failed(base.Width, base.Height, res.seed, res.err, time.Now())
		} else {
			ok = append(ok, res)
			rec = report.FromReport(res.rep, time.Now())
		}
		if err := w.Write(rec); err != nil {
			log.Error("write record", "err", err)
		}
	}
	if err := w.Close(); err != nil {
		log.Error("close output", "err", err)
		os.Exit(1)
	}

	sort.Slice(ok, func(i, j int) bool { return ok[i].rep.LakeCells > ok[j].rep.LakeCells })
	fmt.Printf("\nDone in %s: %d ok, %d failed, written to %s\n", time.Since(start).Round(time.Millisecond), len(ok), failed, *out)
	for i := 0; i < len(ok) && i < 5; i++ {
		r := ok[i].rep
		fmt.Printf("%2d) seed=%d lakes=%s rivers=%s waves=%s mean=%.3f total=%s\n",
			i+1, r.Seed, humanize.Comma(int64(r.LakeCells)), humanize.Comma(int64(r.RiverCells)),
			humanize.Comma(int64(r.WaveCells)), r.MeanHeight, r.Total.Round(time.Millisecond))
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func runSeed(base config.Config, seed uint32, log *slog.Logger, opts []gen.Option) result {
	cfg := base
	cfg.Seed = seed
	opts = append(opts[:len(opts):len(opts)], gen.WithLogger(log.With("seed", seed)))
	_, rep, err := gen.Generate(cfg, opts...)
	return result{seed: seed, rep: rep, err: err}
}

func printSweep(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	n := 0
	err = report.Read(f, func(line []byte) error {
		var rec report.Record
		if err := json.Unmarshal(line, &rec); err != nil {
			return err
		}
		n++
		if rec.Error != "" {
			fmt.Printf("%s seed=%d error=%s\n", rec.RunID, rec.Seed, rec.Error)
			return nil
		}
		fmt.Printf("%s seed=%d %dx%d lakes=%s rivers=%s total=%.0fms\n", rec.RunID, rec.Seed, rec.Width, rec.Height,
			humanize.Comma(int64(rec.LakeCells)), humanize.Comma(int64(rec.RiverCells)), rec.TotalMS)
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Printf("%d records\n", n)
	return nil
}
