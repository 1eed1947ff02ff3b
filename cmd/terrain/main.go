package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"gopkg.in/src-d/go-billy.v4/osfs"

	"strata/internal/app"
	"strata/internal/config"
	"strata/internal/gen"
	"strata/internal/report"
)

func main() {
	flags := app.NewFlags()
	flags.Bind(flag.CommandLine)
	printParams := flag.Bool("params", false, "print the parameter table and exit")
	saveConfig := flag.String("save-config", "", "write the resolved configuration as YAML")
	reportPath := flag.String("report", "", "append the run record to a zstd JSONL file")
	verbose := flag.Bool("v", false, "log every stage")
	flag.Parse()

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := flags.Resolve(nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *printParams {
		writeParams(os.Stdout, cfg)
		return
	}
	if *saveConfig != "" {
		if err := config.Save(osfs.New("."), *saveConfig, cfg); err != nil {
			log.Error("save config", "err", err)
			os.Exit(1)
		}
	}

	fmt.Printf("Generating %dx%d world (seed %d, %s cells)\n",
		cfg.Width, cfg.Height, cfg.Seed, humanize.Comma(int64(cfg.Width*cfg.Height)))
	_, rep, err := gen.Generate(cfg, gen.WithLogger(log))
	if err != nil {
		log.Error("generation failed", "err", err)
		os.Exit(1)
	}
	writeReport(os.Stdout, rep)

	if *reportPath != "" {
		w, err := report.Create(*reportPath)
		if err == nil {
			err = w.Write(report.FromReport(rep, time.Now()))
			if cerr := w.Close(); err == nil {
				err = cerr
			}
		}
		if err != nil {
			log.Error("write report", "path", *reportPath, "err", err)
			os.Exit(1)
		}
	}
}

func writeParams(out io.Writer, cfg config.Config) {
	for _, g := range cfg.Parameters().Groups {
		fmt.Fprintf(out, "[%s]\n", g.Name)
		for _, p := range g.Params {
			fmt.Fprintf(out, "  %-36s %-5s %s\n", p.Key, p.Type, p.Value)
		}
	}
}

func writeReport(out io.Writer, rep *gen.Report) {
	fmt.Fprintf(out, "\nStages (total %s):\n", rep.Total.Round(time.Millisecond))
	for _, s := range rep.Stages {
		fmt.Fprintf(out, "  %-10s %s\n", s.Stage, s.Duration.Round(time.Millisecond))
	}
	fmt.Fprintf(out, "\nHeight min=%.3f max=%.3f mean=%.3f\n", rep.MinHeight, rep.MaxHeight, rep.MeanHeight)
	fmt.Fprintf(out, "River cells %s, lake cells %s, wave cells %s\n",
		humanize.Comma(int64(rep.RiverCells)), humanize.Comma(int64(rep.LakeCells)), humanize.Comma(int64(rep.WaveCells)))

	type entry struct {
		name string
		n    int
	}
	var cats []entry
	total := 0
	for name, n := range rep.Categories {
		cats = append(cats, entry{name, n})
		total += n
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i].n > cats[j].n })
	fmt.Fprintln(out, "\nCategories:")
	for _, c := range cats {
		pct := 0.0
		if total > 0 {
			pct = 100 * float64(c.n) / float64(total)
		}
		fmt.Fprintf(out, "  %-15s %12s %6.2f%%\n", c.name, humanize.Comma(int64(c.n)), pct)
	}
}
