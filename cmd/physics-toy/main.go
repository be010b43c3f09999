package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crawley-dev/physics-toy/internal/config"
	"github.com/crawley-dev/physics-toy/internal/export"
	"github.com/crawley-dev/physics-toy/internal/gravity"
	"github.com/crawley-dev/physics-toy/internal/metrics"
	"github.com/crawley-dev/physics-toy/internal/rigid"
	"github.com/crawley-dev/physics-toy/internal/sim"
	"github.com/crawley-dev/physics-toy/internal/storage"
	"github.com/crawley-dev/physics-toy/internal/tui"
)

var (
	dataDir    string
	configFile string
	preset     string
	engine     string
	collision  string
	frames     int
	seed       int64
	workers    int
	verbose    bool
	// Export options for headless runs
	gifPath  string
	gifEvery int
	pngPath  string
	// Plot series selection
	series string
	// Batch run count
	numRuns int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "physics-toy",
		Short: "interactive 2d physics sandbox",
		RunE:  playSandbox,
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".physics-toy", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "yaml config file")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "named scene preset")
	rootCmd.PersistentFlags().StringVar(&engine, "engine", config.EngineGravity, "engine: gravity or rigid")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "debug logging")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scene headless and record metrics",
		RunE:  runHeadless,
	}
	runCmd.Flags().IntVar(&frames, "frames", 1200, "frames to simulate")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "random seed")
	runCmd.Flags().IntVar(&workers, "workers", 0, "force pass workers (0 = NumCPU)")
	runCmd.Flags().StringVar(&collision, "collision", "", "particle collision strategy: bounce or merge")
	runCmd.Flags().StringVar(&gifPath, "gif", "", "record an animated gif to this path")
	runCmd.Flags().IntVar(&gifEvery, "gif-every", 4, "capture every nth frame")
	runCmd.Flags().StringVar(&pngPath, "png", "", "save the final frame as png")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a recorded metric series",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().StringVar(&series, "series", metrics.SeriesKinetic, "series to plot")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available scene presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, eng := range []string{config.EngineGravity, config.EngineRigid} {
				fmt.Printf("%s:\n", eng)
				for _, p := range config.ListPresets(eng) {
					fmt.Printf("  %s\n", p)
				}
			}
			return nil
		},
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "run a batch of seeded scenes in parallel",
		RunE:  benchRuns,
	}
	benchCmd.Flags().IntVar(&frames, "frames", 600, "frames per run")
	benchCmd.Flags().IntVar(&numRuns, "runs", 8, "number of runs")
	benchCmd.Flags().Int64Var(&seed, "seed", 1, "starting seed")
	benchCmd.Flags().IntVar(&workers, "workers", 0, "force pass workers (0 = NumCPU)")

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, presetsCmd, benchCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger() (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// loadConfig resolves the scene in flag priority order: preset, then
// config file, then per-run flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	cfg.Engine = engine

	if preset != "" {
		p := config.GetPreset(engine, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset %q (available: %v)", preset, config.ListPresets(engine))
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
		if cmd.Flags().Changed("engine") {
			cfg.Engine = engine
		}
	}

	if cmd.Flags().Changed("collision") {
		cfg.Collision = collision
	}
	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = workers
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func buildFrontend(cfg *config.Config, log *zap.Logger) (sim.Frontend, error) {
	switch cfg.Engine {
	case config.EngineGravity:
		return gravity.New(cfg, log), nil
	case config.EngineRigid:
		return rigid.New(cfg, log), nil
	default:
		return nil, fmt.Errorf("unknown engine %q", cfg.Engine)
	}
}

func playSandbox(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	front, err := buildFrontend(cfg, log)
	if err != nil {
		return err
	}

	_, err = tui.NewPlayer(front, cfg.Engine, cfg.Scale, log).Run()
	return err
}

func runHeadless(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	front, err := buildFrontend(cfg, log)
	if err != nil {
		return err
	}

	runner := sim.NewRunner(front, log)
	rec := metrics.NewRecorder(
		metrics.NewMomentumDrift(),
		metrics.NewMeanKineticEnergy(),
		metrics.NewFinalEntities(),
	)
	runner.AddObserver(rec)

	var gifRec *export.GIFRecorder
	if gifPath != "" {
		gifRec = export.NewGIFRecorder(gifEvery, gifEvery)
		runner.AddObserver(gifRec)
	}

	fmt.Printf("running %s scene for %d frames...\n", cfg.Engine, frames)
	start := time.Now()

	result, err := runner.Run(context.Background(), sim.RunConfig{
		Dt:     time.Second / time.Duration(config.TargetFPS),
		Frames: frames,
		Seed:   cfg.Seed,
	})
	if err != nil {
		return err
	}

	runID, err := st.Save(cfg, result, rec)
	if err != nil {
		return err
	}

	if gifRec != nil {
		path := gifPath
		if !filepath.IsAbs(path) && filepath.Dir(path) == "." {
			path = filepath.Join(st.Dir(runID), path)
		}
		if err := gifRec.Save(path); err != nil {
			return fmt.Errorf("save gif: %w", err)
		}
		fmt.Printf("gif: %s (%d frames)\n", path, gifRec.Frames())
	}
	if pngPath != "" {
		path := pngPath
		if !filepath.IsAbs(path) && filepath.Dir(path) == "." {
			path = filepath.Join(st.Dir(runID), path)
		}
		if err := export.SavePNG(path, front.TextureData()); err != nil {
			return fmt.Errorf("save png: %w", err)
		}
		fmt.Printf("png: %s\n", path)
	}

	fmt.Printf("completed in %v\n", time.Since(start))
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("frames: %d\n", result.FramesRun)
	fmt.Println("\nmetrics:")
	for name, val := range rec.Values() {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tENGINE\tTIME\tFRAMES\tDT\tCOLLISION")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.4fs\t%s\n",
			run.ID,
			run.Engine,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Frames,
			run.Dt,
			run.Collision,
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	all, times, err := st.LoadSeries(runID)
	if err != nil {
		return err
	}

	data, ok := all[series]
	if !ok || len(data) == 0 {
		names := make([]string, 0, len(all))
		for name := range all {
			names = append(names, name)
		}
		return fmt.Errorf("no series %q in run (available: %v)", series, names)
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("engine: %s\n", meta.Engine)
	fmt.Printf("series: %s (%d samples over %.2fs)\n\n", series, len(data), times[len(times)-1])

	graph := asciigraph.Plot(data,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption(series),
	)
	fmt.Println(graph)

	return nil
}

func benchRuns(cmd *cobra.Command, args []string) error {
	log, err := newLogger()
	if err != nil {
		return err
	}
	defer log.Sync()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	factory := func(runSeed int64) (*sim.Runner, error) {
		c := *cfg
		c.Seed = runSeed
		front, err := buildFrontend(&c, log)
		if err != nil {
			return nil, err
		}
		return sim.NewRunner(front, log), nil
	}

	fmt.Printf("benchmarking %s: %d runs x %d frames...\n", cfg.Engine, numRuns, frames)
	start := time.Now()

	results, err := sim.NewEnsemble(factory, numRuns, seed).Run(context.Background(), sim.RunConfig{
		Dt:     time.Second / time.Duration(config.TargetFPS),
		Frames: frames,
	})
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	var total int
	for _, r := range results {
		total += r.FramesRun
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("total frames: %d (%.0f frames/s)\n", total, float64(total)/elapsed.Seconds())

	return nil
}
