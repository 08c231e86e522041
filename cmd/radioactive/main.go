package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/radioactive/internal/config"
	"github.com/san-kum/radioactive/internal/decay"
	"github.com/san-kum/radioactive/internal/export"
	"github.com/san-kum/radioactive/internal/isotope"
	"github.com/san-kum/radioactive/internal/metrics"
	"github.com/san-kum/radioactive/internal/render"
	"github.com/san-kum/radioactive/internal/timeline"
)

var (
	configFile string
	preset     string
	logMode    string
	verbose    bool

	quantity         string
	policy           string
	merge            string
	allowUntabulated bool
	gridKind         string
	minDecade        int
	maxDecade        int
	start            float64
	end              float64
	points           int
	floorBq          float64
	workers          int

	at       []float64
	spark    int
	plotID   string
	width    int
	height   int
	svgPath  string
	outPath  string
	dumpYAML bool
	rounds   int
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "radioactive",
		Short:         "analytical radioactive decay chain solver",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "start from a reactor waste preset")
	rootCmd.PersistentFlags().StringVar(&logMode, "log-mode", "dev", "log format (dev, prod)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	chainCmd := &cobra.Command{
		Use:   "chain [isotope...]",
		Short: "resolve decay chains",
		Args:  cobra.MinimumNArgs(1),
		RunE:  showChains,
	}
	addPolicyFlags(chainCmd)

	profileCmd := &cobra.Command{
		Use:   "profile [isotope=amount...]",
		Short: "evaluate a mixture over time",
		RunE:  showProfile,
	}
	addRunFlags(profileCmd)
	addPolicyFlags(profileCmd)
	profileCmd.Flags().Float64SliceVar(&at, "at", nil, "evaluate at these times (years) instead of a grid")
	profileCmd.Flags().IntVar(&spark, "spark", 40, "sparkline width per isotope (0 disables)")

	plotCmd := &cobra.Command{
		Use:   "plot [isotope=amount...]",
		Short: "plot a mixture's decay curve",
		RunE:  plotProfile,
	}
	addRunFlags(plotCmd)
	addPolicyFlags(plotCmd)
	plotCmd.Flags().StringVar(&plotID, "isotope", "", "plot one isotope instead of the total")
	plotCmd.Flags().IntVar(&width, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&height, "height", 15, "plot height")
	plotCmd.Flags().StringVar(&svgPath, "svg", "", "also write a log-log SVG chart to this path")

	isotopesCmd := &cobra.Command{
		Use:   "isotopes",
		Short: "list tabulated isotopes",
		Args:  cobra.NoArgs,
		RunE:  listIsotopes,
	}
	isotopesCmd.Flags().BoolVar(&dumpYAML, "yaml", false, "dump the table as yaml")

	presetsCmd := &cobra.Command{
		Use:   "presets [name]",
		Short: "list reactor waste presets",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [isotope=amount...]",
		Short: "export a sampled profile to CSV",
		RunE:  exportCSV,
	}
	addRunFlags(exportCSVCmd)
	addPolicyFlags(exportCSVCmd)
	exportCSVCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [isotope=amount...]",
		Short: "export a sampled profile to JSON",
		RunE:  exportJSON,
	}
	addRunFlags(exportJSONCmd)
	addPolicyFlags(exportJSONCmd)
	exportJSONCmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")

	benchCmd := &cobra.Command{
		Use:   "bench [isotope=amount...]",
		Short: "benchmark solving and sampling",
		RunE:  benchProfile,
	}
	addPolicyFlags(benchCmd)
	benchCmd.Flags().IntVar(&rounds, "rounds", 20, "repetitions per measurement")

	rootCmd.AddCommand(chainCmd, profileCmd, plotCmd, isotopesCmd, presetsCmd, exportCSVCmd, exportJSONCmd, benchCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}

func showChains(cmd *cobra.Command, args []string) error {
	cfg, err := loadRun(cmd, nil, false)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	table := decay.Isotopes()
	solver, err := cfg.NewSolver(table)
	if err != nil {
		return err
	}

	for _, id := range args {
		chain, err := solver.Resolver().Chain(id)
		if err != nil {
			return err
		}
		log.Debug("resolved chain", "seed", id, "length", chain.Len(), "policy", cfg.Policy)

		fmt.Println(render.Title.Render(chain.String()))
		if !chain.SeedKnown {
			fmt.Println(render.Warning.Render(id + " is not tabulated; treated as stable"))
		}
		fmt.Println(render.ChainTable(chain, table))
		fmt.Println()
	}
	return nil
}

func showProfile(cmd *cobra.Command, args []string) error {
	r, err := prepareRun(cmd, args)
	if err != nil {
		return err
	}
	defer r.log.Sync()
	q := r.cfg.GetQuantity()

	if len(at) > 0 {
		for _, t := range at {
			smp, err := decay.Evaluate(r.profile, q, t)
			if err != nil {
				return err
			}
			fmt.Println(render.Title.Render("t = " + render.Duration(t)))
			fmt.Println(render.SampleTable(smp, q))
		}
		return nil
	}

	series, err := sampleRun(cmd.Context(), r.cfg, r.profile, r.log)
	if err != nil {
		return err
	}
	fmt.Println(render.SeriesTable(series, spark))
	for _, res := range metrics.Run(series, metrics.Default(q, r.cfg.Grid.FloorBq)...) {
		fmt.Printf("%s %s\n", render.Label.Render(res.Name+":"), render.Value.Render(render.Number(res.Value)))
	}
	if q == decay.QuantityRadioactivity {
		if t, ok := series.FirstBelow(r.cfg.Grid.FloorBq); ok {
			fmt.Printf("%s %s\n", render.Label.Render("below "+render.Number(r.cfg.Grid.FloorBq)+" Bq after"), render.Value.Render(render.Duration(t)))
		}
	}
	return nil
}

func plotProfile(cmd *cobra.Command, args []string) error {
	r, err := prepareRun(cmd, args)
	if err != nil {
		return err
	}
	defer r.log.Sync()

	series, err := sampleRun(cmd.Context(), r.cfg, r.profile, r.log)
	if err != nil {
		return err
	}

	// the until grid overshoots the floor by up to one decade
	if r.cfg.Grid.Kind == "until" && plotID == "" {
		if above := series.Above(r.cfg.Grid.FloorBq); above.Len() >= 2 {
			series = above
		}
	}

	graph, err := render.Plot(series, render.PlotOptions{Width: width, Height: height, ID: plotID})
	if err != nil {
		return err
	}
	fmt.Println(graph)
	fmt.Printf("\n%s %s .. %s (%d samples)\n", render.Label.Render("t:"),
		render.Duration(series.Times[0]), render.Duration(series.Times[series.Len()-1]), series.Len())

	if svgPath == "" {
		return nil
	}
	color := "#00ccff"
	if p := config.GetPreset(preset); p != nil {
		color = p.Color
	}
	svg := export.SeriesToSVG(series, 800, 400, color)
	if svg == "" {
		return render.ErrNothingToPlot
	}
	if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
		return err
	}
	r.log.Info("wrote svg", "path", svgPath)
	return nil
}

func listIsotopes(cmd *cobra.Command, args []string) error {
	table := decay.Isotopes()
	if dumpYAML {
		enc := yaml.NewEncoder(os.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(table.Records()); err != nil {
			return err
		}
		return enc.Close()
	}
	fmt.Println(render.IsotopeTable(table))
	fmt.Printf("%d isotopes\n", table.Len())
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		p := config.GetPreset(args[0])
		if p == nil {
			return fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
		fmt.Println(render.Box(p.Name, render.Subtle.Render(p.Source)))
		rows := make([][]string, 0, p.Mixture.Len())
		for _, c := range p.Mixture.Charges() {
			rows = append(rows, []string{c.ID, render.Number(c.Amount)})
		}
		fmt.Println(render.Grid([]string{"isotope", "mol/y/GWe"}, rows))
		return nil
	}

	rows := make([][]string, 0, len(config.Presets))
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		rows = append(rows, []string{name, p.Name, fmt.Sprint(p.Mixture.Len())})
	}
	fmt.Println(render.Grid([]string{"preset", "name", "isotopes"}, rows))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	r, err := prepareRun(cmd, args)
	if err != nil {
		return err
	}
	defer r.log.Sync()

	series, err := sampleRun(cmd.Context(), r.cfg, r.profile, r.log)
	if err != nil {
		return err
	}
	return export.ToFile(outPath, func(w io.Writer) error {
		return export.WriteCSV(w, series)
	})
}

func exportJSON(cmd *cobra.Command, args []string) error {
	r, err := prepareRun(cmd, args)
	if err != nil {
		return err
	}
	defer r.log.Sync()

	series, err := sampleRun(cmd.Context(), r.cfg, r.profile, r.log)
	if err != nil {
		return err
	}

	meta := buildMeta(r.cfg, r.profile)
	return export.ToFile(outPath, func(w io.Writer) error {
		return export.WriteJSON(w, series, meta)
	})
}

func benchProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadRun(cmd, args, false)
	if err != nil {
		return err
	}
	if cfg.Mixture.Len() == 0 {
		cfg.Mixture = config.GetPreset("pressurized-water").Mixture.Clone()
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	solver, err := cfg.NewSolver(isotope.Default())
	if err != nil {
		return err
	}
	times, err := timeline.LogGrid(-2, timeline.DefaultMaxDecade)
	if err != nil {
		return err
	}

	fmt.Printf("benchmarking %d isotopes, %d samples, %d rounds\n\n", cfg.Mixture.Len(), len(times), rounds)

	rounds = max(rounds, 1)
	began := time.Now()
	var profile *decay.MixtureProfile
	for i := 0; i < rounds; i++ {
		if profile, err = solver.Profile(cfg.Mixture); err != nil {
			return err
		}
	}
	solve := time.Since(began) / time.Duration(rounds)

	rows := [][]string{{"solve", "-", solve.String(), "-"}}
	for _, n := range benchWorkers() {
		sampler := timeline.NewSampler(n, log)
		began := time.Now()
		for i := 0; i < rounds; i++ {
			if _, err := sampler.Sample(cmd.Context(), profile, decay.QuantityRadioactivity, times); err != nil {
				return err
			}
		}
		elapsed := time.Since(began) / time.Duration(rounds)
		perSec := float64(len(times)) / elapsed.Seconds()
		rows = append(rows, []string{"sample", fmt.Sprint(n), elapsed.String(), fmt.Sprintf("%.0f", perSec)})
	}

	fmt.Println(render.Grid([]string{"stage", "workers", "time/round", "samples/sec"}, rows))
	return nil
}

func benchWorkers() []int {
	n := runtime.GOMAXPROCS(0)
	if n == 1 {
		return []int{1}
	}
	return []int{1, n}
}
