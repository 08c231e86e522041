package main

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/san-kum/radioactive/internal/config"
	"github.com/san-kum/radioactive/internal/decay"
	"github.com/san-kum/radioactive/internal/export"
	"github.com/san-kum/radioactive/internal/logger"
	"github.com/san-kum/radioactive/internal/timeline"
)

var errNoMixture = errors.New("no isotopes given: pass id=amount arguments, --preset or --config")

// parseCharges turns "Cs-137=1.5" arguments into a mixture, keeping
// argument order. A bare id means one unit.
func parseCharges(args []string) (decay.Mixture, error) {
	m := decay.NewMixture()
	for _, arg := range args {
		id, amount, found := strings.Cut(arg, "=")
		id = strings.TrimSpace(id)
		if id == "" {
			return decay.Mixture{}, fmt.Errorf("invalid charge %q: empty isotope", arg)
		}
		v := 1.0
		if found {
			var err error
			v, err = strconv.ParseFloat(strings.TrimSpace(amount), 64)
			if err != nil {
				return decay.Mixture{}, fmt.Errorf("invalid charge %q: %w", arg, err)
			}
		}
		m.Set(id, v)
	}
	return m, m.Validate()
}

func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&quantity, "quantity", config.DefaultQuantity, "concentration or radioactivity")
	cmd.Flags().StringVar(&merge, "merge", config.DefaultMerge, "merge policy for shared isotopes (first-write-wins, sum)")
	cmd.Flags().StringVar(&gridKind, "grid", config.DefaultGrid, "time grid (until, log, linear)")
	cmd.Flags().IntVar(&minDecade, "min-decade", config.DefaultMinDecade, "first decade of a log grid")
	cmd.Flags().IntVar(&maxDecade, "max-decade", timeline.DefaultMaxDecade, "last decade of a log or until grid")
	cmd.Flags().Float64Var(&start, "start", 0, "linear grid start (years)")
	cmd.Flags().Float64Var(&end, "end", 1000, "linear grid end (years)")
	cmd.Flags().IntVar(&points, "points", config.DefaultPoints, "linear grid points")
	cmd.Flags().Float64Var(&floorBq, "floor", timeline.DefaultFloor, "stop an until grid once the total falls to this value")
	cmd.Flags().IntVar(&workers, "workers", 0, "sampling workers (0 = GOMAXPROCS)")
}

func addPolicyFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&policy, "policy", config.DefaultPolicy, "branch policy ("+strings.Join(decay.ListPolicies(), ", ")+")")
	cmd.Flags().BoolVar(&allowUntabulated, "allow-untabulated", false, "treat untabulated seeds as stable instead of failing")
}

// loadRun assembles the run configuration. Later sources win: defaults,
// preset, config file, environment, flags, then positional charges.
func loadRun(cmd *cobra.Command, args []string, needMixture bool) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg.Mixture = p.Mixture.Clone()
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		if loaded.Mixture.Len() == 0 {
			loaded.Mixture = cfg.Mixture
		}
		cfg = loaded
	}

	e, err := config.ParseEnv()
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(e)

	flags := cmd.Flags()
	if flags.Changed("quantity") {
		cfg.Quantity = quantity
	}
	if flags.Changed("policy") {
		cfg.Policy = policy
	}
	if flags.Changed("merge") {
		cfg.Merge = merge
	}
	if flags.Changed("allow-untabulated") {
		cfg.AllowUntabulated = allowUntabulated
	}
	if flags.Changed("grid") {
		cfg.Grid.Kind = gridKind
	}
	if flags.Changed("min-decade") {
		cfg.Grid.MinDecade = minDecade
	}
	if flags.Changed("max-decade") {
		cfg.Grid.MaxDecade = maxDecade
	}
	if flags.Changed("start") {
		cfg.Grid.Start = start
	}
	if flags.Changed("end") {
		cfg.Grid.End = end
	}
	if flags.Changed("points") {
		cfg.Grid.Points = points
	}
	if flags.Changed("floor") {
		cfg.Grid.FloorBq = floorBq
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("log-mode") {
		cfg.LogMode = logMode
	}
	if flags.Changed("verbose") {
		cfg.Verbose = verbose
	}

	if len(args) > 0 {
		m, err := parseCharges(args)
		if err != nil {
			return nil, err
		}
		cfg.Mixture = m
	}
	if needMixture && cfg.Mixture.Len() == 0 {
		return nil, errNoMixture
	}

	return cfg, cfg.Validate()
}

func newLogger(cfg *config.Config) (*logger.Logger, error) {
	log, err := logger.New(cfg.LogMode, cfg.Verbose)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}

// sampleRun evaluates profile over the configured grid.
func sampleRun(ctx context.Context, cfg *config.Config, profile decay.Profile, log *logger.Logger) (*timeline.Series, error) {
	sampler := timeline.NewSampler(cfg.Workers, log)
	q := cfg.GetQuantity()
	if cfg.Grid.Kind == "until" {
		return sampler.UntilBelow(ctx, profile, q, cfg.Grid.FloorBq, cfg.Grid.MaxDecade)
	}
	times, err := cfg.Grid.Times()
	if err != nil {
		return nil, err
	}
	return sampler.Sample(ctx, profile, q, times)
}

// run is a resolved mixture profile plus the settings that produced it.
type run struct {
	cfg     *config.Config
	log     *logger.Logger
	profile *decay.MixtureProfile
}

func prepareRun(cmd *cobra.Command, args []string) (*run, error) {
	cfg, err := loadRun(cmd, args, true)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}
	log = log.With("command", cmd.Name())

	solver, err := cfg.NewSolver(decay.Isotopes())
	if err != nil {
		log.Error("build solver", "error", err)
		log.Sync()
		return nil, err
	}
	profile, err := solver.Profile(cfg.Mixture)
	if err != nil {
		log.Error("solve mixture", "isotopes", cfg.Mixture.Len(), "error", err)
		log.Sync()
		return nil, err
	}
	for _, c := range profile.Chains() {
		log.Debug("resolved chain", "seed", c.Seed(), "chain", c.String(), "policy", cfg.Policy)
	}
	return &run{cfg: cfg, log: log, profile: profile}, nil
}

// buildMeta records the inputs of a run alongside the per-year decay
// constant of every chain member.
func buildMeta(cfg *config.Config, profile *decay.MixtureProfile) export.Meta {
	meta := export.Meta{
		Mixture:        make(map[string]float64, cfg.Mixture.Len()),
		Policy:         cfg.Policy,
		Merge:          cfg.Merge,
		DecayConstants: make(map[string]float64),
	}
	for _, c := range cfg.Mixture.Charges() {
		meta.Mixture[c.ID] = c.Amount
	}
	for _, cp := range profile.Series() {
		chain := cp.Chain()
		meta.Chains = append(meta.Chains, chain.String())
		for i, lambda := range cp.DecayConstants() {
			if _, ok := meta.DecayConstants[chain.Members[i]]; !ok {
				meta.DecayConstants[chain.Members[i]] = lambda
			}
		}
	}
	return meta
}
