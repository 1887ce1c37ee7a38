package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/pavanmanishd/freelist/internal/perf"
	"github.com/pavanmanishd/freelist/internal/workload"
)

var (
	runN               int
	runOrder           string
	runSeed            uint64
	runWorkloads       []string
	runEvents          []string
	runNoCounters      bool
	runRequireCounters bool
)

func init() {
	cmd := newRunCmd()
	cmd.Flags().IntVarP(&runN, "size", "n", workload.DefaultN, "Number of input values")
	cmd.Flags().StringVar(&runOrder, "order", "descending", "Input order: descending, ascending or random")
	cmd.Flags().Uint64Var(&runSeed, "seed", 1, "Seed for --order random")
	cmd.Flags().StringSliceVarP(&runWorkloads, "workload", "w", nil, "Workloads to run (default all)")
	cmd.Flags().StringSliceVarP(&runEvents, "events", "e", nil, "Counter events (default the cache events)")
	cmd.Flags().BoolVar(&runNoCounters, "no-counters", false, "Run without hardware counters")
	cmd.Flags().
		BoolVar(&runRequireCounters, "require-counters", false, "Fail instead of falling back when counters cannot be opened")
	rootCmd.AddCommand(cmd)
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run workloads and report counter deltas",
		Long: `The run command generates the input once, then runs each workload
inside a counter scope and prints the counters measured around it.

Example:
  freelistbench run
  freelistbench run -w freelist-sort -w list-sort --size 1000000
  freelistbench run --order random --seed 7 --events cycles,instructions --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := newConfig()
			if err != nil {
				return err
			}
			return runBench(cmd.Context(), cfg, newLogger(), cmd.OutOrStdout())
		},
	}
	return cmd
}

// Config is a validated run configuration.
type Config struct {
	Spec            workload.Spec
	Workloads       []workload.Workload
	Events          []perf.Event
	Counters        bool
	RequireCounters bool
	JSON            bool
}

func newConfig() (Config, error) {
	order, err := workload.ParseOrder(runOrder)
	if err != nil {
		return Config{}, err
	}
	cfg := Config{
		Spec:            workload.Spec{N: runN, Order: order, Seed: runSeed},
		Events:          perf.DefaultEvents,
		Counters:        !runNoCounters,
		RequireCounters: runRequireCounters,
		JSON:            jsonOut,
	}

	if len(runWorkloads) == 0 {
		cfg.Workloads = workload.All()
	}
	for _, name := range runWorkloads {
		w, err := workload.Lookup(name)
		if err != nil {
			return Config{}, err
		}
		cfg.Workloads = append(cfg.Workloads, w)
	}

	if len(runEvents) > 0 {
		if cfg.Events, err = perf.ParseEvents(runEvents); err != nil {
			return Config{}, err
		}
	}
	return cfg, cfg.Validate()
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if err := c.Spec.Validate(); err != nil {
		return err
	}
	if len(c.Workloads) == 0 {
		return errors.New("no workloads selected")
	}
	if c.Counters && len(c.Events) == 0 {
		return errors.New("no counter events selected")
	}
	if c.RequireCounters && !c.Counters {
		return errors.New("--require-counters conflicts with --no-counters")
	}
	return nil
}

// Result is the outcome of one workload.
type Result struct {
	Workload string        `json:"workload"`
	N        int           `json:"n"`
	Order    string        `json:"order"`
	Elapsed  time.Duration `json:"elapsed_ns"`
	Counters perf.Counters `json:"counters,omitempty"`
}

// openCounters opens the event set, falling back to no counters unless the
// configuration requires them.
func openCounters(ctx context.Context, cfg Config, log *Logger) (*perf.EventSet, error) {
	if !cfg.Counters {
		return nil, nil
	}
	set, err := perf.New(cfg.Events...)
	if err == nil {
		return set, nil
	}
	if cfg.RequireCounters {
		return nil, err
	}
	log.WarnContext(ctx, "running without hardware counters", "error", err)
	return nil, nil
}

func runBench(ctx context.Context, cfg Config, log *Logger, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	set, err := openCounters(ctx, cfg, log)
	if err != nil {
		return err
	}
	if set != nil {
		defer func() {
			if err := set.Close(); err != nil {
				log.WarnContext(ctx, "closing counters", "error", err)
			}
		}()
	}

	values := workload.Generate(cfg.Spec)
	log.DebugContext(ctx, "input generated", "n", len(values), "order", cfg.Spec.Order.String())

	results := make([]Result, 0, len(cfg.Workloads))
	for _, w := range cfg.Workloads {
		if err := ctx.Err(); err != nil {
			return err
		}
		wlog := log.WithWorkload(w.Name)

		res, err := runOne(set, w, values)
		res.N, res.Order = len(values), cfg.Spec.Order.String()
		wlog.LogRun(ctx, res.N, res.Elapsed, err)
		if err != nil {
			return fmt.Errorf("workload %s: %w", w.Name, err)
		}
		results = append(results, res)
		reportResult(ctx, cfg, wlog, out, res)
	}

	if cfg.JSON {
		return printJSON(out, results)
	}
	return nil
}

// reportResult logs the counters of one run and, in text mode, prints it.
// JSON output is written once all workloads have finished.
func reportResult(ctx context.Context, cfg Config, log *Logger, out io.Writer, res Result) {
	if res.Counters != nil {
		log.LogCounters(ctx, res.Counters)
	}
	if cfg.JSON {
		return
	}
	printInfo(out, "%s\n", res.Workload)
	if res.Counters != nil {
		printInfo(out, "%s\n", res.Counters)
	}
	printInfo(out, "elapsed=%s\n\n", res.Elapsed)
}

// runOne runs w on values, measured by set when set is not nil, and verifies
// the result outside the measured region.
func runOne(set *perf.EventSet, w workload.Workload, values []int) (Result, error) {
	res := Result{Workload: w.Name}

	var verify func() error
	body := func() error {
		verify = w.Run(values)
		return nil
	}

	start := time.Now()
	if set != nil {
		counters, err := perf.Measure(set, body)
		res.Elapsed = time.Since(start)
		if err != nil {
			return res, err
		}
		res.Counters = counters
	} else {
		_ = body()
		res.Elapsed = time.Since(start)
	}

	return res, verify()
}
