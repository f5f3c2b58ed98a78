package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/sarchlab/tlbsim/datarecording"
	"github.com/sarchlab/tlbsim/mem/trace"
	"github.com/sarchlab/tlbsim/monitoring"
	"github.com/sarchlab/tlbsim/report"
	"github.com/sarchlab/tlbsim/simulation"
	"github.com/spf13/cobra"
)

type simulateOptions struct {
	hitCycles float64
	memCycles float64
	output    string

	addressBits    uint64
	pageOffsetBits uint64
	tlbSize        int
	seed           int64
	envFiles       []string

	verbose     bool
	record      string
	monitor     bool
	monitorPort int
	openBrowser bool
}

func newSimulateCmd(use string) *cobra.Command {
	opts := &simulateOptions{}

	cmd := &cobra.Command{
		Use:   use,
		Short: "A command line tool for TLB simulations.",
		Long: `tlbsim replays a memory trace through an MMU with a FIFO TLB ` +
			`and a single-level page table. The trace holds one hexadecimal ` +
			`address per line, optionally followed by R or W. Without a ` +
			`trace file, the trace is read from standard input. A trace file ` +
			`named like a subcommand is passed with "tlbsim run <file>".`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&opts.hitCycles, "hit-cycles", 1.0,
		"Cycles spent on a TLB access.")
	flags.Float64Var(&opts.memCycles, "mem-cycles", 30.0,
		"Cycles spent on a memory read.")
	flags.StringVar(&opts.output, "output", string(report.FormatText),
		"Output format: text, json, table or yaml.")
	flags.Uint64Var(&opts.addressBits, "address-bits", 0,
		"Width of a virtual address in bits.")
	flags.Uint64Var(&opts.pageOffsetBits, "page-offset-bits", 0,
		"Width of the page offset in bits.")
	flags.IntVar(&opts.tlbSize, "tlb-size", 0,
		"Number of TLB entries. Defaults to $"+simulation.EnvTLBSize+" or 2.")
	flags.Int64Var(&opts.seed, "seed", 0,
		"Seed of the page table generator. 0 picks one from the clock.")
	flags.StringSliceVar(&opts.envFiles, "env-file", nil,
		"Env files to load the configuration from. Defaults to .env.")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false,
		"Print every translation to stderr.")
	flags.StringVar(&opts.record, "record", "",
		"Record every translation into <name>.sqlite3.")
	flags.BoolVar(&opts.monitor, "monitor", false,
		"Serve the simulation state over HTTP and wait for Ctrl+C at the end.")
	flags.IntVar(&opts.monitorPort, "monitor-port", 0,
		"Port of the monitoring server. Defaults to a random port.")
	flags.BoolVar(&opts.openBrowser, "open-browser", false,
		"Open the monitoring server in a browser.")

	return cmd
}

func runSimulation(
	cmd *cobra.Command,
	opts *simulateOptions,
	args []string,
) error {
	format, err := report.ParseFormat(opts.output)
	if err != nil {
		return err
	}

	config, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	tr, err := readTrace(cmd, args)
	if err != nil {
		return err
	}

	builder := simulation.MakeBuilder().WithConfig(config)

	if opts.verbose {
		logger := log.New(cmd.ErrOrStderr(), "", 0)
		builder = builder.WithHook(trace.NewLogTracer(logger))
	}

	var recorder datarecording.DataRecorder
	if opts.record != "" {
		recorder, err = datarecording.New(opts.record)
		if err != nil {
			return err
		}

		builder = builder.WithDataRecorder(recorder)
	}

	var monitor *monitoring.Monitor
	if opts.monitor {
		monitor, err = startMonitor(cmd, opts)
		if err != nil {
			return err
		}
		defer monitor.StopServer()

		builder = builder.WithMonitor(monitor)
	}

	s, err := builder.Build()
	if err != nil {
		if recorder != nil {
			recorder.Close()
		}

		return err
	}
	defer s.Terminate()

	if opts.verbose {
		fmt.Fprintf(cmd.ErrOrStderr(), "Simulation %s, seed %d\n",
			s.ID(), s.Seed())
	}

	result, err := s.Run(tr)
	if err != nil {
		return err
	}

	summary := report.NewSummary(result, opts.memCycles, opts.hitCycles)
	if err := report.Write(cmd.OutOrStdout(), format, summary); err != nil {
		return err
	}

	if monitor != nil {
		waitForInterrupt(cmd)
	}

	return nil
}

// loadConfig reads the environment and lets the flags that were set
// override it.
func loadConfig(
	cmd *cobra.Command,
	opts *simulateOptions,
) (simulation.Config, error) {
	config, err := simulation.LoadConfig(opts.envFiles...)
	if err != nil {
		return simulation.Config{}, err
	}

	flags := cmd.Flags()

	if flags.Changed("address-bits") {
		config.AddressBits = opts.addressBits
	}

	if flags.Changed("page-offset-bits") {
		config.Log2PageSize = opts.pageOffsetBits
	}

	if flags.Changed("tlb-size") {
		config.NumTLBEntries = opts.tlbSize
	}

	if flags.Changed("seed") {
		config.Seed = opts.seed
	}

	return config, nil
}

func readTrace(cmd *cobra.Command, args []string) (*trace.Trace, error) {
	var r io.Reader = cmd.InOrStdin()

	if len(args) > 0 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return nil, err
		}
		defer f.Close()

		r = f
	}

	return trace.Parse(r)
}

func startMonitor(
	cmd *cobra.Command,
	opts *simulateOptions,
) (*monitoring.Monitor, error) {
	monitor := monitoring.NewMonitor()
	if cmd.Flags().Changed("monitor-port") {
		monitor.WithPortNumber(opts.monitorPort)
	}

	url, err := monitor.StartServer()
	if err != nil {
		return nil, err
	}

	if opts.openBrowser {
		if err := monitor.OpenInBrowser(url); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(),
				"Cannot open browser: %v\n", err)
		}
	}

	return monitor, nil
}

func waitForInterrupt(cmd *cobra.Command) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	fmt.Fprintln(cmd.ErrOrStderr(),
		"Simulation finished. Press Ctrl+C to stop the monitoring server.")
	<-ctx.Done()
}
