package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"stepslider/internal/config"
	"stepslider/internal/eventbus"
	"stepslider/internal/ui"
)

type rootOptions struct {
	configPath string
	logFile    string
	steps      []float64
	lower      int
	upper      int
}

func newRootCmd() *cobra.Command {
	return buildRootCmd(&rootOptions{})
}

func buildRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stepslider",
		Short: "Pick a range of discrete steps with a two handle slider",
		Long: `stepslider shows a range slider in the terminal. Drag either handle with
the mouse, then press enter to print the selected "lower upper" values.`,
		Version: version,
		Args:    cobra.NoArgs,
		// SilenceUsage is set to true to prevent printing usage message on
		// runtime errors
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPicker(cmd, opts)
		},
	}
	cmd.SetVersionTemplate(`{{printf "stepslider version %s\n" .Version}}`)

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default is ~/.config/stepslider/config.toml)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "stepslider.log", "file to write logs to")
	cmd.Flags().Float64SliceVar(&opts.steps, "steps", nil, "comma separated step values, overrides the config file")
	cmd.Flags().IntVar(&opts.lower, "lower", 0, "initial lower step index")
	cmd.Flags().IntVar(&opts.upper, "upper", 0, "initial upper step index (default is the last step)")

	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}

func runPicker(cmd *cobra.Command, opts *rootOptions) error {
	closeLog := setupLogging(opts.logFile)
	defer closeLog()

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()

	bus.Subscribe(eventbus.EventRangeChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.RangeChangedEvent); ok {
			log.Printf("Range changed by %s handle: %s..%s", event.Handle, event.Range.Lower, event.Range.Upper)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s (%v)", event.Message, event.Err)
		}
	})

	configSvc := config.NewConfigServiceWithBus(bus, opts.configPath)
	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config %s: %w", configSvc.Path(), err)
	}
	if err := applyFlags(cmd, cfg, opts); err != nil {
		return err
	}

	model, err := ui.NewModel(bus, cfg)
	if err != nil {
		return err
	}

	log.Printf("Starting slider %s", model.SliderID())
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)
	model.SetProgram(p)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("failed to run program: %w", err)
	}
	log.Printf("Program exited, accepted=%v", model.Accepted())

	if model.Accepted() {
		r := model.Range()
		fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", r.Lower, r.Upper)
	}
	return nil
}

// applyFlags overrides config values with the flags the user set
func applyFlags(cmd *cobra.Command, cfg *config.Config, opts *rootOptions) error {
	flags := cmd.Flags()
	if flags.Changed("steps") {
		cfg.Slider.Steps = append([]float64(nil), opts.steps...)
		// A new step list invalidates indices from the file
		cfg.Slider.InitialLower = 0
		cfg.Slider.InitialUpper = nil
	}
	if flags.Changed("lower") {
		cfg.Slider.InitialLower = opts.lower
	}
	if flags.Changed("upper") {
		upper := opts.upper
		cfg.Slider.InitialUpper = &upper
	}
	return cfg.Validate()
}

// setupLogging redirects the standard logger to path. Logs never reach the
// terminal while the UI runs.
func setupLogging(path string) func() {
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		// Could not open log file, discard rather than corrupt the screen
		log.SetOutput(io.Discard)
		return func() {}
	}
	log.SetOutput(logFile)
	return func() { _ = logFile.Close() }
}
