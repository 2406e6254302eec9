package commands

import (
	"context"
	"os"
	"os/signal"

	"chromaspiral/app"
	"chromaspiral/hal"
	"chromaspiral/internal/config"
	"chromaspiral/internal/printer"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type runOptions struct {
	configPath string
	headless   bool
	hz         int
	ticks      uint64
	width      int
	height     int
	strict     bool
	workers    int
	noHUD      bool
	resizable  bool
}

func newRunCmd() *cobra.Command {
	opts := &runOptions{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the spiral window (or run headless)",
		Long: `Open a window showing the rotating chromatic spiral.

With --headless no window is opened; the scene is ticked and rendered off
screen at --hz until --ticks frames have run or the process is interrupted.

Examples:
  # 1000x900 window
  chromaspiral run

  # Viewport follows the window size
  chromaspiral run --width 0 --height 0 --resizable

  # 200 headless frames
  chromaspiral run --headless --ticks 200`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd)
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.configPath, "config", "c", "", "Path to a spiral.yml config file")
	f.BoolVar(&opts.headless, "headless", false, "Run without a window")
	f.IntVar(&opts.hz, "hz", 60, "Tick rate in headless mode")
	f.Uint64Var(&opts.ticks, "ticks", 0, "Stop after N ticks in headless mode (0 = run until interrupted)")
	f.IntVar(&opts.width, "width", app.DefaultWidth, "Viewport width (0 = follow window)")
	f.IntVar(&opts.height, "height", app.DefaultHeight, "Viewport height (0 = follow window)")
	f.BoolVar(&opts.strict, "strict-colors", true, "Fail on notes missing from the palette instead of drawing them grey")
	f.IntVar(&opts.workers, "workers", 0, "Raster workers (0 = one per CPU)")
	f.BoolVar(&opts.noHUD, "no-hud", false, "Hide the caption")
	f.BoolVar(&opts.resizable, "resizable", false, "Allow resizing the window")
	return cmd
}

// apply copies explicitly set flags over cfg.
func (o *runOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("hz") {
		cfg.Headless.Hz = o.hz
	}
	if f.Changed("ticks") {
		cfg.Headless.Ticks = o.ticks
	}
	if f.Changed("width") {
		cfg.Viewport.Width = o.width
	}
	if f.Changed("height") {
		cfg.Viewport.Height = o.height
	}
	if f.Changed("strict-colors") {
		cfg.Colors.Strict = o.strict
	}
	if f.Changed("workers") {
		cfg.Render.Workers = o.workers
	}
	if f.Changed("no-hud") {
		cfg.Render.HUD = !o.noHUD
	}
	if f.Changed("resizable") {
		cfg.Window.Resizable = o.resizable
	}
}

func (o *runOptions) run(cmd *cobra.Command) error {
	cfg, err := loadConfig(o.configPath)
	if err != nil {
		return printer.Error("Could not load config", err.Error(), []string{"check the path passed to --config"})
	}
	o.apply(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return printer.Error("Invalid settings", err.Error(), nil)
	}
	appCfg, err := cfg.App()
	if err != nil {
		return printer.Error("Invalid settings", err.Error(), nil)
	}
	if !appCfg.Colors.Strict() {
		printer.Warning("lenient palette: unknown notes are drawn grey\n")
	}
	win, headless := cfg.HAL()

	if !o.headless {
		printer.Info("opening %dx%d window\n", win.Width, win.Height)
		if err := hal.RunWindow(app.Factory(appCfg), win); err != nil {
			return printer.Error("Window closed with an error", err.Error(), []string{"run with --headless on machines without a display"})
		}
		return nil
	}

	printer.Info("running headless at %d Hz\n", headless.Hz)
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()
	err = hal.RunHeadless(ctx, app.Factory(appCfg), headless)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	if err != nil {
		return printer.Error("Headless run failed", err.Error(), nil)
	}
	printer.Success("ran %d ticks\n", headless.Ticks)
	return nil
}
