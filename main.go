// relativity-visualizer is an interactive terminal visualizer for special
// relativity: a Minkowski spacetime diagram with switchable reference
// frames, plus companion panels for time dilation, length contraction,
// velocity addition, the twin paradox, and the relativistic Doppler
// effect.
//
// Usage:
//
//	relativity-visualizer [flags]
//
// Flags:
//
//	-tui               Launch the interactive dashboard (the default)
//	-render            Render the spacetime diagram once to stdout and exit
//	-scenario string   Load a preset by name or YAML file path
//	-velocity string   Initial velocity as a fraction of c (overrides config)
//	-frame string      Initial active frame: stationary|moving
//	-config string     Path to configuration file (default: XDG search)
//	-theme string      Color theme name (overrides config)
//	-term-width int    Diagram width in cells for -render (0 = auto-detect)
//	-term-height int   Diagram height in cells for -render (0 = auto-detect)
//	-verbose           Enable verbose logging
//	-version           Print version and exit
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jajohns1/relativity-visualizer/pkg/app"
	"github.com/jajohns1/relativity-visualizer/pkg/canvas"
	"github.com/jajohns1/relativity-visualizer/pkg/components"
	"github.com/jajohns1/relativity-visualizer/pkg/config"
	"github.com/jajohns1/relativity-visualizer/pkg/diagram"
	"github.com/jajohns1/relativity-visualizer/pkg/frame"
	"github.com/jajohns1/relativity-visualizer/pkg/relativity"
	"github.com/jajohns1/relativity-visualizer/pkg/scenario"
	"github.com/jajohns1/relativity-visualizer/pkg/terminal"
	"github.com/jajohns1/relativity-visualizer/pkg/theme"
	"github.com/jajohns1/relativity-visualizer/pkg/widgets"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath   = flag.String("config", "", "Path to configuration file")
		runTUIFlag   = flag.Bool("tui", false, "Launch the interactive dashboard (the default)")
		renderOnce   = flag.Bool("render", false, "Render the diagram once to stdout and exit")
		scenarioName = flag.String("scenario", "", "Preset name or YAML file path")
		themeName    = flag.String("theme", "", "Color theme name")
		velocityFlag = flag.String("velocity", "", "Initial velocity as a fraction of c")
		frameFlag    = flag.String("frame", "", "Initial active frame: stationary|moving")
		renderWidth  = flag.Int("term-width", 0, "Diagram width in cells for -render (0 = auto-detect)")
		renderHeight = flag.Int("term-height", 0, "Diagram height in cells for -render (0 = auto-detect)")
		verbose      = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion  = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()
	_ = runTUIFlag // the TUI is the default; the flag only documents it

	if *showVersion {
		fmt.Printf("relativity-visualizer %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Extra themes are optional; a missing directory is not an error.
	if cfg.General.ThemeDir != "" {
		if err := theme.LoadDir(cfg.General.ThemeDir); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "failed to load themes: %v\n", err)
			os.Exit(1)
		}
	}
	if *themeName != "" {
		cfg.Display.Theme = *themeName
	}
	theme.SetCurrent(cfg.Display.Theme)

	logger, closeLog, err := setupLogging(cfg, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()
	slog.SetDefault(logger)

	model, units, err := buildInitialState(cfg, *scenarioName, *velocityFlag, *frameFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	if *renderOnce {
		fmt.Println(renderDiagram(model, units, cfg.Display.HalfExtent, *renderWidth, *renderHeight))
		return
	}

	runTUI(cfg, model, units, logger)
}

// loadConfig reads an explicit path or falls back to the XDG search.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFromFile(path)
	}
	return config.Load()
}

// setupLogging writes structured logs to both stderr and the configured
// log file, matching the level from config unless -verbose raises it.
func setupLogging(cfg *config.Config, verbose bool) (*slog.Logger, func(), error) {
	level := parseLogLevel(cfg.General.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}

	w := io.Writer(os.Stderr)
	closeLog := func() {}
	if cfg.General.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.General.LogFile), 0o755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, err
		}
		w = io.MultiWriter(os.Stderr, f)
		closeLog = func() { f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	return logger, closeLog, nil
}

func parseLogLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// buildInitialState assembles the shared frame model from config, an
// optional scenario, and the -velocity/-frame overrides, in that order.
func buildInitialState(cfg *config.Config, scenarioName, velocity, frameName string) (*frame.Model, components.UnitMode, error) {
	m := frame.New()
	m.SetVelocity(cfg.Simulation.Velocity)
	f, _ := frame.ParseFrame(cfg.Simulation.Frame)
	m.SetActiveFrame(f)

	units := components.Natural
	if cfg.Display.Units == "si" {
		units = components.SI
	}

	if scenarioName == "" {
		scenarioName = cfg.Simulation.Scenario
	}
	if scenarioName != "" {
		s, err := scenario.Resolve(scenarioName)
		if err != nil {
			return nil, units, err
		}
		s.Apply(m)
		if s.Units == "si" {
			units = components.SI
		}
		slog.Debug("scenario loaded", "name", s.Name, "velocity", s.Velocity, "events", len(s.Events))
	}

	if velocity != "" {
		m.SetVelocity(app.ParseVelocity(velocity, config.MaxVelocity))
	}
	if frameName != "" {
		f, err := frame.ParseFrame(frameName)
		if err != nil {
			return nil, units, err
		}
		m.SetActiveFrame(f)
	}
	return m, units, nil
}

// renderDiagram produces a single colored (or plain, when stdout is not a
// capable terminal) frame of the spacetime diagram.
func renderDiagram(m *frame.Model, units components.UnitMode, halfExtent float64, cellW, cellH int) string {
	if cellW <= 0 || cellH <= 0 {
		size := terminal.DetectSize()
		if cellW <= 0 {
			cellW = size.Cols
		}
		if cellH <= 0 {
			cellH = size.Rows - 3 // leave room for the header and prompt
		}
	}
	if cellW < 11 {
		cellW = 11
	}
	if cellH < 7 {
		cellH = 7
	}

	pal := widgets.PaletteFromTheme(theme.Current)
	if !terminal.SupportsColor(os.Stdout) {
		// A zero palette makes the canvas emit bare glyphs.
		pal = diagram.Palette{}
	}

	cv := canvas.New(cellW, cellH)
	vp := canvas.NewViewport(cellW, cellH, halfExtent)
	sc := diagram.Compose(diagram.Snap(m), halfExtent)
	diagram.Rasterize(sc, vp, cv, pal)

	v := m.Velocity()
	header := fmt.Sprintf("v = %s   γ = %s   frame = %s",
		components.FormatVelocity(v, units),
		components.FormatGamma(relativity.LorentzFactor(v), units),
		m.ActiveFrame())
	return header + "\n" + cv.Render()
}

// runTUI wires the widgets to the controller and hands the terminal to
// bubbletea.
func runTUI(cfg *config.Config, model *frame.Model, units components.UnitMode, logger *slog.Logger) {
	zm := zone.New()
	defer zm.Close()

	appCfg := app.Config{
		VelocityStep: cfg.Simulation.VelocityStep,
		MaxVelocity:  config.MaxVelocity,
		TickInterval: cfg.Simulation.TickInterval.Duration,
		Units:        units,
	}
	root := app.NewAppModel(appCfg, model, zm,
		widgets.NewDiagram(model, zm, cfg.Display.HalfExtent),
		widgets.NewTimeDilation(),
		widgets.NewLengthContraction(),
		widgets.NewVelocityAddition(),
		widgets.NewTwinParadox(),
		widgets.NewDoppler(),
	)

	logger.Info("starting visualizer",
		"theme", cfg.Display.Theme,
		"units", units.String(),
		"velocity", model.Velocity(),
	)

	p := tea.NewProgram(root, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		os.Exit(1)
	}
}
