package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	flags "github.com/jessevdk/go-flags"
	"github.com/paulmach/orb/geojson"
	"github.com/rs/zerolog"

	"geodraw/internal/config"
	"geodraw/internal/editor"
	"geodraw/internal/tui"
)

const defaultConfig = "geodraw.yaml"

type options struct {
	Config  string `short:"c" long:"config" description:"Path to YAML config" default:"geodraw.yaml"`
	Mode    string `short:"m" long:"mode" description:"Initial editing mode" choice:"read-only" choice:"select" choice:"edit-vertex" choice:"draw-point" choice:"draw-path" choice:"draw-polygon"`
	LogFile string `long:"log-file" description:"Debug log destination (the TUI owns the terminal)"`
	Out     string `short:"o" long:"out" description:"Export destination for the working set" default:"out.geojson"`
	Debug   bool   `long:"debug" description:"Verbose logging"`

	Args struct {
		Path string `positional-arg-name:"geojson" description:"GeoJSON file to load at startup"`
	} `positional-args:"yes"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}

	logger, closeLog, err := newLogger(opts, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "log:", err)
		os.Exit(1)
	}
	defer closeLog()

	mode := editor.ModeSelectFeature
	if s := firstNonEmpty(opts.Mode, cfg.Mode); s != "" {
		mode, err = editor.ParseMode(s)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	features, err := loadFeatures(opts, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "features:", err)
		os.Exit(1)
	}

	m := tui.New(tui.Options{
		Mode:     mode,
		Features: features,
		OutPath:  opts.Out,
		Logger:   logger,
	})
	logger.Info().Stringer("mode", mode).Msg("starting")
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig tolerates a missing file only for the default path.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		if path == defaultConfig && errors.Is(err, fs.ErrNotExist) {
			return &config.Config{}, nil
		}
		return nil, err
	}
	return cfg, nil
}

func newLogger(opts options, cfg *config.Config) (zerolog.Logger, func(), error) {
	path := firstNonEmpty(opts.LogFile, cfg.LogFile)
	if path == "" {
		return zerolog.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return zerolog.Logger{}, nil, err
	}
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(f).Level(level).With().Timestamp().Logger()
	return logger, func() { f.Close() }, nil
}

// loadFeatures resolves the startup working set: positional file first,
// then config (inline or referenced).
func loadFeatures(opts options, cfg *config.Config) (*geojson.FeatureCollection, error) {
	if opts.Args.Path != "" {
		data, err := os.ReadFile(opts.Args.Path)
		if err != nil {
			return nil, err
		}
		return geojson.UnmarshalFeatureCollection(data)
	}
	return cfg.FeatureCollection()
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
