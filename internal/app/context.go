package app

import (
	"fmt"

	"github.com/trentonstrong/spectrograph/configs"
	"github.com/trentonstrong/spectrograph/internal/logging"
	"github.com/trentonstrong/spectrograph/internal/render"
	"github.com/trentonstrong/spectrograph/pkg/dsp/pipeline"
	"github.com/trentonstrong/spectrograph/pkg/dsp/signal"
	"github.com/trentonstrong/spectrograph/pkg/dsp/spectrum"
)

// Context holds the application context and configuration
type Context struct {
	// CLI arguments
	ConfigFile string
	Verbose    bool
	LogLevel   string

	// Runtime context
	Config *configs.Config
	Logger logging.Logger
}

// App wires the configured signal collection, pipeline and renderer together
type App struct {
	ctx      *Context
	config   *configs.Config
	pipeline *pipeline.Pipeline
	renderer *render.BarChart
	logger   logging.Logger
}

// NewApp creates the application from a loaded context
func NewApp(ctx *Context) (*App, error) {
	logger := setupLogging(ctx)
	ctx.Logger = logger

	config := ctx.Config
	if config == nil {
		return nil, fmt.Errorf("application context has no configuration")
	}

	cfg := config.AnalysisSettings()

	descs, err := config.Descriptors()
	if err != nil {
		return nil, fmt.Errorf("invalid configured signals: %w", err)
	}

	collection := signal.NewCollection(descs...)
	oscillator := signal.NewOscillator(signal.WithSeed(config.Analysis.NoiseSeed))
	transformer := spectrum.NewFFTTransformer(cfg, logger)

	pipe := pipeline.New(cfg, oscillator, transformer, collection,
		pipeline.WithDebounce(config.Analysis.Debounce),
		pipeline.WithFloor(config.Analysis.FloorDB),
		pipeline.WithLogger(logger),
	)

	app := &App{
		ctx:      ctx,
		config:   config,
		pipeline: pipe,
		renderer: render.NewBarChart(
			config.Render.Bars,
			config.Render.Height,
			config.Analysis.FloorDB,
			config.Render.Labels,
		),
		logger: logger.WithFields(logging.Fields{"component": "app"}),
	}

	app.pipeline.Subscribe(func(u pipeline.Update) {
		app.logger.Debug("spectrum updated", logging.Fields{
			"no_data": u.NoData,
			"bands":   len(u.Spectrum),
		})
	})

	app.logger.Debug("spectrograph application initialized", logging.Fields{
		"buffer_size": cfg.BufferSize,
		"sample_rate": cfg.SampleRate,
		"signals":     collection.Len(),
	})
	return app, nil
}

// Pipeline returns the analysis pipeline for descriptor editing.
func (a *App) Pipeline() *pipeline.Pipeline {
	return a.pipeline
}

// AddSignals appends descriptors to the collection, triggering recomputation
// per the pipeline's debounce policy.
func (a *App) AddSignals(descs ...signal.Descriptor) {
	for _, d := range descs {
		a.pipeline.Collection().Add(d)
	}
}

// RenderOnce recomputes the spectrum from the current collection and renders
// it as a terminal bar chart.
func (a *App) RenderOnce() string {
	update := a.pipeline.Recompute()
	return a.renderer.Render(update, a.pipeline.Bands())
}

// Close releases pipeline resources.
func (a *App) Close() {
	a.pipeline.Close()
}

func setupLogging(ctx *Context) logging.Logger {
	logger, err := logging.NewLogger(ctx.LogLevel, ctx.Verbose)
	if err != nil {
		return logging.NewDefaultLogger()
	}
	return logger
}
