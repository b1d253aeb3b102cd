package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/trentonstrong/spectrograph/configs"
	"github.com/trentonstrong/spectrograph/internal/app"
	"github.com/trentonstrong/spectrograph/pkg/dsp/signal"
)

var (
	azBufferSize int
	azSampleRate int
	azBars       int
	azHeight     int
	azFloorDB    float64
	azValues     bool
	azDumpConfig bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [signal-spec...]",
	Short: "Synthesize signals and render their spectrum",
	Long: `Synthesize the given signals into one composite buffer, compute the
normalized decibel spectrum, and render it as a terminal bar chart.

Signal specs are "kind[:frequency[:amplitude]]" with kinds sine, triangle,
saw, square and noise. Specs given as arguments are added to any signals
configured in the config file.

Examples:
  spectrograph analyze sine:440:1.0
  spectrograph analyze sine:440:0.8 saw:220:0.3 noise:0:0.05
  spectrograph analyze --values square:1000:1.0`,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().IntVar(&azBufferSize, "buffer-size", 0,
		"analysis buffer size in samples (overrides config)")
	analyzeCmd.Flags().IntVar(&azSampleRate, "sample-rate", 0,
		"sample rate in Hz (overrides config)")
	analyzeCmd.Flags().IntVar(&azBars, "bars", 0,
		"number of chart bars (overrides config)")
	analyzeCmd.Flags().IntVar(&azHeight, "height", 0,
		"chart height in rows (overrides config)")
	analyzeCmd.Flags().Float64Var(&azFloorDB, "floor", 0,
		"decibel floor for rendering, negative (overrides config)")
	analyzeCmd.Flags().BoolVar(&azValues, "values", false,
		"print per-band decibel values instead of the chart")
	analyzeCmd.Flags().BoolVar(&azDumpConfig, "dump-config", false,
		"print the effective configuration as YAML and exit")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	config, err := loadAnalyzeConfig()
	if err != nil {
		return err
	}

	if azDumpConfig {
		out, err := yaml.Marshal(config)
		if err != nil {
			return fmt.Errorf("failed to encode configuration: %w", err)
		}
		fmt.Fprint(os.Stdout, string(out))
		return nil
	}

	descs := make([]signal.Descriptor, 0, len(args))
	for _, spec := range args {
		desc, err := signal.ParseSpec(spec)
		if err != nil {
			return err
		}
		descs = append(descs, desc)
	}
	if len(descs) == 0 && len(config.Signals) == 0 {
		return fmt.Errorf("no signals: pass signal specs or configure a signals section")
	}

	ctx := &app.Context{
		ConfigFile: configFile,
		Verbose:    viper.GetBool("verbose"),
		LogLevel:   viper.GetString("log_level"),
		Config:     config,
	}

	application, err := app.NewApp(ctx)
	if err != nil {
		return err
	}
	defer application.Close()

	application.AddSignals(descs...)

	if azValues {
		return printValues(application)
	}

	fmt.Fprintln(os.Stdout, application.RenderOnce())
	return nil
}

func printValues(application *app.App) error {
	update := application.Pipeline().Recompute()
	if update.NoData {
		fmt.Fprintln(os.Stdout, "no data")
		return nil
	}

	bands := application.Pipeline().Bands()
	fmt.Fprintf(os.Stdout, "%-8s %-12s %s\n", "band", "freq_hz", "db")
	for i, db := range update.Spectrum {
		freq, err := bands.Frequency(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%-8d %-12.4f %.4f\n", i, freq, db)
	}
	return nil
}

// loadAnalyzeConfig loads the viper configuration and applies command-line
// overrides on top.
func loadAnalyzeConfig() (*configs.Config, error) {
	config, err := configs.LoadConfig(viper.GetViper())
	if err != nil {
		return nil, err
	}

	if azBufferSize > 0 {
		config.Analysis.BufferSize = azBufferSize
	}
	if azSampleRate > 0 {
		config.Analysis.SampleRate = azSampleRate
	}
	if azBars > 0 {
		config.Render.Bars = azBars
	}
	if azHeight > 0 {
		config.Render.Height = azHeight
	}
	if azFloorDB < 0 {
		config.Analysis.FloorDB = azFloorDB
	}

	if err := configs.ValidateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}
