package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trentonstrong/spectrograph/configs"
	"github.com/trentonstrong/spectrograph/pkg/dsp/spectrum"
)

var (
	bdBufferSize int
	bdSampleRate int
	bdEvery      int
)

var bandsCmd = &cobra.Command{
	Use:   "bands",
	Short: "Print the band index to center frequency mapping",
	Long: `Print the frequency band layout for the configured buffer size and
sample rate: per-band bandwidth and each band's center frequency. The same
mapping drives the chart axis labels in analyze.`,
	RunE: runBands,
}

func init() {
	rootCmd.AddCommand(bandsCmd)

	bandsCmd.Flags().IntVar(&bdBufferSize, "buffer-size", 0,
		"analysis buffer size in samples (overrides config)")
	bandsCmd.Flags().IntVar(&bdSampleRate, "sample-rate", 0,
		"sample rate in Hz (overrides config)")
	bandsCmd.Flags().IntVar(&bdEvery, "every", 1,
		"print every Nth band")
}

func runBands(cmd *cobra.Command, args []string) error {
	config, err := configs.LoadConfig(viper.GetViper())
	if err != nil {
		return err
	}
	if bdBufferSize > 0 {
		config.Analysis.BufferSize = bdBufferSize
	}
	if bdSampleRate > 0 {
		config.Analysis.SampleRate = bdSampleRate
	}

	cfg := config.AnalysisSettings()
	if err := cfg.Validate(); err != nil {
		return err
	}
	if bdEvery < 1 {
		return fmt.Errorf("--every must be at least 1")
	}

	bands := spectrum.NewBands(cfg)
	fmt.Fprintf(os.Stdout, "buffer_size=%d sample_rate=%d bands=%d bandwidth=%.4fHz nyquist=%.1fHz\n",
		cfg.BufferSize, cfg.SampleRate, bands.Count(), bands.Bandwidth(), cfg.Nyquist())

	for i := 0; i < bands.Count(); i += bdEvery {
		freq, err := bands.Frequency(i)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "%6d  %12.4f\n", i, freq)
	}
	return nil
}
