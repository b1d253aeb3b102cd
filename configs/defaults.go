package configs

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets default configuration values for all components
func setDefaults(v *viper.Viper) {
	// Analysis defaults
	if !v.IsSet("analysis.buffer_size") {
		v.Set("analysis.buffer_size", 2048)
	}
	if !v.IsSet("analysis.sample_rate") {
		v.Set("analysis.sample_rate", 44100)
	}
	if !v.IsSet("analysis.debounce") {
		// one display frame at 60 Hz
		v.Set("analysis.debounce", 16*time.Millisecond)
	}
	if !v.IsSet("analysis.floor_db") {
		v.Set("analysis.floor_db", -96.0)
	}
	if !v.IsSet("analysis.noise_seed") {
		v.Set("analysis.noise_seed", 1)
	}

	// Render defaults
	if !v.IsSet("render.bars") {
		v.Set("render.bars", 64)
	}
	if !v.IsSet("render.height") {
		v.Set("render.height", 16)
	}
	if !v.IsSet("render.labels") {
		v.Set("render.labels", true)
	}

	// Application defaults
	if !v.IsSet("verbose") {
		v.Set("verbose", false)
	}
	if !v.IsSet("log_level") {
		v.Set("log_level", "info")
	}
}
