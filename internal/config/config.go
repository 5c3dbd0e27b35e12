// Package config resolves the shared runtime settings: where data files
// live, where figures are written, and the output resolution. Flags win
// over BENTENPLOT_* environment variables, which win over an optional
// bentenplot.yaml in the working directory.
package config

import "github.com/spf13/viper"

// Config holds the settings every figure command shares.
type Config struct {
	DataDir string
	FigDir  string
	DPI     int
	Verbose bool
}

// Load resolves the configuration from defaults, the optional config
// file, and the environment.
func Load() *Config {
	v := viper.New()

	v.SetDefault("data_dir", "./data")
	v.SetDefault("fig_dir", "./figures")
	v.SetDefault("dpi", 300)
	v.SetDefault("verbose", false)

	v.SetConfigName("bentenplot")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// The config file is optional.
	_ = v.ReadInConfig()

	v.SetEnvPrefix("BENTENPLOT")
	v.AutomaticEnv()

	return &Config{
		DataDir: v.GetString("data_dir"),
		FigDir:  v.GetString("fig_dir"),
		DPI:     v.GetInt("dpi"),
		Verbose: v.GetBool("verbose"),
	}
}
