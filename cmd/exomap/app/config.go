package app

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds the application configuration loaded from config files,
// environment variables, and .env files. Cobra flags override these values
// after binding.
type Config struct {
	// Global flags
	Verbose bool
	Quiet   bool
	NoColor bool
	Output  string

	// Config file actually used, if any
	ConfigFile string

	// Pipeline configuration
	DataDir          string
	NarrativePath    string
	DownloadDate     string
	KeepIntermediate bool

	// Logging configuration
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra)
// 2. Environment variables (EXOMAP_*)
// 3. .env files
// 4. Config file (~/.exomap.yaml)
// 5. Defaults
func LoadConfig() (*Config, error) {
	loadEnvFiles()

	viper.SetEnvPrefix("EXOMAP")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	viper.SetDefault("data_dir", "data")

	configFile := viper.GetString("config")
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
			viper.AddConfigPath(".")
			viper.SetConfigType("yaml")
			viper.SetConfigName(".exomap")
		}
	}

	// Config file is optional
	_ = viper.ReadInConfig()

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),
		Output:  viper.GetString("output"),

		ConfigFile: viper.ConfigFileUsed(),

		DataDir:          viper.GetString("data_dir"),
		NarrativePath:    viper.GetString("narrative_path"),
		DownloadDate:     viper.GetString("download_date"),
		KeepIntermediate: viper.GetBool("keep_intermediate"),

		LogLevel:  viper.GetString("log_level"),
		LogFormat: viper.GetString("log_format"),
	}

	return config, nil
}

// loadEnvFiles loads .env files from the working directory and home.
func loadEnvFiles() {
	_ = godotenv.Load()

	if home, err := os.UserHomeDir(); err == nil {
		_ = godotenv.Load(filepath.Join(home, ".exomap.env"))
	}
}
