package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds CLI configuration.
type Config struct {
	DBPath        string
	YelpAPIKey    string
	SearchEnabled bool
}

// ParseFlags parses command-line flags and returns configuration.
func ParseFlags(version string) (*Config, error) {
	config := &Config{}

	// .env files fill in env vars before flag defaults are read.
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load(".env")

	showVersion := flag.Bool("version", false, "Print version and exit")
	flag.StringVar(&config.DBPath, "db", "", "Path to SQLite database file (default: ~/.cortado/cortado.db)")
	flag.StringVar(&config.YelpAPIKey, "yelp-key", "", "Yelp Fusion API key (or set YELP_API_KEY env var)")
	flag.Parse()

	if *showVersion {
		fmt.Println("cortado " + version)
		os.Exit(0)
	}

	if config.YelpAPIKey == "" {
		config.YelpAPIKey = os.Getenv("YELP_API_KEY")
	}

	var configDir string
	if config.DBPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}

		configDir = filepath.Join(home, ".cortado")
		if err := os.MkdirAll(configDir, 0700); err != nil {
			return nil, fmt.Errorf("failed to create config directory: %w", err)
		}

		config.DBPath = filepath.Join(configDir, "cortado.db")
	} else {
		configDir = filepath.Dir(config.DBPath)
	}

	settings, err := loadOnboardingSettings(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load onboarding settings: %w", err)
	}

	if shouldRunOnboarding(settings) {
		settings, err = runOnboarding(configDir, config.YelpAPIKey)
		if err != nil {
			return nil, fmt.Errorf("failed to run onboarding: %w", err)
		}
	}

	config.SearchEnabled = settings.SearchEnabled
	if config.YelpAPIKey == "" && settings.SearchEnabled {
		secureKey, err := loadSecureAPIKey(configDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load stored API key: %w", err)
		}
		config.YelpAPIKey = strings.TrimSpace(secureKey)
	}
	if config.YelpAPIKey != "" {
		config.SearchEnabled = true
	}

	return config, nil
}
