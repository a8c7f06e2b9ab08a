package config

import "flag"

var (
	flagConfig  = flag.String("config", "", "Path to config file")
	flagDebug   = flag.Bool("debug", false, "Enable debug logging")
	flagSheet   = flag.String("sheet", "", "Path to the source texture sheet")
	flagNoCache = flag.Bool("nocache", false, "Disable the packed atlas cache")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagSheet != "" {
		cfg.Data.SheetPath = *flagSheet
	}
	if *flagNoCache {
		cfg.Data.UseCache = false
	}
}
