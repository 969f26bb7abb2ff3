package config

import "os"

// Config holds the handful of settings the tracker reads from the
// environment. godotenv.Load is the caller's job; by the time Load runs,
// any .env values are already in the process environment.
type Config struct {
	// DatabasePath is where the SQLite file lives. The file is created on
	// first open if it does not exist.
	DatabasePath string

	// DatabaseName is the logical name attached to telemetry attributes.
	DatabaseName string

	// Telemetry selects the telemetry exporter. Only "stdout" is
	// recognised; anything else leaves the no-op providers in place so an
	// interactive session stays quiet.
	Telemetry string

	// SkipSeed disables the sample-data insert on an empty database.
	SkipSeed bool
}

func Load() Config {
	return Config{
		DatabasePath: getenv("TRACKER_DB_PATH", "Customers.db"),
		DatabaseName: getenv("TRACKER_DB_NAME", "customers"),
		Telemetry:    os.Getenv("TRACKER_TELEMETRY"),
		SkipSeed:     os.Getenv("TRACKER_SKIP_SEED") == "1" || os.Getenv("TRACKER_SKIP_SEED") == "true",
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
