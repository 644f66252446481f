package config

import (
	"errors"
	"net/url"
	"os"
	"time"

	sharedcfg "github.com/couchcryptid/storm-data-shared/config"
)

// Default feed locations.
const (
	DefaultEarthquakeFeedURL = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_day.geojson"
	DefaultPlatesFeedURL     = "https://raw.githubusercontent.com/fraxen/tectonicplates/master/GeoJSON/PB2002_boundaries.json"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	// Feed acquisition.
	EarthquakeFeedURL string
	PlatesFeedURL     string
	FeedTimeout       time.Duration

	// Map composition.
	MapContainer string
	MapboxToken  string

	// Marker export.
	KafkaEnabled bool
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from environment variables, applying defaults where unset.
func Load() (*Config, error) {
	shutdownTimeout, err := sharedcfg.ParseShutdownTimeout()
	if err != nil {
		return nil, err
	}

	feedTimeoutStr := sharedcfg.EnvOrDefault("FEED_TIMEOUT", "15s")
	feedTimeout, err2 := time.ParseDuration(feedTimeoutStr)
	if err2 != nil || feedTimeout <= 0 {
		return nil, errors.New("invalid FEED_TIMEOUT")
	}

	cfg := &Config{
		HTTPAddr:        sharedcfg.EnvOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        sharedcfg.EnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:       sharedcfg.EnvOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,

		EarthquakeFeedURL: sharedcfg.EnvOrDefault("EARTHQUAKE_FEED_URL", DefaultEarthquakeFeedURL),
		PlatesFeedURL:     sharedcfg.EnvOrDefault("PLATES_FEED_URL", DefaultPlatesFeedURL),
		FeedTimeout:       feedTimeout,

		MapContainer: sharedcfg.EnvOrDefault("MAP_CONTAINER", "map"),
		MapboxToken:  os.Getenv("MAPBOX_TOKEN"),

		KafkaEnabled: os.Getenv("KAFKA_ENABLED") == "true",
		KafkaBrokers: sharedcfg.ParseBrokers(sharedcfg.EnvOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaTopic:   sharedcfg.EnvOrDefault("KAFKA_TOPIC", "earthquake-markers"),
	}

	if !validFeedURL(cfg.EarthquakeFeedURL) {
		return nil, errors.New("EARTHQUAKE_FEED_URL must be an absolute http(s) URL")
	}
	if !validFeedURL(cfg.PlatesFeedURL) {
		return nil, errors.New("PLATES_FEED_URL must be an absolute http(s) URL")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
	}
	if cfg.KafkaEnabled && cfg.KafkaTopic == "" {
		return nil, errors.New("KAFKA_TOPIC is required when KAFKA_ENABLED is true")
	}

	return cfg, nil
}

func validFeedURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
