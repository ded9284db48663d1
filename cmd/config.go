package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPPort     = "8080"
	defaultAMQPExchange = "pancakelab.events"
)

type Config struct {
	HTTPPort           string
	LogLevel           slog.Level
	KitchenSchedule    string
	DeliverySchedule   string
	EventRelaySchedule string
	AMQPURL            string
	AMQPExchange       string
}

// LoadConfig reads the process environment, loading envFile first when it exists.
// Variables already present in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	level, err := parseLogLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		HTTPPort:           getEnv("HTTP_PORT", defaultHTTPPort),
		LogLevel:           level,
		KitchenSchedule:    os.Getenv("KITCHEN_SCHEDULE"),
		DeliverySchedule:   os.Getenv("DELIVERY_SCHEDULE"),
		EventRelaySchedule: os.Getenv("EVENT_RELAY_SCHEDULE"),
		AMQPURL:            os.Getenv("AMQP_URL"),
		AMQPExchange:       getEnv("AMQP_EXCHANGE", defaultAMQPExchange),
	}, nil
}

func getEnv(key string, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func parseLogLevel(raw string) (slog.Level, error) {
	if raw == "" {
		return slog.LevelInfo, nil
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(raw))); err != nil {
		return slog.LevelInfo, fmt.Errorf("LOG_LEVEL %q: %w", raw, err)
	}
	return level, nil
}
