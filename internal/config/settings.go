package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Settings struct {
	LogLevel string
	Seed     int64
}

// LoadSettings reads VECDEMO_* variables, first loading envPath into the
// environment when it is set. Variables already present win over the file.
func LoadSettings(envPath string) (*Settings, error) {
	if envPath != "" {
		if err := godotenv.Load(envPath); err != nil {
			return nil, fmt.Errorf("load env %s: %w", envPath, err)
		}
	}
	s := Settings{
		LogLevel: getEnv("VECDEMO_LOG_LEVEL", "info"),
	}
	if raw := getEnv("VECDEMO_SEED", ""); raw != "" {
		seed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("VECDEMO_SEED: %w", err)
		}
		s.Seed = seed
	}
	return &s, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
