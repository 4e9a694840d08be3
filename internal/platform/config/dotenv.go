package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"

	"slotfinder/internal/platform/logger"
)

// LoadDotenv merges .env style files into the process environment
// variables already set win over file values; missing files are skipped
func LoadDotenv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
		logger.Get().Debug().Str("file", p).Msg("loaded env file")
	}
	return nil
}
