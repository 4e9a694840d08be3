// Package config reads settings from the process environment
//
// a Conf is a prefix scoped view, e.g. config.New().Prefix("SLOTS_") reads SLOTS_MAX_BOOKINGS.
// Blank values mean unset. Values that do not parse are logged and replaced by the default
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"slotfinder/internal/platform/logger"
)

// Conf is a prefix scoped view over environment variables
type Conf struct{ prefix string }

// New returns the unprefixed view
func New() Conf { return Conf{} }

// Prefix nests p under the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// lookup returns the trimmed value and whether it is set
func (c Conf) lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(c.prefix + key))
	return v, v != ""
}

// parsed reads key through parse, falling back to def when blank or malformed
func parsed[T any](c Conf, key string, def T, parse func(string) (T, error)) T {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	v, err := parse(s)
	if err != nil {
		logger.Get().Warn().
			Str("key", c.prefix+key).
			Str("value", s).
			Interface("default", def).
			Msg("unparsable setting, using default")
		return def
	}
	return v
}

// MayString returns the value or def
func (c Conf) MayString(key, def string) string {
	if s, ok := c.lookup(key); ok {
		return s
	}
	return def
}

// MayInt returns the value as an int or def
func (c Conf) MayInt(key string, def int) int { return parsed(c, key, def, strconv.Atoi) }

// MayBool accepts the strconv.ParseBool spellings
func (c Conf) MayBool(key string, def bool) bool { return parsed(c, key, def, strconv.ParseBool) }

// MayDuration accepts time.ParseDuration input such as 500ms or 30s
func (c Conf) MayDuration(key string, def time.Duration) time.Duration {
	return parsed(c, key, def, time.ParseDuration)
}

// MayCSV splits a comma separated value, dropping blank entries
func (c Conf) MayCSV(key string, def []string) []string {
	s, ok := c.lookup(key)
	if !ok {
		return def
	}
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
