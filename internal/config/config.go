// Package config reads the flat key/value configuration files used by the
// comparison tool. The format is one `key: value` pair per line, with `#`
// starting a comment and blank lines ignored. Values are coerced to int or
// float when they parse as one, otherwise kept as strings.
package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// File holds the parsed contents of one configuration file. Values are
// int, float64, or string.
type File map[string]any

// ParseFile reads and parses the configuration file at path.
func ParseFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse parses configuration text from r.
func Parse(r io.Reader) (File, error) {
	out := File{}
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		out[key] = coerce(value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return out, nil
}

// coerce converts a raw value to int or float64 when possible.
func coerce(value string) any {
	if strings.Contains(value, ".") {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	} else if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	return value
}

// Float returns the value for key as a float64, accepting stored ints, or
// def when the key is missing or not numeric.
func (f File) Float(key string, def float64) float64 {
	switch v := f[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	default:
		return def
	}
}

// Int returns the value for key as an int, or def when the key is missing
// or not an int.
func (f File) Int(key string, def int) int {
	if v, ok := f[key].(int); ok {
		return v
	}
	return def
}

// String returns the value for key as a string, or def when the key is
// missing or holds a numeric value.
func (f File) String(key string, def string) string {
	if v, ok := f[key].(string); ok {
		return v
	}
	return def
}
