package analysis

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// NamingPolicy decides the file name (without extension) for a persisted
// report, given the name of the operation that produced it.
type NamingPolicy func(operation string) string

// FixedName names every report file the same, regardless of the operation.
func FixedName(name string) NamingPolicy {
	return func(string) string { return name }
}

// Timestamped names report files "<operation>_<YYYYMMDD_HHMMSS>". The clock
// is injectable for tests; nil means time.Now.
func Timestamped(clock func() time.Time) NamingPolicy {
	if clock == nil {
		clock = time.Now
	}
	return func(operation string) string {
		return fmt.Sprintf("%s_%s", operation, clock().Format("20060102_150405"))
	}
}

// WriteReport persists a report result as an indented JSON file in dir, named
// by the policy, and returns the file path. This is an export side effect, not
// part of any report's functional contract.
func WriteReport(dir, operation string, policy NamingPolicy, result any) (string, error) {
	path := filepath.Join(dir, policy(operation)+".json")
	data, err := json.MarshalIndent(result, "", "    ")
	if err != nil {
		return "", fmt.Errorf("cannot marshal %s report: %w", operation, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("cannot write %s report: %w", operation, err)
	}
	Log().Info().Str("operation", operation).Str("path", path).Msg("report written")
	return path, nil
}

// Reported runs a report producer and persists whatever it returns, even an
// empty result, so a failed report still leaves a trace file. The producer's
// result and error are passed through; a write failure is only logged.
func Reported[T any](dir, operation string, policy NamingPolicy, produce func() (T, error)) (T, error) {
	result, err := produce()
	if _, werr := WriteReport(dir, operation, policy, result); werr != nil {
		Log().Error().Err(werr).Str("operation", operation).Msg("report not persisted")
	}
	return result, err
}
