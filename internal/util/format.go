package util

import (
	"fmt"
	"reflect"
	"strings"
	"time"

	"OnionShare-NG/internal/errors"
)

// FormatSeconds converts a duration given in seconds to a compact
// largest-unit-first string using d/h/m/s from a 24h/60m/60s breakdown.
// Zero segments are suppressed and there are no separators:
//
//	0      -> "0s"
//	60     -> "1m"
//	947.35 -> "15m47s"
//	129674 -> "1d12h1m14s"
//
// Fractional seconds are truncated, not rounded. The input may be any Go
// numeric type or a time.Duration; anything else is a TypeError, never a
// coercion.
func FormatSeconds(seconds any) (string, error) {
	f, err := secondsValue(seconds)
	if err != nil {
		return "", err
	}

	total := int64(f) // truncate fractional seconds
	if total <= 0 {
		return "0s", nil
	}

	days := total / 86400
	hours := (total % 86400) / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	var b strings.Builder
	if days > 0 {
		fmt.Fprintf(&b, "%dd", days)
	}
	if hours > 0 {
		fmt.Fprintf(&b, "%dh", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dm", minutes)
	}
	if secs > 0 {
		fmt.Fprintf(&b, "%ds", secs)
	}
	return b.String(), nil
}

// secondsValue extracts a float64 second count from any numeric value.
func secondsValue(v any) (float64, error) {
	// time.Duration would otherwise be read as a raw nanosecond count
	if d, ok := v.(time.Duration); ok {
		return d.Seconds(), nil
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), nil
	case reflect.Float32, reflect.Float64:
		return rv.Float(), nil
	}
	return 0, errors.NewTypeError("format seconds", fmt.Sprintf("%T", v), "a numeric value")
}

// EstimatedTimeRemaining projects how long an ongoing transfer will take to
// finish, formatted with FormatSeconds. The rate is bytesSoFar over elapsed;
// the remainder of totalBytes is divided by that rate.
//
// Zero elapsed time or zero progress make no mathematical sense for a rate,
// so both fail with ErrDivideByZero instead of returning a sentinel value;
// callers must not ask for an estimate before any bytes have moved.
func EstimatedTimeRemaining(bytesSoFar, totalBytes int64, elapsed time.Duration) (string, error) {
	if elapsed <= 0 {
		return "", fmt.Errorf("estimated time remaining: no time elapsed: %w", errors.ErrDivideByZero)
	}
	rate := float64(bytesSoFar) / elapsed.Seconds()
	if rate == 0 {
		return "", fmt.Errorf("estimated time remaining: no bytes transferred: %w", errors.ErrDivideByZero)
	}
	remaining := float64(totalBytes - bytesSoFar)
	return FormatSeconds(remaining / rate)
}

// HumanReadableFilesize converts a byte count to the largest binary unit
// (B, KiB, ... YiB) whose scaled value is at least 1, with exactly one
// fractional digit: 1 -> "1.0 B", 1024^3 -> "1.0 GiB". The input is a
// float64 because YiB-scale values exceed uint64.
func HumanReadableFilesize(size float64) string {
	const thresh = 1024.0
	if size < thresh {
		return fmt.Sprintf("%.1f B", size)
	}
	units := []string{"KiB", "MiB", "GiB", "TiB", "PiB", "EiB", "ZiB", "YiB"}
	size /= thresh
	u := 0
	for size >= thresh && u < len(units)-1 {
		size /= thresh
		u++
	}
	return fmt.Sprintf("%.1f %s", size, units[u])
}
