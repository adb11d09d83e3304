package kstdio

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"pkt.systems/kstdio/klog"
)

// FromEnvOption customizes FromEnv behavior.
type FromEnvOption func(*fromEnvConfig)

type fromEnvConfig struct {
	prefix  string
	options Options
	sink    Sink
}

// WithEnvPrefix overrides the environment variable prefix used by FromEnv.
func WithEnvPrefix(prefix string) FromEnvOption {
	return func(cfg *fromEnvConfig) {
		cfg.prefix = prefix
	}
}

// WithEnvOptions seeds FromEnv with explicit Options values.
func WithEnvOptions(opts Options) FromEnvOption {
	return func(cfg *fromEnvConfig) {
		cfg.options = opts
	}
}

// WithEnvSink seeds FromEnv with the sink used when the environment
// names no output.
func WithEnvSink(sink Sink) FromEnvOption {
	return func(cfg *fromEnvConfig) {
		cfg.sink = sink
	}
}

// FromEnv builds a Console from environment variables, allowing seeded
// options and a fallback sink. Environment values override supplied
// options; missing or unparsable values leave the seeded values
// unchanged.
//
// Recognised variables are {prefix}BUFFER (ring capacity in bytes),
// {prefix}MAXWIDTH (zero-pad width limit), and {prefix}OUTPUT. OUTPUT
// accepts stdout, stderr, discard, serial:<device>:<baud>, or a file
// path opened for append. The default prefix is "KSTDIO_" and the
// default output is stdout. An output that cannot be opened returns an
// error rather than a silently misdirected console.
func FromEnv(opts ...FromEnvOption) (*Console, error) {
	cfg := fromEnvConfig{prefix: "KSTDIO_"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	resolved := cfg.options
	if value, ok := lookupEnv(cfg.prefix, "BUFFER"); ok {
		if parsed, ok := parseEnvInt(value, 2); ok {
			resolved.BufferSize = parsed
		}
	}
	if value, ok := lookupEnv(cfg.prefix, "MAXWIDTH"); ok {
		if parsed, ok := parseEnvInt(value, 1); ok {
			resolved.MaxWidth = parsed
		}
	}
	sink := cfg.sink
	if value, ok := lookupEnv(cfg.prefix, "OUTPUT"); ok {
		resolvedSink, err := sinkFromEnvOutput(value, sink)
		if err != nil {
			return nil, err
		}
		sink = resolvedSink
	}
	if sink == nil {
		sink = klog.Auto(os.Stdout)
	}
	return NewWithOptions(sink, resolved), nil
}

func lookupEnv(prefix, key string) (string, bool) {
	if prefix == "" {
		return os.LookupEnv(key)
	}
	return os.LookupEnv(prefix + key)
}

func parseEnvInt(value string, floor int) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed < floor {
		return 0, false
	}
	return parsed, true
}

func sinkFromEnvOutput(value string, fallback Sink) (Sink, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback, nil
	}
	switch strings.ToLower(trimmed) {
	case "stdout":
		return klog.Auto(os.Stdout), nil
	case "stderr":
		// stderr stays unbuffered, as stdio has it
		return klog.NewWriter(os.Stderr), nil
	case "discard":
		return klog.Discard(), nil
	}
	const serialPrefix = "serial:"
	if len(trimmed) > len(serialPrefix) && strings.EqualFold(trimmed[:len(serialPrefix)], serialPrefix) {
		return serialSinkFromEnv(trimmed[len(serialPrefix):])
	}
	file, err := os.OpenFile(trimmed, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log output %q: %w", trimmed, err)
	}
	return klog.NewWriter(file), nil
}

func serialSinkFromEnv(spec string) (Sink, error) {
	i := strings.LastIndex(spec, ":")
	if i < 0 {
		return nil, fmt.Errorf("serial output %q missing baud rate", spec)
	}
	baud, err := strconv.Atoi(strings.TrimSpace(spec[i+1:]))
	if err != nil {
		return nil, fmt.Errorf("serial output %q: bad baud rate: %w", spec, err)
	}
	s, err := klog.NewSerial(strings.TrimSpace(spec[:i]), baud)
	if err != nil {
		return nil, err
	}
	return s, nil
}
