package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/receipt-split/internal/app"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	File    string
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// File is the optional YAML configuration file.
type File struct {
	People []string      `yaml:"people"`
	Tick   time.Duration `yaml:"tick"`
}

const (
	envConfigFile = "RECEIPT_SPLIT_CONFIG"
	envPeople     = "RECEIPT_SPLIT_PEOPLE"
	envTick       = "RECEIPT_SPLIT_TICK"
	envWidth      = "RECEIPT_SPLIT_WIDTH"
	envHeight     = "RECEIPT_SPLIT_HEIGHT"
	envShowFooter = "RECEIPT_SPLIT_FOOTER"
	envTrace      = "RECEIPT_SPLIT_TRACE"
	envLogFile    = "RECEIPT_SPLIT_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
// Precedence is flag, then environment, then config file, then default.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("receipt-split", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	configFile := fs.String("config", envOrDefault(env, envConfigFile, ""), "path to a YAML file with people and tick settings")
	people := fs.String("people", envOrDefault(env, envPeople, ""), "comma-separated names to start with")
	tick := fs.Duration("tick", envOrDuration(env, envTick, app.DefaultTickInterval), "interval between timer events")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint row")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if fs.NArg() > 1 {
		return Config{}, fmt.Errorf("expected at most one receipt file (got %d)", fs.NArg())
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	tickFromEnv := strings.TrimSpace(env[envTick]) != ""
	peopleFromEnv := strings.TrimSpace(env[envPeople]) != ""

	peopleList := splitPeople(*people)
	if *configFile != "" {
		file, err := LoadFile(*configFile)
		if err != nil {
			return Config{}, err
		}
		if !explicit["people"] && !peopleFromEnv {
			peopleList = file.People
		}
		if !explicit["tick"] && !tickFromEnv && file.Tick != 0 {
			*tick = file.Tick
		}
	}
	if *tick <= 0 {
		return Config{}, fmt.Errorf("tick must be > 0 (got %s)", *tick)
	}

	cfg := Config{
		App: app.Config{
			ReceiptPath:  fs.Arg(0),
			People:       peopleList,
			TickInterval: *tick,
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		File: *configFile,
		Flags: map[string]string{
			"config":  *configFile,
			"people":  strings.Join(peopleList, ","),
			"tick":    tick.String(),
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// LoadFile reads the YAML configuration at path. Unknown keys are rejected.
func LoadFile(path string) (File, error) {
	f, err := os.Open(path)
	if err != nil {
		return File{}, fmt.Errorf("read config file: %w", err)
	}
	defer f.Close()

	var file File
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return File{}, fmt.Errorf("parse config file: %w", err)
	}
	return file, nil
}

func splitPeople(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	people := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			people = append(people, name)
		}
	}
	return people
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrDuration(env map[string]string, key string, fallback time.Duration) time.Duration {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate checks that the receipt file, when given, is a readable regular
// file.
func Validate(cfg Config) error {
	if cfg.App.ReceiptPath == "" {
		return nil
	}
	info, err := os.Stat(cfg.App.ReceiptPath)
	if err != nil {
		return fmt.Errorf("receipt file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("receipt file: %s is a directory", cfg.App.ReceiptPath)
	}
	return nil
}
