package config

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"

	"reels-chart/storage"
)

// Config holds all application configuration.
type Config struct {
	Year       int
	InputPath  string
	OutputPath string
	RecordType string
	Delimiter  string

	MatrixCSVPath string
	PrintReport   bool
	Debug         bool
}

// Load reads the .env file and returns a Config populated from the environment.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables and defaults only.
func FromEnv() *Config {
	return &Config{
		Year:       getEnvInt("REELS_YEAR", 2024),
		InputPath:  getEnv("REELS_INPUT", "data/reels_views_raw.csv"),
		OutputPath: getEnv("REELS_OUTPUT", "outputs/views_by_date.png"),
		RecordType: getEnv("REELS_RECORD_TYPE", "reels"),
		Delimiter:  getEnv("REELS_DELIMITER", ","),

		MatrixCSVPath: getEnv("REELS_MATRIX_CSV", ""),
		PrintReport:   getEnvBool("REELS_REPORT", true),
		Debug:         getEnvBool("REELS_DEBUG", false),
	}
}

// ParseFlags overrides c with command-line flags. Environment values act as
// the flag defaults.
func (c *Config) ParseFlags(name string, args []string, output io.Writer) error {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)

	fs.IntVar(&c.Year, "year", c.Year, "year assumed for the dates (e.g. 2024)")
	fs.StringVar(&c.InputPath, "input", c.InputPath, "path of the CSV with the data")
	fs.StringVar(&c.OutputPath, "output", c.OutputPath, "path of the output image (.png, .jpg, .webp, ...)")
	fs.StringVar(&c.RecordType, "type", c.RecordType, "value of the type column for rows to include")
	fs.StringVar(&c.Delimiter, "delimiter", c.Delimiter, "field delimiter of the input file")
	fs.StringVar(&c.MatrixCSVPath, "matrix", c.MatrixCSVPath, "optional CSV path for the date × label matrix")
	fs.BoolVar(&c.PrintReport, "report", c.PrintReport, "print a summary to stdout")
	fs.BoolVar(&c.Debug, "debug", c.Debug, "enable debug logging")

	return fs.Parse(args)
}

// Validate returns every configuration problem at once.
func (c *Config) Validate() error {
	var result *multierror.Error

	if c.Year < 1 || c.Year > 9999 {
		result = multierror.Append(result, fmt.Errorf("invalid year %d: must be between 1 and 9999", c.Year))
	}
	if c.InputPath == "" {
		result = multierror.Append(result, fmt.Errorf("input path cannot be empty"))
	}
	if c.OutputPath == "" {
		result = multierror.Append(result, fmt.Errorf("output path cannot be empty"))
	} else if !storage.SupportedExtension(c.OutputPath) {
		result = multierror.Append(result, fmt.Errorf("unsupported output format %q", c.OutputPath))
	}
	if c.RecordType == "" {
		result = multierror.Append(result, fmt.Errorf("record type cannot be empty"))
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		result = multierror.Append(result, fmt.Errorf("invalid delimiter %q: must be a single character", c.Delimiter))
	} else if r := c.DelimiterRune(); r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		result = multierror.Append(result, fmt.Errorf("invalid delimiter %q", c.Delimiter))
	}

	return result.ErrorOrNil()
}

// DelimiterRune returns the configured delimiter as a rune.
func (c *Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	return r
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
