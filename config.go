package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"goZipf/freq"
	"goZipf/source"
)

// Config is everything a run needs, resolved from defaults, zipf.yaml and flags
type Config struct {
	Inputs  []string
	Script  string // latin, arabic or auto
	Charset string
	Format  string

	Output      string
	Plot        string
	HapaxSample int
	Top         int

	CacheFile       string
	CacheExpiration time.Duration

	RedisAddr string
	RedisKey  string

	Debug bool
}

var usage = "Usage: zipf [flags] <file> [file ...]\n"

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("zipf", pflag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprint(os.Stderr, usage)
		fs.PrintDefaults()
	}
	fs.StringP("config", "c", "", "config file (default ./zipf.yaml when present)")
	fs.StringP("script", "s", "latin", "script of the corpus: latin, arabic or auto")
	fs.String("charset", source.UTF8, "charset of the input files")
	fs.String("format", source.FormatText, "input format: text or html")
	fs.StringP("output", "o", "word_frequencies.txt", "ranked list export file")
	fs.String("plot", "", "rank/count plot feed file (disabled when empty)")
	fs.Int("hapax-sample", freq.DefaultHapaxSample, "hapax legomena listed in the report")
	fs.Int("top", 10, "ranked entries echoed to the console")
	fs.String("cache-file", "", "persistent result cache (disabled when empty)")
	fs.Duration("cache-expiration", 0, "cached result lifetime, 0 keeps them forever")
	fs.String("redis-addr", "", "redis server receiving the ranked list (disabled when empty)")
	fs.String("redis-key", "zipf:ranked", "redis key of the ranked list")
	fs.Bool("debug", false, "dump the resolved configuration")
	return fs
}

// flag name -> config key
var flagKeys = map[string]string{
	"script":           "script",
	"charset":          "charset",
	"format":           "format",
	"output":           "output",
	"plot":             "plot",
	"hapax-sample":     "hapaxSample",
	"top":              "top",
	"cache-file":       "cache.file",
	"cache-expiration": "cache.expiration",
	"redis-addr":       "redis.addr",
	"redis-key":        "redis.key",
	"debug":            "debug",
}

// loadConfig parses args and merges them over the config file. A missing
// default config file is fine; a named one that is missing is not.
func loadConfig(args []string) (Config, error) {
	fs := newFlagSet()
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return Config{}, err
		}
	}

	configFile, _ := fs.GetString("config")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("zipf") // name of config file (without extension)
		v.AddConfigPath(".")    // look for config in the working directory
	}
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("config file: %w", err)
		}
	}

	cfg := Config{
		Inputs:          fs.Args(),
		Script:          strings.ToLower(v.GetString("script")),
		Charset:         v.GetString("charset"),
		Format:          strings.ToLower(v.GetString("format")),
		Output:          v.GetString("output"),
		Plot:            v.GetString("plot"),
		HapaxSample:     v.GetInt("hapaxSample"),
		Top:             v.GetInt("top"),
		CacheFile:       v.GetString("cache.file"),
		CacheExpiration: v.GetDuration("cache.expiration"),
		RedisAddr:       v.GetString("redis.addr"),
		RedisKey:        v.GetString("redis.key"),
		Debug:           v.GetBool("debug"),
	}
	if len(cfg.Inputs) == 0 {
		cfg.Inputs = v.GetStringSlice("inputs")
	}

	return cfg, cfg.validate()
}

func (cfg *Config) validate() error {
	if len(cfg.Inputs) == 0 {
		return fmt.Errorf("no input file given\n%s", usage)
	}
	charset, err := source.CanonicalCharset(cfg.Charset)
	if err != nil {
		return err
	}
	cfg.Charset = charset

	switch cfg.Format {
	case "":
		cfg.Format = source.FormatText
	case source.FormatText, source.FormatHTML:
	default:
		return fmt.Errorf("unknown input format %q", cfg.Format)
	}

	if cfg.HapaxSample < 0 {
		return fmt.Errorf("hapaxSample must not be negative")
	}
	if cfg.Top < 0 {
		cfg.Top = 0
	}
	return nil
}
