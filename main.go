// computes word frequency rankings, Zipf plot feeds and hapax legomena for
// Latin and Arabic script corpora
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/computerphysicslab/goPackages/goDebug"
	"github.com/spf13/pflag"

	"goZipf/cachelib"
	"goZipf/freq"
	"goZipf/freqlist"
	"goZipf/redislib"
	"goZipf/script"
	"goZipf/source"
)

// bytes of the first input read to guess its script
const detectSampleSize = 4096

// Logger
var logger = log.New(os.Stderr, "zipf: ", 0)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	if err == pflag.ErrHelp {
		os.Exit(0)
	}
	if err != nil {
		logger.Println(err)
		os.Exit(1)
	}

	if cfg.Debug {
		goDebug.Print("config", cfg)
	}

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		logger.Println(err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg Config, out io.Writer) error {
	sources := make([]source.Source, len(cfg.Inputs))
	for i, path := range cfg.Inputs {
		sources[i] = source.File{Path: path, Charset: cfg.Charset, Format: cfg.Format}
	}

	sc, err := resolveScript(cfg.Script, sources[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "* Reading %d file(s) as %s text ...\n", len(sources), sc.Name())

	ranked, err := rankCorpus(ctx, cfg, sources, sc)
	if err != nil {
		return err
	}

	stats := freq.Summarize(ranked)
	fmt.Fprintf(out, "\nTotal number of words: %d\n", stats.Tokens)
	fmt.Fprintf(out, "Number of unique words: %d\n", stats.Unique)

	if cfg.Top > 0 && len(ranked) > 0 {
		fmt.Fprintf(out, "\nSorted word frequencies (top %d):\n", cfg.Top)
		for i, e := range ranked {
			if i == cfg.Top {
				break
			}
			fmt.Fprintf(out, "%d %d %s\n", e.Rank, e.Count, e.Word)
		}
	}

	if cfg.Output != "" {
		if err := freqlist.WriteFile(cfg.Output, ranked); err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Fprintf(out, "\nExported frequencies to %s\n", cfg.Output)
	}

	if cfg.Plot != "" {
		if err := freqlist.WritePlotFile(cfg.Plot, freq.PlotFeed(ranked)); err != nil {
			return fmt.Errorf("plot feed: %w", err)
		}
		fmt.Fprintf(out, "Plot feed written to %s\n", cfg.Plot)
	}

	if cfg.RedisAddr != "" {
		if err := publish(cfg.RedisAddr, cfg.RedisKey, ranked); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
		fmt.Fprintf(out, "Ranked list stored in redis key %s\n", cfg.RedisKey)
	}

	printHapax(out, freq.Hapax(ranked, cfg.HapaxSample))

	return nil
}

// resolveScript parses the configured script, sampling the first source for "auto"
func resolveScript(name string, first source.Source) (script.Script, error) {
	if name != "auto" {
		return script.Parse(name)
	}
	sample, err := source.Sample(first, detectSampleSize)
	if err != nil {
		return nil, err
	}
	return script.Detect(sample), nil
}

// rankCorpus counts and ranks the sources, going through the result cache
// when one is configured
func rankCorpus(ctx context.Context, cfg Config, sources []source.Source, sc script.Script) ([]freq.Entry, error) {
	var rc *cachelib.ResultCache
	var key string
	if cfg.CacheFile != "" {
		var err error
		rc, err = cachelib.Open(cfg.CacheFile, cfg.CacheExpiration)
		if err != nil {
			return nil, err
		}
		var ok bool
		key, ok = cachelib.Key(cfg.Inputs, sc.Name(), cfg.Charset, cfg.Format)
		if !ok {
			rc = nil
		} else if ranked, found := rc.Get(key); found {
			logger.Printf("cache hit for %v", cfg.Inputs)
			return ranked, nil
		}
	}

	m, err := freq.CountAll(ctx, sources, sc)
	if err != nil {
		return nil, err
	}
	ranked := freq.Rank(m)

	if rc != nil {
		if err := rc.Set(key, ranked); err != nil {
			logger.Printf("cache save: %v", err)
		}
	}

	return ranked, nil
}

func publish(addr, key string, ranked []freq.Entry) error {
	pool := redislib.NewPool(addr)
	defer pool.Close()

	store := redislib.New(pool)
	if err := store.Ping(); err != nil {
		return err
	}
	return store.SaveRanked(key, ranked)
}

func printHapax(out io.Writer, report freq.HapaxReport) {
	fmt.Fprintf(out, "\nHapax Legomena (words that appear only once), first %d:\n", len(report.Sample))
	for _, w := range report.Sample {
		fmt.Fprintln(out, w)
	}
	fmt.Fprintf(out, "\nTotal number of hapax legomena: %d\n", report.Total)
}
