// Package freq counts words, ranks them by frequency and extracts hapax legomena
package freq

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"goZipf/script"
	"goZipf/source"
	"goZipf/tokenizer"
)

// Map holds the occurrence count of every distinct word
type Map map[string]int

// WordScanner is anything producing words one at a time, like tokenizer.Tokenizer
type WordScanner interface {
	Scan() bool
	Word() string
	Err() error
}

func (m Map) add(word string) {
	m[word]++
}

// Total is the number of tokens the map was built from
func (m Map) Total() int {
	total := 0
	for _, n := range m {
		total += n
	}
	return total
}

// Merge adds the counts of other into m
func (m Map) Merge(other Map) {
	for word, n := range other {
		m[word] += n
	}
}

// Count drains the scanner into a new map. On a scanner error the partial
// map is discarded.
func Count(words WordScanner) (Map, error) {
	m := make(Map)
	for words.Scan() {
		m.add(words.Word())
	}
	if err := words.Err(); err != nil {
		return nil, err
	}
	return m, nil
}

// CountWords counts an in-memory token list
func CountWords(words []string) Map {
	m := make(Map, len(words))
	for _, w := range words {
		m.add(w)
	}
	return m
}

// CountAll tokenizes the sources concurrently, at most GOMAXPROCS open at a
// time, and merges the partial maps. The first failing source cancels the
// rest and its error is returned.
func CountAll(ctx context.Context, sources []source.Source, s script.Script) (Map, error) {
	partial := make([]Map, len(sources))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			tok := tokenizer.New(src, s)
			defer tok.Close()
			m, err := Count(&cancellable{WordScanner: tok, ctx: ctx})
			if err != nil {
				return err
			}
			partial[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := make(Map)
	for _, m := range partial {
		merged.Merge(m)
	}
	return merged, nil
}

// cancellable stops a scan once ctx is done
type cancellable struct {
	WordScanner
	ctx context.Context
	err error
}

func (c *cancellable) Scan() bool {
	if err := c.ctx.Err(); err != nil {
		c.err = err
		return false
	}
	return c.WordScanner.Scan()
}

func (c *cancellable) Err() error {
	if err := c.WordScanner.Err(); err != nil {
		return err
	}
	return c.err
}
