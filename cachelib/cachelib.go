// Package cachelib keeps ranked results of already processed corpora, persisted
// to disk between runs
package cachelib

import (
	"bytes"
	"crypto/sha1"
	"encoding/gob"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"os"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"

	"goZipf/freq"
	"goZipf/iolib"
)

// BackupEvery is how many saves pass between two backups of the cache file
const BackupEvery = 10

func init() {
	// cache items hold interface values
	gob.Register([]freq.Entry{})
}

// ResultCache maps corpus keys to ranked lists
type ResultCache struct {
	items      *cache.Cache
	filename   string
	expiration time.Duration
	saves      int
}

// Open loads the cache stored in filename, or starts an empty one when the
// file does not exist yet. An empty filename keeps the cache in memory only.
// expiration <= 0 means entries never expire.
func Open(filename string, expiration time.Duration) (*ResultCache, error) {
	if expiration <= 0 {
		expiration = cache.NoExpiration
	}
	rc := &ResultCache{filename: filename, expiration: expiration}

	if filename == "" || !iolib.FileExists(filename) {
		rc.items = cache.New(expiration, 10*time.Minute)
		return rc, nil
	}

	b, err := ioutil.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	decodedMap := make(map[string]cache.Item)
	if err := gob.NewDecoder(bytes.NewBuffer(b)).Decode(&decodedMap); err != nil {
		return nil, fmt.Errorf("cachelib: %s: %w", filename, err)
	}

	rc.items = cache.NewFrom(expiration, 10*time.Minute, decodedMap)
	return rc, nil
}

// Get returns the ranked list cached under key
func (rc *ResultCache) Get(key string) ([]freq.Entry, bool) {
	v, found := rc.items.Get(key)
	if !found {
		return nil, false
	}
	ranked, ok := v.([]freq.Entry)
	return ranked, ok
}

// Set stores a ranked list and saves the cache to disk
func (rc *ResultCache) Set(key string, ranked []freq.Entry) error {
	rc.items.Set(key, ranked, cache.DefaultExpiration)
	return rc.Save()
}

// Len is the number of cached corpora, expired ones included until cleanup
func (rc *ResultCache) Len() int {
	return rc.items.ItemCount()
}

// Save writes the cache to its file, keeping a backup copy from time to time
func (rc *ResultCache) Save() error {
	if rc.filename == "" {
		return nil
	}

	rc.saves++
	if rc.saves%BackupEvery == 0 && iolib.FileExists(rc.filename) {
		if err := iolib.CopyFileContents(rc.filename, rc.filename+".backup"); err != nil {
			return err
		}
	}

	b := new(bytes.Buffer)
	if err := gob.NewEncoder(b).Encode(rc.items.Items()); err != nil {
		return err
	}
	return iolib.WriteFile(rc.filename, b.Bytes())
}

// Key identifies a corpus: its files as they are on disk right now plus the
// settings that change tokenizing. ok is false when a file cannot be
// stat'ed, in which case nothing should be cached.
func Key(paths []string, settings ...string) (key string, ok bool) {
	sorted := append([]string(nil), paths...)
	sort.Strings(sorted)

	h := sha1.New()
	for _, s := range settings {
		fmt.Fprintf(h, "%s\x00", s)
	}
	for _, p := range sorted {
		info, err := os.Stat(p)
		if err != nil || info.IsDir() {
			return "", false
		}
		fmt.Fprintf(h, "%s\x00%d\x00%d\x00", p, info.Size(), info.ModTime().UnixNano())
	}
	return hex.EncodeToString(h.Sum(nil)), true
}
