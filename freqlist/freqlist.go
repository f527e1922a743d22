// Package freqlist reads and writes ranked word frequency lists, one
// "<rank> <count> <word>" line per word
package freqlist

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"goZipf/freq"
	"goZipf/iolib"
)

// Write exports the ranked list in rank order
func Write(w io.Writer, ranked []freq.Entry) error {
	bw := bufio.NewWriter(w)
	for _, e := range ranked {
		if _, err := fmt.Fprintf(bw, "%d %d %s\n", e.Rank, e.Count, e.Word); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile exports the ranked list into filename, creating parent directories
func WriteFile(filename string, ranked []freq.Entry) (err error) {
	f, err := iolib.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()
	return Write(f, ranked)
}

// Load parses a list produced by Write. Blank lines are skipped; any other
// line must hold exactly rank, count and word, or Load fails naming its line number.
func Load(r io.Reader) ([]freq.Entry, error) {
	var ranked []freq.Entry

	numLine := 0
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		numLine++
		l := scanner.Text()
		if len(l) == 0 {
			continue
		}

		if n := len(strings.Fields(l)); n != 3 {
			return nil, fmt.Errorf("freqlist: line %d: want 3 fields, got %d", numLine, n)
		}

		var e freq.Entry
		if _, err := fmt.Sscanf(l, "%d %d %s", &e.Rank, &e.Count, &e.Word); err != nil {
			return nil, fmt.Errorf("freqlist: line %d: %w", numLine, err)
		}
		if e.Count < 1 || e.Rank < 1 {
			return nil, fmt.Errorf("freqlist: line %d: rank and count must be positive", numLine)
		}
		ranked = append(ranked, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return ranked, nil
}

// LoadFile parses the list stored in filename
func LoadFile(filename string) ([]freq.Entry, error) {
	f, err := iolib.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// WritePlot writes the plot feed as tab separated "rank count" rows with a header
func WritePlot(w io.Writer, points []freq.Point) error {
	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = '\t'

	if err := csvWriter.Write([]string{"rank", "count"}); err != nil {
		return err
	}
	for _, p := range points {
		row := []string{
			strconv.FormatFloat(p.Rank, 'f', -1, 64),
			strconv.FormatFloat(p.Count, 'f', -1, 64),
		}
		if err := csvWriter.Write(row); err != nil {
			return err
		}
	}
	csvWriter.Flush()

	return csvWriter.Error()
}

// WritePlotFile writes the plot feed into filename
func WritePlotFile(filename string, points []freq.Point) (err error) {
	f, err := iolib.Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()
	return WritePlot(f, points)
}
