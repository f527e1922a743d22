// Package iolib provides the file helpers shared by exporters and caches
package iolib

import (
	"io"
	"os"
	"path/filepath"
)

// FileExists returns true if there is a regular file w/ that name
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// CopyFileContents copies the contents of the file named src to the file named
// by dst. The file will be created if it does not already exist. If the
// destination file exists, all it's contents will be replaced by the contents
// of the source file.
func CopyFileContents(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return
	}
	defer in.Close()
	out, err := Create(dst)
	if err != nil {
		return
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()
	if _, err = io.Copy(out, in); err != nil {
		return
	}
	err = out.Sync()
	return
}

// Create truncates or creates filename, making any missing parent directory
func Create(filename string) (*os.File, error) {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	return os.Create(filename)
}

// Open opens filename for reading
func Open(filename string) (*os.File, error) {
	return os.Open(filename)
}

// WriteFile saves data into filename, making any missing parent directory
func WriteFile(filename string, data []byte) (err error) {
	f, err := Create(filename)
	if err != nil {
		return err
	}
	defer func() {
		cerr := f.Close()
		if err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}
