// Package storage persists the fleet to its flat text file: a leading count
// line followed by one pipe-separated record per line.
package storage

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/nurpe/fleetguardian/internal/model"
)

type FileStore struct {
	path string
	log  zerolog.Logger
}

func NewFileStore(path string, log zerolog.Logger) *FileStore {
	return &FileStore{path: path, log: log}
}

func (f *FileStore) Path() string {
	return f.path
}

// Load reads the fleet from disk. A missing file is an empty fleet, not an
// error. A malformed count line also yields an empty fleet, with a warning.
// Individual lines that fail to parse are skipped and logged; they never
// abort the rest of the load.
func (f *FileStore) Load() ([]model.Vehicle, error) {
	file, err := os.Open(f.path)
	if err != nil {
		if isNotExist(err) {
			f.log.Info().Str("path", f.path).Msg("no data file, starting with empty fleet")
			return nil, nil
		}
		return nil, fmt.Errorf("%w: open %s: %v", ErrStorageUnavailable, f.path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	if !scanner.Scan() {
		f.log.Warn().Str("path", f.path).Msg("data file empty, starting with empty fleet")
		return nil, nil
	}

	count, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
	if err != nil || count < 0 {
		f.log.Warn().Str("path", f.path).Str("line", scanner.Text()).Msg("malformed record count, starting with empty fleet")
		return nil, nil
	}

	vehicles := make([]model.Vehicle, 0, count)
	lineNo := 1
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := DecodeRecord(line)
		if err != nil {
			f.log.Warn().Str("path", f.path).Int("line", lineNo).Err(err).Msg("skipping corrupted record")
			continue
		}
		vehicles = append(vehicles, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %v", ErrStorageUnavailable, f.path, err)
	}

	if len(vehicles) != count {
		f.log.Warn().Int("declared", count).Int("loaded", len(vehicles)).Msg("record count mismatch in data file")
	}
	f.log.Info().Int("vehicles", len(vehicles)).Str("path", f.path).Msg("fleet loaded")
	return vehicles, nil
}

// Save writes the whole fleet, count line first. On failure the in-memory
// fleet is untouched and the caller may retry.
func (f *FileStore) Save(vehicles []model.Vehicle) error {
	file, err := os.Create(f.path)
	if err != nil {
		return fmt.Errorf("%w: create %s: %v", ErrStorageUnavailable, f.path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	fmt.Fprintf(w, "%d\n", len(vehicles))
	for _, v := range vehicles {
		fmt.Fprintln(w, EncodeRecord(v))
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrStorageUnavailable, f.path, err)
	}

	f.log.Info().Int("vehicles", len(vehicles)).Str("path", f.path).Msg("fleet saved")
	return nil
}

func isNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
