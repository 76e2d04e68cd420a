// Copyright (c) 2017 Intel Corporation
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package results keeps sweep results in a directory tree:
// `<root>/<mode>/<device>/<metric>/<file>`, where every file is a sequence of
// `<block_size> , <value>` lines in the order runs were made.
package results

import (
	"bufio"
	"fmt"
	"os"
	"path"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"

	"github.com/jarulraj/fio/pkg/device"
	"github.com/jarulraj/fio/pkg/units"
)

// DefaultFileName is the name of record file in every metric directory.
const DefaultFileName = "fio.csv"

// Metric is a directory name of measured quantity.
type Metric string

const (
	// Bandwidth in bytes per second.
	Bandwidth Metric = "bw"
	// IOPS is number of I/O operations per second.
	IOPS Metric = "iops"
)

// Metrics lists all recorded metrics.
var Metrics = []Metric{Bandwidth, IOPS}

// Key identifies a record sequence.
type Key struct {
	Mode   string
	Device device.Kind
	Metric Metric
}

// Record is a single measurement.
type Record struct {
	BlockSize int
	Value     float64
}

// RunResult is the outcome of a single fio run.
type RunResult struct {
	Mode      string
	Device    device.Device
	BlockSize int
	Bandwidth units.Value
	IOPS      units.Value
}

// Store appends records to files under root.
type Store struct {
	fs       afero.Fs
	root     string
	fileName string
}

// New returns Store writing to root on fs. Empty fileName means DefaultFileName.
func New(fs afero.Fs, root string, fileName string) *Store {
	if fileName == "" {
		fileName = DefaultFileName
	}
	return &Store{fs: fs, root: root, fileName: fileName}
}

// Root returns root directory of the store.
func (s *Store) Root() string {
	return s.root
}

// Clean removes everything under root and recreates it empty. Missing root is fine.
func (s *Store) Clean() error {
	if err := s.fs.RemoveAll(s.root); err != nil {
		return errors.Wrapf(err, "could not remove results directory %q", s.root)
	}
	if err := s.fs.MkdirAll(s.root, 0755); err != nil {
		return errors.Wrapf(err, "could not create results directory %q", s.root)
	}
	return nil
}

// Path returns record file path of key.
func (s *Store) Path(key Key) string {
	return path.Join(s.root, key.Mode, key.Device.String(), string(key.Metric), s.fileName)
}

// Append adds record to sequence of key, creating directories and file when needed.
func (s *Store) Append(key Key, record Record) error {
	filePath := s.Path(key)
	if err := s.fs.MkdirAll(path.Dir(filePath), 0755); err != nil {
		return errors.Wrapf(err, "could not create results directory %q", path.Dir(filePath))
	}

	file, err := s.fs.OpenFile(filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return errors.Wrapf(err, "could not open results file %q", filePath)
	}

	_, err = fmt.Fprintf(file, "%d , %s\n", record.BlockSize, strconv.FormatFloat(record.Value, 'f', -1, 64))
	if err != nil {
		file.Close()
		return errors.Wrapf(err, "could not append to results file %q", filePath)
	}
	return errors.Wrapf(file.Close(), "could not close results file %q", filePath)
}

// AppendResult appends bandwidth and IOPS of result.
func (s *Store) AppendResult(result RunResult) error {
	values := map[Metric]units.Value{
		Bandwidth: result.Bandwidth,
		IOPS:      result.IOPS,
	}
	for _, metric := range Metrics {
		key := Key{Mode: result.Mode, Device: result.Device.Kind, Metric: metric}
		record := Record{BlockSize: result.BlockSize, Value: values[metric].Float64()}
		if err := s.Append(key, record); err != nil {
			return err
		}
	}
	return nil
}

// Load reads sequence of key in insertion order. Missing file gives an error.
func (s *Store) Load(key Key) ([]Record, error) {
	filePath := s.Path(key)
	file, err := s.fs.Open(filePath)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open results file %q", filePath)
	}
	defer file.Close()

	records := []Record{}
	scanner := bufio.NewScanner(file)
	for lineNumber := 1; scanner.Scan(); lineNumber++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		record, err := parseRecord(line)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", filePath, lineNumber)
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "could not read results file %q", filePath)
	}
	return records, nil
}

func parseRecord(line string) (Record, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return Record{}, errors.Errorf("malformed record %q", line)
	}
	blockSize, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Record{}, errors.Wrapf(err, "malformed block size in %q", line)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return Record{}, errors.Wrapf(err, "malformed value in %q", line)
	}
	return Record{BlockSize: blockSize, Value: value}, nil
}
