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

package fio

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/jarulraj/fio/pkg/units"
)

const (
	// marker is a token which identifies summary lines of fio report.
	marker         = "iops"
	bandwidthField = 1
	iopsField      = 2
)

// Sample is bandwidth (bytes/s) and IOPS read from fio report.
type Sample struct {
	Bandwidth units.Value
	IOPS      units.Value
	// Found is false when no summary line was present.
	Found bool
}

// ParseFile opens fio report from fs and parses it.
func ParseFile(fs afero.Fs, path string) (Sample, error) {
	file, err := fs.Open(path)
	if err != nil {
		return Sample{}, errors.Wrapf(err, "could not open fio output %q", path)
	}
	defer file.Close()

	sample, err := Parse(file)
	if err != nil {
		return Sample{}, errors.Wrapf(err, "could not parse fio output %q", path)
	}
	return sample, nil
}

// Parse scans fio report for summary lines. Later lines override earlier ones.
func Parse(reader io.Reader) (Sample, error) {
	sample := Sample{}

	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.Contains(line, marker) {
			continue
		}
		log.Info(line)

		fields := strings.Split(line, ",")
		sample = Sample{
			Bandwidth: units.Bandwidth.Convert(fieldValue(fields, bandwidthField)),
			IOPS:      units.IOPS.Convert(fieldValue(fields, iopsField)),
			Found:     true,
		}

		if !sample.Bandwidth.Parsed {
			log.Warnf("could not parse bandwidth from %q, assuming 0", line)
		}
		if !sample.IOPS.Parsed {
			log.Warnf("could not parse iops from %q, assuming 0", line)
		}
		log.Infof("BW: %v, IOPS: %v", sample.Bandwidth.Float64(), sample.IOPS.Float64())
	}
	if err := scanner.Err(); err != nil {
		return Sample{}, err
	}

	return sample, nil
}

// fieldValue returns text after the first '=' of the index-th field, without trailing commas.
func fieldValue(fields []string, index int) string {
	if index >= len(fields) {
		return ""
	}
	keyValue := strings.SplitN(fields[index], "=", 2)
	if len(keyValue) != 2 {
		return ""
	}
	return strings.TrimRight(strings.TrimSpace(keyValue[1]), ",")
}
