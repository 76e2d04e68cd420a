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

package visualization

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"

	"github.com/jarulraj/fio/pkg/device"
	"github.com/jarulraj/fio/pkg/results"
)

var summaryHeaders = []string{"Mode", "Device", "Block size", "Bandwidth", "IOPS"}

// Table is a model for data.
type Table struct {
	headers []string
	data    [][]string
}

// NewTable creates new model of data representation.
func NewTable(headers []string, data [][]string) *Table {
	return &Table{
		headers,
		data,
	}
}

// Rows returns data rows of the table.
func (t *Table) Rows() [][]string {
	return t.data
}

// DrawTable draws a struct with headers and data rows.
func DrawTable(output io.Writer, table *Table) {
	writer := tablewriter.NewWriter(output)
	writer.SetHeader(table.headers)
	for _, v := range table.data {
		writer.Append(v)
	}
	writer.Render()
}

// SummaryTable builds a row per stored run. Bandwidth and IOPS sequences are matched by position.
func SummaryTable(store *results.Store, modes []string, devices []device.Device) (*Table, error) {
	data := [][]string{}
	for _, mode := range modes {
		for _, dev := range devices {
			bandwidth, err := store.Load(results.Key{Mode: mode, Device: dev.Kind, Metric: results.Bandwidth})
			if err != nil {
				return nil, err
			}
			iops, err := store.Load(results.Key{Mode: mode, Device: dev.Kind, Metric: results.IOPS})
			if err != nil {
				return nil, err
			}
			if len(bandwidth) != len(iops) {
				return nil, fmt.Errorf("%s on %s has %d bandwidth and %d IOPS records", mode, dev.Kind, len(bandwidth), len(iops))
			}

			for i := range bandwidth {
				data = append(data, []string{
					mode,
					dev.Kind.String(),
					strconv.Itoa(bandwidth[i].BlockSize),
					humanize.IBytes(uint64(bandwidth[i].Value)) + "/s",
					humanize.Commaf(iops[i].Value),
				})
			}
		}
	}
	return NewTable(summaryHeaders, data), nil
}
