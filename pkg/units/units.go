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

// Package units converts magnitude suffixed tokens reported by fio (e.g. "12.3KB/s", "450K")
// into raw numbers.
package units

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// Kilo is the binary kilo scale used by fio.
	Kilo = 1024
	// Mega is Kilo squared.
	Mega = Kilo * Kilo
	// Giga is Kilo cubed.
	Giga = Mega * Kilo
)

// Value is a converted token. Parsed is false when no number could be recognized; Amount is zero then.
type Value struct {
	Amount float64
	Parsed bool
}

// Float64 returns the amount, or 0 for an unparsed value.
func (v Value) Float64() float64 {
	if !v.Parsed {
		return 0
	}
	return v.Amount
}

// Table maps unit suffixes to scale factors.
type Table map[string]int64

var (
	// Bandwidth is the table of fio bandwidth suffixes.
	Bandwidth = Table{"KB/s": Kilo, "MB/s": Mega, "GB/s": Giga}
	// IOPS is the table of fio IOPS suffixes.
	IOPS = Table{"K": Kilo, "M": Mega, "G": Giga}
	// All merges both tables.
	All = merge(Bandwidth, IOPS)
)

func merge(tables ...Table) Table {
	merged := Table{}
	for _, table := range tables {
		for suffix, scale := range table {
			merged[suffix] = scale
		}
	}
	return merged
}

// Convert converts token using every known suffix.
func Convert(token string) Value {
	return All.Convert(token)
}

// Convert strips the longest matching suffix, keeps only digits and dots of what remains,
// and multiplies the number by the suffix scale. Tokens without a known suffix have scale 1.
func (t Table) Convert(token string) Value {
	token = strings.TrimRight(strings.TrimSpace(token), ",")
	token = strings.TrimSpace(token)

	prefix, scale := t.split(token)
	number := strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == '.' {
			return r
		}
		return -1
	}, prefix)

	amount, err := decimal.NewFromString(number)
	if err != nil {
		return Value{}
	}

	converted, _ := amount.Mul(decimal.New(scale, 0)).Float64()
	return Value{Amount: converted, Parsed: true}
}

// Scale returns the scale of the longest suffix of token, 1 when none matches.
func (t Table) Scale(token string) int64 {
	_, scale := t.split(token)
	return scale
}

func (t Table) split(token string) (prefix string, scale int64) {
	for _, suffix := range t.suffixes() {
		if strings.HasSuffix(token, suffix) {
			return strings.TrimSuffix(token, suffix), t[suffix]
		}
	}
	return token, 1
}

// suffixes returns the suffixes longest first.
func (t Table) suffixes() []string {
	suffixes := make([]string, 0, len(t))
	for suffix := range t {
		suffixes = append(suffixes, suffix)
	}
	sort.Slice(suffixes, func(i, j int) bool {
		if len(suffixes[i]) == len(suffixes[j]) {
			return suffixes[i] < suffixes[j]
		}
		return len(suffixes[i]) > len(suffixes[j])
	})
	return suffixes
}
