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

// Package device describes storage devices benchmarked by fio.
package device

import (
	"fmt"
	"path"
	"strings"

	"github.com/pkg/errors"
)

// Kind is a storage technology of benchmarked device.
type Kind int

const (
	// NVM is non-volatile memory (e.g. PMFS mount).
	NVM Kind = iota
	// SSD is a solid state drive.
	SSD
	// HDD is a hard disk drive.
	HDD
)

var kindNames = map[Kind]string{
	NVM: "NVM",
	SSD: "SSD",
	HDD: "HDD",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns Kind named by s (case insensitive).
func ParseKind(s string) (Kind, error) {
	for kind, name := range kindNames {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return kind, nil
		}
	}
	return 0, errors.Errorf("unknown device kind %q (expected NVM, SSD or HDD)", s)
}

// Device is a device kind with the directory on which fio creates its test file.
type Device struct {
	Kind Kind
	Path string
}

func (d Device) String() string {
	return fmt.Sprintf("%s=%s", d.Kind, d.Path)
}

// TestFile returns path of fio test file on the device.
func (d Device) TestFile(name string) string {
	return path.Join(d.Path, name)
}

// Parse parses device definition in `KIND=path` form, e.g. "SSD=/data1/".
func Parse(definition string) (Device, error) {
	fields := strings.SplitN(definition, "=", 2)
	if len(fields) != 2 || strings.TrimSpace(fields[1]) == "" {
		return Device{}, errors.Errorf("invalid device definition %q (expected KIND=path)", definition)
	}

	kind, err := ParseKind(fields[0])
	if err != nil {
		return Device{}, err
	}

	return Device{Kind: kind, Path: strings.TrimSpace(fields[1])}, nil
}

// ParseList parses every definition. Each kind may appear only once.
func ParseList(definitions []string) ([]Device, error) {
	devices := make([]Device, 0, len(definitions))
	seen := map[Kind]bool{}
	for _, definition := range definitions {
		device, err := Parse(definition)
		if err != nil {
			return nil, err
		}
		if seen[device.Kind] {
			return nil, errors.Errorf("device %s defined more than once", device.Kind)
		}
		seen[device.Kind] = true
		devices = append(devices, device)
	}
	return devices, nil
}

// Defaults returns devices of the reference machine.
func Defaults() []Device {
	return []Device{
		{Kind: NVM, Path: "/mnt/pmfs/"},
		{Kind: SSD, Path: "/data1/"},
		{Kind: HDD, Path: "/data/"},
	}
}

// Definitions renders devices back to `KIND=path` form.
func Definitions(devices []Device) []string {
	definitions := make([]string, 0, len(devices))
	for _, device := range devices {
		definitions = append(definitions, device.String())
	}
	return definitions
}
