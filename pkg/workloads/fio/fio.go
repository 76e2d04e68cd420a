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

// Package fio builds fio invocations for a single (mode, device, block size) run
// and parses bandwidth and IOPS from fio text report.
package fio

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/jarulraj/fio/pkg/device"
	"github.com/jarulraj/fio/pkg/executor"
)

const name = "fio"

// Config is the part of fio command line which does not change during a sweep.
type Config struct {
	Path       string
	IOEngine   string
	RandRepeat int
	Name       string
	IODepth    int
	Sync       int
	Direct     int
	Size       string
	Runtime    time.Duration
	Output     string
	MaxJobs    int
	// FileName is the name of test file created in device directory.
	FileName string
}

// DefaultConfig is a constructor for Config with values taken from flags.
func DefaultConfig() Config {
	return Config{
		Path:       pathFlag.Value(),
		IOEngine:   ioEngineFlag.Value(),
		RandRepeat: randRepeatFlag.Value(),
		Name:       nameFlag.Value(),
		IODepth:    ioDepthFlag.Value(),
		Sync:       syncFlag.Value(),
		Direct:     directFlag.Value(),
		Size:       sizeFlag.Value(),
		Runtime:    runtimeFlag.Value(),
		Output:     outputFlag.Value(),
		MaxJobs:    maxJobsFlag.Value(),
		FileName:   fileNameFlag.Value(),
	}
}

// Validate returns error when configuration cannot produce a meaningful fio run.
func (c Config) Validate() error {
	switch {
	case c.Path == "":
		return fmt.Errorf("fio configuration is invalid. `path` is empty")
	case c.IOEngine == "":
		return fmt.Errorf("fio configuration is invalid. `ioengine` is empty")
	case c.Output == "":
		return fmt.Errorf("fio configuration is invalid. `output` is empty")
	case c.FileName == "":
		return fmt.Errorf("fio configuration is invalid. `file name` is empty")
	case c.IODepth <= 0:
		return fmt.Errorf("fio configuration is invalid. `iodepth` value(%d) is lower/equal than/to 0", c.IODepth)
	case c.MaxJobs <= 0:
		return fmt.Errorf("fio configuration is invalid. `max jobs` value(%d) is lower/equal than/to 0", c.MaxJobs)
	case int(c.Runtime.Seconds()) <= 0:
		return fmt.Errorf("fio configuration is invalid. `runtime` value(%d) is lower/equal than/to 0", int(c.Runtime.Seconds()))
	}
	return nil
}

// Command builds fio command for given mode, device and block size.
func (c Config) Command(mode string, dev device.Device, blockSize int) executor.Command {
	return executor.Command{
		Name: c.Path,
		Args: []string{
			"--readwrite=" + mode,
			"--filename=" + dev.TestFile(c.FileName),
			fmt.Sprintf("--blocksize=%d", blockSize),
			"--ioengine=" + c.IOEngine,
			fmt.Sprintf("--randrepeat=%d", c.RandRepeat),
			"--name=" + c.Name,
			fmt.Sprintf("--iodepth=%d", c.IODepth),
			fmt.Sprintf("--sync=%d", c.Sync),
			fmt.Sprintf("--direct=%d", c.Direct),
			"--size=" + c.Size,
			fmt.Sprintf("--runtime=%d", int(c.Runtime.Seconds())),
			"--output=" + c.Output,
			fmt.Sprintf("--max-jobs=%d", c.MaxJobs),
		},
	}
}

// Fio runs fio through an executor.
type Fio struct {
	exec   executor.Executor
	config Config
}

// New is a constructor for Fio.
func New(exec executor.Executor, config Config) Fio {
	return Fio{exec: exec, config: config}
}

// Config returns configuration the runs are built from.
func (f Fio) Config() Config {
	return f.config
}

// Run executes single fio run and blocks until it is finished.
// Failure of fio is returned as *executor.ExternalToolError.
func (f Fio) Run(mode string, dev device.Device, blockSize int) error {
	if err := f.config.Validate(); err != nil {
		return err
	}
	if blockSize <= 0 {
		return fmt.Errorf("block size value(%d) is lower/equal than/to 0", blockSize)
	}

	command := f.config.Command(mode, dev, blockSize)
	log.Infof("%s: %s", f.Name(), command.String())
	return f.exec.Execute(command)
}

// Name returns human readable name for job.
func (f Fio) Name() string {
	return name
}
