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

package experiment

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/jarulraj/fio/pkg/device"
	"github.com/jarulraj/fio/pkg/executor"
	"github.com/jarulraj/fio/pkg/publisher"
	"github.com/jarulraj/fio/pkg/results"
	"github.com/jarulraj/fio/pkg/workloads/fio"
)

// Parameters is a single point of the sweep.
type Parameters struct {
	Mode      string
	Device    device.Device
	BlockSize int
}

func (p Parameters) String() string {
	return fmt.Sprintf("mode %s, device %s, block size %d", p.Mode, p.Device.Kind, p.BlockSize)
}

// Config is immutable description of a sweep.
type Config struct {
	Modes      []string
	Devices    []device.Device
	BlockSizes []int
	Fio        fio.Config
}

// Validate checks that every swept dimension is non empty and holds no repetitions, so every
// combination is run once. Block sizes must be positive and strictly ascending, which keeps
// stored sequences ordered.
func (c Config) Validate() error {
	if len(c.Modes) == 0 {
		return errors.New("no readwrite modes to iterate over")
	}
	modes := map[string]bool{}
	for _, mode := range c.Modes {
		if mode == "" {
			return errors.New("readwrite mode cannot be empty")
		}
		if modes[mode] {
			return errors.Errorf("readwrite mode %q given more than once", mode)
		}
		modes[mode] = true
	}

	if len(c.Devices) == 0 {
		return errors.New("no devices to iterate over")
	}
	kinds := map[device.Kind]bool{}
	for _, dev := range c.Devices {
		if kinds[dev.Kind] {
			return errors.Errorf("device %s given more than once", dev.Kind)
		}
		kinds[dev.Kind] = true
	}

	if len(c.BlockSizes) == 0 {
		return errors.New("no block sizes to iterate over")
	}
	for i, blockSize := range c.BlockSizes {
		if blockSize <= 0 {
			return errors.Errorf("block size value(%d) is lower/equal than/to 0", blockSize)
		}
		if i > 0 && blockSize <= c.BlockSizes[i-1] {
			return errors.Errorf("block sizes must be strictly ascending (%d follows %d)", blockSize, c.BlockSizes[i-1])
		}
	}
	return c.Fio.Validate()
}

// Parameters enumerates the sweep: modes outermost, block sizes innermost.
func (c Config) Parameters() []Parameters {
	parameters := make([]Parameters, 0, len(c.Modes)*len(c.Devices)*len(c.BlockSizes))
	for _, mode := range c.Modes {
		for _, dev := range c.Devices {
			for _, blockSize := range c.BlockSizes {
				parameters = append(parameters, Parameters{Mode: mode, Device: dev, BlockSize: blockSize})
			}
		}
	}
	return parameters
}

// ProgressFunc is called after every stored run.
type ProgressFunc func(done, total int, parameters Parameters, result results.RunResult)

// Sweep runs fio for every combination of mode, device and block size and stores results.
type Sweep struct {
	config    Config
	fio       fio.Fio
	store     *results.Store
	outputFs  afero.Fs
	publisher publisher.Publisher
	progress  ProgressFunc

	state   State
	current Parameters
}

// NewSweep prepares a sweep. fio reports are read from outputFs. Nil publisher means none.
func NewSweep(config Config, exec executor.Executor, store *results.Store, outputFs afero.Fs, pub publisher.Publisher) *Sweep {
	if pub == nil {
		pub = publisher.Nop{}
	}
	return &Sweep{
		config:    config,
		fio:       fio.New(exec, config.Fio),
		store:     store,
		outputFs:  outputFs,
		publisher: pub,
		state:     Idle,
	}
}

// OnProgress registers progress callback.
func (s *Sweep) OnProgress(progress ProgressFunc) {
	s.progress = progress
}

// State returns current state of the sweep.
func (s *Sweep) State() State {
	return s.state
}

// Current returns parameters of the last started run.
func (s *Sweep) Current() Parameters {
	return s.current
}

func (s *Sweep) transition(state State) {
	log.Debugf("sweep: %s -> %s (%s)", s.state, state, s.current)
	s.state = state
}

func (s *Sweep) fail(err error) error {
	s.transition(Failed)
	return err
}

// Run executes the whole sweep and blocks until it is finished.
// The first failing fio run stops the sweep; nothing is stored for it and for any later run.
// Cause of returned error is then *executor.ExternalToolError.
func (s *Sweep) Run() error {
	if err := s.config.Validate(); err != nil {
		return errors.Wrap(err, "invalid sweep configuration")
	}

	s.transition(Cleaning)
	if err := s.store.Clean(); err != nil {
		return s.fail(err)
	}

	parameters := s.config.Parameters()
	for i, p := range parameters {
		s.current = p
		s.transition(Running)
		if err := s.fio.Run(p.Mode, p.Device, p.BlockSize); err != nil {
			return s.fail(errors.Wrapf(err, "fio run (%s) failed", p))
		}

		s.transition(Collecting)
		result, err := s.collect(p)
		if err != nil {
			return s.fail(err)
		}

		if err := s.publisher.Publish(result); err != nil {
			log.Errorf("Cannot publish result (%s): %s", p, err.Error())
		}

		if s.progress != nil {
			s.progress(i+1, len(parameters), p, result)
		}
	}

	s.transition(Done)
	return nil
}

func (s *Sweep) collect(p Parameters) (results.RunResult, error) {
	sample, err := fio.ParseFile(s.outputFs, s.config.Fio.Output)
	if err != nil {
		return results.RunResult{}, err
	}
	if !sample.Found {
		log.Warnf("No summary line in fio report %q (%s), recording zeros", s.config.Fio.Output, p)
	}

	result := results.RunResult{
		Mode:      p.Mode,
		Device:    p.Device,
		BlockSize: p.BlockSize,
		Bandwidth: sample.Bandwidth,
		IOPS:      sample.IOPS,
	}
	log.Infof("%s: bandwidth %s/s, %.0f IOPS", p, humanize.IBytes(uint64(result.Bandwidth.Float64())), result.IOPS.Float64())

	if err := s.store.AppendResult(result); err != nil {
		return results.RunResult{}, err
	}
	return result, nil
}
