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
	"strconv"

	"github.com/pkg/errors"

	"github.com/jarulraj/fio/pkg/conf"
	"github.com/jarulraj/fio/pkg/device"
	"github.com/jarulraj/fio/pkg/workloads/fio"
)

var (
	modesFlag = conf.NewSliceFlag("experiment_modes",
		"Comma-separated list of fio readwrite modes to iterate over", "randwrite", "write")
	devicesFlag = conf.NewSliceFlag("experiment_devices",
		"Comma-separated list of devices to benchmark in KIND=path form (KIND is one of NVM, SSD, HDD)",
		device.Definitions(device.Defaults())...)
	blockSizesFlag = conf.NewSliceFlag("experiment_block_sizes",
		"Comma-separated list of block sizes (in bytes) to iterate over", "1024", "4096", "16384", "65536")

	// ResultsDirFlag is root of results tree.
	ResultsDirFlag = conf.NewStringFlag("experiment_results_dir", "Directory sweep results are stored in", "results/fio")
	// ResultsFileFlag is name of record file in every results directory.
	ResultsFileFlag = conf.NewStringFlag("experiment_results_file", "Name of record file in every results directory", "fio.csv")
	// ChartsDirFlag is directory charts are rendered to.
	ChartsDirFlag = conf.NewStringFlag("experiment_charts_dir", "Directory charts are rendered to", ".")
)

// ConfigFromFlags builds sweep configuration from flags.
func ConfigFromFlags() (Config, error) {
	devices, err := device.ParseList(devicesFlag.Value())
	if err != nil {
		return Config{}, errors.Wrap(err, "invalid experiment_devices")
	}

	blockSizes, err := parseBlockSizes(blockSizesFlag.Value())
	if err != nil {
		return Config{}, errors.Wrap(err, "invalid experiment_block_sizes")
	}

	config := Config{
		Modes:      modesFlag.Value(),
		Devices:    devices,
		BlockSizes: blockSizes,
		Fio:        fio.DefaultConfig(),
	}
	return config, config.Validate()
}

func parseBlockSizes(values []string) ([]int, error) {
	blockSizes := make([]int, 0, len(values))
	for _, value := range values {
		blockSize, err := strconv.Atoi(value)
		if err != nil {
			return nil, errors.Wrapf(err, "block size %q is not a number", value)
		}
		blockSizes = append(blockSizes, blockSize)
	}
	return blockSizes, nil
}
