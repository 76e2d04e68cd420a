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

package metadata

import (
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/jarulraj/fio/pkg/conf"
	"github.com/jarulraj/fio/pkg/device"
	"github.com/jarulraj/fio/pkg/utils/env"
)

// RecordRuntimeEnv stores sweep environment information: flags, FIOEVAL_ environment,
// host and start time, platform and benchmarked devices.
func RecordRuntimeEnv(metadata Metadata, experimentStart time.Time, devices []device.Device) error {
	// Store configuration.
	err := recordFlags(metadata)
	if err != nil {
		return err
	}

	// Store FIOEVAL_ environment configuration.
	err = recordEnv(metadata, conf.EnvironmentPrefix)
	if err != nil {
		return err
	}

	// Store host and time in metadata.
	hostname, err := os.Hostname()
	if err != nil {
		return errors.Wrap(err, "cannot retrieve hostname")
	}
	// Store hostname, user and start time.
	general := map[string]string{
		"time": experimentStart.Format(time.RFC822Z),
		"host": hostname,
		"user": env.GetOrDefault("USER", "unknown"),
	}
	err = metadata.RecordMap(general, TypeEmpty)
	if err != nil {
		return err
	}

	// Store hardware & OS details.
	err = metadata.RecordMap(GetPlatformMetrics(), TypePlatform)
	if err != nil {
		return err
	}

	return metadata.RecordMap(GetDeviceMetrics(devices), TypeDevices)
}

// recordFlags saves whole flags based configuration in the metadata information.
func recordFlags(metadata Metadata) error {
	flags := conf.GetFlags()
	return metadata.RecordMap(flags, TypeFlags)
}

// recordEnv adds all OS Environment variables that starts with prefix 'prefix'
// in the metadata information
func recordEnv(metadata Metadata, prefix string) error {
	return metadata.RecordMap(env.WithPrefix(prefix), TypeEnviron)
}
