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

package publisher

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/jarulraj/fio/pkg/conf"
	"github.com/jarulraj/fio/pkg/metadata"
)

var publishResultsFlag = conf.NewSliceFlag("publish_results", "Databases every run result is mirrored to: influxdb, cassandra")

// NewDefault returns publisher sending results to every database listed in publish_results flag.
func NewDefault(experimentID string) (Publisher, error) {
	return New(experimentID, publishResultsFlag.Value())
}

// New returns publisher for given database names. No names gives Nop.
func New(experimentID string, databases []string) (Publisher, error) {
	publishers := Multi{}
	var errs *multierror.Error

	for _, database := range databases {
		switch database {
		case "influxdb":
			influx, err := NewInfluxDB(experimentID, metadata.DefaultInfluxDBConfig())
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			publishers = append(publishers, influx)
		case "cassandra":
			cassandra, err := NewCassandra(experimentID, metadata.DefaultCassandraConfig())
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			publishers = append(publishers, cassandra)
		default:
			errs = multierror.Append(errs, errors.Errorf("unsupported database for results: %s", database))
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		publishers.Close()
		return nil, err
	}
	if len(publishers) == 0 {
		return Nop{}, nil
	}
	return publishers, nil
}
