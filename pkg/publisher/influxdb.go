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
	"fmt"
	"strconv"
	"time"

	client "github.com/influxdata/influxdb1-client/v2"
	"github.com/pkg/errors"

	"github.com/jarulraj/fio/pkg/metadata"
	"github.com/jarulraj/fio/pkg/results"
)

const influxMeasurement = "fio"

// InfluxDB writes every run result as a point of "fio" measurement.
type InfluxDB struct {
	experimentID string
	dbName       string
	session      client.Client
}

// NewInfluxDB connects to InfluxDB described by config.
func NewInfluxDB(experimentID string, config metadata.InfluxDBConfig) (*InfluxDB, error) {
	session, err := metadata.NewInfluxDBClient(config)
	if err != nil {
		return nil, err
	}
	return &InfluxDB{experimentID: experimentID, dbName: config.DBName, session: session}, nil
}

// resultPoint converts result to a point tagged with experiment and swept parameters.
func resultPoint(experimentID string, result results.RunResult, now time.Time) (*client.Point, error) {
	tags := map[string]string{
		"experiment_id": experimentID,
		"mode":          result.Mode,
		"device":        result.Device.Kind.String(),
		"block_size":    strconv.Itoa(result.BlockSize),
	}
	fields := map[string]interface{}{
		"bandwidth":        result.Bandwidth.Float64(),
		"iops":             result.IOPS.Float64(),
		"bandwidth_parsed": result.Bandwidth.Parsed,
		"iops_parsed":      result.IOPS.Parsed,
	}
	point, err := client.NewPoint(influxMeasurement, tags, fields, now)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create point for %s/%s/%d", result.Mode, result.Device.Kind, result.BlockSize)
	}
	return point, nil
}

// Publish implements Publisher.
func (i *InfluxDB) Publish(result results.RunResult) error {
	batchPoints, err := client.NewBatchPoints(client.BatchPointsConfig{Database: i.dbName})
	if err != nil {
		return errors.Wrap(err, "creation of batch points for InfluxDB failed")
	}

	point, err := resultPoint(i.experimentID, result, time.Now())
	if err != nil {
		return err
	}
	batchPoints.AddPoint(point)

	if err := i.session.Write(batchPoints); err != nil {
		return errors.Wrapf(err, "cannot publish result to influxdb %s", i.dbName)
	}
	return nil
}

// Close implements Publisher.
func (i *InfluxDB) Close() error {
	return i.session.Close()
}

// String is used in logs.
func (i *InfluxDB) String() string {
	return fmt.Sprintf("InfluxDB(%s)", i.dbName)
}
