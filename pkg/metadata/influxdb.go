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
	"fmt"
	"strings"
	"time"

	client "github.com/influxdata/influxdb1-client/v2"
	"github.com/pkg/errors"

	"github.com/jarulraj/fio/pkg/conf"
)

const (
	influxMetadata = "metadata"
)

// InfluxDBConfig holds configuration for InfluxDB
type InfluxDBConfig struct {
	HTTPConfig     client.HTTPConfig
	DBName         string
	CreateDatabase bool
}

// InfluxDB is a helper struct which keeps the InfluxDB session alive,
// holds the active configuration and the experiment id to tag the metadata with.
type InfluxDB struct {
	experimentID string
	session      client.Client
	config       InfluxDBConfig
}

// DefaultInfluxDBConfig applies the InfluxDB settings from the command line flags and
// environment variables.
func DefaultInfluxDBConfig() InfluxDBConfig {
	return InfluxDBConfig{
		DBName:         conf.InfluxDBName.Value(),
		CreateDatabase: conf.InfluxDBCreateDatabase.Value(),
		HTTPConfig: client.HTTPConfig{
			Addr:               fmt.Sprintf("http://%s:%d", conf.InfluxDBAddress.Value(), conf.InfluxDBPort.Value()),
			Password:           conf.InfluxDBPassword.Value(),
			Username:           conf.InfluxDBUsername.Value(),
			InsecureSkipVerify: conf.InfluxDBInsecureSkipVerify.Value(),
		},
	}
}

// NewInfluxDBClient connects to InfluxDB and creates database when configured.
func NewInfluxDBClient(config InfluxDBConfig) (client.Client, error) {
	session, err := client.NewHTTPClient(config.HTTPConfig)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create influx client for %s", config.HTTPConfig.Addr)
	}

	if config.CreateDatabase {
		response, err := session.Query(client.Query{
			Command:  fmt.Sprintf("CREATE DATABASE %s", config.DBName),
			Database: ""})
		if err != nil {
			session.Close()
			return nil, errors.Wrapf(err, "cannot create influx database %s", config.DBName)
		}
		if response.Error() != nil {
			session.Close()
			return nil, errors.Wrapf(response.Error(), "response contains error for database %s", config.DBName)
		}
	}

	return session, nil
}

// NewInfluxDB returns the Metadata helper from an experiment id and configuration.
func NewInfluxDB(experimentID string, config InfluxDBConfig) (Metadata, error) {
	session, err := NewInfluxDBClient(config)
	if err != nil {
		return nil, errors.Wrapf(err, "experiment %s", experimentID)
	}

	return &InfluxDB{
		experimentID: experimentID,
		config:       config,
		session:      session,
	}, nil
}

// metadataPoint converts metadata of kind to a point tagged with experiment id.
func metadataPoint(experimentID string, metadata map[string]string, kind string, now time.Time) (*client.Point, error) {
	tags := map[string]string{"kind": kind, "experiment_id": experimentID}

	fields := make(map[string]interface{})
	// Copy metadata into proper structure
	for key := range metadata {
		fields[key] = metadata[key]
	}
	point, err := client.NewPoint(influxMetadata, tags, fields, now)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot create new point, kind %q", kind)
	}
	return point, nil
}

// influxDBStoreMap writes metadata to the database with tags attached to it.
// It writes values (metadata) one by one/row by row. No aggregation is being done.
func influxDBStoreMap(m *InfluxDB, metadata map[string]string, kind string) error {
	// InfluxDB points must have at least one field.
	if len(metadata) == 0 {
		return nil
	}

	batchPoints, err := client.NewBatchPoints(client.BatchPointsConfig{Database: m.config.DBName})
	if err != nil {
		return errors.Wrapf(err, "creation of batch points for InfluxDB failed for metadata kind %q", kind)
	}

	point, err := metadataPoint(m.experimentID, metadata, kind, time.Now())
	if err != nil {
		return err
	}
	batchPoints.AddPoint(point)

	err = m.session.Write(batchPoints)
	if err != nil {
		return errors.Wrapf(err, "cannot publish metadata of kind %q", kind)
	}
	return nil
}

// Record stores a key and value and associates with the experiment id.
func (m *InfluxDB) Record(key, value, kind string) error {
	metadata := map[string]string{}
	metadata[key] = value
	return influxDBStoreMap(m, metadata, kind)
}

// RecordMap stores a key and value map and associates with the experiment id.
func (m *InfluxDB) RecordMap(metadata map[string]string, kind string) error {
	return influxDBStoreMap(m, metadata, kind)
}

// GetByKind retrive single kind from the database. If duplicates are found then
// the last one is returned.
func (m *InfluxDB) GetByKind(kind string) (map[string]string, error) {
	var metadata = make(map[string]string)
	// There are two tags currently and query gets rid of them by groupping.
	cmd := fmt.Sprintf("SELECT last(*) FROM %s WHERE experiment_id='%s' AND kind='%s' GROUP BY experiment_id,kind", influxMetadata, m.experimentID, kind)

	response, err := m.session.Query(client.Query{Command: cmd, Database: m.config.DBName})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to query influxdb for experiment %s", m.experimentID)
	}

	if response.Error() != nil {
		return nil, errors.Wrapf(response.Error(), "response from influxdb contained error for experiment %s", m.experimentID)
	}

	for _, result := range response.Results {
		for _, row := range result.Series {
			for _, value := range row.Values {
				for idx, cell := range value {
					// Index 0 is the timestamp. The results may be sparse thus skip empty cells.
					if cell != nil && idx != 0 {
						column := strings.Replace(row.Columns[idx], "last_", "", 1)
						metadata[column] = fmt.Sprintf("%v", cell)
					}
				}
			}
		}
	}

	return metadata, nil
}

// Clear deletes all metadata entries associated with the current experiment id.
func (m *InfluxDB) Clear() error {
	cmd := fmt.Sprintf("DROP SERIES FROM %s WHERE experiment_id ='%s'", influxMetadata, m.experimentID)

	response, err := m.session.Query(client.Query{Command: cmd, Database: m.config.DBName})
	if err != nil {
		return errors.Wrapf(err, "failed to query influxdb for experiment %s", m.experimentID)
	}

	if response.Error() != nil {
		return errors.Wrapf(response.Error(), "response from influxdb contained error for experiment %s", m.experimentID)
	}
	return nil
}

// Close closes the client.
func (m *InfluxDB) Close() error {
	return m.session.Close()
}
