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
	"time"

	"github.com/gocql/gocql"
	"github.com/pkg/errors"

	"github.com/jarulraj/fio/pkg/metadata"
	"github.com/jarulraj/fio/pkg/results"
)

const createResultsTable = `CREATE TABLE IF NOT EXISTS fio_results (
	experiment_id text,
	mode text,
	device text,
	block_size int,
	bandwidth double,
	iops double,
	time timestamp,
	PRIMARY KEY ((experiment_id), mode, device, block_size)
);`

const insertResult = `INSERT INTO fio_results (experiment_id, mode, device, block_size, bandwidth, iops, time) VALUES (?, ?, ?, ?, ?, ?, ?)`

// Cassandra stores every run result as a row of fio_results table.
type Cassandra struct {
	experimentID string
	session      *gocql.Session
}

// NewCassandra connects to Cassandra described by config and creates results table.
func NewCassandra(experimentID string, config metadata.CassandraConfig) (*Cassandra, error) {
	session, err := metadata.NewCassandraSession(config)
	if err != nil {
		return nil, err
	}
	if err := session.Query(createResultsTable).Exec(); err != nil {
		session.Close()
		return nil, errors.Wrap(err, "cannot create fio_results table")
	}
	return &Cassandra{experimentID: experimentID, session: session}, nil
}

// resultRow returns values bound to insertResult.
func resultRow(experimentID string, result results.RunResult, now time.Time) []interface{} {
	return []interface{}{
		experimentID,
		result.Mode,
		result.Device.Kind.String(),
		result.BlockSize,
		result.Bandwidth.Float64(),
		result.IOPS.Float64(),
		now,
	}
}

// Publish implements Publisher.
func (c *Cassandra) Publish(result results.RunResult) error {
	err := c.session.Query(insertResult, resultRow(c.experimentID, result, time.Now())...).Exec()
	return errors.Wrapf(err, "cannot publish result %s/%s/%d to cassandra", result.Mode, result.Device.Kind, result.BlockSize)
}

// Close implements Publisher.
func (c *Cassandra) Close() error {
	c.session.Close()
	return nil
}
