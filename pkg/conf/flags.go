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

package conf

import "time"

// Metadata and results database flags shared by metadata stores and result publishers.
var (
	// DefaultMetadataDB selects metadata backend: "cassandra", "influxdb" or "none".
	DefaultMetadataDB = NewStringFlag("metadata_db", "Database used to store sweep metadata: cassandra, influxdb or none", "none")

	// CassandraAddress represents cassandra address flag.
	CassandraAddress = NewStringFlag("cassandra_addr", "Address of Cassandra DB endpoint", "127.0.0.1")
	// CassandraPort is the cassandra native transport port.
	CassandraPort              = NewIntFlag("cassandra_port", "Port of Cassandra DB endpoint", 9042)
	CassandraKeyspaceName      = NewStringFlag("cassandra_keyspace_name", "Keyspace used to store metadata and results", "fioeval")
	CassandraCreateKeyspace    = NewBoolFlag("cassandra_create_keyspace", "Create keyspace and tables when missing", true)
	CassandraUsername          = NewStringFlag("cassandra_username", "The user name used to authenticate with Cassandra", "")
	CassandraPassword          = NewStringFlag("cassandra_password", "The password used to authenticate with Cassandra", "")
	CassandraConnectionTimeout = NewDurationFlag("cassandra_connection_timeout", "Initial connection timeout", 10*time.Second)
	CassandraTimeout           = NewDurationFlag("cassandra_timeout", "Query timeout", 10*time.Second)
	CassandraIgnorePeerAddr    = NewBoolFlag("cassandra_ignore_peer_addr", "Use initial address instead of the one announced by peers", false)
	CassandraInitialHostLookup = NewBoolFlag("cassandra_initial_host_lookup", "Lookup ring information on connect", false)
	CassandraSslEnabled        = NewBoolFlag("cassandra_ssl", "Connect to Cassandra over TLS", false)
	CassandraSslHostValidation = NewBoolFlag("cassandra_ssl_host_validation", "Validate Cassandra host certificate", false)
	CassandraSslCAPath         = NewStringFlag("cassandra_ssl_ca_path", "Path to the CA certificate", "")
	CassandraSslCertPath       = NewStringFlag("cassandra_ssl_cert_path", "Path to the client certificate", "")
	CassandraSslKeyPath        = NewStringFlag("cassandra_ssl_key_path", "Path to the client key", "")

	// InfluxDBAddress represents InfluxDB host flag.
	InfluxDBAddress            = NewStringFlag("influxdb_addr", "Address of InfluxDB endpoint", "127.0.0.1")
	InfluxDBPort               = NewIntFlag("influxdb_port", "Port of InfluxDB HTTP API", 8086)
	InfluxDBName               = NewStringFlag("influxdb_db_name", "InfluxDB database name", "fioeval")
	InfluxDBUsername           = NewStringFlag("influxdb_user", "InfluxDB user name", "")
	InfluxDBPassword           = NewStringFlag("influxdb_password", "InfluxDB password", "")
	InfluxDBInsecureSkipVerify = NewBoolFlag("influxdb_insecure_skip_verify", "Skip TLS certificate verification", false)
	InfluxDBCreateDatabase     = NewBoolFlag("influxdb_create_database", "Create database when missing", true)
)
