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
	"testing"

	"github.com/gocql/gocql"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/jarulraj/fio/pkg/conf"
)

func TestCassandraDB(t *testing.T) {
	Convey("While using metadata package", t, func() {
		cassandraDefConf := DefaultCassandraConfig()
		Convey("Cassandra default config shall have default settings", func() {
			So(cassandraDefConf.Address, ShouldEqual, conf.CassandraAddress.Value())
			So(cassandraDefConf.Username, ShouldEqual, conf.CassandraUsername.Value())
			So(cassandraDefConf.Password, ShouldEqual, conf.CassandraPassword.Value())
			So(cassandraDefConf.Port, ShouldEqual, 9042)
			So(cassandraDefConf.KeyspaceName, ShouldEqual, "fioeval")
		})

		Convey("Cluster config shall follow the settings", func() {
			config := cassandraDefConf
			config.Username = "user"
			config.Password = "secret"
			config.SslEnabled = true
			config.SslCAPath = "/etc/ca.pem"

			cluster := ClusterConfig(config)
			So(cluster.Hosts, ShouldResemble, []string{config.Address})
			So(cluster.Port, ShouldEqual, 9042)
			So(cluster.ProtoVersion, ShouldEqual, 4)
			So(cluster.Consistency, ShouldEqual, gocql.LocalOne)
			So(cluster.DisableInitialHostLookup, ShouldBeTrue)
			So(cluster.Authenticator, ShouldResemble, gocql.PasswordAuthenticator{Username: "user", Password: "secret"})
			So(cluster.SslOpts, ShouldNotBeNil)
			So(cluster.SslOpts.CaPath, ShouldEqual, "/etc/ca.pem")
		})

		Convey("Credentials are not used when password is missing", func() {
			config := cassandraDefConf
			config.Username = "user"
			So(ClusterConfig(config).Authenticator, ShouldBeNil)
			So(ClusterConfig(config).SslOpts, ShouldBeNil)
		})
	})
}
