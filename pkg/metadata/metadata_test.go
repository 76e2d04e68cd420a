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
	"testing"
	"time"

	"github.com/jaypipes/ghw"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/jarulraj/fio/pkg/conf"
	"github.com/jarulraj/fio/pkg/device"
)

func TestNop(t *testing.T) {
	Convey("While using in-memory metadata", t, func() {
		metadata, err := NewDefault("sweep-1")
		So(err, ShouldBeNil)
		So(metadata, ShouldHaveSameTypeAs, &Nop{})

		So(metadata.Record("host", "bench01", TypeEmpty), ShouldBeNil)
		So(metadata.RecordMap(map[string]string{"time": "now"}, TypeEmpty), ShouldBeNil)

		Convey("Records of one kind should be merged", func() {
			recorded, err := metadata.GetByKind(TypeEmpty)
			So(err, ShouldBeNil)
			So(recorded, ShouldResemble, map[string]string{"host": "bench01", "time": "now"})
		})

		Convey("Unknown kind is an error", func() {
			_, err := metadata.GetByKind(TypePlatform)
			So(err, ShouldNotBeNil)
		})

		Convey("Clear should remove everything", func() {
			So(metadata.Clear(), ShouldBeNil)
			_, err := metadata.GetByKind(TypeEmpty)
			So(err, ShouldNotBeNil)
		})
	})
}

func TestRecordRuntimeEnv(t *testing.T) {
	logrus.SetLevel(logrus.ErrorLevel)

	Convey("When runtime environment is recorded", t, func() {
		os.Setenv(conf.EnvironmentPrefix+"_METADATA_TEST", "1")
		defer os.Unsetenv(conf.EnvironmentPrefix + "_METADATA_TEST")

		metadata := NewNop()
		start := time.Date(2017, 1, 2, 3, 4, 5, 0, time.UTC)
		tmp := device.Device{Kind: device.SSD, Path: os.TempDir()}

		So(RecordRuntimeEnv(metadata, start, []device.Device{tmp}), ShouldBeNil)

		Convey("Flags should be stored", func() {
			flags, err := metadata.GetByKind(TypeFlags)
			So(err, ShouldBeNil)
			So(flags["metadata_db"], ShouldEqual, "none")
		})

		Convey("Prefixed environment should be stored", func() {
			environ, err := metadata.GetByKind(TypeEnviron)
			So(err, ShouldBeNil)
			So(environ[conf.EnvironmentPrefix+"_METADATA_TEST"], ShouldEqual, "1")
		})

		Convey("Host and start time should be stored", func() {
			hostname, _ := os.Hostname()
			general, err := metadata.GetByKind(TypeEmpty)
			So(err, ShouldBeNil)
			So(general["host"], ShouldEqual, hostname)
			So(general["time"], ShouldEqual, start.Format(time.RFC822Z))
			So(general["user"], ShouldNotBeEmpty)
		})

		Convey("Platform and device keys should be present", func() {
			platform, err := metadata.GetByKind(TypePlatform)
			So(err, ShouldBeNil)
			So(platform, ShouldContainKey, CPUModelNameKey)
			So(platform, ShouldContainKey, KernelVersionKey)

			devices, err := metadata.GetByKind(TypeDevices)
			So(err, ShouldBeNil)
			So(devices["SSD_path"], ShouldEqual, os.TempDir())
		})
	})
}

func TestDeviceLookup(t *testing.T) {
	Convey("When looking up mount of device directory", t, func() {
		partitions := []disk.PartitionStat{
			{Device: "/dev/sda1", Mountpoint: "/"},
			{Device: "/dev/sdb1", Mountpoint: "/data"},
			{Device: "/dev/sdc1", Mountpoint: "/data1"},
			{Device: "/dev/pmem0", Mountpoint: "/mnt/pmfs"},
		}

		Convey("The longest containing mountpoint should win", func() {
			partition, ok := mountOf(partitions, "/data1/")
			So(ok, ShouldBeTrue)
			So(partition.Device, ShouldEqual, "/dev/sdc1")

			partition, ok = mountOf(partitions, "/data/")
			So(ok, ShouldBeTrue)
			So(partition.Device, ShouldEqual, "/dev/sdb1")

			partition, ok = mountOf(partitions, "/home/user")
			So(ok, ShouldBeTrue)
			So(partition.Device, ShouldEqual, "/dev/sda1")
		})

		Convey("No partitions means nothing is found", func() {
			_, ok := mountOf(nil, "/data/")
			So(ok, ShouldBeFalse)
		})

		Convey("Drive should be found by disk or partition name", func() {
			sdb := &ghw.Disk{Name: "sdb", Partitions: []*ghw.Partition{{Name: "sdb1"}}}
			block := &ghw.BlockInfo{Disks: []*ghw.Disk{{Name: "sda"}, sdb}}

			So(driveOf(block, "/dev/sdb1"), ShouldEqual, sdb)
			So(driveOf(block, "/dev/sdb"), ShouldEqual, sdb)
			So(driveOf(block, "/dev/nvme0n1"), ShouldBeNil)
			So(driveOf(nil, "/dev/sdb1"), ShouldBeNil)
		})
	})
}
