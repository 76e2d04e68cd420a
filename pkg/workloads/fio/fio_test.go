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

package fio

import (
	"errors"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/jarulraj/fio/pkg/device"
	"github.com/jarulraj/fio/pkg/executor"
	"github.com/jarulraj/fio/pkg/executor/mocks"
)

func TestFio(t *testing.T) {
	log.SetLevel(log.ErrorLevel)

	Convey("When using fio with default configuration", t, func() {
		config := DefaultConfig()
		ssd := device.Device{Kind: device.SSD, Path: "/data1/"}

		Convey("Defaults should match reference setup", func() {
			So(config, ShouldResemble, Config{
				Path:       "fio",
				IOEngine:   "sync",
				RandRepeat: 1,
				Name:       "test",
				IODepth:    1,
				Sync:       1,
				Direct:     1,
				Size:       "64G",
				Runtime:    10 * time.Second,
				Output:     "fio.txt",
				MaxJobs:    1,
				FileName:   "fio",
			})
			So(config.Validate(), ShouldBeNil)
		})

		Convey("Command should contain swept and fixed parameters in order", func() {
			command := config.Command("randwrite", ssd, 4096)
			So(command.Name, ShouldEqual, "fio")
			So(command.Args, ShouldResemble, []string{
				"--readwrite=randwrite",
				"--filename=/data1/fio",
				"--blocksize=4096",
				"--ioengine=sync",
				"--randrepeat=1",
				"--name=test",
				"--iodepth=1",
				"--sync=1",
				"--direct=1",
				"--size=64G",
				"--runtime=10",
				"--output=fio.txt",
				"--max-jobs=1",
			})
		})

		Convey("Invalid configuration should be rejected", func() {
			invalid := config
			invalid.IODepth = 0
			So(invalid.Validate(), ShouldNotBeNil)

			invalid = config
			invalid.Runtime = 0
			So(invalid.Validate(), ShouldNotBeNil)

			invalid = config
			invalid.Output = ""
			So(invalid.Validate(), ShouldNotBeNil)

			Convey("And nothing should be executed", func() {
				mockedExecutor := new(mocks.Executor)
				So(New(mockedExecutor, invalid).Run("write", ssd, 1024), ShouldNotBeNil)
				So(New(mockedExecutor, config).Run("write", ssd, 0), ShouldNotBeNil)
				mockedExecutor.AssertNotCalled(t, "Execute")
			})
		})

		Convey("Run should execute built command", func() {
			mockedExecutor := new(mocks.Executor)
			fio := New(mockedExecutor, config)
			So(fio.Name(), ShouldEqual, "fio")
			So(fio.Config(), ShouldResemble, config)

			mockedExecutor.On("Execute", config.Command("write", ssd, 1024)).Return(nil).Once()
			So(fio.Run("write", ssd, 1024), ShouldBeNil)

			Convey("And pass failures through", func() {
				toolErr := &executor.ExternalToolError{Command: config.Command("write", ssd, 4096), ExitCode: 1}
				mockedExecutor.On("Execute", config.Command("write", ssd, 4096)).Return(toolErr).Once()

				err := fio.Run("write", ssd, 4096)
				So(err, ShouldEqual, toolErr)
			})

			So(mockedExecutor.AssertExpectations(t), ShouldBeTrue)
		})

		Convey("Other errors should be returned too", func() {
			mockedExecutor := new(mocks.Executor)
			mockedExecutor.On("Execute", config.Command("write", ssd, 1024)).Return(errors.New("boom")).Once()
			So(New(mockedExecutor, config).Run("write", ssd, 1024), ShouldNotBeNil)
		})
	})
}
