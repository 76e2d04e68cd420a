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

import (
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

const testAppName = "testAppName"

var customFlag = NewStringFlag("custom_arg", "help", "default")

func clearEnv() {
	// Clear all environment variables in context of that test.
	logLevelFlag.clear()
	customFlag.clear()
}

func TestConf(t *testing.T) {
	Convey("While using Conf pkg", t, func() {
		clearEnv()
		defer clearEnv()

		SetAppName(testAppName)
		SetHelp("fio-eval help\n")

		Convey("Name and help should match to specified one", func() {
			So(AppName(), ShouldEqual, testAppName)
			So(app.Help, ShouldEqual, "fio-eval help\n")
		})

		Convey("Log level can be fetched", func() {
			So(LogLevel(), ShouldEqual, logrus.ErrorLevel)
		})

		Convey("Log level can be fetched from env", func() {
			// Default one.
			So(LogLevel(), ShouldEqual, logrus.ErrorLevel)

			os.Setenv(logLevelFlag.envName(), "debug")

			err := ParseEnv()
			So(err, ShouldBeNil)

			// Should be from environment.
			So(LogLevel(), ShouldEqual, logrus.DebugLevel)
		})

		Convey("Unknown log level falls back to the default one", func() {
			os.Setenv(logLevelFlag.envName(), "verbose")

			err := ParseEnv()
			So(err, ShouldBeNil)
			So(LogLevel(), ShouldEqual, logrus.ErrorLevel)
		})

		Convey("When some custom argument is defined", func() {
			Convey("When we not defined any environment variable we should have default value after parse", func() {
				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, customFlag.defaultValue)
			})

			Convey("When we define custom environment variable we should have custom value after parse", func() {
				customValue := "customContent"
				os.Setenv(customFlag.envName(), customValue)

				err := ParseEnv()
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, customValue)
			})

			Convey("Command line arguments take precedence over environment", func() {
				os.Setenv(customFlag.envName(), "fromEnv")

				err := ParseArgs([]string{"--custom_arg=fromArgs"})
				So(err, ShouldBeNil)
				So(customFlag.Value(), ShouldEqual, "fromArgs")
			})

			Convey("Unknown arguments are reported", func() {
				err := ParseArgs([]string{"--no_such_flag=1"})
				So(err, ShouldNotBeNil)
			})
		})

		Convey("Config dump should contain exported environment variables", func() {
			So(ParseEnv(), ShouldBeNil)

			dump := DumpConfig()
			So(dump, ShouldStartWith, "# Export are values.\nset -o allexport\n")
			So(dump, ShouldEndWith, "set +o allexport")
			So(dump, ShouldContainSubstring, "FIOEVAL_CUSTOM_ARG=default\n")
			So(dump, ShouldContainSubstring, "FIOEVAL_METADATA_DB=none\n")
			So(dump, ShouldNotContainSubstring, "FIOEVAL_HELP")

			Convey("Values can be overwritten with a map", func() {
				dump := DumpConfigMap(map[string]string{"custom_arg": "other"})
				So(dump, ShouldContainSubstring, "FIOEVAL_CUSTOM_ARG=other\n")
				So(strings.Count(dump, "FIOEVAL_CUSTOM_ARG="), ShouldEqual, 1)
			})
		})
	})
}
