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

package executor

import (
	"io/ioutil"
	"os"
	"path"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

const (
	//expectedFileMode is a string equivalent of 0644
	expectedFileMode = "-rw-r--r--"
	//expectedDirMode is a string equivalent of 0755
	expectedDirMode = "drwxr-xr-x"
)

func TestCreateExecutorOutputFiles(t *testing.T) {
	Convey("I should be able to create files and folders for run details", t, func() {
		workDir, err := ioutil.TempDir("", "executor")
		So(err, ShouldBeNil)
		defer os.RemoveAll(workDir)

		stdout, stderr, err := createExecutorOutputFiles(Command{Name: "/usr/bin/fio"}, workDir, "test")
		So(err, ShouldBeNil)
		So(stdout, ShouldNotBeNil)
		So(stderr, ShouldNotBeNil)
		defer stdout.Close()
		defer stderr.Close()

		Convey("Which should be placed in directory named after the binary", func() {
			parentDir := path.Dir(stdout.Name())
			So(path.Dir(parentDir), ShouldEqual, workDir)
			So(strings.HasPrefix(path.Base(parentDir), "test_fio_"), ShouldBeTrue)
			So(path.Dir(stderr.Name()), ShouldEqual, parentDir)
		})

		Convey("Which should have got valid modes.", func() {
			eStat, err := stderr.Stat()
			So(err, ShouldBeNil)
			So(eStat.Mode().String(), ShouldEqual, expectedFileMode)

			oStat, err := stdout.Stat()
			So(err, ShouldBeNil)
			So(oStat.Mode().String(), ShouldEqual, expectedFileMode)

			pDirStat, err := os.Stat(path.Dir(stdout.Name()))
			So(err, ShouldBeNil)
			So(pDirStat.Mode().String(), ShouldEqual, expectedDirMode)
		})
	})

	Convey("Empty command should not create anything", t, func() {
		_, _, err := createExecutorOutputFiles(Command{}, "", "test")
		So(err, ShouldNotBeNil)
	})
}
