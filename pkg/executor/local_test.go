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
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLocal(t *testing.T) {
	log.SetLevel(log.ErrorLevel)

	Convey("While using Local executor", t, func() {
		workDir, err := ioutil.TempDir("", "local")
		So(err, ShouldBeNil)
		defer os.RemoveAll(workDir)

		l := NewLocalWithConfig(LocalConfig{WorkDir: workDir, Prefix: "test"})
		So(l.Name(), ShouldEqual, "Local")

		Convey("When command `echo output` is executed", func() {
			err := l.Execute(Command{Name: "echo", Args: []string{"output"}})

			Convey("There should be no error", func() {
				So(err, ShouldBeNil)
			})

			Convey("Its stdout should be stored in output directory", func() {
				matches, globErr := filepath.Glob(filepath.Join(workDir, "test_echo_*", "stdout"))
				So(globErr, ShouldBeNil)
				So(matches, ShouldHaveLength, 1)

				content, readErr := ioutil.ReadFile(matches[0])
				So(readErr, ShouldBeNil)
				So(string(content), ShouldEqual, "output\n")
			})
		})

		Convey("When command exits with nonzero code", func() {
			command := Command{Name: "sh", Args: []string{"-c", "echo first; echo second >&2; exit 3"}}
			err := l.Execute(command)

			Convey("ExternalToolError with exit code and output should be returned", func() {
				So(err, ShouldNotBeNil)
				toolErr, ok := IsExternalToolError(err)
				So(ok, ShouldBeTrue)
				So(toolErr.ExitCode, ShouldEqual, 3)
				So(toolErr.Command, ShouldResemble, command)
				So(toolErr.Output, ShouldContainSubstring, "first")
				So(toolErr.Output, ShouldContainSubstring, "second")
			})

			Convey("Wrapped error still carries the cause", func() {
				_, ok := IsExternalToolError(errors.Wrap(err, "sweep failed"))
				So(ok, ShouldBeTrue)
			})
		})

		Convey("When command is killed by a signal, exit code should be negated signal number", func() {
			err := l.Execute(Command{Name: "sh", Args: []string{"-c", "kill -9 $$"}})
			toolErr, ok := IsExternalToolError(err)
			So(ok, ShouldBeTrue)
			So(toolErr.ExitCode, ShouldEqual, -9)
		})

		Convey("When binary does not exist, exit code should be -1", func() {
			err := l.Execute(Command{Name: "/nonexistent/fio"})
			toolErr, ok := IsExternalToolError(err)
			So(ok, ShouldBeTrue)
			So(toolErr.ExitCode, ShouldEqual, -1)
		})
	})
}

func TestCommand(t *testing.T) {
	Convey("Command should be rendered as shell line", t, func() {
		So(Command{Name: "fio", Args: []string{"--readwrite=write", "--name=test"}}.String(),
			ShouldEqual, "fio --readwrite=write --name=test")
		So(Command{Name: "sh", Args: []string{"-c", "exit 1"}}.String(),
			ShouldEqual, `sh -c "exit 1"`)
	})

	Convey("Other errors are not external tool errors", t, func() {
		_, ok := IsExternalToolError(errors.New("boom"))
		So(ok, ShouldBeFalse)
	})
}

func TestExitCodeOf(t *testing.T) {
	Convey("Missing process state should give exit code -1", t, func() {
		So(exitCodeOf(nil), ShouldEqual, -1)
	})

	Convey("Finished process should give its exit status", t, func() {
		cmd := exec.Command("sh", "-c", "exit 5")
		So(cmd.Run(), ShouldNotBeNil)
		So(exitCodeOf(cmd.ProcessState), ShouldEqual, 5)
	})
}
