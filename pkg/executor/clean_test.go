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
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func runningGroups() int {
	globalProcessStopper.Lock()
	defer globalProcessStopper.Unlock()
	return len(globalProcessStopper.groups)
}

func TestProcessStopper(t *testing.T) {
	Convey("When long running command is executed", t, func() {
		workDir, err := ioutil.TempDir("", "clean")
		So(err, ShouldBeNil)
		defer os.RemoveAll(workDir)

		l := NewLocalWithConfig(LocalConfig{WorkDir: workDir, Prefix: "test"})
		errs := make(chan error, 1)
		go func() {
			errs <- l.Execute(Command{Name: "sleep", Args: []string{"100"}})
		}()

		for i := 0; i < 100 && runningGroups() == 0; i++ {
			time.Sleep(10 * time.Millisecond)
		}
		So(runningGroups(), ShouldEqual, 1)

		Convey("Stopping all process groups terminates it with SIGTERM", func() {
			globalProcessStopper.stopAll()

			toolErr, ok := IsExternalToolError(<-errs)
			So(ok, ShouldBeTrue)
			So(toolErr.ExitCode, ShouldEqual, -15)
			So(runningGroups(), ShouldEqual, 0)
		})
	})
}
