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
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/jarulraj/fio/pkg/utils/fs"
)

// tailLineCount is number of output lines logged and carried in ExternalToolError.
const tailLineCount = 3

// readOutputTail returns last lines of stdout and stderr. Read errors are put in place of the lines.
func readOutputTail(osFs afero.Fs, stdoutFileName, stderrFileName string, lineCount int) (stdoutTail, stderrTail string) {
	stdoutTail, err := fs.ReadTail(osFs, stdoutFileName, lineCount)
	if err != nil {
		stdoutTail = fmt.Sprintf("%v", err)
	}
	stderrTail, err = fs.ReadTail(osFs, stderrFileName, lineCount)
	if err != nil {
		stderrTail = fmt.Sprintf("%v", err)
	}
	return stdoutTail, stderrTail
}

// LogSuccessfulExecution logs where output of finished command was stored.
func LogSuccessfulExecution(command Command, executorName string, stdoutFileName, stderrFileName string) {
	id := rand.Intn(9999)
	logrus.Debugf("%4d Process %q on %q has ended", id, command.String(), executorName)
	logrus.Debugf("%4d Stdout stored in %q", id, stdoutFileName)
	logrus.Debugf("%4d Stderr stored in %q", id, stderrFileName)
}

// LogUnsucessfulExecution logs the output files, their tails and exit code of failed command.
func LogUnsucessfulExecution(command Command, executorName string, stdoutFileName, stderrFileName string, stdoutTail, stderrTail string, exitCode int) {
	id := rand.Intn(9999)
	logrus.Errorf("%4d Command %q might have ended prematurely on %q", id, command.String(), executorName)
	logrus.Errorf("%4d Stdout stored in %q", id, stdoutFileName)
	logrus.Errorf("%4d Stderr stored in %q", id, stderrFileName)
	logrus.Errorf("%4d Last %d lines of stdout", id, tailLineCount)
	ErrorLogLines(strings.NewReader(stdoutTail), id)
	logrus.Errorf("%4d Last %d lines of stderr", id, tailLineCount)
	ErrorLogLines(strings.NewReader(stderrTail), id)
	logrus.Errorf("%4d Exit code: %d", id, exitCode)
}

// ErrorLogLines takes reader and some ID and prints each line
// from reader in a separate log.Errorf("%4d <line>", id, line).
// Logrus does not support multi-line logs.
func ErrorLogLines(r io.Reader, logID int) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		logrus.Errorf("%4d %s", logID, scanner.Text())
	}
	err := scanner.Err()
	if err != nil {
		logrus.Errorf("%4d Printing from reader failed: %q", logID, err.Error())
	}
}
