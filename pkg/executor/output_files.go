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
	"path/filepath"

	"github.com/pkg/errors"
)

// createExecutorOutputFiles creates `<workDir>/<prefix>_<binary>_*/{stdout,stderr}`.
func createExecutorOutputFiles(command Command, workDir, prefix string) (stdout, stderr *os.File, err error) {
	if len(command.Name) == 0 {
		return nil, nil, errors.New("empty command name")
	}
	commandName := filepath.Base(command.Name)

	if workDir == "" {
		workDir, err = os.Getwd()
		if err != nil {
			return nil, nil, errors.Wrap(err, "failed to get working directory")
		}
	}

	outputDir, err := ioutil.TempDir(workDir, prefix+"_"+commandName+"_")
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create output directory for %s", commandName)
	}
	if err := os.Chmod(outputDir, 0755); err != nil {
		return nil, nil, errors.Wrapf(err, "failed to set permissions of %s", outputDir)
	}

	stdoutFileName := path.Join(outputDir, "stdout")
	stdout, err = os.Create(stdoutFileName)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "failed to create %s", stdoutFileName)
	}

	stderr, err = os.Create(path.Join(outputDir, "stderr"))
	if err != nil {
		stdout.Close()
		os.Remove(stdoutFileName)
		return nil, nil, errors.Wrapf(err, "failed to create stderr file in %s", outputDir)
	}

	return stdout, stderr, nil
}
