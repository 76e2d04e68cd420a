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

package experiment

import (
	"fmt"
	"os"
	"path"
)

// CreateExperimentDir creates unique directory for sweep logs in the current working directory
// and opens a log file in it.
func CreateExperimentDir(uuid, appName string) (experimentDirectory string, logFile *os.File, err error) {
	startingDirectory, err := os.Getwd()
	if err != nil {
		return "", nil, err
	}

	experimentDirectory = path.Join(startingDirectory, fmt.Sprintf("%s_%s", path.Base(appName), uuid))
	err = os.MkdirAll(experimentDirectory, 0777)
	if err != nil {
		return "", nil, err
	}

	logFile, err = os.OpenFile(path.Join(experimentDirectory, "master.log"), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return "", nil, err
	}

	return experimentDirectory, logFile, nil
}
