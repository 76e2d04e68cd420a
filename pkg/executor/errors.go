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
	"fmt"

	"github.com/pkg/errors"
)

// ExternalToolError is returned when external tool exits with nonzero code, is killed or
// cannot be started at all (ExitCode is -1 then). Killed processes report negated signal number.
type ExternalToolError struct {
	Command  Command
	ExitCode int
	// Output holds the tail of captured stdout and stderr.
	Output string
}

func (e *ExternalToolError) Error() string {
	return fmt.Sprintf("command %q failed with exit code %d", e.Command.String(), e.ExitCode)
}

// IsExternalToolError checks whether err (or its cause) is an *ExternalToolError.
func IsExternalToolError(err error) (*ExternalToolError, bool) {
	toolErr, ok := errors.Cause(err).(*ExternalToolError)
	return toolErr, ok
}
