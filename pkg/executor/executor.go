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
	"strconv"
	"strings"
)

// Command is an external program with its ordered arguments.
type Command struct {
	Name string
	Args []string
}

// String renders the command as a shell-like line.
func (c Command) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	for _, part := range append([]string{c.Name}, c.Args...) {
		if part == "" || strings.ContainsAny(part, " \t\"'") {
			part = strconv.Quote(part)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, " ")
}

// Executor runs given command synchronously, to completion.
type Executor interface {
	// Execute runs command and returns *ExternalToolError when it did not exit cleanly.
	Execute(command Command) error
	// Name returns user-friendly name of executor.
	Name() string
}
