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

import "fmt"

// State of a sweep.
type State int

// Sweep moves Idle -> Cleaning -> (Running -> Collecting)* -> Done, or to Failed
// from Cleaning, Running or Collecting.
const (
	Idle State = iota
	Cleaning
	Running
	Collecting
	Done
	Failed
)

var stateNames = map[State]string{
	Idle:       "idle",
	Cleaning:   "cleaning",
	Running:    "running",
	Collecting: "collecting",
	Done:       "done",
	Failed:     "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}
	return fmt.Sprintf("State(%d)", int(s))
}
