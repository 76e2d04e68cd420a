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

package uuid

import (
	"testing"

	gouuid "github.com/nu7hatch/gouuid"
	. "github.com/smartystreets/goconvey/convey"
)

func TestNew(t *testing.T) {
	Convey("Generated identifiers should be valid and unique", t, func() {
		first, second := New(), New()
		So(first, ShouldNotEqual, second)

		parsed, err := gouuid.ParseHex(first)
		So(err, ShouldBeNil)
		So(parsed.String(), ShouldEqual, first)
	})
}
