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

package conf

import (
	"fmt"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"gopkg.in/alecthomas/kingpin.v2"
)

func TestStringListValue(t *testing.T) {
	Convey("While using StringListVar", t, func() {
		strListValue := &StringListVar{}

		Convey("It should implement kingpin.Value interfaces", func() {
			So(strListValue, ShouldImplement, (*kingpin.Value)(nil))
			So(strListValue, ShouldImplement, (*kingpin.Getter)(nil))
		})

		Convey("When parsing string inputs it should append them to string slice", func() {
			So(strListValue.IsCumulative(), ShouldBeTrue)

			So(strListValue.Set("A"), ShouldBeNil)
			So(strListValue.Get(), ShouldResemble, []string{"A"})

			So(strListValue.Set("B"), ShouldBeNil)
			So(strListValue.Get(), ShouldResemble, []string{"A", "B"})

			So(strListValue.Set(fmt.Sprintf("C%sD", stringListDelimiter)), ShouldBeNil)
			So(strListValue.Get(), ShouldResemble, []string{"A", "B", "C", "D"})

			So(strListValue.String(), ShouldEqual, strings.Join([]string{"A", "B", "C", "D"}, ","))
		})

		Convey("Empty items and surrounding spaces should be dropped", func() {
			So(strListValue.Set(" SSD=/data1/ ,, HDD=/data/"), ShouldBeNil)
			So(strListValue.Get(), ShouldResemble, []string{"SSD=/data1/", "HDD=/data/"})
		})
	})
}
