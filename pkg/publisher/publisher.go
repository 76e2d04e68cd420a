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

// Package publisher mirrors results of fio runs to external databases.
package publisher

import (
	"github.com/hashicorp/go-multierror"

	"github.com/jarulraj/fio/pkg/results"
)

// Publisher sends run results somewhere outside of the result store.
type Publisher interface {
	// Publish sends single run result.
	Publish(result results.RunResult) error
	// Close releases connections.
	Close() error
}

// Nop drops every result.
type Nop struct{}

// Publish implements Publisher.
func (Nop) Publish(results.RunResult) error { return nil }

// Close implements Publisher.
func (Nop) Close() error { return nil }

// Multi publishes to every publisher, even when some of them fail.
type Multi []Publisher

// Publish sends result to all publishers and returns all their errors combined.
func (m Multi) Publish(result results.RunResult) error {
	var errs *multierror.Error
	for _, publisher := range m {
		errs = multierror.Append(errs, publisher.Publish(result))
	}
	return errs.ErrorOrNil()
}

// Close closes all publishers.
func (m Multi) Close() error {
	var errs *multierror.Error
	for _, publisher := range m {
		errs = multierror.Append(errs, publisher.Close())
	}
	return errs.ErrorOrNil()
}
