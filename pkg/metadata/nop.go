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

package metadata

import "fmt"

// Nop keeps metadata in memory only. It is used when no database is configured.
type Nop struct {
	kinds map[string]map[string]string
}

// NewNop returns empty in-memory metadata.
func NewNop() *Nop {
	return &Nop{kinds: map[string]map[string]string{}}
}

// Record stores a key and value.
func (n *Nop) Record(key, value, kind string) error {
	return n.RecordMap(map[string]string{key: value}, kind)
}

// RecordMap merges metadata into given kind.
func (n *Nop) RecordMap(metadata map[string]string, kind string) error {
	if n.kinds[kind] == nil {
		n.kinds[kind] = map[string]string{}
	}
	for key, value := range metadata {
		n.kinds[kind][key] = value
	}
	return nil
}

// GetByKind returns copy of recorded kind.
func (n *Nop) GetByKind(kind string) (map[string]string, error) {
	recorded, ok := n.kinds[kind]
	if !ok {
		return nil, fmt.Errorf("no metadata of %q kind", kind)
	}
	metadata := make(map[string]string, len(recorded))
	for key, value := range recorded {
		metadata[key] = value
	}
	return metadata, nil
}

// Clear forgets everything.
func (n *Nop) Clear() error {
	n.kinds = map[string]map[string]string{}
	return nil
}
