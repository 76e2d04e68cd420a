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

package env

import (
	"os"
	"strings"
)

// GetOrDefault returns the environment variable or default string.
func GetOrDefault(env string, defaultStr string) string {
	if env == "" {
		return defaultStr
	}

	fetchedEnv := os.Getenv(env)

	if fetchedEnv == "" {
		return defaultStr
	}

	return fetchedEnv
}

// WithPrefix returns environment variables whose names start with prefix.
// An empty prefix returns the whole environment.
func WithPrefix(prefix string) map[string]string {
	variables := map[string]string{}
	for _, entry := range os.Environ() {
		fields := strings.SplitN(entry, "=", 2)
		if len(fields) != 2 || !strings.HasPrefix(fields[0], prefix) {
			continue
		}
		variables[fields[0]] = fields[1]
	}
	return variables
}
