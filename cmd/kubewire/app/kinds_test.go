/*
Copyright 2024 The Kubewire Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package app

import (
	"bytes"
	"sort"
	"strings"
	"testing"
)

func TestRunKinds(t *testing.T) {
	var buf bytes.Buffer
	if err := runKinds(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if !sort.StringsAreSorted(lines) {
		t.Error("output is not sorted")
	}
	got := make(map[string]bool, len(lines))
	for _, line := range lines {
		got[line] = true
		if strings.HasSuffix(line, "Options") {
			t.Errorf("option kind leaked into output: %s", line)
		}
	}
	for _, want := range []string{
		"core/v1 Pod",
		"apps/v1 Deployment",
		"batch/v1 CronJob",
		"rbac.authorization.k8s.io/v1 ClusterRole",
		"resource.k8s.io/v1 ResourceSlice",
		"apiextensions.k8s.io/v1 CustomResourceDefinition",
	} {
		if !got[want] {
			t.Errorf("missing %q in output", want)
		}
	}
}
