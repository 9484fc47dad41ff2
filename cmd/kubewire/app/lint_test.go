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
	"strings"
	"testing"
)

func TestRunLintCleanManifest(t *testing.T) {
	path := writeManifest(t, "apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: settings\n  namespace: prod\n")
	var buf bytes.Buffer
	findings, err := runLint(&buf, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if findings != 0 {
		t.Fatalf("expected no findings, got %d:\n%s", findings, buf.String())
	}
}

func TestRunLintUnknownKind(t *testing.T) {
	path := writeManifest(t, "apiVersion: example.com/v1\nkind: Widget\nmetadata:\n  name: w\n")
	var buf bytes.Buffer
	findings, err := runLint(&buf, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if findings == 0 {
		t.Fatal("expected a finding for an unregistered kind")
	}
	if !strings.Contains(buf.String(), "unknown kind") {
		t.Errorf("report missing unknown kind message: %s", buf.String())
	}
}

func TestRunLintUnknownField(t *testing.T) {
	path := writeManifest(t, "apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: settings\nbogusField: true\n")
	var buf bytes.Buffer
	findings, err := runLint(&buf, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if findings == 0 {
		t.Fatal("expected a finding for an unknown field")
	}
	if !strings.Contains(buf.String(), "strict decoding") {
		t.Errorf("report missing strict decoding message: %s", buf.String())
	}
}

func TestRunLintCountsEveryDocument(t *testing.T) {
	path := writeManifest(t, strings.Join([]string{
		"apiVersion: example.com/v1\nkind: Widget\nmetadata:\n  name: a\n",
		"apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: ok\n",
		"apiVersion: example.com/v1\nkind: Gadget\nmetadata:\n  name: b\n",
	}, "---\n"))
	var buf bytes.Buffer
	findings, err := runLint(&buf, path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if findings != 2 {
		t.Fatalf("expected 2 findings, got %d:\n%s", findings, buf.String())
	}
}

func TestLintMetadata(t *testing.T) {
	cases := []struct {
		name         string
		manifest     string
		wantFindings int
		wantContains string
	}{
		{
			name:     "valid metadata",
			manifest: "metadata:\n  name: good-name\n  namespace: prod\n  labels:\n    app: web\n",
		},
		{
			name:         "uppercase name",
			manifest:     "metadata:\n  name: BadName\n",
			wantFindings: 1,
			wantContains: "metadata.name",
		},
		{
			name:         "invalid namespace",
			manifest:     "metadata:\n  name: ok\n  namespace: has.dots\n",
			wantFindings: 1,
			wantContains: "metadata.namespace",
		},
		{
			name:         "bad label key and value",
			manifest:     "metadata:\n  name: ok\n  labels:\n    \"bad key\": \"bad value!\"\n",
			wantFindings: 2,
			wantContains: "label",
		},
		{
			name:         "bad annotation key",
			manifest:     "metadata:\n  name: ok\n  annotations:\n    \"spaced out\": fine\n",
			wantFindings: 1,
			wantContains: "annotation key",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			msgs := lintMetadata([]byte(c.manifest))
			if len(msgs) != c.wantFindings {
				t.Fatalf("got %d findings, want %d: %v", len(msgs), c.wantFindings, msgs)
			}
			if c.wantContains != "" && !strings.Contains(strings.Join(msgs, "\n"), c.wantContains) {
				t.Errorf("findings missing %q: %v", c.wantContains, msgs)
			}
		})
	}
}
