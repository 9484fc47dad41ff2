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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "manifest.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSplitDocuments(t *testing.T) {
	cases := []struct {
		name      string
		input     string
		wantDocs  int
		expectErr bool
	}{
		{
			name:     "single yaml document",
			input:    "apiVersion: v1\nkind: Pod\n",
			wantDocs: 1,
		},
		{
			name:     "multiple documents",
			input:    "apiVersion: v1\nkind: Pod\n---\napiVersion: v1\nkind: Service\n",
			wantDocs: 2,
		},
		{
			name:     "blank documents dropped",
			input:    "---\n\n---\napiVersion: v1\nkind: Pod\n---\n",
			wantDocs: 1,
		},
		{
			name:     "json document",
			input:    `{"apiVersion":"v1","kind":"Pod"}`,
			wantDocs: 1,
		},
		{
			name:      "empty input",
			input:     "",
			expectErr: true,
		},
		{
			name:      "only separators",
			input:     "---\n---\n",
			expectErr: true,
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			docs, err := splitDocuments([]byte(c.input))
			if c.expectErr {
				if err == nil {
					t.Fatalf("expected error, got %d documents", len(docs))
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(docs) != c.wantDocs {
				t.Fatalf("got %d documents, want %d", len(docs), c.wantDocs)
			}
		})
	}
}

func TestRunConvertYAMLToJSON(t *testing.T) {
	path := writeManifest(t, "apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: settings\ndata:\n  retries: \"3\"\n")
	var buf bytes.Buffer
	if err := runConvert(&buf, path, "json", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"kind":"ConfigMap"`) {
		t.Errorf("output missing kind: %s", out)
	}
	if !strings.Contains(out, `"retries":"3"`) {
		t.Errorf("output missing data: %s", out)
	}
}

func TestRunConvertMultiDocumentYAML(t *testing.T) {
	path := writeManifest(t, strings.Join([]string{
		"apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: first\n",
		"apiVersion: v1\nkind: Secret\nmetadata:\n  name: second\n",
	}, "---\n"))
	var buf bytes.Buffer
	if err := runConvert(&buf, path, "yaml", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "kind: ConfigMap") || !strings.Contains(out, "kind: Secret") {
		t.Errorf("output missing documents: %s", out)
	}
	if !strings.Contains(out, "---") {
		t.Errorf("output missing document separator: %s", out)
	}
}

func TestRunConvertUnknownKind(t *testing.T) {
	path := writeManifest(t, "apiVersion: example.com/v1\nkind: Widget\nmetadata:\n  name: w\n")
	var buf bytes.Buffer
	if err := runConvert(&buf, path, "yaml", false); err == nil {
		t.Fatal("expected error for unregistered kind")
	}
}

func TestRunConvertBadFormat(t *testing.T) {
	path := writeManifest(t, "apiVersion: v1\nkind: Pod\nmetadata:\n  name: p\n")
	var buf bytes.Buffer
	if err := runConvert(&buf, path, "toml", false); err == nil {
		t.Fatal("expected error for unsupported output format")
	}
}

func TestRunConvertSetUID(t *testing.T) {
	path := writeManifest(t, strings.Join([]string{
		"apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: fresh\n",
		"apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: pinned\n  uid: 11111111-2222-3333-4444-555555555555\n",
	}, "---\n"))
	var buf bytes.Buffer
	if err := runConvert(&buf, path, "json", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if strings.Count(out, `"uid":"`) != 2 {
		t.Fatalf("expected a uid on every object: %s", out)
	}
	if !strings.Contains(out, `"uid":"11111111-2222-3333-4444-555555555555"`) {
		t.Errorf("existing uid was not preserved: %s", out)
	}
}

func TestRunConvertWithoutSetUIDLeavesObjectsAlone(t *testing.T) {
	path := writeManifest(t, "apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: fresh\n")
	var buf bytes.Buffer
	if err := runConvert(&buf, path, "json", false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(buf.String(), `"uid"`) {
		t.Errorf("uid should not be assigned without the flag: %s", buf.String())
	}
}
