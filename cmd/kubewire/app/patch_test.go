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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunPatchMerge(t *testing.T) {
	path := writeManifest(t, "apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: settings\ndata:\n  retries: \"3\"\n  timeout: \"30s\"\n")
	var buf bytes.Buffer
	err := runPatch(&buf, path, `{"data":{"retries":"5","timeout":null}}`, "yaml")
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `retries: "5"`)
	assert.NotContains(t, out, "timeout", "a null patch value must remove the key")
}

func TestRunPatchYAMLPatch(t *testing.T) {
	path := writeManifest(t, "apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: settings\n")
	var buf bytes.Buffer
	err := runPatch(&buf, path, "metadata:\n  labels:\n    app: web\n", "json")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"app":"web"`)
}

func TestRunPatchRejectsMultipleDocuments(t *testing.T) {
	path := writeManifest(t, "apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: a\n---\napiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: b\n")
	var buf bytes.Buffer
	err := runPatch(&buf, path, `{}`, "yaml")
	assert.Error(t, err)
}

func TestRunPatchRejectsUndecodableResult(t *testing.T) {
	path := writeManifest(t, "apiVersion: v1\nkind: ConfigMap\nmetadata:\n  name: settings\n")
	var buf bytes.Buffer
	err := runPatch(&buf, path, `{"kind":"Widget","apiVersion":"example.com/v1"}`, "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no longer decodes")
}
