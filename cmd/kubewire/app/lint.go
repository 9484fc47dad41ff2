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
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	metav1 "github.com/kubewire/kubewire/pkg/apis/meta/v1"
	"github.com/kubewire/kubewire/pkg/runtime"
	"github.com/kubewire/kubewire/pkg/scheme"
	"github.com/kubewire/kubewire/pkg/util/validation"
	utilyaml "github.com/kubewire/kubewire/pkg/util/yaml"
)

func newLintCommand() *cobra.Command {
	var filename string

	cmd := &cobra.Command{
		Use:   "lint -f FILE",
		Short: "Strict-decode manifests and report unknown kinds, unknown fields, and metadata violations",
		RunE: func(cmd *cobra.Command, args []string) error {
			findings, err := runLint(cmd.OutOrStdout(), filename)
			if err != nil {
				return err
			}
			if findings > 0 {
				return fmt.Errorf("%d problem(s) found", findings)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "no problems found")
			return nil
		},
	}
	cmd.Flags().StringVarP(&filename, "filename", "f", "-", "manifest file to lint, or - for stdin")
	return cmd
}

func runLint(out io.Writer, filename string) (int, error) {
	data, err := readInput(filename)
	if err != nil {
		return 0, err
	}
	docs, err := splitDocuments(data)
	if err != nil {
		return 0, err
	}

	decoder := scheme.Codecs.StrictDeserializer()
	findings := 0
	report := func(doc int, format string, args ...interface{}) {
		findings++
		fmt.Fprintf(out, "document %d: %s\n", doc, fmt.Sprintf(format, args...))
	}

	for i, doc := range docs {
		docNum := i + 1
		_, gvk, err := decoder.Decode(doc, nil, nil)
		switch {
		case err == nil:
		case runtime.IsNotRegisteredError(err):
			if gvk != nil {
				report(docNum, "unknown kind %s", gvk.String())
			} else {
				report(docNum, "unknown kind: %v", err)
			}
			continue
		case runtime.IsStrictDecodingError(err):
			report(docNum, "strict decoding: %v", err)
		default:
			report(docNum, "decode failed: %v", err)
			continue
		}
		if gvk != nil {
			klog.V(2).InfoS("linting document", "index", docNum, "groupVersionKind", gvk.String())
		}

		for _, msg := range lintMetadata(doc) {
			report(docNum, "%s", msg)
		}
	}
	return findings, nil
}

// manifestEnvelope picks the metadata stanza out of an arbitrary manifest so
// names and labels can be checked without knowing the kind.
type manifestEnvelope struct {
	Metadata metav1.ObjectMeta `json:"metadata"`
}

func lintMetadata(doc []byte) []string {
	var envelope manifestEnvelope
	if err := utilyaml.Unmarshal(doc, &envelope); err != nil {
		return []string{fmt.Sprintf("metadata not parseable: %v", err)}
	}

	var msgs []string
	meta := envelope.Metadata
	if meta.Name != "" {
		for _, msg := range validation.IsDNS1123Subdomain(meta.Name) {
			msgs = append(msgs, fmt.Sprintf("metadata.name %q: %s", meta.Name, msg))
		}
	}
	if meta.Namespace != "" {
		for _, msg := range validation.IsDNS1123Label(meta.Namespace) {
			msgs = append(msgs, fmt.Sprintf("metadata.namespace %q: %s", meta.Namespace, msg))
		}
	}
	for key, value := range meta.Labels {
		for _, msg := range validation.IsQualifiedName(key) {
			msgs = append(msgs, fmt.Sprintf("label key %q: %s", key, msg))
		}
		for _, msg := range validation.IsValidLabelValue(value) {
			msgs = append(msgs, fmt.Sprintf("label %q value %q: %s", key, value, msg))
		}
	}
	for key := range meta.Annotations {
		for _, msg := range validation.IsQualifiedName(key) {
			msgs = append(msgs, fmt.Sprintf("annotation key %q: %s", key, msg))
		}
	}
	return msgs
}
