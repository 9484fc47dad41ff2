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
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	metav1 "github.com/kubewire/kubewire/pkg/apis/meta/v1"
	"github.com/kubewire/kubewire/pkg/scheme"
	"github.com/kubewire/kubewire/pkg/util/uuid"
	utilyaml "github.com/kubewire/kubewire/pkg/util/yaml"
)

func newConvertCommand() *cobra.Command {
	var filename string
	var output string
	var setUID bool

	cmd := &cobra.Command{
		Use:   "convert -f FILE [-o json|yaml]",
		Short: "Decode manifests through the scheme and re-encode them canonically",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(cmd.OutOrStdout(), filename, output, setUID)
		},
	}
	cmd.Flags().StringVarP(&filename, "filename", "f", "-", "manifest file to convert, or - for stdin")
	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "output format, json or yaml")
	cmd.Flags().BoolVar(&setUID, "set-uid", false, "assign a generated UID to objects that have none")
	return cmd
}

func runConvert(out io.Writer, filename, output string, setUID bool) error {
	contentType, err := contentTypeForFormat(output)
	if err != nil {
		return err
	}
	encoder, ok := scheme.Codecs.EncoderForContentType(contentType)
	if !ok {
		return fmt.Errorf("no encoder for %s", contentType)
	}

	data, err := readInput(filename)
	if err != nil {
		return err
	}

	docs, err := splitDocuments(data)
	if err != nil {
		return err
	}

	decoder := scheme.Codecs.UniversalDeserializer()
	for i, doc := range docs {
		obj, gvk, err := decoder.Decode(doc, nil, nil)
		if err != nil {
			return fmt.Errorf("document %d: %w", i+1, err)
		}
		klog.V(2).InfoS("decoded document", "index", i+1, "groupVersionKind", gvk.String())

		if setUID {
			if accessor, ok := obj.(metav1.Object); ok && accessor.GetUID() == "" {
				accessor.SetUID(uuid.NewUUID())
				klog.V(2).InfoS("assigned uid", "name", accessor.GetName(), "uid", accessor.GetUID())
			}
		}

		if output == "yaml" && i > 0 {
			fmt.Fprintln(out, "---")
		}
		if err := encoder.Encode(obj, out); err != nil {
			return fmt.Errorf("document %d: encoding %s: %w", i+1, gvk.Kind, err)
		}
		if output == "json" {
			fmt.Fprintln(out)
		}
	}
	return nil
}

// splitDocuments splits multi-document YAML (or single-document JSON) input
// into raw documents, dropping empty ones.
func splitDocuments(data []byte) ([][]byte, error) {
	reader := utilyaml.NewYAMLReader(bufio.NewReader(bytes.NewReader(data)))
	var docs [][]byte
	for {
		doc, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("splitting input: %w", err)
		}
		if len(bytes.TrimSpace(doc)) == 0 {
			continue
		}
		docs = append(docs, doc)
	}
	if len(docs) == 0 {
		return nil, fmt.Errorf("no documents found in input")
	}
	return docs, nil
}
