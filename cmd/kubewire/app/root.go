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

// Package app implements the kubewire command line tool: decoding, linting,
// and patching Kubernetes manifests through the aggregate scheme.
package app

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/kubewire/kubewire/pkg/runtime"
)

// NewKubewireCommand creates the root command with all subcommands attached.
func NewKubewireCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kubewire",
		Short: "kubewire decodes, converts, lints, and patches Kubernetes manifests",
		Long: `kubewire is a manifest toolbox built on a self-contained catalog of
Kubernetes API types. It decodes JSON or multi-document YAML through a typed
scheme, re-encodes canonically, validates metadata, and applies merge patches.`,
		SilenceUsage: true,
	}

	klogFlags := flag.NewFlagSet("klog", flag.ExitOnError)
	klog.InitFlags(klogFlags)
	cmd.PersistentFlags().AddGoFlagSet(klogFlags)

	cmd.AddCommand(newConvertCommand())
	cmd.AddCommand(newLintCommand())
	cmd.AddCommand(newKindsCommand())
	cmd.AddCommand(newPatchCommand())
	cmd.AddCommand(newVersionCommand())
	return cmd
}

// readInput returns the content of path, or stdin when path is "-".
func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// contentTypeForFormat maps the -o flag to a serializer media type.
func contentTypeForFormat(format string) (string, error) {
	switch format {
	case "json":
		return runtime.ContentTypeJSON, nil
	case "yaml":
		return runtime.ContentTypeYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (expected json or yaml)", format)
	}
}
