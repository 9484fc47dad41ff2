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
	"strings"

	"github.com/spf13/cobra"

	"github.com/kubewire/kubewire/pkg/scheme"
	"github.com/kubewire/kubewire/pkg/util/sets"
)

func newKindsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "kinds",
		Short: "List every registered group/version/kind",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKinds(cmd.OutOrStdout())
		},
	}
	return cmd
}

func runKinds(out io.Writer) error {
	lines := sets.NewString()
	for gvk := range scheme.Scheme.AllKnownTypes() {
		// The option kinds registered alongside every group (GetOptions,
		// ListOptions, ...) clutter the output without naming a manifest kind.
		if strings.HasSuffix(gvk.Kind, "Options") {
			continue
		}
		group := gvk.Group
		if group == "" {
			group = "core"
		}
		lines.Insert(fmt.Sprintf("%s/%s %s", group, gvk.Version, gvk.Kind))
	}
	for _, line := range lines.List() {
		fmt.Fprintln(out, line)
	}
	return nil
}
