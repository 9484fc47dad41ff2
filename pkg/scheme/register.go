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

// Package scheme assembles every API group served by this module into a single
// scheme with ready-to-use codecs.
package scheme

import (
	admissionregistrationv1 "github.com/kubewire/kubewire/pkg/apis/admissionregistration/v1"
	apiextensionsv1 "github.com/kubewire/kubewire/pkg/apis/apiextensions/v1"
	appsv1 "github.com/kubewire/kubewire/pkg/apis/apps/v1"
	batchv1 "github.com/kubewire/kubewire/pkg/apis/batch/v1"
	corev1 "github.com/kubewire/kubewire/pkg/apis/core/v1"
	flowcontrolv1 "github.com/kubewire/kubewire/pkg/apis/flowcontrol/v1"
	networkingv1 "github.com/kubewire/kubewire/pkg/apis/networking/v1"
	rbacv1 "github.com/kubewire/kubewire/pkg/apis/rbac/v1"
	resourcev1 "github.com/kubewire/kubewire/pkg/apis/resource/v1"
	"github.com/kubewire/kubewire/pkg/runtime"
	"github.com/kubewire/kubewire/pkg/runtime/serializer"
)

// Scheme holds the registry of every group/version/kind known to this module.
var Scheme = runtime.NewScheme()

// Codecs provides serializers and decoders bound to Scheme.
var Codecs = serializer.NewCodecFactory(Scheme)

var localSchemeBuilder = runtime.SchemeBuilder{
	corev1.AddToScheme,
	appsv1.AddToScheme,
	batchv1.AddToScheme,
	networkingv1.AddToScheme,
	rbacv1.AddToScheme,
	admissionregistrationv1.AddToScheme,
	flowcontrolv1.AddToScheme,
	resourcev1.AddToScheme,
	apiextensionsv1.AddToScheme,
}

// AddToScheme applies every group's registration functions to the given
// scheme. Callers composing their own scheme should use this rather than the
// per-group builders so the full catalog stays in sync.
var AddToScheme = localSchemeBuilder.AddToScheme

func init() {
	if err := AddToScheme(Scheme); err != nil {
		panic(err)
	}
}
