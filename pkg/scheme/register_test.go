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

package scheme

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	appsv1 "github.com/kubewire/kubewire/pkg/apis/apps/v1"
	corev1 "github.com/kubewire/kubewire/pkg/apis/core/v1"
	metav1 "github.com/kubewire/kubewire/pkg/apis/meta/v1"
	"github.com/kubewire/kubewire/pkg/runtime"
	"github.com/kubewire/kubewire/pkg/runtime/schema"
	"github.com/kubewire/kubewire/pkg/runtime/serializer"
	"github.com/kubewire/kubewire/pkg/util/uuid"
)

func TestEveryGroupRegistered(t *testing.T) {
	expected := []schema.GroupVersionKind{
		{Group: "", Version: "v1", Kind: "Pod"},
		{Group: "", Version: "v1", Kind: "Service"},
		{Group: "", Version: "v1", Kind: "ConfigMap"},
		{Group: "apps", Version: "v1", Kind: "Deployment"},
		{Group: "apps", Version: "v1", Kind: "StatefulSet"},
		{Group: "apps", Version: "v1", Kind: "DaemonSet"},
		{Group: "batch", Version: "v1", Kind: "Job"},
		{Group: "batch", Version: "v1", Kind: "CronJob"},
		{Group: "networking.k8s.io", Version: "v1", Kind: "Ingress"},
		{Group: "networking.k8s.io", Version: "v1", Kind: "NetworkPolicy"},
		{Group: "rbac.authorization.k8s.io", Version: "v1", Kind: "Role"},
		{Group: "rbac.authorization.k8s.io", Version: "v1", Kind: "ClusterRoleBinding"},
		{Group: "admissionregistration.k8s.io", Version: "v1", Kind: "ValidatingWebhookConfiguration"},
		{Group: "admissionregistration.k8s.io", Version: "v1", Kind: "ValidatingAdmissionPolicy"},
		{Group: "flowcontrol.apiserver.k8s.io", Version: "v1", Kind: "FlowSchema"},
		{Group: "flowcontrol.apiserver.k8s.io", Version: "v1", Kind: "PriorityLevelConfiguration"},
		{Group: "resource.k8s.io", Version: "v1", Kind: "ResourceClaim"},
		{Group: "resource.k8s.io", Version: "v1", Kind: "ResourceSlice"},
		{Group: "apiextensions.k8s.io", Version: "v1", Kind: "CustomResourceDefinition"},
	}
	for _, gvk := range expected {
		if !Scheme.Recognizes(gvk) {
			t.Errorf("scheme does not recognize %s", gvk.String())
		}
	}
}

func TestListKindsRegisteredAlongsideItems(t *testing.T) {
	// The meta types registered into every group version have no list forms.
	metaKinds := map[string]bool{
		"Status":          true,
		"WatchEvent":      true,
		"APIVersions":     true,
		"APIGroup":        true,
		"APIResourceList": true,
		"APIGroupList":    true,
	}
	for gvk := range Scheme.AllKnownTypes() {
		if strings.HasSuffix(gvk.Kind, "List") || strings.HasSuffix(gvk.Kind, "Options") || metaKinds[gvk.Kind] {
			continue
		}
		listKind := gvk.GroupVersion().WithKind(gvk.Kind + "List")
		if !Scheme.Recognizes(listKind) {
			t.Errorf("%s has no matching list kind", gvk.String())
		}
	}
}

func TestDecodeManifestPerGroup(t *testing.T) {
	cases := []struct {
		manifest string
		wantGVK  schema.GroupVersionKind
		wantType interface{}
	}{
		{
			manifest: `{"apiVersion":"v1","kind":"Pod","metadata":{"name":"busybox"}}`,
			wantGVK:  schema.GroupVersionKind{Version: "v1", Kind: "Pod"},
			wantType: &corev1.Pod{},
		},
		{
			manifest: "apiVersion: apps/v1\nkind: Deployment\nmetadata:\n  name: web\n",
			wantGVK:  schema.GroupVersionKind{Group: "apps", Version: "v1", Kind: "Deployment"},
			wantType: &appsv1.Deployment{},
		},
		{
			manifest: "apiVersion: resource.k8s.io/v1\nkind: ResourceClaim\nmetadata:\n  name: gpu\n",
			wantGVK:  schema.GroupVersionKind{Group: "resource.k8s.io", Version: "v1", Kind: "ResourceClaim"},
		},
		{
			manifest: `{"apiVersion":"apiextensions.k8s.io/v1","kind":"CustomResourceDefinition","metadata":{"name":"widgets.example.com"}}`,
			wantGVK:  schema.GroupVersionKind{Group: "apiextensions.k8s.io", Version: "v1", Kind: "CustomResourceDefinition"},
		},
	}
	for _, c := range cases {
		obj, gvk, err := Codecs.UniversalDeserializer().Decode([]byte(c.manifest), nil, nil)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.wantGVK.Kind, err)
			continue
		}
		if gvk == nil || *gvk != c.wantGVK {
			t.Errorf("%s: got gvk %v", c.wantGVK.Kind, gvk)
		}
		if c.wantType != nil && reflect.TypeOf(obj) != reflect.TypeOf(c.wantType) {
			t.Errorf("%s: got type %T, want %T", c.wantGVK.Kind, obj, c.wantType)
		}
	}
}

func TestEncodeStampsTypeMeta(t *testing.T) {
	deployment := &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{Name: "web", Namespace: "prod"},
	}
	var buf bytes.Buffer
	if err := Codecs.JSONEncoder().Encode(deployment, &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `"apiVersion":"apps/v1"`) {
		t.Errorf("encoded object missing apiVersion: %s", out)
	}
	if !strings.Contains(out, `"kind":"Deployment"`) {
		t.Errorf("encoded object missing kind: %s", out)
	}
	// The caller's object must come back with its TypeMeta untouched.
	if deployment.TypeMeta.Kind != "" || deployment.TypeMeta.APIVersion != "" {
		t.Errorf("encode mutated the caller's TypeMeta: %#v", deployment.TypeMeta)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	replicas := int32(2)
	in := &appsv1.Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "web",
			Namespace: "prod",
			UID:       uuid.NewUUID(),
			Labels:    map[string]string{"app": "web"},
		},
		Spec: appsv1.DeploymentSpec{
			Replicas: &replicas,
			Selector: &metav1.LabelSelector{MatchLabels: map[string]string{"app": "web"}},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{Labels: map[string]string{"app": "web"}},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{{Name: "web", Image: "nginx:1.27"}},
				},
			},
		},
	}
	for _, encode := range []struct {
		name    string
		encoder runtime.Encoder
	}{
		{name: "json", encoder: Codecs.JSONEncoder()},
		{name: "yaml", encoder: Codecs.YAMLEncoder()},
	} {
		var buf bytes.Buffer
		if err := encode.encoder.Encode(in, &buf); err != nil {
			t.Fatalf("%s: encode: %v", encode.name, err)
		}
		obj, _, err := Codecs.UniversalDeserializer().Decode(buf.Bytes(), nil, nil)
		if err != nil {
			t.Fatalf("%s: decode: %v", encode.name, err)
		}
		out, ok := obj.(*appsv1.Deployment)
		if !ok {
			t.Fatalf("%s: got type %T", encode.name, obj)
		}
		// Decoding stamps TypeMeta from the wire, clear it before comparing.
		out.TypeMeta = metav1.TypeMeta{}
		if diff := cmp.Diff(in, out); diff != "" {
			t.Errorf("%s: round trip changed the object (-want +got):\n%s", encode.name, diff)
		}
	}
}

func TestDecodeToVersionedObject(t *testing.T) {
	manifest := []byte(`{"apiVersion":"apps/v1","kind":"Deployment","metadata":{"name":"web"}}`)
	obj, gvk, err := serializer.DecodeToVersionedObject(Codecs, manifest, schema.GroupVersion{Group: "apps", Version: "v1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := obj.(*appsv1.Deployment); !ok {
		t.Fatalf("got type %T", obj)
	}
	if gvk.Kind != "Deployment" {
		t.Errorf("got kind %q", gvk.Kind)
	}

	_, _, err = serializer.DecodeToVersionedObject(Codecs, manifest, schema.GroupVersion{Group: "batch", Version: "v1"})
	if !runtime.IsNotRegisteredError(err) {
		t.Errorf("expected not registered error for mismatched group, got %v", err)
	}
}
