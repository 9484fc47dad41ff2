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

package v1

import (
	"reflect"
	"testing"

	"github.com/davecgh/go-spew/spew"

	corev1 "github.com/kubewire/kubewire/pkg/apis/core/v1"
	metav1 "github.com/kubewire/kubewire/pkg/apis/meta/v1"
	"github.com/kubewire/kubewire/pkg/util/intstr"
)

func int32Ptr(i int32) *int32 { return &i }

func newTestDeployment() *Deployment {
	maxUnavailable := intstr.FromString("25%")
	maxSurge := intstr.FromInt32(2)
	return &Deployment{
		ObjectMeta: metav1.ObjectMeta{
			Name:      "web",
			Namespace: "prod",
			Labels:    map[string]string{"app": "web"},
		},
		Spec: DeploymentSpec{
			Replicas: int32Ptr(3),
			Selector: &metav1.LabelSelector{
				MatchLabels: map[string]string{"app": "web"},
				MatchExpressions: []metav1.LabelSelectorRequirement{{
					Key:      "tier",
					Operator: metav1.LabelSelectorOpIn,
					Values:   []string{"frontend"},
				}},
			},
			Template: corev1.PodTemplateSpec{
				ObjectMeta: metav1.ObjectMeta{
					Labels: map[string]string{"app": "web"},
				},
				Spec: corev1.PodSpec{
					Containers: []corev1.Container{{
						Name:  "web",
						Image: "nginx:1.27",
					}},
				},
			},
			Strategy: DeploymentStrategy{
				Type: RollingUpdateDeploymentStrategyType,
				RollingUpdate: &RollingUpdateDeployment{
					MaxUnavailable: &maxUnavailable,
					MaxSurge:       &maxSurge,
				},
			},
			RevisionHistoryLimit: int32Ptr(10),
		},
		Status: DeploymentStatus{
			ObservedGeneration: 4,
			Replicas:           3,
			Conditions: []DeploymentCondition{{
				Type:   DeploymentAvailable,
				Status: corev1.ConditionTrue,
				Reason: "MinimumReplicasAvailable",
			}},
		},
	}
}

func TestDeploymentDeepCopy(t *testing.T) {
	in := newTestDeployment()
	out := in.DeepCopy()
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("copy differs from original:\n%s\nvs\n%s", spew.Sdump(in), spew.Sdump(out))
	}

	// Mutating the original must leave the copy untouched.
	*in.Spec.Replicas = 7
	in.ObjectMeta.Labels["app"] = "changed"
	in.Spec.Selector.MatchLabels["app"] = "changed"
	in.Spec.Selector.MatchExpressions[0].Values[0] = "backend"
	*in.Spec.Strategy.RollingUpdate.MaxSurge = intstr.FromInt32(5)
	in.Spec.Template.Spec.Containers[0].Image = "nginx:1.28"
	in.Status.Conditions[0].Status = corev1.ConditionFalse

	if *out.Spec.Replicas != 3 {
		t.Errorf("replicas aliased: got %d", *out.Spec.Replicas)
	}
	if out.ObjectMeta.Labels["app"] != "web" {
		t.Errorf("labels aliased: got %q", out.ObjectMeta.Labels["app"])
	}
	if out.Spec.Selector.MatchLabels["app"] != "web" {
		t.Errorf("selector labels aliased: got %q", out.Spec.Selector.MatchLabels["app"])
	}
	if got := out.Spec.Selector.MatchExpressions[0].Values[0]; got != "frontend" {
		t.Errorf("selector expression values aliased: got %q", got)
	}
	if got := out.Spec.Strategy.RollingUpdate.MaxSurge.IntValue(); got != 2 {
		t.Errorf("maxSurge aliased: got %d", got)
	}
	if got := out.Spec.Template.Spec.Containers[0].Image; got != "nginx:1.27" {
		t.Errorf("container image aliased: got %q", got)
	}
	if out.Status.Conditions[0].Status != corev1.ConditionTrue {
		t.Errorf("conditions aliased: got %q", out.Status.Conditions[0].Status)
	}
}

func TestDeploymentDeepCopyObject(t *testing.T) {
	in := newTestDeployment()
	obj := in.DeepCopyObject()
	out, ok := obj.(*Deployment)
	if !ok {
		t.Fatalf("expected *Deployment, got %T", obj)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatal("copy differs from original")
	}
}

func TestStatefulSetDeepCopy(t *testing.T) {
	partition := int32Ptr(1)
	in := &StatefulSet{
		ObjectMeta: metav1.ObjectMeta{Name: "db"},
		Spec: StatefulSetSpec{
			Replicas:    int32Ptr(3),
			ServiceName: "db",
			UpdateStrategy: StatefulSetUpdateStrategy{
				Type: RollingUpdateStatefulSetStrategyType,
				RollingUpdate: &RollingUpdateStatefulSetStrategy{
					Partition: partition,
				},
			},
			Ordinals: &StatefulSetOrdinals{Start: 2},
		},
	}
	out := in.DeepCopy()
	if !reflect.DeepEqual(in, out) {
		t.Fatal("copy differs from original")
	}

	*in.Spec.UpdateStrategy.RollingUpdate.Partition = 9
	in.Spec.Ordinals.Start = 5
	if got := *out.Spec.UpdateStrategy.RollingUpdate.Partition; got != 1 {
		t.Errorf("partition aliased: got %d", got)
	}
	if out.Spec.Ordinals.Start != 2 {
		t.Errorf("ordinals aliased: got %d", out.Spec.Ordinals.Start)
	}
}

func TestDaemonSetListDeepCopy(t *testing.T) {
	in := &DaemonSetList{
		Items: []DaemonSet{{
			ObjectMeta: metav1.ObjectMeta{Name: "agent"},
			Spec: DaemonSetSpec{
				Selector: &metav1.LabelSelector{
					MatchLabels: map[string]string{"app": "agent"},
				},
			},
		}},
	}
	out := in.DeepCopy()
	in.Items[0].Spec.Selector.MatchLabels["app"] = "changed"
	if got := out.Items[0].Spec.Selector.MatchLabels["app"]; got != "agent" {
		t.Errorf("list items aliased: got %q", got)
	}
}
