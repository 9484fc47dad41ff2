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

	"github.com/kubewire/kubewire/pkg/api/resource"
	corev1 "github.com/kubewire/kubewire/pkg/apis/core/v1"
	metav1 "github.com/kubewire/kubewire/pkg/apis/meta/v1"
)

func TestResourceClaimDeepCopy(t *testing.T) {
	adminAccess := true
	in := &ResourceClaim{
		ObjectMeta: metav1.ObjectMeta{Name: "gpu-claim", Namespace: "ml"},
		Spec: ResourceClaimSpec{
			Devices: DeviceClaim{
				Requests: []DeviceRequest{{
					Name:            "gpu",
					DeviceClassName: "gpu.example.com",
					Selectors: []DeviceSelector{{
						CEL: &CELDeviceSelector{
							Expression: `device.attributes["gpu.example.com"].memory >= quantity("8Gi")`,
						},
					}},
					AllocationMode: DeviceAllocationModeExactCount,
					Count:          2,
					AdminAccess:    &adminAccess,
				}},
				Constraints: []DeviceConstraint{{
					Requests:       []string{"gpu"},
					MatchAttribute: func() *FullyQualifiedName { n := FullyQualifiedName("gpu.example.com/model"); return &n }(),
				}},
			},
		},
		Status: ResourceClaimStatus{
			Allocation: &AllocationResult{
				Devices: DeviceAllocationResult{
					Results: []DeviceRequestAllocationResult{{
						Request: "gpu",
						Driver:  "gpu.example.com",
						Pool:    "node-1",
						Device:  "gpu-0",
					}},
				},
				NodeSelector: &corev1.NodeSelector{
					NodeSelectorTerms: []corev1.NodeSelectorTerm{{
						MatchExpressions: []corev1.NodeSelectorRequirement{{
							Key:      "kubernetes.io/hostname",
							Operator: corev1.NodeSelectorOpIn,
							Values:   []string{"node-1"},
						}},
					}},
				},
			},
			ReservedFor: []ResourceClaimConsumerReference{{
				Resource: "pods",
				Name:     "trainer",
				UID:      "7f0a6f8e",
			}},
		},
	}

	out := in.DeepCopy()
	if !reflect.DeepEqual(in, out) {
		t.Fatal("copy differs from original")
	}

	*in.Spec.Devices.Requests[0].AdminAccess = false
	in.Spec.Devices.Requests[0].Selectors[0].CEL.Expression = "true"
	*in.Spec.Devices.Constraints[0].MatchAttribute = "gpu.example.com/other"
	in.Status.Allocation.Devices.Results[0].Device = "gpu-1"
	in.Status.Allocation.NodeSelector.NodeSelectorTerms[0].MatchExpressions[0].Values[0] = "node-2"
	in.Status.ReservedFor[0].Name = "other"

	if !*out.Spec.Devices.Requests[0].AdminAccess {
		t.Error("adminAccess aliased")
	}
	if got := out.Spec.Devices.Requests[0].Selectors[0].CEL.Expression; got == "true" {
		t.Error("CEL selector aliased")
	}
	if got := *out.Spec.Devices.Constraints[0].MatchAttribute; got != "gpu.example.com/model" {
		t.Errorf("matchAttribute aliased: got %q", got)
	}
	if got := out.Status.Allocation.Devices.Results[0].Device; got != "gpu-0" {
		t.Errorf("allocation results aliased: got %q", got)
	}
	if got := out.Status.Allocation.NodeSelector.NodeSelectorTerms[0].MatchExpressions[0].Values[0]; got != "node-1" {
		t.Errorf("node selector aliased: got %q", got)
	}
	if got := out.Status.ReservedFor[0].Name; got != "trainer" {
		t.Errorf("reservedFor aliased: got %q", got)
	}
}

func TestResourceSliceDeepCopy(t *testing.T) {
	memory := resource.MustParse("80Gi")
	model := "h100"
	in := &ResourceSlice{
		ObjectMeta: metav1.ObjectMeta{Name: "node-1-gpus"},
		Spec: ResourceSliceSpec{
			Driver:   "gpu.example.com",
			Pool:     ResourcePool{Name: "node-1", Generation: 3, ResourceSliceCount: 1},
			NodeName: "node-1",
			Devices: []Device{{
				Name: "gpu-0",
				Basic: &BasicDevice{
					Attributes: map[QualifiedName]DeviceAttribute{
						"model": {StringValue: &model},
					},
					Capacity: map[QualifiedName]DeviceCapacity{
						"memory": {Value: memory},
					},
				},
			}},
		},
	}

	out := in.DeepCopy()
	if !reflect.DeepEqual(in, out) {
		t.Fatal("copy differs from original")
	}

	*in.Spec.Devices[0].Basic.Attributes["model"].StringValue = "a100"
	in.Spec.Devices[0].Basic.Capacity["memory"] = DeviceCapacity{Value: resource.MustParse("40Gi")}

	if got := *out.Spec.Devices[0].Basic.Attributes["model"].StringValue; got != "h100" {
		t.Errorf("attributes aliased: got %q", got)
	}
	if got := out.Spec.Devices[0].Basic.Capacity["memory"].Value; got.String() != "80Gi" {
		t.Errorf("capacity aliased: got %s", got.String())
	}
}

func TestResourceClaimDeepCopyObject(t *testing.T) {
	in := &ResourceClaim{ObjectMeta: metav1.ObjectMeta{Name: "claim"}}
	obj := in.DeepCopyObject()
	if _, ok := obj.(*ResourceClaim); !ok {
		t.Fatalf("expected *ResourceClaim, got %T", obj)
	}
}
