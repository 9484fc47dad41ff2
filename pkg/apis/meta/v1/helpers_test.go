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

	"github.com/kubewire/kubewire/pkg/labels"
	"github.com/kubewire/kubewire/pkg/selection"
)

func TestLabelSelectorAsSelector(t *testing.T) {
	matchLabels := map[string]string{"foo": "bar"}
	matchExpressions := []LabelSelectorRequirement{{
		Key:      "baz",
		Operator: LabelSelectorOpIn,
		Values:   []string{"qux", "norf"},
	}}
	mustRequirement := func(key string, op selection.Operator, vals ...string) labels.Requirement {
		req, err := labels.NewRequirement(key, op, vals)
		if err != nil {
			t.Fatal(err)
		}
		return *req
	}
	fooReq := mustRequirement("foo", selection.Equals, "bar")
	bazReq := mustRequirement("baz", selection.In, "qux", "norf")
	tc := []struct {
		in        *LabelSelector
		out       labels.Selector
		expectErr bool
	}{
		{in: nil, out: labels.Nothing()},
		{in: &LabelSelector{}, out: labels.Everything()},
		{
			in:  &LabelSelector{MatchLabels: matchLabels},
			out: labels.NewSelector().Add(fooReq),
		},
		{
			in:  &LabelSelector{MatchExpressions: matchExpressions},
			out: labels.NewSelector().Add(bazReq),
		},
		{
			in:  &LabelSelector{MatchLabels: matchLabels, MatchExpressions: matchExpressions},
			out: labels.NewSelector().Add(fooReq, bazReq),
		},
		{
			in: &LabelSelector{
				MatchExpressions: []LabelSelectorRequirement{{
					Key:      "baz",
					Operator: LabelSelectorOpExists,
					Values:   []string{"qux", "norf"},
				}},
			},
			expectErr: true,
		},
	}

	for i, tc := range tc {
		inCopy := tc.in.DeepCopy()
		out, err := LabelSelectorAsSelector(tc.in)
		// after calling LabelSelectorAsSelector, tc.in shouldn't be modified
		if !reflect.DeepEqual(inCopy, tc.in) {
			t.Errorf("[%v]expected:\n\t%#v\nbut got:\n\t%#v", i, inCopy, tc.in)
		}
		if err == nil && tc.expectErr {
			t.Errorf("[%v]expected error but got none.", i)
		}
		if err != nil && !tc.expectErr {
			t.Errorf("[%v]did not expect error but got: %v", i, err)
		}
		if tc.expectErr {
			continue
		}
		// sanity check on expected selector string form
		if out.String() != tc.out.String() {
			t.Errorf("[%v]expected:\n\t%s\nbut got:\n\t%s", i, tc.out.String(), out.String())
		}
	}
}

func TestLabelSelectorAsMap(t *testing.T) {
	matchLabels := map[string]string{"foo": "bar"}
	matchExpressions := func(operator LabelSelectorOperator, values []string) []LabelSelectorRequirement {
		return []LabelSelectorRequirement{{
			Key:      "baz",
			Operator: operator,
			Values:   values,
		}}
	}

	tests := []struct {
		in        *LabelSelector
		out       map[string]string
		errString string
	}{
		{in: nil, out: nil},
		{
			in:  &LabelSelector{MatchLabels: matchLabels},
			out: map[string]string{"foo": "bar"},
		},
		{
			in:  &LabelSelector{MatchLabels: matchLabels, MatchExpressions: matchExpressions(LabelSelectorOpIn, []string{"norf"})},
			out: map[string]string{"foo": "bar", "baz": "norf"},
		},
		{
			in:  &LabelSelector{MatchExpressions: matchExpressions(LabelSelectorOpIn, []string{"norf"})},
			out: map[string]string{"baz": "norf"},
		},
		{
			in:        &LabelSelector{MatchLabels: matchLabels, MatchExpressions: matchExpressions(LabelSelectorOpIn, []string{"norf", "qux"})},
			out:       map[string]string{"foo": "bar"},
			errString: "without a single value cannot be converted",
		},
		{
			in:        &LabelSelector{MatchExpressions: matchExpressions(LabelSelectorOpNotIn, []string{"norf", "qux"})},
			out:       map[string]string{},
			errString: "cannot be converted",
		},
		{
			in:        &LabelSelector{MatchLabels: matchLabels, MatchExpressions: matchExpressions(LabelSelectorOpExists, []string{})},
			out:       map[string]string{"foo": "bar"},
			errString: "cannot be converted",
		},
		{
			in:        &LabelSelector{MatchExpressions: matchExpressions(LabelSelectorOpDoesNotExist, []string{})},
			out:       map[string]string{},
			errString: "cannot be converted",
		},
	}

	for i, tc := range tests {
		out, err := LabelSelectorAsMap(tc.in)
		if err == nil && len(tc.errString) > 0 {
			t.Errorf("[%v]expected error but got none.", i)
			continue
		}
		if err != nil && len(tc.errString) == 0 {
			t.Errorf("[%v]did not expect error but got: %v", i, err)
			continue
		}
		if !reflect.DeepEqual(out, tc.out) {
			t.Errorf("[%v]expected:\n\t%+v\nbut got:\n\t%+v", i, tc.out, out)
		}
	}
}

func TestFormatLabelSelector(t *testing.T) {
	tests := []struct {
		in  *LabelSelector
		out string
	}{
		{in: nil, out: "<none>"},
		{in: &LabelSelector{}, out: "<none>"},
		{
			in:  &LabelSelector{MatchLabels: map[string]string{"foo": "bar"}},
			out: "foo=bar",
		},
		{
			in: &LabelSelector{MatchExpressions: []LabelSelectorRequirement{{
				Key:      "baz",
				Operator: LabelSelectorOpExists,
			}}},
			out: "baz",
		},
	}

	for i, tc := range tests {
		if got := FormatLabelSelector(tc.in); got != tc.out {
			t.Errorf("[%v]expected %q but got %q", i, tc.out, got)
		}
	}
}

func TestSetAsLabelSelector(t *testing.T) {
	ls := labels.Set{"foo": "bar"}
	selector := SetAsLabelSelector(ls)
	expected := &LabelSelector{MatchLabels: map[string]string{"foo": "bar"}}
	if !reflect.DeepEqual(selector, expected) {
		t.Errorf("expected %+v, got %+v", expected, selector)
	}

	if SetAsLabelSelector(nil) != nil {
		t.Errorf("expected nil for nil set")
	}
}

func TestResetObjectMetaForStatus(t *testing.T) {
	meta := &ObjectMeta{}
	existingMeta := &ObjectMeta{
		Generation:  1,
		Labels:      map[string]string{"a": "b"},
		Annotations: map[string]string{"c": "d"},
		Finalizers:  []string{"f"},
	}

	ResetObjectMetaForStatus(meta, existingMeta)

	if meta.Generation != existingMeta.Generation {
		t.Errorf("generation not copied: %v", meta.Generation)
	}
	if !reflect.DeepEqual(meta.Labels, existingMeta.Labels) {
		t.Errorf("labels not copied: %v", meta.Labels)
	}
	if !reflect.DeepEqual(meta.Annotations, existingMeta.Annotations) {
		t.Errorf("annotations not copied: %v", meta.Annotations)
	}
	if !reflect.DeepEqual(meta.Finalizers, existingMeta.Finalizers) {
		t.Errorf("finalizers not copied: %v", meta.Finalizers)
	}
}

func TestHasAnnotation(t *testing.T) {
	obj := ObjectMeta{}
	if HasAnnotation(obj, "foo") {
		t.Errorf("unexpected annotation")
	}
	SetMetaDataAnnotation(&obj, "foo", "bar")
	if !HasAnnotation(obj, "foo") || obj.Annotations["foo"] != "bar" {
		t.Errorf("annotation not set: %#v", obj.Annotations)
	}
}

func TestHasLabel(t *testing.T) {
	obj := ObjectMeta{}
	if HasLabel(obj, "foo") {
		t.Errorf("unexpected label")
	}
	SetMetaDataLabel(&obj, "foo", "bar")
	if !HasLabel(obj, "foo") || obj.Labels["foo"] != "bar" {
		t.Errorf("label not set: %#v", obj.Labels)
	}
}
