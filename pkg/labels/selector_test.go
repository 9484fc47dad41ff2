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

package labels

import (
	"testing"

	"github.com/kubewire/kubewire/pkg/selection"
)

func TestSelectorMatches(t *testing.T) {
	expectMatch := func(sel Selector, ls Set) {
		t.Helper()
		if !sel.Matches(ls) {
			t.Errorf("expected %s to match %s", sel, ls)
		}
	}
	expectNoMatch := func(sel Selector, ls Set) {
		t.Helper()
		if sel.Matches(ls) {
			t.Errorf("expected %s to not match %s", sel, ls)
		}
	}

	expectMatch(Everything(), Set{"x": "y"})
	expectNoMatch(Nothing(), Set{"x": "y"})
	expectMatch(SelectorFromSet(Set{"x": "y"}), Set{"x": "y"})
	expectMatch(SelectorFromSet(Set{"x": "y"}), Set{"x": "y", "z": "w"})
	expectNoMatch(SelectorFromSet(Set{"x": "y"}), Set{"x": "w"})
	expectNoMatch(SelectorFromSet(Set{"x": "y", "z": "w"}), Set{"x": "y"})

	mustRequirement := func(key string, op selection.Operator, vals ...string) Requirement {
		r, err := NewRequirement(key, op, vals)
		if err != nil {
			t.Fatalf("NewRequirement(%q, %q, %v): %v", key, op, vals, err)
		}
		return *r
	}

	in := NewSelector().Add(mustRequirement("env", selection.In, "prod", "staging"))
	expectMatch(in, Set{"env": "prod"})
	expectMatch(in, Set{"env": "staging"})
	expectNoMatch(in, Set{"env": "dev"})
	expectNoMatch(in, Set{})

	notIn := NewSelector().Add(mustRequirement("env", selection.NotIn, "prod"))
	expectMatch(notIn, Set{"env": "dev"})
	expectMatch(notIn, Set{})
	expectNoMatch(notIn, Set{"env": "prod"})

	exists := NewSelector().Add(mustRequirement("env", selection.Exists))
	expectMatch(exists, Set{"env": ""})
	expectNoMatch(exists, Set{"other": "x"})

	doesNotExist := NewSelector().Add(mustRequirement("env", selection.DoesNotExist))
	expectMatch(doesNotExist, Set{"other": "x"})
	expectNoMatch(doesNotExist, Set{"env": "prod"})
}

func TestRequirementConstructor(t *testing.T) {
	requirementConstructorTests := []struct {
		Key     string
		Op      selection.Operator
		Vals    []string
		Success bool
	}{
		{Key: "x", Op: selection.In, Success: false},
		{Key: "x", Op: selection.NotIn, Vals: []string{}, Success: false},
		{Key: "x", Op: selection.In, Vals: []string{"foo"}, Success: true},
		{Key: "x", Op: selection.NotIn, Vals: []string{"foo"}, Success: true},
		{Key: "x", Op: selection.Exists, Success: true},
		{Key: "x", Op: selection.DoesNotExist, Success: true},
		{Key: "1foo", Op: selection.In, Vals: []string{"bar"}, Success: true},
		{Key: "1234", Op: selection.In, Vals: []string{"bar"}, Success: true},
		{Key: "x", Op: selection.Equals, Vals: []string{"a", "b"}, Success: false},
		{Key: "x", Op: "unsupportedOp", Vals: []string{"a"}, Success: false},
		{Key: "nope@nope", Op: selection.Exists, Success: false},
		{Key: "x", Op: selection.In, Vals: []string{"-no good-"}, Success: false},
	}
	for _, rc := range requirementConstructorTests {
		if _, err := NewRequirement(rc.Key, rc.Op, rc.Vals); err == nil && !rc.Success {
			t.Errorf("expected error with key:%#v op:%v vals:%v, got no error", rc.Key, rc.Op, rc.Vals)
		} else if err != nil && rc.Success {
			t.Errorf("expected no error with key:%#v op:%v vals:%v, got:%v", rc.Key, rc.Op, rc.Vals, err)
		}
	}
}

func TestSelectorString(t *testing.T) {
	mustRequirement := func(key string, op selection.Operator, vals ...string) Requirement {
		r, err := NewRequirement(key, op, vals)
		if err != nil {
			t.Fatalf("NewRequirement(%q, %q, %v): %v", key, op, vals, err)
		}
		return *r
	}

	tests := []struct {
		sel      Selector
		expected string
	}{
		{Everything(), ""},
		{SelectorFromSet(Set{"x": "y"}), "x=y"},
		{SelectorFromSet(Set{"b": "2", "a": "1"}), "a=1,b=2"},
		{NewSelector().Add(mustRequirement("env", selection.In, "staging", "prod")), "env in (prod,staging)"},
		{NewSelector().Add(mustRequirement("env", selection.NotIn, "prod")), "env notin (prod)"},
		{NewSelector().Add(mustRequirement("env", selection.Exists)), "env"},
		{NewSelector().Add(mustRequirement("env", selection.DoesNotExist)), "!env"},
	}
	for _, tc := range tests {
		if got := tc.sel.String(); got != tc.expected {
			t.Errorf("expected %q, got %q", tc.expected, got)
		}
	}
}

func TestSetMergeAndEquals(t *testing.T) {
	merged := Merge(Set{"a": "1", "b": "2"}, Set{"b": "3", "c": "4"})
	if !Equals(merged, Set{"a": "1", "b": "3", "c": "4"}) {
		t.Errorf("unexpected merge result: %v", merged)
	}
	if Equals(Set{"a": "1"}, Set{"a": "2"}) {
		t.Errorf("expected sets to differ")
	}
	if Equals(Set{"a": "1"}, Set{"a": "1", "b": "2"}) {
		t.Errorf("expected sets of different length to differ")
	}
}

func TestSelectorFromSet(t *testing.T) {
	set := Set{"app": "web", "tier": "frontend"}
	sel := SelectorFromSet(set)
	if got, want := sel.String(), "app=web,tier=frontend"; got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
	if !sel.Matches(Set{"app": "web", "tier": "frontend", "extra": "x"}) {
		t.Errorf("expected %s to match a superset of %s", sel, set)
	}
	req, err := NewRequirement("app", selection.Equals, []string{"web"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !NewSelector().Add(*req).Matches(set) {
		t.Errorf("expected equality requirement to match %s", set)
	}
	if !Equals(set, Set{"tier": "frontend", "app": "web"}) {
		t.Errorf("expected sets to be equal regardless of order")
	}
}
