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
	"encoding/json"
	"reflect"
	"testing"
)

func TestJSONSchemaPropsOrBoolUnmarshal(t *testing.T) {
	cases := []struct {
		input     string
		expect    JSONSchemaPropsOrBool
		expectErr bool
	}{
		{input: `true`, expect: JSONSchemaPropsOrBool{Allows: true}},
		{input: `false`, expect: JSONSchemaPropsOrBool{Allows: false}},
		{
			input:  `{"type":"string"}`,
			expect: JSONSchemaPropsOrBool{Allows: true, Schema: &JSONSchemaProps{Type: "string"}},
		},
		{input: `"yes"`, expectErr: true},
		{input: `1`, expectErr: true},
	}
	for _, c := range cases {
		var got JSONSchemaPropsOrBool
		err := json.Unmarshal([]byte(c.input), &got)
		if c.expectErr {
			if err == nil {
				t.Errorf("%s: expected error, got %#v", c.input, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s: unexpected error: %v", c.input, err)
			continue
		}
		if !reflect.DeepEqual(got, c.expect) {
			t.Errorf("%s: got %#v, want %#v", c.input, got, c.expect)
		}
	}
}

func TestJSONSchemaPropsOrBoolMarshal(t *testing.T) {
	cases := []struct {
		input  JSONSchemaPropsOrBool
		expect string
	}{
		{input: JSONSchemaPropsOrBool{Allows: true}, expect: `true`},
		{input: JSONSchemaPropsOrBool{Allows: false}, expect: `false`},
		{
			input:  JSONSchemaPropsOrBool{Allows: true, Schema: &JSONSchemaProps{Type: "object"}},
			expect: `{"type":"object"}`,
		},
	}
	for _, c := range cases {
		got, err := json.Marshal(c.input)
		if err != nil {
			t.Errorf("%#v: unexpected error: %v", c.input, err)
			continue
		}
		if string(got) != c.expect {
			t.Errorf("%#v: got %s, want %s", c.input, got, c.expect)
		}
	}
}

func TestJSONSchemaPropsOrArrayRoundTrip(t *testing.T) {
	cases := []struct {
		input  string
		expect JSONSchemaPropsOrArray
	}{
		{
			input:  `{"type":"integer"}`,
			expect: JSONSchemaPropsOrArray{Schema: &JSONSchemaProps{Type: "integer"}},
		},
		{
			input: `[{"type":"integer"},{"type":"string"}]`,
			expect: JSONSchemaPropsOrArray{JSONSchemas: []JSONSchemaProps{
				{Type: "integer"},
				{Type: "string"},
			}},
		},
	}
	for _, c := range cases {
		var got JSONSchemaPropsOrArray
		if err := json.Unmarshal([]byte(c.input), &got); err != nil {
			t.Errorf("%s: unexpected error: %v", c.input, err)
			continue
		}
		if !reflect.DeepEqual(got, c.expect) {
			t.Errorf("%s: got %#v, want %#v", c.input, got, c.expect)
		}
		out, err := json.Marshal(got)
		if err != nil {
			t.Errorf("%s: marshal error: %v", c.input, err)
			continue
		}
		if string(out) != c.input {
			t.Errorf("round trip changed %s into %s", c.input, out)
		}
	}
}

func TestJSONSchemaPropsOrStringArrayUnmarshal(t *testing.T) {
	cases := []struct {
		input  string
		expect JSONSchemaPropsOrStringArray
	}{
		{
			input:  `["a","b"]`,
			expect: JSONSchemaPropsOrStringArray{Property: []string{"a", "b"}},
		},
		{
			input:  `{"type":"object"}`,
			expect: JSONSchemaPropsOrStringArray{Schema: &JSONSchemaProps{Type: "object"}},
		},
	}
	for _, c := range cases {
		var got JSONSchemaPropsOrStringArray
		if err := json.Unmarshal([]byte(c.input), &got); err != nil {
			t.Errorf("%s: unexpected error: %v", c.input, err)
			continue
		}
		if !reflect.DeepEqual(got, c.expect) {
			t.Errorf("%s: got %#v, want %#v", c.input, got, c.expect)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	cases := []struct {
		input  string
		expect JSON
		output string
	}{
		{input: `"string literal"`, expect: JSON{Raw: []byte(`"string literal"`)}, output: `"string literal"`},
		{input: `42`, expect: JSON{Raw: []byte(`42`)}, output: `42`},
		{input: `{"nested":{"default":true}}`, expect: JSON{Raw: []byte(`{"nested":{"default":true}}`)}, output: `{"nested":{"default":true}}`},
		{input: `null`, expect: JSON{}, output: `null`},
	}
	for _, c := range cases {
		var got JSON
		if err := json.Unmarshal([]byte(c.input), &got); err != nil {
			t.Errorf("%s: unexpected error: %v", c.input, err)
			continue
		}
		if !reflect.DeepEqual(got, c.expect) {
			t.Errorf("%s: got %#v, want %#v", c.input, got, c.expect)
		}
		out, err := json.Marshal(got)
		if err != nil {
			t.Errorf("%s: marshal error: %v", c.input, err)
			continue
		}
		if string(out) != c.output {
			t.Errorf("%s: marshaled to %s, want %s", c.input, out, c.output)
		}
	}
}

func TestJSONSchemaPropsNestedUnions(t *testing.T) {
	input := []byte(`{
		"type": "object",
		"required": ["spec"],
		"properties": {
			"spec": {
				"type": "object",
				"additionalProperties": false,
				"properties": {
					"replicas": {"type": "integer", "default": 1}
				}
			},
			"items": {
				"type": "array",
				"items": {"type": "string"}
			}
		}
	}`)
	var got JSONSchemaProps
	if err := json.Unmarshal(input, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	spec, ok := got.Properties["spec"]
	if !ok {
		t.Fatal("missing spec property")
	}
	if spec.AdditionalProperties == nil || spec.AdditionalProperties.Allows {
		t.Errorf("additionalProperties not decoded as false: %#v", spec.AdditionalProperties)
	}
	replicas := spec.Properties["replicas"]
	if replicas.Default == nil || string(replicas.Default.Raw) != "1" {
		t.Errorf("default not preserved: %#v", replicas.Default)
	}
	items := got.Properties["items"]
	if items.Items == nil || items.Items.Schema == nil || items.Items.Schema.Type != "string" {
		t.Errorf("nested items schema not decoded: %#v", items.Items)
	}
}
