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

// Package serializer assembles the JSON and YAML serializers into codecs bound
// to a scheme. Unlike the upstream API machinery there is no cross-version
// conversion layer here: a scheme serves one version per group, so a codec
// only needs to stamp apiVersion/kind on encode and recognize formats on
// decode.
package serializer

import (
	"io"

	"github.com/kubewire/kubewire/pkg/runtime"
	"github.com/kubewire/kubewire/pkg/runtime/schema"
	"github.com/kubewire/kubewire/pkg/runtime/serializer/json"
	"github.com/kubewire/kubewire/pkg/runtime/serializer/recognizer"
)

// serializerType holds a serializer along with the content type it handles.
type serializerType struct {
	ContentType      string
	Serializer       runtime.Serializer
	StrictSerializer runtime.Serializer
}

func newSerializersForScheme(scheme *runtime.Scheme) []serializerType {
	jsonSerializer := json.NewSerializerWithOptions(
		json.DefaultMetaFactory, scheme, scheme,
		json.SerializerOptions{Yaml: false, Pretty: false, Strict: false},
	)
	jsonSerializerStrict := json.NewSerializerWithOptions(
		json.DefaultMetaFactory, scheme, scheme,
		json.SerializerOptions{Yaml: false, Pretty: false, Strict: true},
	)
	yamlSerializer := json.NewSerializerWithOptions(
		json.DefaultMetaFactory, scheme, scheme,
		json.SerializerOptions{Yaml: true, Pretty: false, Strict: false},
	)
	yamlSerializerStrict := json.NewSerializerWithOptions(
		json.DefaultMetaFactory, scheme, scheme,
		json.SerializerOptions{Yaml: true, Pretty: false, Strict: true},
	)

	return []serializerType{
		{ContentType: runtime.ContentTypeJSON, Serializer: jsonSerializer, StrictSerializer: jsonSerializerStrict},
		{ContentType: runtime.ContentTypeYAML, Serializer: yamlSerializer, StrictSerializer: yamlSerializerStrict},
	}
}

// CodecFactory provides methods for retrieving codecs and serializers for specific
// versions and content types.
type CodecFactory struct {
	scheme      *runtime.Scheme
	serializers []serializerType
	universal   runtime.Decoder
	strict      runtime.Decoder
}

// NewCodecFactory provides methods for retrieving serializers for the supported wire formats
// and conversion wrappers to define preferred internal and external versions. In the future,
// as the internal version is used less, callers may instead use a defaulting serializer.
func NewCodecFactory(scheme *runtime.Scheme) CodecFactory {
	serializers := newSerializersForScheme(scheme)

	decoders := make([]runtime.Decoder, 0, len(serializers))
	strictDecoders := make([]runtime.Decoder, 0, len(serializers))
	for _, d := range serializers {
		decoders = append(decoders, d.Serializer)
		strictDecoders = append(strictDecoders, d.StrictSerializer)
	}
	return CodecFactory{
		scheme:      scheme,
		serializers: serializers,
		universal:   recognizer.NewDecoder(decoders...),
		strict:      recognizer.NewDecoder(strictDecoders...),
	}
}

// UniversalDeserializer can convert any stored data recognized by this factory into a Go object that satisfies
// runtime.Object. It does not perform conversion. It does not perform defaulting.
func (f CodecFactory) UniversalDeserializer() runtime.Decoder {
	return f.universal
}

// StrictDeserializer behaves as UniversalDeserializer but additionally reports
// unknown and duplicated fields in the input (runtime.IsStrictDecodingError).
func (f CodecFactory) StrictDeserializer() runtime.Decoder {
	return f.strict
}

// JSONEncoder returns an encoder producing compact JSON, stamping
// apiVersion/kind on every encoded object.
func (f CodecFactory) JSONEncoder() runtime.Encoder {
	return &kindStampingEncoder{scheme: f.scheme, encoder: f.serializers[0].Serializer}
}

// YAMLEncoder returns an encoder producing YAML, stamping apiVersion/kind on
// every encoded object.
func (f CodecFactory) YAMLEncoder() runtime.Encoder {
	return &kindStampingEncoder{scheme: f.scheme, encoder: f.serializers[1].Serializer}
}

// EncoderForContentType returns the encoder matching the given media type, or
// false when the media type is unsupported.
func (f CodecFactory) EncoderForContentType(contentType string) (runtime.Encoder, bool) {
	switch contentType {
	case runtime.ContentTypeJSON:
		return f.JSONEncoder(), true
	case runtime.ContentTypeYAML:
		return f.YAMLEncoder(), true
	default:
		return nil, false
	}
}

// kindStampingEncoder sets the object's group, version, and kind from the
// scheme before delegating to the wrapped serializer, then restores whatever
// the caller had. Objects always serialize with a populated apiVersion and
// kind even when the caller left TypeMeta empty.
type kindStampingEncoder struct {
	scheme  *runtime.Scheme
	encoder runtime.Encoder
}

func (e *kindStampingEncoder) Encode(obj runtime.Object, w io.Writer) error {
	objectKind := obj.GetObjectKind()
	old := objectKind.GroupVersionKind()
	if old.Empty() {
		gvks, _, err := e.scheme.ObjectKinds(obj)
		if err != nil {
			return err
		}
		objectKind.SetGroupVersionKind(gvks[0])
		defer objectKind.SetGroupVersionKind(old)
	}
	return e.encoder.Encode(obj, w)
}

func (e *kindStampingEncoder) Identifier() runtime.Identifier {
	return "stamping:" + e.encoder.Identifier()
}

// DecodeToVersionedObject decodes data with the universal deserializer and
// verifies the result belongs to the expected group version.
func DecodeToVersionedObject(f CodecFactory, data []byte, gv schema.GroupVersion) (runtime.Object, *schema.GroupVersionKind, error) {
	obj, gvk, err := f.UniversalDeserializer().Decode(data, nil, nil)
	if err != nil {
		return nil, gvk, err
	}
	if gvk.GroupVersion() != gv {
		return nil, gvk, runtime.NewNotRegisteredErrForKind(f.scheme.Name(), *gvk)
	}
	return obj, gvk, nil
}
