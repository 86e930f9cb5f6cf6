package scanner

import "github.com/tachibk-converter/tachibk/internal/codegen/meta"

// kotlinScalars maps Kotlin primitive type names to protobuf scalar wire types.
var kotlinScalars = map[string]string{
	"String":  "string",
	"Int":     "int32",
	"Long":    "int64",
	"Boolean": "bool",
	"Float":   "float",
}

// opaqueOverrides lists non-primitive Kotlin types that are encoded as raw bytes.
// PreferenceValue is a sealed class serialized polymorphically upstream; its payload
// cannot be described by a single message, so the field carries the encoded bytes.
var opaqueOverrides = map[string]string{
	"PreferenceValue": "bytes",
}

// MapType resolves a bare Kotlin type identifier. Known scalars and opaque overrides
// become Scalar refs; every other name is a reference to a message or enum with that name.
func MapType(typeName string) meta.TypeRef {
	if wire, ok := kotlinScalars[typeName]; ok {
		return meta.Scalar(wire)
	}
	if wire, ok := opaqueOverrides[typeName]; ok {
		return meta.Scalar(wire)
	}
	return meta.MessageRef(typeName)
}

// WireType is MapType rendered as schema text: the wire type, or the unchanged name.
func WireType(typeName string) string {
	return MapType(typeName).String()
}
