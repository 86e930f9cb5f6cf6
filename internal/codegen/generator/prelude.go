package generator

import "github.com/tachibk-converter/tachibk/internal/codegen/meta"

// Syntax is the protobuf dialect of the generated schema. Upstream fields have
// required/optional semantics, which only proto2 can express.
const Syntax = "proto2"

// DefaultPrelude holds the definitions the scanner cannot recover from source:
// UpdateStrategy is a Kotlin enum (enums are not data classes), and PreferenceValue
// is a sealed class whose concrete subtypes are serialized polymorphically.
func DefaultPrelude() meta.Prelude {
	return meta.Prelude{
		Enums: []meta.Enum{
			{
				Name: "UpdateStrategy",
				Values: []meta.EnumValue{
					{Name: "ALWAYS_UPDATE", Number: 0},
					{Name: "ONLY_FETCH_ONCE", Number: 1},
				},
			},
		},
		Messages: []meta.Message{
			{
				Name: "PreferenceValue",
				Fields: []meta.Field{
					{Name: "type", Cardinality: meta.Required, Type: meta.Scalar("string"), Tag: 1},
					{Name: "value", Cardinality: meta.Required, Type: meta.Scalar("bytes"), Tag: 2},
				},
			},
		},
	}
}
