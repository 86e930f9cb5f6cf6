package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tachibk-converter/tachibk/internal/codegen/meta"
)

func TestMapType(t *testing.T) {
	tests := []struct {
		in   string
		want meta.TypeRef
	}{
		{"String", meta.Scalar("string")},
		{"Int", meta.Scalar("int32")},
		{"Long", meta.Scalar("int64")},
		{"Boolean", meta.Scalar("bool")},
		{"Float", meta.Scalar("float")},
		{"PreferenceValue", meta.Scalar("bytes")},
		{"BackupManga", meta.MessageRef("BackupManga")},
		{"UpdateStrategy", meta.MessageRef("UpdateStrategy")},
		{"Double", meta.MessageRef("Double")},
		{"string", meta.MessageRef("string")},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, MapType(tt.in))
		})
	}
}

func TestWireTypeReturnsUnmappedNamesUnchanged(t *testing.T) {
	assert.Equal(t, "int64", WireType("Long"))
	assert.Equal(t, "BackupCategory", WireType("BackupCategory"))
	assert.Equal(t, "", WireType(""))
}
