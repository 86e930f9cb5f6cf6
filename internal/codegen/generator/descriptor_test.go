package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/reflect/protoreflect"

	"github.com/tachibk-converter/tachibk/internal/codegen/meta"
	"github.com/tachibk-converter/tachibk/internal/codegen/scanner"
	th "github.com/tachibk-converter/tachibk/internal/testing"
)

func sampleSchema() *meta.Schema {
	var files []meta.SourceFile
	for _, f := range th.SampleModels {
		files = append(files, meta.SourceFile{Name: f.Name, Messages: scanner.ScanClasses(f.Source)})
	}
	return Assemble(DefaultPrelude(), files)
}

func TestCompileSampleModels(t *testing.T) {
	fd, err := Compile(sampleSchema())
	require.NoError(t, err)

	assert.Equal(t, protoreflect.Proto2, fd.Syntax())
	assert.Equal(t, "schema.proto", fd.Path())

	backup := fd.Messages().ByName("Backup")
	require.NotNil(t, backup)
	manga := backup.Fields().ByName("backupManga")
	require.NotNil(t, manga)
	assert.Equal(t, protoreflect.Repeated, manga.Cardinality())
	assert.Equal(t, protoreflect.MessageKind, manga.Kind())
	assert.Equal(t, protoreflect.FullName("BackupManga"), manga.Message().FullName())

	mangaMsg := fd.Messages().ByName("BackupManga")
	require.NotNil(t, mangaMsg)

	strategy := mangaMsg.Fields().ByName("updateStrategy")
	require.NotNil(t, strategy)
	assert.Equal(t, protoreflect.EnumKind, strategy.Kind())
	assert.Equal(t, protoreflect.FieldNumber(105), strategy.Number())
	assert.Equal(t, protoreflect.Optional, strategy.Cardinality())

	source := mangaMsg.Fields().ByName("source")
	require.NotNil(t, source)
	assert.Equal(t, protoreflect.Required, source.Cardinality())
	assert.Equal(t, protoreflect.Int64Kind, source.Kind())

	broken := fd.Messages().ByName("BrokenBackupHistory")
	require.NotNil(t, broken)
	assert.Equal(t, protoreflect.FieldNumber(1), broken.Fields().ByName("url").Number())
	assert.Equal(t, protoreflect.FieldNumber(3), broken.Fields().ByName("readDuration").Number())

	pref := fd.Messages().ByName("BackupPreference").Fields().ByName("value")
	require.NotNil(t, pref)
	assert.Equal(t, protoreflect.BytesKind, pref.Kind())

	category := fd.Messages().ByName("BackupCategory")
	require.NotNil(t, category)
	assert.Equal(t, 4, category.Fields().Len(), "commented-out field must not be scanned")
}

func TestCompileRejectsInvalidSchema(t *testing.T) {
	schema := Assemble(DefaultPrelude(), []meta.SourceFile{
		{Name: "a.kt", Messages: scanner.ScanClasses("data class A(\n    @ProtoNumber(1) var m: Map,\n)\n")},
	})
	_, err := Compile(schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid schema")
	assert.Contains(t, err.Error(), "undefined type Map")
}

func TestCompileRejectsOverlongTag(t *testing.T) {
	schema := Assemble(DefaultPrelude(), []meta.SourceFile{
		{Name: "a.kt", Messages: scanner.ScanClasses("data class A(\n    @ProtoNumber(4294967297) var x: Int,\n    @ProtoNumber(99999999999999999999) var y: Int,\n)\n")},
	})
	_, err := Compile(schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "field x has tag 4294967297 outside 1..536870911")
	assert.Contains(t, err.Error(), "field y has tag -1 outside")
}

func TestBuildFileDescriptorRejectsOutOfRangeTag(t *testing.T) {
	schema := Assemble(meta.Prelude{}, []meta.SourceFile{
		{Name: "a.kt", Messages: []meta.Message{{Name: "A", Fields: []meta.Field{
			{Name: "x", Cardinality: meta.Required, Type: meta.Scalar("int32"), Tag: meta.MaxTag + 1},
		}}}},
	})
	_, err := BuildFileDescriptor(schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tag 536870912 outside")
}

func TestBuildFileDescriptorUnsupportedWireType(t *testing.T) {
	schema := Assemble(meta.Prelude{}, []meta.SourceFile{
		{Name: "a.kt", Messages: []meta.Message{{Name: "A", Fields: []meta.Field{
			{Name: "x", Cardinality: meta.Required, Type: meta.Scalar("varint"), Tag: 1},
		}}}},
	})
	_, err := BuildFileDescriptor(schema)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unsupported wire type "varint"`)
}

func TestDescriptorSetRoundTrip(t *testing.T) {
	fd, err := Compile(sampleSchema())
	require.NoError(t, err)

	data, err := MarshalDescriptorSet(fd)
	require.NoError(t, err)

	loaded, err := UnmarshalDescriptorSet(data)
	require.NoError(t, err)
	assert.Equal(t, fd.Messages().Len(), loaded.Messages().Len())
	assert.Equal(t, fd.Enums().Len(), loaded.Enums().Len())
	require.NotNil(t, loaded.Messages().ByName("Backup"))

	_, err = UnmarshalDescriptorSet([]byte("not a descriptor set"))
	assert.Error(t, err)
}
