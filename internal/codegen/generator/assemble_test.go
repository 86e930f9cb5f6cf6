package generator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tachibk-converter/tachibk/internal/codegen/meta"
	"github.com/tachibk-converter/tachibk/internal/codegen/scanner"
)

const expectedPrelude = `syntax = "proto2";

enum UpdateStrategy {
  ALWAYS_UPDATE = 0;
  ONLY_FETCH_ONCE = 1;
}

message PreferenceValue {
  required string type = 1;
  required bytes value = 2;
}

`

func TestAssembleRender(t *testing.T) {
	files := []meta.SourceFile{
		{Name: "Backup.kt", Messages: scanner.ScanClasses("data class Backup(\n    @ProtoNumber(1) val backupManga: List<BackupManga>,\n)\n")},
		{Name: "BackupManga.kt", Messages: scanner.ScanClasses("data class BackupManga(\n    @ProtoNumber(1) var source: Long,\n    @ProtoNumber(4) var artist: String? = null,\n)\n")},
		{Name: "Empty.kt"},
	}

	got := Assemble(DefaultPrelude(), files).Render()

	want := expectedPrelude +
		"// Backup.kt\n" +
		"message Backup {\n  repeated BackupManga backupManga = 1;\n}\n\n" +
		"// BackupManga.kt\n" +
		"message BackupManga {\n  required int64 source = 1;\n  optional string artist = 4;\n}\n\n" +
		"// Empty.kt\n"
	assert.Equal(t, want, got)
}

func TestAssembleKeepsFileOrder(t *testing.T) {
	files := []meta.SourceFile{{Name: "z.kt"}, {Name: "a.kt"}}
	schema := Assemble(DefaultPrelude(), files)
	require.Len(t, schema.Files, 2)
	assert.Equal(t, "z.kt", schema.Files[0].Name)
	assert.Equal(t, "a.kt", schema.Files[1].Name)
}

func TestValidate(t *testing.T) {
	msg := func(name string, fields ...meta.Field) meta.Message {
		return meta.Message{Name: name, Fields: fields}
	}
	field := func(name string, typ meta.TypeRef, tag int) meta.Field {
		return meta.Field{Name: name, Cardinality: meta.Required, Type: typ, Tag: tag}
	}

	tests := []struct {
		name    string
		files   []meta.SourceFile
		wantErr []string
	}{
		{
			name: "references resolve across files and prelude",
			files: []meta.SourceFile{
				{Name: "a.kt", Messages: []meta.Message{msg("A",
					field("b", meta.MessageRef("B"), 1),
					field("strategy", meta.MessageRef("UpdateStrategy"), 2),
					field("pref", meta.MessageRef("PreferenceValue"), 3),
				)}},
				{Name: "b.kt", Messages: []meta.Message{msg("B", field("x", meta.Scalar("int32"), 1))}},
			},
		},
		{
			name: "unresolved reference",
			files: []meta.SourceFile{
				{Name: "a.kt", Messages: []meta.Message{msg("A", field("m", meta.MessageRef("Map"), 1))}},
			},
			wantErr: []string{"a.kt: message A: field m references undefined type Map"},
		},
		{
			name: "duplicate message across files",
			files: []meta.SourceFile{
				{Name: "a.kt", Messages: []meta.Message{msg("Dup")}},
				{Name: "b.kt", Messages: []meta.Message{msg("Dup")}},
			},
			wantErr: []string{"message Dup defined in both a.kt and b.kt"},
		},
		{
			name: "message shadowing the prelude",
			files: []meta.SourceFile{
				{Name: "a.kt", Messages: []meta.Message{msg("PreferenceValue")}},
			},
			wantErr: []string{"message PreferenceValue defined in both prelude and a.kt"},
		},
		{
			name: "duplicate tags from default numbering",
			files: []meta.SourceFile{
				{Name: "a.kt", Messages: []meta.Message{msg("A",
					field("x", meta.Scalar("int32"), 1),
					field("y", meta.Scalar("int32"), 1),
				)}},
			},
			wantErr: []string{"a.kt: message A: tag 1 used by both x and y"},
		},
		{
			name: "tags outside the field number range",
			files: []meta.SourceFile{
				{Name: "a.kt", Messages: []meta.Message{msg("A",
					field("zero", meta.Scalar("int32"), 0),
					field("huge", meta.Scalar("int32"), meta.MaxTag+1),
					field("bad", meta.Scalar("int32"), -1),
					field("max", meta.Scalar("int32"), meta.MaxTag),
				)}},
			},
			wantErr: []string{
				"a.kt: message A: field zero has tag 0 outside 1..536870911",
				"field huge has tag 536870912 outside",
				"field bad has tag -1 outside",
			},
		},
		{
			name: "all problems are reported",
			files: []meta.SourceFile{
				{Name: "a.kt", Messages: []meta.Message{msg("A",
					field("x", meta.MessageRef("Nope"), 1),
					field("y", meta.Scalar("int32"), 1),
				)}},
			},
			wantErr: []string{"undefined type Nope", "tag 1 used by both x and y"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(Assemble(DefaultPrelude(), tt.files))
			if len(tt.wantErr) == 0 {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, want := range tt.wantErr {
				assert.Contains(t, err.Error(), want)
			}
		})
	}
}
