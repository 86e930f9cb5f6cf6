package scanner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tachibk-converter/tachibk/internal/codegen/meta"
)

const backupChapterSource = `package eu.kanade.tachiyomi.data.backup.models

import kotlinx.serialization.Serializable
import kotlinx.serialization.protobuf.ProtoNumber

@Serializable
data class BackupChapter(
    // in 1.x some of these values have different names
    // url is called key in 1.x
    @ProtoNumber(1) var url: String,
    @ProtoNumber(2) var name: String,
    @ProtoNumber(3) var scanlator: String? = null,
    @ProtoNumber(4) var read: Boolean = false,
    @ProtoNumber(9) var chapterNumber: Float = 0F,
    @ProtoNumber(10) var sourceOrder: Long = 0,
) {
    fun toChapterImpl(): Chapter {
        return Chapter.create().copy(url = this@BackupChapter.url)
    }
}

val backupChapterMapper = {
        _: Long,
        url: String,
    ->
    BackupChapter(url = url)
}
`

func TestScanClasses(t *testing.T) {
	messages := ScanClasses(backupChapterSource)
	require.Len(t, messages, 1)

	m := messages[0]
	assert.Equal(t, "BackupChapter", m.Name)
	assert.Equal(t, []meta.Field{
		{Name: "url", Cardinality: meta.Required, Type: meta.Scalar("string"), Tag: 1},
		{Name: "name", Cardinality: meta.Required, Type: meta.Scalar("string"), Tag: 2},
		{Name: "scanlator", Cardinality: meta.Optional, Type: meta.Scalar("string"), Tag: 3},
		{Name: "read", Cardinality: meta.Optional, Type: meta.Scalar("bool"), Tag: 4},
		{Name: "chapterNumber", Cardinality: meta.Optional, Type: meta.Scalar("float"), Tag: 9},
		{Name: "sourceOrder", Cardinality: meta.Optional, Type: meta.Scalar("int64"), Tag: 10},
	}, m.Fields)
}

func TestScanClassesBalancesNestedParentheses(t *testing.T) {
	src := `class Outer(
    @ProtoNumber(1) var a: List<Long> = listOf(max(1, (2 + 3))),
    @ProtoNumber(2) var b: Int = (1),
)

data class Second(val value: Boolean)
`
	messages := ScanClasses(src)
	require.Len(t, messages, 2)

	assert.Equal(t, "Outer", messages[0].Name)
	require.Len(t, messages[0].Fields, 2)
	assert.Equal(t, meta.Repeated, messages[0].Fields[0].Cardinality)
	assert.Equal(t, "b", messages[0].Fields[1].Name)

	assert.Equal(t, "Second", messages[1].Name)
	assert.Equal(t, []meta.Field{
		{Name: "value", Cardinality: meta.Required, Type: meta.Scalar("bool"), Tag: 1},
	}, messages[1].Fields)
}

func TestScanClassesSkipsNonTopLevelAndUnclosed(t *testing.T) {
	src := `sealed class PreferenceValue
    private data class Hidden(val x: Int)
@Serializable
data class Unclosed(
    @ProtoNumber(1) var x: Int,
`
	assert.Empty(t, ScanClasses(src))
}

func TestScanClassesKeepsSourceOrder(t *testing.T) {
	src := "data class B(val v: Int)\nclass A(val v: Long)\ndata class C(val v: String)\n"
	messages := ScanClasses(src)
	require.Len(t, messages, 3)
	assert.Equal(t, "B", messages[0].Name)
	assert.Equal(t, "A", messages[1].Name)
	assert.Equal(t, "C", messages[2].Name)
}

func TestMessageRender(t *testing.T) {
	messages := ScanClasses("data class BooleanPreferenceValue(val value: Boolean)\n")
	require.Len(t, messages, 1)
	assert.Equal(t, "message BooleanPreferenceValue {\n  required bool value = 1;\n}\n\n", messages[0].Render())
}
