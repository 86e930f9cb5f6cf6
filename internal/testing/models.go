package testing

// SampleModels is a trimmed copy of an upstream backup model directory. It covers
// every declaration shape the scanner understands and yields a schema that compiles.
var SampleModels = []UpstreamFile{
	{Name: "Backup.kt", Source: `package eu.kanade.tachiyomi.data.backup.models

import kotlinx.serialization.Serializable
import kotlinx.serialization.protobuf.ProtoNumber

@Serializable
data class Backup(
    @ProtoNumber(1) val backupManga: List<BackupManga>,
    @ProtoNumber(2) var backupCategories: List<BackupCategory> = emptyList(),
    @ProtoNumber(101) var backupSources: List<BackupSource> = emptyList(),
    @ProtoNumber(104) var backupPreferences: List<BackupPreference> = emptyList(),
)
`},
	{Name: "BackupCategory.kt", Source: `package eu.kanade.tachiyomi.data.backup.models

@Serializable
class BackupCategory(
    @ProtoNumber(1) var name: String,
    @ProtoNumber(2) var order: Long = 0,
    @ProtoNumber(3) var id: Long = 0,
    // @ProtoNumber(3) val updateInterval: Int = 0, 1.x value not used in 0.x
    @ProtoNumber(100) var flags: Long = 0,
) {
    fun toCategory(id: Long) = Category(id = this@BackupCategory.id, name = this.name)
}
`},
	{Name: "BackupChapter.kt", Source: `package eu.kanade.tachiyomi.data.backup.models

@Serializable
data class BackupChapter(
    // in 1.x some of these values have different names
    // url is called key in 1.x
    @ProtoNumber(1) var url: String,
    @ProtoNumber(2) var name: String,
    @ProtoNumber(3) var scanlator: String? = null,
    @ProtoNumber(4) var read: Boolean = false,
    @ProtoNumber(5) var bookmark: Boolean = false,
    @ProtoNumber(6) var lastPageRead: Long = 0,
    @ProtoNumber(9) var chapterNumber: Float = 0F,
    @ProtoNumber(10) var sourceOrder: Long = 0,
)
`},
	{Name: "BackupHistory.kt", Source: `package eu.kanade.tachiyomi.data.backup.models

@Serializable
data class BrokenBackupHistory(
    @ProtoNumber(0) var url: String,
    @ProtoNumber(1) var lastRead: Long,
    @ProtoNumber(2) var readDuration: Long = 0,
) {
    fun toBackupHistory(): BackupHistory {
        return BackupHistory(url, lastRead, readDuration)
    }
}

@Serializable
data class BackupHistory(
    @ProtoNumber(1) var url: String,
    @ProtoNumber(2) var lastRead: Long,
    @ProtoNumber(3) var readDuration: Long = 0,
)
`},
	{Name: "BackupManga.kt", Source: `package eu.kanade.tachiyomi.data.backup.models

@Suppress("DEPRECATION")
@Serializable
data class BackupManga(
    // in 1.x some of these values have different names
    @ProtoNumber(1) var source: Long,
    @ProtoNumber(2) var url: String,
    @ProtoNumber(3) var title: String = "",
    @ProtoNumber(4) var artist: String? = null,
    @ProtoNumber(5) var author: String? = null,
    @ProtoNumber(6) var description: String? = null,
    @ProtoNumber(7) var genre: List<String> = emptyList(),
    @ProtoNumber(8) var status: Int = 0,
    @ProtoNumber(9) var thumbnailUrl: String? = null,
    @ProtoNumber(13) var dateAdded: Long = 0,
    @ProtoNumber(16) var chapters: List<BackupChapter> = emptyList(),
    @ProtoNumber(17) var categories: List<Long> = emptyList(),
    @ProtoNumber(100) var favorite: Boolean = true,
    @ProtoNumber(104) var history: List<BackupHistory> = emptyList(),
    @ProtoNumber(105) var updateStrategy: UpdateStrategy = UpdateStrategy.ALWAYS_UPDATE,
    @ProtoNumber(106) var lastModifiedAt: Long = 0,
    @ProtoNumber(107) var favoriteModifiedAt: Long? = null,
)
`},
	{Name: "BackupPreference.kt", Source: `package eu.kanade.tachiyomi.data.backup.models

@Serializable
data class BackupPreference(
    @ProtoNumber(1) val key: String,
    @ProtoNumber(2) val value: PreferenceValue,
)

@Serializable
sealed class PreferenceValue

@Serializable
data class IntPreferenceValue(val value: Int) : PreferenceValue()

@Serializable
data class LongPreferenceValue(val value: Long) : PreferenceValue()

@Serializable
data class FloatPreferenceValue(val value: Float) : PreferenceValue()

@Serializable
data class StringPreferenceValue(val value: String) : PreferenceValue()

@Serializable
data class BooleanPreferenceValue(val value: Boolean) : PreferenceValue()

@Serializable
data class StringSetPreferenceValue(val value: Set<String>) : PreferenceValue()
`},
	{Dir: "source", Name: "BackupSource.kt", Source: `package eu.kanade.tachiyomi.data.backup.models

@Serializable
data class BackupSource(
    @ProtoNumber(1) var name: String = "",
    @ProtoNumber(2) var sourceId: Long,
)
`},
}
