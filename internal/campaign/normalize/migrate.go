package normalize

// The migration chain upgrades a raw persisted record one schema version
// at a time. Version 0 is any record with no schemaVersion tag, which
// covers every save written before the tag existed. Each step mutates the
// loose map in place; the defaulting decode in normalize.go runs after
// the whole chain.
//
// Precedence rule, applied uniformly: the modern field wins when it is
// present and non-empty; the legacy field is migrated only otherwise.

// migrations[v] upgrades a record from version v to v+1.
var migrations = []func(map[string]any){
	migrateDualTracks,      // v0 -> v1: flat attitude/turbo to Boost/Kick halves
	migrateLegacyCharacter, // v1 -> v2: trait, family string, hangouts list
	migrateJournalChapters, // v2 -> v3: flat journalHtml to chapters
}

func runMigrations(m map[string]any) {
	version := intValue(m["schemaVersion"], 0)
	if version < 0 {
		version = 0
	}
	for v := version; v < len(migrations); v++ {
		migrations[v](m)
	}
}

// migrateDualTracks maps the legacy flat attitude/turbo numbers onto the
// Boost halves. The Kick halves keep their defaults.
func migrateDualTracks(m map[string]any) {
	res, ok := m["resources"].(map[string]any)
	if !ok {
		return
	}
	if _, modern := numberValue(res["attitudeBoost"]); !modern {
		if flat, legacy := numberValue(res["attitude"]); legacy {
			res["attitudeBoost"] = flat
		}
	}
	if _, modern := numberValue(res["turboBoost"]); !modern {
		if flat, legacy := numberValue(res["turbo"]); legacy {
			res["turboBoost"] = flat
		}
	}
}

// migrateLegacyCharacter upgrades the singular trait field, the family
// string, and the free-form hangouts list to their current shapes.
func migrateLegacyCharacter(m map[string]any) {
	ch, ok := m["character"].(map[string]any)
	if !ok {
		return
	}

	if len(stringList(ch["traits"])) == 0 {
		if trait, ok := ch["trait"].(string); ok && trimmed(trait) != "" {
			ch["traits"] = []any{trimmed(trait)}
		}
	}

	if family, ok := ch["family"].(string); ok {
		ch["family"] = []any{family, ""}
	}

	if hangouts, ok := ch["hangouts"].([]any); ok && len(hangouts) != 2 {
		pair := []any{"", ""}
		for i := 0; i < len(hangouts) && i < 2; i++ {
			if s, ok := hangouts[i].(string); ok {
				pair[i] = s
			}
		}
		ch["hangouts"] = pair
	}
}

// migrateJournalChapters promotes the flat journalHtml field into a
// single live chapter. The flat field is not written back: the chapter
// list is the only journal representation from v3 on.
func migrateJournalChapters(m map[string]any) {
	if chapters, ok := m["journalChapters"].([]any); ok && len(chapters) > 0 {
		return
	}
	html, _ := m["journalHtml"].(string)
	m["journalChapters"] = []any{
		map[string]any{"title": liveChapterTitle, "html": html},
	}
}
