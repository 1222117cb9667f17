package domain

import "strings"

// LiveChapterIndex returns the index of the live chapter, or -1 when no
// chapter carries the reserved title.
func LiveChapterIndex(chapters []JournalChapter) int {
	for i, chapter := range chapters {
		if chapter.Title == LiveChapterTitle {
			return i
		}
	}
	return -1
}

// ApplyAppendJournal appends an HTML fragment to the live chapter,
// creating the live chapter (with the provided id) when the journal lost
// it. This is the one mutation sanctioned on a locked campaign so the
// epilogue flow can still record what happened.
func ApplyAppendJournal(c Campaign, chapterID, html string, now int64) Campaign {
	chapters := append([]JournalChapter(nil), c.Journal...)
	index := LiveChapterIndex(chapters)
	if index < 0 {
		chapters = append(chapters, JournalChapter{
			ID:        chapterID,
			Title:     LiveChapterTitle,
			CreatedAt: now,
			UpdatedAt: now,
		})
		index = len(chapters) - 1
	}

	live := chapters[index]
	if live.HTML == "" {
		live.HTML = html
	} else {
		live.HTML += "<br/>" + html
	}
	live.UpdatedAt = now
	chapters[index] = live
	c.Journal = chapters
	return c
}

// ApplySetJournal replaces the live chapter's content outright, for the
// in-place editor.
func ApplySetJournal(c Campaign, chapterID, html string, now int64) Campaign {
	chapters := append([]JournalChapter(nil), c.Journal...)
	index := LiveChapterIndex(chapters)
	if index < 0 {
		chapters = append(chapters, JournalChapter{
			ID:        chapterID,
			Title:     LiveChapterTitle,
			CreatedAt: now,
			UpdatedAt: now,
		})
		index = len(chapters) - 1
	}
	chapters[index].HTML = html
	chapters[index].UpdatedAt = now
	c.Journal = chapters
	return c
}

// ApplyArchiveJournal promotes the live chapter into a read-only snapshot
// under the given title and starts a fresh live chapter. A blank title
// falls back to "Chapter".
func ApplyArchiveJournal(c Campaign, freshChapterID, title string, now int64) Campaign {
	title = strings.TrimSpace(title)
	if title == "" || title == LiveChapterTitle {
		title = "Chapter"
	}

	chapters := append([]JournalChapter(nil), c.Journal...)
	index := LiveChapterIndex(chapters)
	if index < 0 {
		chapters = append(chapters, JournalChapter{
			ID:        freshChapterID,
			Title:     LiveChapterTitle,
			CreatedAt: now,
			UpdatedAt: now,
		})
		c.Journal = chapters
		return c
	}

	chapters[index].Title = title
	chapters[index].UpdatedAt = now
	chapters = append(chapters, JournalChapter{
		ID:        freshChapterID,
		Title:     LiveChapterTitle,
		CreatedAt: now,
		UpdatedAt: now,
	})
	c.Journal = chapters
	return c
}
