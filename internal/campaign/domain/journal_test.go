package domain

import "testing"

func TestApplyAppendJournal(t *testing.T) {
	c := testCampaign(t)

	c = ApplyAppendJournal(c, "ch2", "<p>First entry</p>", 100)
	index := LiveChapterIndex(c.Journal)
	if index < 0 {
		t.Fatal("expected a live chapter")
	}
	if c.Journal[index].HTML != "<p>First entry</p>" {
		t.Fatalf("unexpected html %q", c.Journal[index].HTML)
	}

	c = ApplyAppendJournal(c, "ch3", "<p>Second</p>", 200)
	if c.Journal[index].HTML != "<p>First entry</p><br/><p>Second</p>" {
		t.Fatalf("expected appended html, got %q", c.Journal[index].HTML)
	}
	if c.Journal[index].UpdatedAt != 200 {
		t.Fatalf("expected updatedAt 200, got %d", c.Journal[index].UpdatedAt)
	}
}

func TestApplyAppendJournalRecreatesLiveChapter(t *testing.T) {
	c := testCampaign(t)
	c.Journal = []JournalChapter{}

	c = ApplyAppendJournal(c, "fresh", "<p>Back</p>", 50)
	index := LiveChapterIndex(c.Journal)
	if index < 0 {
		t.Fatal("expected live chapter recreated")
	}
	if c.Journal[index].ID != "fresh" {
		t.Fatalf("expected provided chapter id, got %q", c.Journal[index].ID)
	}
}

func TestApplyArchiveJournal(t *testing.T) {
	c := testCampaign(t)
	c = ApplySetJournal(c, "x", "<p>Season one</p>", 10)

	c = ApplyArchiveJournal(c, "ch-new", "Season One", 20)

	if len(c.Journal) != 2 {
		t.Fatalf("expected two chapters, got %d", len(c.Journal))
	}
	if c.Journal[0].Title != "Season One" || c.Journal[0].HTML != "<p>Season one</p>" {
		t.Fatalf("expected archived snapshot, got %+v", c.Journal[0])
	}
	live := c.Journal[LiveChapterIndex(c.Journal)]
	if live.HTML != "" || live.ID != "ch-new" {
		t.Fatalf("expected fresh live chapter, got %+v", live)
	}
}

func TestApplyArchiveJournalRejectsReservedTitle(t *testing.T) {
	c := testCampaign(t)
	c = ApplyArchiveJournal(c, "ch-new", LiveChapterTitle, 20)

	titles := make(map[string]int)
	for _, chapter := range c.Journal {
		titles[chapter.Title]++
	}
	if titles[LiveChapterTitle] != 1 {
		t.Fatalf("expected exactly one live chapter, got %d", titles[LiveChapterTitle])
	}
	if titles["Chapter"] != 1 {
		t.Fatalf("expected reserved title replaced with Chapter, got %v", titles)
	}
}
