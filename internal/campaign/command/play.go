package command

import (
	"time"

	"github.com/solo-blaster/companion/internal/campaign/domain"
)

// StartRun begins a new run with a goal and optional prize.
type StartRun struct {
	Goal  string
	Prize string
}

func (StartRun) Name() string { return "run.start" }

func (cmd StartRun) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	return domain.ApplyStartRun(c, cmd.Goal, cmd.Prize)
}

// EndRun finishes the active run. It refuses while Bite remains.
type EndRun struct{}

func (EndRun) Name() string { return "run.end" }

func (EndRun) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	return domain.ApplyEndRun(c)
}

// MarkDisasterRolled records that the Disaster Roll for the current
// Trouble ceiling has been made.
type MarkDisasterRolled struct{}

func (MarkDisasterRolled) Name() string { return "run.mark_disaster_rolled" }

func (MarkDisasterRolled) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	return domain.ApplyMarkDisasterRolled(c), nil
}

// AddTrack attaches a tick clock to the active run. ID is minted when
// blank.
type AddTrack struct {
	ID     string
	Type   domain.TrackType
	Title  string
	Length int
}

func (AddTrack) Name() string { return "run.add_track" }

func (cmd AddTrack) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	trackID, err := ensureID(cmd.ID)
	if err != nil {
		return c, err
	}
	return domain.ApplyAddTrack(c, trackID, cmd.Type, cmd.Title, cmd.Length)
}

// RemoveTrack deletes a track by id.
type RemoveTrack struct {
	ID string
}

func (RemoveTrack) Name() string { return "run.remove_track" }

func (cmd RemoveTrack) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	return domain.ApplyRemoveTrack(c, cmd.ID)
}

// TickTrack moves a track's ticks by a delta, clamped to [0, length].
type TickTrack struct {
	ID    string
	Delta int
}

func (TickTrack) Name() string { return "run.tick_track" }

func (cmd TickTrack) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	return domain.ApplyTickTrack(c, cmd.ID, cmd.Delta)
}

// AppendJournal appends sanitized HTML to the live chapter. This is the
// one mutation a locked campaign still accepts.
type AppendJournal struct {
	ChapterID string
	HTML      string
}

func (AppendJournal) Name() string { return "journal.append" }

func (AppendJournal) AllowWhileLocked() bool { return true }

func (cmd AppendJournal) Apply(c domain.Campaign, now time.Time) (domain.Campaign, error) {
	chapterID, err := ensureID(cmd.ChapterID)
	if err != nil {
		return c, err
	}
	return domain.ApplyAppendJournal(c, chapterID, cmd.HTML, domain.Millis(now)), nil
}

// SetJournal replaces the live chapter's content, as the editor does on
// save.
type SetJournal struct {
	ChapterID string
	HTML      string
}

func (SetJournal) Name() string { return "journal.set" }

func (cmd SetJournal) Apply(c domain.Campaign, now time.Time) (domain.Campaign, error) {
	chapterID, err := ensureID(cmd.ChapterID)
	if err != nil {
		return c, err
	}
	return domain.ApplySetJournal(c, chapterID, cmd.HTML, domain.Millis(now)), nil
}

// ArchiveJournal freezes the live chapter under the given title and
// starts a fresh live chapter.
type ArchiveJournal struct {
	FreshChapterID string
	Title          string
}

func (ArchiveJournal) Name() string { return "journal.archive" }

func (cmd ArchiveJournal) Apply(c domain.Campaign, now time.Time) (domain.Campaign, error) {
	chapterID, err := ensureID(cmd.FreshChapterID)
	if err != nil {
		return c, err
	}
	return domain.ApplyArchiveJournal(c, chapterID, cmd.Title, domain.Millis(now)), nil
}

// StartEpilogue retires the campaign: it becomes read-only except for
// journal appends.
type StartEpilogue struct{}

func (StartEpilogue) Name() string { return "campaign.start_epilogue" }

func (StartEpilogue) Apply(c domain.Campaign, _ time.Time) (domain.Campaign, error) {
	c.Locked = true
	return c, nil
}
