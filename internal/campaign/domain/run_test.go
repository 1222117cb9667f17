package domain

import (
	"testing"

	apperrors "github.com/solo-blaster/companion/internal/errors"
)

func testCampaign(t *testing.T) Campaign {
	t.Helper()
	seq := 0
	c, err := NewCampaign("Test", nil, func() (string, error) {
		seq++
		return string(rune('a' + seq)), nil
	})
	if err != nil {
		t.Fatalf("new campaign: %v", err)
	}
	return c
}

func TestApplyStartRun(t *testing.T) {
	c := testCampaign(t)
	c.Resources.Bite = 2

	started, err := ApplyStartRun(c, "  Steal the prototype ", "A favor")
	if err != nil {
		t.Fatalf("start run: %v", err)
	}
	if !started.Run.IsActive {
		t.Fatal("expected run active")
	}
	if started.Run.Goal != "Steal the prototype" {
		t.Fatalf("unexpected goal %q", started.Run.Goal)
	}
	if started.Run.BiteStart != 2 {
		t.Fatalf("expected bite start 2, got %d", started.Run.BiteStart)
	}

	if _, err := ApplyStartRun(started, "again", ""); !apperrors.IsCode(err, apperrors.CodeRunAlreadyActive) {
		t.Fatalf("expected RUN_ALREADY_ACTIVE, got %v", err)
	}
}

func TestApplyEndRunRequiresZeroBite(t *testing.T) {
	c := testCampaign(t)
	started, err := ApplyStartRun(c, "goal", "prize")
	if err != nil {
		t.Fatalf("start run: %v", err)
	}

	started.Resources.Bite = 3
	if _, err := ApplyEndRun(started); !apperrors.IsCode(err, apperrors.CodeRunBiteRemaining) {
		t.Fatalf("expected RUN_BITE_REMAINING, got %v", err)
	}

	started.Resources.Bite = 0
	ended, err := ApplyEndRun(started)
	if err != nil {
		t.Fatalf("end run: %v", err)
	}
	if ended.Run.IsActive {
		t.Fatal("expected run inactive")
	}
	if len(ended.Run.Tracks) != 0 {
		t.Fatal("expected tracks cleared")
	}
}

func TestApplyEndRunWithoutActiveRun(t *testing.T) {
	c := testCampaign(t)
	if _, err := ApplyEndRun(c); !apperrors.IsCode(err, apperrors.CodeRunNotActive) {
		t.Fatalf("expected RUN_NOT_ACTIVE, got %v", err)
	}
}

func TestApplyTickTrackClamps(t *testing.T) {
	c := testCampaign(t)
	c, err := ApplyAddTrack(c, "t1", TrackProgress, "Infiltrate", 4)
	if err != nil {
		t.Fatalf("add track: %v", err)
	}

	for i := 0; i < 6; i++ {
		c, err = ApplyTickTrack(c, "t1", 1)
		if err != nil {
			t.Fatalf("tick up: %v", err)
		}
	}
	if got := c.Run.Tracks[0].Ticks; got != 4 {
		t.Fatalf("expected ticks clamped at 4, got %d", got)
	}

	for i := 0; i < 6; i++ {
		c, err = ApplyTickTrack(c, "t1", -1)
		if err != nil {
			t.Fatalf("tick down: %v", err)
		}
	}
	if got := c.Run.Tracks[0].Ticks; got != 0 {
		t.Fatalf("expected ticks clamped at 0, got %d", got)
	}
}

func TestApplyAddTrackValidatesLength(t *testing.T) {
	c := testCampaign(t)
	if _, err := ApplyAddTrack(c, "t1", TrackDanger, "Heat", 0); !apperrors.IsCode(err, apperrors.CodeTrackInvalidLength) {
		t.Fatalf("expected TRACK_INVALID_LENGTH, got %v", err)
	}
}

func TestApplyRemoveTrack(t *testing.T) {
	c := testCampaign(t)
	c, err := ApplyAddTrack(c, "t1", TrackDanger, "Heat", 6)
	if err != nil {
		t.Fatalf("add track: %v", err)
	}
	c, err = ApplyRemoveTrack(c, "t1")
	if err != nil {
		t.Fatalf("remove track: %v", err)
	}
	if len(c.Run.Tracks) != 0 {
		t.Fatal("expected no tracks")
	}
	if _, err := ApplyRemoveTrack(c, "t1"); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected NOT_FOUND, got %v", err)
	}
}
