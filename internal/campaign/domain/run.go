package domain

import (
	"strconv"
	"strings"

	apperrors "github.com/solo-blaster/companion/internal/errors"
)

// ApplyStartRun begins a run, recording the Bite the run started with so
// the sheet can show what is left to burn down.
func ApplyStartRun(c Campaign, goal, prize string) (Campaign, error) {
	if c.Run.IsActive {
		return Campaign{}, apperrors.New(apperrors.CodeRunAlreadyActive, "a run is already active")
	}
	c.Run.IsActive = true
	c.Run.Goal = strings.TrimSpace(goal)
	c.Run.Prize = strings.TrimSpace(prize)
	c.Run.BiteStart = c.Resources.Bite
	c.Run.DisasterRolled = false
	return c, nil
}

// ApplyEndRun ends the active run. A run may only end once Bite has been
// burned down to zero.
func ApplyEndRun(c Campaign) (Campaign, error) {
	if !c.Run.IsActive {
		return Campaign{}, apperrors.New(apperrors.CodeRunNotActive, "no run is active")
	}
	if c.Resources.Bite != 0 {
		return Campaign{}, apperrors.New(apperrors.CodeRunBiteRemaining, "bite must be zero to end a run").
			WithMetadata(map[string]string{"Bite": strconv.Itoa(c.Resources.Bite)})
	}
	c.Run.IsActive = false
	c.Run.Goal = ""
	c.Run.Prize = ""
	c.Run.BiteStart = 0
	c.Run.Tracks = []Track{}
	return c, nil
}

// ApplyAddTrack appends a new tick clock to the run.
func ApplyAddTrack(c Campaign, trackID string, trackType TrackType, name string, length int) (Campaign, error) {
	if length < 1 {
		return Campaign{}, apperrors.New(apperrors.CodeTrackInvalidLength, "track length must be at least 1")
	}
	if trackType != TrackDanger {
		trackType = TrackProgress
	}
	track := Track{ID: trackID, Type: trackType, Name: strings.TrimSpace(name), Length: length}
	c.Run.Tracks = append(append([]Track(nil), c.Run.Tracks...), track)
	return c, nil
}

// ApplyRemoveTrack deletes a track by id.
func ApplyRemoveTrack(c Campaign, trackID string) (Campaign, error) {
	next := make([]Track, 0, len(c.Run.Tracks))
	found := false
	for _, track := range c.Run.Tracks {
		if track.ID == trackID {
			found = true
			continue
		}
		next = append(next, track)
	}
	if !found {
		return Campaign{}, apperrors.New(apperrors.CodeNotFound, "track not found")
	}
	c.Run.Tracks = next
	return c, nil
}

// ApplyTickTrack changes a track's tick count by delta, clamped to
// [0, Length].
func ApplyTickTrack(c Campaign, trackID string, delta int) (Campaign, error) {
	next := append([]Track(nil), c.Run.Tracks...)
	for i := range next {
		if next[i].ID != trackID {
			continue
		}
		next[i].Ticks = clampRange(next[i].Ticks+delta, 0, next[i].Length)
		c.Run.Tracks = next
		return c, nil
	}
	return Campaign{}, apperrors.New(apperrors.CodeNotFound, "track not found")
}

// ApplyMarkDisasterRolled records that the Disaster Roll for this run has
// been made, so the UI does not prompt twice.
func ApplyMarkDisasterRolled(c Campaign) Campaign {
	c.Run.DisasterRolled = true
	return c
}
