package domain

import (
	apperrors "github.com/solo-blaster/companion/internal/errors"
)

// ResourceName identifies one adjustable resource counter.
type ResourceName string

const (
	ResourceAttitudeBoost ResourceName = "attitudeBoost"
	ResourceAttitudeKick  ResourceName = "attitudeKick"
	ResourceTurboBoost    ResourceName = "turboBoost"
	ResourceTurboKick     ResourceName = "turboKick"
	ResourceBite          ResourceName = "bite"
	ResourceTrouble       ResourceName = "trouble"
	ResourceStyle         ResourceName = "style"
)

// ApplyResourceChange adjusts one counter by delta and clamps it to its
// legal range. Trouble is capped at TroubleMax, Style at StyleMax; every
// counter floors at zero. Doom and Legacy are not adjustable here: the
// epilogue lists are authoritative for them.
func ApplyResourceChange(res Resources, name ResourceName, delta int) (Resources, error) {
	updated := res
	switch name {
	case ResourceAttitudeBoost:
		updated.AttitudeBoost = clampMin(res.AttitudeBoost+delta, 0)
	case ResourceAttitudeKick:
		updated.AttitudeKick = clampMin(res.AttitudeKick+delta, 0)
	case ResourceTurboBoost:
		updated.TurboBoost = clampMin(res.TurboBoost+delta, 0)
	case ResourceTurboKick:
		updated.TurboKick = clampMin(res.TurboKick+delta, 0)
	case ResourceBite:
		updated.Bite = clampMin(res.Bite+delta, 0)
	case ResourceTrouble:
		updated.Trouble = clampRange(res.Trouble+delta, 0, TroubleMax)
	case ResourceStyle:
		updated.Style = clampRange(res.Style+delta, 0, StyleMax)
	default:
		return Resources{}, apperrors.New(apperrors.CodeResourceUnknown, "unknown resource").
			WithMetadata(map[string]string{"Resource": string(name)})
	}
	return updated, nil
}

// ClampResources forces every counter into its legal range without
// changing intent. Used by the normalizer on loaded data.
func ClampResources(res Resources) Resources {
	res.AttitudeBoost = clampMin(res.AttitudeBoost, 0)
	res.AttitudeKick = clampMin(res.AttitudeKick, 0)
	res.TurboBoost = clampMin(res.TurboBoost, 0)
	res.TurboKick = clampMin(res.TurboKick, 0)
	res.Bite = clampMin(res.Bite, 0)
	res.Trouble = clampRange(res.Trouble, 0, TroubleMax)
	res.Style = clampRange(res.Style, 0, StyleMax)
	res.Doom = clampMin(res.Doom, 0)
	res.Legacy = clampMin(res.Legacy, 0)
	return res
}
