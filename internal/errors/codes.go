// Package errors provides structured, code-tagged error handling with
// localized user-facing messages.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Campaign errors
	CodeCampaignNotFound  Code = "CAMPAIGN_NOT_FOUND"
	CodeCampaignNameEmpty Code = "CAMPAIGN_NAME_EMPTY"

	// Import errors
	CodeImportInvalidJSON   Code = "IMPORT_INVALID_JSON"
	CodeImportNotACampaign  Code = "IMPORT_NOT_A_CAMPAIGN"

	// Component / gear errors
	CodeComponentsInsufficient Code = "COMPONENTS_INSUFFICIENT"
	CodeSignatureGearMissing   Code = "SIGNATURE_GEAR_MISSING"
	CodeModNameEmpty           Code = "MOD_NAME_EMPTY"

	// Resource errors
	CodeResourceUnknown Code = "RESOURCE_UNKNOWN"

	// Run errors
	CodeRunAlreadyActive    Code = "RUN_ALREADY_ACTIVE"
	CodeRunNotActive        Code = "RUN_NOT_ACTIVE"
	CodeRunBiteRemaining    Code = "RUN_BITE_REMAINING"
	CodeTrackInvalidLength  Code = "TRACK_INVALID_LENGTH"

	// Epilogue errors
	CodeEpilogueNameEmpty Code = "EPILOGUE_NAME_EMPTY"

	// Generic lookup failure for owned entities (tracks, NPCs, worlds,
	// portals, epilogue items).
	CodeNotFound Code = "NOT_FOUND"

	// Storage errors
	CodeStorageUnavailable Code = "STORAGE_UNAVAILABLE"
)
