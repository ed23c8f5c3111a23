package issue

import "campusvoice/internal/shared/biztime"

const (
	// ContestThreshold distinct contests escalate a resolution to revalidation.
	ContestThreshold = 3

	// RevalidationThreshold matching votes settle a re-resolution.
	RevalidationThreshold = 3

	// WindowDays is the length of the contest and revalidation windows.
	WindowDays = 7

	// WindowDuration is WindowDays as a duration.
	WindowDuration = WindowDays * biztime.Day

	MaxTitleLength       = 200
	MaxDescriptionLength = 5000
	MaxSummaryLength     = 5000
	MaxReasonLength      = 2000
)
