package config

// Layout constants.
const (
	// CompactModeThreshold switches to the plain clock below this width.
	CompactModeThreshold = 60

	// ProgressWidth is the preferred width of the progress bar.
	ProgressWidth = 40

	// MinProgressWidth is the narrowest progress bar rendered.
	MinProgressWidth = 10

	// InputWidth is the width of each duration field.
	InputWidth = 4

	// FieldCharLimit bounds the digits accepted per duration field.
	FieldCharLimit = 2
)

// Display limits.
const (
	// HistoryListLimit is the default row count for the history command.
	HistoryListLimit = 20

	// TruncationSuffix appended to truncated strings.
	TruncationSuffix = "…"
)
