package config

import "time"

// Timer cadence.
const (
	TickInterval  = time.Second
	FlashInterval = 500 * time.Millisecond
)

// Duration input ranges.
const (
	MaxHours   = 23
	MaxMinutes = 59
	MaxSeconds = 59
)

// Default countdown: 0h 5m 0s.
const (
	DefaultHours   = 0
	DefaultMinutes = 5
	DefaultSeconds = 0
)

// Alert defaults.
const (
	DefaultVolume = 0.0
	MinVolume     = -5.0
	MaxVolume     = 2.0
)

// Application settings.
const (
	AppName        = "countdown"
	ConfigFileName = "config.yaml"
	DBFileName     = "history.db"
	DefaultTheme   = "default"
	DebugEnvVar    = "COUNTDOWN_DEBUG"
)
