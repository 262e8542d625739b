package countdown

import (
	"fmt"

	"github.com/akyairhashvil/countdown/internal/config"
	"github.com/akyairhashvil/countdown/internal/util"
)

// Duration is the configured countdown length.
type Duration struct {
	Hours   int
	Minutes int
	Seconds int
}

// Clamp returns d with every field forced into its input range.
func (d Duration) Clamp() Duration {
	return Duration{
		Hours:   util.Clamp(d.Hours, 0, config.MaxHours),
		Minutes: util.Clamp(d.Minutes, 0, config.MaxMinutes),
		Seconds: util.Clamp(d.Seconds, 0, config.MaxSeconds),
	}
}

func (d Duration) TotalSeconds() int {
	return d.Hours*3600 + d.Minutes*60 + d.Seconds
}

func (d Duration) IsZero() bool {
	return d.TotalSeconds() == 0
}

func (d Duration) String() string {
	return fmt.Sprintf("%dh%dm%ds", d.Hours, d.Minutes, d.Seconds)
}

// FromSeconds splits a second count into a clamped Duration.
func FromSeconds(total int) Duration {
	if total < 0 {
		total = 0
	}
	return Duration{
		Hours:   total / 3600,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
	}.Clamp()
}
