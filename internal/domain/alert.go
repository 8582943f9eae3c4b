package domain

import (
	"fmt"
	"strings"
)

const (
	RingtoneNone    = "none"
	RingtoneDefault = "default"

	customRingtonePrefix = "custom:"

	// SoundDefault is the only sound token the scheduler understands; custom
	// ringtones are played by the client.
	SoundDefault = "default"
)

type VibrationPattern string

const (
	VibrationDefault VibrationPattern = "default"
	VibrationStrong  VibrationPattern = "strong"
	VibrationDouble  VibrationPattern = "double"
	VibrationNone    VibrationPattern = "none"
)

// VibrationPatterns are [delay, vibrate, pause, vibrate, ...] in milliseconds.
var VibrationPatterns = map[VibrationPattern][]int{
	VibrationDefault: {0, 250, 250, 250},
	VibrationStrong:  {0, 500, 200, 500},
	VibrationDouble:  {0, 200, 100, 200, 100, 200},
	VibrationNone:    {},
}

func NewVibrationPattern(v string) (VibrationPattern, error) {
	if v == "" {
		return VibrationDefault, nil
	}

	if _, ok := VibrationPatterns[VibrationPattern(v)]; !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidVibrationPattern, v)
	}

	return VibrationPattern(v), nil
}

// AlertConfig is how a reminder notifies: which ringtone and which
// vibration pattern. Ringtone is "none", "default" or "custom:<uri>".
type AlertConfig struct {
	Ringtone  string
	Vibration VibrationPattern
}

func DefaultAlertConfig() AlertConfig {
	return AlertConfig{
		Ringtone:  RingtoneDefault,
		Vibration: VibrationDefault,
	}
}

func NewAlertConfig(ringtone, vibration string) (AlertConfig, error) {
	v, err := NewVibrationPattern(vibration)
	if err != nil {
		return AlertConfig{}, err
	}

	ringtone = strings.TrimSpace(ringtone)
	if ringtone == "" {
		ringtone = RingtoneDefault
	}

	return AlertConfig{Ringtone: ringtone, Vibration: v}, nil
}

// Sound returns the scheduler sound token, empty for silent.
func (a AlertConfig) Sound() string {
	if a.Ringtone == RingtoneNone {
		return ""
	}

	return SoundDefault
}

func (a AlertConfig) IsCustomRingtone() bool {
	return strings.HasPrefix(a.Ringtone, customRingtonePrefix)
}

// ChannelID is the notification channel carrying this alert's vibration.
func (a AlertConfig) ChannelID() string {
	return NotificationChannelID(a.Vibration)
}
