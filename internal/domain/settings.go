package domain

import "strconv"

// Setting keys as stored in the settings table and carried in sync snapshots.
const (
	SettingDailyReviewTarget = "daily_review_target"
	SettingReminderTime      = "reminder_time"
	SettingAutoCleanup       = "auto_cleanup"
)

// Settings holds the user preferences of one store. Settings carry no
// timestamps, so sync reconciliation for them is a plain field-wise merge
// rather than a conflict resolution.
type Settings struct {
	DailyReviewTarget int    `json:"daily_review_target"`
	ReminderTime      string `json:"reminder_time"`
	AutoCleanup       bool   `json:"auto_cleanup"`
}

// DefaultSettings returns the preferences a fresh store starts with.
func DefaultSettings() Settings {
	return Settings{
		DailyReviewTarget: 10,
		ReminderTime:      "09:00",
		AutoCleanup:       true,
	}
}

// SettingsFromValues builds Settings from raw key/value rows, falling back
// to defaults for missing or malformed values.
func SettingsFromValues(values map[string]string) Settings {
	s := DefaultSettings()

	if raw, ok := values[SettingDailyReviewTarget]; ok {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			s.DailyReviewTarget = n
		}
	}

	if raw, ok := values[SettingReminderTime]; ok && raw != "" {
		s.ReminderTime = raw
	}

	if raw, ok := values[SettingAutoCleanup]; ok {
		if b, err := strconv.ParseBool(raw); err == nil {
			s.AutoCleanup = b
		}
	}

	return s
}

// Values flattens the settings back into raw key/value rows for storage
// and for the sync snapshot.
func (s Settings) Values() map[string]string {
	return map[string]string{
		SettingDailyReviewTarget: strconv.Itoa(s.DailyReviewTarget),
		SettingReminderTime:      s.ReminderTime,
		SettingAutoCleanup:       strconv.FormatBool(s.AutoCleanup),
	}
}
