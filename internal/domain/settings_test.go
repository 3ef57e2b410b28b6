package domain

import (
	"reflect"
	"testing"
)

func TestSettingsRoundTrip(t *testing.T) {
	s := Settings{
		DailyReviewTarget: 25,
		ReminderTime:      "21:30",
		AutoCleanup:       false,
	}

	got := SettingsFromValues(s.Values())
	if !reflect.DeepEqual(s, got) {
		t.Errorf("Round trip changed settings: %+v vs %+v", s, got)
	}
}

func TestSettingsFromValuesDefaults(t *testing.T) {
	got := SettingsFromValues(nil)
	if !reflect.DeepEqual(got, DefaultSettings()) {
		t.Errorf("Expected defaults for empty values, got %+v", got)
	}
}

func TestSettingsFromValuesIgnoresMalformed(t *testing.T) {
	got := SettingsFromValues(map[string]string{
		SettingDailyReviewTarget: "not-a-number",
		SettingAutoCleanup:       "maybe",
	})

	if got.DailyReviewTarget != DefaultSettings().DailyReviewTarget {
		t.Errorf("Expected default review target, got %d", got.DailyReviewTarget)
	}

	if got.AutoCleanup != DefaultSettings().AutoCleanup {
		t.Errorf("Expected default auto cleanup, got %v", got.AutoCleanup)
	}
}
