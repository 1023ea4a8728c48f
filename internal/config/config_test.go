package config

import (
	"testing"
	"time"
)

func TestParseWeekdays(t *testing.T) {
	got := parseWeekdays("1, 2,3,4,5")
	want := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("day[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestParseWeekdays_SundayAndGarbage(t *testing.T) {
	got := parseWeekdays("7,x,0,8,6")
	if len(got) != 2 || got[0] != time.Sunday || got[1] != time.Saturday {
		t.Fatalf("got %v, want [Sunday Saturday]", got)
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("WORK_START_HOUR", "")
	t.Setenv("SLOT_LOCK_TTL", "3s")
	t.Setenv("EMAIL_DOMAIN_CHECK", "false")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg := Load()

	if cfg.WorkStartHour != 9 || cfg.WorkEndHour != 19 {
		t.Fatalf("working hours = %d-%d, want 9-19", cfg.WorkStartHour, cfg.WorkEndHour)
	}
	if cfg.SlotLockTTL != 3*time.Second {
		t.Fatalf("SlotLockTTL = %v, want 3s", cfg.SlotLockTTL)
	}
	if cfg.VerifyEmailDomain {
		t.Fatalf("VerifyEmailDomain = true, want false")
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "http://b.test" {
		t.Fatalf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if cfg.S3.Enabled() {
		t.Fatalf("S3 should be disabled without a bucket")
	}
}
