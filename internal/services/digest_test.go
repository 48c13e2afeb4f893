package services

import (
	"testing"
	"time"

	"github.com/atelierhq/atelier/backend/internal/config"
)

func TestParseDigestTime(t *testing.T) {
	tests := []struct {
		value   string
		hour    int
		minute  int
		wantErr bool
	}{
		{"08:30", 8, 30, false},
		{"00:00", 0, 0, false},
		{"23:59", 23, 59, false},
		{"24:00", 0, 0, true},
		{"12:60", 0, 0, true},
		{"8", 0, 0, true},
		{"", 0, 0, true},
		{"noon", 0, 0, true},
	}

	for _, tt := range tests {
		hour, minute, err := parseDigestTime(tt.value)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseDigestTime(%q) should fail", tt.value)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseDigestTime(%q) failed: %v", tt.value, err)
			continue
		}
		if hour != tt.hour || minute != tt.minute {
			t.Errorf("parseDigestTime(%q) = %d:%d, want %d:%d", tt.value, hour, minute, tt.hour, tt.minute)
		}
	}
}

func TestDigestRunSkipsWhenEmpty(t *testing.T) {
	queue := &recordingMailQueue{}
	email := newRecordingEmail(queue, "studio@atelier.example")
	contacts := NewContactService(setupTestDB(t), nil)

	digest := NewDigestService(contacts, email, &config.DigestConfig{Enabled: true, Time: "08:00"})
	digest.Run()

	if len(queue.tasks) != 0 {
		t.Errorf("digest must not send when nothing is pending, got %d emails", len(queue.tasks))
	}
}

func TestDigestRunSendsPendingSummary(t *testing.T) {
	queue := &recordingMailQueue{}
	email := newRecordingEmail(queue, "studio@atelier.example")
	contacts := NewContactService(setupTestDB(t), nil)

	for _, name := range []string{"first", "second"} {
		if _, err := contacts.Submit(&SubmitContactRequest{
			Name: name, Email: name + "@example.com", ProjectType: "residential", Message: "m",
		}); err != nil {
			t.Fatalf("submit failed: %v", err)
		}
	}

	digest := NewDigestService(contacts, email, &config.DigestConfig{Enabled: true, Time: "08:00"})
	digest.Run()

	if len(queue.tasks) != 1 {
		t.Fatalf("expected 1 digest email, got %d", len(queue.tasks))
	}
	if queue.tasks[0].To[0] != "studio@atelier.example" {
		t.Errorf("digest should go to the studio, got %v", queue.tasks[0].To)
	}
}

func TestDigestSchedulerDisabled(t *testing.T) {
	digest := NewDigestService(nil, nil, &config.DigestConfig{Enabled: false})
	if err := digest.StartScheduler(); err != nil {
		t.Fatalf("disabled digest should start as a no-op: %v", err)
	}
	digest.StopScheduler()
}

func TestDigestSchedulerRejectsBadTime(t *testing.T) {
	digest := NewDigestService(nil, nil, &config.DigestConfig{Enabled: true, Time: "later"})
	if err := digest.StartScheduler(); err == nil {
		t.Error("invalid digest time should fail the scheduler start")
		digest.StopScheduler()
	}
}

func TestDigestSkipsNonWorkingDays(t *testing.T) {
	queue := &recordingMailQueue{}
	email := newRecordingEmail(queue, "studio@atelier.example")
	contacts := NewContactService(setupTestDB(t), nil)

	if _, err := contacts.Submit(&SubmitContactRequest{
		Name: "pending", Email: "p@example.com", ProjectType: "residential", Message: "m",
	}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	digest := NewDigestService(contacts, email, &config.DigestConfig{
		Enabled: true, Time: "08:00", WorkdaysOnly: true, Country: "NONE",
	})

	digest.now = func() time.Time {
		return time.Date(2026, time.March, 7, 8, 0, 0, 0, time.UTC) // Saturday
	}
	digest.Run()
	if len(queue.tasks) != 0 {
		t.Fatalf("digest must not go out on a weekend, got %d emails", len(queue.tasks))
	}

	digest.now = func() time.Time {
		return time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC) // Monday
	}
	digest.Run()
	if len(queue.tasks) != 1 {
		t.Errorf("expected the held-over digest on the next working day, got %d emails", len(queue.tasks))
	}
}

func TestDigestSkipsPublicHolidays(t *testing.T) {
	queue := &recordingMailQueue{}
	email := newRecordingEmail(queue, "studio@atelier.example")
	contacts := NewContactService(setupTestDB(t), nil)

	if _, err := contacts.Submit(&SubmitContactRequest{
		Name: "pending", Email: "p@example.com", ProjectType: "residential", Message: "m",
	}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	digest := NewDigestService(contacts, email, &config.DigestConfig{
		Enabled: true, Time: "08:00", WorkdaysOnly: true, Country: "NL",
	})
	digest.now = func() time.Time {
		return time.Date(2026, time.April, 27, 8, 0, 0, 0, time.UTC) // King's Day, a Monday
	}
	digest.Run()
	if len(queue.tasks) != 0 {
		t.Errorf("digest must not go out on a public holiday, got %d emails", len(queue.tasks))
	}
}

func TestDigestIgnoresCalendarWhenDisabled(t *testing.T) {
	queue := &recordingMailQueue{}
	email := newRecordingEmail(queue, "studio@atelier.example")
	contacts := NewContactService(setupTestDB(t), nil)

	if _, err := contacts.Submit(&SubmitContactRequest{
		Name: "pending", Email: "p@example.com", ProjectType: "residential", Message: "m",
	}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	digest := NewDigestService(contacts, email, &config.DigestConfig{
		Enabled: true, Time: "08:00", WorkdaysOnly: false,
	})
	digest.now = func() time.Time {
		return time.Date(2026, time.March, 8, 8, 0, 0, 0, time.UTC) // Sunday
	}
	digest.Run()
	if len(queue.tasks) != 1 {
		t.Errorf("with workday gating off the digest goes out every day, got %d emails", len(queue.tasks))
	}
}
