package services

import (
	"strings"
	"testing"

	"github.com/atelierhq/atelier/backend/internal/models"
)

func TestContactSubmit(t *testing.T) {
	queue := &recordingMailQueue{}
	svc := NewContactService(setupTestDB(t), newRecordingEmail(queue, "studio@atelier.example"))

	sub, err := svc.Submit(&SubmitContactRequest{
		Name:        "Tom de Vries",
		Email:       "tom@example.com",
		Phone:       "+31 6 1234 5678",
		ProjectType: "residential",
		Message:     "We are renovating a 1920s townhouse and need help with the interior.",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if sub.Status != models.ContactStatusNew {
		t.Errorf("new submissions must start as %q, got %q", models.ContactStatusNew, sub.Status)
	}

	if len(queue.tasks) != 2 {
		t.Fatalf("expected 2 emails enqueued, got %d", len(queue.tasks))
	}
	if queue.tasks[0].To[0] != "studio@atelier.example" {
		t.Errorf("notification should go to the studio, got %v", queue.tasks[0].To)
	}
	if queue.tasks[1].To[0] != "tom@example.com" {
		t.Errorf("confirmation should go to the submitter, got %v", queue.tasks[1].To)
	}
}

func TestContactNotificationEscapesMessage(t *testing.T) {
	queue := &recordingMailQueue{}
	svc := NewContactService(setupTestDB(t), newRecordingEmail(queue, "studio@atelier.example"))

	if _, err := svc.Submit(&SubmitContactRequest{
		Name:        "Mallory",
		Email:       "mallory@example.com",
		ProjectType: "commercial",
		Message:     `<script>alert("hi")</script>`,
	}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if len(queue.tasks) == 0 {
		t.Fatal("no email enqueued")
	}
	if strings.Contains(queue.tasks[0].Body, "<script>") {
		t.Error("user content must be HTML-escaped in the notification body")
	}
}

func TestContactStatusLifecycle(t *testing.T) {
	svc := NewContactService(setupTestDB(t), nil)

	sub, err := svc.Submit(&SubmitContactRequest{
		Name:        "A",
		Email:       "a@example.com",
		ProjectType: "residential",
		Message:     "m",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}

	if _, err := svc.UpdateStatus(sub.ID, models.ContactStatusContacted); err != nil {
		t.Fatalf("status update failed: %v", err)
	}
	stored, err := svc.GetByID(sub.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Status != models.ContactStatusContacted {
		t.Errorf("expected status %q, got %q", models.ContactStatusContacted, stored.Status)
	}

	if _, err := svc.UpdateStatus(9999, models.ContactStatusClosed); err == nil {
		t.Error("updating a missing submission should fail")
	}
}

func TestContactDeleteLeavesOthersIntact(t *testing.T) {
	svc := NewContactService(setupTestDB(t), nil)

	var ids []uint
	for _, name := range []string{"first", "second", "third"} {
		sub, err := svc.Submit(&SubmitContactRequest{
			Name:        name,
			Email:       name + "@example.com",
			ProjectType: "residential",
			Message:     "m",
		})
		if err != nil {
			t.Fatalf("submit failed: %v", err)
		}
		ids = append(ids, sub.ID)
	}

	if err := svc.Delete(ids[1]); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	remaining, err := svc.List(&ContactListRequest{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if remaining.Total != 2 {
		t.Fatalf("expected 2 remaining submissions, got %d", remaining.Total)
	}
	for _, sub := range remaining.Items {
		if sub.ID == ids[1] {
			t.Error("deleted submission still listed")
		}
	}

	if err := svc.Delete(ids[1]); err == nil {
		t.Error("deleting a missing submission should fail")
	}
}

func TestContactListFilters(t *testing.T) {
	svc := NewContactService(setupTestDB(t), nil)

	a, err := svc.Submit(&SubmitContactRequest{
		Name: "Anna Berg", Email: "anna@example.com", ProjectType: "residential", Message: "m",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.Submit(&SubmitContactRequest{
		Name: "Bruno Keller", Email: "bruno@example.com", ProjectType: "commercial", Message: "m",
	}); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.UpdateStatus(a.ID, models.ContactStatusClosed); err != nil {
		t.Fatalf("status update failed: %v", err)
	}

	closed, err := svc.List(&ContactListRequest{Status: models.ContactStatusClosed})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if closed.Total != 1 || closed.Items[0].Name != "Anna Berg" {
		t.Errorf("status filter not applied, got %d items", closed.Total)
	}

	search, err := svc.List(&ContactListRequest{Search: "bruno"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if search.Total != 1 || search.Items[0].Name != "Bruno Keller" {
		t.Errorf("search filter not applied, got %d items", search.Total)
	}
}

func TestContactListNew(t *testing.T) {
	svc := NewContactService(setupTestDB(t), nil)

	first, err := svc.Submit(&SubmitContactRequest{
		Name: "first", Email: "f@example.com", ProjectType: "residential", Message: "m",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	second, err := svc.Submit(&SubmitContactRequest{
		Name: "second", Email: "s@example.com", ProjectType: "commercial", Message: "m",
	})
	if err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if _, err := svc.UpdateStatus(second.ID, models.ContactStatusContacted); err != nil {
		t.Fatalf("status update failed: %v", err)
	}

	pending, err := svc.ListNew()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(pending) != 1 || pending[0].ID != first.ID {
		t.Errorf("expected only the untouched submission, got %d items", len(pending))
	}
}
