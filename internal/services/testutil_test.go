package services

import (
	"path/filepath"
	"testing"

	"github.com/atelierhq/atelier/backend/internal/config"
	"github.com/atelierhq/atelier/backend/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens a throwaway sqlite database for one test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.User{},
		&models.Project{},
		&models.Review{},
		&models.ContactSubmission{},
		&models.TeamMember{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// recordingMailQueue captures enqueued mail instead of delivering it.
type recordingMailQueue struct {
	tasks []*MailTask
}

func (q *recordingMailQueue) Enqueue(task *MailTask) error {
	q.tasks = append(q.tasks, task)
	return nil
}

func (q *recordingMailQueue) IsAsync() bool { return false }
func (q *recordingMailQueue) Close() error  { return nil }

// newRecordingEmail returns an EmailService writing into the given queue.
// SMTP host stays empty so nothing ever leaves the process.
func newRecordingEmail(queue MailQueue, adminEmail string) *EmailService {
	return NewEmailService(&config.SMTPConfig{}, adminEmail, queue)
}
