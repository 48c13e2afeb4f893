package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/atelierhq/atelier/backend/internal/config"
	"github.com/atelierhq/atelier/backend/pkg/logger"
	"github.com/robfig/cron/v3"
)

// DigestService emails the studio a daily summary of contact submissions
// still awaiting a reply. On weekends and public holidays the digest is
// held over, so nobody gets work email on a day off.
type DigestService struct {
	contacts  *ContactService
	email     *EmailService
	cfg       *config.DigestConfig
	workdays  *WorkdayService
	scheduler *cron.Cron
	now       func() time.Time
}

func NewDigestService(contacts *ContactService, email *EmailService, cfg *config.DigestConfig) *DigestService {
	return &DigestService{
		contacts: contacts,
		email:    email,
		cfg:      cfg,
		workdays: NewWorkdayService(),
		now:      time.Now,
	}
}

// StartScheduler registers the daily digest job at the configured time.
func (s *DigestService) StartScheduler() error {
	if !s.cfg.Enabled {
		return nil
	}

	hour, minute, err := parseDigestTime(s.cfg.Time)
	if err != nil {
		return err
	}

	s.scheduler = cron.New()
	cronExpr := fmt.Sprintf("%d %d * * *", minute, hour)
	if _, err := s.scheduler.AddFunc(cronExpr, s.Run); err != nil {
		return err
	}
	s.scheduler.Start()

	logger.Infof("[Digest] Scheduled daily at %02d:%02d", hour, minute)
	return nil
}

// StopScheduler stops the digest scheduler.
func (s *DigestService) StopScheduler() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}

// Run sends the digest once. Skipped on non-working days and when no
// submissions are waiting.
func (s *DigestService) Run() {
	if s.cfg.WorkdaysOnly {
		today := s.now()
		if !s.workdays.IsWorkday(today, s.cfg.Country) {
			logger.Infof("[Digest] %s is not a working day, skipping", today.Format("2006-01-02"))
			return
		}
	}

	subs, err := s.contacts.ListNew()
	if err != nil {
		logger.Errorf("[Digest] failed to load pending enquiries: %v", err)
		return
	}

	if len(subs) == 0 {
		logger.Infof("[Digest] no pending enquiries, skipping")
		return
	}

	if err := s.email.SendContactDigest(subs); err != nil {
		logger.Warnf("[Digest] failed to send: %v", err)
		return
	}

	logger.Infof("[Digest] sent summary of %d pending enquiries", len(subs))
}

func parseDigestTime(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid digest time %q, expected HH:MM", value)
	}
	if _, err := fmt.Sscanf(value, "%d:%d", &hour, &minute); err != nil {
		return 0, 0, fmt.Errorf("invalid digest time %q: %w", value, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid digest time %q", value)
	}
	return hour, minute, nil
}
