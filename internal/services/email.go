package services

import (
	"crypto/tls"
	"fmt"
	"html"
	"net/smtp"
	"strings"

	"github.com/atelierhq/atelier/backend/internal/config"
	"github.com/atelierhq/atelier/backend/internal/models"
	"github.com/atelierhq/atelier/backend/pkg/logger"
)

// EmailService composes the notification and confirmation emails for the
// public forms and hands them to the mail queue. Delivery is best-effort:
// a failed email never fails the originating request.
type EmailService struct {
	cfg        *config.SMTPConfig
	adminEmail string
	queue      MailQueue
}

func NewEmailService(cfg *config.SMTPConfig, adminEmail string, queue MailQueue) *EmailService {
	return &EmailService{cfg: cfg, adminEmail: adminEmail, queue: queue}
}

// SendContactNotification emails the studio about a new contact submission.
func (s *EmailService) SendContactNotification(sub *models.ContactSubmission) error {
	subject := fmt.Sprintf("[Atelier] New contact enquiry from %s", sub.Name)

	var sb strings.Builder
	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString("<h2>New Contact Enquiry</h2>")
	sb.WriteString("<table style=\"border-collapse: collapse; margin-bottom: 20px;\">")
	writeRow(&sb, "Name", sub.Name)
	writeRow(&sb, "Email", sub.Email)
	if sub.Phone != "" {
		writeRow(&sb, "Phone", sub.Phone)
	}
	writeRow(&sb, "Project type", sub.ProjectType)
	sb.WriteString("</table>")
	sb.WriteString("<h3>Message</h3>")
	sb.WriteString(fmt.Sprintf("<pre style=\"background: #f5f5f5; padding: 12px; border-radius: 4px;\">%s</pre>", html.EscapeString(sub.Message)))
	writeFooter(&sb)

	return s.enqueue([]string{s.adminEmail}, subject, sb.String())
}

// SendContactConfirmation emails the submitter an acknowledgement.
func (s *EmailService) SendContactConfirmation(sub *models.ContactSubmission) error {
	subject := "Thank you for contacting Atelier Interiors"

	var sb strings.Builder
	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString(fmt.Sprintf("<h2>Hi %s,</h2>", html.EscapeString(sub.Name)))
	sb.WriteString("<p>Thank you for getting in touch. We have received your enquiry and a member of our team will be in contact within two business days.</p>")
	sb.WriteString("<h3>Your message</h3>")
	sb.WriteString(fmt.Sprintf("<pre style=\"background: #f5f5f5; padding: 12px; border-radius: 4px;\">%s</pre>", html.EscapeString(sub.Message)))
	writeFooter(&sb)

	return s.enqueue([]string{sub.Email}, subject, sb.String())
}

// SendReviewNotification emails the studio about a newly submitted review.
func (s *EmailService) SendReviewNotification(review *models.Review) error {
	subject := fmt.Sprintf("[Atelier] New review awaiting moderation (%d/5)", review.Rating)

	var sb strings.Builder
	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString("<h2>New Review Submitted</h2>")
	sb.WriteString("<table style=\"border-collapse: collapse; margin-bottom: 20px;\">")
	writeRow(&sb, "Name", review.Name)
	writeRow(&sb, "Email", review.Email)
	writeRow(&sb, "Rating", fmt.Sprintf("%d / 5", review.Rating))
	if review.Project != "" {
		writeRow(&sb, "Project", review.Project)
	}
	sb.WriteString("</table>")
	sb.WriteString("<h3>Review</h3>")
	sb.WriteString(fmt.Sprintf("<div style=\"background: #f9f9f9; padding: 16px; border-radius: 4px; white-space: pre-wrap;\">%s</div>", html.EscapeString(review.Review)))
	sb.WriteString("<p>The review is unpublished until approved in the dashboard.</p>")
	writeFooter(&sb)

	return s.enqueue([]string{s.adminEmail}, subject, sb.String())
}

// SendReviewConfirmation emails the reviewer an acknowledgement.
func (s *EmailService) SendReviewConfirmation(review *models.Review) error {
	subject := "Thank you for reviewing Atelier Interiors"

	var sb strings.Builder
	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString(fmt.Sprintf("<h2>Hi %s,</h2>", html.EscapeString(review.Name)))
	sb.WriteString("<p>Thank you for sharing your experience with us. Your review will appear on our site once it has been approved.</p>")
	writeFooter(&sb)

	return s.enqueue([]string{review.Email}, subject, sb.String())
}

// SendContactDigest emails the studio a summary of enquiries still marked new.
func (s *EmailService) SendContactDigest(subs []models.ContactSubmission) error {
	subject := fmt.Sprintf("[Atelier] %d enquiries awaiting a reply", len(subs))

	var sb strings.Builder
	sb.WriteString("<html><body style=\"font-family: Arial, sans-serif;\">")
	sb.WriteString("<h2>Enquiries Awaiting a Reply</h2>")
	sb.WriteString("<table style=\"border-collapse: collapse; margin-bottom: 20px;\">")
	sb.WriteString("<tr><th style=\"padding: 8px; border: 1px solid #ddd;\">Name</th><th style=\"padding: 8px; border: 1px solid #ddd;\">Email</th><th style=\"padding: 8px; border: 1px solid #ddd;\">Project type</th><th style=\"padding: 8px; border: 1px solid #ddd;\">Received</th></tr>")
	for _, sub := range subs {
		sb.WriteString(fmt.Sprintf(
			"<tr><td style=\"padding: 8px; border: 1px solid #ddd;\">%s</td><td style=\"padding: 8px; border: 1px solid #ddd;\">%s</td><td style=\"padding: 8px; border: 1px solid #ddd;\">%s</td><td style=\"padding: 8px; border: 1px solid #ddd;\">%s</td></tr>",
			html.EscapeString(sub.Name), html.EscapeString(sub.Email), html.EscapeString(sub.ProjectType), sub.CreatedAt.Format("2006-01-02 15:04")))
	}
	sb.WriteString("</table>")
	writeFooter(&sb)

	return s.enqueue([]string{s.adminEmail}, subject, sb.String())
}

func (s *EmailService) enqueue(to []string, subject, body string) error {
	if s.queue == nil {
		return nil
	}
	return s.queue.Enqueue(&MailTask{To: to, Subject: subject, Body: body})
}

func writeRow(sb *strings.Builder, label, value string) {
	sb.WriteString(fmt.Sprintf("<tr><td style=\"padding: 8px; border: 1px solid #ddd; font-weight: bold;\">%s</td><td style=\"padding: 8px; border: 1px solid #ddd;\">%s</td></tr>", label, html.EscapeString(value)))
}

func writeFooter(sb *strings.Builder) {
	sb.WriteString("<hr><p style=\"color: #888; font-size: 12px;\">Atelier Interiors</p>")
	sb.WriteString("</body></html>")
}

// Deliver performs the actual SMTP send. It is wired as the mail queue's
// sender. A missing SMTP host disables outbound email entirely.
func (s *EmailService) Deliver(task *MailTask) error {
	if s.cfg.Host == "" {
		return nil
	}
	if len(task.To) == 0 {
		return nil
	}

	from := s.cfg.From
	if from == "" {
		from = s.cfg.Username
	}

	headers := make(map[string]string)
	headers["From"] = from
	headers["To"] = strings.Join(task.To, ",")
	headers["Subject"] = task.Subject
	headers["MIME-Version"] = "1.0"
	headers["Content-Type"] = "text/html; charset=UTF-8"

	var message strings.Builder
	for k, v := range headers {
		message.WriteString(fmt.Sprintf("%s: %s\r\n", k, v))
	}
	message.WriteString("\r\n")
	message.WriteString(task.Body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var auth smtp.Auth
	if s.cfg.Username != "" && s.cfg.Password != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	var err error
	if s.cfg.UseTLS {
		err = s.deliverTLS(addr, auth, from, task.To, message.String())
	} else {
		err = smtp.SendMail(addr, auth, from, task.To, []byte(message.String()))
	}

	if err != nil {
		logger.Warnf("[Email] Failed to send %q: %v", task.Subject, err)
		return err
	}

	logger.Infof("[Email] Sent %q to %v", task.Subject, task.To)
	return nil
}

func (s *EmailService) deliverTLS(addr string, auth smtp.Auth, from string, to []string, message string) error {
	tlsConfig := &tls.Config{
		ServerName: s.cfg.Host,
	}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return err
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer client.Close()

	if auth != nil {
		if err := client.Auth(auth); err != nil {
			return err
		}
	}

	if err := client.Mail(from); err != nil {
		return err
	}

	for _, rcpt := range to {
		if err := client.Rcpt(rcpt); err != nil {
			return err
		}
	}

	w, err := client.Data()
	if err != nil {
		return err
	}

	if _, err = w.Write([]byte(message)); err != nil {
		return err
	}

	return w.Close()
}
