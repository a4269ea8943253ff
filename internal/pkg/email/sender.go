package email

import (
	"crypto/tls"
	"fmt"
	"net/smtp"
	"regexp"
	"strings"
)

// SMTPSender is the net/smtp implementation of Sender.
type SMTPSender struct {
	config    Config
	templates *TemplateManager
	auth      smtp.Auth
}

// NewSMTPSender validates the config and loads templates.
func NewSMTPSender(config Config) (Sender, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	sender := &SMTPSender{
		config:    config,
		templates: tm,
	}

	if config.Username != "" && config.Password != "" {
		sender.auth = smtp.PlainAuth("", config.Username, config.Password, config.SMTPHost)
	}

	return sender, nil
}

// Send delivers a prepared email over SMTP.
func (s *SMTPSender) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}
	message := s.buildMessage(email)
	return s.sendSMTP(email.To, message)
}

// SendTemplate renders the template and sends the result.
func (s *SMTPSender) SendTemplate(to []string, subject, templateName string, data interface{}) error {
	htmlBody, err := s.templates.Render(templateName, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	email := &Email{
		To:       to,
		Subject:  subject,
		Body:     htmlToText(htmlBody),
		HTMLBody: htmlBody,
	}
	return s.Send(email)
}

// SendWelcome sends the post-registration welcome email.
func (s *SMTPSender) SendWelcome(to, name, role string) error {
	data := TemplateData{
		UserName:  name,
		Subject:   "Welcome to Job Portal!",
		ActionURL: s.config.FrontendURL + "/dashboard",
	}
	return s.SendTemplate([]string{to}, "Welcome to Job Portal!", "welcome", data)
}

// SendNewApplication notifies a job owner about a fresh application.
func (s *SMTPSender) SendNewApplication(to, recruiterName, candidateName, jobTitle string) error {
	data := TemplateData{
		UserName:      recruiterName,
		Subject:       "New application for " + jobTitle,
		CandidateName: candidateName,
		JobTitle:      jobTitle,
		ActionURL:     s.config.FrontendURL + "/dashboard/applications",
	}
	return s.SendTemplate([]string{to}, "New application for "+jobTitle, "new_application", data)
}

// SendApplicationStatus notifies a candidate about a status change.
func (s *SMTPSender) SendApplicationStatus(to, candidateName, jobTitle, companyName, status string) error {
	data := TemplateData{
		UserName:   candidateName,
		Subject:    "Application Update: " + jobTitle,
		JobTitle:   jobTitle,
		JobCompany: companyName,
		Status:     strings.ToUpper(strings.ReplaceAll(status, "_", " ")),
		Message:    statusMessage(status),
		ActionURL:  s.config.FrontendURL + "/dashboard/applications",
	}
	return s.SendTemplate([]string{to}, "Application Update: "+jobTitle, "application_status", data)
}

func statusMessage(status string) string {
	messages := map[string]string{
		"applied":      "has been submitted successfully",
		"under_review": "is under review",
		"shortlisted":  "has been shortlisted",
		"interviewing": "has been selected for interview",
		"rejected":     "has been rejected",
		"withdrawn":    "has been withdrawn",
		"selected":     "has been selected! Congratulations!",
	}
	if msg, ok := messages[status]; ok {
		return msg
	}
	return "has been updated"
}

func (s *SMTPSender) buildMessage(email *Email) []byte {
	headers := []string{
		fmt.Sprintf("From: %s <%s>", s.config.FromName, s.config.FromEmail),
		fmt.Sprintf("To: %s", strings.Join(email.To, ", ")),
		fmt.Sprintf("Subject: %s", email.Subject),
		"MIME-version: 1.0;",
		"Content-Type: multipart/alternative; boundary=\"JOBPORTAL_BOUNDARY\"",
		"",
	}

	var body []string
	if email.Body != "" {
		body = append(body,
			"--JOBPORTAL_BOUNDARY",
			"Content-Type: text/plain; charset=UTF-8",
			"",
			email.Body,
			"",
		)
	}
	if email.HTMLBody != "" {
		body = append(body,
			"--JOBPORTAL_BOUNDARY",
			"Content-Type: text/html; charset=UTF-8",
			"",
			email.HTMLBody,
			"",
		)
	}
	body = append(body, "--JOBPORTAL_BOUNDARY--")

	message := strings.Join(headers, "\r\n") + "\r\n" + strings.Join(body, "\r\n")
	return []byte(message)
}

func (s *SMTPSender) sendSMTP(to []string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	var client *smtp.Client
	var err error

	if s.config.UseSSL {
		tlsConfig := &tls.Config{ServerName: s.config.SMTPHost}
		conn, dialErr := tls.Dial("tcp", addr, tlsConfig)
		if dialErr != nil {
			return fmt.Errorf("failed to connect via SSL: %w", dialErr)
		}
		client, err = smtp.NewClient(conn, s.config.SMTPHost)
		if err != nil {
			return fmt.Errorf("failed to create SMTP client: %w", err)
		}
	} else {
		client, err = smtp.Dial(addr)
		if err != nil {
			return fmt.Errorf("failed to connect to SMTP server: %w", err)
		}
	}
	defer client.Close()

	if s.config.UseTLS && !s.config.UseSSL {
		if err = client.StartTLS(&tls.Config{ServerName: s.config.SMTPHost}); err != nil {
			return fmt.Errorf("failed to start TLS: %w", err)
		}
	}

	if s.auth != nil {
		if err = client.Auth(s.auth); err != nil {
			return fmt.Errorf("failed to authenticate: %w", err)
		}
	}

	if err = client.Mail(s.config.FromEmail); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	for _, recipient := range to {
		if err = client.Rcpt(recipient); err != nil {
			return fmt.Errorf("failed to set recipient %s: %w", recipient, err)
		}
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}
	if _, err = w.Write(message); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}

var htmlTagRe = regexp.MustCompile(`<[^>]*>`)

// htmlToText produces a crude plain-text alternative from HTML.
func htmlToText(html string) string {
	text := htmlTagRe.ReplaceAllString(html, " ")
	return strings.Join(strings.Fields(text), " ")
}

// NoopSender is used when email delivery is disabled; every send is a
// silent success.
type NoopSender struct{}

func (NoopSender) Send(*Email) error { return nil }
func (NoopSender) SendTemplate([]string, string, string, interface{}) error {
	return nil
}
func (NoopSender) SendWelcome(string, string, string) error             { return nil }
func (NoopSender) SendNewApplication(string, string, string, string) error { return nil }
func (NoopSender) SendApplicationStatus(string, string, string, string, string) error {
	return nil
}
