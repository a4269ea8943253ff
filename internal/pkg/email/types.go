package email

// Email is a single outbound message.
type Email struct {
	To       []string
	Subject  string
	Body     string // plain-text alternative
	HTMLBody string
}

// Config holds SMTP connection and sender identity settings.
type Config struct {
	SMTPHost     string
	SMTPPort     int
	Username     string
	Password     string
	FromEmail    string
	FromName     string
	UseTLS       bool // STARTTLS
	UseSSL       bool // implicit TLS
	TemplatePath string
	FrontendURL  string
}

// Sender delivers emails. Implementations are best-effort: the caller
// logs failures and never retries.
type Sender interface {
	Send(email *Email) error
	SendTemplate(to []string, subject, templateName string, data interface{}) error
	SendWelcome(to, name, role string) error
	SendNewApplication(to, recruiterName, candidateName, jobTitle string) error
	SendApplicationStatus(to, candidateName, jobTitle, companyName, status string) error
}

// TemplateData is the common payload for the HTML templates.
type TemplateData struct {
	UserName    string
	Subject     string
	Message     string
	ActionURL   string
	ActionText  string
	CompanyName string

	JobTitle      string
	JobCompany    string
	Status        string
	CandidateName string
}
