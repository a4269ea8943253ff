package email

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
)

// TemplateManager holds the parsed email templates.
type TemplateManager struct {
	templates map[string]*template.Template
	config    Config
}

// NewTemplateManager loads all known templates, falling back to the
// builtin versions when no file exists under TemplatePath.
func NewTemplateManager(config Config) (*TemplateManager, error) {
	tm := &TemplateManager{
		templates: make(map[string]*template.Template),
		config:    config,
	}

	names := []string{
		"welcome",
		"new_application",
		"application_status",
		"notification",
	}

	for _, name := range names {
		tpl, err := tm.loadTemplate(name)
		if err != nil {
			return nil, fmt.Errorf("failed to load template %s: %w", name, err)
		}
		tm.templates[name] = tpl
	}

	return tm, nil
}

func (tm *TemplateManager) loadTemplate(name string) (*template.Template, error) {
	contentPath := filepath.Join(tm.config.TemplatePath, name+".html")

	tpl, err := template.ParseFiles(contentPath)
	if err != nil {
		return tm.builtinTemplate(name)
	}
	return tpl, nil
}

func (tm *TemplateManager) builtinTemplate(name string) (*template.Template, error) {
	var tplText string

	switch name {
	case "welcome":
		tplText = welcomeTemplate
	case "new_application":
		tplText = newApplicationTemplate
	case "application_status":
		tplText = applicationStatusTemplate
	case "notification":
		tplText = notificationTemplate
	default:
		return nil, fmt.Errorf("unknown template: %s", name)
	}

	return template.New(name).Parse(tplText)
}

// Render executes the named template with the given data.
func (tm *TemplateManager) Render(name string, data interface{}) (string, error) {
	tpl, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("template not found: %s", name)
	}

	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %s: %w", name, err)
	}
	return buf.String(), nil
}

const baseStyle = `<style>
.container { max-width: 600px; margin: 0 auto; font-family: Arial, sans-serif; }
.header { background: #4F46E5; color: white; padding: 20px; text-align: center; }
.content { padding: 30px; background: #f9f9f9; }
.button { display: inline-block; padding: 12px 24px; background: #4F46E5; color: white; text-decoration: none; border-radius: 5px; }
.footer { text-align: center; padding: 20px; color: #666; font-size: 12px; }
</style>`

const welcomeTemplate = `<!DOCTYPE html>
<html><head>` + baseStyle + `</head><body>
<div class="container">
  <div class="header"><h1>Welcome to Job Portal!</h1></div>
  <div class="content">
    <h2>Hello {{.UserName}},</h2>
    <p>Thank you for registering with Job Portal. Your account has been successfully created.</p>
    <p>You can now browse job opportunities, apply with one click, and track your application status.</p>
    {{if .ActionURL}}<p style="text-align: center;"><a href="{{.ActionURL}}" class="button">Go to Dashboard</a></p>{{end}}
  </div>
  <div class="footer"><p>If you didn't create this account, please ignore this email.</p></div>
</div>
</body></html>`

const newApplicationTemplate = `<!DOCTYPE html>
<html><head>` + baseStyle + `</head><body>
<div class="container">
  <div class="header"><h1>New Application Received</h1></div>
  <div class="content">
    <h2>Hello {{.UserName}},</h2>
    <p><strong>{{.CandidateName}}</strong> has applied for <strong>{{.JobTitle}}</strong>.</p>
    {{if .ActionURL}}<p style="text-align: center;"><a href="{{.ActionURL}}" class="button">Review Application</a></p>{{end}}
  </div>
  <div class="footer"><p>Job Portal</p></div>
</div>
</body></html>`

const applicationStatusTemplate = `<!DOCTYPE html>
<html><head>` + baseStyle + `</head><body>
<div class="container">
  <div class="header"><h1>Application Status Update</h1></div>
  <div class="content">
    <h2>Hello {{.UserName}},</h2>
    <p>Your application for <strong>{{.JobTitle}}</strong>{{if .JobCompany}} at <strong>{{.JobCompany}}</strong>{{end}} {{.Message}}.</p>
    <p><strong>Status:</strong> {{.Status}}</p>
    {{if .ActionURL}}<p style="text-align: center;"><a href="{{.ActionURL}}" class="button">View Application</a></p>{{end}}
  </div>
  <div class="footer"><p>Job Portal</p></div>
</div>
</body></html>`

const notificationTemplate = `<!DOCTYPE html>
<html><head>` + baseStyle + `</head><body>
<div class="container">
  <div class="header"><h1>{{.Subject}}</h1></div>
  <div class="content"><p>{{.Message}}</p></div>
  <div class="footer"><p>Job Portal</p></div>
</div>
</body></html>`
