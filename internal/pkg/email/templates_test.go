package email

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testTemplateManager(t *testing.T) *TemplateManager {
	t.Helper()
	cfg := DefaultConfig()
	cfg.TemplatePath = t.TempDir() // no files, builtins apply
	tm, err := NewTemplateManager(cfg)
	require.NoError(t, err)
	return tm
}

func TestRenderBuiltinTemplates(t *testing.T) {
	t.Parallel()
	tm := testTemplateManager(t)

	data := TemplateData{
		UserName:      "Carl Candidate",
		JobTitle:      "Backend Engineer",
		JobCompany:    "Acme",
		CandidateName: "Carl Candidate",
		Status:        "SHORTLISTED",
		Message:       "has been shortlisted",
		ActionURL:     "https://portal.example.com/dashboard",
	}

	welcome, err := tm.Render("welcome", data)
	require.NoError(t, err)
	assert.Contains(t, welcome, "Carl Candidate")
	assert.Contains(t, welcome, data.ActionURL)

	newApp, err := tm.Render("new_application", data)
	require.NoError(t, err)
	assert.Contains(t, newApp, "Backend Engineer")

	status, err := tm.Render("application_status", data)
	require.NoError(t, err)
	assert.Contains(t, status, "SHORTLISTED")
}

func TestRenderUnknownTemplate(t *testing.T) {
	t.Parallel()
	tm := testTemplateManager(t)

	_, err := tm.Render("no-such-template", TemplateData{})
	require.Error(t, err)
}

func TestHTMLToText(t *testing.T) {
	t.Parallel()

	text := htmlToText("<html><body><h1>Hello</h1><p>World</p></body></html>")
	assert.Equal(t, "Hello World", text)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())

	cfg.SMTPHost = ""
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.SMTPPort = 0
	assert.Error(t, cfg.Validate())

	cfg = DefaultConfig()
	cfg.FromEmail = ""
	assert.Error(t, cfg.Validate())
}
