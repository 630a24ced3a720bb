package mailer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mendly/mendly-backend/pkg/mailer/templates"
)

func TestEmailJob_Fill(t *testing.T) {
	job := EmailJob{To: "ada@example.com", Data: map[string]any{"CompanyName": "Acme"}}
	job.Fill("Mendly", "https://help.example.com")

	assert.Equal(t, "ada@example.com", job.Data["Email"])
	assert.Equal(t, "ada@example.com", job.Data["RecipientEmail"])
	assert.Equal(t, "Acme", job.Data["CompanyName"])
	assert.Equal(t, "https://help.example.com", job.Data["SupportURL"])
}

func TestRenderWelcome(t *testing.T) {
	created := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	data := templates.NewWelcomeData("Mendly", "ada", "ada@example.com",
		templates.WithTime(created), templates.WithCompany("Mendly AB", "https://help.example.com"))

	subject, text, html, err := templates.Render(templates.Welcome, templates.ToMap(data))
	require.NoError(t, err)

	assert.Equal(t, "Welcome to Mendly", subject)
	assert.Contains(t, text, "Hi ada,")
	assert.Contains(t, text, "01 March 2024, 09:30")
	assert.Contains(t, html, `href="https://help.example.com"`)
	assert.Contains(t, html, "Mendly AB")
}

func TestRenderUnknownTemplate(t *testing.T) {
	_, _, _, err := templates.Render("nope", nil)
	assert.Error(t, err)
}
