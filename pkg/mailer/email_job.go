package mailer

import "fmt"

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Either Template (with Data) or Subject plus Text/HTML must be set.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "welcome"
	Data     map[string]any `json:"data,omitempty"`
}

// Fill sets recipient and company fields the producer left empty.
func (j *EmailJob) Fill(companyName, supportURL string) {
	if j.Data == nil {
		j.Data = map[string]any{}
	}
	setIfEmpty(j.Data, "Email", j.To)
	setIfEmpty(j.Data, "RecipientEmail", j.To)
	setIfEmpty(j.Data, "CompanyName", companyName)
	setIfEmpty(j.Data, "SupportURL", supportURL)
}

func setIfEmpty(m map[string]any, key, val string) {
	if v, ok := m[key]; !ok || v == nil || fmt.Sprintf("%v", v) == "" {
		m[key] = val
	}
}
