package mail

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/shashiranjanraj/platter/config"
)

// mailgunEndpoint is overridable so tests can point at a local server.
var mailgunEndpoint = "https://api.mailgun.net/v3"

// SetMailgunEndpoint overrides the Mailgun API base URL.
func SetMailgunEndpoint(url string) { mailgunEndpoint = strings.TrimRight(url, "/") }

var mailgunClient = &http.Client{Timeout: 10 * time.Second}

// sendMailgun posts the message to the Mailgun messages API as multipart
// form data. Template variables are passed as v: fields so the template
// is rendered provider-side.
func (m *Message) sendMailgun() error {
	domain := config.MailgunDomain()
	apiKey := config.MailgunAPIKey()
	if domain == "" || apiKey == "" {
		return fmt.Errorf("mail: MAILGUN_DOMAIN / MAILGUN_API_KEY not configured")
	}

	var body strings.Builder
	form := multipart.NewWriter(&body)

	fields := map[string]string{
		"from":    fmt.Sprintf("%s <%s@%s>", config.MailFromName(), "mailgun", domain),
		"to":      strings.Join(m.to, ","),
		"subject": m.subject,
	}
	if m.template != "" {
		fields["template"] = m.template
	} else {
		fields["html"] = m.body
	}
	for k, v := range m.vars {
		fields["v:"+k] = v
	}

	for k, v := range fields {
		if err := form.WriteField(k, v); err != nil {
			return fmt.Errorf("mail/mailgun: write field %s: %w", k, err)
		}
	}
	if err := form.Close(); err != nil {
		return fmt.Errorf("mail/mailgun: close form: %w", err)
	}

	url := fmt.Sprintf("%s/%s/messages", mailgunEndpoint, domain)
	req, err := http.NewRequest(http.MethodPost, url, strings.NewReader(body.String()))
	if err != nil {
		return fmt.Errorf("mail/mailgun: build request: %w", err)
	}
	req.SetBasicAuth("api", apiKey)
	req.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := mailgunClient.Do(req)
	if err != nil {
		return fmt.Errorf("mail/mailgun: post: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return fmt.Errorf("mail/mailgun: API returned HTTP %d", resp.StatusCode)
	}
	return nil
}
