// Package jobs defines the background jobs processed by pkg/queue.
package jobs

import (
	"github.com/shashiranjanraj/platter/pkg/mail"
	"github.com/shashiranjanraj/platter/pkg/queue"
)

// VerificationEmailType is the queue registry name for VerificationEmail.
const VerificationEmailType = "jobs.VerificationEmail"

// VerificationEmail sends the confirm-account email with the one-time
// code. Dispatched on signup and whenever a user changes their email;
// the queue retries on provider failure, the caller never waits.
type VerificationEmail struct {
	Email string `json:"email"`
	Code  string `json:"code"`
}

func (j VerificationEmail) Handle() error {
	return mail.To(j.Email).
		Subject("Verify Your Email").
		Template("confirm-account", map[string]string{
			"code":     j.Code,
			"username": j.Email,
		}).
		Send()
}

// Register wires every job type into the queue registry. Called once at
// boot before workers start.
func Register() {
	queue.Register(VerificationEmailType, func() queue.Job { return &VerificationEmail{} })
}
