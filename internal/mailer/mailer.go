// Package mailer simulates interview invitation emails. No mail leaves the
// process; sending is a configurable delay plus a log line, enough for the
// dashboard to exercise the invite flow.
package mailer

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/javiercriado/interview-dashboard/pkg/model"
)

type Sender struct {
	log   *zap.Logger
	delay time.Duration
}

func NewSender(log *zap.Logger, delay time.Duration) *Sender {
	return &Sender{log: log, delay: delay}
}

// SendInvite pretends to deliver an invitation to the candidate. It honors
// context cancellation during the simulated delivery delay.
func (s *Sender) SendInvite(ctx context.Context, candidate model.Candidate) error {
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
		return ctx.Err()
	}
	s.log.Sugar().Infow("invite email sent",
		"candidate_id", candidate.ID,
		"email", candidate.Email,
		"position", candidate.AppliedFor,
	)
	return nil
}
