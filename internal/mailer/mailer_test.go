package mailer

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/javiercriado/interview-dashboard/pkg/model"
)

func TestSendInviteWaitsForDelay(t *testing.T) {
	s := NewSender(zap.NewNop(), 20*time.Millisecond)

	start := time.Now()
	err := s.SendInvite(context.Background(), model.Candidate{ID: "c1", Email: "a@example.com"})
	if err != nil {
		t.Fatalf("SendInvite error: %v", err)
	}
	if elapsed := time.Since(start); elapsed < 20*time.Millisecond {
		t.Errorf("returned after %v, before the delivery delay elapsed", elapsed)
	}
}

func TestSendInviteHonorsCancellation(t *testing.T) {
	s := NewSender(zap.NewNop(), time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	err := s.SendInvite(ctx, model.Candidate{ID: "c1"})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("err = %v, want context deadline", err)
	}
}
