package email

import (
	"context"
	"errors"
	"testing"

	"github.com/worktrack/backend/internal/application/adapter"
	domainerror "github.com/worktrack/backend/internal/domain/error"
)

func TestIsPermanentError(t *testing.T) {
	cases := []struct {
		err       error
		permanent bool
	}{
		{nil, false},
		{errors.New("401 unauthorized"), true},
		{errors.New("422 validation_error: invalid to address"), true},
		{errors.New("429 too many requests"), false},
		{errors.New("500 internal server error"), false},
	}
	for _, c := range cases {
		if got := isPermanentError(c.err); got != c.permanent {
			t.Errorf("isPermanentError(%v): expected %v, got %v", c.err, c.permanent, got)
		}
	}
}

func TestMockEmailSender(t *testing.T) {
	sender := NewMockEmailSender()

	result, err := sender.Send(context.Background(), adapter.SendEmailInput{
		To:      "worker@example.com",
		Subject: "Welcome",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.ProviderID == "" {
		t.Error("expected a provider id on the send result")
	}
	if len(sender.SentEmails) != 1 {
		t.Fatalf("expected one sent email, got %d", len(sender.SentEmails))
	}

	sender.SetFailure(errors.New("403 forbidden"), true)
	_, err = sender.Send(context.Background(), adapter.SendEmailInput{To: "worker@example.com"})
	var emailErr *domainerror.EmailError
	if !errors.As(err, &emailErr) || emailErr.Code != domainerror.ErrCodePermanentEmailFailure {
		t.Errorf("expected a permanent email failure, got %v", err)
	}
}
