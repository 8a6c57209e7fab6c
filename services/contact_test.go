package services

import (
	"context"
	"errors"
	"testing"

	"legal_ai_site/config"
	"legal_ai_site/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validContact() models.ContactRequest {
	return models.ContactRequest{
		Name:    " Ada ",
		Email:   "ada@example.com",
		Subject: "pricing",
		Message: "How much does it cost?",
	}
}

func TestContactService_Submit(t *testing.T) {
	t.Run("Delivers to inbox", func(t *testing.T) {
		var sent *Email
		metrics := NewMetrics()
		svc := NewContactService(&config.Config{ContactInbox: "inbox@legalai.test"}, metrics)
		svc.send = func(_ *config.Config, e *Email) error {
			sent = e
			return nil
		}

		fieldErrs, err := svc.Submit(context.Background(), validContact(), "", "10.0.0.1")
		require.NoError(t, err)
		assert.Empty(t, fieldErrs)
		require.NotNil(t, sent)
		assert.Equal(t, []string{"inbox@legalai.test"}, sent.To)
		assert.Contains(t, sent.Subject, "from Ada")
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.contacts.WithLabelValues("sent")))
	})

	t.Run("Invalid form", func(t *testing.T) {
		svc := NewContactService(&config.Config{}, nil)
		svc.send = func(*config.Config, *Email) error {
			t.Fatal("must not send invalid requests")
			return nil
		}

		fieldErrs, err := svc.Submit(context.Background(), models.ContactRequest{Name: "Ada"}, "", "")
		assert.ErrorIs(t, err, models.ErrInvalidContact)
		assert.Contains(t, fieldErrs, "email")
		assert.NotContains(t, fieldErrs, "name")
	})

	t.Run("Turnstile rejection", func(t *testing.T) {
		svc := NewContactService(&config.Config{TurnstileSecretKey: "secret"}, nil)
		svc.verify = func(_ context.Context, token, secret, ip string) (bool, error) {
			assert.Equal(t, "bad-token", token)
			assert.Equal(t, "secret", secret)
			return false, errors.New("invalid-input-response")
		}

		_, err := svc.Submit(context.Background(), validContact(), "bad-token", "10.0.0.1")
		assert.ErrorIs(t, err, ErrVerificationFailed)
	})

	t.Run("Turnstile skipped without secret", func(t *testing.T) {
		svc := NewContactService(&config.Config{EmailTestMode: true}, nil)
		svc.verify = func(context.Context, string, string, string) (bool, error) {
			t.Fatal("verification must be skipped")
			return false, nil
		}

		_, err := svc.Submit(context.Background(), validContact(), "", "")
		assert.NoError(t, err)
	})

	t.Run("Delivery failure", func(t *testing.T) {
		svc := NewContactService(&config.Config{}, nil)
		svc.send = func(*config.Config, *Email) error { return errors.New("resend down") }

		_, err := svc.Submit(context.Background(), validContact(), "", "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "resend down")
	})
}
