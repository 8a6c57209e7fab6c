package services

import (
	"context"
	"errors"
	"fmt"

	"legal_ai_site/config"
	"legal_ai_site/logger"
	"legal_ai_site/models"

	"github.com/sirupsen/logrus"
)

var ErrVerificationFailed = errors.New("verification failed")

// ContactService validates contact form submissions and notifies the inbox
type ContactService struct {
	cfg     *config.Config
	metrics *Metrics
	send    func(*config.Config, *Email) error
	verify  func(ctx context.Context, token, secretKey, ip string) (bool, error)
}

func NewContactService(cfg *config.Config, metrics *Metrics) *ContactService {
	return &ContactService{
		cfg:     cfg,
		metrics: metrics,
		send:    SendEmail,
		verify:  VerifyTurnstileToken,
	}
}

// Submit handles one form submission. On validation failure it returns the
// field errors wrapped around models.ErrInvalidContact.
func (s *ContactService) Submit(ctx context.Context, req models.ContactRequest, token, ip string) (map[string]string, error) {
	req.Normalize()
	if errs := req.Validate(); len(errs) > 0 {
		s.metrics.ObserveContact("invalid")
		return errs, models.ErrInvalidContact
	}

	if s.cfg.TurnstileSecretKey != "" {
		if ok, err := s.verify(ctx, token, s.cfg.TurnstileSecretKey, ip); !ok {
			s.metrics.ObserveContact("rejected")
			logger.WithFields(logrus.Fields{"ip": ip, "error": err}).Warn("contact form verification failed")
			return nil, ErrVerificationFailed
		}
	}

	email, err := BuildContactNotificationEmail(s.cfg.ContactInbox, req)
	if err != nil {
		s.metrics.ObserveContact("failed")
		return nil, err
	}
	if err := s.send(s.cfg, email); err != nil {
		s.metrics.ObserveContact("failed")
		return nil, fmt.Errorf("failed to deliver contact request: %w", err)
	}

	s.metrics.ObserveContact("sent")
	logger.WithFields(logrus.Fields{"subject": req.Subject, "ip": ip}).Info("contact request delivered")
	return nil, nil
}
