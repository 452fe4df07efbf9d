package services

import (
	"context"
	"fmt"
	"html"
	"time"

	"github.com/google/uuid"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portsrepo "github.com/primeblocks/investment-backend/internal/core/ports/repositories"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/dto"
)

// contactService relays support inquiries: the message is stored first so a
// relay failure never loses it, then the email is attempted best-effort.
type contactService struct {
	BaseService
	contactRepo  portsrepo.ContactRepository
	mailer       portssvc.Mailer
	supportEmail string
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo portsrepo.ContactRepository, mailer portssvc.Mailer, supportEmail string) portssvc.ContactSvcFacade {
	return &contactService{contactRepo: contactRepo, mailer: mailer, supportEmail: supportEmail}
}

var _ portssvc.ContactSvcFacade = (*contactService)(nil)

// Submit stores the inquiry and attempts the relay email. The returned flag
// reports whether the email actually went out.
func (s *contactService) Submit(ctx context.Context, req dto.ContactRequest) (bool, error) {
	message := domain.ContactMessage{
		MessageID: uuid.NewString(),
		FullName:  req.FullName,
		Email:     req.Email,
		Subject:   req.Subject,
		Message:   req.Message,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.contactRepo.SaveContactMessage(ctx, message); err != nil {
		return false, fmt.Errorf("failed to store contact message: %w", err)
	}

	if s.supportEmail == "" {
		return false, nil
	}

	email := portssvc.Email{
		To:      []string{s.supportEmail},
		ReplyTo: message.Email,
		Subject: fmt.Sprintf("[%s] New Contact Form Submission", domain.SubjectDisplay(message.Subject)),
		HTML:    renderContactEmail(message),
	}
	sent, err := s.mailer.Send(ctx, email)
	if err != nil {
		s.LogError(ctx, err, "Failed to relay contact email", "message_id", message.MessageID)
		return false, nil
	}
	if !sent {
		return false, nil
	}

	if err := s.contactRepo.MarkContactEmailSent(ctx, message.MessageID); err != nil {
		s.LogError(ctx, err, "Failed to flag relayed contact message", "message_id", message.MessageID)
	}
	return true, nil
}

func renderContactEmail(m domain.ContactMessage) string {
	return fmt.Sprintf(
		"<h2>New Contact Form Submission</h2>"+
			"<p><strong>Name:</strong> %s</p>"+
			"<p><strong>Email:</strong> %s</p>"+
			"<p><strong>Subject:</strong> %s</p>"+
			"<p><strong>Message:</strong></p><p>%s</p>",
		html.EscapeString(m.FullName),
		html.EscapeString(m.Email),
		html.EscapeString(domain.SubjectDisplay(m.Subject)),
		html.EscapeString(m.Message),
	)
}
