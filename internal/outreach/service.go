package outreach

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/sells-group/estate-cli/internal/mailer"
	"github.com/sells-group/estate-cli/internal/model"
	"github.com/sells-group/estate-cli/internal/registry"
	"github.com/sells-group/estate-cli/internal/store"
)

const previewLen = 500

// Service generates recovery outreach, records the tracking case, and
// invokes the transport when one is configured. A nil transport means
// demo mode.
type Service struct {
	binder    *Binder
	store     store.Store
	transport mailer.Transport
	now       func() time.Time
}

// NewService wires the outreach service. transport may be nil.
func NewService(reg *registry.Registry, st store.Store, transport mailer.Transport) *Service {
	return &Service{
		binder:    NewBinder(reg),
		store:     st,
		transport: transport,
		now:       time.Now,
	}
}

// Generate binds the recovery email, records the case, and attempts
// transmission when configured. All three outcomes (sent, error, demo)
// return the full generated content; a transport failure never loses
// the artifact.
func (s *Service) Generate(ctx context.Context, req Request) model.OutreachResult {
	doc, err := s.binder.Bind(req)
	if err != nil {
		// Template execution over plain strings; reaching this means a
		// broken build, not bad input.
		return model.OutreachResult{
			Status:  model.StatusError,
			Message: fmt.Sprintf("Failed to generate recovery email: %v", err),
		}
	}

	s.recordCase(doc, req)

	result := model.OutreachResult{
		CaseID:                doc.CaseID,
		Platform:              req.Platform,
		SupportEmail:          doc.SupportEmail,
		EstimatedResponseTime: doc.Timeline,
		Subject:               doc.Subject,
		Body:                  doc.Body,
		EmailPreview:          preview(doc),
	}

	if s.transport == nil {
		result.Status = model.StatusDemo
		result.Message = fmt.Sprintf("DEMO MODE: Professional recovery email generated for %s", req.Platform)
		result.DemoNote = "To send real emails, configure smtp.from and smtp.password"
		result.NextSteps = []string{
			fmt.Sprintf("Copy the email content and send manually to %s", doc.SupportEmail),
			fmt.Sprintf("Expected response time: %s", doc.Timeline),
			fmt.Sprintf("Use case ID %s to track progress", doc.CaseID),
			"Or configure real email sending in the config file",
		}
		return result
	}

	if err := s.transport.Send(ctx, doc.SupportEmail, doc.Subject, doc.Body); err != nil {
		zap.L().Error("recovery email send failed",
			zap.String("case_id", doc.CaseID),
			zap.String("platform", req.Platform),
			zap.Error(err),
		)
		result.Status = model.StatusError
		result.Message = fmt.Sprintf("Failed to send email: %v", err)
		return result
	}

	zap.L().Info("recovery email sent",
		zap.String("case_id", doc.CaseID),
		zap.String("platform", req.Platform),
		zap.String("to", doc.SupportEmail),
	)
	result.Status = model.StatusSent
	result.Message = fmt.Sprintf("Recovery email sent to %s support successfully", req.Platform)
	result.NextSteps = []string{
		fmt.Sprintf("Monitor your email (%s) for responses from %s", req.ExecutorEmail, req.Platform),
		fmt.Sprintf("Expected response time: %s", doc.Timeline),
		fmt.Sprintf("Use case ID %s to track progress", doc.CaseID),
		"Prepare to provide additional documentation if requested",
	}
	return result
}

// recordCase stores the tracking record. A store failure is logged and
// swallowed: losing tracking must not block the generated artifact.
func (s *Service) recordCase(doc Document, req Request) {
	now := s.now().UTC()
	c := model.Case{
		CaseID:       doc.CaseID,
		Platform:     req.Platform,
		DeceasedName: req.DeceasedName,
		ExecutorName: req.ExecutorName,
		ActionType:   "email",
		CreatedDate:  now,
		Status:       model.CaseStatusSubmitted,
	}
	if err := s.store.Upsert(c); err != nil {
		zap.L().Warn("could not save tracking data",
			zap.String("case_id", doc.CaseID),
			zap.Error(err),
		)
	}
}

func preview(doc Document) model.EmailPreview {
	body := doc.Body
	if len(body) > previewLen {
		body = body[:previewLen] + "..."
	}
	return model.EmailPreview{Subject: doc.Subject, BodyPreview: body}
}
