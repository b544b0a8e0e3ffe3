package main

import (
	"github.com/hibiken/asynq"

	"crowdfund-backoffice/internal/config"
	"crowdfund-backoffice/internal/domains/dashboard"
	"crowdfund-backoffice/internal/domains/workflow"
	workflowJob "crowdfund-backoffice/internal/domains/workflow/job"
	"crowdfund-backoffice/internal/infrastructure/email"
	"crowdfund-backoffice/pkg/cache"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	workflowEvents *workflowJob.EventHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(cfg *config.Config, c cache.Cache) *HandlerRegistry {
	emailSvc := email.NewDevEmailService(cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.From)

	return &HandlerRegistry{
		workflowEvents: workflowJob.NewEventHandler(c, emailSvc, workflowJob.EventHandlerConfig{
			Reviewers:     cfg.Review.NotifyEmails,
			ReviewBaseURL: cfg.Review.BaseURL,
			Labels: map[workflow.EntityType]string{
				workflow.EntitySummary: dashboard.SummaryDescriptor.Label,
				workflow.EntityInfo:    dashboard.InfoDescriptor.Label,
				workflow.EntitySocials: dashboard.SocialsDescriptor.Label,
			},
		}),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// workflow:created, workflow:submitted, workflow:approved, workflow:rejected
	h.workflowEvents.RegisterHandlers(mux)
}
