package service

import (
	"context"
	"time"

	"ilo_monitor/internal/logger"
	"ilo_monitor/internal/models"
	"ilo_monitor/internal/repository"
)

// auditor appends to the audit log. A failed append is logged and never
// fails the command that caused it. A nil auditor records nothing.
type auditor struct {
	repo repository.EventRepo
	log  *logger.Logger
}

func newAuditor(repo repository.EventRepo, log *logger.Logger) *auditor {
	return &auditor{repo: repo, log: log}
}

func (a *auditor) record(ctx context.Context, typ, desc string, meta map[string]any) {
	if a == nil || a.repo == nil {
		return
	}
	err := a.repo.Append(ctx, models.AuditEvent{
		OccurredAt:  time.Now().UTC(),
		Type:        typ,
		Description: desc,
		Metadata:    meta,
	})
	if err != nil {
		a.log.Warnw("audit_append_failed", "type", typ, "err", err)
	}
}

// command records an operator-issued controller command and its outcome.
func (a *auditor) command(ctx context.Context, name string, userID int, cmdErr error, extra map[string]any) {
	meta := map[string]any{"command": name, "user_id": userID}
	for k, v := range extra {
		meta[k] = v
	}
	desc := name + " sent"
	if cmdErr != nil {
		meta["error"] = cmdErr.Error()
		desc = name + " failed"
	}
	a.record(ctx, models.EventCommand, desc, meta)
}
