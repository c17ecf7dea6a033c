package auditlog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"rikimaka/internal/shared/contextutil"
)

// Entry is what mutating services report after a successful write.
type Entry struct {
	ActorID    string
	Action     string
	Resource   string
	ResourceID string
	Details    string
}

// Recorder is the narrow interface the domain services depend on.
type Recorder interface {
	Record(ctx context.Context, entry Entry)
}

type Service interface {
	Recorder
	List(ctx context.Context, filter ListFilter) ([]LogResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("auditlog.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auditlog.service")
	}
	return &service{repo: repo, logger: l}
}

// Record appends an audit entry. A failed append never fails the request
// that produced it; the failure itself is logged instead.
func (s *service) Record(ctx context.Context, entry Entry) {
	row := &AuditLog{
		ID:         uuid.New(),
		Action:     entry.Action,
		Resource:   entry.Resource,
		ResourceID: entry.ResourceID,
		Details:    entry.Details,
	}

	if actorID, err := uuid.Parse(entry.ActorID); err == nil {
		row.UserID = &actorID
	}

	client := contextutil.GetClientInfo(ctx)
	row.IPAddress = client.IPAddress
	row.UserAgent = client.UserAgent

	if err := s.repo.Create(ctx, row); err != nil {
		s.logger.Warn("audit append failed",
			zap.String("action", entry.Action),
			zap.String("resource", entry.Resource),
			zap.String("resource_id", entry.ResourceID),
			zap.Error(err),
		)
	}
}

func (s *service) List(ctx context.Context, filter ListFilter) ([]LogResponse, error) {
	logs, err := s.repo.FindFiltered(ctx, filter)
	if err != nil {
		return nil, err
	}

	actorIDs := make([]uuid.UUID, 0, len(logs))
	seen := make(map[uuid.UUID]bool)
	for _, l := range logs {
		if l.UserID != nil && !seen[*l.UserID] {
			seen[*l.UserID] = true
			actorIDs = append(actorIDs, *l.UserID)
		}
	}

	actors, err := s.repo.FindActors(ctx, actorIDs)
	if err != nil {
		return nil, err
	}

	resp := make([]LogResponse, len(logs))
	for i, l := range logs {
		resp[i] = LogResponse{
			ID:         l.ID.String(),
			Action:     l.Action,
			Resource:   l.Resource,
			ResourceID: l.ResourceID,
			Details:    l.Details,
			IPAddress:  l.IPAddress,
			UserAgent:  l.UserAgent,
			CreatedAt:  l.CreatedAt.UTC().Format(time.RFC3339),
		}
		if l.UserID != nil {
			if actor, ok := actors[*l.UserID]; ok {
				ref := actor
				resp[i].Actor = &ref
			}
		}
	}
	return resp, nil
}

// NopRecorder discards entries. Used by tests that do not assert auditing.
type NopRecorder struct{}

func (NopRecorder) Record(context.Context, Entry) {}
