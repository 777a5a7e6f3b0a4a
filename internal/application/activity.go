package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/abdelrhman445/learn-video-vercel/internal/domain/entity"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/repository"
	"github.com/abdelrhman445/learn-video-vercel/pkg/helpers"
)

// RequestMeta carries per-request client attributes into activity entries.
type RequestMeta struct {
	IP        string
	UserAgent string
}

// Recorder appends entries to the activity log and, when a publisher is
// configured, fans each entry out to RabbitMQ for external consumers
// (dashboards, the indexing worker).
//
// Recording is best-effort: a failed append never fails the operation that
// triggered it. The log may therefore miss an entry for a mutation that
// succeeded, which is an accepted inconsistency.
type Recorder struct {
	Repo   repository.ActivityRepository
	Pub    *helpers.RabbitPublisher
	Logger *logrus.Logger
}

func NewRecorder(repo repository.ActivityRepository, pub *helpers.RabbitPublisher, logger *logrus.Logger) *Recorder {
	return &Recorder{Repo: repo, Pub: pub, Logger: logger}
}

// ActivityEvent is the wire shape published per recorded entry.
type ActivityEvent struct {
	ID        string         `json:"id"`
	Actor     string         `json:"actor"`
	Action    string         `json:"action"`
	Target    string         `json:"target"`
	Details   map[string]any `json:"details,omitempty"`
	IP        string         `json:"ip,omitempty"`
	UserAgent string         `json:"user_agent,omitempty"`
	CreatedAt string         `json:"created_at"`
}

func (r *Recorder) Record(ctx context.Context, actor, action, target string, details map[string]any, meta RequestMeta) {
	if r == nil || r.Repo == nil {
		return
	}
	e := &entity.ActivityLog{
		Actor:     actor,
		Action:    action,
		Target:    target,
		Details:   details,
		IP:        meta.IP,
		UserAgent: meta.UserAgent,
	}
	if err := r.Repo.Insert(ctx, e); err != nil {
		if r.Logger != nil {
			r.Logger.WithError(err).WithFields(logrus.Fields{"action": action, "actor": actor}).Warn("activity log append failed")
		}
		return
	}

	if r.Pub != nil {
		ev := ActivityEvent{
			ID:        e.ID,
			Actor:     e.Actor,
			Action:    e.Action,
			Target:    e.Target,
			Details:   e.Details,
			IP:        e.IP,
			UserAgent: e.UserAgent,
			CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339Nano),
		}
		if err := r.Pub.PublishJSON(ctx, ev); err != nil && r.Logger != nil {
			r.Logger.WithError(err).WithField("action", action).Warn("activity event publish failed")
		}
	}
}
