package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abdelrhman445/learn-video-vercel/internal/domain/entity"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/repository"
)

type ActivityRepository struct {
	pool *pgxpool.Pool
}

func NewActivityRepository(pool *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{pool: pool}
}

func (r *ActivityRepository) Insert(ctx context.Context, e *entity.ActivityLog) error {
	details := e.Details
	if details == nil {
		details = map[string]any{}
	}
	b, err := json.Marshal(details)
	if err != nil {
		return err
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO activity_logs (actor, action, target, details, ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, e.Actor, e.Action, e.Target, b, e.IP, e.UserAgent)
	return row.Scan(&e.ID, &e.CreatedAt)
}

func (r *ActivityRepository) List(ctx context.Context, action string, limit, offset int) ([]*entity.ActivityLog, int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT l.id, l.actor, l.action, l.target, l.details, l.ip, l.user_agent, l.created_at,
			coalesce(u.name, ''), coalesce(u.email, '')
		FROM activity_logs l
		LEFT JOIN users u ON u.id = l.actor
		WHERE ($1 = '' OR l.action = $1)
		ORDER BY l.created_at DESC
		LIMIT $2 OFFSET $3
	`, action, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	logs := make([]*entity.ActivityLog, 0, limit)
	for rows.Next() {
		e := &entity.ActivityLog{}
		var details []byte
		if err := rows.Scan(&e.ID, &e.Actor, &e.Action, &e.Target, &details, &e.IP, &e.UserAgent,
			&e.CreatedAt, &e.ActorName, &e.ActorEmail); err != nil {
			return nil, 0, err
		}
		if len(details) > 0 {
			_ = json.Unmarshal(details, &e.Details)
		}
		logs = append(logs, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.pool.QueryRow(ctx, `
		SELECT count(*) FROM activity_logs WHERE ($1 = '' OR action = $1)
	`, action).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

var _ repository.ActivityRepository = (*ActivityRepository)(nil)
