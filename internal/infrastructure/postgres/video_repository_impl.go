package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/abdelrhman445/learn-video-vercel/internal/domain/entity"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/policy"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/repository"
)

type VideoRepository struct {
	pool *pgxpool.Pool
}

func NewVideoRepository(pool *pgxpool.Pool) *VideoRepository {
	return &VideoRepository{pool: pool}
}

const videoColumns = `
	v.id, v.youtube_id, v.url, v.title, v.thumbnail, v.description,
	v.privacy, v.allowed_roles, v.allowed_users, v.added_by,
	v.duration, v.published_at, v.channel_title, v.views, v.is_active,
	v.created_at, v.updated_at,
	coalesce(u.name, ''), coalesce(u.email, '')`

// viewerPredicate is the SQL mirror of policy.CanView, minus the is_active
// check which every list query applies separately. Placeholders: $1 viewer
// role, $2 viewer id.
const viewerPredicate = `
	(v.privacy IN ('public', 'unlisted')
	 OR (v.privacy = 'private'
	     AND ($1 = ANY(v.allowed_roles)
	          OR $2 = ANY(v.allowed_users)
	          OR v.added_by::text = $2)))`

// searchPredicate filters by case-insensitive substring on title/description.
// An empty search term matches everything.
const searchPredicate = `
	($3 = '' OR v.title ILIKE '%' || $3 || '%' OR v.description ILIKE '%' || $3 || '%')`

func scanVideo(row pgx.Row) (*entity.Video, error) {
	v := &entity.Video{}
	if err := row.Scan(&v.ID, &v.YouTubeID, &v.URL, &v.Title, &v.Thumbnail, &v.Description,
		&v.Privacy, &v.AllowedRoles, &v.AllowedUsers, &v.AddedBy,
		&v.Duration, &v.PublishedAt, &v.ChannelTitle, &v.Views, &v.IsActive,
		&v.CreatedAt, &v.UpdatedAt,
		&v.AddedByName, &v.AddedByEmail); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

func (r *VideoRepository) Create(ctx context.Context, v *entity.Video) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO videos (youtube_id, url, title, thumbnail, description,
			privacy, allowed_roles, allowed_users, added_by,
			duration, published_at, channel_title, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING id, views, created_at, updated_at
	`, v.YouTubeID, v.URL, v.Title, v.Thumbnail, v.Description,
		v.Privacy, v.AllowedRoles, v.AllowedUsers, v.AddedBy,
		v.Duration, v.PublishedAt, v.ChannelTitle, v.IsActive)

	if err := row.Scan(&v.ID, &v.Views, &v.CreatedAt, &v.UpdatedAt); err != nil {
		return mapPGError(err)
	}
	return nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	if uuid.Validate(id) != nil {
		return nil, repository.ErrNotFound
	}
	return scanVideo(r.pool.QueryRow(ctx, `
		SELECT `+videoColumns+`
		FROM videos v
		LEFT JOIN users u ON u.id = v.added_by
		WHERE v.id = $1
	`, id))
}

func (r *VideoRepository) GetByYouTubeID(ctx context.Context, youtubeID string) (*entity.Video, error) {
	return scanVideo(r.pool.QueryRow(ctx, `
		SELECT `+videoColumns+`
		FROM videos v
		LEFT JOIN users u ON u.id = v.added_by
		WHERE v.youtube_id = $1
	`, youtubeID))
}

func (r *VideoRepository) Update(ctx context.Context, v *entity.Video) error {
	v.UpdatedAt = time.Now()

	res, err := r.pool.Exec(ctx, `
		UPDATE videos
		SET title = $1, thumbnail = $2, description = $3, privacy = $4,
			allowed_roles = $5, allowed_users = $6, is_active = $7, updated_at = $8
		WHERE id = $9
	`, v.Title, v.Thumbnail, v.Description, v.Privacy,
		v.AllowedRoles, v.AllowedUsers, v.IsActive, v.UpdatedAt, v.ID)
	if err != nil {
		return mapPGError(err)
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) Delete(ctx context.Context, id string) error {
	if uuid.Validate(id) != nil {
		return repository.ErrNotFound
	}
	res, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *VideoRepository) ListForViewer(ctx context.Context, viewer policy.Viewer, search string, limit, offset int) ([]*entity.Video, int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+videoColumns+`
		FROM videos v
		LEFT JOIN users u ON u.id = v.added_by
		WHERE v.is_active = TRUE AND `+viewerPredicate+` AND `+searchPredicate+`
		ORDER BY v.created_at DESC
		LIMIT $4 OFFSET $5
	`, viewer.Role, viewer.ID, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	videos, err := collectVideos(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM videos v
		WHERE v.is_active = TRUE AND `+viewerPredicate+` AND `+searchPredicate+`
	`, viewer.Role, viewer.ID, search).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

func (r *VideoRepository) ListActive(ctx context.Context, search string, limit, offset int) ([]*entity.Video, int64, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+videoColumns+`
		FROM videos v
		LEFT JOIN users u ON u.id = v.added_by
		WHERE v.is_active = TRUE AND ($1 = '' OR v.title ILIKE '%' || $1 || '%' OR v.description ILIKE '%' || $1 || '%')
		ORDER BY v.created_at DESC
		LIMIT $2 OFFSET $3
	`, search, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	videos, err := collectVideos(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	err = r.pool.QueryRow(ctx, `
		SELECT count(*)
		FROM videos v
		WHERE v.is_active = TRUE AND ($1 = '' OR v.title ILIKE '%' || $1 || '%' OR v.description ILIKE '%' || $1 || '%')
	`, search).Scan(&total)
	if err != nil {
		return nil, 0, err
	}
	return videos, total, nil
}

func collectVideos(rows pgx.Rows) ([]*entity.Video, error) {
	defer rows.Close()
	videos := make([]*entity.Video, 0)
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, v)
	}
	return videos, rows.Err()
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id string) (int64, error) {
	if uuid.Validate(id) != nil {
		return 0, repository.ErrNotFound
	}
	var views int64
	err := r.pool.QueryRow(ctx, `
		UPDATE videos SET views = views + 1 WHERE id = $1 RETURNING views
	`, id).Scan(&views)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, repository.ErrNotFound
	}
	return views, err
}

func (r *VideoRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM videos`).Scan(&n)
	return n, err
}

func (r *VideoRepository) SumViews(ctx context.Context) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT coalesce(sum(views), 0) FROM videos`).Scan(&n)
	return n, err
}

var _ repository.VideoRepository = (*VideoRepository)(nil)
