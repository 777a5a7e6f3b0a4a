package application

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/abdelrhman445/learn-video-vercel/internal/domain/entity"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/policy"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/repository"
	"github.com/abdelrhman445/learn-video-vercel/internal/youtube"
)

// CatalogService implements the video catalogue: creation from a YouTube URL,
// allow-listed partial updates, hard deletes and policy-scoped queries.
type CatalogService struct {
	Videos   repository.VideoRepository
	Activity *Recorder
	YouTube  *youtube.Client
	Logger   *logrus.Logger

	// Optional search index; all indexing is best-effort.
	ES            *elasticsearch.Client
	ESVideosIndex string
}

func NewCatalogService(videos repository.VideoRepository, activity *Recorder, yt *youtube.Client, logger *logrus.Logger, es *elasticsearch.Client, esIndex string) *CatalogService {
	return &CatalogService{Videos: videos, Activity: activity, YouTube: yt, Logger: logger, ES: es, ESVideosIndex: esIndex}
}

type AddVideoInput struct {
	URL          string
	Privacy      string
	AllowedRoles []string
	AllowedUsers []string
}

// Add catalogues a new video. The identifier is extracted from the URL; the
// same video submitted under a different URL shape is still a duplicate.
// Metadata lookup failures degrade to placeholders instead of failing.
func (s *CatalogService) Add(ctx context.Context, in AddVideoInput, actor *entity.User, meta RequestMeta) (*entity.Video, error) {
	id, ok := youtube.ExtractID(in.URL)
	if !ok {
		return nil, ErrInvalidURL
	}

	if existing, err := s.Videos.GetByYouTubeID(ctx, id); err == nil && existing != nil {
		return nil, ErrDuplicateVideo
	} else if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}

	md := s.YouTube.Lookup(ctx, id)

	privacy := in.Privacy
	if privacy == "" {
		privacy = entity.PrivacyPublic
	}
	allowedUsers := in.AllowedUsers
	if allowedUsers == nil {
		allowedUsers = []string{}
	}
	v := &entity.Video{
		YouTubeID:    id,
		URL:          youtube.WatchURL(id),
		Title:        md.Title,
		Thumbnail:    md.Thumbnail,
		Description:  md.Description,
		Privacy:      privacy,
		AllowedRoles: policy.NormalizeAllowedRoles(in.AllowedRoles),
		AllowedUsers: allowedUsers,
		AddedBy:      actor.ID,
		Duration:     md.Duration,
		PublishedAt:  md.PublishedAt,
		ChannelTitle: md.ChannelTitle,
		IsActive:     true,
	}
	if err := s.Videos.Create(ctx, v); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateVideo
		}
		return nil, err
	}
	v.AddedByName = actor.Name
	v.AddedByEmail = actor.Email

	s.Activity.Record(ctx, actor.ID, entity.ActionAddVideo, entity.TargetVideo,
		map[string]any{"video_id": v.ID, "title": v.Title}, meta)
	s.indexVideo(ctx, v)

	s.Logger.WithFields(logrus.Fields{"video_id": v.ID, "youtube_id": v.YouTubeID}).Info("video added")
	return v, nil
}

// UpdateVideoInput lists the only fields an admin may change. Nil means
// "leave untouched"; anything outside this set cannot be written.
type UpdateVideoInput struct {
	Title        *string
	Description  *string
	Privacy      *string
	AllowedRoles *[]string
	AllowedUsers *[]string
	IsActive     *bool
}

// Update applies a partial update and records the diff.
func (s *CatalogService) Update(ctx context.Context, id string, in UpdateVideoInput, actor *entity.User, meta RequestMeta) (*entity.Video, error) {
	v, err := s.Videos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	diff := map[string]any{}
	if in.Title != nil {
		v.Title = *in.Title
		diff["title"] = *in.Title
	}
	if in.Description != nil {
		v.Description = *in.Description
		diff["description"] = *in.Description
	}
	if in.Privacy != nil {
		v.Privacy = *in.Privacy
		diff["privacy"] = *in.Privacy
	}
	if in.AllowedRoles != nil {
		v.AllowedRoles = policy.NormalizeAllowedRoles(*in.AllowedRoles)
		diff["allowed_roles"] = v.AllowedRoles
	}
	if in.AllowedUsers != nil {
		v.AllowedUsers = *in.AllowedUsers
		diff["allowed_users"] = v.AllowedUsers
	}
	if in.IsActive != nil {
		v.IsActive = *in.IsActive
		diff["is_active"] = *in.IsActive
	}

	if err := s.Videos.Update(ctx, v); err != nil {
		return nil, err
	}

	s.Activity.Record(ctx, actor.ID, entity.ActionUpdateVideo, entity.TargetVideo,
		map[string]any{"video_id": v.ID, "title": v.Title, "updates": diff}, meta)
	s.indexVideo(ctx, v)
	return v, nil
}

// Delete hard-deletes a video. This is distinct from the is_active
// soft-delete flag toggled through Update.
func (s *CatalogService) Delete(ctx context.Context, id string, actor *entity.User, meta RequestMeta) error {
	v, err := s.Videos.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Videos.Delete(ctx, id); err != nil {
		return err
	}

	s.Activity.Record(ctx, actor.ID, entity.ActionDeleteVideo, entity.TargetVideo,
		map[string]any{"video_id": v.ID, "title": v.Title}, meta)
	s.deleteVideoIndex(ctx, v.ID)
	return nil
}

// ListForViewer returns the videos the viewer may watch, newest first.
func (s *CatalogService) ListForViewer(ctx context.Context, viewer policy.Viewer, search string, page, limit int) ([]*entity.Video, int64, error) {
	limit, offset := pageWindow(page, limit, 50)
	return s.Videos.ListForViewer(ctx, viewer, search, limit, offset)
}

// ListForAdmin returns all active videos regardless of privacy.
func (s *CatalogService) ListForAdmin(ctx context.Context, search string, page, limit int) ([]*entity.Video, int64, error) {
	limit, offset := pageWindow(page, limit, 10)
	return s.Videos.ListActive(ctx, search, limit, offset)
}

// FetchOne loads a single video for a viewer and counts the view.
//
// Missing and inactive videos are both reported as not found; a denied
// private video is reported as forbidden. The asymmetry (404 leaks the
// inactive/missing distinction away, 403 admits existence) matches the
// long-standing API behaviour and is preserved deliberately.
func (s *CatalogService) FetchOne(ctx context.Context, id string, viewer policy.Viewer) (*entity.Video, error) {
	v, err := s.Videos.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !v.IsActive {
		return nil, repository.ErrNotFound
	}
	if !policy.CanView(viewer, v) {
		return nil, ErrForbidden
	}

	views, err := s.Videos.IncrementViews(ctx, v.ID)
	if err != nil {
		return nil, err
	}
	v.Views = views
	return v, nil
}

// AdminGet loads a video by id without any visibility filtering; inactive
// videos stay addressable for admins.
func (s *CatalogService) AdminGet(ctx context.Context, id string) (*entity.Video, error) {
	return s.Videos.GetByID(ctx, id)
}

func pageWindow(page, limit, defLimit int) (int, int) {
	if limit <= 0 {
		limit = defLimit
	}
	if limit > 100 {
		limit = 100
	}
	if page < 1 {
		page = 1
	}
	return limit, (page - 1) * limit
}

func (s *CatalogService) indexVideo(ctx context.Context, v *entity.Video) {
	if s.ES == nil || s.ESVideosIndex == "" {
		return
	}
	doc := map[string]any{
		"id":            v.ID,
		"youtube_id":    v.YouTubeID,
		"title":         v.Title,
		"description":   v.Description,
		"privacy":       v.Privacy,
		"channel_title": v.ChannelTitle,
		"is_active":     v.IsActive,
		"created_at":    v.CreatedAt.Format(time.RFC3339Nano),
		"updated_at":    v.UpdatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESVideosIndex, DocumentID: v.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("video_id", v.ID).Warn("es index failed")
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("video_id", v.ID).Warn("es index response error")
	}
}

func (s *CatalogService) deleteVideoIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESVideosIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESVideosIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		s.Logger.WithError(err).WithField("video_id", id).Warn("es delete failed")
		return
	}
	_ = res.Body.Close()
}
