package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/abdelrhman445/learn-video-vercel/config"
	"github.com/abdelrhman445/learn-video-vercel/internal/youtube"
	"github.com/abdelrhman445/learn-video-vercel/pkg/helpers"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	email := "admin@example.com"
	password := "admin123"
	hash, err := helpers.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash password: %v", err)
	}

	var adminID string
	err = db.QueryRow(`
		INSERT INTO users (name, email, password_hash, role, active)
		VALUES ($1, $2, $3, 'admin', true)
		ON CONFLICT (email) DO UPDATE SET role = 'admin', active = true
		RETURNING id
	`, "Admin", email, hash).Scan(&adminID)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s email=%s password=%s\n", adminID, email, password)

	ytID := "dQw4w9WgXcQ"
	md := youtube.Placeholder(ytID)
	var videoID string
	err = db.QueryRow(`
		INSERT INTO videos (youtube_id, url, title, thumbnail, description, privacy,
			allowed_roles, allowed_users, added_by, duration, published_at, channel_title, is_active)
		VALUES ($1, $2, $3, $4, $5, 'public', '{user}', '{}', $6, $7, $8, $9, true)
		ON CONFLICT (youtube_id) DO UPDATE SET updated_at = now()
		RETURNING id
	`, ytID, youtube.WatchURL(ytID), md.Title, md.Thumbnail, md.Description,
		adminID, md.Duration, md.PublishedAt, md.ChannelTitle).Scan(&videoID)
	if err != nil {
		log.Fatalf("failed to seed demo video: %v", err)
	}
	fmt.Printf("seeded demo video: id=%s youtube_id=%s\n", videoID, ytID)
}
