package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"time"

	_ "github.com/lib/pq"

	"gophertalk/internal/config"
	"gophertalk/internal/db/migrations"
	postgresRepo "gophertalk/internal/db/postgres"
)

func main() {
	users := flag.Int("users", 20, "number of users to create")
	rootPosts := flag.Int("posts", 100, "number of root posts to create")
	replies := flag.Int("replies", 200, "number of replies to create")
	seed := flag.Int64("seed", 0, "random seed (0 picks one from the clock)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	if err := migrations.Up(db); err != nil {
		slog.Error("failed to run migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	detector := postgresRepo.NewConflictDetector()
	s := newSeeder(
		postgresRepo.NewUserRepository(db, detector),
		postgresRepo.NewPostRepository(db, detector),
		*seed,
	)
	stats, err := s.Run(context.Background(), Options{Users: *users, Posts: *rootPosts, Replies: *replies})
	if err != nil {
		slog.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("seeding complete",
		slog.Int64("seed", *seed),
		slog.Int("users", stats.Users),
		slog.Int("posts", stats.Posts),
		slog.Int("replies", stats.Replies),
		slog.Int("likes", stats.Likes),
		slog.Int("views", stats.Views),
		slog.Int("duplicate_likes", stats.DuplicateLikes),
		slog.Int("duplicate_views", stats.DuplicateViews),
	)
}
