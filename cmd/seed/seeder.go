package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"

	"gophertalk/internal/core/posts"
	"gophertalk/internal/core/users"
)

// devPassword is the password of every seeded user
const devPassword = "password"

// Options controls how much data a run generates
type Options struct {
	Users   int
	Posts   int
	Replies int
}

// Stats counts what a run inserted
// Duplicate likes and views are random collisions rejected by the store.
type Stats struct {
	Users          int
	Posts          int
	Replies        int
	Likes          int
	Views          int
	DuplicateLikes int
	DuplicateViews int
}

type seeder struct {
	users users.UserRepository
	repo  posts.Repository
	faker *gofakeit.Faker
}

func newSeeder(userRepo users.UserRepository, repo posts.Repository, seed int64) *seeder {
	return &seeder{users: userRepo, repo: repo, faker: gofakeit.New(seed)}
}

// Run inserts users, then root posts, then replies, then random views and likes
func (s *seeder) Run(ctx context.Context, opts Options) (Stats, error) {
	var stats Stats

	if opts.Users <= 0 {
		return stats, errors.New("at least one user is required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(devPassword), bcrypt.DefaultCost)
	if err != nil {
		return stats, fmt.Errorf("failed to hash password: %w", err)
	}

	userIDs := make([]int64, 0, opts.Users)
	for i := 0; i < opts.Users; i++ {
		id, err := s.createUser(ctx, i, string(hash))
		if err != nil {
			return stats, err
		}
		userIDs = append(userIDs, id)
	}
	stats.Users = len(userIDs)

	postIDs := make([]int64, 0, opts.Posts+opts.Replies)
	for i := 0; i < opts.Posts; i++ {
		post, err := s.repo.Create(ctx, posts.CreatePostRequest{
			Text:   s.text(),
			UserID: s.pick(userIDs),
		})
		if err != nil {
			return stats, fmt.Errorf("failed to create post: %w", err)
		}
		postIDs = append(postIDs, post.ID)
	}
	stats.Posts = len(postIDs)

	if len(postIDs) > 0 {
		for i := 0; i < opts.Replies; i++ {
			parent := s.pick(postIDs)
			reply, err := s.repo.Create(ctx, posts.CreatePostRequest{
				Text:      s.text(),
				UserID:    s.pick(userIDs),
				ReplyToID: &parent,
			})
			if err != nil {
				return stats, fmt.Errorf("failed to create reply: %w", err)
			}
			postIDs = append(postIDs, reply.ID)
			stats.Replies++
		}
	}

	for _, postID := range postIDs {
		for n := s.faker.Number(0, len(userIDs)); n > 0; n-- {
			viewer := s.pick(userIDs)

			switch err := s.repo.View(ctx, postID, viewer); {
			case err == nil:
				stats.Views++
			case posts.IsConflict(err):
				stats.DuplicateViews++
			default:
				return stats, fmt.Errorf("failed to view post %d: %w", postID, err)
			}

			// Roughly a third of viewers also like the post
			if s.faker.Number(0, 2) != 0 {
				continue
			}
			switch err := s.repo.Like(ctx, postID, viewer); {
			case err == nil:
				stats.Likes++
			case posts.IsConflict(err):
				stats.DuplicateLikes++
			default:
				return stats, fmt.Errorf("failed to like post %d: %w", postID, err)
			}
		}
	}

	return stats, nil
}

func (s *seeder) createUser(ctx context.Context, n int, passwordHash string) (int64, error) {
	// The index suffix keeps user_name unique within a run
	userName := fmt.Sprintf("%s_%d", s.faker.Username(), n)
	if len(userName) > 50 {
		userName = userName[len(userName)-50:]
	}

	user, err := s.users.Create(ctx, users.CreateUserRequest{
		UserName:     userName,
		FirstName:    s.faker.FirstName(),
		LastName:     s.faker.LastName(),
		PasswordHash: passwordHash,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to insert user %s: %w", userName, err)
	}

	return user.ID, nil
}

// text returns a random sentence that fits in a post
func (s *seeder) text() string {
	runes := []rune(s.faker.Sentence(s.faker.Number(3, 25)))
	if len(runes) > posts.MaxTextLength {
		runes = runes[:posts.MaxTextLength]
	}
	return string(runes)
}

func (s *seeder) pick(ids []int64) int64 {
	return ids[s.faker.Number(0, len(ids)-1)]
}
