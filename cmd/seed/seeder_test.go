package main

import (
	"context"
	"errors"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gophertalk/internal/core/posts"
	postgresRepo "gophertalk/internal/db/postgres"
)

type reaction struct{ postID, userID int64 }

// memoryRepo is an in-memory posts.Repository that enforces reaction uniqueness
type memoryRepo struct {
	posts []posts.CreatePostRequest
	views map[reaction]bool
	likes map[reaction]bool
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{views: map[reaction]bool{}, likes: map[reaction]bool{}}
}

func (m *memoryRepo) Create(ctx context.Context, req posts.CreatePostRequest) (*posts.Post, error) {
	m.posts = append(m.posts, req)
	return &posts.Post{ID: int64(len(m.posts)), Text: req.Text, UserID: req.UserID, ReplyToID: req.ReplyToID}, nil
}

func (m *memoryRepo) List(ctx context.Context, req posts.ListPostsRequest) ([]*posts.PostView, error) {
	return nil, errors.New("not used")
}

func (m *memoryRepo) GetByID(ctx context.Context, postID, viewerID int64) (*posts.PostView, error) {
	return nil, errors.New("not used")
}

func (m *memoryRepo) Delete(ctx context.Context, postID, ownerID int64) error {
	return errors.New("not used")
}

func (m *memoryRepo) View(ctx context.Context, postID, userID int64) error {
	key := reaction{postID, userID}
	if m.views[key] {
		return posts.ErrAlreadyViewed
	}
	m.views[key] = true
	return nil
}

func (m *memoryRepo) Like(ctx context.Context, postID, userID int64) error {
	key := reaction{postID, userID}
	if m.likes[key] {
		return posts.ErrAlreadyLiked
	}
	m.likes[key] = true
	return nil
}

func (m *memoryRepo) Dislike(ctx context.Context, postID, userID int64) error {
	return errors.New("not used")
}

func expectUsers(mock sqlmock.Sqlmock, n int) {
	columns := []string{"id", "user_name", "first_name", "last_name", "password_hash", "status", "created_at", "updated_at"}
	now := time.Now()
	for i := 1; i <= n; i++ {
		mock.ExpectQuery(`INSERT INTO users`).
			WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows(columns).AddRow(int64(i), "u", "f", "l", "h", int16(1), now, now))
	}
}

func TestSeeder_Run(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	expectUsers(mock, 5)
	repo := newMemoryRepo()

	stats, err := newSeeder(postgresRepo.NewUserRepository(db, nil), repo, 42).Run(context.Background(), Options{Users: 5, Posts: 10, Replies: 15})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())

	assert.Equal(t, 5, stats.Users)
	assert.Equal(t, 10, stats.Posts)
	assert.Equal(t, 15, stats.Replies)
	assert.Equal(t, len(repo.views), stats.Views)
	assert.Equal(t, len(repo.likes), stats.Likes)

	require.Len(t, repo.posts, 25)
	for i, p := range repo.posts {
		assert.NotEmpty(t, p.Text)
		assert.LessOrEqual(t, utf8.RuneCountInString(p.Text), posts.MaxTextLength)
		assert.True(t, p.UserID >= 1 && p.UserID <= 5)
		if i < 10 {
			assert.Nil(t, p.ReplyToID, "root posts come first")
		} else {
			require.NotNil(t, p.ReplyToID)
			assert.LessOrEqual(t, *p.ReplyToID, int64(i), "replies point at an earlier post")
		}
	}

	for key := range repo.likes {
		assert.True(t, repo.views[key], "likes are only given by viewers")
	}
}

func TestSeeder_SameSeedSameData(t *testing.T) {
	run := func() (*memoryRepo, Stats) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		expectUsers(mock, 3)

		repo := newMemoryRepo()
		stats, err := newSeeder(postgresRepo.NewUserRepository(db, nil), repo, 7).Run(context.Background(), Options{Users: 3, Posts: 4, Replies: 4})
		require.NoError(t, err)
		return repo, stats
	}

	repoA, statsA := run()
	repoB, statsB := run()

	assert.Equal(t, statsA, statsB)
	assert.Equal(t, repoA.posts, repoB.posts)
}

func TestSeeder_NoUsers(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = newSeeder(postgresRepo.NewUserRepository(db, nil), newMemoryRepo(), 1).Run(context.Background(), Options{Users: 0, Posts: 1})
	assert.Error(t, err)
}

func TestSeeder_UserInsertFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery(`INSERT INTO users`).WillReturnError(errors.New("connection refused"))

	_, err = newSeeder(postgresRepo.NewUserRepository(db, nil), newMemoryRepo(), 1).Run(context.Background(), Options{Users: 2, Posts: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to insert user")
}
