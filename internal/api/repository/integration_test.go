//go:build integration

package repository

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	"trove/database"
	"trove/internal/api/models"
	"trove/internal/config"
)

// These tests exercise the SQL that the unit tests mock away: membership
// full-replace, the bulk read flip and the active-tag partition. They need a
// Docker daemon and are skipped without one.

func dockerAvailable() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return exec.CommandContext(ctx, "docker", "info").Run() == nil
}

func setupPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if !dockerAvailable() {
		t.Skip("Skipping test: Docker not available")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "trove",
			"POSTGRES_PASSWORD": "trove",
			"POSTGRES_DB":       "trove_test",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	cfg := &config.Config{
		DatabaseURL: fmt.Sprintf("postgres://trove:trove@%s:%s/trove_test?sslmode=disable", host, port.Port()),
	}
	db, err := database.Connect(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	return db
}

func createUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "irrelevant",
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createTag(t *testing.T, db *gorm.DB, userID int64, text string) models.Tag {
	t.Helper()
	tag := models.Tag{UserID: userID, Tag: text}
	require.NoError(t, db.Create(&tag).Error)
	return tag
}

func tagIDs(tags []models.Tag) []int64 {
	ids := make([]int64, 0, len(tags))
	for _, tag := range tags {
		ids = append(ids, tag.ID)
	}
	return ids
}

func TestMediaRepoUpdate_ReplacesTagMembership(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	user := createUser(t, db, "alice")
	author := models.Author{UserID: user.ID, Name: "Herbert"}
	require.NoError(t, db.Create(&author).Error)
	scifi := createTag(t, db, user.ID, "Science Fiction")
	classic := createTag(t, db, user.ID, "Classic")

	repo := NewMediaRepo[models.Book](db, BookRepoConfig())

	book := models.Book{UserID: user.ID, Name: "Dune", Current: true, AuthorID: author.ID}
	require.NoError(t, repo.Create(ctx, &book, map[string][]any{
		"Tags": {models.Tag{ID: scifi.ID}},
	}))

	got, err := repo.GetOwnedByID(ctx, book.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{scifi.ID}, tagIDs(got.Tags))

	// full replace: the omitted tag must be detached, not merged
	require.NoError(t, repo.Update(ctx, got, map[string][]any{
		"Tags": {models.Tag{ID: classic.ID}},
	}))

	got, err = repo.GetOwnedByID(ctx, book.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{classic.ID}, tagIDs(got.Tags))

	// an empty submitted set clears the membership entirely
	require.NoError(t, repo.Update(ctx, got, map[string][]any{"Tags": {}}))

	got, err = repo.GetOwnedByID(ctx, book.ID, user.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Tags)
}

func TestRecommendationRepoMarkAllRead_FlipsOnlyUnread(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	sender := createUser(t, db, "alice")
	recipient := createUser(t, db, "bob")
	author := models.Author{UserID: sender.ID, Name: "Herbert"}
	require.NoError(t, db.Create(&author).Error)
	book := models.Book{UserID: sender.ID, Name: "Dune", Current: true, AuthorID: author.ID}
	require.NoError(t, db.Create(&book).Error)

	unread := models.BookRecommendation{
		Recommendation: models.Recommendation{SenderID: sender.ID, RecipientID: recipient.ID, Message: "read this"},
		BookID:         book.ID,
	}
	alreadyRead := models.BookRecommendation{
		Recommendation: models.Recommendation{SenderID: sender.ID, RecipientID: recipient.ID, Message: "old one", Read: true},
		BookID:         book.ID,
	}
	require.NoError(t, db.Create(&unread).Error)
	require.NoError(t, db.Create(&alreadyRead).Error)

	repo := NewRecommendationRepo[models.BookRecommendation](db, "Book", "Sender", "Recipient")

	n, err := repo.MarkAllRead(ctx, recipient.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// second pass finds nothing left to flip
	n, err = repo.MarkAllRead(ctx, recipient.ID)
	require.NoError(t, err)
	assert.Zero(t, n)

	hasUnread, err := repo.HasUnread(ctx, recipient.ID)
	require.NoError(t, err)
	assert.False(t, hasUnread)

	list, err := repo.List(ctx, recipient.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, rec := range list {
		assert.True(t, rec.Read)
		require.NotNil(t, rec.Book)
		require.NotNil(t, rec.Sender)
		require.NotNil(t, rec.Recipient)
		assert.Equal(t, "alice", rec.Sender.Username)
		assert.Equal(t, "bob", rec.Recipient.Username)
	}
}

func TestTagRepoListActive_PartitionsByCurrentFlag(t *testing.T) {
	db := setupPostgres(t)
	ctx := context.Background()

	user := createUser(t, db, "alice")
	author := models.Author{UserID: user.ID, Name: "Herbert"}
	require.NoError(t, db.Create(&author).Error)

	currentOnly := createTag(t, db, user.ID, "Current Only")
	queuedOnly := createTag(t, db, user.ID, "Queued Only")
	both := createTag(t, db, user.ID, "Both States")
	unused := createTag(t, db, user.ID, "Unused")

	currentBook := models.Book{UserID: user.ID, Name: "Dune", Current: true, AuthorID: author.ID}
	queuedBook := models.Book{UserID: user.ID, Name: "Messiah", Current: false, AuthorID: author.ID}
	require.NoError(t, db.Create(&currentBook).Error)
	require.NoError(t, db.Create(&queuedBook).Error)
	require.NoError(t, db.Create(&models.TaggedBook{BookID: currentBook.ID, TagID: currentOnly.ID}).Error)
	require.NoError(t, db.Create(&models.TaggedBook{BookID: currentBook.ID, TagID: both.ID}).Error)
	require.NoError(t, db.Create(&models.TaggedBook{BookID: queuedBook.ID, TagID: both.ID}).Error)

	queuedGame := models.Game{UserID: user.ID, Name: "Myst", Current: false}
	require.NoError(t, db.Create(&queuedGame).Error)
	require.NoError(t, db.Create(&models.TaggedGame{GameID: queuedGame.ID, TagID: queuedOnly.ID}).Error)

	repo := NewTagRepository(db)
	current := true
	queued := false

	// a tag attached only to a current item appears on the current side only
	currentBookTags, err := repo.ListActive(ctx, user.ID, "books", &current)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{currentOnly.ID, both.ID}, tagIDs(currentBookTags))

	queuedBookTags, err := repo.ListActive(ctx, user.ID, "books", &queued)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{both.ID}, tagIDs(queuedBookTags))

	queuedGameTags, err := repo.ListActive(ctx, user.ID, "games", &queued)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{queuedOnly.ID}, tagIDs(queuedGameTags))

	// the union ignores the current flag and still excludes unused tags
	anyTags, err := repo.ListActive(ctx, user.ID, "any", nil)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{currentOnly.ID, queuedOnly.ID, both.ID}, tagIDs(anyTags))
	assert.NotContains(t, tagIDs(anyTags), unused.ID)
}
