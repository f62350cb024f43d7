package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"postcomments/blog/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPost(t *testing.T, title string) *domain.Post {
	t.Helper()
	post, err := domain.NewPost(domain.NewTitle(title), domain.NewContent("body of "+title), uuid.New())
	require.NoError(t, err)
	return post
}

func TestMemoryRepository_AddAndGet(t *testing.T) {
	repo := NewMemoryRepository[*domain.Post]()
	ctx := context.Background()
	post := newTestPost(t, "T1")

	require.NoError(t, repo.Add(ctx, post))

	stored, found, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, post, stored)
}

func TestMemoryRepository_GetAbsentIsNotAnError(t *testing.T) {
	repo := NewMemoryRepository[*domain.Post]()

	stored, found, err := repo.GetByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, stored)
}

func TestMemoryRepository_AddDuplicateID(t *testing.T) {
	repo := NewMemoryRepository[*domain.Post]()
	ctx := context.Background()
	post := newTestPost(t, "T1")

	require.NoError(t, repo.Add(ctx, post))

	err := repo.Add(ctx, post)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDuplicateID))
}

func TestMemoryRepository_ListAllPreservesInsertionOrder(t *testing.T) {
	repo := NewMemoryRepository[*domain.Post]()
	ctx := context.Background()

	var want []uuid.UUID
	for i := 0; i < 5; i++ {
		post := newTestPost(t, fmt.Sprintf("T%d", i))
		require.NoError(t, repo.Add(ctx, post))
		want = append(want, post.ID)
	}

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 5)
	for i, post := range all {
		assert.Equal(t, want[i], post.ID)
	}
}

func TestMemoryRepository_ListByPredicate(t *testing.T) {
	repo := NewMemoryRepository[*domain.Comment]()
	ctx := context.Background()

	postA := uuid.New()
	postB := uuid.New()

	// interleave comments across two posts
	for i := 0; i < 6; i++ {
		owner := postA
		if i%2 == 1 {
			owner = postB
		}
		comment, err := domain.NewComment(uuid.New(), owner, domain.NewContent(fmt.Sprintf("c%d", i)))
		require.NoError(t, err)
		require.NoError(t, repo.Add(ctx, comment))
	}

	matches, err := repo.List(ctx, func(c *domain.Comment) bool {
		return c.PostID == postA
	})
	require.NoError(t, err)
	require.Len(t, matches, 3)
	for _, c := range matches {
		assert.Equal(t, postA, c.PostID)
	}
}

func TestMemoryRepository_Update(t *testing.T) {
	repo := NewMemoryRepository[*domain.Post]()
	ctx := context.Background()
	post := newTestPost(t, "before")
	require.NoError(t, repo.Add(ctx, post))

	post.Title.Text = "after"
	require.NoError(t, repo.Update(ctx, post))

	stored, found, err := repo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "after", stored.Title.Text)
}

func TestMemoryRepository_UpdateAbsent(t *testing.T) {
	repo := NewMemoryRepository[*domain.Post]()

	err := repo.Update(context.Background(), newTestPost(t, "T1"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoSuchEntity))
}

func TestMemoryRepository_Delete(t *testing.T) {
	repo := NewMemoryRepository[*domain.Post]()
	ctx := context.Background()
	keep := newTestPost(t, "keep")
	drop := newTestPost(t, "drop")
	require.NoError(t, repo.Add(ctx, keep))
	require.NoError(t, repo.Add(ctx, drop))

	require.NoError(t, repo.Delete(ctx, drop))

	_, found, err := repo.GetByID(ctx, drop.ID)
	require.NoError(t, err)
	assert.False(t, found)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)
}

func TestMemoryRepository_DeleteAbsent(t *testing.T) {
	repo := NewMemoryRepository[*domain.Post]()

	err := repo.Delete(context.Background(), newTestPost(t, "T1"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoSuchEntity))
}

func TestSeedDemoData(t *testing.T) {
	posts := NewMemoryRepository[*domain.Post]()
	comments := NewMemoryRepository[*domain.Comment]()
	ctx := context.Background()

	require.NoError(t, SeedDemoData(ctx, posts, comments))

	allPosts, err := posts.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, allPosts, 3)

	for _, post := range allPosts {
		assert.Equal(t, demoAuthorID, post.AuthorID)

		postComments, err := comments.List(ctx, func(c *domain.Comment) bool {
			return c.PostID == post.ID
		})
		require.NoError(t, err)
		assert.Len(t, postComments, 4)
	}
}
