package database

import (
	"context"
	"os"
	"testing"

	"fidexia/backend/fixtures"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeedBatch_QueuesEveryFixtureRow(t *testing.T) {
	ctx := context.Background()
	src := fixtures.Static()

	b, err := seedBatch(ctx, src)
	require.NoError(t, err)

	// 5 opportunities, 6 investments, 6+6+3 courses, 6 posts, 3 chats, 4 messages, 5 notifications
	assert.Equal(t, 44, b.Len())
}

func TestSchema_CoversCatalogTables(t *testing.T) {
	tables := []string{"opportunities", "investments", "courses", "forum_posts", "chats", "chat_messages", "notifications"}
	require.Len(t, schema, len(tables))
	for i, name := range tables {
		assert.Contains(t, schema[i], "CREATE TABLE IF NOT EXISTS "+name+" (")
	}
}

func TestCatalog_ReadsSeededFixtures(t *testing.T) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		t.Skip("DATABASE_URL not set")
	}
	ctx := context.Background()
	pool, err := Connect(ctx, url)
	require.NoError(t, err)
	defer pool.Close()

	require.NoError(t, EnsureSchema(ctx, pool))
	require.NoError(t, Seed(ctx, pool, fixtures.Static()))

	src := fixtures.Static()
	cat := fixtures.NewCatalog(pool)

	wantOps, _ := src.Opportunities(ctx)
	gotOps, err := cat.Opportunities(ctx)
	require.NoError(t, err)
	require.Len(t, gotOps, len(wantOps))
	for i, op := range gotOps {
		assert.Equal(t, wantOps[i].Title, op.Title)
		assert.Equal(t, wantOps[i].ROI, op.ROI)
		assert.True(t, wantOps[i].Goal.Equal(op.Goal), "goal of %s", op.Title)
		assert.True(t, wantOps[i].Raised.Equal(op.Raised), "raised of %s", op.Title)
	}

	wantInv, _ := src.Investments(ctx)
	gotInv, err := cat.Investments(ctx)
	require.NoError(t, err)
	require.Len(t, gotInv, len(wantInv))
	for i, inv := range gotInv {
		assert.Equal(t, wantInv[i].Status, inv.Status)
		assert.True(t, wantInv[i].Amount.Equal(inv.Amount), "amount of %s", inv.Title)
	}

	wantCourses, _ := src.EntrepreneurCourses(ctx)
	gotCourses, err := cat.EntrepreneurCourses(ctx)
	require.NoError(t, err)
	assert.Equal(t, wantCourses, gotCourses)

	wantPosts, _ := src.ForumPosts(ctx)
	gotPosts, err := cat.ForumPosts(ctx)
	require.NoError(t, err)
	assert.Equal(t, wantPosts, gotPosts)

	wantChats, _ := src.Chats(ctx)
	gotChats, err := cat.Chats(ctx)
	require.NoError(t, err)
	assert.Equal(t, wantChats, gotChats)

	thread, err := cat.ChatThread(ctx, wantChats[0].ID)
	require.NoError(t, err)
	assert.NotEmpty(t, thread)
	_, err = cat.ChatThread(ctx, 999)
	assert.ErrorIs(t, err, fixtures.ErrChatNotFound)

	wantNotes, _, _ := src.Notifications(ctx)
	gotNotes, n, err := cat.Notifications(ctx)
	require.NoError(t, err)
	assert.Equal(t, wantNotes, gotNotes)
	assert.Equal(t, len(wantNotes), n)
}
