package database

import (
	"context"
	"fmt"

	"fidexia/backend/fixtures"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS opportunities (
		position INT PRIMARY KEY,
		title TEXT NOT NULL,
		sector TEXT NOT NULL,
		roi TEXT NOT NULL,
		goal NUMERIC NOT NULL,
		raised NUMERIC NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS investments (
		position INT PRIMARY KEY,
		title TEXT NOT NULL,
		status TEXT NOT NULL,
		amount NUMERIC NOT NULL,
		roi INT NOT NULL,
		impact TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS courses (
		audience TEXT NOT NULL, -- investor | entrepreneur | recommended
		position INT NOT NULL,
		title TEXT NOT NULL,
		duration TEXT NOT NULL,
		level TEXT NOT NULL DEFAULT '',
		progress INT NOT NULL DEFAULT 0,
		lessons INT NOT NULL DEFAULT 0,
		PRIMARY KEY (audience, position)
	)`,
	`CREATE TABLE IF NOT EXISTS forum_posts (
		id INT PRIMARY KEY,
		author TEXT NOT NULL,
		role TEXT NOT NULL,
		avatar TEXT NOT NULL,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		category TEXT NOT NULL,
		likes INT NOT NULL,
		comments INT NOT NULL,
		posted TEXT NOT NULL,
		is_liked BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS chats (
		id INT PRIMARY KEY,
		name TEXT NOT NULL,
		role TEXT NOT NULL,
		avatar TEXT NOT NULL,
		last_message TEXT NOT NULL,
		shown_at TEXT NOT NULL,
		unread INT NOT NULL DEFAULT 0,
		online BOOLEAN NOT NULL DEFAULT FALSE
	)`,
	`CREATE TABLE IF NOT EXISTS chat_messages (
		id INT PRIMARY KEY,
		sender TEXT NOT NULL,
		body TEXT NOT NULL,
		shown_at TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id INT PRIMARY KEY,
		kind TEXT NOT NULL,
		message TEXT NOT NULL,
		shown_at TEXT NOT NULL,
		is_read BOOLEAN NOT NULL DEFAULT FALSE,
		action TEXT NOT NULL,
		action_view TEXT NOT NULL
	)`,
}

// EnsureSchema creates the catalog tables if they do not exist.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema: %w", err)
		}
	}
	return nil
}

// Seed loads the built-in fixtures into an empty catalog. A catalog that
// already has opportunities is left alone.
func Seed(ctx context.Context, pool *pgxpool.Pool, src fixtures.Provider) error {
	var n int
	if err := pool.QueryRow(ctx, `SELECT COUNT(*) FROM opportunities`).Scan(&n); err != nil {
		return fmt.Errorf("seed count: %w", err)
	}
	if n > 0 {
		return nil
	}

	batch, err := seedBatch(ctx, src)
	if err != nil {
		return err
	}
	return pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		br := tx.SendBatch(ctx, batch)
		for i := 0; i < batch.Len(); i++ {
			if _, err := br.Exec(); err != nil {
				br.Close()
				return fmt.Errorf("seed row %d: %w", i, err)
			}
		}
		return br.Close()
	})
}

func seedBatch(ctx context.Context, src fixtures.Provider) (*pgx.Batch, error) {
	b := &pgx.Batch{}

	ops, err := src.Opportunities(ctx)
	if err != nil {
		return nil, err
	}
	for i, op := range ops {
		b.Queue(`INSERT INTO opportunities(position,title,sector,roi,goal,raised) VALUES($1,$2,$3,$4,$5::numeric,$6::numeric)`,
			i, op.Title, op.Sector, op.ROI, op.Goal.String(), op.Raised.String())
	}

	invs, err := src.Investments(ctx)
	if err != nil {
		return nil, err
	}
	for i, inv := range invs {
		b.Queue(`INSERT INTO investments(position,title,status,amount,roi,impact) VALUES($1,$2,$3,$4::numeric,$5,$6)`,
			i, inv.Title, string(inv.Status), inv.Amount.String(), inv.ROI, inv.Impact)
	}

	courseSets := []struct {
		audience string
		load     func(context.Context) ([]fixtures.Course, error)
	}{
		{"investor", src.InvestorCourses},
		{"entrepreneur", src.EntrepreneurCourses},
		{"recommended", src.RecommendedCourses},
	}
	for _, set := range courseSets {
		list, err := set.load(ctx)
		if err != nil {
			return nil, err
		}
		for i, c := range list {
			b.Queue(`INSERT INTO courses(audience,position,title,duration,level,progress,lessons) VALUES($1,$2,$3,$4,$5,$6,$7)`,
				set.audience, i, c.Title, c.Duration, c.Level, c.Progress, c.Lessons)
		}
	}

	posts, err := src.ForumPosts(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range posts {
		b.Queue(`INSERT INTO forum_posts(id,author,role,avatar,title,content,category,likes,comments,posted,is_liked) VALUES($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
			p.ID, p.Author, p.Role, p.Avatar, p.Title, p.Content, p.Category, p.Likes, p.Comments, p.Time, p.IsLiked)
	}

	chats, err := src.Chats(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range chats {
		b.Queue(`INSERT INTO chats(id,name,role,avatar,last_message,shown_at,unread,online) VALUES($1,$2,$3,$4,$5,$6,$7,$8)`,
			c.ID, c.Name, c.Role, c.Avatar, c.LastMessage, c.Time, c.Unread, c.Online)
	}
	if len(chats) > 0 {
		thread, err := src.ChatThread(ctx, chats[0].ID)
		if err != nil {
			return nil, err
		}
		for _, m := range thread {
			b.Queue(`INSERT INTO chat_messages(id,sender,body,shown_at) VALUES($1,$2,$3,$4)`, m.ID, m.Sender, m.Text, m.Time)
		}
	}

	notes, _, err := src.Notifications(ctx)
	if err != nil {
		return nil, err
	}
	for _, n := range notes {
		b.Queue(`INSERT INTO notifications(id,kind,message,shown_at,is_read,action,action_view) VALUES($1,$2,$3,$4,$5,$6,$7)`,
			n.ID, n.Type, n.Message, n.Time, n.Read, n.Action, n.ActionView)
	}
	return b, nil
}
