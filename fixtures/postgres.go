package fixtures

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// Catalog reads list fixtures from Postgres and keeps the composite records
// (featured project, landing copy, dashboard stats) from the built-in set.
type Catalog struct {
	staticProvider
	pool *pgxpool.Pool
}

func NewCatalog(pool *pgxpool.Pool) *Catalog {
	return &Catalog{pool: pool}
}

func scanAll[T any](ctx context.Context, pool *pgxpool.Pool, query string, scan func(pgx.Rows) (T, error), args ...any) ([]T, error) {
	rows, err := pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog query: %w", err)
	}
	defer rows.Close()
	out := []T{}
	for rows.Next() {
		v, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("catalog scan: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func parseMoney(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("bad amount %q: %w", s, err)
	}
	return d, nil
}

func (c *Catalog) Opportunities(ctx context.Context) ([]Opportunity, error) {
	return scanAll(ctx, c.pool, `SELECT title, sector, roi, goal::text, raised::text FROM opportunities ORDER BY position`,
		func(r pgx.Rows) (Opportunity, error) {
			var op Opportunity
			var goal, raised string
			if err := r.Scan(&op.Title, &op.Sector, &op.ROI, &goal, &raised); err != nil {
				return op, err
			}
			var err error
			if op.Goal, err = parseMoney(goal); err != nil {
				return op, err
			}
			op.Raised, err = parseMoney(raised)
			return op, err
		})
}

func (c *Catalog) Investments(ctx context.Context) ([]Investment, error) {
	return scanAll(ctx, c.pool, `SELECT title, status, amount::text, roi, impact FROM investments ORDER BY position`,
		func(r pgx.Rows) (Investment, error) {
			var inv Investment
			var amount, status string
			if err := r.Scan(&inv.Title, &status, &amount, &inv.ROI, &inv.Impact); err != nil {
				return inv, err
			}
			inv.Status = InvestmentStatus(status)
			var err error
			inv.Amount, err = parseMoney(amount)
			return inv, err
		})
}

func (c *Catalog) courses(ctx context.Context, audience string) ([]Course, error) {
	return scanAll(ctx, c.pool, `SELECT title, duration, level, progress, lessons FROM courses WHERE audience=$1 ORDER BY position`,
		func(r pgx.Rows) (Course, error) {
			var co Course
			err := r.Scan(&co.Title, &co.Duration, &co.Level, &co.Progress, &co.Lessons)
			return co, err
		}, audience)
}

func (c *Catalog) InvestorCourses(ctx context.Context) ([]Course, error) {
	return c.courses(ctx, "investor")
}

func (c *Catalog) EntrepreneurCourses(ctx context.Context) ([]Course, error) {
	return c.courses(ctx, "entrepreneur")
}

func (c *Catalog) RecommendedCourses(ctx context.Context) ([]Course, error) {
	return c.courses(ctx, "recommended")
}

func (c *Catalog) ForumPosts(ctx context.Context) ([]ForumPost, error) {
	return scanAll(ctx, c.pool, `SELECT id, author, role, avatar, title, content, category, likes, comments, posted, is_liked FROM forum_posts ORDER BY id`,
		func(r pgx.Rows) (ForumPost, error) {
			var p ForumPost
			err := r.Scan(&p.ID, &p.Author, &p.Role, &p.Avatar, &p.Title, &p.Content, &p.Category, &p.Likes, &p.Comments, &p.Time, &p.IsLiked)
			return p, err
		})
}

func (c *Catalog) Chats(ctx context.Context) ([]Chat, error) {
	return scanAll(ctx, c.pool, `SELECT id, name, role, avatar, last_message, shown_at, unread, online FROM chats ORDER BY id`,
		func(r pgx.Rows) (Chat, error) {
			var ch Chat
			err := r.Scan(&ch.ID, &ch.Name, &ch.Role, &ch.Avatar, &ch.LastMessage, &ch.Time, &ch.Unread, &ch.Online)
			return ch, err
		})
}

func (c *Catalog) ChatThread(ctx context.Context, chatID int) ([]ChatMessage, error) {
	var exists bool
	if err := c.pool.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM chats WHERE id=$1)`, chatID).Scan(&exists); err != nil {
		return nil, fmt.Errorf("catalog query: %w", err)
	}
	if !exists {
		return nil, ErrChatNotFound
	}
	return scanAll(ctx, c.pool, `SELECT id, sender, body, shown_at FROM chat_messages ORDER BY id`,
		func(r pgx.Rows) (ChatMessage, error) {
			var m ChatMessage
			err := r.Scan(&m.ID, &m.Sender, &m.Text, &m.Time)
			return m, err
		})
}

func (c *Catalog) Notifications(ctx context.Context) ([]Notification, int, error) {
	list, err := scanAll(ctx, c.pool, `SELECT id, kind, message, shown_at, is_read, action, action_view FROM notifications ORDER BY id`,
		func(r pgx.Rows) (Notification, error) {
			var n Notification
			err := r.Scan(&n.ID, &n.Type, &n.Message, &n.Time, &n.Read, &n.Action, &n.ActionView)
			return n, err
		})
	if err != nil {
		return nil, 0, err
	}
	return list, len(list), nil
}
