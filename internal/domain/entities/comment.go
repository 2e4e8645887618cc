package entities

import "time"

// Comment is a message on a bench. A non-nil ParentID makes it a reply.
type Comment struct {
	ID         string    `json:"id" db:"id"`
	BenchID    string    `json:"bench_id" db:"bench_id"`
	UserID     string    `json:"user_id" db:"user_id"`
	Body       string    `json:"body" db:"body"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
	ParentID   *string   `json:"parent_id" db:"parent_id"`
	AuthorName *string   `json:"author_name" db:"-"`
}

// IsReply reports whether the comment references a parent
func (c *Comment) IsReply() bool {
	return c.ParentID != nil && *c.ParentID != ""
}
