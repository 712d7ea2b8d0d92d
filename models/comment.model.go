package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Comment rows are append-only. A reply is a comment whose ParentID points at
// a top-level comment; the tree is never deeper than two levels.
type Comment struct {
	ID        string  `gorm:"size:36;primaryKey" json:"id"`
	ProductID string  `gorm:"size:36;index;not null" json:"product_id"`
	UserID    string  `gorm:"size:36;not null" json:"user_id"`
	ParentID  *string `gorm:"size:36;index" json:"parent_id,omitempty"` // nil for top-level comments
	Content   string  `gorm:"type:text;not null" json:"content"`

	CreatedAt time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// CommentNode is a top-level comment with its replies nested one level deep.
type CommentNode struct {
	Comment
	Replies []Comment `json:"replies"`
}

// BuildCommentTree nests reply rows under their parent comments. Input order
// is preserved on both levels, so feeding rows sorted by creation time yields
// a creation-ordered tree. Replies whose parent is missing are dropped.
func BuildCommentTree(comments []Comment) []CommentNode {
	nodes := make([]CommentNode, 0, len(comments))
	index := make(map[string]int, len(comments))

	for _, c := range comments {
		if c.ParentID == nil {
			index[c.ID] = len(nodes)
			nodes = append(nodes, CommentNode{Comment: c, Replies: []Comment{}})
		}
	}

	for _, c := range comments {
		if c.ParentID == nil {
			continue
		}
		if i, ok := index[*c.ParentID]; ok {
			nodes[i].Replies = append(nodes[i].Replies, c)
		}
	}

	return nodes
}
