package domain

import "time"

// Comment is a simulated remark from another user. UserName is free text
// and not tied to any profile.
type Comment struct {
	ID        string
	GoalID    string
	UserName  string
	Content   string
	CreatedAt time.Time
}

func NewComment(goalID, userName, content string, now time.Time) Comment {
	return Comment{
		ID:        NewID(),
		GoalID:    goalID,
		UserName:  userName,
		Content:   content,
		CreatedAt: now.UTC(),
	}
}
