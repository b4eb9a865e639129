package domain

import "fmt"

// Member represents a chat member (value object)
type Member struct {
	UserID int64
	Name   string
	IsBot  bool
}

// FormatDisplay formats the member for moderation notices
func (m *Member) FormatDisplay() string {
	if m.Name != "" {
		return m.Name
	}
	return fmt.Sprintf("user %d", m.UserID)
}
