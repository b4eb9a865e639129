package domain

// ChatType classifies the chat a message arrived in
type ChatType string

const (
	ChatTypePrivate ChatType = "private"
	ChatTypeGroup   ChatType = "group"
)

// Message represents an inbound chat message
type Message struct {
	ChatID    int64
	MessageID int
	Text      string
	Sender    *Member  // nil when the platform reports no sender
	ReplyTo   *Message // the replied-to message, if any
	ChatType  ChatType
}

// Callback represents a button click on a challenge message
type Callback struct {
	ID     string // platform callback id, used for the ack
	Actor  Member // who clicked
	ChatID int64  // chat the button message lives in
	Data   string // raw callback payload
}

// IsGroup reports whether the message was sent in a group-type chat
func (m *Message) IsGroup() bool {
	return m.ChatType == ChatTypeGroup
}
