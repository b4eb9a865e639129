package repo

import (
	"context"
	"time"
)

// MemberStatus is a member's standing in a chat as reported by the platform
type MemberStatus string

const (
	StatusCreator       MemberStatus = "creator"
	StatusAdministrator MemberStatus = "administrator"
	StatusMember        MemberStatus = "member"
	StatusRestricted    MemberStatus = "restricted"
	StatusLeft          MemberStatus = "left"
	StatusKicked        MemberStatus = "kicked"
)

// ModerationRepo is the chat-platform capability surface the core consumes.
// Every call is a single RPC; failures are reported per call and never retried.
type ModerationRepo interface {
	// SendText sends a plain text message to a chat
	SendText(ctx context.Context, chatID int64, text string) error

	// SendReply sends a text message as a reply to an existing message
	SendReply(ctx context.Context, chatID int64, replyTo int, text string) error

	// SendChallenge sends a message carrying a single inline button whose
	// callback payload is data
	SendChallenge(ctx context.Context, chatID int64, text, button, data string) error

	// DeleteMessage removes a message from a chat
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error

	// Restrict revokes all send permissions for a member.
	// A zero until means indefinite.
	Restrict(ctx context.Context, chatID, userID int64, until time.Time) error

	// Lift restores all send permissions for a member
	Lift(ctx context.Context, chatID, userID int64) error

	// Ban removes a member from a chat. A zero until means the platform
	// default (effectively indefinite).
	Ban(ctx context.Context, chatID, userID int64, until time.Time) error

	// Unban clears a member's ban, only if one is currently in effect
	Unban(ctx context.Context, chatID, userID int64) error

	// MemberStatus queries a single member's standing in a chat.
	// chat accepts a numeric id in decimal or an @username.
	MemberStatus(ctx context.Context, chat string, userID int64) (MemberStatus, error)

	// ChatAdmins queries the full administrator list of a chat
	ChatAdmins(ctx context.Context, chatID int64) ([]int64, error)

	// AnswerCallback acknowledges a button click. With alert set the text is
	// shown as a blocking dialog, otherwise as a transient notice.
	AnswerCallback(ctx context.Context, callbackID, text string, alert bool) error
}
