package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// VerifyToken is the (chat, user) pair carried in the challenge button's
// callback payload. It is a bare identifier pair with no signature and no
// server-side record: the click is trusted solely because the clicking
// actor's id matches the encoded one. Tokens are never invalidated, so a
// button stays clickable after verification; re-clicking just re-lifts
// restrictions that are already lifted.
type VerifyToken struct {
	ChatID int64
	UserID int64
}

const verifyPrefix = "verify"

// ErrNotVerifyToken is returned for callback payloads this bot did not issue.
var ErrNotVerifyToken = errors.New("not a verify token")

// Encode renders the token as callback data (fits Telegram's 64-byte limit).
func (t VerifyToken) Encode() string {
	return fmt.Sprintf("%s:%d:%d", verifyPrefix, t.ChatID, t.UserID)
}

// DecodeVerifyToken parses callback data produced by Encode.
func DecodeVerifyToken(data string) (VerifyToken, error) {
	parts := strings.Split(data, ":")
	if len(parts) != 3 || parts[0] != verifyPrefix {
		return VerifyToken{}, ErrNotVerifyToken
	}
	chatID, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return VerifyToken{}, fmt.Errorf("bad chat id in token: %w", err)
	}
	userID, err := strconv.ParseInt(parts[2], 10, 64)
	if err != nil {
		return VerifyToken{}, fmt.Errorf("bad user id in token: %w", err)
	}
	return VerifyToken{ChatID: chatID, UserID: userID}, nil
}
