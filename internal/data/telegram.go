package data

import (
	"context"
	"time"

	"github.com/moderato-bot/moderato/internal/biz/repo"
	"github.com/moderato-bot/moderato/telegram"
)

// telegramRepo implements the moderation repository over the Telegram client
type telegramRepo struct {
	client *telegram.Client
}

// NewTelegramRepo creates a new Telegram-backed moderation repository
func NewTelegramRepo(client *telegram.Client) repo.ModerationRepo {
	return &telegramRepo{client: client}
}

func (r *telegramRepo) SendText(ctx context.Context, chatID int64, text string) error {
	return r.client.SendText(chatID, text)
}

func (r *telegramRepo) SendReply(ctx context.Context, chatID int64, replyTo int, text string) error {
	return r.client.SendReply(chatID, replyTo, text)
}

func (r *telegramRepo) SendChallenge(ctx context.Context, chatID int64, text, button, data string) error {
	return r.client.SendChallenge(chatID, text, button, data)
}

func (r *telegramRepo) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	return r.client.DeleteMessage(chatID, messageID)
}

func (r *telegramRepo) Restrict(ctx context.Context, chatID, userID int64, until time.Time) error {
	return r.client.Restrict(chatID, userID, until)
}

func (r *telegramRepo) Lift(ctx context.Context, chatID, userID int64) error {
	return r.client.Lift(chatID, userID)
}

func (r *telegramRepo) Ban(ctx context.Context, chatID, userID int64, until time.Time) error {
	return r.client.Ban(chatID, userID, until)
}

func (r *telegramRepo) Unban(ctx context.Context, chatID, userID int64) error {
	return r.client.Unban(chatID, userID)
}

func (r *telegramRepo) MemberStatus(ctx context.Context, chat string, userID int64) (repo.MemberStatus, error) {
	status, err := r.client.MemberStatus(chat, userID)
	if err != nil {
		return "", err
	}
	return repo.MemberStatus(status), nil
}

func (r *telegramRepo) ChatAdmins(ctx context.Context, chatID int64) ([]int64, error) {
	return r.client.ChatAdmins(chatID)
}

func (r *telegramRepo) AnswerCallback(ctx context.Context, callbackID, text string, alert bool) error {
	return r.client.AnswerCallback(callbackID, text, alert)
}
