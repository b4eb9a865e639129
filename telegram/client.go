// Package telegram wraps the Bot API with the typed outbound calls the
// moderation core needs. Inbound updates arrive over the webhook server and
// are decoded there; this client never polls.
package telegram

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Client is the Telegram API client
type Client struct {
	bot *tgbotapi.BotAPI
}

// NewClient creates a new Telegram client. The constructor performs a getMe
// call, so it fails fast on a bad token.
func NewClient(token string, debug bool) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}
	bot.Debug = debug
	fmt.Printf("[Telegram] Authorized as @%s\n", bot.Self.UserName)
	return &Client{bot: bot}, nil
}

// Username returns the bot's own username
func (c *Client) Username() string {
	return c.bot.Self.UserName
}

// SendText sends a plain text message to a chat
func (c *Client) SendText(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("send message failed: %w", err)
	}
	return nil
}

// SendReply sends a text message as a reply to an existing message
func (c *Client) SendReply(chatID int64, replyTo int, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyToMessageID = replyTo
	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("send reply failed: %w", err)
	}
	return nil
}

// SendChallenge sends a message with a single inline button carrying data as
// its callback payload
func (c *Client) SendChallenge(chatID int64, text, button, data string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(button, data),
		),
	)
	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("send challenge failed: %w", err)
	}
	return nil
}

// DeleteMessage removes a message from a chat
func (c *Client) DeleteMessage(chatID int64, messageID int) error {
	if _, err := c.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID)); err != nil {
		return fmt.Errorf("delete message failed: %w", err)
	}
	return nil
}

// noSend revokes every send permission
var noSend = tgbotapi.ChatPermissions{}

// fullSend restores every permission a regular member can hold
var fullSend = tgbotapi.ChatPermissions{
	CanSendMessages:       true,
	CanSendMediaMessages:  true,
	CanSendPolls:          true,
	CanSendOtherMessages:  true,
	CanAddWebPagePreviews: true,
	CanChangeInfo:         true,
	CanInviteUsers:        true,
	CanPinMessages:        true,
}

// Restrict revokes all send permissions for a member. A zero until means
// indefinite (the API treats until_date 0 as forever).
func (c *Client) Restrict(chatID, userID int64, until time.Time) error {
	perms := noSend
	cfg := tgbotapi.RestrictChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{ChatID: chatID, UserID: userID},
		Permissions:      &perms,
	}
	if !until.IsZero() {
		cfg.UntilDate = until.Unix()
	}
	if _, err := c.bot.Request(cfg); err != nil {
		return fmt.Errorf("restrict member failed: %w", err)
	}
	return nil
}

// Lift restores all send permissions for a member
func (c *Client) Lift(chatID, userID int64) error {
	perms := fullSend
	cfg := tgbotapi.RestrictChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{ChatID: chatID, UserID: userID},
		Permissions:      &perms,
	}
	if _, err := c.bot.Request(cfg); err != nil {
		return fmt.Errorf("lift restrictions failed: %w", err)
	}
	return nil
}

// Ban removes a member from a chat. A zero until means the platform default.
func (c *Client) Ban(chatID, userID int64, until time.Time) error {
	cfg := tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{ChatID: chatID, UserID: userID},
	}
	if !until.IsZero() {
		cfg.UntilDate = until.Unix()
	}
	if _, err := c.bot.Request(cfg); err != nil {
		return fmt.Errorf("ban member failed: %w", err)
	}
	return nil
}

// Unban clears a member's ban, only if one is currently in effect. The
// only-if-banned qualifier keeps the call from kicking a present member.
func (c *Client) Unban(chatID, userID int64) error {
	cfg := tgbotapi.UnbanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{ChatID: chatID, UserID: userID},
		OnlyIfBanned:     true,
	}
	if _, err := c.bot.Request(cfg); err != nil {
		return fmt.Errorf("unban member failed: %w", err)
	}
	return nil
}

// MemberStatus queries a member's standing in a chat. chat accepts a numeric
// id in decimal or an @username (the form channels are usually configured by).
func (c *Client) MemberStatus(chat string, userID int64) (string, error) {
	cfg := tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{UserID: userID},
	}
	if strings.HasPrefix(chat, "@") {
		cfg.SuperGroupUsername = chat
	} else {
		id, err := strconv.ParseInt(chat, 10, 64)
		if err != nil {
			return "", fmt.Errorf("bad chat identifier %q: %w", chat, err)
		}
		cfg.ChatID = id
	}
	member, err := c.bot.GetChatMember(cfg)
	if err != nil {
		return "", fmt.Errorf("get chat member failed: %w", err)
	}
	return member.Status, nil
}

// ChatAdmins queries the full administrator list of a chat
func (c *Client) ChatAdmins(chatID int64) ([]int64, error) {
	admins, err := c.bot.GetChatAdministrators(tgbotapi.ChatAdministratorsConfig{
		ChatConfig: tgbotapi.ChatConfig{ChatID: chatID},
	})
	if err != nil {
		return nil, fmt.Errorf("get chat administrators failed: %w", err)
	}
	ids := make([]int64, 0, len(admins))
	for _, a := range admins {
		if a.User != nil {
			ids = append(ids, a.User.ID)
		}
	}
	return ids, nil
}

// AnswerCallback acknowledges a button click. With alert set the text is
// shown as a blocking dialog instead of a transient notice.
func (c *Client) AnswerCallback(callbackID, text string, alert bool) error {
	cfg := tgbotapi.CallbackConfig{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       alert,
	}
	if _, err := c.bot.Request(cfg); err != nil {
		return fmt.Errorf("answer callback failed: %w", err)
	}
	return nil
}
