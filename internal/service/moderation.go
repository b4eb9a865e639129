package service

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/moderato-bot/moderato/internal/biz/domain"
	"github.com/moderato-bot/moderato/internal/biz/usecase"
)

// Moderation routes inbound updates to the membership gate, the command
// processor or the keyword enforcement path. Each update is an independent
// unit of work: no ordering, no mutual exclusion across chats or members.
type Moderation struct {
	gate     *usecase.Gate
	commands *usecase.Commands
	enforcer *usecase.Enforcer
}

// NewModeration creates a new moderation service
func NewModeration(gate *usecase.Gate, commands *usecase.Commands, enforcer *usecase.Enforcer) *Moderation {
	return &Moderation{
		gate:     gate,
		commands: commands,
		enforcer: enforcer,
	}
}

// HandleUpdate dispatches one update. A panic while handling aborts that
// update only; the webhook has already been acknowledged.
func (s *Moderation) HandleUpdate(ctx context.Context, update *tgbotapi.Update) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("[Router] Panic while handling update %d: %v\n", update.UpdateID, r)
		}
	}()

	switch {
	case update.CallbackQuery != nil:
		s.gate.HandleCallback(ctx, convertCallback(update.CallbackQuery))

	case update.Message != nil:
		s.handleMessage(ctx, update.Message)
	}
	// All other update kinds (edits, channel posts, member status changes)
	// are ignored
}

func (s *Moderation) handleMessage(ctx context.Context, raw *tgbotapi.Message) {
	if len(raw.NewChatMembers) > 0 {
		s.gate.HandleJoin(ctx, raw.Chat.ID, convertMembers(raw.NewChatMembers))
		return
	}

	if raw.Text == "" {
		return
	}
	msg := convertMessage(raw)

	// Command prefixes are ruled out before keyword enforcement, whether or
	// not the command is one of ours
	if strings.HasPrefix(msg.Text, "/") {
		s.commands.Handle(ctx, msg)
		return
	}

	s.enforcer.CheckMessage(ctx, msg)
}

func convertCallback(cb *tgbotapi.CallbackQuery) domain.Callback {
	out := domain.Callback{
		ID:   cb.ID,
		Data: cb.Data,
	}
	if cb.From != nil {
		out.Actor = *convertUser(cb.From)
	}
	if cb.Message != nil && cb.Message.Chat != nil {
		out.ChatID = cb.Message.Chat.ID
	}
	return out
}

func convertMessage(raw *tgbotapi.Message) *domain.Message {
	msg := &domain.Message{
		ChatID:    raw.Chat.ID,
		MessageID: raw.MessageID,
		Text:      raw.Text,
		ChatType:  domain.ChatTypePrivate,
	}
	if raw.Chat.IsGroup() || raw.Chat.IsSuperGroup() {
		msg.ChatType = domain.ChatTypeGroup
	}
	if raw.From != nil {
		msg.Sender = convertUser(raw.From)
	}
	if raw.ReplyToMessage != nil {
		// One level is enough: commands only need the replied-to author
		reply := &domain.Message{
			ChatID:    raw.Chat.ID,
			MessageID: raw.ReplyToMessage.MessageID,
			Text:      raw.ReplyToMessage.Text,
			ChatType:  msg.ChatType,
		}
		if raw.ReplyToMessage.From != nil {
			reply.Sender = convertUser(raw.ReplyToMessage.From)
		}
		msg.ReplyTo = reply
	}
	return msg
}

func convertMembers(users []tgbotapi.User) []domain.Member {
	members := make([]domain.Member, 0, len(users))
	for i := range users {
		members = append(members, *convertUser(&users[i]))
	}
	return members
}

func convertUser(u *tgbotapi.User) *domain.Member {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		name = u.UserName
	}
	return &domain.Member{
		UserID: u.ID,
		Name:   name,
		IsBot:  u.IsBot,
	}
}
