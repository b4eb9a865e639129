package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/moderato-bot/moderato/internal/biz/domain"
	"github.com/moderato-bot/moderato/internal/biz/repo"
)

const commandUsage = "Reply to a message from the target member with /ban [minutes], /banl or /unban."

// Commands processes the admin-only moderation commands /ban, /banl and
// /unban. The target is always the author of the replied-to message; the
// invoker's admin standing is resolved per invocation through the oracle.
type Commands struct {
	mod    repo.ModerationRepo
	admins repo.AdminOracle
	now    func() time.Time
}

// NewCommands creates a new command processor
func NewCommands(mod repo.ModerationRepo, admins repo.AdminOracle) *Commands {
	return &Commands{
		mod:    mod,
		admins: admins,
		now:    time.Now,
	}
}

// Handle processes msg if it carries one of the moderation commands and
// reports whether it did. A false return means the text is not a command
// this processor owns; command-prefixed messages are still never passed on
// to keyword enforcement by the router.
func (c *Commands) Handle(ctx context.Context, msg *domain.Message) bool {
	cmd, arg := splitCommand(msg.Text)
	switch cmd {
	case "ban", "banl", "unban":
	default:
		return false
	}

	if msg.Sender == nil {
		return true
	}

	ok, err := c.admins.IsAdmin(ctx, msg.ChatID, msg.Sender.UserID)
	if err != nil {
		fmt.Printf("[Commands] Admin check failed for %d in %d: %v\n", msg.Sender.UserID, msg.ChatID, err)
		return true
	}
	if !ok {
		c.reply(ctx, msg, "Only group admins can use this command.")
		return true
	}

	if msg.ReplyTo == nil || msg.ReplyTo.Sender == nil {
		c.reply(ctx, msg, commandUsage)
		return true
	}
	target := msg.ReplyTo.Sender

	switch cmd {
	case "ban":
		c.mute(ctx, msg, target, arg)
	case "banl":
		c.kick(ctx, msg, target)
	case "unban":
		c.lift(ctx, msg, target)
	}
	return true
}

// mute restricts the target, indefinitely unless a positive minute count was
// given
func (c *Commands) mute(ctx context.Context, msg *domain.Message, target *domain.Member, arg string) {
	minutes, err := strconv.Atoi(arg)
	if err != nil || minutes <= 0 {
		if err := c.mod.Restrict(ctx, msg.ChatID, target.UserID, time.Time{}); err != nil {
			fmt.Printf("[Commands] Restrict failed for %d in %d: %v\n", target.UserID, msg.ChatID, err)
			return
		}
		c.reply(ctx, msg, fmt.Sprintf("Muted %s indefinitely.", target.FormatDisplay()))
		return
	}

	until := c.now().Add(time.Duration(minutes) * time.Minute)
	if err := c.mod.Restrict(ctx, msg.ChatID, target.UserID, until); err != nil {
		fmt.Printf("[Commands] Restrict failed for %d in %d: %v\n", target.UserID, msg.ChatID, err)
		return
	}
	c.reply(ctx, msg, fmt.Sprintf("Muted %s for %d minutes.", target.FormatDisplay(), minutes))
}

// kick removes the target from the chat without blocking a later rejoin:
// a ban immediately followed by an unban-if-banned. The two RPCs are
// independent; a message landing between them is processed under the
// momentary ban.
func (c *Commands) kick(ctx context.Context, msg *domain.Message, target *domain.Member) {
	if err := c.mod.Ban(ctx, msg.ChatID, target.UserID, time.Time{}); err != nil {
		fmt.Printf("[Commands] Ban failed for %d in %d: %v\n", target.UserID, msg.ChatID, err)
		return
	}
	if err := c.mod.Unban(ctx, msg.ChatID, target.UserID); err != nil {
		fmt.Printf("[Commands] Unban after kick failed for %d in %d: %v\n", target.UserID, msg.ChatID, err)
	}
	c.reply(ctx, msg, fmt.Sprintf("Kicked %s. They may rejoin.", target.FormatDisplay()))
}

// lift clears both possible penalty kinds without knowing which was applied:
// restore full permissions and unban-if-banned
func (c *Commands) lift(ctx context.Context, msg *domain.Message, target *domain.Member) {
	if err := c.mod.Lift(ctx, msg.ChatID, target.UserID); err != nil {
		fmt.Printf("[Commands] Lift failed for %d in %d: %v\n", target.UserID, msg.ChatID, err)
	}
	if err := c.mod.Unban(ctx, msg.ChatID, target.UserID); err != nil {
		fmt.Printf("[Commands] Unban failed for %d in %d: %v\n", target.UserID, msg.ChatID, err)
	}
	c.reply(ctx, msg, fmt.Sprintf("Lifted all penalties for %s.", target.FormatDisplay()))
}

func (c *Commands) reply(ctx context.Context, msg *domain.Message, text string) {
	if err := c.mod.SendReply(ctx, msg.ChatID, msg.MessageID, text); err != nil {
		fmt.Printf("[Commands] Reply failed in %d: %v\n", msg.ChatID, err)
	}
}

// splitCommand extracts the command word (without the leading slash or an
// @botname suffix) and the first argument from a message text. Returns an
// empty command for non-command text.
func splitCommand(text string) (cmd, arg string) {
	if !strings.HasPrefix(text, "/") {
		return "", ""
	}
	fields := strings.Fields(text[1:])
	if len(fields) == 0 {
		return "", ""
	}
	cmd = fields[0]
	if at := strings.IndexByte(cmd, '@'); at >= 0 {
		cmd = cmd[:at]
	}
	if len(fields) > 1 {
		arg = fields[1]
	}
	return cmd, arg
}
