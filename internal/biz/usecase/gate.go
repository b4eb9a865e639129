package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/moderato-bot/moderato/internal/biz/domain"
	"github.com/moderato-bot/moderato/internal/biz/repo"
)

// Gate is the verification state machine for newly joined members. A member
// enters restricted on join and becomes verified when they click their own
// challenge button (and, if a required channel is configured, follow it).
// There are no other states and no server-side record in between: the button
// payload is the whole session.
type Gate struct {
	mod             repo.ModerationRepo
	requiredChannel string // @username or numeric id; empty = no precondition
	verifyWindowMin int    // shown in the challenge text; never enforced
}

// NewGate creates a new membership gate
func NewGate(mod repo.ModerationRepo, requiredChannel string, verifyWindowMin int) *Gate {
	if verifyWindowMin <= 0 {
		verifyWindowMin = 5
	}
	return &Gate{
		mod:             mod,
		requiredChannel: requiredChannel,
		verifyWindowMin: verifyWindowMin,
	}
}

// HandleJoin restricts each newly added non-bot member and posts their
// challenge. Bot accounts are skipped entirely. Failures are logged per call;
// the challenge is still attempted after a failed restrict so a member is
// never left without a button.
func (g *Gate) HandleJoin(ctx context.Context, chatID int64, members []domain.Member) {
	for _, m := range members {
		if m.IsBot {
			continue
		}

		if err := g.mod.Restrict(ctx, chatID, m.UserID, time.Time{}); err != nil {
			fmt.Printf("[Gate] Restrict failed for %d in %d: %v\n", m.UserID, chatID, err)
		}

		token := domain.VerifyToken{ChatID: chatID, UserID: m.UserID}
		text := fmt.Sprintf(
			"Welcome, %s! Tap the button below within %d minutes to prove you are human and unlock chatting.",
			m.FormatDisplay(), g.verifyWindowMin,
		)
		if err := g.mod.SendChallenge(ctx, chatID, text, "I'm human", token.Encode()); err != nil {
			fmt.Printf("[Gate] Challenge failed for %d in %d: %v\n", m.UserID, chatID, err)
			continue
		}

		fmt.Printf("[Gate] Restricted %d in %d, challenge posted\n", m.UserID, chatID)
	}
}

// HandleCallback resolves a challenge button click. Only the member named in
// the token may pass; anyone else gets a transient notice and nothing
// changes. The advertised time window is not checked here; a late click
// still verifies.
func (g *Gate) HandleCallback(ctx context.Context, cb domain.Callback) {
	token, err := domain.DecodeVerifyToken(cb.Data)
	if err != nil {
		// Not a payload this bot issued; ack so the client stops spinning
		if err := g.mod.AnswerCallback(ctx, cb.ID, "", false); err != nil {
			fmt.Printf("[Gate] Ack failed for callback %s: %v\n", cb.ID, err)
		}
		return
	}

	if cb.Actor.UserID != token.UserID {
		if err := g.mod.AnswerCallback(ctx, cb.ID, "Only the member named in this challenge can use this button.", false); err != nil {
			fmt.Printf("[Gate] Ack failed for callback %s: %v\n", cb.ID, err)
		}
		return
	}

	if g.requiredChannel != "" {
		status, err := g.mod.MemberStatus(ctx, g.requiredChannel, cb.Actor.UserID)
		if err != nil {
			fmt.Printf("[Gate] Channel membership query failed for %d: %v\n", cb.Actor.UserID, err)
			_ = g.mod.AnswerCallback(ctx, cb.ID, "Could not check channel membership, please try again.", false)
			return
		}
		if !followsChannel(status) {
			msg := fmt.Sprintf("Please join %s first, then tap the button again.", g.requiredChannel)
			if err := g.mod.AnswerCallback(ctx, cb.ID, msg, true); err != nil {
				fmt.Printf("[Gate] Ack failed for callback %s: %v\n", cb.ID, err)
			}
			return
		}
	}

	if err := g.mod.Lift(ctx, token.ChatID, token.UserID); err != nil {
		fmt.Printf("[Gate] Lift failed for %d in %d: %v\n", token.UserID, token.ChatID, err)
		_ = g.mod.AnswerCallback(ctx, cb.ID, "Verification failed, please try again.", false)
		return
	}

	if err := g.mod.AnswerCallback(ctx, cb.ID, "Verified, welcome aboard!", false); err != nil {
		fmt.Printf("[Gate] Ack failed for callback %s: %v\n", cb.ID, err)
	}
	announce := fmt.Sprintf("%s is verified and can chat now.", cb.Actor.FormatDisplay())
	if err := g.mod.SendText(ctx, token.ChatID, announce); err != nil {
		fmt.Printf("[Gate] Announcement failed in %d: %v\n", token.ChatID, err)
	}

	fmt.Printf("[Gate] Verified %d in %d\n", token.UserID, token.ChatID)
}

// followsChannel reports whether a channel membership status satisfies the
// required-channel precondition
func followsChannel(status repo.MemberStatus) bool {
	switch status {
	case repo.StatusMember, repo.StatusAdministrator, repo.StatusCreator:
		return true
	}
	return false
}
