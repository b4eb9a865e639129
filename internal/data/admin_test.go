package data

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/moderato-bot/moderato/internal/biz/repo"
)

// stubModRepo is a ModerationRepo that only answers admin-list queries
type stubModRepo struct {
	admins  []int64
	err     error
	queries int
}

func (s *stubModRepo) SendText(ctx context.Context, chatID int64, text string) error { return nil }
func (s *stubModRepo) SendReply(ctx context.Context, chatID int64, replyTo int, text string) error {
	return nil
}
func (s *stubModRepo) SendChallenge(ctx context.Context, chatID int64, text, button, data string) error {
	return nil
}
func (s *stubModRepo) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	return nil
}
func (s *stubModRepo) Restrict(ctx context.Context, chatID, userID int64, until time.Time) error {
	return nil
}
func (s *stubModRepo) Lift(ctx context.Context, chatID, userID int64) error { return nil }
func (s *stubModRepo) Ban(ctx context.Context, chatID, userID int64, until time.Time) error {
	return nil
}
func (s *stubModRepo) Unban(ctx context.Context, chatID, userID int64) error { return nil }
func (s *stubModRepo) MemberStatus(ctx context.Context, chat string, userID int64) (repo.MemberStatus, error) {
	return repo.StatusMember, nil
}
func (s *stubModRepo) AnswerCallback(ctx context.Context, callbackID, text string, alert bool) error {
	return nil
}
func (s *stubModRepo) ChatAdmins(ctx context.Context, chatID int64) ([]int64, error) {
	s.queries++
	if s.err != nil {
		return nil, s.err
	}
	return s.admins, nil
}

func TestLiveAdminOracleQueriesEveryTime(t *testing.T) {
	mod := &stubModRepo{admins: []int64{1, 2}}
	oracle := NewLiveAdminOracle(mod)

	for i := 0; i < 3; i++ {
		ok, err := oracle.IsAdmin(context.Background(), 100, 1)
		if err != nil || !ok {
			t.Fatalf("Expected admin, got ok=%v err=%v", ok, err)
		}
	}
	if mod.queries != 3 {
		t.Errorf("Admin list must never be cached, queries = %d", mod.queries)
	}

	ok, _ := oracle.IsAdmin(context.Background(), 100, 3)
	if ok {
		t.Error("User 3 is not an admin")
	}
}

func TestLiveAdminOraclePropagatesErrors(t *testing.T) {
	oracle := NewLiveAdminOracle(&stubModRepo{err: errors.New("api down")})

	if _, err := oracle.IsAdmin(context.Background(), 100, 1); err == nil {
		t.Error("Expected the query error to propagate")
	}
}

func TestStaticAdminOracle(t *testing.T) {
	oracle := NewStaticAdminOracle([]int64{1, 2})

	for userID, want := range map[int64]bool{1: true, 2: true, 3: false} {
		ok, err := oracle.IsAdmin(context.Background(), 100, userID)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if ok != want {
			t.Errorf("IsAdmin(%d) = %v, want %v", userID, ok, want)
		}
	}
}
