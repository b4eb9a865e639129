package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/moderato-bot/moderato/internal/biz/repo"
)

// Mock implementations shared by the usecase tests

type modCall struct {
	name      string
	chatID    int64
	userID    int64
	messageID int
	until     time.Time
	text      string
	alert     bool
	data      string
}

type mockModRepo struct {
	calls    []modCall
	statuses map[string]repo.MemberStatus // chat identifier -> status
	admins   []int64
	fail     map[string]bool // method name -> force failure
}

func newMockModRepo() *mockModRepo {
	return &mockModRepo{
		statuses: make(map[string]repo.MemberStatus),
		fail:     make(map[string]bool),
	}
}

func (m *mockModRepo) record(c modCall) error {
	m.calls = append(m.calls, c)
	if m.fail[c.name] {
		return errors.New("rpc failed")
	}
	return nil
}

func (m *mockModRepo) SendText(ctx context.Context, chatID int64, text string) error {
	return m.record(modCall{name: "SendText", chatID: chatID, text: text})
}

func (m *mockModRepo) SendReply(ctx context.Context, chatID int64, replyTo int, text string) error {
	return m.record(modCall{name: "SendReply", chatID: chatID, messageID: replyTo, text: text})
}

func (m *mockModRepo) SendChallenge(ctx context.Context, chatID int64, text, button, data string) error {
	return m.record(modCall{name: "SendChallenge", chatID: chatID, text: text, data: data})
}

func (m *mockModRepo) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	return m.record(modCall{name: "DeleteMessage", chatID: chatID, messageID: messageID})
}

func (m *mockModRepo) Restrict(ctx context.Context, chatID, userID int64, until time.Time) error {
	return m.record(modCall{name: "Restrict", chatID: chatID, userID: userID, until: until})
}

func (m *mockModRepo) Lift(ctx context.Context, chatID, userID int64) error {
	return m.record(modCall{name: "Lift", chatID: chatID, userID: userID})
}

func (m *mockModRepo) Ban(ctx context.Context, chatID, userID int64, until time.Time) error {
	return m.record(modCall{name: "Ban", chatID: chatID, userID: userID, until: until})
}

func (m *mockModRepo) Unban(ctx context.Context, chatID, userID int64) error {
	return m.record(modCall{name: "Unban", chatID: chatID, userID: userID})
}

func (m *mockModRepo) MemberStatus(ctx context.Context, chat string, userID int64) (repo.MemberStatus, error) {
	m.calls = append(m.calls, modCall{name: "MemberStatus", userID: userID, text: chat})
	if m.fail["MemberStatus"] {
		return "", errors.New("rpc failed")
	}
	status, ok := m.statuses[chat]
	if !ok {
		return repo.StatusLeft, nil
	}
	return status, nil
}

func (m *mockModRepo) ChatAdmins(ctx context.Context, chatID int64) ([]int64, error) {
	m.calls = append(m.calls, modCall{name: "ChatAdmins", chatID: chatID})
	if m.fail["ChatAdmins"] {
		return nil, errors.New("rpc failed")
	}
	return m.admins, nil
}

func (m *mockModRepo) AnswerCallback(ctx context.Context, callbackID, text string, alert bool) error {
	return m.record(modCall{name: "AnswerCallback", text: text, alert: alert})
}

// callNames lists the recorded call names in order
func (m *mockModRepo) callNames() []string {
	names := make([]string, len(m.calls))
	for i, c := range m.calls {
		names[i] = c.name
	}
	return names
}

// find returns the first recorded call with the given name
func (m *mockModRepo) find(name string) (modCall, bool) {
	for _, c := range m.calls {
		if c.name == name {
			return c, true
		}
	}
	return modCall{}, false
}

func (m *mockModRepo) count(name string) int {
	n := 0
	for _, c := range m.calls {
		if c.name == name {
			n++
		}
	}
	return n
}

type mockAdminOracle struct {
	admins map[int64]bool
	err    error
}

func (o *mockAdminOracle) IsAdmin(ctx context.Context, chatID, userID int64) (bool, error) {
	if o.err != nil {
		return false, o.err
	}
	return o.admins[userID], nil
}

type mockKeywordSource struct {
	text  string
	err   error
	calls int
}

func (s *mockKeywordSource) Fetch(ctx context.Context) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.text, nil
}

type mockFilterRepo struct {
	spam bool
	err  error
}

func (f *mockFilterRepo) IsSpam(ctx context.Context, text string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.spam, nil
}
