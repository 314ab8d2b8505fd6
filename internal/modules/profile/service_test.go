package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// Mock profile repository
type mockRepository struct {
	users    map[string]*User // by email
	profiles map[uuid.UUID]*Profile

	createUserErr error
}

func newMockRepository() *mockRepository {
	return &mockRepository{
		users:    make(map[string]*User),
		profiles: make(map[uuid.UUID]*Profile),
	}
}

func (m *mockRepository) CreateUser(ctx context.Context, u *User) error {
	if m.createUserErr != nil {
		return m.createUserErr
	}
	if _, ok := m.users[u.Email]; ok {
		return errors.New("email already registered")
	}
	m.users[u.Email] = u
	return nil
}

func (m *mockRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u, ok := m.users[email]
	if !ok {
		return nil, errors.New("not found")
	}
	return u, nil
}

func (m *mockRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	for _, u := range m.users {
		if u.ID.String() == id {
			return u, nil
		}
	}
	return nil, errors.New("not found")
}

func (m *mockRepository) CreateProfile(ctx context.Context, p *Profile) error {
	m.profiles[p.UserID] = p
	return nil
}

func (m *mockRepository) GetProfileByUserID(ctx context.Context, userID string) (*Profile, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}
	p, ok := m.profiles[id]
	if !ok {
		return nil, errors.New("not found")
	}
	return p, nil
}

var testKey = []byte("test-signing-key")

func TestSignUpDefaultsToRetail(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, testKey)

	p, err := svc.SignUp(context.Background(), "ana@example.com", "s3cret", "", "")
	require.NoError(t, err)
	require.Equal(t, SectorRetail, p.Sector)
	require.False(t, p.IsAdmin)

	p, err = svc.SignUp(context.Background(), "loja@example.com", "s3cret", SectorReseller, "558599990000")
	require.NoError(t, err)
	require.Equal(t, SectorReseller, p.Sector)
	require.Equal(t, "558599990000", p.Phone)
}

func TestSignUpHashesPassword(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, testKey)

	_, err := svc.SignUp(context.Background(), "ana@example.com", "s3cret", SectorRetail, "")
	require.NoError(t, err)

	u := repo.users["ana@example.com"]
	require.NotEqual(t, "s3cret", u.PasswordHash)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
}

func TestSignInIssuesParseableToken(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, testKey)

	p, err := svc.SignUp(context.Background(), "ana@example.com", "s3cret", SectorRetail, "")
	require.NoError(t, err)

	token, err := svc.SignIn(context.Background(), "ana@example.com", "s3cret")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := svc.ParseToken(token)
	require.NoError(t, err)
	require.Equal(t, p.UserID, userID)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, testKey)

	_, err := svc.SignUp(context.Background(), "ana@example.com", "s3cret", SectorRetail, "")
	require.NoError(t, err)

	_, err = svc.SignIn(context.Background(), "ana@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.SignIn(context.Background(), "nobody@example.com", "s3cret")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	svc := NewService(newMockRepository(), testKey)

	_, err := svc.ParseToken("not-a-token")
	require.ErrorIs(t, err, ErrInvalidToken)

	// Token signed with a different key.
	other := NewService(newMockRepository(), []byte("other-key"))
	repo := newMockRepository()
	signer := NewService(repo, testKey)
	_, err = signer.SignUp(context.Background(), "ana@example.com", "s3cret", SectorRetail, "")
	require.NoError(t, err)
	token, err := signer.SignIn(context.Background(), "ana@example.com", "s3cret")
	require.NoError(t, err)

	_, err = other.ParseToken(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestRefreshNotifiesSubscribers(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, testKey)

	_, err := svc.SignUp(context.Background(), "ana@example.com", "s3cret", SectorRetail, "")
	require.NoError(t, err)
	token, err := svc.SignIn(context.Background(), "ana@example.com", "s3cret")
	require.NoError(t, err)

	events := svc.Subscribe()
	defer svc.Unsubscribe(events)

	fresh, err := svc.Refresh(context.Background(), token)
	require.NoError(t, err)
	require.NotEmpty(t, fresh)

	e := waitEvent(t, events)
	require.Equal(t, EventTokenRefreshed, e.Kind)
}

func TestSessionEventOrdering(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, testKey)

	p, err := svc.SignUp(context.Background(), "ana@example.com", "s3cret", SectorRetail, "")
	require.NoError(t, err)

	events := svc.Subscribe()
	defer svc.Unsubscribe(events)

	_, err = svc.SignIn(context.Background(), "ana@example.com", "s3cret")
	require.NoError(t, err)

	e := waitEvent(t, events)
	require.Equal(t, EventSignedIn, e.Kind)
	require.Equal(t, p.UserID, e.UserID)

	// SignOut returns only after the event is queued for every
	// subscriber: the notification is synchronous with the call.
	svc.SignOut(context.Background(), p.UserID)
	e = waitEvent(t, events)
	require.Equal(t, EventSignedOut, e.Kind)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	svc := NewService(newMockRepository(), testKey)

	events := svc.Subscribe()
	svc.Unsubscribe(events)

	_, open := <-events
	require.False(t, open)
}

func TestSlowSubscriberDoesNotBlockBroadcast(t *testing.T) {
	repo := newMockRepository()
	svc := NewService(repo, testKey)

	p, err := svc.SignUp(context.Background(), "ana@example.com", "s3cret", SectorRetail, "")
	require.NoError(t, err)

	events := svc.Subscribe()
	defer svc.Unsubscribe(events)

	// Overflow the subscriber buffer; broadcasts must keep returning.
	done := make(chan struct{})
	go func() {
		for i := 0; i < subscriberBuffer*3; i++ {
			svc.SignOut(context.Background(), p.UserID)
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("broadcast blocked on a slow subscriber")
	}
}

func waitEvent(t *testing.T, events <-chan Event) Event {
	t.Helper()
	select {
	case e := <-events:
		return e
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for session event")
		return Event{}
	}
}
