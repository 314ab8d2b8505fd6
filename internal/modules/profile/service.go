package profile

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for a wrong email/password pair.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned for a missing, malformed, or expired session
// token.
var ErrInvalidToken = errors.New("invalid token")

const tokenTTL = 24 * time.Hour

// Service defines the session/profile provider contract.
type Service interface {
	SignUp(ctx context.Context, email, password string, sector Sector, phone string) (*Profile, error)
	SignIn(ctx context.Context, email, password string) (string, error)
	Refresh(ctx context.Context, token string) (string, error)
	SignOut(ctx context.Context, userID uuid.UUID)
	ProfileByUserID(ctx context.Context, userID string) (*Profile, error)
	ParseToken(token string) (uuid.UUID, error)

	// Subscribe registers for session change events. The returned channel
	// is buffered; slow subscribers miss events rather than block sign-in.
	Subscribe() <-chan Event
	Unsubscribe(<-chan Event)
}

type service struct {
	repo     Repository
	jwtKey   []byte
	notifier *notifier
}

// NewService creates the session/profile provider. jwtKey signs session
// tokens with HS256.
func NewService(repo Repository, jwtKey []byte) Service {
	return &service{
		repo:     repo,
		jwtKey:   jwtKey,
		notifier: newNotifier(),
	}
}

// SignUp creates the account and its profile row. An unknown or empty
// sector defaults to retail, matching anonymous viewers.
func (s *service) SignUp(ctx context.Context, email, password string, sector Sector, phone string) (*Profile, error) {
	if !sector.Valid() {
		sector = SectorRetail
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.repo.CreateUser(ctx, u); err != nil {
		return nil, err
	}

	p := &Profile{
		ID:     uuid.New(),
		UserID: u.ID,
		Email:  email,
		Phone:  phone,
		Sector: sector,
	}
	if err := s.repo.CreateProfile(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) SignIn(ctx context.Context, email, password string) (string, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token, err := s.issueToken(u.ID)
	if err != nil {
		return "", err
	}

	s.notifier.broadcast(Event{Kind: EventSignedIn, UserID: u.ID})
	return token, nil
}

// Refresh exchanges a still-valid token for a fresh one and notifies
// subscribers so dependent views refetch the profile.
func (s *service) Refresh(ctx context.Context, token string) (string, error) {
	userID, err := s.ParseToken(token)
	if err != nil {
		return "", err
	}

	fresh, err := s.issueToken(userID)
	if err != nil {
		return "", err
	}

	s.notifier.broadcast(Event{Kind: EventTokenRefreshed, UserID: userID})
	return fresh, nil
}

// SignOut broadcasts the signed-out event. Subscribers clear the profile on
// receipt, so the clearance is synchronous with the notification.
func (s *service) SignOut(ctx context.Context, userID uuid.UUID) {
	s.notifier.broadcast(Event{Kind: EventSignedOut, UserID: userID})
}

func (s *service) ProfileByUserID(ctx context.Context, userID string) (*Profile, error) {
	return s.repo.GetProfileByUserID(ctx, userID)
}

func (s *service) ParseToken(tokenString string) (uuid.UUID, error) {
	claims := &jwt.StandardClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return s.jwtKey, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidToken
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidToken
	}
	return userID, nil
}

func (s *service) Subscribe() <-chan Event     { return s.notifier.subscribe() }
func (s *service) Unsubscribe(ch <-chan Event) { s.notifier.unsubscribe(ch) }

func (s *service) issueToken(userID uuid.UUID) (string, error) {
	expirationTime := time.Now().Add(tokenTTL)
	claims := &jwt.StandardClaims{
		Subject:   userID.String(),
		ExpiresAt: expirationTime.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtKey)
}
