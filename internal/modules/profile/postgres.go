package profile

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepository struct {
	db *sql.DB
}

// NewPostgresRepository creates a new PostgreSQL profile repository.
func NewPostgresRepository(db *sql.DB) Repository {
	return &postgresRepository{db: db}
}

func (r *postgresRepository) CreateUser(ctx context.Context, u *User) error {
	query := `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Email, u.PasswordHash)
	return err
}

func (r *postgresRepository) GetUserByEmail(ctx context.Context, email string) (*User, error) {
	u := &User{}
	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1
	`
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *postgresRepository) GetUserByID(ctx context.Context, id string) (*User, error) {
	parsedID, err := uuid.Parse(id)
	if err != nil {
		return nil, err
	}

	u := &User{}
	query := `
		SELECT id, email, password_hash, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	err = r.db.QueryRowContext(ctx, query, parsedID).Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *postgresRepository) CreateProfile(ctx context.Context, p *Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, email, phone, setor, is_admin)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.ExecContext(ctx, query, p.ID, p.UserID, p.Email, p.Phone, p.Sector, p.IsAdmin)
	return err
}

func (r *postgresRepository) GetProfileByUserID(ctx context.Context, userID string) (*Profile, error) {
	parsedID, err := uuid.Parse(userID)
	if err != nil {
		return nil, err
	}

	p := &Profile{}
	query := `
		SELECT id, user_id, email, phone, setor, is_admin, created_at, updated_at
		FROM profiles
		WHERE user_id = $1
	`
	err = r.db.QueryRowContext(ctx, query, parsedID).Scan(
		&p.ID,
		&p.UserID,
		&p.Email,
		&p.Phone,
		&p.Sector,
		&p.IsAdmin,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}
