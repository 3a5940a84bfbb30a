package store

import (
	"context"
	"strings"
	"time"
)

// AuthUser is a row of the auth_users table.
type AuthUser struct {
	ID           int64
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
	LastLoginAt  *time.Time
	LastLoginIP  string
	CreatedAt    time.Time
}

// CreateAuthUserParams carries the fields for a new UI user.
type CreateAuthUserParams struct {
	Email        string
	PasswordHash string
	Role         string
	IsActive     bool
}

func (s *Store) CreateAuthUser(ctx context.Context, arg CreateAuthUserParams) (int64, error) {
	var id int64
	err := s.pool.QueryRow(ctx,
		`INSERT INTO auth_users (email, password_hash, role, is_active)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		arg.Email, arg.PasswordHash, arg.Role, arg.IsActive,
	).Scan(&id)
	return id, err
}

func (s *Store) GetAuthUser(ctx context.Context, id int64) (AuthUser, error) {
	return s.scanAuthUser(ctx,
		`SELECT id, email, password_hash, role, is_active, last_login_at, COALESCE(last_login_ip, ''), created_at
		 FROM auth_users WHERE id = $1`, id)
}

func (s *Store) GetAuthUserByEmail(ctx context.Context, email string) (AuthUser, error) {
	return s.scanAuthUser(ctx,
		`SELECT id, email, password_hash, role, is_active, last_login_at, COALESCE(last_login_ip, ''), created_at
		 FROM auth_users WHERE email = $1`, strings.ToLower(strings.TrimSpace(email)))
}

func (s *Store) scanAuthUser(ctx context.Context, query string, arg any) (AuthUser, error) {
	var u AuthUser
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.LastLoginAt, &u.LastLoginIP, &u.CreatedAt,
	)
	return u, err
}

func (s *Store) CountAuthUsers(ctx context.Context) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx, `SELECT COUNT(*) FROM auth_users`).Scan(&n)
	return n, err
}

func (s *Store) CountAuthAdmins(ctx context.Context) (int64, error) {
	var n int64
	err := s.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM auth_users WHERE role = 'admin' AND is_active`).Scan(&n)
	return n, err
}

func (s *Store) UpdateAuthUserLoginMeta(ctx context.Context, id int64, at time.Time, ip string) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE auth_users SET last_login_at = $2, last_login_ip = $3 WHERE id = $1`,
		id, at, strings.TrimSpace(ip))
	return err
}
