package db

import (
	"context"
	"errors"
	"fmt"

	"centavo-server/src/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

func GetUserByID(id int64, pool *pgxpool.Pool) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, username, email, name, password_hash, super_admin, locked, last_login, created_at
		FROM users
		WHERE id = $1
	`
	err := pool.QueryRow(context.Background(), query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.SuperAdmin,
		&user.Locked,
		&user.LastLogin,
		&user.CreatedAt,
	)

	if err != nil {
		return nil, errors.New("user not found")
	}
	return &user, nil
}

func GetUserByUsername(username string, pool *pgxpool.Pool) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, username, email, name, password_hash, super_admin, locked, last_login, created_at
		FROM users
		WHERE username = $1
	`
	err := pool.QueryRow(context.Background(), query, username).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.SuperAdmin,
		&user.Locked,
		&user.LastLogin,
		&user.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}

func GetUserByEmail(email string, pool *pgxpool.Pool) (*models.User, error) {
	var user models.User
	query := `
		SELECT id, username, email, name, password_hash, super_admin, locked, last_login, created_at
		FROM users
		WHERE email = $1
	`
	err := pool.QueryRow(context.Background(), query, email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.SuperAdmin,
		&user.Locked,
		&user.LastLogin,
		&user.CreatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}

func CreateUser(req models.RegisterRequest, hashedPassword string, pool *pgxpool.Pool) (*models.RegisterResponse, error) {
	query := `
		INSERT INTO users (username, email, name, password_hash)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var userID int64

	err := pool.QueryRow(
		context.Background(),
		query,
		req.Username,
		req.Email,
		req.Name,
		[]byte(hashedPassword),
	).Scan(&userID)

	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	resp := models.RegisterResponse{
		ID:       userID,
		Email:    req.Email,
		Username: req.Username,
		Name:     req.Name,
	}

	return &resp, nil
}

func UpdateUser(pool *pgxpool.Pool, userID int64, email, name string) error {
	cmd, err := pool.Exec(
		context.Background(),
		`UPDATE users SET email = $1, name = $2 WHERE id = $3`,
		email,
		name,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("user not found")
	}
	return nil
}

func UpdateUserPassword(pool *pgxpool.Pool, userID int64, hashedPassword []byte) error {
	cmd, err := pool.Exec(
		context.Background(),
		`UPDATE users SET password_hash = $1 WHERE id = $2`,
		hashedPassword,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return errors.New("user not found")
	}
	return nil
}

func UpdateUserLastLogin(pool *pgxpool.Pool, userID int64) error {
	_, err := pool.Exec(context.Background(), `UPDATE users SET last_login = NOW() WHERE id = $1`, userID)
	if err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}
