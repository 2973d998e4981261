package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"mychecklist/internal/core/domain"
	"mychecklist/internal/core/ports"
)

const (
	insertUserQuery = `
INSERT INTO users (email, password_hash, nickname) VALUES (?, ?, ?);
`
	findUserByEmailQuery = `
SELECT id, email, password_hash, nickname, created_at FROM users WHERE email = ?;
`
	findUserByIDQuery = `
SELECT id, email, password_hash, nickname, created_at FROM users WHERE id = ?;
`

	mysqlErrDuplicateEntry = 1062
)

type UserRepository struct {
	db *sqlx.DB
}

type userRow struct {
	ID           uint64    `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Nickname     string    `db:"nickname"`
	CreatedAt    time.Time `db:"created_at"`
}

var _ ports.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, email, passwordHash, nickname string) (uint64, error) {
	result, err := r.db.ExecContext(ctx, insertUserQuery, email, passwordHash, nickname)
	if err != nil {
		var mysqlErr *mysql.MySQLError
		if errors.As(err, &mysqlErr) && mysqlErr.Number == mysqlErrDuplicateEntry {
			return 0, domain.ErrDuplicateEmail
		}
		return 0, err
	}

	userID, err := result.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(userID), nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, findUserByEmailQuery, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func (r *UserRepository) FindByID(ctx context.Context, userID uint64) (domain.User, error) {
	var row userRow
	if err := r.db.GetContext(ctx, &row, findUserByIDQuery, userID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, err
	}
	return mapUserRowToDomainUser(row), nil
}

func mapUserRowToDomainUser(row userRow) domain.User {
	return domain.User{
		ID:           row.ID,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Nickname:     row.Nickname,
		CreatedAt:    row.CreatedAt,
	}
}
