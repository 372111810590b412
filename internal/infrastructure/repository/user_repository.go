package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/shotahirama/labshare/internal/domain/entity"
	"github.com/shotahirama/labshare/internal/domain/repository"
	"github.com/shotahirama/labshare/internal/domain/valueobject"
	"github.com/shotahirama/labshare/internal/infrastructure/database"
	"github.com/shotahirama/labshare/pkg/apperror"
)

// UserRepository はユーザーリポジトリの実装です
type UserRepository struct {
	*database.BaseRepository
}

// インターフェース実装の確認
var _ repository.UserRepository = (*UserRepository)(nil)

// NewUserRepository は新しいUserRepositoryを作成します
func NewUserRepository(txManager *database.TxManager) *UserRepository {
	return &UserRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

const userColumns = `id, username, email, name, password_hash, status, admin, created_at, updated_at`

// Create はユーザーを作成します
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := r.Querier(ctx).Exec(ctx, `
		INSERT INTO users (id, username, email, name, password_hash, status, admin, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		user.ID,
		user.Username,
		user.Email.String(),
		user.Name,
		user.PasswordHash,
		string(user.Status),
		user.Admin,
		user.CreatedAt,
		user.UpdatedAt,
	)
	return r.HandleError(err)
}

// Update はユーザーを更新します
func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	_, err := r.Querier(ctx).Exec(ctx, `
		UPDATE users
		SET username = $2, email = $3, name = $4, password_hash = $5, status = $6, admin = $7, updated_at = $8
		WHERE id = $1`,
		user.ID,
		user.Username,
		user.Email.String(),
		user.Name,
		user.PasswordHash,
		string(user.Status),
		user.Admin,
		user.UpdatedAt,
	)
	return r.HandleError(err)
}

// FindByID はIDでユーザーを検索します
func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	row := r.Querier(ctx).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return r.scanUser(row)
}

// FindByUsername はユーザー名でユーザーを検索します
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	row := r.Querier(ctx).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`, username)
	return r.scanUser(row)
}

// FindByEmail はメールアドレスでユーザーを検索します
func (r *UserRepository) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	row := r.Querier(ctx).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`, email.String())
	return r.scanUser(row)
}

// ExistsByUsername はユーザー名が存在するかを確認します
func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var exists bool
	err := r.Querier(ctx).QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)`, username).Scan(&exists)
	if err != nil {
		return false, r.HandleError(err)
	}
	return exists, nil
}

// Delete はユーザーを削除します
func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.Querier(ctx).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	return r.HandleError(err)
}

// scanUser は行からユーザーエンティティを復元します
func (r *UserRepository) scanUser(row pgx.Row) (*entity.User, error) {
	var (
		id           uuid.UUID
		username     string
		emailStr     string
		name         string
		passwordHash string
		status       string
		admin        bool
		createdAt    time.Time
		updatedAt    time.Time
	)
	err := row.Scan(&id, &username, &emailStr, &name, &passwordHash, &status, &admin, &createdAt, &updatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("user")
		}
		return nil, r.HandleError(err)
	}

	email, err := valueobject.NewEmail(emailStr)
	if err != nil {
		return nil, err
	}

	return entity.ReconstructUser(
		id, username, email, name, passwordHash,
		entity.UserStatus(status), admin, createdAt, updatedAt,
	), nil
}
