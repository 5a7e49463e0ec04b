package userservice

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"assetflow/apperror"
	"assetflow/database/dbhelper"
	"assetflow/models"
	"assetflow/providers"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type UserRepository interface {
	GetUserByID(ctx context.Context, id int64) (models.Identity, error)
	GetUserByUsername(ctx context.Context, username string) (models.Identity, error)
	IsUserTaken(ctx context.Context, tx *sqlx.Tx, username, email string) (bool, bool, error)
	InsertUser(ctx context.Context, tx *sqlx.Tx, user models.Identity) (models.Identity, error)
	UpdateUser(ctx context.Context, id int64, req UpdateUserReq) (models.Identity, error)
	UpdatePassword(ctx context.Context, id int64, passwordHash string, changedAt time.Time) error
	ListUsers(ctx context.Context, filter UserFilter) ([]models.Identity, error)
	DeleteUserByID(ctx context.Context, id int64) error
}

type PostgresUserRepository struct {
	DB     *sqlx.DB
	Logger providers.ZapLoggerProvider
}

func NewUserRepository(db *sqlx.DB, logger providers.ZapLoggerProvider) UserRepository {
	return &PostgresUserRepository{DB: db, Logger: logger}
}

const userColumns = `id, username, email, password_hash, role, department, is_active, password_changed_at, created_at, updated_at`

func duplicateUser(err error) error {
	switch dbhelper.ViolatedConstraint(err) {
	case "users_username_key":
		return apperror.NewConflict(apperror.Duplicate, "Username already exists")
	case "users_email_key":
		return apperror.NewConflict(apperror.Duplicate, "Email already exists")
	}
	return apperror.NewConflict(apperror.Duplicate, "username or email already exists")
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id int64) (models.Identity, error) {
	var user models.Identity
	err := r.DB.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Identity{}, apperror.NewNotFound("user")
		}
		return models.Identity{}, errors.Wrap(err, "failed to fetch user by id")
	}
	return user, nil
}

func (r *PostgresUserRepository) GetUserByUsername(ctx context.Context, username string) (models.Identity, error) {
	var user models.Identity
	err := r.DB.GetContext(ctx, &user, `SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1)`, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Identity{}, apperror.NewNotFound("user")
		}
		return models.Identity{}, errors.Wrap(err, "failed to fetch user by username")
	}
	return user, nil
}

func (r *PostgresUserRepository) IsUserTaken(ctx context.Context, tx *sqlx.Tx, username, email string) (bool, bool, error) {
	var taken struct {
		Username bool `db:"username_taken"`
		Email    bool `db:"email_taken"`
	}
	err := tx.GetContext(ctx, &taken, `
		SELECT
			EXISTS (SELECT 1 FROM users WHERE lower(username) = lower($1)) AS username_taken,
			EXISTS (SELECT 1 FROM users WHERE lower(email) = lower($2)) AS email_taken
	`, username, email)
	if err != nil {
		return false, false, errors.Wrap(err, "failed to check existing users")
	}
	return taken.Username, taken.Email, nil
}

func (r *PostgresUserRepository) InsertUser(ctx context.Context, tx *sqlx.Tx, user models.Identity) (models.Identity, error) {
	var created models.Identity
	err := tx.GetContext(ctx, &created, `
		INSERT INTO users (username, email, password_hash, role, department, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+userColumns,
		user.Username, user.Email, user.PasswordHash, user.Role, user.Department, user.IsActive)
	if err != nil {
		if dbhelper.IsUniqueViolation(err) {
			return models.Identity{}, duplicateUser(err)
		}
		return models.Identity{}, errors.Wrap(err, "failed to insert user")
	}
	return created, nil
}

func (r *PostgresUserRepository) UpdateUser(ctx context.Context, id int64, req UpdateUserReq) (models.Identity, error) {
	setClauses := []string{}
	args := []interface{}{}
	argIdx := 1

	if req.Role != nil {
		setClauses = append(setClauses, fmt.Sprintf("role = $%d", argIdx))
		args = append(args, *req.Role)
		argIdx++
	}
	if req.Department != nil {
		setClauses = append(setClauses, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *req.Department)
		argIdx++
	}
	if req.Email != nil {
		setClauses = append(setClauses, fmt.Sprintf("email = $%d", argIdx))
		args = append(args, *req.Email)
		argIdx++
	}
	if req.IsActive != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_active = $%d", argIdx))
		args = append(args, *req.IsActive)
		argIdx++
	}
	if len(setClauses) == 0 {
		return r.GetUserByID(ctx, id)
	}
	r.Logger.GetLogger().Debug("updating user", zap.Int64("user_id", id), zap.Int("fields", len(setClauses)))
	setClauses = append(setClauses, "updated_at = now()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`, strings.Join(setClauses, ", "), argIdx, userColumns)

	var user models.Identity
	if err := r.DB.GetContext(ctx, &user, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Identity{}, apperror.NewNotFound("user")
		}
		if dbhelper.IsUniqueViolation(err) {
			return models.Identity{}, duplicateUser(err)
		}
		return models.Identity{}, errors.Wrap(err, "failed to update user")
	}
	return user, nil
}

func (r *PostgresUserRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string, changedAt time.Time) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE users SET password_hash = $1, password_changed_at = $2, updated_at = now() WHERE id = $3
	`, passwordHash, changedAt, id)
	if err != nil {
		return errors.Wrap(err, "failed to update password")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NewNotFound("user")
	}
	return nil
}

func (r *PostgresUserRepository) ListUsers(ctx context.Context, filter UserFilter) ([]models.Identity, error) {
	var isActive interface{}
	if filter.IsActive != nil {
		isActive = *filter.IsActive
	}
	users := []models.Identity{}
	err := r.DB.SelectContext(ctx, &users, `
		SELECT `+userColumns+` FROM users
		WHERE ($1 = '' OR role = $1)
		  AND ($2 = '' OR department = $2)
		  AND ($3::boolean IS NULL OR is_active = $3)
		  AND ($4 = '' OR username ILIKE '%' || $4 || '%' OR email ILIKE '%' || $4 || '%')
		ORDER BY username
		LIMIT $5 OFFSET $6
	`, filter.Role, filter.Department, isActive, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}
	return users, nil
}

func (r *PostgresUserRepository) DeleteUserByID(ctx context.Context, id int64) (err error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		} else {
			err = tx.Commit()
		}
	}()

	var count int
	err = tx.GetContext(ctx, &count, `SELECT count(*) FROM assets WHERE assigned_to_user_id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to check asset assignment: %w", err)
	}
	if count > 0 {
		return apperror.NewConflict(apperror.InUse, "cannot delete user, assets are still assigned")
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		if dbhelper.IsForeignKeyViolation(err) {
			return apperror.NewConflict(apperror.InUse, "cannot delete user, maintenance tickets still reference them")
		}
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NewNotFound("user")
	}
	return nil
}
