package repository

import (
	"context"
	"errors"

	"savium/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var goalColumns = []string{
	"id", "user_id", "name", "category", "target_amount", "saved_amount", "target_date", "status", "image_url", "created_at", "updated_at",
}

// goalSortColumns maps client sort keys to table columns.
var goalSortColumns = map[string]string{
	"name":       "name",
	"amount":     "target_amount",
	"targetDate": "target_date",
}

type GoalRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewGoalRepository(db *pgxpool.Pool, logger *zap.Logger) *GoalRepository {
	return &GoalRepository{
		db:     db,
		logger: logger,
	}
}

func (r *GoalRepository) Create(ctx context.Context, goal *models.Goal) error {
	query := squirrel.Insert("goals").
		Columns(goalColumns...).
		Values(goal.ID, goal.UserID, goal.Name, goal.Category, goal.TargetAmount, goal.SavedAmount, goal.TargetDate, goal.Status, goal.ImageURL, goal.CreatedAt, goal.UpdatedAt).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

// GetByID fetches a goal scoped to its owner. A goal owned by someone else is
// indistinguishable from an absent one.
func (r *GoalRepository) GetByID(ctx context.Context, id, userID uuid.UUID) (*models.Goal, error) {
	query := squirrel.Select(goalColumns...).
		From("goals").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var goal models.Goal
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&goal.ID, &goal.UserID, &goal.Name, &goal.Category, &goal.TargetAmount, &goal.SavedAmount, &goal.TargetDate, &goal.Status, &goal.ImageURL, &goal.CreatedAt, &goal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	return &goal, nil
}

func (r *GoalRepository) List(ctx context.Context, userID uuid.UUID, filter models.GoalFilter) ([]*models.Goal, error) {
	query := squirrel.Select(goalColumns...).
		From("goals").
		Where(squirrel.Eq{"user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	if filter.Search != "" {
		query = query.Where(squirrel.ILike{"name": "%" + filter.Search + "%"})
	}
	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": filter.Category})
	}
	if filter.Status != "" {
		query = query.Where(squirrel.Eq{"status": filter.Status})
	}

	if col, ok := goalSortColumns[filter.Sort]; ok {
		query = query.OrderBy(col + " ASC")
	} else {
		query = query.OrderBy("created_at DESC")
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var goals []*models.Goal
	for rows.Next() {
		var goal models.Goal
		if err := rows.Scan(
			&goal.ID, &goal.UserID, &goal.Name, &goal.Category, &goal.TargetAmount, &goal.SavedAmount, &goal.TargetDate, &goal.Status, &goal.ImageURL, &goal.CreatedAt, &goal.UpdatedAt,
		); err != nil {
			return nil, err
		}
		goals = append(goals, &goal)
	}

	return goals, rows.Err()
}

func (r *GoalRepository) Update(ctx context.Context, goal *models.Goal) error {
	query := squirrel.Update("goals").
		Set("name", goal.Name).
		Set("category", goal.Category).
		Set("target_amount", goal.TargetAmount).
		Set("saved_amount", goal.SavedAmount).
		Set("target_date", goal.TargetDate).
		Set("status", goal.Status).
		Set("image_url", goal.ImageURL).
		Set("updated_at", goal.UpdatedAt).
		Where(squirrel.Eq{"id": goal.ID, "user_id": goal.UserID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *GoalRepository) Delete(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	query := squirrel.Delete("goals").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
