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

// ActivityRepository はアクティビティリポジトリの実装です
// activitiesテーブルを非同期ジョブのキューとしても使用します
type ActivityRepository struct {
	*database.BaseRepository
}

// インターフェース実装の確認
var _ repository.ActivityRepository = (*ActivityRepository)(nil)

// NewActivityRepository は新しいActivityRepositoryを作成します
func NewActivityRepository(txManager *database.TxManager) *ActivityRepository {
	return &ActivityRepository{
		BaseRepository: database.NewBaseRepository(txManager),
	}
}

const activityColumns = `id, job_name, status, submitted_by, owner_id, dataset_id, target_group_id,
	new_container_name, new_container_type, error, created_at, started_at, finished_at`

// Create はアクティビティを作成します
func (r *ActivityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	_, err := r.Querier(ctx).Exec(ctx, `
		INSERT INTO activities (id, job_name, status, submitted_by, owner_id, dataset_id, target_group_id,
			new_container_name, new_container_type, error, created_at, started_at, finished_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		activity.ID,
		activity.JobName,
		activity.Status.String(),
		activity.SubmittedBy,
		activity.OwnerID,
		activity.DatasetID,
		activity.TargetGroupID,
		activity.NewContainerName,
		activity.NewContainerType.String(),
		activity.Error,
		activity.CreatedAt,
		activity.StartedAt,
		activity.FinishedAt,
	)
	return r.HandleError(err)
}

// FindByID はIDでアクティビティを検索します
func (r *ActivityRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Activity, error) {
	row := r.Querier(ctx).QueryRow(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE id = $1`, id)
	return r.scanActivity(row)
}

// Update はアクティビティを更新します
func (r *ActivityRepository) Update(ctx context.Context, activity *entity.Activity) error {
	_, err := r.Querier(ctx).Exec(ctx, `
		UPDATE activities
		SET status = $2, error = $3, started_at = $4, finished_at = $5
		WHERE id = $1`,
		activity.ID,
		activity.Status.String(),
		activity.Error,
		activity.StartedAt,
		activity.FinishedAt,
	)
	return r.HandleError(err)
}

// FindBySubmittedBy は投入者のアクティビティを新しい順に取得します
func (r *ActivityRepository) FindBySubmittedBy(ctx context.Context, userID uuid.UUID, limit int) ([]*entity.Activity, error) {
	rows, err := r.Querier(ctx).Query(ctx,
		`SELECT `+activityColumns+` FROM activities WHERE submitted_by = $1 ORDER BY created_at DESC LIMIT $2`,
		userID, limit)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()
	return r.scanActivities(rows)
}

// CountInProgressBySubmittedBy は投入者の未完了アクティビティ数を返します
func (r *ActivityRepository) CountInProgressBySubmittedBy(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := r.Querier(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM activities WHERE submitted_by = $1 AND status IN ('queued', 'inprogress')`,
		userID).Scan(&count)
	if err != nil {
		return 0, r.HandleError(err)
	}
	return count, nil
}

// ClaimQueued はキュー待ちアクティビティを進行中に遷移させて取得します
// FOR UPDATE SKIP LOCKEDにより複数ワーカー間で二重取得を防ぎます
func (r *ActivityRepository) ClaimQueued(ctx context.Context, limit int) ([]*entity.Activity, error) {
	rows, err := r.Querier(ctx).Query(ctx, `
		UPDATE activities
		SET status = 'inprogress', started_at = NOW()
		WHERE id IN (
			SELECT id FROM activities
			WHERE status = 'queued'
			ORDER BY created_at
			LIMIT $1
			FOR UPDATE SKIP LOCKED
		)
		RETURNING `+activityColumns, limit)
	if err != nil {
		return nil, r.HandleError(err)
	}
	defer rows.Close()
	return r.scanActivities(rows)
}

// scanActivity は行からアクティビティエンティティを復元します
func (r *ActivityRepository) scanActivity(row pgx.Row) (*entity.Activity, error) {
	var (
		id               uuid.UUID
		jobName          string
		statusStr        string
		submittedBy      uuid.UUID
		ownerID          uuid.UUID
		datasetID        uuid.UUID
		targetGroupID    uuid.UUID
		newContainerName string
		newContainerType string
		errorText        string
		createdAt        time.Time
		startedAt        *time.Time
		finishedAt       *time.Time
	)
	err := row.Scan(&id, &jobName, &statusStr, &submittedBy, &ownerID, &datasetID, &targetGroupID,
		&newContainerName, &newContainerType, &errorText, &createdAt, &startedAt, &finishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperror.NewNotFoundError("activity")
		}
		return nil, r.HandleError(err)
	}

	status, err := valueobject.NewActivityStatus(statusStr)
	if err != nil {
		return nil, err
	}

	// 新規コンテナを要求しないアクティビティはコンテナ種別が空
	var containerType valueobject.ContainerType
	if newContainerType != "" {
		containerType, err = valueobject.NewContainerType(newContainerType)
		if err != nil {
			return nil, err
		}
	}

	return entity.ReconstructActivity(
		id, jobName, status, submittedBy, ownerID, datasetID, targetGroupID,
		newContainerName, containerType, errorText, createdAt, startedAt, finishedAt,
	), nil
}

// scanActivities は行セットからアクティビティの一覧を復元します
func (r *ActivityRepository) scanActivities(rows pgx.Rows) ([]*entity.Activity, error) {
	activities := make([]*entity.Activity, 0)
	for rows.Next() {
		activity, err := r.scanActivity(rows)
		if err != nil {
			return nil, err
		}
		activities = append(activities, activity)
	}
	if err := rows.Err(); err != nil {
		return nil, r.HandleError(err)
	}
	return activities, nil
}
