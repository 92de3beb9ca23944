package repository

import (
	"context"
	"errors"

	"tutegram/internal/models"

	"gorm.io/gorm"
)

// CounterpartCount is one row of the mutual-connection aggregation: how many
// records with the given status tie the caller to this counterpart.
type CounterpartCount struct {
	CounterpartID uint  `gorm:"column:counterpart_id"`
	Count         int64 `gorm:"column:cnt"`
}

// counterpartCountsSQL groups the caller's connection records by the user on
// the other side. Exported through ConnectionRepository.CounterpartCounts.
const counterpartCountsSQL = `SELECT CASE WHEN sender_id = ? THEN receiver_id ELSE sender_id END AS counterpart_id, COUNT(*) AS cnt FROM connections WHERE (sender_id = ? OR receiver_id = ?) AND status = ? GROUP BY counterpart_id ORDER BY cnt DESC, counterpart_id`

// ConnectionRepository defines persistence operations for connection records.
type ConnectionRepository interface {
	Create(ctx context.Context, conn *models.Connection) error
	GetByID(ctx context.Context, id uint) (*models.Connection, error)
	GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Connection, error)
	GetPendingForReceiver(ctx context.Context, userID uint) ([]models.Connection, error)
	GetAcceptedForUser(ctx context.Context, userID uint) ([]models.Connection, error)
	GetAllForUser(ctx context.Context, userID uint) ([]models.Connection, error)
	FindForReview(ctx context.Context, id, receiverID uint) (*models.Connection, error)
	UpdateStatus(ctx context.Context, id uint, status models.ConnectionStatus) error
	DeleteAllForUser(ctx context.Context, userID uint) error
	CounterpartCounts(ctx context.Context, userID uint, status models.ConnectionStatus) ([]CounterpartCount, error)
}

type connectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository returns a new ConnectionRepository implementation.
func NewConnectionRepository(db *gorm.DB) ConnectionRepository {
	return &connectionRepository{db: db}
}

func (r *connectionRepository) Create(ctx context.Context, conn *models.Connection) error {
	if err := r.db.WithContext(ctx).Create(conn).Error; err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) {
			return appErr
		}
		if IsUniqueConstraintError(err) {
			// Lost the race against a concurrent request for the same pair.
			return models.NewValidationError("Connection already exists")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) GetByID(ctx context.Context, id uint) (*models.Connection, error) {
	var conn models.Connection
	if err := r.db.WithContext(ctx).Preload("Sender").Preload("Receiver").First(&conn, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Connection not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

func (r *connectionRepository) GetBetweenUsers(ctx context.Context, userID1, userID2 uint) (*models.Connection, error) {
	var conn models.Connection
	if err := r.db.WithContext(ctx).
		Where("pair_key = ?", models.PairKeyFor(userID1, userID2)).
		First(&conn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // no record between this pair
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

func (r *connectionRepository) GetPendingForReceiver(ctx context.Context, userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	if err := r.db.WithContext(ctx).
		Where("receiver_id = ? AND status = ?", userID, models.ConnectionStatusInterested).
		Preload("Sender").
		Order("created_at DESC").
		Find(&conns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

func (r *connectionRepository) GetAcceptedForUser(ctx context.Context, userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	if err := r.db.WithContext(ctx).
		Where("(sender_id = ? OR receiver_id = ?) AND status = ?",
			userID, userID, models.ConnectionStatusAccepted).
		Preload("Sender").
		Preload("Receiver").
		Find(&conns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

func (r *connectionRepository) GetAllForUser(ctx context.Context, userID uint) ([]models.Connection, error) {
	var conns []models.Connection
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Find(&conns).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return conns, nil
}

// FindForReview loads the record only when it is reviewable by this receiver:
// same id, receiver matches, status still interested. Anything else is a 404,
// indistinguishable from a missing record on purpose.
func (r *connectionRepository) FindForReview(ctx context.Context, id, receiverID uint) (*models.Connection, error) {
	var conn models.Connection
	if err := r.db.WithContext(ctx).
		Where("id = ? AND receiver_id = ? AND status = ?",
			id, receiverID, models.ConnectionStatusInterested).
		First(&conn).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Connection not found")
		}
		return nil, models.NewInternalError(err)
	}
	return &conn, nil
}

func (r *connectionRepository) UpdateStatus(ctx context.Context, id uint, status models.ConnectionStatus) error {
	if err := r.db.WithContext(ctx).
		Model(&models.Connection{}).
		Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) DeleteAllForUser(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).
		Where("sender_id = ? OR receiver_id = ?", userID, userID).
		Delete(&models.Connection{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *connectionRepository) CounterpartCounts(ctx context.Context, userID uint, status models.ConnectionStatus) ([]CounterpartCount, error) {
	var rows []CounterpartCount
	if err := r.db.WithContext(ctx).
		Raw(counterpartCountsSQL, userID, userID, userID, status).
		Scan(&rows).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return rows, nil
}
