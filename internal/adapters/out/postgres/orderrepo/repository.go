package orderrepo

import (
	"context"
	"errors"

	"backoffice/internal/core/domain/model/kernel"
	"backoffice/internal/core/domain/model/order"
	"backoffice/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderSnapshotRepository implements OrderSnapshotRepository using GORM.
type GormOrderSnapshotRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(ref kernel.OrderRef, aggregate any)
}

// NewGormOrderSnapshotRepository creates a new GORM order snapshot
// repository.
func NewGormOrderSnapshotRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderSnapshotRepository {
	return &GormOrderSnapshotRepository{
		db:      db,
		tracker: tracker,
	}
}

// UpsertBatch writes a batch of normalized orders, replacing rows with the
// same (id, source) identity.
func (r *GormOrderSnapshotRepository) UpsertBatch(ctx context.Context, orders []*order.Order) error {
	if len(orders) == 0 {
		return nil
	}

	dtos := make([]OrderDTO, 0, len(orders))
	for _, aggregate := range orders {
		if err := aggregate.Validate(); err != nil {
			return err
		}

		dto, err := fromDomain(aggregate)
		if err != nil {
			return err
		}
		dtos = append(dtos, dto)
	}

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}, {Name: "source"}},
		UpdateAll: true,
	}).Create(&dtos).Error
	if err != nil {
		return err
	}

	for _, aggregate := range orders {
		r.tracker.TrackAggregate(aggregate.Ref(), aggregate)
	}
	return nil
}

// Update saves an existing order snapshot to the database.
func (r *GormOrderSnapshotRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, err := fromDomain(aggregate)
	if err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND source = ?", dto.ID, dto.Source).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.Ref(), aggregate)
	return nil
}

// Get retrieves an order snapshot by its composite identity.
func (r *GormOrderSnapshotRepository) Get(ctx context.Context, ref kernel.OrderRef) (*order.Order, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		First(&dto, "id = ? AND source = ?", ref.ID(), string(ref.Source())).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", ref.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAll retrieves every snapshotted order, newest first.
func (r *GormOrderSnapshotRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, convErr := toDomain(dto)
		if convErr != nil {
			return nil, convErr
		}
		orders = append(orders, o)
	}

	return orders, nil
}
