package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/textbook-rsa/internal/domain/crypto"
	"github.com/MGTheTrain/textbook-rsa/internal/domain/keys"
	"github.com/MGTheTrain/textbook-rsa/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/textbook-rsa/internal/pkg/logger"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type gormKeyPairRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeyPairRepository creates a new GORM-based KeyPairRepository implementation
func NewGormKeyPairRepository(db *gorm.DB, logger logger.Logger) (keys.KeyPairRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	return &gormKeyPairRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKeyPairRepository) Create(ctx context.Context, keyPair *crypto.KeyPair) error {
	if keyPair == nil {
		return fmt.Errorf("validation error: %w", crypto.ErrNilKey)
	}

	model := &models.KeyPairModel{}
	model.FromDomain(keyPair, time.Now().UTC())

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to store key pair: %w", err)
	}

	r.logger.Info("Stored key pair with id ", keyPair.ID())
	return nil
}

func (r *gormKeyPairRepository) List(ctx context.Context, query *keys.KeyPairQuery) ([]*crypto.KeyPair, error) {
	if query == nil {
		query = &keys.KeyPairQuery{}
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KeyPairModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KeyPairModel{})

	if query.MinModulusBits > 0 {
		dbQuery = dbQuery.Where("modulus_bits >= ?", query.MinModulusBits)
	}

	dbQuery = dbQuery.Order("date_time_created asc").Order("id asc")

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch key pairs: %w", err)
	}

	domainList := make([]*crypto.KeyPair, len(modelList))
	for i, model := range modelList {
		keyPair, err := model.ToDomain()
		if err != nil {
			return nil, err
		}
		domainList[i] = keyPair
	}

	return domainList, nil
}

func (r *gormKeyPairRepository) GetByID(ctx context.Context, keyPairID uuid.UUID) (*crypto.KeyPair, error) {
	var model models.KeyPairModel
	if err := r.db.WithContext(ctx).Where("id = ?", keyPairID.String()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", keys.ErrKeyPairNotFound, keyPairID)
		}
		return nil, fmt.Errorf("failed to fetch key pair: %w", err)
	}
	return model.ToDomain()
}

func (r *gormKeyPairRepository) DeleteByID(ctx context.Context, keyPairID uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", keyPairID.String()).Delete(&models.KeyPairModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete key pair: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", keys.ErrKeyPairNotFound, keyPairID)
	}

	r.logger.Info("Deleted key pair with id ", keyPairID)
	return nil
}
