package implementation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"floatchat-be/internal/entity"
	"floatchat-be/internal/mapper"
	"floatchat-be/internal/model"
	"floatchat-be/internal/pkg/apperror"
	"floatchat-be/internal/repository/contract"
	"floatchat-be/internal/repository/specification"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var profileColumns = []string{
	"profile_id",
	"latitude",
	"longitude",
	"datetime",
	"pressure",
	"temperature",
	"salinity",
	"project_name",
	"platform_type",
}

type ProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProfileMapper
}

func NewProfileRepository(db *gorm.DB) contract.ProfileRepository {
	return &ProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewProfileMapper(),
	}
}

func (r *ProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *ProfileRepositoryImpl) FindShallowestByDate(ctx context.Context, date time.Time) ([]*entity.Profile, error) {
	var models []*model.ArgoProfile
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.ArgoProfile{}),
		specification.ObservedOn{Date: date},
		specification.ShallowestPerProfile{Columns: profileColumns},
	)
	if err := query.Find(&models).Error; err != nil {
		return nil, classifyPgError(err)
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProfileRepositoryImpl) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// classifyPgError separates "the server rejected the query" from "we could not
// reach the server". Only the latter is a store outage.
func classifyPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fmt.Errorf("profile query failed (%s): %w", pgErr.Code, err)
	}
	return fmt.Errorf("%w: profile query: %v", apperror.ErrStore, err)
}
