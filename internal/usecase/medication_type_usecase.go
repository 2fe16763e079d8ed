package usecase

import (
	"context"
	"strings"

	"health-tracker/internal/converter"
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type MedicationTypeUsecase interface {
	Create(ctx context.Context, req *dto.CreateMedicationTypeRequest) (*dto.MedicationTypeResultResponse, error)
	List(ctx context.Context, category, search string) ([]dto.MedicationTypeResponse, error)
	Get(ctx context.Context, id uint) (*dto.MedicationTypeResponse, error)
}

type medicationTypeUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	medicationTypeRepo repository.MedicationTypeRepository
}

func NewMedicationTypeUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	medicationTypeRepo repository.MedicationTypeRepository,
) MedicationTypeUsecase {
	return &medicationTypeUsecase{
		db:                 db,
		log:                log,
		medicationTypeRepo: medicationTypeRepo,
	}
}

// Create is idempotent by name: an existing entry is returned unchanged
func (u *medicationTypeUsecase) Create(ctx context.Context, req *dto.CreateMedicationTypeRequest) (*dto.MedicationTypeResultResponse, error) {
	name := strings.TrimSpace(req.Name)

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	existing, err := u.medicationTypeRepo.FindByName(tx, name)
	if err != nil {
		u.log.Warnf("Failed to find medication type: %+v", err)
		return nil, err
	}
	if existing != nil {
		return &dto.MedicationTypeResultResponse{MedicationType: *converter.MedicationTypeToResponse(existing)}, nil
	}

	medicationType := &entity.MedicationType{
		Name:         name,
		Category:     req.Category,
		Description:  req.Description,
		CommonDosage: req.CommonDosage,
		SideEffects:  req.SideEffects,
		Precautions:  req.Precautions,
	}
	if err := u.medicationTypeRepo.Create(tx, medicationType); err != nil {
		u.log.Warnf("Failed to create medication type: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return &dto.MedicationTypeResultResponse{
		MedicationType: *converter.MedicationTypeToResponse(medicationType),
		Created:        true,
	}, nil
}

func (u *medicationTypeUsecase) List(ctx context.Context, category, search string) ([]dto.MedicationTypeResponse, error) {
	types, err := u.medicationTypeRepo.FindAll(u.db.WithContext(ctx), category, search)
	if err != nil {
		u.log.Warnf("Failed to find medication types: %+v", err)
		return nil, err
	}
	return converter.MedicationTypesToResponses(types), nil
}

func (u *medicationTypeUsecase) Get(ctx context.Context, id uint) (*dto.MedicationTypeResponse, error) {
	medicationType, err := u.medicationTypeRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find medication type: %+v", err)
		return nil, err
	}
	if medicationType == nil {
		return nil, ErrMedicationTypeNotFound
	}
	return converter.MedicationTypeToResponse(medicationType), nil
}
