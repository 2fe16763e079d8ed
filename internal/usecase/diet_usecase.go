package usecase

import (
	"context"
	"errors"
	"time"

	"health-tracker/internal/converter"
	"health-tracker/internal/delivery/dto"
	"health-tracker/internal/domain/entity"
	"health-tracker/internal/domain/repository"
	"health-tracker/internal/service"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrFoodNotFound     = errors.New("food not found")
	ErrDietMealNotFound = errors.New("diet record not found")
)

// DietUsecase manages the food catalog and the itemized meal records
type DietUsecase interface {
	CreateFood(ctx context.Context, req *dto.CreateFoodRequest) (*dto.FoodResponse, error)
	ListFoods(ctx context.Context, category, search string) ([]dto.FoodResponse, error)
	GetFood(ctx context.Context, id uint) (*dto.FoodResponse, error)

	CreateMeal(ctx context.Context, userID uint, req *dto.CreateDietMealRequest) (*dto.DietMealResponse, error)
	ListMeals(ctx context.Context, userID uint, startDate, endDate, mealType string) ([]dto.DietMealResponse, error)
	GetMeal(ctx context.Context, userID, id uint) (*dto.DietMealResponse, error)
	DeleteMeal(ctx context.Context, userID, id uint) error
	NutritionSummary(ctx context.Context, userID uint, date string) (*dto.NutritionSummaryResponse, error)
}

type dietUsecase struct {
	db             *gorm.DB
	log            *logrus.Logger
	foodRepo       repository.FoodRepository
	dietRecordRepo repository.DietRecordRepository
	auditService   service.AuditService
	now            func() time.Time
}

func NewDietUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	foodRepo repository.FoodRepository,
	dietRecordRepo repository.DietRecordRepository,
	auditService service.AuditService,
) DietUsecase {
	return &dietUsecase{
		db:             db,
		log:            log,
		foodRepo:       foodRepo,
		dietRecordRepo: dietRecordRepo,
		auditService:   auditService,
		now:            time.Now,
	}
}

func (u *dietUsecase) CreateFood(ctx context.Context, req *dto.CreateFoodRequest) (*dto.FoodResponse, error) {
	food := &entity.Food{
		Name:         req.Name,
		Category:     req.Category,
		Calories:     req.Calories,
		Protein:      req.Protein,
		Fat:          req.Fat,
		Carbohydrate: req.Carbohydrate,
		Fiber:        req.Fiber,
		Sugar:        req.Sugar,
		Sodium:       req.Sodium,
		ServingSize:  req.ServingSize,
	}

	if err := u.foodRepo.Create(u.db.WithContext(ctx), food); err != nil {
		u.log.Warnf("Failed to create food: %+v", err)
		return nil, err
	}
	return converter.FoodToResponse(food), nil
}

func (u *dietUsecase) ListFoods(ctx context.Context, category, search string) ([]dto.FoodResponse, error) {
	foods, err := u.foodRepo.FindAll(u.db.WithContext(ctx), category, search)
	if err != nil {
		u.log.Warnf("Failed to find foods: %+v", err)
		return nil, err
	}
	return converter.FoodsToResponses(foods), nil
}

func (u *dietUsecase) GetFood(ctx context.Context, id uint) (*dto.FoodResponse, error) {
	food, err := u.foodRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find food: %+v", err)
		return nil, err
	}
	if food == nil {
		return nil, ErrFoodNotFound
	}
	return converter.FoodToResponse(food), nil
}

// CreateMeal stores a meal with its items. Item calories default to the
// food's per-100g calories scaled to the amount; the meal total is the sum
// of the item calories.
func (u *dietUsecase) CreateMeal(ctx context.Context, userID uint, req *dto.CreateDietMealRequest) (*dto.DietMealResponse, error) {
	date, err := dateOrToday(req.RecordDate, u.now())
	if err != nil {
		return nil, err
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record := &entity.DietRecord{
		UserID:     userID,
		RecordDate: date,
		MealType:   req.MealType,
		Notes:      req.Notes,
		Items:      make([]entity.DietRecordItem, 0, len(req.Items)),
	}

	var total float64
	var anyCalories bool
	foods := make([]entity.Food, 0, len(req.Items))
	for _, itemReq := range req.Items {
		food, err := u.foodRepo.FindByID(tx, itemReq.FoodID)
		if err != nil {
			u.log.Warnf("Failed to find food: %+v", err)
			return nil, err
		}
		if food == nil {
			return nil, ErrFoodNotFound
		}

		item := entity.DietRecordItem{
			FoodID:   food.ID,
			Amount:   itemReq.Amount,
			Calories: itemCalories(food, itemReq),
		}
		if item.Calories != nil {
			total += *item.Calories
			anyCalories = true
		}
		record.Items = append(record.Items, item)
		foods = append(foods, *food)
	}
	if anyCalories {
		total = entity.Round(total, 2)
		record.TotalCalories = &total
	}

	if err := u.dietRecordRepo.Create(tx, record); err != nil {
		u.log.Warnf("Failed to create diet record: %+v", err)
		return nil, err
	}
	for i := range record.Items {
		record.Items[i].Food = foods[i]
	}

	response := converter.DietMealToResponse(record)
	if err := u.auditService.LogCreate(ctx, tx, userID, entity.AuditActionRecordCreate, "diet_record", record.ID, response); err != nil {
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}
	return response, nil
}

func itemCalories(food *entity.Food, req dto.DietItemRequest) *float64 {
	if req.Calories != nil {
		return req.Calories
	}
	if food.Calories == nil {
		return nil
	}
	calories := entity.Round(*food.Calories*req.Amount/100, 2)
	return &calories
}

func (u *dietUsecase) ListMeals(ctx context.Context, userID uint, startDate, endDate, mealType string) ([]dto.DietMealResponse, error) {
	start, end, err := optionalRange(startDate, endDate)
	if err != nil {
		return nil, err
	}

	records, err := u.dietRecordRepo.FindByUser(u.db.WithContext(ctx), userID, start, end, mealType)
	if err != nil {
		u.log.Warnf("Failed to find diet records: %+v", err)
		return nil, err
	}
	return converter.DietMealsToResponses(records), nil
}

func (u *dietUsecase) GetMeal(ctx context.Context, userID, id uint) (*dto.DietMealResponse, error) {
	record, err := u.dietRecordRepo.FindByID(u.db.WithContext(ctx), userID, id)
	if err != nil {
		u.log.Warnf("Failed to find diet record: %+v", err)
		return nil, err
	}
	if record == nil {
		return nil, ErrDietMealNotFound
	}
	return converter.DietMealToResponse(record), nil
}

func (u *dietUsecase) DeleteMeal(ctx context.Context, userID, id uint) error {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	record, err := u.dietRecordRepo.FindByID(tx, userID, id)
	if err != nil {
		u.log.Warnf("Failed to find diet record: %+v", err)
		return err
	}
	if record == nil {
		return ErrDietMealNotFound
	}

	if err := u.dietRecordRepo.Delete(tx, record); err != nil {
		u.log.Warnf("Failed to delete diet record: %+v", err)
		return err
	}
	if err := u.auditService.LogDelete(ctx, tx, userID, entity.AuditActionRecordDelete, "diet_record", record.ID, converter.DietMealToResponse(record)); err != nil {
		return err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return err
	}
	return nil
}

// NutritionSummary adds up the meals of date, or of all days when date is
// empty. Calories come from the meal totals, the other nutrients from the
// catalog values of each item.
func (u *dietUsecase) NutritionSummary(ctx context.Context, userID uint, date string) (*dto.NutritionSummaryResponse, error) {
	var day *time.Time
	if date != "" {
		parsed, err := entity.ParseDate(date)
		if err != nil {
			return nil, ErrInvalidDateFormat
		}
		day = &parsed
	}

	records, err := u.dietRecordRepo.FindByUser(u.db.WithContext(ctx), userID, day, day, "")
	if err != nil {
		u.log.Warnf("Failed to find diet records: %+v", err)
		return nil, err
	}

	summary := &dto.NutritionSummaryResponse{Date: date, Meals: map[string]*dto.MealSummary{}}
	for _, record := range records {
		meal := summary.Meals[record.MealType]
		if meal == nil {
			meal = &dto.MealSummary{Items: []dto.MealItem{}}
			summary.Meals[record.MealType] = meal
		}
		if record.TotalCalories != nil {
			summary.Total.Calories += *record.TotalCalories
			meal.Calories += *record.TotalCalories
		}

		for _, item := range record.Items {
			n := item.Food.NutrientsFor(item.Amount)
			n.Calories = 0
			summary.Total.Add(n)

			var calories float64
			if item.Calories != nil {
				calories = *item.Calories
			}
			meal.Items = append(meal.Items, dto.MealItem{
				FoodName: item.Food.Name,
				Amount:   item.Amount,
				Calories: calories,
				Source:   string(entity.DietSourceItem),
			})
		}
	}

	summary.Total = summary.Total.Round(2)
	for _, meal := range summary.Meals {
		meal.Calories = entity.Round(meal.Calories, 2)
	}
	return summary, nil
}
