package services

import (
	"context"
	"strings"

	"nutriscan/models"
	"nutriscan/utils"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const (
	FoodScopePersonal = "personal"
	FoodScopeAll      = "all"

	defaultServingSize = "1 serving"
	defaultFoodType    = "local"
)

type FoodService struct {
	db    *gorm.DB
	cache FoodCache
}

func NewFoodService(db *gorm.DB, cache FoodCache) *FoodService {
	if cache == nil {
		cache = NoopFoodCache{}
	}
	return &FoodService{db: db, cache: cache}
}

type FoodQuery struct {
	Type   string `form:"type"`
	Search string `form:"search"`
}

type CreateFoodInput struct {
	Name        string   `json:"name" binding:"required,min=1"`
	Brand       string   `json:"brand"`
	ServingSize string   `json:"servingSize"`
	Calories    *float64 `json:"calories" binding:"required,min=0"`
	Protein     float64  `json:"protein" binding:"min=0"`
	Carbs       float64  `json:"carbs" binding:"min=0"`
	Fats        float64  `json:"fats" binding:"min=0"`
	Image       string   `json:"image"`
	Type        string   `json:"type"`
}

type UpdateFoodInput struct {
	Name        *string  `json:"name" binding:"omitempty,min=1"`
	Brand       *string  `json:"brand"`
	ServingSize *string  `json:"servingSize"`
	Calories    *float64 `json:"calories" binding:"omitempty,min=0"`
	Protein     *float64 `json:"protein" binding:"omitempty,min=0"`
	Carbs       *float64 `json:"carbs" binding:"omitempty,min=0"`
	Fats        *float64 `json:"fats" binding:"omitempty,min=0"`
	Image       *string  `json:"image"`
	Type        *string  `json:"type"`
}

func (in UpdateFoodInput) updates() map[string]interface{} {
	m := map[string]interface{}{}
	if in.Name != nil {
		m["name"] = strings.TrimSpace(*in.Name)
	}
	if in.Brand != nil {
		m["brand"] = *in.Brand
	}
	if in.ServingSize != nil && *in.ServingSize != "" {
		m["serving_size"] = *in.ServingSize
	}
	if in.Calories != nil {
		m["calories"] = *in.Calories
	}
	if in.Protein != nil {
		m["protein"] = *in.Protein
	}
	if in.Carbs != nil {
		m["carbs"] = *in.Carbs
	}
	if in.Fats != nil {
		m["fats"] = *in.Fats
	}
	if in.Image != nil {
		m["image"] = *in.Image
	}
	if in.Type != nil && *in.Type != "" {
		m["type"] = *in.Type
	}
	return m
}

// List returns either the caller's private foods (type=personal) or the public catalog,
// optionally narrowed by type and a case-insensitive name search.
func (s *FoodService) List(ctx context.Context, userID string, q FoodQuery) ([]models.FoodItem, error) {
	q.Search = strings.TrimSpace(q.Search)
	if q.Type == FoodScopePersonal {
		return s.query(ctx, userID, q)
	}

	if foods, ok := s.cache.GetPublic(ctx, q); ok {
		return foods, nil
	}
	foods, err := s.query(ctx, userID, q)
	if err != nil {
		return nil, err
	}
	s.cache.SetPublic(ctx, q, foods)
	return foods, nil
}

func (s *FoodService) query(ctx context.Context, userID string, q FoodQuery) ([]models.FoodItem, error) {
	tx := s.db.WithContext(ctx).Model(&models.FoodItem{})
	if q.Type == FoodScopePersonal {
		tx = tx.Where("created_by = ? AND is_public = ?", userID, false)
	} else {
		tx = tx.Where("is_public = ?", true)
		if q.Type != "" && q.Type != FoodScopeAll {
			tx = tx.Where("type = ?", q.Type)
		}
	}
	if q.Search != "" {
		tx = tx.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q.Search)+"%")
	}

	foods := []models.FoodItem{}
	if err := tx.Order("name ASC").Find(&foods).Error; err != nil {
		return nil, errors.Wrap(err, "list foods")
	}
	return foods, nil
}

func (s *FoodService) Get(ctx context.Context, id string) (*models.FoodItem, error) {
	var f models.FoodItem
	err := s.db.WithContext(ctx).First(&f, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.NotFound("Food not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "get food")
	}
	return &f, nil
}

// Create makes a public item for admins and a private one for everyone else.
func (s *FoodService) Create(ctx context.Context, user *models.User, in CreateFoodInput) (*models.FoodItem, error) {
	f := models.FoodItem{
		Name:        strings.TrimSpace(in.Name),
		Brand:       in.Brand,
		ServingSize: in.ServingSize,
		Calories:    *in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fats:        in.Fats,
		Image:       in.Image,
		Type:        in.Type,
		IsPublic:    user.IsAdmin(),
		CreatedBy:   &user.ID,
	}
	if f.ServingSize == "" {
		f.ServingSize = defaultServingSize
	}
	if f.Type == "" {
		f.Type = defaultFoodType
	}
	if err := s.db.WithContext(ctx).Create(&f).Error; err != nil {
		return nil, errors.Wrap(err, "create food")
	}
	if f.IsPublic {
		s.cache.InvalidatePublic(ctx)
	}
	return &f, nil
}

func (s *FoodService) authorize(ctx context.Context, user *models.User, id, action string) (*models.FoodItem, error) {
	f, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !user.IsAdmin() && !f.OwnedBy(user.ID) {
		return nil, utils.Forbidden("You do not have permission to " + action + " this food")
	}
	return f, nil
}

func (s *FoodService) Update(ctx context.Context, user *models.User, id string, in UpdateFoodInput) (*models.FoodItem, error) {
	f, err := s.authorize(ctx, user, id, "edit")
	if err != nil {
		return nil, err
	}
	if upd := in.updates(); len(upd) > 0 {
		if err := s.db.WithContext(ctx).Model(f).Updates(upd).Error; err != nil {
			return nil, errors.Wrap(err, "update food")
		}
	}
	if f.IsPublic {
		s.cache.InvalidatePublic(ctx)
	}
	return s.Get(ctx, id)
}

// Delete removes the food and every log that references it.
func (s *FoodService) Delete(ctx context.Context, user *models.User, id string) error {
	f, err := s.authorize(ctx, user, id, "delete")
	if err != nil {
		return err
	}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("food_id = ?", f.ID).Delete(&models.DailyLog{}).Error; err != nil {
			return err
		}
		return tx.Delete(f).Error
	})
	if err != nil {
		return errors.Wrap(err, "delete food")
	}
	if f.IsPublic {
		s.cache.InvalidatePublic(ctx)
	}
	return nil
}

// Visible reports whether the user may log this food.
func (s *FoodService) Visible(f *models.FoodItem, userID string) bool {
	return f.IsPublic || f.OwnedBy(userID)
}

func (s *FoodService) InvalidateCatalog(ctx context.Context) { s.cache.InvalidatePublic(ctx) }
