package services

import (
	"context"
	"math"
	"time"

	"nutriscan/models"
	"nutriscan/utils"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const recentLogLimit = 5

type LogService struct {
	db     *gorm.DB
	foods  *FoodService
	events EventPublisher
	now    func() time.Time
}

func NewLogService(db *gorm.DB, foods *FoodService, events EventPublisher) *LogService {
	return &LogService{db: db, foods: foods, events: events, now: time.Now}
}

type AddLogInput struct {
	FoodID   string  `json:"foodId" binding:"required"`
	Quantity float64 `json:"quantity" binding:"required,min=0.1"`
	MealType string  `json:"mealType" binding:"required,oneof=BREAKFAST LUNCH DINNER SNACK"`
}

type Macros struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

func (m *Macros) add(o Macros) {
	m.Calories += o.Calories
	m.Protein += o.Protein
	m.Carbs += o.Carbs
	m.Fats += o.Fats
}

// LogMacros is what one log contributes: each macro scaled by quantity and rounded.
func LogMacros(l *models.DailyLog) Macros {
	r := func(v float64) int { return int(math.Round(v * l.Quantity)) }
	return Macros{
		Calories: r(l.Food.Calories),
		Protein:  r(l.Food.Protein),
		Carbs:    r(l.Food.Carbs),
		Fats:     r(l.Food.Fats),
	}
}

type LogWithMacros struct {
	models.DailyLog
	Macros Macros `json:"macros"`
}

type DailySummary struct {
	Date   time.Time       `json:"date"`
	Totals Macros          `json:"totals"`
	Logs   []LogWithMacros `json:"logs"`
}

func (s *LogService) publish(userID, kind string, data any) {
	if s.events != nil {
		s.events.Publish(userID, kind, data)
	}
}

func (s *LogService) Add(ctx context.Context, userID string, in AddLogInput) (*models.DailyLog, error) {
	food, err := s.foods.Get(ctx, in.FoodID)
	var appErr *utils.AppError
	if errors.As(err, &appErr) {
		return nil, utils.NotFound("Food item not found")
	}
	if err != nil {
		return nil, err
	}
	if !s.foods.Visible(food, userID) {
		return nil, utils.NotFound("Food item not found")
	}

	log := models.DailyLog{
		UserID:   userID,
		FoodID:   food.ID,
		Date:     s.now(),
		MealType: in.MealType,
		Quantity: in.Quantity,
	}
	if err := s.db.WithContext(ctx).Omit("Food").Create(&log).Error; err != nil {
		return nil, errors.Wrap(err, "create log")
	}
	log.Food = *food

	s.publish(userID, EventLogCreated, LogWithMacros{DailyLog: log, Macros: LogMacros(&log)})
	return &log, nil
}

// DailySummary returns the logs of one calendar day (today when day is zero) with totals.
func (s *LogService) DailySummary(ctx context.Context, userID string, day time.Time) (*DailySummary, error) {
	if day.IsZero() {
		day = s.now()
	}
	start, end := utils.DayStart(day), utils.DayEnd(day)

	var logs []models.DailyLog
	if err := s.db.WithContext(ctx).
		Preload("Food").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, start, end).
		Order("date ASC").
		Find(&logs).Error; err != nil {
		return nil, errors.Wrap(err, "list daily logs")
	}

	out := &DailySummary{Date: start, Logs: make([]LogWithMacros, 0, len(logs))}
	for i := range logs {
		m := LogMacros(&logs[i])
		out.Totals.add(m)
		out.Logs = append(out.Logs, LogWithMacros{DailyLog: logs[i], Macros: m})
	}
	return out, nil
}

func (s *LogService) Recent(ctx context.Context, userID string) ([]models.DailyLog, error) {
	logs := []models.DailyLog{}
	if err := s.db.WithContext(ctx).
		Preload("Food").
		Where("user_id = ?", userID).
		Order("date DESC").
		Limit(recentLogLimit).
		Find(&logs).Error; err != nil {
		return nil, errors.Wrap(err, "list recent logs")
	}
	return logs, nil
}

func (s *LogService) Delete(ctx context.Context, userID, logID string) error {
	var log models.DailyLog
	err := s.db.WithContext(ctx).First(&log, "id = ?", logID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.NotFound("Log not found")
	}
	if err != nil {
		return errors.Wrap(err, "get log")
	}
	if log.UserID != userID {
		return utils.Forbidden("Unauthorized")
	}
	if err := s.db.WithContext(ctx).Delete(&log).Error; err != nil {
		return errors.Wrap(err, "delete log")
	}
	s.publish(userID, EventLogDeleted, map[string]string{"id": log.ID})
	return nil
}
