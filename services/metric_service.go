package services

import (
	"context"
	"time"

	"nutriscan/models"
	"nutriscan/utils"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultMetricRangeDays = 30

type MetricService struct {
	db     *gorm.DB
	events EventPublisher
	now    func() time.Time
}

func NewMetricService(db *gorm.DB, events EventPublisher) *MetricService {
	return &MetricService{db: db, events: events, now: time.Now}
}

// MetricInput updates one day's metrics; nil fields keep their stored value.
type MetricInput struct {
	Date           string   `json:"date"`
	WeightRecorded *float64 `json:"weightRecorded" binding:"omitempty,min=20,max=500"`
	WaterIntake    *float64 `json:"waterIntake" binding:"omitempty,min=0,max=20"`
	SleepMinutes   *int     `json:"sleepMinutes" binding:"omitempty,min=0,max=1440"`
}

type MetricRange struct {
	From string `form:"from"`
	To   string `form:"to"`
}

func (s *MetricService) day(raw string) (time.Time, error) {
	now := s.now()
	if raw == "" {
		return utils.DayStart(now), nil
	}
	d, err := utils.ParseDay(raw, now.Location())
	if err != nil {
		return time.Time{}, utils.Invalid(utils.Issue{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if d.After(now) {
		return time.Time{}, utils.Invalid(utils.Issue{Field: "date", Message: "must not be in the future"})
	}
	return d, nil
}

// Upsert keyed by (user_id, day at local midnight).
func (s *MetricService) Upsert(ctx context.Context, userID string, in MetricInput) (*models.DailyMetric, error) {
	day, err := s.day(in.Date)
	if err != nil {
		return nil, err
	}

	m := models.DailyMetric{UserID: userID, Date: day}
	cols := []string{"updated_at"}
	if in.WeightRecorded != nil {
		m.WeightRecorded = in.WeightRecorded
		cols = append(cols, "weight_recorded")
	}
	if in.WaterIntake != nil {
		m.WaterIntake = *in.WaterIntake
		cols = append(cols, "water_intake")
	}
	if in.SleepMinutes != nil {
		m.SleepMinutes = *in.SleepMinutes
		cols = append(cols, "sleep_minutes")
	}

	// single statement so concurrent first writes for a day cannot collide
	err = s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns(cols),
	}).Create(&m).Error
	if err != nil {
		return nil, errors.Wrap(err, "upsert metric")
	}
	m = models.DailyMetric{}
	if err := s.db.WithContext(ctx).Where("user_id = ? AND date = ?", userID, day).First(&m).Error; err != nil {
		return nil, errors.Wrap(err, "reload metric")
	}
	if s.events != nil {
		s.events.Publish(userID, EventMetricUpdated, m)
	}
	return &m, nil
}

// List returns metrics between from and to inclusive, defaulting to the last 30 days.
func (s *MetricService) List(ctx context.Context, userID string, r MetricRange) ([]models.DailyMetric, error) {
	now := s.now()
	to := utils.DayStart(now)
	from := to.AddDate(0, 0, -(defaultMetricRangeDays - 1))

	var err error
	if r.From != "" {
		if from, err = utils.ParseDay(r.From, now.Location()); err != nil {
			return nil, utils.Invalid(utils.Issue{Field: "from", Message: "must be YYYY-MM-DD"})
		}
	}
	if r.To != "" {
		if to, err = utils.ParseDay(r.To, now.Location()); err != nil {
			return nil, utils.Invalid(utils.Issue{Field: "to", Message: "must be YYYY-MM-DD"})
		}
	}
	if to.Before(from) {
		return nil, utils.BadRequest("`to` must be on/after `from`")
	}

	metrics := []models.DailyMetric{}
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, utils.DayEnd(to)).
		Order("date ASC").
		Find(&metrics).Error; err != nil {
		return nil, errors.Wrap(err, "list metrics")
	}
	return metrics, nil
}
