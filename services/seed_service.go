package services

import (
	"context"
	"math/rand"
	"time"

	"nutriscan/models"
	"nutriscan/utils"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const DefaultHistoryDays = 90

var seedMealOrder = []string{models.MealBreakfast, models.MealLunch, models.MealDinner, models.MealSnack}

// Seeder loads the public catalog and optional demo history.
type Seeder struct {
	db  *gorm.DB
	rng *rand.Rand
	log logrus.FieldLogger
	now func() time.Time
}

func NewSeeder(db *gorm.DB, seed int64, log logrus.FieldLogger) *Seeder {
	return &Seeder{db: db, rng: rand.New(rand.NewSource(seed)), log: log, now: time.Now}
}

// SeedCatalog replaces the system-owned public foods with the built-in catalog.
func (s *Seeder) SeedCatalog(ctx context.Context) ([]models.FoodItem, error) {
	foods := make([]models.FoodItem, len(catalogSeed))
	copy(foods, catalogSeed)
	for i := range foods {
		foods[i].IsPublic = true
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		system := tx.Model(&models.FoodItem{}).Select("id").Where("created_by IS NULL AND is_public = ?", true)
		if err := tx.Where("food_id IN (?)", system).Delete(&models.DailyLog{}).Error; err != nil {
			return errors.Wrap(err, "delete catalog logs")
		}
		if err := tx.Where("created_by IS NULL AND is_public = ?", true).Delete(&models.FoodItem{}).Error; err != nil {
			return errors.Wrap(err, "delete catalog")
		}
		if err := tx.Create(&foods).Error; err != nil {
			return errors.Wrap(err, "insert catalog")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Infof("seeded %d catalog foods", len(foods))
	return foods, nil
}

// SeedHistory replaces every user's logs and metrics with days of generated
// data ending today, using the given foods.
func (s *Seeder) SeedHistory(ctx context.Context, foods []models.FoodItem, days int) error {
	if len(foods) == 0 {
		return errors.New("no foods to log")
	}
	var users []models.User
	if err := s.db.WithContext(ctx).Preload("Profile").Find(&users).Error; err != nil {
		return errors.Wrap(err, "list users")
	}
	if len(users) == 0 {
		s.log.Warn("no users found, skipping history")
		return nil
	}

	today := utils.DayStart(s.now())
	for _, u := range users {
		logs, metrics := s.history(u, foods, today, days)
		err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Where("user_id = ?", u.ID).Delete(&models.DailyLog{}).Error; err != nil {
				return errors.Wrap(err, "clear logs")
			}
			if err := tx.Where("user_id = ?", u.ID).Delete(&models.DailyMetric{}).Error; err != nil {
				return errors.Wrap(err, "clear metrics")
			}
			if err := tx.Omit(clause.Associations).CreateInBatches(&logs, 200).Error; err != nil {
				return errors.Wrap(err, "insert logs")
			}
			if err := tx.CreateInBatches(&metrics, 200).Error; err != nil {
				return errors.Wrap(err, "insert metrics")
			}
			return nil
		})
		if err != nil {
			return errors.Wrapf(err, "seed history for %s", u.Email)
		}
		s.log.WithField("user", u.Email).Infof("seeded %d days of history", days)
	}
	return nil
}

func (s *Seeder) history(u models.User, foods []models.FoodItem, today time.Time, days int) ([]models.DailyLog, []models.DailyMetric) {
	baseWeight := 70.0
	if u.Profile != nil && u.Profile.Weight > 0 {
		baseWeight = u.Profile.Weight
	}

	var logs []models.DailyLog
	metrics := make([]models.DailyMetric, 0, days)
	for offset := 0; offset < days; offset++ {
		day := today.AddDate(0, 0, -offset)
		noon := day.Add(12 * time.Hour)

		meals := 2 + s.rng.Intn(3)
		for m := 0; m < meals; m++ {
			qty := 1.0
			if s.rng.Float64() > 0.7 {
				qty = 1.5
			}
			logs = append(logs, models.DailyLog{
				UserID:   u.ID,
				FoodID:   foods[s.rng.Intn(len(foods))].ID,
				Date:     noon,
				MealType: seedMealOrder[min(m, len(seedMealOrder)-1)],
				Quantity: qty,
			})
		}

		// slight downward trend with +-1kg noise
		weight := utils.Round1(baseWeight + (s.rng.Float64()-0.5)*2 - float64(offset)*0.02)
		metrics = append(metrics, models.DailyMetric{
			UserID:         u.ID,
			Date:           day,
			WeightRecorded: &weight,
			WaterIntake:    utils.Round1(1.5 + s.rng.Float64()*1.5),
			SleepMinutes:   360 + s.rng.Intn(180),
		})
	}
	return logs, metrics
}
