package services

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"nutriscan/config"
	"nutriscan/models"
	"nutriscan/utils"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// fixedNow is mid-afternoon UTC so "today" never straddles midnight.
var fixedNow = time.Date(2025, time.June, 15, 14, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent), TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, config.Migrate(db))
	return db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	hash, err := utils.HashPassword("secret123")
	require.NoError(t, err)
	u := &models.User{Email: email, Name: "Test User", PasswordHash: hash, Role: role}
	require.NoError(t, db.Create(u).Error)
	return u
}

func createProfile(t *testing.T, db *gorm.DB, userID string, weight float64, goal string) *models.UserProfile {
	t.Helper()
	p := &models.UserProfile{
		UserID:         userID,
		Gender:         GenderMale,
		DateOfBirth:    time.Date(1995, time.January, 1, 0, 0, 0, 0, time.UTC),
		Height:         180,
		Weight:         weight,
		MainGoal:       goal,
		TargetCalories: 2000,
		TargetProtein:  100,
		TargetCarbs:    250,
		TargetFats:     70,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func createFood(t *testing.T, db *gorm.DB, name string, public bool, owner *string) *models.FoodItem {
	t.Helper()
	f := &models.FoodItem{
		Name:        name,
		ServingSize: "1 serving",
		Calories:    500,
		Protein:     20,
		Carbs:       60,
		Fats:        10,
		Type:        "local",
		IsPublic:    public,
		CreatedBy:   owner,
	}
	require.NoError(t, db.Create(f).Error)
	return f
}

func createLog(t *testing.T, db *gorm.DB, userID, foodID string, at time.Time, qty float64) *models.DailyLog {
	t.Helper()
	l := &models.DailyLog{UserID: userID, FoodID: foodID, Date: at, MealType: models.MealLunch, Quantity: qty}
	require.NoError(t, db.Omit("Food").Create(l).Error)
	return l
}

type publishedEvent struct {
	userID string
	kind   string
	data   any
}

// recordingPublisher captures events instead of writing to sockets.
type recordingPublisher struct {
	mu     sync.Mutex
	events []publishedEvent
}

func (p *recordingPublisher) Publish(userID, kind string, data any) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, publishedEvent{userID, kind, data})
}

func (p *recordingPublisher) kinds() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.kind)
	}
	return out
}

func ptr[T any](v T) *T { return &v }
