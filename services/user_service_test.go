package services

import (
	"context"
	"net/http"
	"testing"

	"nutriscan/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(t *testing.T) *UserService {
	t.Helper()
	svc := NewUserService(newTestDB(t))
	svc.now = clock
	return svc
}

func TestUserServiceGetProfileMissing(t *testing.T) {
	svc := newUserService(t)
	u := createUser(t, svc.db, "np@example.com", models.RoleUser)

	_, err := svc.GetProfile(context.Background(), u)
	assertStatus(t, err, http.StatusNotFound)
	assert.Equal(t, "Profile not found", err.Error())
}

func TestUserServiceUpdateProfile(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()
	u := createUser(t, svc.db, "profile@example.com", models.RoleUser)

	t.Run("name only without profile returns nil", func(t *testing.T) {
		out, err := svc.UpdateProfile(ctx, u, ProfileInput{Name: ptr("  Budi  ")})
		require.NoError(t, err)
		assert.Nil(t, out)

		var stored models.User
		require.NoError(t, svc.db.First(&stored, "id = ?", u.ID).Error)
		assert.Equal(t, "Budi", stored.Name)
	})

	t.Run("partial data cannot create a profile", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, u, ProfileInput{Weight: ptr(80.0)})
		assertStatus(t, err, http.StatusBadRequest)
		assert.Equal(t, "Full profile data required for new profile creation", err.Error())
	})

	t.Run("future birth date rejected", func(t *testing.T) {
		_, err := svc.UpdateProfile(ctx, u, ProfileInput{DateOfBirth: ptr("2030-01-01")})
		assertStatus(t, err, http.StatusBadRequest)
	})

	t.Run("full data creates profile with targets", func(t *testing.T) {
		out, err := svc.UpdateProfile(ctx, u, ProfileInput{
			Gender:      ptr(GenderMale),
			DateOfBirth: ptr("1995-06-15"),
			Height:      ptr(180.0),
			Weight:      ptr(80.0),
			MainGoal:    ptr(GoalMaintain),
		})
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, 30, out.Age)
		assert.Equal(t, 2136, out.TargetCalories)
		assert.Equal(t, 160, out.TargetProtein)
		assert.Equal(t, 194, out.TargetCarbs)
		assert.Equal(t, 80, out.TargetFats)
		assert.Equal(t, 24.7, out.BMI)
		assert.Equal(t, "Normal weight", out.BMICategory)
		assert.Equal(t, "Budi", out.User.Name)
	})

	t.Run("partial update merges and recomputes", func(t *testing.T) {
		out, err := svc.UpdateProfile(ctx, u, ProfileInput{MainGoal: ptr(GoalLose)})
		require.NoError(t, err)
		assert.Equal(t, 80.0, out.Weight)
		assert.Equal(t, 1636, out.TargetCalories)

		var count int64
		svc.db.Model(&models.UserProfile{}).Where("user_id = ?", u.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("no metrics returns existing profile", func(t *testing.T) {
		out, err := svc.UpdateProfile(ctx, u, ProfileInput{Avatar: ptr("http://cdn/a.png")})
		require.NoError(t, err)
		require.NotNil(t, out)
		assert.Equal(t, GoalLose, out.MainGoal)
		require.NotNil(t, out.User.Avatar)
		assert.Equal(t, "http://cdn/a.png", *out.User.Avatar)
	})
}

func TestUserServiceDeleteUser(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()
	db := svc.db

	u := createUser(t, db, "gone@example.com", models.RoleAdmin)
	other := createUser(t, db, "stays@example.com", models.RoleUser)
	createProfile(t, db, u.ID, 70, GoalMaintain)
	private := createFood(t, db, "Private Dish", false, &u.ID)
	public := createFood(t, db, "Shared Dish", true, &u.ID)
	createLog(t, db, u.ID, public.ID, fixedNow, 1)
	otherLog := createLog(t, db, other.ID, public.ID, fixedNow, 1)
	require.NoError(t, db.Create(&models.DailyMetric{UserID: u.ID, Date: fixedNow, WaterIntake: 1}).Error)

	require.NoError(t, svc.DeleteUser(ctx, u.ID))

	count := func(model any, where string, args ...any) int64 {
		var n int64
		db.Model(model).Where(where, args...).Count(&n)
		return n
	}
	assert.Zero(t, count(&models.User{}, "id = ?", u.ID))
	assert.Zero(t, count(&models.UserProfile{}, "user_id = ?", u.ID))
	assert.Zero(t, count(&models.DailyMetric{}, "user_id = ?", u.ID))
	assert.Zero(t, count(&models.DailyLog{}, "user_id = ?", u.ID))
	assert.Zero(t, count(&models.FoodItem{}, "id = ?", private.ID))
	assert.Equal(t, int64(1), count(&models.DailyLog{}, "id = ?", otherLog.ID))

	var shared models.FoodItem
	require.NoError(t, db.First(&shared, "id = ?", public.ID).Error)
	assert.Nil(t, shared.CreatedBy)
}

func TestUserServiceToggleRole(t *testing.T) {
	svc := newUserService(t)
	ctx := context.Background()
	u := createUser(t, svc.db, "dev@example.com", models.RoleUser)

	role, err := svc.ToggleRole(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, role)

	role, err = svc.ToggleRole(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RoleUser, role)

	_, err = svc.ToggleRole(ctx, "nobody")
	assertStatus(t, err, http.StatusNotFound)
}
