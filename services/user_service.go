package services

import (
	"context"
	"strings"
	"time"

	"nutriscan/models"
	"nutriscan/utils"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type UserService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db, now: time.Now}
}

// ProfileInput is a partial update; nil fields are left untouched.
type ProfileInput struct {
	Name        *string  `json:"name" binding:"omitempty,min=2"`
	Avatar      *string  `json:"avatar"`
	Gender      *string  `json:"gender" binding:"omitempty,oneof=male female"`
	DateOfBirth *string  `json:"dateOfBirth"`
	Height      *float64 `json:"height" binding:"omitempty,min=50,max=300"`
	Weight      *float64 `json:"weight" binding:"omitempty,min=20,max=500"`
	MainGoal    *string  `json:"mainGoal" binding:"omitempty,oneof=lose maintain gain"`
}

func (in ProfileInput) hasMetrics() bool {
	return in.Gender != nil || in.DateOfBirth != nil || in.Height != nil || in.Weight != nil || in.MainGoal != nil
}

func (in ProfileInput) hasAllMetrics() bool {
	return in.Gender != nil && in.DateOfBirth != nil && in.Height != nil && in.Weight != nil && in.MainGoal != nil
}

type ProfileOwner struct {
	Name   string  `json:"name"`
	Email  string  `json:"email"`
	Avatar *string `json:"avatar"`
	Role   string  `json:"role"`
}

type ProfileView struct {
	models.UserProfile
	Age         int          `json:"age"`
	BMI         float64      `json:"bmi,omitempty"`
	BMICategory string       `json:"bmiCategory,omitempty"`
	User        ProfileOwner `json:"user"`
}

func (s *UserService) view(p *models.UserProfile, u *models.User) *ProfileView {
	v := &ProfileView{
		UserProfile: *p,
		Age:         utils.CalculateAge(p.DateOfBirth, s.now()),
		User:        ProfileOwner{Name: u.Name, Email: u.Email, Avatar: u.Avatar, Role: u.Role},
	}
	if bmi, err := utils.CalculateBMI(p.Height, p.Weight); err == nil {
		v.BMI = bmi
		v.BMICategory = utils.BMICategory(bmi)
	}
	return v
}

func (s *UserService) findProfile(ctx context.Context, db *gorm.DB, userID string) (*models.UserProfile, error) {
	var p models.UserProfile
	err := db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find profile")
	}
	return &p, nil
}

func (s *UserService) GetProfile(ctx context.Context, user *models.User) (*ProfileView, error) {
	p, err := s.findProfile(ctx, s.db, user.ID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, utils.NotFound("Profile not found")
	}
	return s.view(p, user), nil
}

// UpdateProfile applies name/avatar to the user and body metrics to the profile,
// recomputing targets whenever a metric changes. Returns nil when there is no profile
// and nothing to create one from.
func (s *UserService) UpdateProfile(ctx context.Context, user *models.User, in ProfileInput) (*ProfileView, error) {
	var dob time.Time
	if in.DateOfBirth != nil {
		d, err := utils.ParseDay(*in.DateOfBirth, s.now().Location())
		if err != nil || d.After(s.now()) {
			return nil, utils.Invalid(utils.Issue{Field: "dateOfBirth", Message: "must be a past date (YYYY-MM-DD)"})
		}
		dob = d
	}

	var out *ProfileView
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if in.Name != nil {
			user.Name = strings.TrimSpace(*in.Name)
			updates["name"] = user.Name
		}
		if in.Avatar != nil && *in.Avatar != "" {
			user.Avatar = in.Avatar
			updates["avatar"] = *in.Avatar
		}
		if len(updates) > 0 {
			if err := tx.Model(&models.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
				return errors.Wrap(err, "update user")
			}
		}

		existing, err := s.findProfile(ctx, tx, user.ID)
		if err != nil {
			return err
		}

		if !in.hasMetrics() {
			if existing != nil {
				out = s.view(existing, user)
			}
			return nil
		}

		if existing == nil && !in.hasAllMetrics() {
			return utils.BadRequest("Full profile data required for new profile creation")
		}

		p := existing
		if p == nil {
			p = &models.UserProfile{UserID: user.ID}
		}
		if in.Gender != nil {
			p.Gender = *in.Gender
		}
		if in.DateOfBirth != nil {
			p.DateOfBirth = dob
		}
		if in.Height != nil {
			p.Height = *in.Height
		}
		if in.Weight != nil {
			p.Weight = *in.Weight
		}
		if in.MainGoal != nil {
			p.MainGoal = *in.MainGoal
		}

		t := CalculateTargets(p.Gender, p.Weight, p.Height, utils.CalculateAge(p.DateOfBirth, s.now()), p.MainGoal)
		p.TargetCalories, p.TargetProtein, p.TargetCarbs, p.TargetFats = t.Calories, t.Protein, t.Carbs, t.Fats

		if err := tx.Save(p).Error; err != nil {
			return errors.Wrap(err, "save profile")
		}
		out = s.view(p, user)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteUser removes the account and everything it owns. Public foods the user
// created stay in the catalog without an owner.
func (s *UserService) DeleteUser(ctx context.Context, userID string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		private := tx.Model(&models.FoodItem{}).Select("id").Where("created_by = ? AND is_public = ?", userID, false)
		steps := []struct {
			what string
			run  func() error
		}{
			{"logs", func() error { return tx.Where("user_id = ? OR food_id IN (?)", userID, private).Delete(&models.DailyLog{}).Error }},
			{"metrics", func() error { return tx.Where("user_id = ?", userID).Delete(&models.DailyMetric{}).Error }},
			{"profile", func() error { return tx.Where("user_id = ?", userID).Delete(&models.UserProfile{}).Error }},
			{"private foods", func() error {
				return tx.Where("created_by = ? AND is_public = ?", userID, false).Delete(&models.FoodItem{}).Error
			}},
			{"public foods", func() error {
				return tx.Model(&models.FoodItem{}).Where("created_by = ?", userID).Update("created_by", nil).Error
			}},
			{"user", func() error { return tx.Where("id = ?", userID).Delete(&models.User{}).Error }},
		}
		for _, st := range steps {
			if err := st.run(); err != nil {
				return errors.Wrapf(err, "delete %s", st.what)
			}
		}
		return nil
	})
}

// ToggleRole flips user <-> admin. Development helper.
func (s *UserService) ToggleRole(ctx context.Context, userID string) (string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, "id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", utils.NotFound("User not found")
		}
		return "", errors.Wrap(err, "load user")
	}
	role := models.RoleAdmin
	if user.IsAdmin() {
		role = models.RoleUser
	}
	if err := s.db.WithContext(ctx).Model(&user).Update("role", role).Error; err != nil {
		return "", errors.Wrap(err, "update role")
	}
	return role, nil
}
