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

const (
	DefaultAnalyticsDays = 7
	MaxAnalyticsDays     = 90

	// goal weight offset for lose/gain, kg
	goalWeightDelta = 5.0
)

type AnalyticsService struct {
	db  *gorm.DB
	now func() time.Time
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db, now: time.Now}
}

// ---------- Summary ----------

type Averages struct {
	Calories     int     `json:"calories"`
	Protein      int     `json:"protein"`
	Carbs        int     `json:"carbs"`
	Fats         int     `json:"fats"`
	Water        float64 `json:"water"`
	SleepMinutes int     `json:"sleepMinutes"`
}

type TargetSet struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fats     int `json:"fats"`
}

type MacroPercentages struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

type WeightPoint struct {
	Date   time.Time `json:"date"`
	Weight float64   `json:"weight"`
}

type WeightSummary struct {
	Current *float64      `json:"current"`
	Goal    *float64      `json:"goal"`
	History []WeightPoint `json:"history"`
}

type AnalyticsSummary struct {
	Period           int              `json:"period"`
	Averages         Averages         `json:"averages"`
	Targets          *TargetSet       `json:"targets"`
	MacroPercentages MacroPercentages `json:"macroPercentages"`
	Weight           WeightSummary    `json:"weight"`
	ChartData        []int            `json:"chartData"`
}

// ClampDays maps a requested period onto 1..MaxAnalyticsDays, defaulting non-positive input.
func ClampDays(days int) int {
	if days <= 0 {
		return DefaultAnalyticsDays
	}
	if days > MaxAnalyticsDays {
		return MaxAnalyticsDays
	}
	return days
}

// Summary aggregates the `days` calendar days ending today.
func (s *AnalyticsService) Summary(ctx context.Context, userID string, days int) (*AnalyticsSummary, error) {
	days = ClampDays(days)
	now := s.now()
	from := utils.DayStart(now).AddDate(0, 0, -(days - 1))
	to := utils.DayEnd(now)

	var logs []models.DailyLog
	if err := s.db.WithContext(ctx).
		Preload("Food").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Find(&logs).Error; err != nil {
		return nil, errors.Wrap(err, "load logs")
	}

	var metrics []models.DailyMetric
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, from, to).
		Order("date ASC").
		Find(&metrics).Error; err != nil {
		return nil, errors.Wrap(err, "load metrics")
	}

	var profile *models.UserProfile
	var p models.UserProfile
	err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&p).Error
	switch {
	case err == nil:
		profile = &p
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, errors.Wrap(err, "load profile")
	}

	// group by calendar day in the server's zone
	daily := map[string]*Macros{}
	var total Macros
	for i := range logs {
		key := utils.DayKey(logs[i].Date.In(now.Location()))
		if daily[key] == nil {
			daily[key] = &Macros{}
		}
		m := LogMacros(&logs[i])
		daily[key].add(m)
		total.add(m)
	}
	daysWithData := len(daily)
	if daysWithData == 0 {
		daysWithData = 1
	}

	out := &AnalyticsSummary{Period: days}
	out.Averages.Calories = roundDiv(total.Calories, daysWithData)
	out.Averages.Protein = roundDiv(total.Protein, daysWithData)
	out.Averages.Carbs = roundDiv(total.Carbs, daysWithData)
	out.Averages.Fats = roundDiv(total.Fats, daysWithData)

	if len(metrics) > 0 {
		var water float64
		var sleep int
		for _, m := range metrics {
			water += m.WaterIntake
			sleep += m.SleepMinutes
		}
		out.Averages.Water = utils.Round1(water / float64(len(metrics)))
		out.Averages.SleepMinutes = roundDiv(sleep, len(metrics))
	}

	if profile != nil {
		out.Targets = &TargetSet{
			Calories: profile.TargetCalories,
			Protein:  profile.TargetProtein,
			Carbs:    profile.TargetCarbs,
			Fats:     profile.TargetFats,
		}
		n := float64(daysWithData)
		out.MacroPercentages = MacroPercentages{
			Protein: cappedPct(float64(total.Protein)/n, float64(profile.TargetProtein)),
			Carbs:   cappedPct(float64(total.Carbs)/n, float64(profile.TargetCarbs)),
			Fats:    cappedPct(float64(total.Fats)/n, float64(profile.TargetFats)),
		}
	}

	out.Weight = weightSummary(metrics, profile)

	out.ChartData = make([]int, 0, days)
	for i := days - 1; i >= 0; i-- {
		key := utils.DayKey(now.AddDate(0, 0, -i))
		pct := 0
		if d := daily[key]; d != nil && profile != nil {
			pct = cappedPct(float64(d.Calories), float64(profile.TargetCalories))
		}
		out.ChartData = append(out.ChartData, pct)
	}

	return out, nil
}

func weightSummary(metrics []models.DailyMetric, profile *models.UserProfile) WeightSummary {
	ws := WeightSummary{History: []WeightPoint{}}
	for _, m := range metrics {
		if m.WeightRecorded != nil {
			ws.History = append(ws.History, WeightPoint{Date: m.Date, Weight: *m.WeightRecorded})
		}
	}

	if n := len(ws.History); n > 0 {
		w := ws.History[n-1].Weight
		ws.Current = &w
	} else if profile != nil {
		w := profile.Weight
		ws.Current = &w
	}

	if profile != nil {
		g := profile.Weight
		switch profile.MainGoal {
		case GoalLose:
			g -= goalWeightDelta
		case GoalGain:
			g += goalWeightDelta
		}
		ws.Goal = &g
	}
	return ws
}

// ---------- internals ----------

func cappedPct(actual, target float64) int {
	if target <= 0 {
		return 0
	}
	p := int(math.Round(actual / target * 100))
	if p > 100 {
		return 100
	}
	return p
}

func roundDiv(sum, n int) int {
	if n <= 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}
