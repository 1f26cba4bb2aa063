package performance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status は評価スコアから導出される評価区分です。
type Status string

const (
	StatusExcellent        Status = "excellent"
	StatusGood             Status = "good"
	StatusAverage          Status = "average"
	StatusNeedsImprovement Status = "needs_improvement"
)

// GoalStatus は目標の進捗状態です。
type GoalStatus string

const (
	GoalStatusNotStarted GoalStatus = "not_started"
	GoalStatusInProgress GoalStatus = "in_progress"
	GoalStatusCompleted  GoalStatus = "completed"
	GoalStatusOnHold     GoalStatus = "on_hold"
	GoalStatusCancelled  GoalStatus = "cancelled"
)

// Performance は人事評価 1 回分の記録です。
type Performance struct {
	ID               string
	EmployeeID       string
	ReviewerID       *string
	ReviewDate       time.Time
	PerformanceScore decimal.Decimal
	GoalsAchievement decimal.Decimal
	Comments         *string
	Status           Status
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Review は評価記録のカテゴリ別評点です。
type Review struct {
	ID            string
	PerformanceID string
	Category      string
	Rating        decimal.Decimal
	Comments      *string
	CreatedAt     time.Time
}

// Goal は社員の目標です。
type Goal struct {
	ID             string
	EmployeeID     string
	Title          string
	Description    *string
	StartDate      time.Time
	TargetDate     time.Time
	CompletionDate *time.Time
	Status         GoalStatus
	Progress       decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Categories は評価記録ごとに 1 件ずつ作成される評点カテゴリです。
var Categories = []string{
	"Technical Skills",
	"Communication",
	"Teamwork",
	"Problem Solving",
	"Leadership",
}
