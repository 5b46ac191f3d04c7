// Package model provides report types for the evaluation module.
package model

// AggregateStats is the full aggregated-stats record of one team's roster.
// Averages are zero when the category is empty.
type AggregateStats struct {
	BatsmenCount       int `json:"batsmen_count"`
	BowlersCount       int `json:"bowlers_count"`
	WicketkeepersCount int `json:"wicketkeepers_count"`
	AllroundersCount   int `json:"allrounders_count"`

	AvgRunsBatsmen       float64 `json:"avg_runs_batsmen"`
	AvgRunsWicketkeepers float64 `json:"avg_runs_wicketkeepers"`
	AvgRunsAllrounders   float64 `json:"avg_runs_allrounders"`

	AvgAverageBatsmen       float64 `json:"avg_average_batsmen"`
	AvgAverageWicketkeepers float64 `json:"avg_average_wicketkeepers"`
	AvgAverageAllrounders   float64 `json:"avg_average_allrounders"`

	AvgStrikeRateBatsmen       float64 `json:"avg_strike_rate_batsmen"`
	AvgStrikeRateWicketkeepers float64 `json:"avg_strike_rate_wicketkeepers"`
	AvgStrikeRateAllrounders   float64 `json:"avg_strike_rate_allrounders"`

	AvgEconomyBowlers     float64 `json:"avg_economy_bowlers"`
	AvgEconomyAllrounders float64 `json:"avg_economy_allrounders"`

	TotalRunsBatsmen       int `json:"total_runs_batsmen"`
	TotalRunsWicketkeepers int `json:"total_runs_wicketkeepers"`
	TotalRunsAllrounders   int `json:"total_runs_allrounders"`

	TotalWicketsBowlers     int `json:"total_wickets_bowlers"`
	TotalWicketsAllrounders int `json:"total_wickets_allrounders"`

	TotalFiftiesBatsmen       int `json:"total_fifties_batsmen"`
	TotalFiftiesWicketkeepers int `json:"total_fifties_wicketkeepers"`
	TotalFiftiesAllrounders   int `json:"total_fifties_allrounders"`

	TotalHundredsBatsmen       int `json:"total_hundreds_batsmen"`
	TotalHundredsWicketkeepers int `json:"total_hundreds_wicketkeepers"`
	TotalHundredsAllrounders   int `json:"total_hundreds_allrounders"`

	TotalMatches int `json:"total_matches"`
}

// TeamReport is the quality report produced for one team.
type TeamReport struct {
	TeamID     int64          `json:"team_id"`
	TeamName   string         `json:"team_name"`
	Score      int            `json:"score"`
	Grade      string         `json:"grade"`
	Strengths  []string       `json:"strengths"`
	Weaknesses []string       `json:"weaknesses"`
	Stats      AggregateStats `json:"stats"`
}

// EvaluationResponse carries the reports for all teams, ordered by team name.
type EvaluationResponse struct {
	Evaluations []TeamReport `json:"evaluations"`
	Total       int          `json:"total"`
}
