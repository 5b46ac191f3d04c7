// Package service implements roster scoring and the evaluate-all operation.
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/cricbid/auction/internal/evaluation/model"
	"github.com/cricbid/auction/internal/evaluation/repository"
	playerModel "github.com/cricbid/auction/internal/player/model"
)

type Service interface {
	// EvaluateAll scores every team's current roster, ordered by team name.
	EvaluateAll(ctx context.Context) (*model.EvaluationResponse, error)
}

type serviceImpl struct {
	repo   repository.Repository
	logger *zap.SugaredLogger
}

func New(repo repository.Repository, logger *zap.SugaredLogger) Service {
	return &serviceImpl{repo: repo, logger: logger}
}

func (s *serviceImpl) EvaluateAll(ctx context.Context) (*model.EvaluationResponse, error) {
	teams, err := s.repo.ListTeams(ctx)
	if err != nil {
		s.logger.Errorw("failed to list teams for evaluation", "error", err)
		return nil, err
	}

	reports := make([]model.TeamReport, 0, len(teams))
	for _, team := range teams {
		roster, err := s.repo.Roster(ctx, team.ID)
		if err != nil {
			s.logger.Errorw("failed to load roster", "team_id", team.ID, "error", err)
			return nil, err
		}
		report := Evaluate(roster)
		report.TeamID = team.ID
		report.TeamName = team.Name
		reports = append(reports, report)
	}

	return &model.EvaluationResponse{Evaluations: reports, Total: len(reports)}, nil
}

// Evaluate scores a roster snapshot. It is a pure function: no mutation of
// the input, no error paths.
func Evaluate(roster []playerModel.Player) model.TeamReport {
	stats := Aggregate(roster)

	score := 0
	var strengths, weaknesses []string

	// Batting (specialist batsmen only).
	switch {
	case stats.BatsmenCount >= 7 && stats.AvgAverageBatsmen >= 40 && stats.AvgStrikeRateBatsmen >= 150 && stats.TotalRunsBatsmen >= 2000:
		score += 25
		strengths = append(strengths, battingLine("Strong", stats))
	case stats.BatsmenCount >= 5 && stats.AvgAverageBatsmen >= 30 && stats.AvgStrikeRateBatsmen >= 130 && stats.TotalRunsBatsmen >= 1500:
		score += 15
		strengths = append(strengths, battingLine("Decent", stats))
	case stats.BatsmenCount >= 3 && stats.AvgAverageBatsmen >= 15 && stats.AvgStrikeRateBatsmen >= 100 && stats.TotalRunsBatsmen >= 500:
		score += 10
		strengths = append(strengths, battingLine("Average", stats))
	default:
		weaknesses = append(weaknesses, fmt.Sprintf(
			"Batting lineup needs improvement: %d batsmen, average of %.2f, strike rate of %.2f, and %d runs",
			stats.BatsmenCount, stats.AvgAverageBatsmen, stats.AvgStrikeRateBatsmen, stats.TotalRunsBatsmen))
	}

	// Bowling (specialist bowlers only).
	switch {
	case stats.BowlersCount >= 7 && stats.AvgEconomyBowlers < 8 && stats.TotalWicketsBowlers >= 100:
		score += 25
		strengths = append(strengths, bowlingLine("Excellent", stats))
	case stats.BowlersCount >= 5 && stats.AvgEconomyBowlers < 10 && stats.TotalWicketsBowlers >= 50:
		score += 15
		strengths = append(strengths, bowlingLine("Good", stats))
	case stats.BowlersCount >= 3 && stats.AvgEconomyBowlers < 12 && stats.TotalWicketsBowlers >= 20:
		score += 10
		strengths = append(strengths, bowlingLine("Average", stats))
	default:
		weaknesses = append(weaknesses, fmt.Sprintf(
			"Bowling attack needs improvement: %d bowlers, economy of %.2f, and %d wickets",
			stats.BowlersCount, stats.AvgEconomyBowlers, stats.TotalWicketsBowlers))
	}

	// All-rounders.
	switch {
	case stats.AllroundersCount >= 7 && stats.AvgAverageAllrounders >= 30 && stats.AvgEconomyAllrounders < 8 && stats.AvgStrikeRateAllrounders >= 120 && stats.TotalWicketsAllrounders >= 50:
		score += 20
		strengths = append(strengths, allrounderLine("Good", stats))
	case stats.AllroundersCount >= 5 && stats.AvgAverageAllrounders >= 20 && stats.AvgEconomyAllrounders < 10 && stats.AvgStrikeRateAllrounders >= 110 && stats.TotalWicketsAllrounders >= 20:
		score += 15
		strengths = append(strengths, allrounderLine("Decent", stats))
	case stats.AllroundersCount >= 3 && stats.AvgAverageAllrounders >= 12 && stats.AvgEconomyAllrounders < 15 && stats.AvgStrikeRateAllrounders >= 100 && stats.TotalWicketsAllrounders >= 10:
		score += 5
		strengths = append(strengths, allrounderLine("Average", stats))
	default:
		weaknesses = append(weaknesses, fmt.Sprintf(
			"Need more all-rounders for team balance: %d all-rounders, average of %.2f, economy of %.2f, and %d wickets",
			stats.AllroundersCount, stats.AvgAverageAllrounders, stats.AvgEconomyAllrounders, stats.TotalWicketsAllrounders))
	}

	// Wicketkeepers.
	switch {
	case stats.WicketkeepersCount >= 3 && stats.AvgAverageWicketkeepers >= 30 && stats.AvgStrikeRateWicketkeepers >= 130:
		score += 10
		strengths = append(strengths, keeperLine(stats))
	case stats.WicketkeepersCount >= 2 && stats.AvgAverageWicketkeepers >= 15 && stats.AvgStrikeRateWicketkeepers >= 100:
		score += 5
		strengths = append(strengths, keeperLine(stats))
	default:
		weaknesses = append(weaknesses, fmt.Sprintf(
			"Missing specialist wicketkeepers or wicketkeeper stats need improvement: average of %.2f and strike rate of %.2f",
			stats.AvgAverageWicketkeepers, stats.AvgStrikeRateWicketkeepers))
	}

	// Squad composition. Each met target scores independently; unmet targets
	// collapse into a single weakness.
	var missing []string
	if stats.BatsmenCount >= 5 {
		score += 5
		strengths = append(strengths, fmt.Sprintf("Strong batting lineup with %d batsmen", stats.BatsmenCount))
	} else {
		missing = append(missing, fmt.Sprintf("%d of 5 batsmen", stats.BatsmenCount))
	}
	if stats.BowlersCount >= 5 {
		score += 5
		strengths = append(strengths, fmt.Sprintf("Well-rounded bowling attack with %d bowlers", stats.BowlersCount))
	} else {
		missing = append(missing, fmt.Sprintf("%d of 5 bowlers", stats.BowlersCount))
	}
	if stats.WicketkeepersCount >= 3 {
		score += 5
		strengths = append(strengths, fmt.Sprintf("Has %d dedicated wicketkeeper(s)", stats.WicketkeepersCount))
	} else {
		missing = append(missing, fmt.Sprintf("%d of 3 wicketkeepers", stats.WicketkeepersCount))
	}
	if stats.AllroundersCount >= 5 {
		score += 5
		strengths = append(strengths, fmt.Sprintf("Good balance with %d all-rounders", stats.AllroundersCount))
	} else {
		missing = append(missing, fmt.Sprintf("%d of 5 all-rounders", stats.AllroundersCount))
	}
	if len(missing) > 0 {
		weaknesses = append(weaknesses, "Squad composition incomplete: "+strings.Join(missing, ", "))
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}

	return model.TeamReport{
		Score:      score,
		Grade:      Grade(score),
		Strengths:  strengths,
		Weaknesses: weaknesses,
		Stats:      stats,
	}
}

// Grade maps a clamped score to its letter grade.
func Grade(score int) string {
	switch {
	case score >= 90:
		return "A+"
	case score >= 80:
		return "A"
	case score >= 70:
		return "B+"
	case score >= 60:
		return "B"
	case score >= 50:
		return "C"
	case score >= 40:
		return "C+"
	default:
		return "D"
	}
}

// Aggregate partitions the roster by category and computes counts, totals and
// per-category averages. Averages are zero for empty categories.
func Aggregate(roster []playerModel.Player) model.AggregateStats {
	var stats model.AggregateStats

	for _, p := range roster {
		stats.TotalMatches += p.Matches
		switch p.Category {
		case playerModel.CategoryBatsmen:
			stats.BatsmenCount++
			stats.TotalRunsBatsmen += p.Runs
			stats.TotalFiftiesBatsmen += p.Fifties
			stats.TotalHundredsBatsmen += p.Hundreds
			stats.AvgRunsBatsmen += float64(p.Runs)
			stats.AvgAverageBatsmen += p.Average
			stats.AvgStrikeRateBatsmen += p.StrikeRate
		case playerModel.CategoryBowlers:
			stats.BowlersCount++
			stats.TotalWicketsBowlers += p.Wickets
			stats.AvgEconomyBowlers += p.Economy
		case playerModel.CategoryWicketkeepers:
			stats.WicketkeepersCount++
			stats.TotalRunsWicketkeepers += p.Runs
			stats.TotalFiftiesWicketkeepers += p.Fifties
			stats.TotalHundredsWicketkeepers += p.Hundreds
			stats.AvgRunsWicketkeepers += float64(p.Runs)
			stats.AvgAverageWicketkeepers += p.Average
			stats.AvgStrikeRateWicketkeepers += p.StrikeRate
		case playerModel.CategoryAllrounders:
			stats.AllroundersCount++
			stats.TotalRunsAllrounders += p.Runs
			stats.TotalWicketsAllrounders += p.Wickets
			stats.TotalFiftiesAllrounders += p.Fifties
			stats.TotalHundredsAllrounders += p.Hundreds
			stats.AvgRunsAllrounders += float64(p.Runs)
			stats.AvgAverageAllrounders += p.Average
			stats.AvgStrikeRateAllrounders += p.StrikeRate
			stats.AvgEconomyAllrounders += p.Economy
		}
	}

	if n := float64(stats.BatsmenCount); n > 0 {
		stats.AvgRunsBatsmen /= n
		stats.AvgAverageBatsmen /= n
		stats.AvgStrikeRateBatsmen /= n
	}
	if n := float64(stats.BowlersCount); n > 0 {
		stats.AvgEconomyBowlers /= n
	}
	if n := float64(stats.WicketkeepersCount); n > 0 {
		stats.AvgRunsWicketkeepers /= n
		stats.AvgAverageWicketkeepers /= n
		stats.AvgStrikeRateWicketkeepers /= n
	}
	if n := float64(stats.AllroundersCount); n > 0 {
		stats.AvgRunsAllrounders /= n
		stats.AvgAverageAllrounders /= n
		stats.AvgStrikeRateAllrounders /= n
		stats.AvgEconomyAllrounders /= n
	}

	return stats
}

func battingLine(tier string, s model.AggregateStats) string {
	return fmt.Sprintf("%s batting lineup with %d batsmen, average of %.2f, strike rate of %.2f, and %d runs",
		tier, s.BatsmenCount, s.AvgAverageBatsmen, s.AvgStrikeRateBatsmen, s.TotalRunsBatsmen)
}

func bowlingLine(tier string, s model.AggregateStats) string {
	return fmt.Sprintf("%s bowling attack with %d bowlers, economy of %.2f, and %d wickets",
		tier, s.BowlersCount, s.AvgEconomyBowlers, s.TotalWicketsBowlers)
}

func allrounderLine(tier string, s model.AggregateStats) string {
	return fmt.Sprintf("%s balance with %d all-rounders, average of %.2f, economy of %.2f, and %d wickets with %.2f strike rate",
		tier, s.AllroundersCount, s.AvgAverageAllrounders, s.AvgEconomyAllrounders, s.TotalWicketsAllrounders, s.AvgStrikeRateAllrounders)
}

func keeperLine(s model.AggregateStats) string {
	return fmt.Sprintf("Has %d dedicated wicketkeeper(s) with an average of %.2f and strike rate of %.2f",
		s.WicketkeepersCount, s.AvgAverageWicketkeepers, s.AvgStrikeRateWicketkeepers)
}
