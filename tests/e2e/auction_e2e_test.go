//go:build e2e
// +build e2e

package e2e

import (
	"fmt"
	"net/http"
)

func (s *E2ETestSuite) addTeam(name string) int64 {
	w := s.do("POST", "/teams/add", map[string]any{"name": name})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Team struct {
			ID int64 `json:"id"`
		} `json:"team"`
	}
	s.decode(w, &body)
	return body.Team.ID
}

func (s *E2ETestSuite) addPlayer(name, category string) int64 {
	w := s.do("POST", "/players/add", map[string]any{
		"name": name, "category": category, "base_price": "2",
	})
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Player struct {
			ID int64 `json:"id"`
		} `json:"player"`
	}
	s.decode(w, &body)
	return body.Player.ID
}

func (s *E2ETestSuite) TestSellReleaseCycle() {
	teamID := s.addTeam("Chennai Super Kings")
	playerID := s.addPlayer("Ruturaj Gaikwad", "batsmen")

	w := s.do("POST", "/auction/sell", map[string]any{
		"player_id": playerID, "team_id": teamID, "price": "20",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var sale struct {
		Sale struct {
			Status    string `json:"status"`
			TeamPurse string `json:"team_purse"`
		} `json:"sale"`
	}
	s.decode(w, &sale)
	s.Equal("sold", sale.Sale.Status)
	s.Equal("80", sale.Sale.TeamPurse)

	w = s.do("POST", "/auction/release", map[string]any{
		"team_id": teamID, "player": "Ruturaj Gaikwad", "category": "batsmen",
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	s.decode(w, &sale)
	s.Equal("untouched", sale.Sale.Status)
	s.Equal("100", sale.Sale.TeamPurse)
}

func (s *E2ETestSuite) TestDuplicateTeamNameRejected() {
	s.addTeam("Mumbai Indians")

	w := s.do("POST", "/teams/add", map[string]any{"name": "mumbai indians"})
	s.Equal(http.StatusBadRequest, w.Code)
}

func (s *E2ETestSuite) TestCategoryNumberUniquenessEnforced() {
	// The unique index on (category, player_number) is part of the schema,
	// not just application logic.
	s.addPlayer("Bat One", "batsmen")
	err := s.db.Exec(`INSERT INTO players (name, category, player_number, base_price)
		VALUES ('Clone', 'batsmen', 1, 2)`).Error
	s.Error(err)
}

func (s *E2ETestSuite) TestEvaluationOrdersTeamsByName() {
	s.addTeam("Mumbai Indians")
	s.addTeam("Chennai Super Kings")

	w := s.do("GET", "/evaluation", nil)
	s.Require().Equal(http.StatusOK, w.Code)

	var eval struct {
		Evaluations []struct {
			TeamName string `json:"team_name"`
		} `json:"evaluations"`
		Total int `json:"total"`
	}
	s.decode(w, &eval)
	s.Equal(2, eval.Total)
	s.Equal("Chennai Super Kings", eval.Evaluations[0].TeamName)
	s.Equal("Mumbai Indians", eval.Evaluations[1].TeamName)
}

func (s *E2ETestSuite) TestDeleteTeamReleasesRoster() {
	teamID := s.addTeam("Chennai Super Kings")
	playerID := s.addPlayer("MS Dhoni", "wicketkeepers")

	w := s.do("POST", "/auction/sell", map[string]any{
		"player_id": playerID, "team_id": teamID, "price": "15",
	})
	s.Require().Equal(http.StatusOK, w.Code)

	w = s.do("POST", "/teams/delete", map[string]any{"team_id": teamID})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	var status string
	s.db.Raw("SELECT status FROM players WHERE id = ?", playerID).Scan(&status)
	s.Equal("untouched", status)

	w = s.do("GET", fmt.Sprintf("/teams/get?team_id=%d", teamID), nil)
	s.Equal(http.StatusNotFound, w.Code)
}

func (s *E2ETestSuite) TestStatsUpdateByNameAndCategory() {
	s.addPlayer("Jasprit Bumrah", "bowlers")

	w := s.do("POST", "/players/stats/update", map[string]any{
		"name": "Jasprit Bumrah", "category": "bowlers",
		"stats": map[string]any{"matches": 120, "wickets": 145, "economy": 7.4},
	})
	s.Require().Equal(http.StatusOK, w.Code, w.Body.String())

	w = s.do("POST", "/players/stats/update", map[string]any{
		"name": "Jasprit Bumrah", "category": "batsmen",
		"stats": map[string]any{"runs": 100},
	})
	s.Equal(http.StatusBadRequest, w.Code)
}
