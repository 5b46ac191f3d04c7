//go:build integration
// +build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	auctionRouter "github.com/cricbid/auction/internal/auction/router"
	evaluationRouter "github.com/cricbid/auction/internal/evaluation/router"
	playerRouter "github.com/cricbid/auction/internal/player/router"
	teamRouter "github.com/cricbid/auction/internal/team/router"
)

type testTeam struct {
	ID        int64     `gorm:"primaryKey;column:id"`
	Name      string    `gorm:"column:name;not null;uniqueIndex"`
	OwnerName string    `gorm:"column:owner_name;not null;default:''"`
	Purse     float64   `gorm:"column:purse;not null;default:100"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (testTeam) TableName() string {
	return "teams"
}

type testPlayer struct {
	ID           int64     `gorm:"primaryKey;column:id"`
	Name         string    `gorm:"column:name;not null"`
	Category     string    `gorm:"column:category;not null"`
	PlayerNumber int       `gorm:"column:player_number;not null"`
	BasePrice    float64   `gorm:"column:base_price;not null"`
	SellingPrice *float64  `gorm:"column:selling_price"`
	Status       string    `gorm:"column:status;not null;default:untouched"`
	TeamID       *int64    `gorm:"column:team_id"`
	Matches      int       `gorm:"column:matches;not null;default:0"`
	Runs         int       `gorm:"column:runs;not null;default:0"`
	Average      float64   `gorm:"column:average;not null;default:0"`
	StrikeRate   float64   `gorm:"column:strike_rate;not null;default:0"`
	HighestScore int       `gorm:"column:highest_score;not null;default:0"`
	Fifties      int       `gorm:"column:fifties;not null;default:0"`
	Hundreds     int       `gorm:"column:hundreds;not null;default:0"`
	Wickets      int       `gorm:"column:wickets;not null;default:0"`
	Economy      float64   `gorm:"column:economy;not null;default:0"`
	BestBowling  string    `gorm:"column:best_bowling;not null;default:''"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (testPlayer) TableName() string {
	return "players"
}

func setupApp(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&testTeam{}, &testPlayer{}))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	log := zap.NewNop().Sugar()
	playerRouter.RegisterRoutes(r, db, log)
	teamRouter.RegisterRoutes(r, db, log)
	auctionRouter.RegisterRoutes(r, db, log)
	evaluationRouter.RegisterRoutes(r, db, log)
	return r, db
}

func do(t *testing.T, r *gin.Engine, method, path string, payload any) (*httptest.ResponseRecorder, map[string]json.RawMessage) {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	w := httptest.NewRecorder()
	req, err := http.NewRequest(method, path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	parsed := map[string]json.RawMessage{}
	_ = json.Unmarshal(w.Body.Bytes(), &parsed)
	return w, parsed
}

func addTeam(t *testing.T, r *gin.Engine, name string) int64 {
	t.Helper()
	w, body := do(t, r, "POST", "/teams/add", gin.H{"name": name})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var team struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body["team"], &team))
	return team.ID
}

func addPlayer(t *testing.T, r *gin.Engine, name, category string) int64 {
	t.Helper()
	w, body := do(t, r, "POST", "/players/add", gin.H{
		"name": name, "category": category, "base_price": "2",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var player struct {
		ID int64 `json:"id"`
	}
	require.NoError(t, json.Unmarshal(body["player"], &player))
	return player.ID
}

func TestAuctionFlow(t *testing.T) {
	r, _ := setupApp(t)

	teamID := addTeam(t, r, "CSK")
	playerID := addPlayer(t, r, "Ruturaj", "batsmen")

	// Sell within budget.
	w, _ := do(t, r, "POST", "/auction/sell", gin.H{
		"player_id": playerID, "team_id": teamID, "price": "20",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	// Team purse reflects the sale.
	w, _ = do(t, r, "GET", fmt.Sprintf("/teams/get?team_id=%d", teamID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var team struct {
		Purse  string         `json:"purse"`
		Counts map[string]int `json:"counts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &team))
	assert.Equal(t, "80", team.Purse)
	assert.Equal(t, 1, team.Counts["batsmen"])

	// A second sale of the same player fails.
	w, _ = do(t, r, "POST", "/auction/sell", gin.H{
		"player_id": playerID, "team_id": teamID, "price": "20",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Release refunds the purse.
	w, _ = do(t, r, "POST", "/auction/release", gin.H{
		"team_id": teamID, "player": "Ruturaj", "category": "batsmen",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = do(t, r, "GET", fmt.Sprintf("/teams/get?team_id=%d", teamID), nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &team))
	assert.Equal(t, "100", team.Purse)
	assert.Equal(t, 0, team.Counts["batsmen"])
}

func TestInsufficientPurse(t *testing.T) {
	r, _ := setupApp(t)

	teamID := addTeam(t, r, "CSK")
	playerID := addPlayer(t, r, "Ruturaj", "batsmen")

	w, _ := do(t, r, "POST", "/auction/sell", gin.H{
		"player_id": playerID, "team_id": teamID, "price": "150",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var errBody struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.Equal(t, "INSUFFICIENT_PURSE", errBody.Error.Code)

	// Player is still available.
	w, _ = do(t, r, "GET", "/players/available", nil)
	var list struct {
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 1, list.Total)
}

func TestPlayerNumbersPerCategory(t *testing.T) {
	r, _ := setupApp(t)

	addPlayer(t, r, "Bat One", "batsmen")
	addPlayer(t, r, "Bat Two", "batsmen")
	addPlayer(t, r, "Bowl One", "bowlers")
	addPlayer(t, r, "Keeper One", "wicketkeepers")
	addPlayer(t, r, "AR One", "allrounders")

	w, _ := do(t, r, "GET", "/players/list", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var list struct {
		Players map[string][]struct {
			Name         string `json:"name"`
			PlayerNumber int    `json:"player_number"`
		} `json:"players"`
		Total int `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	assert.Equal(t, 5, list.Total)
	assert.Equal(t, 1, list.Players["batsmen"][0].PlayerNumber)
	assert.Equal(t, 2, list.Players["batsmen"][1].PlayerNumber)
	assert.Equal(t, 101, list.Players["bowlers"][0].PlayerNumber)
	assert.Equal(t, 201, list.Players["wicketkeepers"][0].PlayerNumber)
	assert.Equal(t, 301, list.Players["allrounders"][0].PlayerNumber)
}

func TestResetTeamZeroesEvaluation(t *testing.T) {
	r, _ := setupApp(t)

	teamID := addTeam(t, r, "CSK")
	playerID := addPlayer(t, r, "Ruturaj", "batsmen")

	w, _ := do(t, r, "POST", "/auction/sell", gin.H{
		"player_id": playerID, "team_id": teamID, "price": "20",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w, _ = do(t, r, "POST", "/teams/reset", gin.H{"team_id": teamID})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = do(t, r, "GET", "/evaluation", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var eval struct {
		Evaluations []struct {
			TeamName   string   `json:"team_name"`
			Score      int      `json:"score"`
			Grade      string   `json:"grade"`
			Weaknesses []string `json:"weaknesses"`
		} `json:"evaluations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &eval))
	require.Len(t, eval.Evaluations, 1)
	assert.Zero(t, eval.Evaluations[0].Score)
	assert.Equal(t, "D", eval.Evaluations[0].Grade)
	assert.Len(t, eval.Evaluations[0].Weaknesses, 5)
}

func TestDeletedNumberIsReused(t *testing.T) {
	r, _ := setupApp(t)

	addPlayer(t, r, "Bat One", "batsmen")
	addPlayer(t, r, "Bat Two", "batsmen")

	w, _ := do(t, r, "POST", "/players/delete", gin.H{"name": "Bat One"})
	require.Equal(t, http.StatusOK, w.Code)

	w, body := do(t, r, "POST", "/players/add", gin.H{
		"name": "Bat Three", "category": "batsmen", "base_price": "2",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var player struct {
		PlayerNumber int `json:"player_number"`
	}
	require.NoError(t, json.Unmarshal(body["player"], &player))
	assert.Equal(t, 1, player.PlayerNumber)
}
