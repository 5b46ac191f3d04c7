package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	playerModel "github.com/cricbid/auction/internal/player/model"
	teamModel "github.com/cricbid/auction/internal/team/model"
	"github.com/cricbid/auction/internal/team/repository"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	// Define test models
	type Team struct {
		ID        int64     `gorm:"primaryKey;column:id"`
		Name      string    `gorm:"column:name;not null;uniqueIndex"`
		OwnerName string    `gorm:"column:owner_name;not null;default:''"`
		Purse     float64   `gorm:"column:purse;not null;default:100"`
		CreatedAt time.Time `gorm:"column:created_at"`
		UpdatedAt time.Time `gorm:"column:updated_at"`
	}
	type Player struct {
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

	err = db.AutoMigrate(&Team{}, &Player{})
	require.NoError(t, err)

	return db
}

func newService(db *gorm.DB) Service {
	return New(repository.New(db), db, zap.NewNop().Sugar())
}

func sellPlayer(db *gorm.DB, teamID int64, name, category string, number int, price float64) {
	db.Exec(`INSERT INTO players (name, category, player_number, base_price, selling_price, status, team_id)
		VALUES (?, ?, ?, 2, ?, 'sold', ?)`, name, category, number, price, teamID)
}

func TestService_AddTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("blank name", func(t *testing.T) {
		svc := newService(setupTestDB(t))

		resp, err := svc.AddTeam(ctx, &teamModel.AddTeamRequest{Name: "  "})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, teamModel.ErrInvalidTeamName)
	})

	t.Run("starts with the default purse", func(t *testing.T) {
		svc := newService(setupTestDB(t))

		resp, err := svc.AddTeam(ctx, &teamModel.AddTeamRequest{Name: "CSK", OwnerName: "N. Srinivasan"})

		require.NoError(t, err)
		assert.True(t, resp.Purse.Equal(teamModel.DefaultPurse))
		assert.Equal(t, "N. Srinivasan", resp.OwnerName)
	})

	t.Run("duplicate name is rejected case-insensitively", func(t *testing.T) {
		svc := newService(setupTestDB(t))
		_, err := svc.AddTeam(ctx, &teamModel.AddTeamRequest{Name: "CSK"})
		require.NoError(t, err)

		resp, err := svc.AddTeam(ctx, &teamModel.AddTeamRequest{Name: "csk"})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, teamModel.ErrTeamExists)
	})
}

func TestService_GetTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		svc := newService(setupTestDB(t))

		resp, err := svc.GetTeam(ctx, 42)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})

	t.Run("includes roster with counts and spend", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newService(db)
		created, err := svc.AddTeam(ctx, &teamModel.AddTeamRequest{Name: "CSK"})
		require.NoError(t, err)

		sellPlayer(db, created.ID, "Dhoni", playerModel.CategoryWicketkeepers, 201, 20)
		sellPlayer(db, created.ID, "Jadeja", playerModel.CategoryAllrounders, 301, 16)

		resp, err := svc.GetTeam(ctx, created.ID)

		require.NoError(t, err)
		assert.Equal(t, 1, resp.Counts[playerModel.CategoryWicketkeepers])
		assert.Equal(t, 1, resp.Counts[playerModel.CategoryAllrounders])
		assert.Equal(t, 0, resp.Counts[playerModel.CategoryBatsmen])
		assert.True(t, resp.Spent["overall"].Equal(decimal.NewFromInt(36)))
		assert.True(t, resp.Spent[playerModel.CategoryWicketkeepers].Equal(decimal.NewFromInt(20)))
	})
}

func TestService_ListTeams(t *testing.T) {
	ctx := context.Background()
	svc := newService(setupTestDB(t))
	_, err := svc.AddTeam(ctx, &teamModel.AddTeamRequest{Name: "MI"})
	require.NoError(t, err)
	_, err = svc.AddTeam(ctx, &teamModel.AddTeamRequest{Name: "CSK"})
	require.NoError(t, err)

	resp, err := svc.ListTeams(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
	assert.Equal(t, "CSK", resp.Teams[0].Name)
	assert.Equal(t, "MI", resp.Teams[1].Name)
}

func TestService_UpdateTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("rename", func(t *testing.T) {
		svc := newService(setupTestDB(t))
		created, err := svc.AddTeam(ctx, &teamModel.AddTeamRequest{Name: "CSK"})
		require.NoError(t, err)

		resp, err := svc.UpdateTeam(ctx, &teamModel.UpdateTeamRequest{
			TeamID: created.ID, Name: "Chennai Super Kings",
		})

		require.NoError(t, err)
		assert.Equal(t, "Chennai Super Kings", resp.Name)
	})

	t.Run("rename onto its own name is allowed", func(t *testing.T) {
		svc := newService(setupTestDB(t))
		created, err := svc.AddTeam(ctx, &teamModel.AddTeamRequest{Name: "CSK"})
		require.NoError(t, err)

		resp, err := svc.UpdateTeam(ctx, &teamModel.UpdateTeamRequest{
			TeamID: created.ID, Name: "csk",
		})

		require.NoError(t, err)
		assert.Equal(t, "csk", resp.Name)
	})

	t.Run("rename collides with another team", func(t *testing.T) {
		svc := newService(setupTestDB(t))
		_, err := svc.AddTeam(ctx, &teamModel.AddTeamRequest{Name: "MI"})
		require.NoError(t, err)
		created, err := svc.AddTeam(ctx, &teamModel.AddTeamRequest{Name: "CSK"})
		require.NoError(t, err)

		resp, err := svc.UpdateTeam(ctx, &teamModel.UpdateTeamRequest{
			TeamID: created.ID, Name: "mi",
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, teamModel.ErrTeamExists)
	})
}

func TestService_UpdatePurse(t *testing.T) {
	ctx := context.Background()

	t.Run("negative amount", func(t *testing.T) {
		svc := newService(setupTestDB(t))

		resp, err := svc.UpdatePurse(ctx, &teamModel.PurseRequest{
			TeamID: 1, Amount: decimal.NewFromInt(-5),
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, teamModel.ErrNegativeAmount)
	})

	t.Run("sets the purse", func(t *testing.T) {
		svc := newService(setupTestDB(t))
		created, err := svc.AddTeam(ctx, &teamModel.AddTeamRequest{Name: "CSK"})
		require.NoError(t, err)

		resp, err := svc.UpdatePurse(ctx, &teamModel.PurseRequest{
			TeamID: created.ID, Amount: decimal.NewFromInt(120),
		})

		require.NoError(t, err)
		assert.True(t, resp.Purse.Equal(decimal.NewFromInt(120)))
	})
}

func TestService_ResetTeam(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	svc := newService(db)
	created, err := svc.AddTeam(ctx, &teamModel.AddTeamRequest{Name: "CSK"})
	require.NoError(t, err)

	sellPlayer(db, created.ID, "Dhoni", playerModel.CategoryWicketkeepers, 201, 20)
	db.Exec("UPDATE teams SET purse = 80 WHERE id = ?", created.ID)

	resp, err := svc.ResetTeam(ctx, created.ID)

	require.NoError(t, err)
	assert.True(t, resp.Purse.Equal(teamModel.DefaultPurse))

	var status string
	db.Raw("SELECT status FROM players WHERE name = 'Dhoni'").Scan(&status)
	assert.Equal(t, playerModel.StatusUntouched, status)
}

func TestService_DeleteTeam(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		svc := newService(setupTestDB(t))

		err := svc.DeleteTeam(ctx, 42)

		assert.ErrorIs(t, err, teamModel.ErrTeamNotFound)
	})

	t.Run("roster survives the team", func(t *testing.T) {
		db := setupTestDB(t)
		svc := newService(db)
		created, err := svc.AddTeam(ctx, &teamModel.AddTeamRequest{Name: "CSK"})
		require.NoError(t, err)

		sellPlayer(db, created.ID, "Dhoni", playerModel.CategoryWicketkeepers, 201, 20)

		err = svc.DeleteTeam(ctx, created.ID)

		require.NoError(t, err)
		var teamCount, playerCount int64
		db.Raw("SELECT COUNT(*) FROM teams").Scan(&teamCount)
		db.Raw("SELECT COUNT(*) FROM players").Scan(&playerCount)
		assert.Zero(t, teamCount)
		assert.EqualValues(t, 1, playerCount)

		var status string
		db.Raw("SELECT status FROM players WHERE name = 'Dhoni'").Scan(&status)
		assert.Equal(t, playerModel.StatusUntouched, status)
	})
}
