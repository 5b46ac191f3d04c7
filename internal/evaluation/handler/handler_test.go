package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cricbid/auction/internal/evaluation/model"
	"github.com/cricbid/auction/internal/evaluation/service"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) EvaluateAll(ctx context.Context) (*model.EvaluationResponse, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.EvaluationResponse), args.Error(1)
}

var _ service.Service = (*mockService)(nil)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestHandler_EvaluateAll(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/evaluation", h.EvaluateAll)

		resp := &model.EvaluationResponse{
			Evaluations: []model.TeamReport{
				{TeamID: 1, TeamName: "CSK", Score: 30, Grade: "D"},
			},
			Total: 1,
		}
		mockSvc.On("EvaluateAll", mock.Anything).Return(resp, nil)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/evaluation", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var body model.EvaluationResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 1, body.Total)
		assert.Equal(t, "CSK", body.Evaluations[0].TeamName)
	})

	t.Run("internal error", func(t *testing.T) {
		mockSvc := new(mockService)
		h := New(mockSvc, zap.NewNop().Sugar())
		router := setupRouter()
		router.GET("/evaluation", h.EvaluateAll)

		mockSvc.On("EvaluateAll", mock.Anything).Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/evaluation", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
