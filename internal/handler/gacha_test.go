package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/GachaLab_Go/internal/domain"
	"github.com/osse101/GachaLab_Go/internal/poker"
	"github.com/osse101/GachaLab_Go/internal/prize"
)

func TestHandleListGachaTypes(t *testing.T) {
	svc := &MockGachaService{}
	svc.On("ListAvailable", mock.Anything).Return([]domain.GachaType{
		{ID: "normal", Name: "ノーマル", DrawMode: domain.DrawModePoker, PointCost: 100, IsActive: true},
	}, nil)

	w := httptest.NewRecorder()
	HandleListGachaTypes(svc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/gacha/types", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":"normal"`)
	assert.Contains(t, w.Body.String(), `"draw_mode":"poker"`)
}

func TestHandleDraw(t *testing.T) {
	pokerResult := &domain.DrawResult{
		HistoryID:   uuid.New(),
		GachaTypeID: "normal",
		Item:        domain.GachaItem{ID: 1, Name: "シルバーメダル", Rarity: prize.SecondPrize},
		Tier:        prize.SecondPrize,
		TierLabel:   prize.SecondPrize.Label(),
		Poker: &prize.PokerOutcome{
			Hand:     poker.Flush,
			HandName: poker.HandName(poker.Flush),
		},
		PointsSpent:  100,
		BalanceAfter: 400,
	}

	tests := []struct {
		name           string
		body           interface{}
		setupMock      func(*MockGachaService)
		expectedStatus int
		expectedBody   []string
	}{
		{
			name: "poker draw",
			body: DrawRequest{UserID: "U1", GachaTypeID: "normal"},
			setupMock: func(m *MockGachaService) {
				m.On("Draw", mock.Anything, "U1", "normal").Return(pokerResult, nil)
			},
			expectedStatus: http.StatusOK,
			expectedBody:   []string{`"tier":"SECOND_PRIZE"`, `"tier_label":"2等"`, `"hand_rank":"flush"`, `"balance_after":400`},
		},
		{
			name:           "missing gacha type",
			body:           DrawRequest{UserID: "U1"},
			setupMock:      func(m *MockGachaService) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{`"gacha_type_id":"This field is required"`},
		},
		{
			name: "insufficient points",
			body: DrawRequest{UserID: "U1", GachaTypeID: "normal"},
			setupMock: func(m *MockGachaService) {
				m.On("Draw", mock.Anything, "U1", "normal").Return(nil, domain.ErrInsufficientPoints)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{ErrMsgInsufficientPointsErr},
		},
		{
			name: "inactive gacha",
			body: DrawRequest{UserID: "U1", GachaTypeID: "old"},
			setupMock: func(m *MockGachaService) {
				m.On("Draw", mock.Anything, "U1", "old").Return(nil, domain.ErrGachaTypeInactive)
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   []string{ErrMsgGachaTypeInactiveError},
		},
		{
			name: "unknown gacha",
			body: DrawRequest{UserID: "U1", GachaTypeID: "nope"},
			setupMock: func(m *MockGachaService) {
				m.On("Draw", mock.Anything, "U1", "nope").Return(nil, domain.ErrGachaTypeNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   []string{ErrMsgGachaTypeNotFoundError},
		},
		{
			name: "empty prize pool",
			body: DrawRequest{UserID: "U1", GachaTypeID: "normal"},
			setupMock: func(m *MockGachaService) {
				m.On("Draw", mock.Anything, "U1", "normal").Return(nil, prize.ErrNoMatchingItem)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   []string{ErrMsgNoMatchingItemError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &MockGachaService{}
			tt.setupMock(svc)

			w := httptest.NewRecorder()
			HandleDraw(svc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/gacha/draw", tt.body))

			assert.Equal(t, tt.expectedStatus, w.Code)
			for _, want := range tt.expectedBody {
				assert.Contains(t, w.Body.String(), want)
			}
			svc.AssertExpectations(t)
		})
	}
}

func TestHandleSimulate(t *testing.T) {
	t.Run("default iterations pass through as zero", func(t *testing.T) {
		svc := &MockGachaService{}
		svc.On("Simulate", mock.Anything, "premium", 0).Return(&domain.GachaSimulation{
			GachaTypeID: "premium",
			DrawMode:    domain.DrawModeWeighted,
			Weighted:    prize.SimulationResult{Iterations: 10000},
		}, nil)

		w := httptest.NewRecorder()
		HandleSimulate(svc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/admin/simulator",
			SimulateRequest{GachaTypeID: "premium"}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"iterations":10000`)
	})

	t.Run("iteration bounds are left to the service", func(t *testing.T) {
		for _, n := range []int{99, 1000001} {
			svc := &MockGachaService{}
			svc.On("Simulate", mock.Anything, "premium", n).
				Return(nil, fmt.Errorf("%w: iterations out of range", domain.ErrInvalidInput))
			w := httptest.NewRecorder()
			HandleSimulate(svc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/admin/simulator",
				SimulateRequest{GachaTypeID: "premium", Iterations: n}))

			assert.Equal(t, http.StatusBadRequest, w.Code, "iterations=%d", n)
			svc.AssertExpectations(t)
		}
	})

	t.Run("negative iterations rejected before the service", func(t *testing.T) {
		svc := &MockGachaService{}
		w := httptest.NewRecorder()
		HandleSimulate(svc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/admin/simulator",
			SimulateRequest{GachaTypeID: "premium", Iterations: -1}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "Simulate")
	})

	t.Run("zero total weight is a client error", func(t *testing.T) {
		svc := &MockGachaService{}
		svc.On("Simulate", mock.Anything, "empty", 1000).Return(nil, domain.ErrZeroTotalWeight)

		w := httptest.NewRecorder()
		HandleSimulate(svc).ServeHTTP(w, newJSONRequest(t, http.MethodPost, "/api/v1/admin/simulator",
			SimulateRequest{GachaTypeID: "empty", Iterations: 1000}))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgZeroTotalWeightError)
	})
}

func TestHandleClearGachaCache(t *testing.T) {
	svc := &MockGachaService{}
	svc.On("InvalidateGachaType", mock.Anything, "").Return()

	w := httptest.NewRecorder()
	HandleClearGachaCache(svc).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/cache/clear", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
