package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/GachaLab_Go/internal/domain"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

// MockUserService mocks user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Register(ctx context.Context, profile domain.UserProfile) (*domain.User, error) {
	args := m.Called(ctx, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) Get(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListHistories(ctx context.Context, userID string, page domain.Page) (*domain.PagedResult[domain.GachaHistory], error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PagedResult[domain.GachaHistory]), args.Error(1)
}

func (m *MockUserService) ListItems(ctx context.Context, userID string) ([]domain.GachaHistory, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GachaHistory), args.Error(1)
}

func (m *MockUserService) Stats(ctx context.Context, userID string) (*domain.UserStats, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserStats), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, search string, page domain.Page) (*domain.PagedResult[domain.UserSummary], error) {
	args := m.Called(ctx, search, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PagedResult[domain.UserSummary]), args.Error(1)
}

func (m *MockUserService) Detail(ctx context.Context, userID string) (*domain.UserDetail, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserDetail), args.Error(1)
}

// MockPointsService mocks points.Service
type MockPointsService struct {
	mock.Mock
}

func (m *MockPointsService) Balance(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

func (m *MockPointsService) CreatePurchase(ctx context.Context, userID string, amount int64, points int) (*domain.PurchaseResult, error) {
	args := m.Called(ctx, userID, amount, points)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PurchaseResult), args.Error(1)
}

func (m *MockPointsService) Confirm(ctx context.Context, userID, intentID string) (*domain.CreditResult, error) {
	args := m.Called(ctx, userID, intentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CreditResult), args.Error(1)
}

func (m *MockPointsService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	return m.Called(ctx, payload, signature).Error(0)
}

func (m *MockPointsService) AdminAdjust(ctx context.Context, userID string, delta int, reason string) (*domain.PointHistory, error) {
	args := m.Called(ctx, userID, delta, reason)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PointHistory), args.Error(1)
}

// MockGachaService mocks gacha.Service
type MockGachaService struct {
	mock.Mock
}

func (m *MockGachaService) ListAvailable(ctx context.Context) ([]domain.GachaType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GachaType), args.Error(1)
}

func (m *MockGachaService) GetGachaType(ctx context.Context, id string) (*domain.GachaType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GachaType), args.Error(1)
}

func (m *MockGachaService) Draw(ctx context.Context, userID, gachaTypeID string) (*domain.DrawResult, error) {
	args := m.Called(ctx, userID, gachaTypeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DrawResult), args.Error(1)
}

func (m *MockGachaService) Simulate(ctx context.Context, gachaTypeID string, iterations int) (*domain.GachaSimulation, error) {
	args := m.Called(ctx, gachaTypeID, iterations)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GachaSimulation), args.Error(1)
}

func (m *MockGachaService) InvalidateGachaType(ctx context.Context, id string) {
	m.Called(ctx, id)
}

// MockCatalogService mocks catalog.Service
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListGachaTypes(ctx context.Context) ([]domain.GachaType, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.GachaType), args.Error(1)
}

func (m *MockCatalogService) SaveGachaType(ctx context.Context, g *domain.GachaType) (*domain.GachaType, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GachaType), args.Error(1)
}

func (m *MockCatalogService) ListItems(ctx context.Context, filter domain.ItemFilter) (*domain.PagedResult[domain.GachaItem], error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PagedResult[domain.GachaItem]), args.Error(1)
}

func (m *MockCatalogService) GetItem(ctx context.Context, id int64) (*domain.GachaItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GachaItem), args.Error(1)
}

func (m *MockCatalogService) CreateItem(ctx context.Context, item *domain.GachaItem) (*domain.GachaItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GachaItem), args.Error(1)
}

func (m *MockCatalogService) UpdateItem(ctx context.Context, item *domain.GachaItem) (*domain.GachaItem, error) {
	args := m.Called(ctx, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GachaItem), args.Error(1)
}

func (m *MockCatalogService) DeleteItem(ctx context.Context, id int64) (*domain.GachaItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GachaItem), args.Error(1)
}

// MockStatsService mocks stats.Service
type MockStatsService struct {
	mock.Mock
}

func (m *MockStatsService) GetStatistics(ctx context.Context, period domain.StatsPeriod, start, end *time.Time) (*domain.Statistics, error) {
	args := m.Called(ctx, period, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statistics), args.Error(1)
}

// MockLineWebhook mocks LineWebhook
type MockLineWebhook struct {
	mock.Mock
}

func (m *MockLineWebhook) HandleWebhook(r *http.Request) (int, error) {
	args := m.Called(r)
	return args.Int(0), args.Error(1)
}

// newJSONRequest encodes body as the request payload
func newJSONRequest(t *testing.T, method, target string, body interface{}) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			require.NoError(t, json.NewEncoder(&buf).Encode(body))
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withURLParams attaches chi route parameters to req
func withURLParams(req *http.Request, kv ...string) *http.Request {
	rctx := chi.NewRouteContext()
	for i := 0; i+1 < len(kv); i += 2 {
		rctx.URLParams.Add(kv[i], kv[i+1])
	}
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func strPtr(s string) *string { return &s }
