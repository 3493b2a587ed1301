package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/life-tools/life-atlas/pkg/models/api"
	"github.com/life-tools/life-atlas/pkg/models/domain"
	"github.com/life-tools/life-atlas/pkg/services/command"
)

type mockInsights struct {
	mock.Mock
}

func (m *mockInsights) GetAnalysis(ctx context.Context, module domain.Module) (*domain.Analysis, error) {
	args := m.Called(ctx, module)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Analysis), args.Error(1)
}

func (m *mockInsights) RefreshAnalysis(ctx context.Context, module domain.Module) (domain.Analysis, error) {
	args := m.Called(ctx, module)
	return args.Get(0).(domain.Analysis), args.Error(1)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) SubmitUtterance(ctx context.Context, text string) (command.DispatchResult, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(command.DispatchResult), args.Error(1)
}

func (m *mockDispatcher) SubmitClarificationAnswer(ctx context.Context, sessionID, answer string) (command.DispatchResult, error) {
	args := m.Called(ctx, sessionID, answer)
	return args.Get(0).(command.DispatchResult), args.Error(1)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	insights := new(mockInsights)
	dispatcher := new(mockDispatcher)

	webAPI := NewWebAPI(logger, Config{
		Addr:            ":8080",
		ShutdownTimeout: 10 * time.Second,
		Dependencies: Dependencies{
			Insights:   insights,
			Dispatcher: dispatcher,
		},
	})
	testServer := httptest.NewServer(webAPI.router)
	defer testServer.Close()

	score := 82
	analysis := domain.Analysis{
		Module:      domain.ModuleFinance,
		Score:       &score,
		Sentiment:   domain.SentimentPositive,
		Title:       "Finances on track",
		Content:     "Spending stayed within budget this week.",
		LastUpdated: time.Date(2025, 3, 12, 9, 0, 0, 0, time.UTC),
	}
	executed := domain.Succeeded("Recorded $45.00 for Dining on 2025-03-12.")

	insights.On("GetAnalysis", mock.Anything, domain.ModuleFinance).Return(&analysis, nil)
	insights.On("RefreshAnalysis", mock.Anything, domain.ModuleFinance).Return(analysis, nil)
	dispatcher.On("SubmitUtterance", mock.Anything, "spent 45 on lunch today").Return(command.DispatchResult{
		Outcome: domain.ParseOutcome{Status: domain.OutcomeReady},
		Result:  &executed,
	}, nil)
	dispatcher.On("SubmitClarificationAnswer", mock.Anything, "sess-1", "30").Return(command.DispatchResult{
		Outcome: domain.ParseOutcome{
			Status:   domain.OutcomeNeedsClarification,
			Question: "Which category is this for?",
			Slot:     "category",
		},
		SessionID: "sess-1",
	}, nil)

	t.Run("GET /api/v1/insights", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/insights")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var modules []api.Module
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&modules))
		assert.Len(t, modules, 6)
	})

	t.Run("GET /api/v1/insights/{module}", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/insights/finance")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body api.Analysis
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "finance", body.Module)
		assert.Equal(t, 82, *body.Score)
	})

	t.Run("GET unknown module is 404", func(t *testing.T) {
		resp, err := http.Get(testServer.URL + "/api/v1/insights/astrology")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("POST /api/v1/insights/{module}/refresh", func(t *testing.T) {
		resp, err := http.Post(testServer.URL+"/api/v1/insights/finance/refresh", "application/json", nil)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body api.Analysis
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "POSITIVE", body.Sentiment)
	})

	t.Run("POST /api/v1/commands/utterance", func(t *testing.T) {
		payload := `{"text":"spent 45 on lunch today"}`
		resp, err := http.Post(testServer.URL+"/api/v1/commands/utterance", "application/json", strings.NewReader(payload))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body api.DispatchResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "executed", body.Status)
		require.NotNil(t, body.Result)
		assert.True(t, body.Result.OK)
	})

	t.Run("POST /api/v1/commands/clarify", func(t *testing.T) {
		payload := `{"session_id":"sess-1","answer":"30"}`
		resp, err := http.Post(testServer.URL+"/api/v1/commands/clarify", "application/json", strings.NewReader(payload))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var body api.DispatchResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "needs_clarification", body.Status)
		assert.Equal(t, "sess-1", body.SessionID)
		assert.Equal(t, "category", body.Slot)
	})
}
