package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"catermatch/internal/domain/entity"
	domainerrors "catermatch/internal/domain/errors"
	"catermatch/internal/errors"
	mockUsecase "catermatch/internal/mocks/usecase"
	"catermatch/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func setupMatchHandler(t *testing.T) (*echo.Echo, *mockUsecase.MockMatchingUsecase) {
	uc := mockUsecase.NewMockMatchingUsecase(t)
	h := NewMatchHandler(MatchHandlerParams{MatchingUC: uc, Logger: discardLogger()})

	e := newTestEcho()
	e.POST("/api/v1/requests/:id/match", h.MatchRequest)
	e.GET("/api/v1/requests/:id/matches", h.ListMatches)

	return e, uc
}

func TestMatchHandler_MatchRequest(t *testing.T) {
	e, uc := setupMatchHandler(t)
	id := uuid.New()
	catererID := uuid.New()

	uc.EXPECT().MatchRequest(mock.Anything, id).Return(&usecase.MatchOutcome{
		RequestID:    id,
		MatchCount:   1,
		TotalBudget:  54000,
		Tier:         entity.TierBusiness,
		ResolvedCity: "Johannesburg",
		Matches: []*entity.Match{
			{ID: uuid.New(), RequestID: id, CatererID: catererID, OverallScore: 0.93, Rank: 1},
		},
	}, nil)

	rec := serve(e, http.MethodPost, "/api/v1/requests/"+id.String()+"/match", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var outcome usecase.MatchOutcome
	require.NoError(t, json.Unmarshal(env.Data, &outcome))
	assert.Equal(t, 1, outcome.MatchCount)
	assert.Equal(t, entity.TierBusiness, outcome.Tier)
	require.Len(t, outcome.Matches, 1)
	assert.Equal(t, catererID, outcome.Matches[0].CatererID)
}

func TestMatchHandler_MatchRequest_Async(t *testing.T) {
	e, uc := setupMatchHandler(t)
	id := uuid.New()

	uc.EXPECT().RequestMatchingAsync(mock.Anything, id).Return(nil)

	rec := serve(e, http.MethodPost, "/api/v1/requests/"+id.String()+"/match?async=true", "")

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), `"queued"`)
	uc.AssertNotCalled(t, "MatchRequest", mock.Anything, mock.Anything)
}

func TestMatchHandler_MatchRequest_Errors(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{name: "unknown request", err: domainerrors.ErrRequestNotFound, wantCode: http.StatusNotFound, wantBody: "REQUEST_NOT_FOUND"},
		{name: "terminal request", err: domainerrors.ErrRequestNotMatchable.WithDetails("status booked"), wantCode: http.StatusConflict, wantBody: "status booked"},
		{name: "bad budget", err: domainerrors.ErrInvalidBudget, wantCode: http.StatusUnprocessableEntity, wantBody: "INVALID_BUDGET"},
		{name: "persistence failure", err: errors.Wrap(domainerrors.ErrMatchPersistenceFailed, "tx aborted"), wantCode: http.StatusInternalServerError, wantBody: "MATCH_PERSISTENCE_FAILED"},
		{name: "unexpected", err: errors.New("boom"), wantCode: http.StatusInternalServerError, wantBody: "INTERNAL_ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, uc := setupMatchHandler(t)
			id := uuid.New()

			uc.EXPECT().MatchRequest(mock.Anything, id).Return(nil, tt.err)

			rec := serve(e, http.MethodPost, "/api/v1/requests/"+id.String()+"/match", "")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.NotContains(t, rec.Body.String(), "tx aborted")
		})
	}
}

func TestMatchHandler_MatchRequest_BadInput(t *testing.T) {
	e, _ := setupMatchHandler(t)

	rec := serve(e, http.MethodPost, "/api/v1/requests/not-a-uuid/match", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(e, http.MethodPost, "/api/v1/requests/"+uuid.NewString()+"/match?async=maybe", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMatchHandler_ListMatches(t *testing.T) {
	e, uc := setupMatchHandler(t)
	id := uuid.New()

	uc.EXPECT().ListMatches(mock.Anything, id).Return(nil, nil)

	rec := serve(e, http.MethodGet, "/api/v1/requests/"+id.String()+"/matches", "")

	require.Equal(t, http.StatusOK, rec.Code)
	env := decodeEnvelope(t, rec)

	var list MatchListResponse
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, id, list.RequestID)
	assert.NotNil(t, list.Matches)
	assert.Empty(t, list.Matches)
}
