package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Nischal373/PAILA/internal/model"
	"github.com/Nischal373/PAILA/internal/repository"
	"github.com/Nischal373/PAILA/internal/service"
)

const testReportID = "550e8400-e29b-41d4-a716-446655440000"

type memVoteStore struct {
	reports map[string]*model.Report
	voted   map[string]bool
}

func newMemVoteStore(reportIDs ...string) *memVoteStore {
	m := &memVoteStore{
		reports: make(map[string]*model.Report),
		voted:   make(map[string]bool),
	}
	for _, id := range reportIDs {
		m.reports[id] = &model.Report{ID: id, Status: model.StatusReported}
	}
	return m
}

func (m *memVoteStore) CastVote(_ context.Context, reportID, voterID string, direction model.VoteDirection) (*model.Report, error) {
	rep, ok := m.reports[reportID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	key := reportID + "|" + voterID
	if m.voted[key] {
		return nil, repository.ErrDuplicateVote
	}
	m.voted[key] = true
	if direction == model.VoteUp {
		rep.Upvotes++
	} else {
		rep.Downvotes++
	}
	cp := *rep
	return &cp, nil
}

func newVoteTestApp(store *memVoteStore) *fiber.App {
	svc := service.NewVoteService(store, nil, zerolog.Nop())
	h := NewVoteHandler(svc, false)

	app := fiber.New()
	app.Post("/api/reports/:id/vote", h.Cast)
	return app
}

func voterCookie(resp *http.Response) *http.Cookie {
	for _, ck := range resp.Cookies() {
		if ck.Name == VoterCookieName {
			return ck
		}
	}
	return nil
}

func castVote(t *testing.T, app *fiber.App, reportID, direction string, cookie *http.Cookie) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/reports/"+reportID+"/vote",
		strings.NewReader(`{"direction":"`+direction+`"}`))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestCastVoteSetsVoterCookieAndCounts(t *testing.T) {
	store := newMemVoteStore(testReportID)
	app := newVoteTestApp(store)

	resp := castVote(t, app, testReportID, "up", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	ck := voterCookie(resp)
	require.NotNil(t, ck, "first vote must establish the voter identity")
	assert.NotEmpty(t, ck.Value)
	assert.True(t, ck.HttpOnly)

	var body struct {
		OK     bool         `json:"ok"`
		Report model.Report `json:"report"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.OK)
	assert.Equal(t, 1, body.Report.Upvotes)
	assert.Equal(t, 0, body.Report.Downvotes)
}

func TestCastVoteDuplicateConflict(t *testing.T) {
	store := newMemVoteStore(testReportID)
	app := newVoteTestApp(store)

	first := castVote(t, app, testReportID, "up", nil)
	require.Equal(t, http.StatusOK, first.StatusCode)
	ck := voterCookie(first)
	require.NotNil(t, ck)

	// Same voter again, opposite direction — still a duplicate.
	second := castVote(t, app, testReportID, "down", ck)
	assert.Equal(t, http.StatusConflict, second.StatusCode)

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.NewDecoder(second.Body).Decode(&body))
	assert.Equal(t, "DUPLICATE_VOTE", body.Error.Code)

	// The rejected vote must not move the counters.
	assert.Equal(t, 1, store.reports[testReportID].Upvotes)
	assert.Equal(t, 0, store.reports[testReportID].Downvotes)

	// The cookie is re-issued on the conflict path too.
	assert.NotNil(t, voterCookie(second))
}

func TestCastVoteDistinctVoters(t *testing.T) {
	store := newMemVoteStore(testReportID)
	app := newVoteTestApp(store)

	for i := 0; i < 3; i++ {
		resp := castVote(t, app, testReportID, "up", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}
	assert.Equal(t, 3, store.reports[testReportID].Upvotes)
}

func TestCastVoteInvalidDirection(t *testing.T) {
	app := newVoteTestApp(newMemVoteStore(testReportID))

	resp := castVote(t, app, testReportID, "sideways", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCastVoteUnknownReport(t *testing.T) {
	app := newVoteTestApp(newMemVoteStore())

	resp := castVote(t, app, testReportID, "up", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	// Even a miss establishes the voter identity.
	assert.NotNil(t, voterCookie(resp))
}

func TestCastVoteMalformedReportID(t *testing.T) {
	app := newVoteTestApp(newMemVoteStore())

	resp := castVote(t, app, "not-a-uuid", "up", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
