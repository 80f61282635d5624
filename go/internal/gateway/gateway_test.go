package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mpetrick/draftcaddy/go/internal/advisor"
	"github.com/mpetrick/draftcaddy/go/internal/models"
)

type stubSource struct {
	result advisor.Result
	ok     bool
}

func (s stubSource) Latest() (advisor.Result, bool) { return s.result, s.ok }

func newTestHandler(src AdvisorSource, wake func()) (*Handler, *ConnectionManager) {
	cm := NewConnectionManager(DefaultConnectionConfig())
	return NewHandler(src, cm, wake), cm
}

func TestHandleTips(t *testing.T) {
	src := stubSource{ok: true, result: advisor.Result{
		Tips:          []models.Tip{{ID: "a", Type: models.TipValue}},
		CurrentPick:   7,
		Round:         1,
		Distance:      3,
		DistanceKnown: true,
	}}
	h, _ := newTestHandler(src, nil)

	rec := httptest.NewRecorder()
	h.HandleTips(rec, httptest.NewRequest(http.MethodGet, "/api/tips", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Tips        []models.Tip `json:"tips"`
		CurrentPick int          `json:"current_pick"`
		Distance    int          `json:"distance"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Tips, 1)
	assert.Equal(t, 7, body.CurrentPick)
	assert.Equal(t, 3, body.Distance)
}

func TestHandleTipsBeforeFirstRun(t *testing.T) {
	h, _ := newTestHandler(stubSource{}, nil)

	rec := httptest.NewRecorder()
	h.HandleTips(rec, httptest.NewRequest(http.MethodGet, "/api/tips", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"tips":[]`)
}

func TestHandleScoresIncomplete(t *testing.T) {
	src := stubSource{ok: true, result: advisor.Result{Complete: false}}
	h, _ := newTestHandler(src, nil)

	rec := httptest.NewRecorder()
	h.HandleScores(rec, httptest.NewRequest(http.MethodGet, "/api/scores", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"complete":false`)
}

func TestHandleScoresComplete(t *testing.T) {
	src := stubSource{ok: true, result: advisor.Result{
		Complete: true,
		Scores:   []models.TeamScore{{Rank: 1, Owner: "user:1", Total: 88}},
	}}
	h, _ := newTestHandler(src, nil)

	rec := httptest.NewRecorder()
	h.HandleScores(rec, httptest.NewRequest(http.MethodGet, "/api/scores", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"total":88`)
}

func TestHandleSync(t *testing.T) {
	woken := false
	h, _ := newTestHandler(stubSource{}, func() { woken = true })

	rec := httptest.NewRecorder()
	h.HandleSync(rec, httptest.NewRequest(http.MethodPost, "/api/sync", nil))
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.True(t, woken)

	rec = httptest.NewRecorder()
	h.HandleSync(rec, httptest.NewRequest(http.MethodGet, "/api/sync", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestHandleSyncUnavailable(t *testing.T) {
	h, _ := newTestHandler(stubSource{}, nil)

	rec := httptest.NewRecorder()
	h.HandleSync(rec, httptest.NewRequest(http.MethodPost, "/api/sync", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestEventsForResult(t *testing.T) {
	events, err := EventsForResult(advisor.Result{Tips: []models.Tip{{ID: "a"}}})
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeTipsUpdated, events[0].Type)

	events, err = EventsForResult(advisor.Result{
		Complete: true,
		Scores:   []models.TeamScore{{Rank: 1}},
	})
	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, EventTypeTipsUpdated, events[0].Type)
	assert.Equal(t, EventTypeDraftCompleted, events[1].Type)
	assert.Equal(t, EventTypeScoresReady, events[2].Type)
}

func TestBroadcastReachesClient(t *testing.T) {
	h, cm := newTestHandler(stubSource{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go cm.Start(ctx)

	mux := http.NewServeMux()
	h.RegisterRoutes(mux)
	server := httptest.NewServer(mux)
	defer server.Close()

	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer conn.Close()

	// Connection registration races the broadcast, so wait for it.
	require.Eventually(t, func() bool { return cm.ConnectionCount() == 1 }, 2*time.Second, 10*time.Millisecond)

	event, err := NewEvent(EventTypeTipsUpdated, map[string]string{"hello": "world"})
	require.NoError(t, err)
	cm.Broadcast(event)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, message, err := conn.ReadMessage()
	require.NoError(t, err)

	var got AdvisorEvent
	require.NoError(t, json.Unmarshal(message, &got))
	assert.Equal(t, EventTypeTipsUpdated, got.Type)
	assert.Equal(t, event.ID, got.ID)
}
