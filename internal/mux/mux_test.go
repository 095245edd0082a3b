package mux

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saloon-blackjack-server/pkg/blackjack"
	"saloon-blackjack-server/pkg/room"
)

func testServer(t *testing.T) (*httptest.Server, *room.Table) {
	t.Helper()

	options := blackjack.DefaultOptions()
	options.TickInterval = time.Hour

	table, err := room.NewTable(options)
	require.NoError(t, err)
	table.StartShift()
	t.Cleanup(table.EndShift)

	ts := httptest.NewServer(NewMux("v-test", table))
	t.Cleanup(ts.Close)

	return ts, table
}

func assertGet(t *testing.T, ts *httptest.Server, path string, respObj interface{}, statusCode int) {
	t.Helper()

	resp, err := http.Get(ts.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, statusCode, resp.StatusCode)
	if respObj != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(respObj))
	}
}

func TestMux_getHealth(t *testing.T) {
	ts, _ := testServer(t)

	var hr healthResponse
	assertGet(t, ts, "/health", &hr, http.StatusOK)
	assert.Equal(t, "OK", hr.Status)
	assert.Equal(t, "v-test", hr.Version)
}

func TestMux_getWS(t *testing.T) {
	a := assert.New(t)
	ts, _ := testServer(t)

	wsURL := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws?name=alice"
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, nil)
	require.NoError(t, err)
	defer resp.Body.Close()
	defer conn.Close()

	// a state snapshot greets every new connection
	var res room.Response
	require.NoError(t, conn.ReadJSON(&res))
	a.Equal("state", res.Key)

	require.NoError(t, conn.WriteJSON(&room.PayloadIn{Action: "sit", Context: "ctx-1"}))
	require.NoError(t, conn.ReadJSON(&res))
	a.Equal("status", res.Key)
	a.Equal("OK", res.Value)
	a.Equal("ctx-1", res.Context)

	require.NoError(t, conn.ReadJSON(&res))
	a.Equal("log", res.Key)

	require.NoError(t, conn.ReadJSON(&res))
	a.Equal("state", res.Key)
}

func TestWriteJSONError(t *testing.T) {
	a := assert.New(t)

	w := httptest.NewRecorder()
	writeJSONError(w, http.StatusBadRequest, assert.AnError)

	a.Equal(http.StatusBadRequest, w.Code)
	a.Equal("application/json", w.Header().Get("Content-Type"))

	var er errorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&er))
	a.Equal(assert.AnError.Error(), er.Message)
	a.Equal(http.StatusBadRequest, er.StatusCode)
}
