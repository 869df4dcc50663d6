package oddsfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetLevel(logrus.PanicLevel)
	return l
}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestConsumeRecordsFeedMessages(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"game_id":"g1","home_ml":-150,"away_ml":130,"total":8.5,"ts":1756400000}`))
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"game_id":"g1","home_ml":-160,"away_ml":140,"total":9.0,"ts":1756400060}`))
	}))
	defer srv.Close()

	tracker := NewMovementTracker()
	sc := NewStreamClient(wsURL(srv), tracker, quietLogger())

	err := sc.consume(context.Background())
	require.Error(t, err) // server closed the connection

	history := tracker.History("g1")
	require.Len(t, history, 2)
	assert.Equal(t, -160, history[1].HomeML)
	assert.Equal(t, 9.0, history[1].TotalPoint)
}

func TestConsumeReleasesWatcherOnDisconnect(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn.Close()
	}))
	defer srv.Close()

	sc := NewStreamClient(wsURL(srv), NewMovementTracker(), quietLogger())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Warm up so pooled runtime goroutines settle.
	for i := 0; i < 5; i++ {
		_ = sc.consume(ctx)
	}
	time.Sleep(50 * time.Millisecond)
	before := runtime.NumGoroutine()

	for i := 0; i < 20; i++ {
		_ = sc.consume(ctx)
	}
	time.Sleep(50 * time.Millisecond)
	after := runtime.NumGoroutine()

	// With the context still live, disconnects must not accumulate
	// watcher goroutines.
	assert.LessOrEqual(t, after, before+2)
}
