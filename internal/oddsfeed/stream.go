package oddsfeed

import (
	"context"
	"encoding/json"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

// Reconnect backoff bounds for the live feed.
const (
	reconnectMin = time.Second
	reconnectMax = 30 * time.Second
)

// priceMessage is the wire format of one live feed update.
type priceMessage struct {
	GameID     string  `json:"game_id"`
	HomeML     int     `json:"home_ml"`
	AwayML     int     `json:"away_ml"`
	TotalPoint float64 `json:"total"`
	Timestamp  int64   `json:"ts"`
}

// StreamClient consumes a websocket price feed and records every
// update into the movement tracker. It reconnects with exponential
// backoff until the context is cancelled.
type StreamClient struct {
	url     string
	tracker *MovementTracker
	logger  *logrus.Entry
	dialer  *websocket.Dialer
}

// NewStreamClient creates a live feed client.
func NewStreamClient(url string, tracker *MovementTracker, logger *logrus.Logger) *StreamClient {
	return &StreamClient{
		url:     url,
		tracker: tracker,
		logger:  logger.WithField("component", "odds_stream"),
		dialer:  websocket.DefaultDialer,
	}
}

// Run connects and consumes updates until ctx is done. Returns nil on
// cancellation.
func (sc *StreamClient) Run(ctx context.Context) error {
	backoff := reconnectMin
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		err := sc.consume(ctx)
		if ctx.Err() != nil {
			return nil
		}
		sc.logger.WithError(err).WithField("backoff", backoff.String()).Warn("Feed disconnected, reconnecting")

		select {
		case <-ctx.Done():
			return nil
		case <-time.After(backoff):
		}

		backoff *= 2
		if backoff > reconnectMax {
			backoff = reconnectMax
		}
	}
}

func (sc *StreamClient) consume(ctx context.Context) error {
	conn, _, err := sc.dialer.DialContext(ctx, sc.url, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	sc.logger.WithField("url", sc.url).Info("Connected to live odds feed")

	// The watcher must not outlive this connection, or every reconnect
	// would leave one blocked goroutine behind.
	done := make(chan struct{})
	defer close(done)

	go func() {
		select {
		case <-ctx.Done():
			_ = conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(time.Second))
			_ = conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return err
		}

		var msg priceMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			sc.logger.WithError(err).Debug("Skipping malformed feed message")
			continue
		}
		if msg.GameID == "" {
			continue
		}

		at := time.Unix(msg.Timestamp, 0)
		if msg.Timestamp == 0 {
			at = time.Now()
		}
		sc.tracker.Record(msg.GameID, PricePoint{
			HomeML:     msg.HomeML,
			AwayML:     msg.AwayML,
			TotalPoint: msg.TotalPoint,
			ObservedAt: at,
		})
	}
}
