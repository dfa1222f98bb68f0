package ethereum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/blockinsight7000-analyzer/internal/clock"
	"github.com/gorilla/websocket"
	"github.com/hyperledger/firefly-signer/pkg/ethtypes"
	"go.uber.org/zap"
)

const (
	subscribeNewHeads  = `{"id":1,"jsonrpc":"2.0","method":"eth_subscribe","params":["newHeads"]}`
	subscriptionMethod = "eth_subscription"
	closeTimeout       = time.Second
)

type wsMessage struct {
	ID     *int            `json:"id"`
	Method string          `json:"method"`
	Params wsParams        `json:"params"`
	Error  *wsError        `json:"error"`
	Result json.RawMessage `json:"result"`
}

type wsParams struct {
	Subscription string  `json:"subscription"`
	Result       newHead `json:"result"`
}

type newHead struct {
	Number ethtypes.HexUint64 `json:"number"`
	Hash   string             `json:"hash"`
}

type wsError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Subscriber streams numbers of new chain heads from a websocket endpoint.
type Subscriber struct {
	url     string
	dialer  *websocket.Dialer
	logger  *zap.Logger
	sleep   func(context.Context, time.Duration) error
	backoff clock.Backoff
}

// NewSubscriber creates a Subscriber for the websocket url of a node.
func NewSubscriber(url string, logger *zap.Logger) *Subscriber {
	return &Subscriber{
		url:     url,
		dialer:  websocket.DefaultDialer,
		logger:  logger.With(zap.String("url", url)),
		sleep:   clock.SleepWithContext,
		backoff: clock.Backoff{Initial: time.Second, Max: 30 * time.Second},
	}
}

// Run subscribes to newHeads and sends every announced block number to out in
// arrival order. Dropped connections are re-established with backoff; Run only
// returns when ctx is done.
func (s *Subscriber) Run(ctx context.Context, out chan<- uint64) error {
	backoff := s.backoff
	for {
		delivered, err := s.session(ctx, out)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if delivered {
			backoff.Reset()
		}

		wait := backoff.Next()
		s.logger.Warn("newHeads subscription dropped; reconnecting", zap.Error(err), zap.Duration("sleep", wait))
		if err := s.sleep(ctx, wait); err != nil {
			return err
		}
	}
}

// session runs one connection. delivered reports whether any head was forwarded.
func (s *Subscriber) session(ctx context.Context, out chan<- uint64) (delivered bool, err error) {
	conn, _, err := s.dialer.DialContext(ctx, s.url, nil)
	if err != nil {
		return false, fmt.Errorf("dial: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(closeTimeout))
		_ = conn.Close()
	})
	defer stop()

	if err := conn.WriteMessage(websocket.TextMessage, []byte(subscribeNewHeads)); err != nil {
		return false, fmt.Errorf("subscribe to newHeads: %w", err)
	}
	s.logger.Info("subscribed to newHeads")

	for {
		_, message, err := conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return delivered, ctx.Err()
			}
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) && closeErr.Code == websocket.CloseNormalClosure {
				return delivered, errors.New("closed by server")
			}
			return delivered, fmt.Errorf("read: %w", err)
		}

		number, ok, err := decodeNewHead(message)
		if err != nil {
			return delivered, err
		}
		if !ok {
			continue
		}

		select {
		case out <- number:
			delivered = true
			s.logger.Debug("new head", zap.Uint64("block", number))
		case <-ctx.Done():
			return delivered, ctx.Err()
		}
	}
}

// decodeNewHead extracts the block number from an eth_subscription frame. ok is
// false for frames that carry no head, such as the subscription acknowledgement.
func decodeNewHead(message []byte) (number uint64, ok bool, err error) {
	var msg wsMessage
	if err := json.Unmarshal(message, &msg); err != nil {
		return 0, false, fmt.Errorf("decode ws message: %w", err)
	}
	if msg.Error != nil {
		return 0, false, fmt.Errorf("node error %d: %s", msg.Error.Code, msg.Error.Message)
	}
	if msg.Method != subscriptionMethod {
		return 0, false, nil
	}
	return msg.Params.Result.Number.Uint64(), true, nil
}
