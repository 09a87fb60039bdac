package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Bhavyaa-T/FiggieBot/game"
)

// testServer answers each inbound request envelope from a scripted handler,
// mirroring the one-response-per-request protocol contract.
type testServer struct {
	srv      *httptest.Server
	requests int64
	handle   func(req request) any
}

func newTestServer(t *testing.T, handle func(req request) any) *testServer {
	t.Helper()
	ts := &testServer{handle: handle}
	upgrader := websocket.Upgrader{}
	ts.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			var req request
			if err := conn.ReadJSON(&req); err != nil {
				return
			}
			atomic.AddInt64(&ts.requests, 1)
			if err := conn.WriteJSON(ts.handle(req)); err != nil {
				return
			}
		}
	}))
	t.Cleanup(ts.srv.Close)
	return ts
}

func (ts *testServer) url() string {
	return "ws" + strings.TrimPrefix(ts.srv.URL, "http")
}

func envelope(msgType string, data any) map[string]any {
	return map[string]any{"type": msgType, "data": data}
}

func dialTest(t *testing.T, ts *testServer) *Client {
	t.Helper()
	c, err := Dial(context.Background(), ts.url(), zap.NewNop())
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestJoinAndRejection(t *testing.T) {
	ts := newTestServer(t, func(req request) any {
		if req.Type != reqJoin {
			return envelope(game.MsgError, map[string]string{"message": "unexpected " + req.Type})
		}
		if req.Data.PlayerID == "taken" {
			return envelope(game.MsgError, map[string]string{"message": "name already taken"})
		}
		return envelope(game.MsgPlaceOrder, map[string]string{"message": "joined"})
	})
	c := dialTest(t, ts)

	if err := c.Join(context.Background(), "alice"); err != nil {
		t.Fatalf("join: %v", err)
	}

	err := c.Join(context.Background(), "taken")
	perr, ok := AsProtocolError(err)
	if !ok {
		t.Fatalf("expected ProtocolError, got %v", err)
	}
	if perr.Op != reqJoin || perr.Message != "name already taken" {
		t.Fatalf("unexpected protocol error %+v", perr)
	}
}

func TestRoundStartedPoll(t *testing.T) {
	var polls int64
	ts := newTestServer(t, func(req request) any {
		if req.Type != reqRoundStarted {
			return envelope(game.MsgError, map[string]string{"message": "unexpected " + req.Type})
		}
		started := atomic.AddInt64(&polls, 1) >= 3
		return envelope(game.MsgRoundStarted, map[string]bool{"started": started})
	})
	c := dialTest(t, ts)

	for i := 0; i < 2; i++ {
		started, err := c.RoundStarted(context.Background())
		if err != nil {
			t.Fatalf("poll %d: %v", i, err)
		}
		if started {
			t.Fatalf("poll %d reported started early", i)
		}
	}
	started, err := c.RoundStarted(context.Background())
	if err != nil {
		t.Fatalf("final poll: %v", err)
	}
	if !started {
		t.Fatal("third poll should report started")
	}
}

func TestFetchStateDecodesSnapshot(t *testing.T) {
	ts := newTestServer(t, func(req request) any {
		return envelope(game.MsgUpdateGame, map[string]any{
			"time": 12,
			"order_book": map[string]any{
				"bids": map[string]any{
					"hearts": map[string]any{"order_id": 1, "player_id": "bob", "price": 4},
					"clubs":  map[string]any{"order_id": -1, "player_id": "", "price": 0},
				},
				"offers": map[string]any{},
			},
			"player": map[string]any{"balance": 33, "hand": map[string]int{"spades": 2}},
		})
	})
	c := dialTest(t, ts)

	state, env, err := c.FetchState(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if env.Type != game.MsgUpdateGame {
		t.Fatalf("unexpected envelope type %q", env.Type)
	}
	if state.Time == nil || *state.Time != 12 {
		t.Fatalf("unexpected time %v", state.Time)
	}
	if bid := state.OrderBook.Bids[game.Hearts]; !bid.Live() || bid.PlayerID != "bob" {
		t.Fatalf("unexpected hearts bid %+v", bid)
	}
	if state.OrderBook.Bids[game.Clubs].Live() {
		t.Fatal("sentinel slot decoded as live")
	}
	if state.Player.Balance != 33 || state.Player.Hand[game.Spades] != 2 {
		t.Fatalf("unexpected player %+v", state.Player)
	}
}

func TestFetchStateSurfacesNonUpdateEnvelope(t *testing.T) {
	ts := newTestServer(t, func(req request) any {
		return envelope(game.MsgError, map[string]string{"message": "round not running"})
	})
	c := dialTest(t, ts)

	_, env, err := c.FetchState(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if !env.IsError() || env.ErrorMessage() != "round not running" {
		t.Fatalf("unexpected envelope %+v", env)
	}
}

func TestPlaceBidValidatesPriceLocally(t *testing.T) {
	ts := newTestServer(t, func(req request) any {
		return envelope(game.MsgPlaceOrder, map[string]string{"message": "ok"})
	})
	c := dialTest(t, ts)

	for _, price := range []int{0, -3} {
		_, err := c.PlaceBid(context.Background(), "alice", game.Hearts, price)
		if _, ok := AsProtocolError(err); !ok {
			t.Fatalf("price %d: expected local ProtocolError, got %v", price, err)
		}
	}
	if got := atomic.LoadInt64(&ts.requests); got != 0 {
		t.Fatalf("invalid prices must not reach the wire, saw %d requests", got)
	}

	if _, err := c.PlaceBid(context.Background(), "alice", game.Hearts, 5); err != nil {
		t.Fatalf("valid bid: %v", err)
	}
	if got := atomic.LoadInt64(&ts.requests); got != 1 {
		t.Fatalf("expected exactly one wire request, saw %d", got)
	}
}

func TestRequestPayloadShapes(t *testing.T) {
	var mu sync.Mutex
	var captured []request
	ts := newTestServer(t, func(req request) any {
		mu.Lock()
		captured = append(captured, req)
		mu.Unlock()
		return envelope(game.MsgPlaceOrder, map[string]string{"message": "ok"})
	})
	c := dialTest(t, ts)
	ctx := context.Background()

	if _, err := c.AcceptBid(ctx, "alice", game.Spades); err != nil {
		t.Fatalf("accept bid: %v", err)
	}
	if _, err := c.CancelOffer(ctx, "alice", game.Diamonds); err != nil {
		t.Fatalf("cancel offer: %v", err)
	}
	if _, err := c.PlaceOffer(ctx, "alice", game.Clubs, 8); err != nil {
		t.Fatalf("place offer: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	want := []request{
		{Type: reqAcceptBid, Data: requestData{PlayerID: "alice", Suit: game.Spades}},
		{Type: reqCancelOffer, Data: requestData{PlayerID: "alice", Suit: game.Diamonds}},
		{Type: reqPlaceOffer, Data: requestData{PlayerID: "alice", Suit: game.Clubs, Price: 8}},
	}
	if len(captured) != len(want) {
		t.Fatalf("captured %d requests, want %d", len(captured), len(want))
	}
	for i := range want {
		if captured[i] != want[i] {
			t.Fatalf("request %d = %+v, want %+v", i, captured[i], want[i])
		}
	}
}

func TestClosedConnectionIsFatalAndClassified(t *testing.T) {
	ts := newTestServer(t, func(req request) any {
		return envelope(game.MsgPlaceOrder, map[string]string{"message": "ok"})
	})
	c := dialTest(t, ts)
	ts.srv.CloseClientConnections()

	_, _, err := c.FetchState(context.Background())
	if err == nil {
		t.Fatal("expected transport error after close")
	}
	if !IsClosed(err) {
		t.Fatalf("error not classified as closed: %v", err)
	}
	if _, ok := AsProtocolError(err); ok {
		t.Fatalf("transport failure misclassified as protocol rejection: %v", err)
	}
}

// sanity check that the request struct round-trips through JSON the way the
// server fixture reads it
func TestRequestOmitsUnsetFields(t *testing.T) {
	data, err := json.Marshal(request{Type: reqGetState})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(data), "player_id") || strings.Contains(string(data), "price") {
		t.Fatalf("unset fields serialized: %s", data)
	}
}
