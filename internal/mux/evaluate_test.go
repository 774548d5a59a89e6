package mux

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"

	"handreader/pkg/handanalyzer"
	"handreader/pkg/playerhand"
)

func TestMux_postEvaluate(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	a := assert.New(t)

	var resp evaluateResponse
	assertPost(t, ts, "/evaluate", `{"hole":["As","Ks"],"community":["Qs","Js","Ts"]}`, &resp, 200)
	a.NotEmpty(resp.ID.String())
	a.Equal(playerhand.Flop, resp.Street)
	a.Equal(handanalyzer.RoyalFlush, resp.Hand)
	a.Equal("As,Ks,Qs,Js,Ts", resp.Cards.String())
	a.Greater(resp.Strength, 0)
	a.Empty(resp.PossibleHands)

	resp = evaluateResponse{}
	assertPost(t, ts, "/evaluate", evaluateRequest{
		Hole:      cards("2h 2d"),
		Community: cards("5s 4h 3c Kd"),
	}, &resp, 200)
	a.Equal(playerhand.Turn, resp.Street)
	a.Equal(handanalyzer.OnePair, resp.Hand)
	if a.Len(resp.PossibleHands, 3) {
		straight := resp.PossibleHands[0]
		a.Equal(handanalyzer.Straight, straight.Hand)
		a.Equal(8, straight.Outs)
		a.Equal("As,Ah,Ad,Ac,6s,6h,6d,6c", straight.DesiredCards.String())
		a.Equal("2h,2d,5s,4h,3c", straight.Cards.String())
	}

	// preflop has no community cards at all
	resp = evaluateResponse{}
	assertPost(t, ts, "/evaluate", `{"hole":["7c","2d"]}`, &resp, 200)
	a.Equal(playerhand.Preflop, resp.Street)
	a.Equal(handanalyzer.HighCard, resp.Hand)
	a.Equal("7c,2d", resp.Cards.String())
	a.Len(resp.PossibleHands, 4)
}

func TestMux_postEvaluate_errors(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	a := assert.New(t)

	var errObj errorResponse
	assertPost(t, ts, "/evaluate", `{"hole":["As"],"community":[]}`, &errObj, 400)
	a.Equal("expected exactly two hole cards: got 1", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate", `{"hole":["As","Ks"],"community":["2c","3c"]}`, &errObj, 400)
	a.Equal("expected 0, 3, 4, or 5 community cards: got 2", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate", `{"hole":["As","Ks"],"community":["2c","As","4d"]}`, &errObj, 400)
	a.Equal("duplicate card: As", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate", `{"hole":["As","Zz"]}`, &errObj, 400)
	a.Equal(400, errObj.StatusCode)

	assertPost(t, ts, "/evaluate", `{`, nil, 400)
}

func TestMux_postEvaluateBatch(t *testing.T) {
	m := NewMux("")
	m.config.maxBatchSize = 3

	ts := httptest.NewServer(m)
	defer ts.Close()

	a := assert.New(t)

	var resp batchResponse
	assertPost(t, ts, "/evaluate/batch", batchRequest{Hands: []evaluateRequest{
		{Hole: cards("Ah Ad"), Community: cards("As Ac Kh Kd 2c")},
		{Hole: cards("7c 2d")},
		{Hole: cards("4c As"), Community: cards("Kh Kd Kc 4h 4d")},
	}}, &resp, 200)

	if a.Len(resp.Results, 3) {
		a.Equal(handanalyzer.FourOfAKind, resp.Results[0].Hand)
		a.Equal("Ah,Ad,As,Ac,Kh", resp.Results[0].Cards.String())
		a.Equal(handanalyzer.HighCard, resp.Results[1].Hand)
		a.Equal(handanalyzer.FullHouse, resp.Results[2].Hand)
		a.Equal("Kh,Kd,Kc,4c,4h", resp.Results[2].Cards.String())

		a.NotEqual(resp.Results[0].ID, resp.Results[1].ID)
	}

	var errObj errorResponse
	assertPost(t, ts, "/evaluate/batch", batchRequest{Hands: []evaluateRequest{
		{Hole: cards("Ah Ad")},
		{Hole: cards("7c")},
	}}, &errObj, 400)
	a.Equal("hand 1: expected exactly two hole cards: got 1", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate/batch", `{"hands":[]}`, &errObj, 400)
	a.Equal("batch has no hands", errObj.Message)

	errObj = errorResponse{}
	assertPost(t, ts, "/evaluate/batch", batchRequest{Hands: make([]evaluateRequest, 4)}, &errObj, 400)
	a.Equal("batch cannot have more than 3 hands", errObj.Message)
}

func TestMux_getEvaluateWS(t *testing.T) {
	ts := httptest.NewServer(NewMux(""))
	defer ts.Close()

	a := assert.New(t)

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(ts.URL, "http")+"/evaluate/ws", nil)
	if !a.NoError(err) {
		return
	}
	defer conn.Close()

	a.NoError(conn.WriteJSON(evaluateRequest{
		Hole:      cards("Ks Qs"),
		Community: cards("Js Ts 9s 8s 2d"),
	}))

	var resp evaluateResponse
	a.NoError(conn.ReadJSON(&resp))
	a.Equal(playerhand.River, resp.Street)
	a.Equal(handanalyzer.StraightFlush, resp.Hand)
	a.Equal("Ks,Qs,Js,Ts,9s", resp.Cards.String())

	// a bad request is answered, and the connection stays open
	a.NoError(conn.WriteMessage(websocket.TextMessage, []byte(`{"hole":["Ks"]}`)))

	var errObj errorResponse
	a.NoError(conn.ReadJSON(&errObj))
	a.Equal(400, errObj.StatusCode)
	a.Equal("expected exactly two hole cards: got 1", errObj.Message)

	a.NoError(conn.WriteMessage(websocket.TextMessage, []byte(`not json`)))
	errObj = errorResponse{}
	a.NoError(conn.ReadJSON(&errObj))
	a.Equal(400, errObj.StatusCode)

	resp = evaluateResponse{}
	a.NoError(conn.WriteJSON(evaluateRequest{Hole: cards("Ah Kh"), Community: cards("Qh Jh 2c")}))
	a.NoError(conn.ReadJSON(&resp))
	a.Equal(playerhand.Flop, resp.Street)
	if a.NotEmpty(resp.PossibleHands) {
		a.Equal(handanalyzer.RoyalFlush, resp.PossibleHands[0].Hand)
		a.Equal("Th", resp.PossibleHands[0].DesiredCards.String())
	}

	a.NoError(conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")))
}
