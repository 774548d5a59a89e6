package mux

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"
)

const writeWait = time.Second * 10
const pongWait = time.Second * 60
const pingPeriod = pongWait * 9 / 10

// wsClient is a websocket connection that streams evaluations
type wsClient struct {
	conn *websocket.Conn
	send chan interface{}
	done chan bool
	id   string
}

// deliver queues a message, and returns false if the write loop has stopped
func (c *wsClient) deliver(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	case <-c.done:
		return false
	}
}

func (m *Mux) getEvaluateWS() http.HandlerFunc {
	upgrader := &websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}

	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logrus.WithError(err).Error("could not upgrade connection")
			return
		}

		_ = conn.SetReadDeadline(time.Now().Add(pongWait))
		conn.SetPongHandler(func(string) error {
			_ = conn.SetReadDeadline(time.Now().Add(pongWait))
			return nil
		})

		client := &wsClient{
			conn: conn,
			send: make(chan interface{}, 8),
			done: make(chan bool),
			id:   conn.RemoteAddr().String(),
		}

		logrus.WithField("client", client.id).Info("client connected")

		go func() {
			m.webSocketWriteLoop(client)
			close(client.done)
		}()

		m.webSocketReadLoop(client)
		close(client.send)
		<-client.done

		logrus.WithField("client", client.id).Info("client disconnected")
	}
}

func (m *Mux) webSocketWriteLoop(client *wsClient) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = client.conn.Close()
	}()

	for {
		select {
		case <-ticker.C:
			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case msg, ok := <-client.send:
			if !ok {
				_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
				_ = client.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}

			_ = client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteJSON(msg); err != nil {
				logrus.WithError(err).WithField("client", client.id).Error("could not write message")
				return
			}
		}
	}
}

// webSocketReadLoop answers every request with an evaluation or an error
// A request that cannot be decoded does not close the connection.
func (m *Mux) webSocketReadLoop(client *wsClient) {
	for {
		_, b, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logrus.WithError(err).WithField("client", client.id).Error("could not read message")
			}

			return
		}

		logrus.WithField("message", string(b)).WithField("client", client.id).Trace("received message from client")

		var msg interface{}
		var req evaluateRequest
		if err := json.Unmarshal(b, &req); err != nil {
			msg = newErrorResponse(http.StatusBadRequest, err)
		} else if resp, err := evaluate(req); err != nil {
			msg = newErrorResponse(http.StatusBadRequest, err)
		} else {
			msg = resp
		}

		if !client.deliver(msg) {
			return
		}
	}
}
