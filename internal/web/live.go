package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/Belphemur/GameHub/internal/config"
	"github.com/Belphemur/GameHub/internal/models"
	"github.com/Belphemur/GameHub/internal/search"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// A session without any client message for this long is closed.
	idleTimeout = 10 * time.Minute

	// Maximum message size allowed from peer.
	maxMessageSize = 1024

	// Keystrokes per second a session may send before it is dropped.
	messagesPerSecond = 20
	messageBurst      = 40

	outboxSize = 8
)

// Message types exchanged with the live search script
const (
	msgInput    = "input"
	msgAccept   = "accept"
	msgSelect   = "select"
	msgDismiss  = "dismiss"
	msgFocus    = "focus"
	msgSnapshot = "snapshot"
	msgNavigate = "navigate"
	msgError    = "error"
)

// clientMessage is sent by the browser for every interaction with the search box
type clientMessage struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
	ID   int    `json:"id,omitempty"`
}

// serverMessage carries a session snapshot, a navigation or a protocol error
type serverMessage struct {
	Type    string        `json:"type"`
	Session string        `json:"session"`
	State   string        `json:"state,omitempty"`
	Text    string        `json:"text,omitempty"`
	Open    bool          `json:"open,omitempty"`
	Results []models.Game `json:"results,omitempty"`
	Path    string        `json:"path,omitempty"`
	Error   string        `json:"error,omitempty"`
}

// liveSession bridges one websocket connection to one search controller
type liveSession struct {
	id        string
	conn      *websocket.Conn
	snapshots chan search.Snapshot
	outbox    chan serverMessage
}

func (s *Server) handleLiveSearch(w http.ResponseWriter, r *http.Request) {
	if !s.checkOrigin(r) {
		http.Error(w, "Origin not allowed", http.StatusForbidden)
		return
	}

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.localOrigins(),
	})
	if err != nil {
		logger := config.GetLogger()
		logger.Warn().Err(err).Msg("WebSocket upgrade failed")
		return
	}
	conn.SetReadLimit(maxMessageSize)

	session := &liveSession{
		id:        uuid.NewString(),
		conn:      conn,
		snapshots: make(chan search.Snapshot, 1),
		outbox:    make(chan serverMessage, outboxSize),
	}
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	stop := context.AfterFunc(s.closing, cancel)
	defer stop()

	session.serve(ctx, s.service, s.search)
}

// checkOrigin accepts browser connections from the site itself or from a
// local address on the server port
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return false
	}
	originURL, err := url.Parse(origin)
	if err != nil {
		return false
	}
	if originURL.Scheme != "http" && originURL.Scheme != "https" {
		return false
	}
	if strings.EqualFold(originURL.Host, r.Host) {
		return true
	}
	for _, allowed := range s.localOrigins() {
		if originURL.Host == allowed {
			return true
		}
	}
	return false
}

func (s *Server) localOrigins() []string {
	return []string{
		fmt.Sprintf("localhost:%d", s.port),
		fmt.Sprintf("127.0.0.1:%d", s.port),
	}
}

func (ls *liveSession) serve(parent context.Context, searcher search.Searcher, opts search.Options) {
	logger := config.GetLogger().With().Str("session", ls.id).Logger()
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	opts.OnChange = ls.publish
	opts.OnNavigate = func(path string) {
		ls.send(serverMessage{Type: msgNavigate, Path: path})
	}
	controller := search.NewController(searcher, opts)

	written := make(chan struct{})
	go func() {
		defer close(written)
		defer cancel()
		ls.writeLoop(ctx)
	}()

	ls.publish(controller.Snapshot())
	logger.Debug().Msg("Live search session opened")

	status, reason := ls.readLoop(ctx, controller)

	controller.Close()
	_ = ls.conn.Close(status, reason)
	cancel()
	<-written
	logger.Debug().Str("reason", reason).Msg("Live search session closed")
}

// publish keeps only the newest snapshot when the writer lags behind
func (ls *liveSession) publish(snap search.Snapshot) {
	for {
		select {
		case ls.snapshots <- snap:
			return
		default:
		}
		select {
		case <-ls.snapshots:
		default:
		}
	}
}

// send queues a message, dropping it when the peer is not reading
func (ls *liveSession) send(msg serverMessage) {
	select {
	case ls.outbox <- msg:
	default:
	}
}

func (ls *liveSession) readLoop(ctx context.Context, controller *search.Controller) (websocket.StatusCode, string) {
	limiter := rate.NewLimiter(messagesPerSecond, messageBurst)
	for {
		readCtx, readCancel := context.WithTimeout(ctx, idleTimeout)
		var msg clientMessage
		err := wsjson.Read(readCtx, ls.conn, &msg)
		readCancel()
		if err != nil {
			status := websocket.CloseStatus(err)
			if status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && !errors.Is(err, context.Canceled) {
				logger := config.GetLogger()
				logger.Debug().Err(err).Str("session", ls.id).Msg("Live search read failed")
			}
			return websocket.StatusNormalClosure, ""
		}

		if !limiter.Allow() {
			return websocket.StatusPolicyViolation, "too many messages"
		}

		switch msg.Type {
		case msgInput:
			controller.Update(msg.Text)
		case msgAccept:
			controller.Accept()
		case msgDismiss:
			controller.Dismiss()
		case msgFocus:
			controller.Focus()
		case msgSelect:
			game, ok := findResult(controller.Snapshot().Results, msg.ID)
			if !ok {
				ls.send(serverMessage{Type: msgError, Error: "unknown result"})
				continue
			}
			controller.Select(game)
		default:
			ls.send(serverMessage{Type: msgError, Error: "unknown message type"})
		}
	}
}

func findResult(results []models.Game, id int) (models.Game, bool) {
	for _, g := range results {
		if g.ID == id {
			return g, true
		}
	}
	return models.Game{}, false
}

func (ls *liveSession) writeLoop(ctx context.Context) {
	for {
		var msg serverMessage
		select {
		case <-ctx.Done():
			return
		case snap := <-ls.snapshots:
			msg = snapshotMessage(snap)
		case msg = <-ls.outbox:
		}
		msg.Session = ls.id

		writeCtx, writeCancel := context.WithTimeout(ctx, writeWait)
		err := wsjson.Write(writeCtx, ls.conn, msg)
		writeCancel()
		if err != nil {
			return
		}
	}
}

func snapshotMessage(snap search.Snapshot) serverMessage {
	msg := serverMessage{
		Type:    msgSnapshot,
		State:   snap.State.String(),
		Text:    snap.Text,
		Open:    snap.Open,
		Results: snap.Results,
	}
	if snap.Err != nil {
		msg.Error = "search is temporarily unavailable"
	}
	return msg
}
