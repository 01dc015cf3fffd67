package handlers

import (
	"context"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"agrimitra/internal/models"
	"agrimitra/internal/services"
)

// wsHistoryLimit caps how many turns a live session keeps in memory. The
// context builder windows this further; nothing is persisted.
const wsHistoryLimit = 10

// liveChatRequest is one inbound frame on the live-chat socket.
type liveChatRequest struct {
	Message  string `json:"message"`
	Language string `json:"language"`
}

// LiveChatHandler serves an interactive chat session over a websocket. Each
// connection keeps its own bounded history so the farmer can have a running
// conversation without the client resending prior turns.
type LiveChatHandler struct {
	chat     *services.ChatService
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu       sync.RWMutex
	sessions map[string]*liveSession
}

// liveSession is the connection-scoped state of one live chat.
type liveSession struct {
	id      string
	conn    *websocket.Conn
	history []models.ChatMessage
	mu      sync.Mutex
}

// NewLiveChatHandler creates the live-chat handler.
func NewLiveChatHandler(chat *services.ChatService, logger *zap.Logger) *LiveChatHandler {
	return &LiveChatHandler{
		chat:   chat,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sessions: make(map[string]*liveSession),
	}
}

// Handle handles GET /ws/chat.
func (h *LiveChatHandler) Handle(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}

	session := &liveSession{id: uuid.NewString(), conn: conn}

	h.mu.Lock()
	h.sessions[session.id] = session
	h.mu.Unlock()

	go h.serveSession(session)
}

func (h *LiveChatHandler) serveSession(session *liveSession) {
	defer func() {
		session.conn.Close()
		h.mu.Lock()
		delete(h.sessions, session.id)
		h.mu.Unlock()
	}()

	for {
		var req liveChatRequest
		if err := session.conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Warn("live chat read failed", zap.String("session", session.id), zap.Error(err))
			}
			return
		}
		if req.Message == "" {
			continue
		}

		resp, err := h.chat.ProcessMessage(context.Background(), models.ChatRequest{
			Message:             req.Message,
			ConversationHistory: session.history,
			Language:            req.Language,
		})
		if err != nil {
			h.logger.Error("live chat completion failed", zap.String("session", session.id), zap.Error(err))
			session.mu.Lock()
			writeErr := session.conn.WriteJSON(gin.H{"error": "failed to process message"})
			session.mu.Unlock()
			if writeErr != nil {
				return
			}
			continue
		}
		resp.ConversationID = session.id

		session.history = append(session.history,
			models.ChatMessage{Role: "user", Content: req.Message},
			models.ChatMessage{Role: "assistant", Content: resp.Response},
		)
		if len(session.history) > wsHistoryLimit {
			session.history = session.history[len(session.history)-wsHistoryLimit:]
		}

		session.mu.Lock()
		err = session.conn.WriteJSON(resp)
		session.mu.Unlock()
		if err != nil {
			h.logger.Warn("live chat write failed", zap.String("session", session.id), zap.Error(err))
			return
		}
	}
}
