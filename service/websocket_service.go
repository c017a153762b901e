package service

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/b5-ai/study-companion-be/types"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const wsReadTimeout = 60 * time.Second

// WebSocketService streams answers over a socket so the frontend can
// render tokens as they arrive instead of waiting for the full reply.
type WebSocketService struct {
	assistant *AssistantService
	upgrader  websocket.Upgrader
	logger    *zap.Logger
}

func NewWebSocketService(assistant *AssistantService, logger *zap.Logger) *WebSocketService {
	return &WebSocketService{
		assistant: assistant,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // same policy as the CORS handler
			},
		},
		logger: logger,
	}
}

func (s *WebSocketService) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(512 * 1024)
	conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))
		return nil
	})

	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				s.logger.Warn("websocket read error", zap.Error(err))
			}
			return
		}
		conn.SetReadDeadline(time.Now().Add(wsReadTimeout))

		var req types.WebsocketRequest
		if err := json.Unmarshal(p, &req); err != nil {
			s.writeError(conn, "invalid message")
			continue
		}

		switch req.Type {
		case types.TypeWebsocketPing:
			conn.WriteJSON(types.WebsocketResponse{Type: types.TypeWebsocketPong})
		case types.TypeWebsocketAsk:
			s.handleAsk(r, conn, req.Payload)
		default:
			s.writeError(conn, "unknown message type")
		}
	}
}

func (s *WebSocketService) handleAsk(r *http.Request, conn *websocket.Conn, payload interface{}) {
	payloadBytes, err := json.Marshal(payload)
	if err != nil {
		s.writeError(conn, "invalid payload")
		return
	}
	var ask types.WebsocketAskPayload
	if err := json.Unmarshal(payloadBytes, &ask); err != nil || ask.Question == "" {
		s.writeError(conn, "question is required")
		return
	}

	result := s.assistant.AskStream(r.Context(), ask.Question, func(chunk string) {
		conn.WriteJSON(types.WebsocketResponse{
			Type:    types.TypeWebsocketChunk,
			Payload: types.WebsocketChunkPayload{Content: chunk},
		})
	})

	if err := conn.WriteJSON(types.WebsocketResponse{
		Type:    types.TypeWebsocketDone,
		Payload: result,
	}); err != nil {
		s.logger.Warn("websocket write error", zap.Error(err))
	}
}

func (s *WebSocketService) writeError(conn *websocket.Conn, message string) {
	conn.WriteJSON(types.WebsocketResponse{
		Type:    types.TypeWebsocketError,
		Payload: types.MessageResponse{Message: message},
	})
}
