/**
* Name: 			websocket_handler.go
* Description: 		WebSocket 문서 검증 핸들러
* Workflow: 		연결 업그레이드, 프레임별 검증, 결과 전송
 */
package handler

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"DocVerifier_BluestockProject/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	StateVerifying = "verifying"
	StateVerified  = "verified"
	StateError     = "error"
)

// HTTP 연결을 WebSocket으로 업그레이드
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// 서버 -> 클라이언트 메시지
type SocketMessage struct {
	State     string          `json:"state"`
	ID        string          `json:"id"`
	AttemptID string          `json:"attempt_id,omitempty"`
	Document  *models.Display `json:"document,omitempty"`
	Error     string          `json:"error,omitempty"`
}

// HandleVerifySocket godoc
// @Summary      WebSocket 문서 검증 (VerifySocket)
// @Description  텍스트 프레임 하나가 문서 ID 하나입니다. 서버는 "verifying" 프레임을 먼저 보내고, ID마다 결과 프레임을 하나씩 보냅니다.
// @Description  이전 결과를 기다리지 않고 다음 ID를 보낼 수 있습니다. 요청 한도를 넘은 프레임에는 바로 error 프레임이 옵니다.
// @Tags         Verification
// @Success      101 {string} string "101 Switching Protocols"
// @Failure      429 {object} handler.ErrorResponse "요청 한도 초과"
// @Router       /ws/verify [get]
func (h *Handler) HandleVerifySocket(rps float64, burst int) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			h.log.Warn().Err(err).Msg("HandleVerifySocket(): failed to upgrade")
			return
		}
		// 세션마다 프레임 단위로 제한
		h.manageVerifySession(c.Request.Context(), conn, rate.NewLimiter(rate.Limit(rps), burst))
	}
}

type socketWriter struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (w *socketWriter) send(msg SocketMessage) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.conn.WriteJSON(msg)
}

func (h *Handler) manageVerifySession(parent context.Context, conn *websocket.Conn, limiter *rate.Limiter) {
	defer conn.Close()
	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	out := &socketWriter{conn: conn}
	var wg sync.WaitGroup
	defer wg.Wait()

	h.log.Debug().Msg("verify session started")
ReadLoop:
	for {
		messageType, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				h.log.Debug().Err(err).Msg("verify session read error")
			}
			break ReadLoop
		}
		if messageType != websocket.TextMessage {
			continue
		}

		id := strings.TrimSpace(string(message))
		if !limiter.Allow() {
			if err := out.send(SocketMessage{State: StateError, ID: id, Error: MsgRateLimited}); err != nil {
				break ReadLoop
			}
			continue
		}
		results := h.verifier.Verify(ctx, id, models.SourceWS)
		if err := out.send(SocketMessage{State: StateVerifying, ID: id}); err != nil {
			break ReadLoop
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			res := <-results
			msg := SocketMessage{ID: res.ID, AttemptID: res.AttemptID}
			if res.Err != nil {
				_, text := verifyError(res.Err)
				msg.State = StateError
				msg.Error = text
			} else {
				d := res.Record.Display()
				msg.State = StateVerified
				msg.Document = &d
			}
			if err := out.send(msg); err != nil {
				h.log.Debug().Err(err).Str("document_id", res.ID).Msg("verify session write error")
			}
		}()
	}
	// 남은 검증은 취소하고 결과가 나올 때까지 기다린다
	cancel()
	h.log.Debug().Msg("verify session ended")
}
