/**
* Name: 			handler.go
* Description: 		Gin HTTP 핸들러 공통 의존성과 에러 응답
* Workflow: 		문서 검증, 공유 링크/QR, 운영자 로그인, 문서 등록, 검증 기록
 */
package handler

import (
	"context"
	"errors"
	"net/http"

	"DocVerifier_BluestockProject/internal/auth"
	"DocVerifier_BluestockProject/internal/models"
	"DocVerifier_BluestockProject/internal/sharelink"
	"DocVerifier_BluestockProject/internal/verification"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const (
	MsgEmptyID       = "Please enter a document ID"
	MsgNotFound      = "Document not found. Please check the document ID and try again."
	MsgInvalidFormat = "Invalid document ID format"
	MsgCanceled      = "Verification was canceled"
	MsgFailed        = "Verification failed"
	MsgRateLimited   = "Too many verification requests, please slow down"

	defaultHistoryPage = 50
)

// Verifier 핸들러가 사용하는 검증 서비스
type Verifier interface {
	Verify(ctx context.Context, id string, source models.Source) <-chan verification.Result
	Insert(ctx context.Context, record models.Record) error
}

// History 최근 검증 기록 조회
type History interface {
	ListAttempts(ctx context.Context, limit int) ([]models.Attempt, error)
}

type Handler struct {
	verifier     Verifier
	history      History
	links        sharelink.Builder
	tokens       *auth.TokenManager
	admin        *auth.Admin
	log          zerolog.Logger
	historyLimit int
}

type Options struct {
	Verifier     Verifier
	History      History
	Links        sharelink.Builder
	Tokens       *auth.TokenManager
	Admin        *auth.Admin
	Log          zerolog.Logger
	HistoryLimit int
}

func New(opts Options) *Handler {
	limit := opts.HistoryLimit
	if limit <= 0 {
		limit = defaultHistoryPage
	}
	return &Handler{
		verifier:     opts.Verifier,
		history:      opts.History,
		links:        opts.Links,
		tokens:       opts.Tokens,
		admin:        opts.Admin,
		log:          opts.Log.With().Str("component", "http-handler").Logger(),
		historyLimit: limit,
	}
}

type ErrorResponse struct {
	Error string `json:"error" example:"Document not found. Please check the document ID and try again."`
}

// verifyError 검증 에러를 HTTP 상태 코드와 사용자 메시지로 변환
func verifyError(err error) (int, string) {
	switch {
	case errors.Is(err, verification.ErrEmptyID):
		return http.StatusBadRequest, MsgEmptyID
	case errors.Is(err, verification.ErrInvalidFormat):
		return http.StatusBadRequest, MsgInvalidFormat
	case errors.Is(err, verification.ErrNotFound):
		return http.StatusNotFound, MsgNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusRequestTimeout, MsgCanceled
	default:
		return http.StatusInternalServerError, MsgFailed
	}
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Error: message})
}
