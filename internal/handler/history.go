/**
* Name: 			history.go
* Description: 		검증 기록 조회 핸들러
* Workflow: 		운영자 인증 후 최근 검증 기록 반환
 */
package handler

import (
	"net/http"
	"strconv"

	"DocVerifier_BluestockProject/internal/models"

	"github.com/gin-gonic/gin"
)

// 검증 기록 목록 응답 (Wrapper)
type HistoryResponse struct {
	History []models.Attempt `json:"history"`
}

// GetVerificationHistory godoc
// @Summary      검증 기록 조회 (History)
// @Description  최근 검증 기록을 최신순으로 조회합니다. (JWT 필요)
// @Tags         Operator
// @Produce      json
// @Security     BearerAuth
// @Param        limit query int false "최대 조회 건수"
// @Success      200 {object} handler.HistoryResponse
// @Failure      400 {object} handler.ErrorResponse "잘못된 limit 값"
// @Failure      401 {object} handler.ErrorResponse "인증 토큰 누락 또는 만료"
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /api/history [get]
func (h *Handler) GetVerificationHistory(c *gin.Context) {
	limit := h.historyLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			abortWithError(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		if n < limit {
			limit = n
		}
	}

	attempts, err := h.history.ListAttempts(c.Request.Context(), limit)
	if err != nil {
		h.log.Error().Err(err).Msg("GetVerificationHistory: failed to fetch attempts")
		abortWithError(c, http.StatusInternalServerError, "Failed to fetch history")
		return
	}
	c.JSON(http.StatusOK, HistoryResponse{History: attempts})
}
