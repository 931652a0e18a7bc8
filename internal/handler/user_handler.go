/**
* Name: 			user_handler.go
* Description: 		운영자 로그인 핸들러
* Workflow: 		자격 증명 확인, JWT 발급
 */
package handler

import (
	"errors"
	"net/http"
	"strings"

	"DocVerifier_BluestockProject/internal/auth"

	"github.com/gin-gonic/gin"
)

// /login 요청 바디
type LoginRequest struct {
	Username string `json:"username" example:"admin"`
	Password string `json:"password" example:"password123"`
}

type LoginSuccessResponse struct {
	Token string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

// Login godoc
// @Summary      운영자 로그인 (Login)
// @Description  운영자 계정으로 로그인하고 문서 등록과 검증 기록 조회에 쓰는 JWT 토큰을 발급받습니다.
// @Tags         Operator
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "로그인 요청 정보"
// @Success      200 {object} handler.LoginSuccessResponse
// @Failure      400 {object} handler.ErrorResponse "잘못된 요청"
// @Failure      401 {object} handler.ErrorResponse "인증 실패 (자격 증명 오류)"
// @Failure      503 {object} handler.ErrorResponse "운영자 계정 미설정"
// @Router       /login [post]
func (h *Handler) Login(c *gin.Context) {
	var credentials LoginRequest
	if err := c.ShouldBindJSON(&credentials); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request")
		return
	}

	// " "으로 입력되는 케이스 방지
	if strings.TrimSpace(credentials.Username) == "" || strings.TrimSpace(credentials.Password) == "" {
		abortWithError(c, http.StatusBadRequest, "Username and Password cannot be empty")
		return
	}

	if err := h.admin.Authenticate(credentials.Username, credentials.Password); err != nil {
		if errors.Is(err, auth.ErrAdminDisabled) {
			abortWithError(c, http.StatusServiceUnavailable, "Admin login is not configured")
			return
		}
		h.log.Warn().Str("username", credentials.Username).Msg("Login: invalid credentials")
		abortWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	tokenString, err := h.tokens.GenerateToken(credentials.Username)
	if err != nil {
		h.log.Error().Err(err).Msg("Login: failed to generate token")
		abortWithError(c, http.StatusInternalServerError, "Failed to generate token")
		return
	}

	c.JSON(http.StatusOK, LoginSuccessResponse{Token: tokenString})
}
