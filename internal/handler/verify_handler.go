/**
* Name: 			verify_handler.go
* Description: 		HTTP 문서 검증 핸들러
* Workflow: 		폼 입력과 공유 링크 검증, 결과 응답
 */
package handler

import (
	"net/http"

	"DocVerifier_BluestockProject/internal/models"
	"DocVerifier_BluestockProject/internal/sharelink"
	"DocVerifier_BluestockProject/internal/verification"

	"github.com/gin-gonic/gin"
)

// /api/verify 요청 바디
type VerifyRequest struct {
	ID string `json:"id" example:"BFT11385"`
}

type VerifyResponse struct {
	Verified  bool           `json:"verified" example:"true"`
	AttemptID string         `json:"attempt_id" example:"6f1c2a9e-8a4b-4c55-9a53-0d6a0f1b2c3d"`
	Document  models.Display `json:"document"`
}

// VerifyDocument godoc
// @Summary      문서 검증 (Verify)
// @Description  설정된 지연 후 문서를 조회하고 결과 화면에 표시할 정보를 반환합니다.
// @Tags         Verification
// @Accept       json
// @Produce      json
// @Param        request body handler.VerifyRequest true "문서 ID"
// @Success      200 {object} handler.VerifyResponse
// @Failure      400 {object} handler.ErrorResponse "빈 ID 또는 잘못된 형식"
// @Failure      404 {object} handler.ErrorResponse "문서 없음"
// @Failure      429 {object} handler.ErrorResponse "요청 한도 초과"
// @Router       /api/verify [post]
func (h *Handler) VerifyDocument(c *gin.Context) {
	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request")
		return
	}
	h.respondVerify(c, req.ID, models.SourceForm)
}

// VerifyFromLink godoc
// @Summary      공유 링크로 검증 (VerifyFromLink)
// @Description  공유 링크와 QR 코드가 가리키는 진입점입니다. POST /api/verify 와 같은 결과를 반환합니다.
// @Tags         Verification
// @Produce      json
// @Param        doc query string true "문서 ID"
// @Success      200 {object} handler.VerifyResponse
// @Failure      400 {object} handler.ErrorResponse "빈 ID 또는 잘못된 형식"
// @Failure      404 {object} handler.ErrorResponse "문서 없음"
// @Failure      429 {object} handler.ErrorResponse "요청 한도 초과"
// @Router       /verify [get]
func (h *Handler) VerifyFromLink(c *gin.Context) {
	h.respondVerify(c, c.Query(sharelink.QueryParam), models.SourceLink)
}

func (h *Handler) respondVerify(c *gin.Context, id string, source models.Source) {
	res := <-h.verifier.Verify(c.Request.Context(), id, source)
	if res.Err != nil {
		status, msg := verifyError(res.Err)
		if status == http.StatusInternalServerError {
			h.log.Error().Err(res.Err).Str("document_id", res.ID).Msg("verification failed")
		}
		abortWithError(c, status, msg)
		return
	}
	c.JSON(http.StatusOK, VerifyResponse{
		Verified:  res.Record.Status == models.StatusVerified,
		AttemptID: res.AttemptID,
		Document:  res.Record.Display(),
	})
}

var _ Verifier = (*verification.Service)(nil)
