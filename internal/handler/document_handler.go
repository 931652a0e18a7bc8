/**
* Name: 			document_handler.go
* Description: 		문서 등록, 공유 링크와 QR 코드 핸들러
* Workflow: 		운영자 문서 등록, 공유 링크 생성, QR PNG 응답
 */
package handler

import (
	"errors"
	"net/http"
	"time"

	"DocVerifier_BluestockProject/internal/models"
	"DocVerifier_BluestockProject/internal/sharelink"
	"DocVerifier_BluestockProject/internal/verification"

	"github.com/gin-gonic/gin"
)

// /api/documents 요청 바디
type AddDocumentRequest struct {
	ID            string `json:"id" binding:"required" example:"BFT11388"`
	SubjectName   string `json:"subject_name" example:"Prashant Singh"`
	Organization  string `json:"organization" example:"Bluestock Fintech"`
	Role          string `json:"role" example:"SDE Intern(remote)"`
	IssueDate     string `json:"issue_date" example:"2025-07-30"`
	DurationLabel string `json:"duration_label" example:"1 Jun 2025 - 30 Jul 2025"`
	Status        string `json:"status" example:"verified"`
	Remark        string `json:"remark" example:"ok"`
}

func (r AddDocumentRequest) record() models.Record {
	return models.Record{
		ID:            r.ID,
		SubjectName:   r.SubjectName,
		Organization:  r.Organization,
		Role:          r.Role,
		IssueDate:     r.IssueDate,
		DurationLabel: r.DurationLabel,
		Status:        models.Status(r.Status),
		Remark:        r.Remark,
	}
}

type AddDocumentResponse struct {
	Message  string        `json:"message" example:"Document added"`
	Document models.Record `json:"document"`
	Link     string        `json:"link" example:"http://localhost:8080/verify?doc=BFT11388"`
}

type ShareLinkResponse struct {
	ID   string `json:"id" example:"BFT11384"`
	Link string `json:"link" example:"http://localhost:8080/verify?doc=BFT11384"`
}

// AddDocument godoc
// @Summary      문서 등록 (AddDocument)
// @Description  문서를 등록합니다. 같은 ID의 문서가 있으면 덮어씁니다. (JWT 필요)
// @Tags         Operator
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body handler.AddDocumentRequest true "문서 등록 요청 정보"
// @Success      201 {object} handler.AddDocumentResponse
// @Failure      400 {object} handler.ErrorResponse "잘못된 요청"
// @Failure      401 {object} handler.ErrorResponse "인증 토큰 누락 또는 만료"
// @Router       /api/documents [post]
func (h *Handler) AddDocument(c *gin.Context) {
	var req AddDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Invalid request: id is required")
		return
	}
	if req.IssueDate != "" {
		if _, err := time.Parse(models.IssueDateLayout, req.IssueDate); err != nil {
			abortWithError(c, http.StatusBadRequest, "issue_date must be formatted as YYYY-MM-DD")
			return
		}
	}
	if req.Status != "" && models.Status(req.Status) != models.StatusVerified {
		abortWithError(c, http.StatusBadRequest, "status must be verified")
		return
	}

	record := req.record()
	if record.Status == "" {
		record.Status = models.StatusVerified
	}
	if err := h.verifier.Insert(c.Request.Context(), record); err != nil {
		if errors.Is(err, verification.ErrEmptyID) {
			abortWithError(c, http.StatusBadRequest, "Invalid request: id is required")
			return
		}
		h.log.Error().Err(err).Str("document_id", record.ID).Msg("AddDocument: insert failed")
		abortWithError(c, http.StatusInternalServerError, "Failed to add document")
		return
	}

	link, _ := h.links.Link(record.ID)
	c.JSON(http.StatusCreated, AddDocumentResponse{
		Message:  "Document added",
		Document: record,
		Link:     link,
	})
}

// GetShareLink godoc
// @Summary      공유 링크 생성 (ShareLink)
// @Description  해당 문서 ID의 검증 결과를 다시 보여주는 URL을 반환합니다.
// @Tags         Share
// @Produce      json
// @Param        id path string true "문서 ID"
// @Success      200 {object} handler.ShareLinkResponse
// @Router       /api/share/{id} [get]
func (h *Handler) GetShareLink(c *gin.Context) {
	id := c.Param("id")
	link, err := h.links.Link(id)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, MsgEmptyID)
		return
	}
	c.JSON(http.StatusOK, ShareLinkResponse{ID: id, Link: link})
}

// GetShareQR godoc
// @Summary      공유 링크 QR 코드 (ShareQR)
// @Description  공유 링크를 담은 PNG QR 코드를 반환합니다.
// @Tags         Share
// @Produce      png
// @Param        id path string true "문서 ID"
// @Success      200 {file} file "PNG 이미지"
// @Failure      500 {object} handler.ErrorResponse "서버 내부 오류"
// @Router       /api/share/{id}/qr.png [get]
func (h *Handler) GetShareQR(c *gin.Context) {
	id := c.Param("id")
	png, err := h.links.QR(id)
	if err != nil {
		if errors.Is(err, sharelink.ErrEmptyID) {
			abortWithError(c, http.StatusBadRequest, MsgEmptyID)
			return
		}
		h.log.Error().Err(err).Str("document_id", id).Msg("GetShareQR: failed to encode")
		abortWithError(c, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
