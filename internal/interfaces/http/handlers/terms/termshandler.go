// Package terms serves the published terms-of-service document.
package terms

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/constants"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/logger"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/services/markdown"
	"github.com/officeless-platform/officeless-self-service-portal/internal/shared/utils"
)

//go:embed terms.md
var termsMarkdown string

type TermsHandler struct {
	markdownService markdown.MarkdownService
	logger          logger.Interface
}

func NewTermsHandler(markdownService markdown.MarkdownService, log logger.Interface) *TermsHandler {
	return &TermsHandler{
		markdownService: markdownService,
		logger:          log,
	}
}

// GetTerms handles GET /api/terms. The response carries both the raw
// markdown and sanitized HTML so clients can pick either rendering.
func (h *TermsHandler) GetTerms(c *gin.Context) {
	html, err := h.markdownService.ToHTMLSanitized(termsMarkdown)
	if err != nil {
		h.logger.Errorw("failed to render terms document", "error", err)
		utils.ErrorResponse(c, http.StatusInternalServerError, "failed to render terms document")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"version":  constants.TermsVersion,
		"markdown": termsMarkdown,
		"html":     html,
	})
}
