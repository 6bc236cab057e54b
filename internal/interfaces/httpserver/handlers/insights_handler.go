package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"jan-server/services/chat-insights/internal/domain/insights"
	"jan-server/services/chat-insights/internal/interfaces/httpserver/requests"
	"jan-server/services/chat-insights/internal/interfaces/httpserver/responses"
	"jan-server/services/chat-insights/internal/utils/platformerrors"
)

const (
	msgMissingText           = "Missing 'text' field"
	msgMissingConversationID = "Missing 'conversation_id' field"
)

// InsightsHandler exposes the corpus queries and the text normalizer.
type InsightsHandler struct {
	service insights.Service
	log     zerolog.Logger
}

func NewInsightsHandler(service insights.Service, log zerolog.Logger) *InsightsHandler {
	return &InsightsHandler{
		service: service,
		log:     log.With().Str("component", "insights-handler").Logger(),
	}
}

// Summary godoc
// @Summary      Corpus summary
// @Description  Counts distinct conversations, messages and distinct articles in the loaded dataset.
// @Tags         insights
// @Produce      json
// @Success      200  {object}  analysis.CorpusSummary
// @Failure      503  {object}  responses.ErrorResponse
// @Router       /summary [get]
func (h *InsightsHandler) Summary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "Failed to compute summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Transform godoc
// @Summary      Normalize text
// @Description  Applies the dataset's normalization policy to arbitrary text.
// @Tags         insights
// @Accept       json
// @Produce      json
// @Param        request  body      requests.TransformRequest  true  "Text to normalize"
// @Success      200      {object}  responses.TransformResponse
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      503      {object}  responses.ErrorResponse
// @Router       /transform [post]
func (h *InsightsHandler) Transform(c *gin.Context) {
	var req requests.TransformRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.rejectBinding(c, err, msgMissingText)
		return
	}

	processed, err := h.service.Transform(c.Request.Context(), *req.Text)
	if err != nil {
		responses.HandleError(c, err, "Failed to transform text")
		return
	}
	c.JSON(http.StatusOK, responses.TransformResponse{ProcessedText: processed})
}

// Analyze godoc
// @Summary      Conversation summary
// @Description  Message counts and most frequent sentiment per agent for one conversation.
// @Tags         insights
// @Accept       json
// @Produce      json
// @Param        request  body      requests.AnalyzeRequest  true  "Conversation to analyze"
// @Success      200      {object}  analysis.ConversationSummary
// @Failure      400      {object}  responses.ErrorResponse
// @Failure      404      {object}  responses.ErrorResponse
// @Failure      503      {object}  responses.ErrorResponse
// @Router       /analyze [post]
func (h *InsightsHandler) Analyze(c *gin.Context) {
	var req requests.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.rejectBinding(c, err, msgMissingConversationID)
		return
	}

	summary, err := h.service.Analyze(c.Request.Context(), *req.ConversationID)
	if err != nil {
		responses.HandleError(c, err, "Failed to analyze conversation")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// Reload godoc
// @Summary      Reload dataset
// @Description  Re-runs the pipeline on the configured dataset and swaps the served snapshot.
// @Tags         admin
// @Produce      json
// @Success      200  {object}  insights.ReloadResult
// @Failure      500  {object}  responses.ErrorResponse
// @Failure      503  {object}  responses.ErrorResponse
// @Router       /admin/reload [post]
func (h *InsightsHandler) Reload(c *gin.Context) {
	result, err := h.service.Reload(c.Request.Context())
	if err != nil {
		responses.HandleError(c, err, "Failed to reload dataset")
		return
	}
	c.JSON(http.StatusOK, result)
}

// Ready reports whether a snapshot is being served.
func (h *InsightsHandler) Ready(c *gin.Context) {
	if !h.service.Ready() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (h *InsightsHandler) rejectBinding(c *gin.Context, err error, message string) {
	event := h.log.Debug().Err(err)
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		fields := make([]string, 0, len(validationErrs))
		for _, fe := range validationErrs {
			fields = append(fields, fe.Field())
		}
		event = event.Strs("fields", fields)
	}
	event.Msg("rejected request body")
	responses.HandleNewError(c, platformerrors.ErrorTypeValidation, message, err)
}
