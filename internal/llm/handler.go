package llm

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
)

const upstreamError = "Er is iets misgegaan met de OpenAI API"

type Handler struct {
	client *OpenAIClient
}

func NewHandler(client *OpenAIClient) *Handler {
	return &Handler{client: client}
}

//
// --------------------------------------------------
// POST /api/chat
// --------------------------------------------------
//

// Chat forwards the request body to the chat-completions API unchanged,
// keeping the key server-side. The upstream response passes through as-is.
func (h *Handler) Chat() gin.HandlerFunc {
	return func(c *gin.Context) {

		if !h.client.HasKey() {
			c.JSON(http.StatusInternalServerError, gin.H{"error": upstreamError})
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		raw, status, err := h.client.Forward(c.Request.Context(), body)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": upstreamError})
			return
		}

		c.Data(status, "application/json", raw)
	}
}

//
// --------------------------------------------------
// POST /api/openai
// --------------------------------------------------
//

func (h *Handler) Describe() gin.HandlerFunc {
	return func(c *gin.Context) {

		var req struct {
			Prompt string `json:"prompt"`
			Lang   string `json:"lang"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
			return
		}

		text, err := h.client.Generate(c.Request.Context(), req.Prompt, req.Lang)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": upstreamError})
			return
		}

		c.JSON(http.StatusOK, gin.H{"description": text})
	}
}
