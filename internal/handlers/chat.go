package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/middleware"
	"github.com/cherilynwood/dog-enrichment-backend/internal/services"
)

type ChatHandler struct {
	log         *logger.Logger
	chatService services.ChatService
}

func NewChatHandler(log *logger.Logger, chatService services.ChatService) *ChatHandler {
	return &ChatHandler{log: log, chatService: chatService}
}

type chatRequest struct {
	Message string                 `json:"message"`
	History []services.ChatMessage `json:"history"`
}

func (ch *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please enter a message"})
		return
	}

	profile := middleware.ProfileFromContext(c)
	result := ch.chatService.Respond(c.Request.Context(), message, req.History, profile)
	c.JSON(http.StatusOK, result)
}

type breakdownRequest struct {
	ActivityName string `json:"activity_name"`
}

func (ch *ChatHandler) ActivityBreakdown(c *gin.Context) {
	var req breakdownRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	name := strings.TrimSpace(req.ActivityName)
	if name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please specify an activity name"})
		return
	}

	result := ch.chatService.ActivityBreakdown(c.Request.Context(), name)
	c.JSON(http.StatusOK, result)
}
