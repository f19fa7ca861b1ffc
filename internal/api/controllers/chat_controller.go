package controllers

import (
	"github.com/gin-gonic/gin"

	"aarav/internal/models/request_models"
	"aarav/internal/services"
	"aarav/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

// Chat godoc
// @Summary Handle one conversational turn
// @Description Accepts a traveler message and/or map event and returns the assistant reply with map actions
// @Tags Chat
// @Accept json
// @Produce json
// @Param request body request_models.ChatRequest true "Chat turn payload"
// @Success 200 {object} utils.APIResponse
// @Router /api/chat [post]
func (cc *ChatController) Chat(c *gin.Context) {
	var req request_models.ChatRequest
	// A malformed body is treated as an empty turn, never an error: the
	// assistant answers with its fallback instead of a 400.
	_ = c.ShouldBindJSON(&req)

	resp := cc.chatService.HandleTurn(c.Request.Context(), req)
	utils.RespondSuccess(c, resp, "ok")
}
