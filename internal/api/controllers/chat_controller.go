package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"localexplorer/internal/models/request_models"
	"localexplorer/internal/models/response_models"
	"localexplorer/internal/services"
	"localexplorer/pkg/utils"
)

type ChatController struct {
	dialogueService services.DialogueServiceInterface
}

func NewChatController(dialogueService services.DialogueServiceInterface) *ChatController {
	return &ChatController{
		dialogueService: dialogueService,
	}
}

// ChatHandler processes one conversational turn. Malformed bodies are the
// only transport-level failures; everything else comes back as dialogue text.
func (ctrl *ChatController) ChatHandler(c *gin.Context) {
	var req request_models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	message := strings.TrimSpace(*req.Message)
	if message == "" {
		utils.RespondSuccess(c, response_models.ChatResponse{
			Response:  "Please enter a valid message.",
			SessionID: req.SessionID,
		}, "No message provided")
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.New().String()
	}

	responseText, err := ctrl.dialogueService.Advance(c.Request.Context(), sessionID, message)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.ChatResponse{
		Response:  responseText,
		SessionID: sessionID,
	}, "Turn processed")
}

// RecommendationsHandler returns the machine-readable last recommendation
// set for a session, with the text and HTML renderings built from it.
func (ctrl *ChatController) RecommendationsHandler(c *gin.Context) {
	sessionID := c.Param("id")
	items, err := ctrl.dialogueService.Recommendations(sessionID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, response_models.RecommendationListResponse{
		Recommendations: items,
		Text:            utils.FormatRecommendations(items),
		HTML:            utils.FormatRecommendationsHTML(items),
	}, "Recommendations fetched")
}
