package handlers

import (
	"net/http"

	"campustime.com/campustime/chatbot"
	"github.com/gin-gonic/gin"
)

type ChatbotEndpoint struct {
	responder *chatbot.Responder
}

func RegisterChatbot(r *gin.RouterGroup, responder *chatbot.Responder) {
	endpoint := &ChatbotEndpoint{responder: responder}
	r.POST("/chatbot", endpoint.Ask)
}

type QuestionDTO struct {
	Question string `json:"question"`
}

// Ask answers a portal question. Malformed bodies and empty questions get
// the same gentle nudge the assistant gives, never a binding error.
func (ep *ChatbotEndpoint) Ask(c *gin.Context) {
	var dto QuestionDTO
	// A missing body is treated as an empty question.
	_ = c.ShouldBindJSON(&dto)

	reply := ep.responder.Answer(c.Request.Context(), dto.Question)
	c.JSON(http.StatusOK, gin.H{"response": reply})
}
