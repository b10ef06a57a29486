package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chatbotRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterChatbot(r.Group("/"), nil)
	return r
}

func askChatbot(t *testing.T, r *gin.Engine, body string) string {
	t.Helper()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/chatbot", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Response string `json:"response"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Response
}

func TestChatbotGreeting(t *testing.T) {
	r := chatbotRouter(t)
	assert.Equal(t, "Hi there! How can I help you?", askChatbot(t, r, `{"question":"hello"}`))
}

func TestChatbotEmptyQuestion(t *testing.T) {
	r := chatbotRouter(t)
	assert.Equal(t, "Please provide a valid question.", askChatbot(t, r, `{"question":""}`))
	assert.Equal(t, "Please provide a valid question.", askChatbot(t, r, `{}`))
	assert.Equal(t, "Please provide a valid question.", askChatbot(t, r, `not json`))
}
