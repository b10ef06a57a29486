package chatbot

import (
	"context"
	"strings"

	"github.com/firebase/genkit/go/ai"
	"github.com/firebase/genkit/go/genkit"
	"github.com/firebase/genkit/go/plugins/googlegenai"
	"google.golang.org/genai"
)

const (
	emptyQuestionReply = "Please provide a valid question."
	fallbackReply      = "Sorry, I couldn't process that."
)

// cannedReplies maps whole greeting phrases to fixed answers. Matching is
// exact on the lowered question so a real question containing "hi" inside a
// word still reaches the model. These never need an API key.
var cannedReplies = map[string]string{
	"hello":       "Hi there! How can I help you?",
	"hi":          "Hi there! How can I help you?",
	"how are you": "I'm just a bot, but I'm doing great! How about you?",
}

var model = googlegenai.GoogleAIModelRef("gemini-2.5-flash", &genai.GenerateContentConfig{
	MaxOutputTokens: 500,
	Temperature:     genai.Ptr[float32](0.2),
	TopP:            genai.Ptr[float32](0.4),
	ThinkingConfig: &genai.ThinkingConfig{
		ThinkingBudget: genai.Ptr[int32](0),
	},
})

const systemPrompt = `
You are the help assistant for a university timesheet and scheduling portal.
Faculty members submit fortnightly timesheets against their teaching schedule
and finance staff verify submitted hours against scheduled hours.

Guidelines:
1. Answer questions about submitting timesheets, the fortnight date window,
   course codes, schedule filters, and the finance review process.
2. Keep answers short and in plain language.
3. If a question is unrelated to the portal, say you can only help with
   timesheet and scheduling questions.
`

// Responder answers portal questions: canned replies for greetings, a Gemini
// model for everything else.
type Responder struct {
	g *genkit.Genkit
}

// New initializes the underlying Genkit runtime. The Google AI plugin reads
// the API key from GEMINI_API_KEY or GOOGLE_API_KEY.
func New(ctx context.Context) *Responder {
	g := genkit.Init(ctx, genkit.WithPlugins(&googlegenai.GoogleAI{}))
	return &Responder{g: g}
}

// Answer resolves a question to a reply. It never returns an error to the
// caller; a model failure degrades to a fixed apology.
func (r *Responder) Answer(ctx context.Context, question string) string {
	question = strings.TrimSpace(question)
	if question == "" {
		return emptyQuestionReply
	}

	if reply, ok := cannedReplies[strings.ToLower(question)]; ok {
		return reply
	}

	if r == nil || r.g == nil {
		return fallbackReply
	}

	resp, err := genkit.Generate(ctx, r.g,
		ai.WithModel(model),
		ai.WithSystem(systemPrompt),
		ai.WithPrompt(question))
	if err != nil {
		return fallbackReply
	}
	return resp.Text()
}
