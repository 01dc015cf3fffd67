package core

import (
	"fmt"

	"agrimitra/internal/llm"
	"agrimitra/internal/models"
)

// historyWindow caps how many prior turns are forwarded to the model. Older
// entries are dropped, never summarized.
const historyWindow = 5

// languageNames maps request language codes to the name used in the
// respond-in directive. English is the default and gets no directive.
var languageNames = map[string]string{
	"kn": "Kannada",
	"hi": "Hindi",
	"ta": "Tamil",
}

// ApplyLanguageDirective prefixes text with an explicit respond-in
// instruction for known non-default languages. Unknown codes and "en" leave
// the text untouched.
func ApplyLanguageDirective(text, language string) string {
	name, ok := languageNames[language]
	if !ok {
		return text
	}
	return fmt.Sprintf("[Please respond in %s language] %s", name, text)
}

// BuildConversation assembles the ordered message sequence for a chat turn:
// the system prompt, the trailing history window with roles preserved, and
// the current message as the final user turn. The caller-supplied history is
// never mutated; roles are forwarded as-is.
func BuildConversation(message string, history []models.ChatMessage, language string) []llm.Message {
	start := 0
	if len(history) > historyWindow {
		start = len(history) - historyWindow
	}
	window := history[start:]

	messages := make([]llm.Message, 0, len(window)+2)
	messages = append(messages, llm.Message{Role: llm.RoleSystem, Content: SystemPrompt})
	for _, turn := range window {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{
		Role:    llm.RoleUser,
		Content: ApplyLanguageDirective(message, language),
	})
	return messages
}

// BuildImageAnalysisConversation assembles the multimodal request for a
// crop-image analysis: the system prompt plus one user message that combines
// the analysis instructions (with the optional query appended) and the
// encoded JPEG as an inline data URL.
func BuildImageAnalysisConversation(imageBase64, query, language string) []llm.Message {
	prompt := ImageAnalysisPrompt
	if query != "" {
		prompt = fmt.Sprintf("%s\n\nUser Query: %s", prompt, query)
	}
	prompt = ApplyLanguageDirective(prompt, language)

	return []llm.Message{
		{Role: llm.RoleSystem, Content: SystemPrompt},
		{
			Role:     llm.RoleUser,
			Content:  prompt,
			ImageURL: "data:image/jpeg;base64," + imageBase64,
		},
	}
}
