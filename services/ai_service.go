// services/ai_service.go
package services

import (
	"fmt"
	"log"
	"strings"
)

const messageSystemPrompt = "You are a professional copywriter specializing in personalized customer " +
	"communications. You write warm, genuine birthday messages that make customers feel valued."

// Per-tone style instructions for the generation prompt. Unrecognized tones
// fall back to friendly.
var toneInstructions = map[string]string{
	"friendly":     "warm, casual, and cheerful. Use exclamation marks and emojis sparingly.",
	"professional": "polite, respectful, and business-appropriate. Maintain professionalism.",
	"formal":       "very formal, respectful, and traditional. Use proper business etiquette.",
}

// AIService generates birthday messages. Provider failures never surface:
// generation falls back to a static per-tone template, so callers always get
// usable text.
type AIService struct {
	groq *GroqClient
}

func NewAIService(groq *GroqClient) *AIService {
	return &AIService{groq: groq}
}

// ComposeBirthdayMessage returns the message body for a contact, plus a flag
// indicating whether the static fallback template was used instead of the
// provider output.
func (s *AIService) ComposeBirthdayMessage(name, tone, businessName string) (string, bool) {
	instruction, ok := toneInstructions[tone]
	if !ok {
		instruction = toneInstructions["friendly"]
	}

	prompt := fmt.Sprintf(`You are writing a birthday wish email from %s to a valued customer named %s.

Requirements:
- Tone: %s
- Length: 2-3 sentences maximum
- Personalize with the customer's name
- Express genuine appreciation for their business
- Make it unique and avoid generic templates
- Do NOT include subject line, just the message body
- Do NOT include signature or closing (we'll add that separately)

Write a heartfelt birthday message:`, businessName, name, instruction)

	generated, err := s.groq.ChatCompletion(messageSystemPrompt, prompt, 0.8, 150)
	if err != nil {
		log.Printf("Error generating AI message: %v", err)
		return fallbackMessage(name, tone, businessName), true
	}

	// Signature block is appended here so the model never has to produce it
	return strings.TrimSpace(generated) + "\n\nWarm regards,\n" + businessName, false
}

// fallbackMessage returns the deterministic template for a tone. Unrecognized
// tones use the friendly template.
func fallbackMessage(name, tone, businessName string) string {
	switch tone {
	case "professional":
		return fmt.Sprintf("Dear %s,\n\nWishing you a very happy birthday. We appreciate your continued partnership and hope you have a wonderful celebration.\n\nBest regards,\n%s", name, businessName)
	case "formal":
		return fmt.Sprintf("Dear %s,\n\nOn behalf of %s, we extend our warmest wishes on your birthday. We value your patronage and hope this day brings you much happiness.\n\nRespectfully,\n%s", name, businessName, businessName)
	default:
		return fmt.Sprintf("Happy Birthday, %s! 🎉 We hope your special day is filled with joy and wonderful moments. Thank you for being such an amazing customer!\n\nWarm regards,\n%s", name, businessName)
	}
}
