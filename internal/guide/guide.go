// Package guide implements the scripted wisdom guide: a keyword-matched
// responder over a fixed set of Bhagavad Gita topics, with English and
// Hindi reply sets and a conversation transcript.
package guide

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Language selects the reply set.
type Language string

const (
	English Language = "english"
	Hindi   Language = "hindi"
)

// Role identifies the author of a transcript message.
type Role string

const (
	RoleUser  Role = "user"
	RoleGuide Role = "guide"
)

// Message is one entry in the conversation transcript.
type Message struct {
	Role Role
	Text string
	At   time.Time
}

// DefaultTypingDelay imitates the guide composing a reply.
const DefaultTypingDelay = 1500 * time.Millisecond

// reply holds one scripted answer with the keywords that trigger it.
type reply struct {
	keywords []string
	text     map[Language]string
}

var replies = []reply{
	{
		keywords: []string{"karma", "कर्म"},
		text: map[Language]string{
			English: "The principle of Karma teaches that every action has a consequence. In the Gita, Lord Krishna says, 'You have a right to perform your prescribed duties, but you are not entitled to the fruits of your actions.' This teaches us to act without attachment to results.",
			Hindi:   "कर्म का सिद्धांत बताता है कि हर कार्य का एक परिणाम होता है। गीता में श्री कृष्ण कहते हैं, 'कर्मण्येवाधिकारस्ते मा फलेषु कदाचन' - आपका अधिकार केवल कर्म करने में है, फल पर नहीं।",
		},
	},
	{
		keywords: []string{"dharma", "धर्म"},
		text: map[Language]string{
			English: "Dharma refers to your duty and moral responsibility. In the Gita, following one's dharma is considered the primary purpose of life. The path of dharma leads to harmony and spiritual growth.",
			Hindi:   "धर्म का अर्थ है आपका कर्तव्य और नैतिक जिम्मेदारी। गीता में, धर्म का पालन करना जीवन का मूल उद्देश्य माना गया है। अपने धर्म का पालन करना ही सच्ची आध्यात्मिकता है।",
		},
	},
	{
		keywords: []string{"meditation", "ध्यान"},
		text: map[Language]string{
			English: "Meditation is a key spiritual practice. According to the Gita, meditation helps in developing concentration and self-awareness. Regular meditation leads to inner peace and clarity of mind.",
			Hindi:   "ध्यान एक महत्वपूर्ण आध्यात्मिक अभ्यास है। गीता के अनुसार, ध्यान से मन की एकाग्रता और आत्म-ज्ञान बढ़ता है। नियमित ध्यान से आंतरिक शांति और स्पष्टता मिलती है।",
		},
	},
}

var fallback = map[Language]string{
	English: "I apologize, but I don't have a specific answer for that question. Please ask about a specific topic or verse from the Bhagavad Gita, and I'll do my best to help you understand its teachings.",
	Hindi:   "मुझे खेद है, मैं आपके प्रश्न का उत्तर नहीं दे पा रहा हूँ। कृपया भगवद गीता के किसी विशिष्ट विषय या श्लोक के बारे में पूछें।",
}

// Guide answers questions from the scripted reply set and keeps the
// conversation transcript.
type Guide struct {
	mu         sync.Mutex
	language   Language
	typingWait time.Duration
	transcript []Message
}

// Option configures a Guide.
type Option func(*Guide)

// WithLanguage sets the initial reply language.
func WithLanguage(lang Language) Option {
	return func(g *Guide) { g.language = lang }
}

// WithTypingDelay overrides the simulated typing delay. Zero disables it.
func WithTypingDelay(d time.Duration) Option {
	return func(g *Guide) { g.typingWait = d }
}

// New creates a guide answering in English with the default typing delay.
func New(opts ...Option) *Guide {
	g := &Guide{
		language:   English,
		typingWait: DefaultTypingDelay,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Language returns the active reply language.
func (g *Guide) Language() Language {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.language
}

// SetLanguage switches the reply language for subsequent questions.
func (g *Guide) SetLanguage(lang Language) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if lang == Hindi {
		g.language = Hindi
	} else {
		g.language = English
	}
}

// Ask answers a question after the typing delay and records both sides
// in the transcript. Keyword matching is case-insensitive substring
// matching, first match wins; unmatched questions get the fallback reply.
func (g *Guide) Ask(ctx context.Context, question string) (string, error) {
	if g.typingWait > 0 {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(g.typingWait):
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	answer := g.respond(question)
	now := time.Now()
	g.transcript = append(g.transcript,
		Message{Role: RoleUser, Text: question, At: now},
		Message{Role: RoleGuide, Text: answer, At: now},
	)
	return answer, nil
}

// Transcript returns a copy of the conversation so far.
func (g *Guide) Transcript() []Message {
	g.mu.Lock()
	defer g.mu.Unlock()
	out := make([]Message, len(g.transcript))
	copy(out, g.transcript)
	return out
}

func (g *Guide) respond(question string) string {
	lowered := strings.ToLower(question)
	for _, r := range replies {
		for _, keyword := range r.keywords {
			if strings.Contains(lowered, keyword) {
				return r.text[g.language]
			}
		}
	}
	return fallback[g.language]
}
