package core

import "time"

const (
	BotName      = "FinDocBot"
	BotUserAgent = "FinDocBot/0.1"
)

// Language is a user-facing display language.
type Language string

const (
	LanguageEnglish Language = "en"
	LanguageBurmese Language = "my"
)

// Name returns the language name used in model prompts.
func (l Language) Name() string {
	if l == LanguageBurmese {
		return "Burmese"
	}
	return "English"
}

// Conversation turn roles.
const (
	RoleUser  = "user"
	RoleModel = "model"
)

// Turn is one entry of a user's conversation history.
type Turn struct {
	Role string
	Text string
}

// DocType tags extracted document text by its source format.
type DocType string

const (
	DocTypePDF   DocType = "PDF"
	DocTypeExcel DocType = "Excel"
	DocTypeBatch DocType = "Batch"
)

// Document is the extracted text of the most recently processed upload.
type Document struct {
	Text      string
	Type      DocType
	CreatedAt time.Time
}

// BatchFile is one processed upload inside a batch, kept in upload order.
type BatchFile struct {
	FileName string
	Text     string
	Type     DocType
}

// BatchSnapshot is a read-only copy of a user's batch state.
type BatchSnapshot struct {
	Files      []BatchFile
	Processing bool
	CreatedAt  time.Time
}
