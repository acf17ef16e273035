package assistant

import (
	"fmt"
	"strings"

	"github.com/sandevgo/findoc/internal/core"
)

func chatPrompt(lang core.Language, history []core.Turn, message string) string {
	var h strings.Builder
	for _, turn := range history {
		fmt.Fprintf(&h, "%s: %s\n", turn.Role, turn.Text)
	}

	return fmt.Sprintf(`You are a helpful financial assistant. Please respond to the user's message appropriately.
Keep your responses concise and helpful.

IMPORTANT:
1. Respond in %s language.
2. Focus on financial topics when relevant
3. Be helpful with general questions about finance, accounting, or document processing
4. For current information, use web search to get up-to-date data

Conversation history:
%s
User's latest message: %s

Please provide a helpful and concise response with proper markdown formatting where appropriate.`,
		lang.Name(), h.String(), message)
}

func documentPrompt(lang core.Language, question string, doc core.Document) string {
	return fmt.Sprintf(`You are a financial document assistant. Please answer the user's question about the financial document they uploaded.

User's question: %s

Document content: %s

Document type: %s

IMPORTANT:
1. The document content is provided in a structured format to help you understand the data
2. For Excel files, you'll see column names and sample data in a table format
3. For PDF files, you'll see text organized by pages
4. Respond in %s language.
5. Provide specific, accurate answers based on the document content
6. If the question cannot be answered with the provided data, say so clearly
7. If the question asks about current/recent financial data, use web search to get up-to-date information

Please provide a focused and helpful response to the user's question.`,
		question, doc.Text, doc.Type, lang.Name())
}
