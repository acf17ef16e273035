package telegram

import (
	"context"
	"strings"

	"github.com/sandevgo/findoc/pkg/conv"
	"github.com/sandevgo/findoc/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const maxTelegramMsgLen = 4000 // Safety margin below 4096

type sender struct{}

func newSender() *sender {
	return &sender{}
}

// sendMarkdown converts Markdown to Telegram HTML and sends it in chunks if
// needed. When Telegram rejects the HTML, the raw text goes out plain.
func (s *sender) sendMarkdown(ctx context.Context, c tele.Context, md string) error {
	logger := log.FromCtx(ctx)

	html := strings.TrimSpace(conv.MarkdownToTelegramHTML([]byte(md)))
	if html == "" {
		return nil
	}

	for i, chunk := range splitHTML(html, maxTelegramMsgLen) {
		if err := c.Send(chunk, tele.ModeHTML); err != nil {
			logger.Warn().Err(err).Int("chunk", i).Int("len", len(chunk)).Msg("html send failed, falling back to plain text")
			return s.sendPlain(ctx, c, md)
		}
	}
	return nil
}

func (s *sender) sendPlain(ctx context.Context, c tele.Context, text string) error {
	logger := log.FromCtx(ctx)
	for i, chunk := range splitHTML(text, maxTelegramMsgLen) {
		if err := c.Send(chunk); err != nil {
			logger.Error().Err(err).Int("chunk", i).Msg("failed to send telegram message")
			return err
		}
	}
	return nil
}

// splitHTML splits text into chunks respecting Telegram's limit.
// It tries to split at newlines to preserve formatting.
func splitHTML(text string, maxLen int) []string {
	if len(text) <= maxLen {
		return []string{text}
	}

	var chunks []string
	for len(text) > 0 {
		if len(text) <= maxLen {
			chunks = append(chunks, text)
			break
		}

		cut := maxLen
		// Try to find a good break point (newline) in the second half of the chunk
		if idx := strings.LastIndex(text[:maxLen], "\n"); idx > maxLen/3 {
			cut = idx
		}

		chunks = append(chunks, text[:cut])
		text = strings.TrimSpace(text[cut:])
	}
	return chunks
}
