package telegram

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sandevgo/findoc/internal/core"
	"github.com/sandevgo/findoc/internal/locale"
	"github.com/sandevgo/findoc/internal/service/assistant"
	"github.com/sandevgo/findoc/pkg/log"
	tele "gopkg.in/telebot.v3"
)

// Batch mode messages are English-only regardless of the user's language
// preference.
const (
	msgMenu = "Choose a command from the menu below:"

	msgSearchHint = "Please provide a search query. Example: /search current exchange rates"

	msgBatchActivated = "📁 Batch Processing Mode Activated!\n\n" +
		"Please upload multiple PDF and/or Excel files. I'll process them all and then you can ask me to compare them or analyze them together.\n\n" +
		"Commands:\n" +
		"- /batch_analyze - Analyze all uploaded files together\n" +
		"- /batch_clear - Clear the current batch\n" +
		"- /batch_status - Check the status of your batch"

	msgBatchNoFiles   = "❌ No files in batch. Please upload files first or use /batch to start."
	msgBatchDone      = "✅ Batch of %d files processed successfully! You can now ask me questions about all these documents together."
	msgBatchCleared   = "✅ Batch cleared successfully!"
	msgBatchInactive  = "❌ No active batch. Use /batch to start."
	msgBatchFileAdded = "✅ Added %s file: %s to batch. %d files processed so far."

	msgDocProcessed = "✅ %s file processed successfully! You can now ask me questions about this document."
)

func (b *Bot) handleStart(c tele.Context) error {
	msgs := locale.Get(b.languages.Get(c.Sender().ID))
	return c.Send(msgs.Welcome, menuKeyboard())
}

func (b *Bot) handleHelp(c tele.Context) error {
	msgs := locale.Get(b.languages.Get(c.Sender().ID))
	return c.Send(msgs.Help, menuKeyboard())
}

func (b *Bot) handleMenu(c tele.Context) error {
	return c.Send(msgMenu, menuKeyboard())
}

func (b *Bot) handleEnglish(c tele.Context) error {
	userID := c.Sender().ID
	b.languages.Set(userID, core.LanguageEnglish)
	return c.Send(locale.Get(b.languages.Get(userID)).LanguageChanged)
}

func (b *Bot) handleBurmese(c tele.Context) error {
	userID := c.Sender().ID
	b.languages.Set(userID, core.LanguageBurmese)
	return c.Send(locale.Get(b.languages.Get(userID)).LanguageChanged)
}

func (b *Bot) handleSearch(c tele.Context) error {
	ctx := b.baseCtx(c)
	userID := c.Sender().ID
	msgs := locale.Get(b.languages.Get(userID))

	query := strings.TrimSpace(c.Message().Payload)
	if query == "" {
		return c.Send(msgSearchHint)
	}

	_ = c.Notify(tele.Typing)

	reply, err := b.assistant.Search(ctx, query)
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Int64("user", userID).Msg("search failed")
		return c.Send(msgs.GeneralError)
	}
	return b.sender.sendMarkdown(ctx, c, reply)
}

func (b *Bot) handleBatch(c tele.Context) error {
	b.batches.Initialize(c.Sender().ID)
	return c.Send(msgBatchActivated)
}

func (b *Bot) handleBatchAnalyze(c tele.Context) error {
	ctx := b.baseCtx(c)
	userID := c.Sender().ID
	msgs := locale.Get(b.languages.Get(userID))

	n, err := b.assistant.AnalyzeBatch(userID)
	if errors.Is(err, assistant.ErrNoFiles) {
		return c.Send(msgBatchNoFiles)
	}
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Int64("user", userID).Msg("batch analyze failed")
		return c.Send(msgs.GeneralError)
	}
	return c.Send(fmt.Sprintf(msgBatchDone, n))
}

func (b *Bot) handleBatchClear(c tele.Context) error {
	b.batches.Clear(c.Sender().ID)
	return c.Send(msgBatchCleared)
}

func (b *Bot) handleBatchStatus(c tele.Context) error {
	userID := c.Sender().ID

	snap, ok := b.batches.Get(userID)
	if !ok {
		return c.Send(msgBatchInactive)
	}

	var status strings.Builder
	status.WriteString("📁 Batch Status\n\n")
	fmt.Fprintf(&status, "Files processed: %d\n\n", len(snap.Files))

	if len(snap.Files) > 0 {
		status.WriteString("Files in batch:\n")
		for i, file := range snap.Files {
			fmt.Fprintf(&status, "%d. %s (%s)\n", i+1, file.FileName, file.Type)
		}
	}
	status.WriteString("\nUse /batch_analyze to analyze all files together.")

	return c.Send(status.String())
}

func (b *Bot) handleDocument(c tele.Context) error {
	ctx := b.baseCtx(c)
	logger := log.FromCtx(ctx)
	userID := c.Sender().ID
	msgs := locale.Get(b.languages.Get(userID))

	doc := c.Message().Document
	if doc == nil {
		return nil
	}
	fileName := strings.ToLower(doc.FileName)

	batch, inBatch := b.batches.Get(userID)

	// Acknowledge the upload unless the user is mid-batch-analysis, where a
	// per-file confirmation follows instead.
	if !inBatch || !batch.Processing {
		_ = c.Send(msgs.Processing)
	}

	extractor, err := b.extractors.ForFile(fileName)
	if err != nil {
		return c.Send(msgs.UnsupportedFormat)
	}

	data, err := b.fetch(ctx, &doc.File)
	if err != nil {
		logger.Error().Err(err).Int64("user", userID).Str("file", fileName).Msg("file download failed")
		return c.Send(msgs.GeneralError)
	}

	text, err := extractor.Extract(data)
	if err != nil || text == "" {
		logger.Error().Err(err).Int64("user", userID).Str("file", fileName).Msg("document extraction failed")
		return c.Send(msgs.ProcessingError)
	}

	if inBatch {
		b.batches.AddFile(userID, fileName, text, extractor.Type())
		if batch.Processing {
			count := len(batch.Files) + 1
			return c.Send(fmt.Sprintf(msgBatchFileAdded, extractor.Type(), fileName, count))
		}
		return nil
	}

	b.documents.Set(userID, text, extractor.Type())
	return c.Send(fmt.Sprintf(msgDocProcessed, extractor.Type()))
}

func (b *Bot) handleText(c tele.Context) error {
	ctx := b.baseCtx(c)
	userID := c.Sender().ID
	msgs := locale.Get(b.languages.Get(userID))

	text := strings.TrimSpace(c.Text())
	switch strings.ToLower(text) {
	case "hi", "hello", "hey":
		return c.Send(msgs.Greeting)
	}

	_ = c.Notify(tele.Typing)

	var (
		reply string
		err   error
	)
	if b.assistant.HasDocument(userID) {
		reply, err = b.assistant.AnswerDocument(ctx, userID, text)
		if errors.Is(err, assistant.ErrNoDocument) {
			return c.Send(msgs.SendDocument)
		}
	} else {
		reply, err = b.assistant.Chat(ctx, userID, text)
	}
	if err != nil {
		log.FromCtx(ctx).Error().Err(err).Int64("user", userID).Msg("model call failed")
		return c.Send(msgs.GeneralError)
	}

	return b.sender.sendMarkdown(ctx, c, reply)
}
