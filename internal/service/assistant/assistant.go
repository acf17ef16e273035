// Package assistant composes prompts from session state and forwards them to
// the answering service. It owns the conversation bookkeeping around each
// model call; user-facing error wording stays in the transport layer.
package assistant

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandevgo/findoc/internal/core"
	"github.com/sandevgo/findoc/internal/store"
	"github.com/sandevgo/findoc/pkg/log"
)

// ErrNoDocument reports a document question with no live document context.
var ErrNoDocument = errors.New("no document context")

type Service struct {
	answerer  core.Answerer
	languages *store.LanguageStore
	history   *store.HistoryStore
	documents *store.DocumentStore
	batches   *store.BatchStore

	// docTokenBudget caps how much document text goes into a prompt.
	docTokenBudget int
}

func New(
	answerer core.Answerer,
	languages *store.LanguageStore,
	history *store.HistoryStore,
	documents *store.DocumentStore,
	batches *store.BatchStore,
	docTokenBudget int,
) *Service {
	return &Service{
		answerer:       answerer,
		languages:      languages,
		history:        history,
		documents:      documents,
		batches:        batches,
		docTokenBudget: docTokenBudget,
	}
}

// HasDocument reports whether the user has a live document context to ask
// questions about.
func (s *Service) HasDocument(userID int64) bool {
	_, ok := s.documents.Get(userID)
	return ok
}

// Chat runs one general conversation turn. The user's turn is recorded
// before the model call and stays in history even when the call fails; the
// model turn is only recorded on a non-empty reply.
func (s *Service) Chat(ctx context.Context, userID int64, message string) (string, error) {
	lang := s.languages.Get(userID)

	s.history.Append(userID, core.RoleUser, message)
	prompt := chatPrompt(lang, s.history.Get(userID), message)

	reply, err := s.answerer.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("answering service: %w", err)
	}

	if reply != "" {
		s.history.Append(userID, core.RoleModel, reply)
	}

	log.FromCtx(ctx).Debug().
		Int64("user", userID).
		Int("history", len(s.history.Get(userID))).
		Msg("chat turn complete")
	return reply, nil
}

// AnswerDocument answers a question about the user's live document context.
func (s *Service) AnswerDocument(ctx context.Context, userID int64, question string) (string, error) {
	lang := s.languages.Get(userID)

	doc, ok := s.documents.Get(userID)
	if !ok {
		return "", ErrNoDocument
	}

	doc.Text = truncateTokens(doc.Text, s.docTokenBudget)
	prompt := documentPrompt(lang, question, doc)

	reply, err := s.answerer.Generate(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("answering service: %w", err)
	}
	return reply, nil
}

// Search forwards a raw query to the grounded model for current information.
func (s *Service) Search(ctx context.Context, query string) (string, error) {
	reply, err := s.answerer.Generate(ctx, query)
	if err != nil {
		return "", fmt.Errorf("answering service: %w", err)
	}
	return reply, nil
}
