package telegram

import (
	"strings"
	"testing"
)

func TestSplitHTML(t *testing.T) {
	t.Run("short text stays whole", func(t *testing.T) {
		chunks := splitHTML("hello", 100)
		if len(chunks) != 1 || chunks[0] != "hello" {
			t.Fatalf("unexpected chunks: %v", chunks)
		}
	})

	t.Run("long text splits under limit", func(t *testing.T) {
		var b strings.Builder
		for i := 0; i < 300; i++ {
			b.WriteString("line of the report\n")
		}

		chunks := splitHTML(b.String(), maxTelegramMsgLen)
		if len(chunks) < 2 {
			t.Fatalf("expected multiple chunks, got %d", len(chunks))
		}
		for i, chunk := range chunks {
			if len(chunk) > maxTelegramMsgLen {
				t.Errorf("chunk %d exceeds limit: %d", i, len(chunk))
			}
		}
	})

	t.Run("prefers newline break points", func(t *testing.T) {
		text := strings.Repeat("a", 90) + "\n" + strings.Repeat("b", 90)
		chunks := splitHTML(text, 100)
		if len(chunks) != 2 {
			t.Fatalf("expected 2 chunks, got %d", len(chunks))
		}
		if !strings.HasSuffix(chunks[0], "a") || !strings.HasPrefix(chunks[1], "b") {
			t.Errorf("split did not happen at the newline: %q | %q", chunks[0], chunks[1])
		}
	})
}
