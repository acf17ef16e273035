package assistant

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	tkOnce sync.Once
	tk     *tiktoken.Tiktoken
)

func tokenizer() *tiktoken.Tiktoken {
	tkOnce.Do(func() {
		t, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			panic("failed to load tiktoken: " + err.Error())
		}
		tk = t
	})
	return tk
}

// truncateTokens cuts text to at most budget tokens, keeping the head. A
// non-positive budget disables truncation.
func truncateTokens(text string, budget int) string {
	if budget <= 0 {
		return text
	}

	ids := tokenizer().Encode(text, nil, nil)
	if len(ids) <= budget {
		return text
	}
	return tokenizer().Decode(ids[:budget])
}
