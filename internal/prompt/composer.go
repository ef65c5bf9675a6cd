package prompt

import (
	"fmt"
	"strings"

	"github.com/mjc-ai/haksabot/internal/retrieval"
)

// maxPromptLen bounds the assembled user content; overflow is cut from the
// tail before the model call.
const maxPromptLen = 8000

// Mode determines which guardrail instructions govern the model call.
type Mode int

const (
	// ModeRetrieval answers strictly from retrieved documents.
	ModeRetrieval Mode = iota
	// ModeContext answers from recent conversation context only.
	ModeContext
	// ModeBare answers generally, refusing off-domain questions.
	ModeBare
)

func (m Mode) String() string {
	switch m {
	case ModeRetrieval:
		return "retrieval"
	case ModeContext:
		return "context"
	default:
		return "bare"
	}
}

// Bundle is the complete input for one model call, immutable once built.
type Bundle struct {
	System string
	User   string
	Mode   Mode
}

// SelectMode maps the available inputs to exactly one answer mode. Retrieved
// documents win over context; with neither, the bare guardrails apply.
func SelectMode(snippets []retrieval.Snippet, contextWindow string) Mode {
	switch {
	case len(snippets) > 0:
		return ModeRetrieval
	case strings.TrimSpace(contextWindow) != "":
		return ModeContext
	default:
		return ModeBare
	}
}

// Compose assembles documents, context, and question into a single prompt
// bundle. Output is deterministic for identical inputs.
func Compose(question string, snippets []retrieval.Snippet, contextWindow string) Bundle {
	mode := SelectMode(snippets, contextWindow)

	var parts []string

	if mode == ModeRetrieval {
		parts = append(parts, "참고할 수 있는 학사 정보:")
		for _, s := range snippets {
			parts = append(parts, fmt.Sprintf("문서 %d: %s", s.Rank, s.Text))
		}
		parts = append(parts, "")
	}

	if strings.TrimSpace(contextWindow) != "" {
		parts = append(parts, "이전 대화 맥락:\n"+contextWindow, "")
	}

	parts = append(parts, "현재 질문: "+question, "")

	switch mode {
	case ModeRetrieval:
		parts = append(parts, retrievalInstruction)
	case ModeContext:
		parts = append(parts, contextInstruction)
	default:
		parts = append(parts, bareInstruction)
	}

	return Bundle{
		System: systemPrompt,
		User:   clamp(strings.Join(parts, "\n")),
		Mode:   mode,
	}
}

func clamp(text string) string {
	runes := []rune(text)
	if len(runes) <= maxPromptLen {
		return text
	}
	return string(runes[:maxPromptLen])
}
