package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/mjc-ai/haksabot/internal/retrieval"
)

func snippets(texts ...string) []retrieval.Snippet {
	out := make([]retrieval.Snippet, len(texts))
	for i, t := range texts {
		out[i] = retrieval.Snippet{Rank: i + 1, Text: t}
	}
	return out
}

func TestSelectMode_TotalAndExclusive(t *testing.T) {
	cases := []struct {
		name     string
		snippets []retrieval.Snippet
		context  string
		want     Mode
	}{
		{"snippets and context", snippets("문서"), "사용자: 안녕\n챗봇: 안녕하세요", ModeRetrieval},
		{"snippets only", snippets("문서"), "", ModeRetrieval},
		{"context only", nil, "사용자: 안녕\n챗봇: 안녕하세요", ModeContext},
		{"whitespace context is empty", nil, "   \n\t", ModeBare},
		{"neither", nil, "", ModeBare},
	}
	for _, tc := range cases {
		if got := SelectMode(tc.snippets, tc.context); got != tc.want {
			t.Errorf("%s: expected mode %s, got %s", tc.name, tc.want, got)
		}
	}
}

func TestCompose_RetrievalMode(t *testing.T) {
	b := Compose("등록금이 얼마인가요?", snippets("등록금 납부 안내", "장학금 안내"), "")

	if b.Mode != ModeRetrieval {
		t.Fatalf("expected retrieval mode, got %s", b.Mode)
	}
	if !strings.Contains(b.User, "참고할 수 있는 학사 정보:") {
		t.Error("expected reference header in prompt")
	}
	if !strings.Contains(b.User, "문서 1: 등록금 납부 안내") || !strings.Contains(b.User, "문서 2: 장학금 안내") {
		t.Errorf("expected numbered documents in prompt, got %q", b.User)
	}
	if !strings.Contains(b.User, "현재 질문: 등록금이 얼마인가요?") {
		t.Error("expected question line in prompt")
	}
	if !strings.Contains(b.User, RefusalNotFound) {
		t.Error("retrieval instructions should carry the refusal string")
	}
	if strings.Contains(b.User, RefusalOffTopic) {
		t.Error("retrieval mode should not carry the off-topic refusal")
	}
}

func TestCompose_ContextMode(t *testing.T) {
	window := "사용자: 휴학하려면?\n챗봇: 휴학 신청은 포털에서 합니다."
	b := Compose("왜?", nil, window)

	if b.Mode != ModeContext {
		t.Fatalf("expected context mode, got %s", b.Mode)
	}
	if !strings.Contains(b.User, "이전 대화 맥락:\n"+window) {
		t.Error("expected context window in prompt")
	}
	if !strings.Contains(b.User, "위 대화 맥락을 바탕으로") {
		t.Error("expected context instructions")
	}
	if strings.Contains(b.User, "참고할 수 있는 학사 정보:") {
		t.Error("context mode should not include a reference header")
	}
}

func TestCompose_BareMode(t *testing.T) {
	b := Compose("안녕하세요", nil, "")

	if b.Mode != ModeBare {
		t.Fatalf("expected bare mode, got %s", b.Mode)
	}
	if !strings.Contains(b.User, RefusalOffTopic) {
		t.Error("bare mode instructions should carry the domain refusal")
	}
	if strings.Contains(b.User, "이전 대화 맥락") {
		t.Error("bare mode should not include a context section")
	}
}

func TestCompose_RetrievalModeIncludesContextWindow(t *testing.T) {
	window := "사용자: 안녕\n챗봇: 안녕하세요"
	b := Compose("등록금", snippets("등록금 안내"), window)

	if b.Mode != ModeRetrieval {
		t.Fatalf("expected retrieval mode, got %s", b.Mode)
	}
	if !strings.Contains(b.User, "이전 대화 맥락:\n"+window) {
		t.Error("retrieval mode should still include the context window")
	}
}

func TestCompose_Deterministic(t *testing.T) {
	s := snippets("문서 내용")
	first := Compose("질문", s, "맥락")
	second := Compose("질문", s, "맥락")
	if first != second {
		t.Error("identical inputs must compose identical bundles")
	}
}

func TestCompose_ClampsTail(t *testing.T) {
	long := strings.Repeat("가", 9000)
	b := Compose(long, nil, "")

	if got := utf8.RuneCountInString(b.User); got != maxPromptLen {
		t.Errorf("expected prompt clamped to %d runes, got %d", maxPromptLen, got)
	}
	if !strings.HasPrefix(b.User, "현재 질문: ") {
		t.Error("clamp should cut the tail, not the head")
	}
}

func TestCompose_SystemPromptCarriesIdentity(t *testing.T) {
	b := Compose("질문", nil, "")
	if !strings.Contains(b.System, "명지전문대학 학사 챗봇") {
		t.Error("system prompt should state the assistant identity")
	}
	if !strings.Contains(b.System, "identity_question") {
		t.Error("system prompt should carry the question-class exemplars")
	}
}
