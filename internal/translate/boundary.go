package translate

import (
	"context"
	"log/slog"
)

// Boundary wraps the pipeline with language handling: incoming messages are
// translated into the working language before retrieval and prompting, and
// answers are translated back on the way out. Every failure degrades to
// pass-through text; the boundary never fails a request.
type Boundary struct {
	translator Translator
	logger     *slog.Logger
}

func NewBoundary(translator Translator, logger *slog.Logger) *Boundary {
	return &Boundary{translator: translator, logger: logger}
}

// Inbound detects the language of text and translates it to Korean when it is
// one of the supported user languages. Korean input passes through untouched.
// Detection or translation failure returns the original text with the
// language marked unknown.
func (b *Boundary) Inbound(ctx context.Context, text string) (string, string, bool) {
	if b == nil || b.translator == nil {
		return text, LangUnknown, false
	}

	lang, err := b.translator.Detect(ctx, text)
	if err != nil {
		b.logger.Warn("language detection failed", "error", err)
		return text, LangUnknown, false
	}

	if !Supported(lang) {
		if lang != LangKorean {
			// Unsupported detections collapse to unknown; the answer will
			// not be translated back for them either.
			lang = LangUnknown
		}
		return text, lang, false
	}

	translated, err := b.translator.Translate(ctx, text, LangKorean)
	if err != nil {
		b.logger.Warn("inbound translation failed", "lang", lang, "error", err)
		return text, LangUnknown, false
	}

	b.logger.Debug("inbound translated", "lang", lang)
	return translated, lang, true
}

// Outbound translates a working-language answer to the target language.
// Korean and unknown targets pass through; failure falls back to the
// untranslated Korean text.
func (b *Boundary) Outbound(ctx context.Context, text, target string) string {
	if b == nil || b.translator == nil {
		return text
	}
	if !Supported(target) {
		return text
	}

	translated, err := b.translator.Translate(ctx, text, target)
	if err != nil {
		b.logger.Warn("outbound translation failed", "lang", target, "error", err)
		return text
	}
	return translated
}
