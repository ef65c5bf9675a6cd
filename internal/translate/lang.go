package translate

// Language tags the pipeline understands. Korean is the working language:
// retrieval, context, and prompting all operate in Korean regardless of the
// language a message arrived in.
const (
	LangKorean     = "ko"
	LangEnglish    = "en"
	LangBurmese    = "my"
	LangVietnamese = "vi"
	LangUnknown    = "unknown"
)

// supported lists the non-working languages the boundary translates.
var supported = map[string]bool{
	LangEnglish:    true,
	LangBurmese:    true,
	LangVietnamese: true,
}

// Supported reports whether lang is a translatable user language.
func Supported(lang string) bool {
	return supported[lang]
}
