package pipeline

import (
	"fmt"
	"regexp"
	"strings"
)

// Fixed working-language failure strings.
const (
	apologyEmpty       = "죄송합니다. 응답을 생성할 수 없습니다."
	apologyErrorFormat = "죄송합니다. 오류가 발생했습니다: %s"
)

// API keys ride in query strings on collaborator URLs and can leak through
// transport errors.
var keyPattern = regexp.MustCompile(`key=[^&"\s]+`)

// finalize is the answer gate: it decides what the caller receives from the
// model output. A failed call or empty output terminates the request with a
// fixed apology; anything else passes through unmodified — refusal versus
// substantive answer was already decided by the model under the composer's
// instructions.
func finalize(output string, err error) (string, bool) {
	if err != nil {
		return fmt.Sprintf(apologyErrorFormat, sanitizeReason(err)), false
	}
	if strings.TrimSpace(output) == "" {
		return apologyEmpty, false
	}
	return output, true
}

func sanitizeReason(err error) string {
	return keyPattern.ReplaceAllString(err.Error(), "key=REDACTED")
}
