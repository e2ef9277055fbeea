package zift

import "regexp"

const filtered = "[FILTERED]"

// A value runs to the next pair separator, whitespace or closing quote, so
// percent-encoded symbols inside it are masked too.
var scrubPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(accountNumber=)[^&\s"]+`),
	regexp.MustCompile(`(password=)[^&\s"]+`),
	regexp.MustCompile(`(csc=)[^&\s"]+`),
}

// SupportsScrubbing reports that Scrub can sanitize Zift wire transcripts
func SupportsScrubbing() bool {
	return true
}

// Scrub masks card numbers, passwords and CSC values in a wire transcript.
// Everything else is left byte-for-byte intact.
func Scrub(transcript string) string {
	for _, re := range scrubPatterns {
		transcript = re.ReplaceAllString(transcript, "${1}"+filtered)
	}
	return transcript
}
