package dialogue

import "strings"

const (
	patoisPrefix      = "PATOIS:"
	translationPrefix = "TRANSLATION:"
)

// Reply is the parsed result of a generation response. A field is left
// empty when its prefix was absent; callers default each independently.
type Reply struct {
	Patois      string
	Translation string
}

// parseReply scans the response line by line for the two literal
// prefixes and extracts the trimmed remainder of each matching line
func parseReply(text string) Reply {
	var reply Reply
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, patoisPrefix):
			reply.Patois = strings.TrimSpace(strings.TrimPrefix(line, patoisPrefix))
		case strings.HasPrefix(line, translationPrefix):
			reply.Translation = strings.TrimSpace(strings.TrimPrefix(line, translationPrefix))
		}
	}
	return reply
}
