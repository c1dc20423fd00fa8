package dialogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseReplyBothLines(t *testing.T) {
	reply := parseReply("PATOIS: Wah gwaan, General!\nTRANSLATION: What's going on, General!")

	assert.Equal(t, "Wah gwaan, General!", reply.Patois)
	assert.Equal(t, "What's going on, General!", reply.Translation)
}

func TestParseReplyTrimsWhitespace(t *testing.T) {
	reply := parseReply("  PATOIS:   Bless up!  \n\n  TRANSLATION:   Blessings!  \n")

	assert.Equal(t, "Bless up!", reply.Patois)
	assert.Equal(t, "Blessings!", reply.Translation)
}

func TestParseReplyIgnoresSurroundingChatter(t *testing.T) {
	reply := parseReply("Sure! Here you go:\nPATOIS: Run fast!\nTRANSLATION: Run fast!\nHope that helps.")

	assert.Equal(t, "Run fast!", reply.Patois)
	assert.Equal(t, "Run fast!", reply.Translation)
}

func TestParseReplyMissingPatois(t *testing.T) {
	reply := parseReply("TRANSLATION: Only the translation came back")

	assert.Empty(t, reply.Patois)
	assert.Equal(t, "Only the translation came back", reply.Translation)
}

func TestParseReplyMissingTranslation(t *testing.T) {
	reply := parseReply("PATOIS: Only di patois come back")

	assert.Equal(t, "Only di patois come back", reply.Patois)
	assert.Empty(t, reply.Translation)
}

func TestParseReplyGarbage(t *testing.T) {
	reply := parseReply("completely unrelated text\nwith no prefixes at all")

	assert.Empty(t, reply.Patois)
	assert.Empty(t, reply.Translation)
}

func TestParseReplyLastOccurrenceWins(t *testing.T) {
	reply := parseReply("PATOIS: first\nPATOIS: second\nTRANSLATION: done")

	assert.Equal(t, "second", reply.Patois)
	assert.Equal(t, "done", reply.Translation)
}
