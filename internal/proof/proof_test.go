package proof

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateDeterministic(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cid1, tx1 := Generate("user-1", "scan.pdf", at)
	cid2, tx2 := Generate("user-1", "scan.pdf", at)

	assert.Equal(t, cid1, cid2)
	assert.Equal(t, tx1, tx2)
}

func TestGenerateShape(t *testing.T) {
	cid, tx := Generate("user-1", "scan.pdf", time.Now())

	assert.Regexp(t, regexp.MustCompile(`^Qm[0-9a-f]{16}\.\.\.$`), cid)
	assert.Regexp(t, regexp.MustCompile(`^0x[0-9a-f]{32}$`), tx)
}

func TestGenerateInputsMatter(t *testing.T) {
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cid, tx := Generate("user-1", "scan.pdf", at)

	otherUser, _ := Generate("user-2", "scan.pdf", at)
	otherName, _ := Generate("user-1", "other.pdf", at)
	_, otherTime := Generate("user-1", "scan.pdf", at.Add(time.Second))

	assert.NotEqual(t, cid, otherUser)
	assert.NotEqual(t, cid, otherName)
	assert.NotEqual(t, tx, otherTime)
}
