package store

import (
	"fmt"
	"testing"

	"github.com/b5-ai/study-companion-be/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertSystemInsertsAtFront(t *testing.T) {
	c := NewConversation()
	c.UpsertSystem("instructions")

	require.Equal(t, 1, c.Len())
	assert.Equal(t, types.RoleSystem, c.Messages()[0].Role)
}

func TestUpsertSystemReplacesInPlace(t *testing.T) {
	c := NewConversation()
	c.UpsertSystem("v1")
	c.AppendUser("question")
	c.UpsertSystem("v2")

	msgs := c.Messages()
	require.Equal(t, 2, len(msgs))
	assert.Equal(t, "v2", msgs[0].Content)
	assert.Equal(t, "question", msgs[1].Content)
}

func TestTrimKeepsSystemAndMostRecentTurns(t *testing.T) {
	c := NewConversation()
	c.UpsertSystem("instructions")
	for i := 0; i < 30; i++ {
		c.AppendUser(fmt.Sprintf("q%d", i))
		c.Trim()
		c.AppendAssistant(fmt.Sprintf("a%d", i))
		c.Trim()
	}

	msgs := c.Messages()
	require.Equal(t, MaxDialogueTurns+1, len(msgs))
	assert.Equal(t, types.RoleSystem, msgs[0].Role)
	// Most recent 20 dialogue turns survive in original relative order
	assert.Equal(t, "q20", msgs[1].Content)
	assert.Equal(t, "a20", msgs[2].Content)
	assert.Equal(t, "a29", msgs[len(msgs)-1].Content)
}

func TestTrimNoopBelowLimit(t *testing.T) {
	c := NewConversation()
	c.UpsertSystem("instructions")
	c.AppendUser("q")
	c.AppendAssistant("a")
	c.Trim()

	assert.Equal(t, 3, c.Len())
}

func TestReset(t *testing.T) {
	c := NewConversation()
	c.UpsertSystem("instructions")
	c.AppendUser("q")
	c.Reset()

	assert.Equal(t, 0, c.Len())
}
