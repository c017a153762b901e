package store

import "github.com/b5-ai/study-companion-be/types"

// MaxDialogueTurns is how many non-system turns survive a trim.
const MaxDialogueTurns = 20

// Conversation is an ordered log of role-tagged turns. At most one
// system turn exists and it always sits at position 0.
type Conversation struct {
	turns []types.Message
}

func NewConversation() *Conversation {
	return &Conversation{}
}

// UpsertSystem sets turn 0 to a system turn with the given content,
// inserting if the log is empty and replacing otherwise. It never
// appends a second system turn.
func (c *Conversation) UpsertSystem(content string) {
	msg := types.Message{Role: types.RoleSystem, Content: content}
	if len(c.turns) == 0 || c.turns[0].Role != types.RoleSystem {
		c.turns = append([]types.Message{msg}, c.turns...)
		return
	}
	c.turns[0] = msg
}

func (c *Conversation) AppendUser(content string) {
	c.turns = append(c.turns, types.Message{Role: types.RoleUser, Content: content})
}

func (c *Conversation) AppendAssistant(content string) {
	c.turns = append(c.turns, types.Message{Role: types.RoleAssistant, Content: content})
}

// Trim drops the oldest dialogue turns so that at most the system turn
// plus the most recent MaxDialogueTurns remain, preserving relative
// order.
func (c *Conversation) Trim() {
	if len(c.turns) <= MaxDialogueTurns+1 {
		return
	}
	trimmed := make([]types.Message, 0, MaxDialogueTurns+1)
	trimmed = append(trimmed, c.turns[0])
	trimmed = append(trimmed, c.turns[len(c.turns)-MaxDialogueTurns:]...)
	c.turns = trimmed
}

func (c *Conversation) Reset() {
	c.turns = nil
}

func (c *Conversation) Len() int {
	return len(c.turns)
}

// Messages returns a copy of the full turn sequence for handing to a
// completion provider.
func (c *Conversation) Messages() []types.Message {
	out := make([]types.Message, len(c.turns))
	copy(out, c.turns)
	return out
}
