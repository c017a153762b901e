package service

import (
	"fmt"

	"github.com/b5-ai/study-companion-be/store"
)

// MaxStudyMaterialChars bounds the document text embedded in the
// system prompt to keep the context window inside model limits.
const MaxStudyMaterialChars = 12000

const creatorAnswer = "I was created by a team known as B5. B5 is a group of 4 students who created me as a project for their AI real time project."

const systemPromptFormat = `You are a smart, confident AI Study Companion.

Rules:
- If the question relates to uploaded files, use the Study Material below.
- If the question is general knowledge, answer confidently.
- Do NOT say you are a language model.
- Do NOT say you lack information unless absolutely necessary.
- If unsure, give the most likely explanation based on available knowledge.
- Speak naturally like a helpful assistant.
- When user asks who created you, reply with: "%s"
- Always be aware of the uploaded study material and reference it when relevant.

Study Material:
%s`

// BuildSystemPrompt composes the system instructions around a snapshot
// of the current study material. The store mutates between questions,
// so the result must be recomputed on every ask, never cached.
func BuildSystemPrompt(docs *store.DocumentStore) string {
	return fmt.Sprintf(systemPromptFormat, creatorAnswer, docs.CombinedText(MaxStudyMaterialChars))
}
