package testutil

import (
	"io"

	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// ScriptedPrompter replays canned answers in order. Once the script is
// exhausted Ask returns io.EOF, as a console does at end of input.
type ScriptedPrompter struct {
	Answers   []string
	Questions []string
	Said      []string
}

var _ types.Prompter = (*ScriptedPrompter)(nil)

// NewScriptedPrompter creates a prompter answering with answers
func NewScriptedPrompter(answers ...string) *ScriptedPrompter {
	return &ScriptedPrompter{Answers: answers}
}

// Ask implements types.Prompter
func (p *ScriptedPrompter) Ask(question string) (string, error) {
	p.Questions = append(p.Questions, question)
	if len(p.Answers) == 0 {
		return "", io.EOF
	}
	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer, nil
}

// Confirm implements types.Prompter
func (p *ScriptedPrompter) Confirm(question string) (types.Answer, error) {
	reply, err := p.Ask(question)
	if err == io.EOF {
		return types.AnswerSkipped, nil
	}
	if err != nil {
		return types.AnswerSkipped, err
	}
	return types.ParseAnswer(reply), nil
}

// Say implements types.Prompter
func (p *ScriptedPrompter) Say(message string) {
	p.Said = append(p.Said, message)
}

// Remaining reports how many answers were not consumed
func (p *ScriptedPrompter) Remaining() int {
	return len(p.Answers)
}
