// Package steps implements the packaging steps.
//
// Each step receives its collaborators at construction and communicates with
// later steps only through the types.Context. Default returns them in the
// order the pipeline must run them: the settings and module steps write the
// fields the requirements step reads.
package steps

import (
	"io"

	"github.com/artus40/djangoapp-ynh/pkg/config"
	"github.com/artus40/djangoapp-ynh/pkg/errors"
	"github.com/artus40/djangoapp-ynh/pkg/types"
)

// Deps are the collaborators shared by every step
type Deps struct {
	FS           types.FS
	Prompter     types.Prompter
	Introspector types.Introspector
	Config       *config.Config
}

// Default returns the packaging steps in execution order.
func Default(deps Deps) []types.Step {
	return []types.Step{
		NewCreateManifest(deps),
		NewFindUrls(deps),
		NewFindSettings(deps),
		NewFindModules(deps),
		NewFindRequirements(deps),
	}
}

// ask reads a free-form answer. End of input means the operator gave up.
func ask(p types.Prompter, question string) (string, error) {
	reply, err := p.Ask(question)
	if err == io.EOF {
		return "", errors.Newf(errors.ErrDeclined, "no answer to %q", question)
	}
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "failed to read answer")
	}
	return reply, nil
}

func confirm(p types.Prompter, question string) (types.Answer, error) {
	answer, err := p.Confirm(question)
	if err != nil {
		return types.AnswerSkipped, errors.Wrap(err, errors.ErrInvalidInput, "failed to read answer")
	}
	return answer, nil
}
