package adapter

import (
	"github.com/AlecAivazis/survey/v2"
)

// Confirmer asks the user a yes/no question.
type Confirmer interface {
	Confirm(message string) (bool, error)
}

type surveyConfirmer struct{}

// NewSurveyConfirmer returns a Confirmer that prompts on the terminal.
func NewSurveyConfirmer() Confirmer {
	return &surveyConfirmer{}
}

func (c *surveyConfirmer) Confirm(message string) (bool, error) {
	answer := false
	prompt := &survey.Confirm{
		Message: message,
		Default: true,
	}

	if err := survey.AskOne(prompt, &answer); err != nil {
		return false, err
	}

	return answer, nil
}
