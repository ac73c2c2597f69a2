// Package actions emits run outputs in the format the CI workflow consumes.
package actions

import (
	githubactions "github.com/sethvargo/go-githubactions"

	"github.com/olivvybee/emojitools/domain"
)

// Sink writes key-value run outputs to the workflow output file
// (GITHUB_OUTPUT). Values may be multiline; the underlying library handles
// delimiting.
type Sink struct {
	action *githubactions.Action
}

// NewSink creates a sink bound to the current process environment.
func NewSink() *Sink {
	return &Sink{action: githubactions.New()}
}

var _ domain.OutputSink = (*Sink)(nil)

// SetOutput records one output value for later workflow steps.
func (s *Sink) SetOutput(name, value string) {
	s.action.SetOutput(name, value)
}
