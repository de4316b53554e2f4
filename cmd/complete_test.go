package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/inputfix/internal/domain"
)

func TestCompleteCmd_RunsCompletionPass(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("Fix", mock.Anything, mock.MatchedBy(func(args domain.FixArgs) bool {
		return args.Pass == domain.PassComplete && args.DryRun
	})).Return(nil)

	cmd, _ := newTestRootCmd(newCompleteCmd())
	cmd.SetArgs([]string{"complete", "-n"})

	require.NoError(t, cmd.Execute())
}

func TestNewCompleteCmd(t *testing.T) {
	cmd := newCompleteCmd()

	assert.Equal(t, "complete [paths...]", cmd.Use)
	assert.Equal(t, completeLongDescription, cmd.Long)
	assert.Nil(t, cmd.Flags().Lookup("strategy"))
}
