package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mouse-blink/inputfix/internal/domain"
	m "github.com/mouse-blink/inputfix/internal/model"
)

func TestFixCmd_DefaultsToContextual(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("Fix", mock.Anything, mock.MatchedBy(func(args domain.FixArgs) bool {
		return args.Pass == domain.PassContextual &&
			!args.DryRun && !args.Interactive &&
			len(args.Paths) == 1 && args.Paths[0] == m.Path("./src/routes")
	})).Return(nil)

	cmd, _ := newTestRootCmd(newFixCmd())
	cmd.SetArgs([]string{"fix"})

	require.NoError(t, cmd.Execute())
}

func TestFixCmd_BatchDryRunInteractive(t *testing.T) {
	mockWorkflow := useMockWorkflow(t)

	mockWorkflow.On("Fix", mock.Anything, mock.MatchedBy(func(args domain.FixArgs) bool {
		return args.Pass == domain.PassBatch &&
			args.DryRun && args.Interactive &&
			len(args.Paths) == 1 && args.Paths[0] == m.Path("src/routes/+page.svelte")
	})).Return(nil)

	cmd, _ := newTestRootCmd(newFixCmd())
	cmd.SetArgs([]string{"fix", "--strategy", "batch", "--dry-run", "--interactive", "src/routes/+page.svelte"})

	require.NoError(t, cmd.Execute())
}

func TestFixCmd_UnknownStrategy(t *testing.T) {
	useMockWorkflow(t)

	cmd, _ := newTestRootCmd(newFixCmd())
	cmd.SetArgs([]string{"fix", "--strategy", "random"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown strategy")
}

func TestNewFixCmd(t *testing.T) {
	cmd := newFixCmd()

	assert.Equal(t, "fix [paths...]", cmd.Use)
	assert.Equal(t, fixLongDescription, cmd.Long)

	strategy := cmd.Flags().Lookup("strategy")
	require.NotNil(t, strategy)
	assert.Equal(t, "contextual", strategy.DefValue)
	assert.NotNil(t, cmd.Flags().Lookup("dry-run"))
	assert.NotNil(t, cmd.Flags().Lookup("interactive"))
}
