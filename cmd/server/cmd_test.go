package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"scrumboard/internal/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCommand(t *testing.T) {
	// Arrange
	t.Setenv("JWT_SECRET", "cli-secret")
	t.Setenv("JWT_ISSUER", "")
	root := newRootCmd()
	out := new(bytes.Buffer)
	root.SetOut(out)
	root.SetArgs([]string{"token", "--sub", "user_ext_1", "--org", "org_1", "--role", "org:admin"})

	// Act
	err := root.Execute()

	// Assert
	require.NoError(t, err)
	claims, err := auth.NewSigner("cli-secret", "", time.Hour).ParseToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "user_ext_1", claims.Subject)
	assert.Equal(t, "org_1", claims.OrgID)
	assert.Equal(t, "org:admin", claims.OrgRole)
}

func TestTokenCommand_RequiresOrganization(t *testing.T) {
	root := newRootCmd()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"token", "--sub", "user_ext_1"})

	assert.Error(t, root.Execute())
}

func TestMigrateCommandTree(t *testing.T) {
	root := newRootCmd()

	cmd, _, err := root.Find([]string{"migrate", "down"})
	require.NoError(t, err)
	assert.Equal(t, "down", cmd.Name())
	assert.NotNil(t, cmd.Flags().Lookup("steps"))
}
