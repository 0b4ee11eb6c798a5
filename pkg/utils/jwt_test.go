package utils_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"wanderworld/pkg/utils"
)

func TestVisitorTokens_RoundTrip(t *testing.T) {
	tokens := utils.NewVisitorTokens("secret", time.Hour)
	visitorID := uuid.New()

	token, err := tokens.CreateToken(visitorID)
	require.NoError(t, err)

	got, err := tokens.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, visitorID, got)
}

func TestVisitorTokens_RejectsOtherSecret(t *testing.T) {
	token, err := utils.NewVisitorTokens("secret", time.Hour).CreateToken(uuid.New())
	require.NoError(t, err)

	_, err = utils.NewVisitorTokens("other", time.Hour).ValidateToken(token)
	assert.ErrorIs(t, err, utils.ErrInvalidVisitor)
}

func TestVisitorTokens_RejectsExpiredAndGarbage(t *testing.T) {
	tokens := utils.NewVisitorTokens("secret", -time.Minute)
	token, err := tokens.CreateToken(uuid.New())
	require.NoError(t, err)

	_, err = tokens.ValidateToken(token)
	assert.ErrorIs(t, err, utils.ErrInvalidVisitor)

	_, err = tokens.ValidateToken("not-a-token")
	assert.ErrorIs(t, err, utils.ErrInvalidVisitor)
}
