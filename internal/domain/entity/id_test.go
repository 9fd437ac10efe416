package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestID_UnmarshalJSON_NumberAndStringAreEqual(t *testing.T) {
	var fromNumber, fromString ID

	require.NoError(t, json.Unmarshal([]byte(`5`), &fromNumber))
	require.NoError(t, json.Unmarshal([]byte(`"5"`), &fromString))

	assert.Equal(t, fromNumber, fromString)
	assert.Equal(t, ID(5), fromNumber)
}

func TestID_UnmarshalJSON_Invalid(t *testing.T) {
	var id ID

	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &id))
}

func TestID_UnmarshalJSON_Null(t *testing.T) {
	var id ID

	require.NoError(t, json.Unmarshal([]byte(`null`), &id))
	assert.True(t, id.IsZero())
}

func TestID_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(ID(42))

	require.NoError(t, err)
	assert.Equal(t, `42`, string(out))
}

func TestParseID(t *testing.T) {
	id, err := ParseID("17")
	require.NoError(t, err)
	assert.Equal(t, ID(17), id)

	_, err = ParseID("not-a-number")
	assert.Error(t, err)
}

func TestRole_IsValid(t *testing.T) {
	for _, role := range []Role{RoleViewer, RoleOwner, RoleAdmin} {
		assert.True(t, role.IsValid(), "expected %s to be valid", role)
	}

	assert.False(t, Role("moderator").IsValid())
	assert.False(t, Role("").IsValid())
}

func TestRoleFromString(t *testing.T) {
	role, ok := RoleFromString("admin")
	assert.True(t, ok)
	assert.Equal(t, RoleAdmin, role)

	_, ok = RoleFromString("superuser")
	assert.False(t, ok)
}
