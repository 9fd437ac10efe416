package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessJSON_ZeroCountsSerialize(t *testing.T) {
	// A dashboard row with no favorites or reviews still reports both
	// counts as 0 instead of omitting them.
	business := Business{ID: 7, OwnerID: 3, Name: "Corner Cafe", Status: StatusApproved}

	data, err := json.Marshal(business)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"favorite_count":0`)
	assert.Contains(t, string(data), `"review_count":0`)
}

func TestFavoriteJSON_ZeroRatingSerializes(t *testing.T) {
	favorite := Favorite{ID: 1, UserID: 3, BusinessID: 7, BusinessName: "Corner Cafe"}

	data, err := json.Marshal(favorite)
	require.NoError(t, err)

	assert.Contains(t, string(data), `"avg_rating":0`)
}
