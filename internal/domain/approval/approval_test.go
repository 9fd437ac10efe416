package approval

import (
	"encoding/json"
	"testing"
	"time"

	"bizdir/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func idPtr(id entity.ID) *entity.ID { return &id }

func statusPtr(s entity.Status) *entity.Status { return &s }

func approvedCafe() *entity.Business {
	return &entity.Business{
		ID:          entity.ID(1),
		OwnerID:     entity.ID(10),
		CategoryID:  entity.ID(5),
		Name:        "Joe's Cafe",
		Description: "Coffee and sandwiches",
		Address:     "12 Main St",
		City:        "Pune",
		State:       "MH",
		Pincode:     "411001",
		Phone:       "9999988888",
		Email:       "joe@example.com",
		Status:      entity.StatusApproved,
		AvgRating:   4.2,
		DateAdded:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestResolve_OwnerRenameResetsToPending(t *testing.T) {
	current := approvedCafe()

	merged := Resolve(current, Change{Name: strPtr("Joe's Diner")}, entity.RoleOwner)

	assert.Equal(t, entity.StatusPending, merged.Status)
	assert.Equal(t, "Joe's Diner", merged.Name)
	// Untouched fields keep their stored values.
	assert.Equal(t, current.Description, merged.Description)
	assert.Equal(t, current.Phone, merged.Phone)
}

func TestResolve_OwnerMinorEditKeepsStatus(t *testing.T) {
	current := approvedCafe()

	merged := Resolve(current, Change{Phone: strPtr("7777766666")}, entity.RoleOwner)

	assert.Equal(t, entity.StatusApproved, merged.Status)
	assert.Equal(t, "7777766666", merged.Phone)
}

func TestResolve_OwnerSuppliedStatusIsIgnored(t *testing.T) {
	current := approvedCafe()
	current.Status = entity.StatusPending

	// An owner trying to self-approve via the status field gets overridden.
	merged := Resolve(current, Change{
		Phone:  strPtr("7777766666"),
		Status: statusPtr(entity.StatusApproved),
	}, entity.RoleOwner)

	assert.Equal(t, entity.StatusPending, merged.Status)
}

func TestResolve_AdminStatusPassthrough(t *testing.T) {
	current := approvedCafe()
	current.Status = entity.StatusPending

	merged := Resolve(current, Change{Status: statusPtr(entity.StatusApproved)}, entity.RoleAdmin)

	assert.Equal(t, entity.StatusApproved, merged.Status)
	// Nothing else moved.
	assert.Equal(t, current.Name, merged.Name)
	assert.Equal(t, current.Description, merged.Description)
	assert.Equal(t, current.CategoryID, merged.CategoryID)
}

func TestResolve_AdminWithoutStatusKeepsCurrent(t *testing.T) {
	current := approvedCafe()

	merged := Resolve(current, Change{Name: strPtr("Renamed by admin")}, entity.RoleAdmin)

	// Admin edits are not subject to the critical-change check.
	assert.Equal(t, entity.StatusApproved, merged.Status)
	assert.Equal(t, "Renamed by admin", merged.Name)
}

func TestResolve_IdempotentWhenNothingChanges(t *testing.T) {
	current := approvedCafe()
	change := Change{
		Name:  strPtr(current.Name),
		Phone: strPtr(current.Phone),
	}

	once := Resolve(current, change, entity.RoleOwner)
	twice := Resolve(&once, change, entity.RoleOwner)

	assert.Equal(t, once, twice)
	assert.Equal(t, entity.StatusApproved, twice.Status)
}

func TestResolve_ImmutableFieldsCarriedOver(t *testing.T) {
	current := approvedCafe()

	merged := Resolve(current, Change{Name: strPtr("New Name")}, entity.RoleOwner)

	assert.Equal(t, current.ID, merged.ID)
	assert.Equal(t, current.OwnerID, merged.OwnerID)
	assert.Equal(t, current.DateAdded, merged.DateAdded)
	assert.Equal(t, current.AvgRating, merged.AvgRating)
}

func TestIsCritical_SameNameNotCritical(t *testing.T) {
	current := approvedCafe()

	assert.False(t, Change{Name: strPtr(current.Name)}.IsCritical(current))
	assert.True(t, Change{Name: strPtr("Other")}.IsCritical(current))
	assert.True(t, Change{Description: strPtr("Other")}.IsCritical(current))
	assert.True(t, Change{CategoryID: idPtr(entity.ID(6))}.IsCritical(current))
	assert.False(t, Change{CategoryID: idPtr(entity.ID(5))}.IsCritical(current))
}

func TestIsCritical_CategoryComparedByValueNotRepresentation(t *testing.T) {
	current := approvedCafe() // CategoryID 5

	// A client sending the category id as a JSON string must not trigger a
	// false-positive critical change.
	var fromString entity.ID
	require.NoError(t, json.Unmarshal([]byte(`"5"`), &fromString))

	assert.False(t, Change{CategoryID: &fromString}.IsCritical(current))

	var fromNumber entity.ID
	require.NoError(t, json.Unmarshal([]byte(`5`), &fromNumber))

	assert.Equal(t, fromString, fromNumber)
}

func TestResolve_DoesNotMutateCurrent(t *testing.T) {
	current := approvedCafe()
	before := *current

	_ = Resolve(current, Change{Name: strPtr("Mutation probe")}, entity.RoleOwner)

	assert.Equal(t, before, *current)
}
