package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func donorActor(id string) Actor {
	return Actor{ID: id, Roles: []Role{RoleDonor}}
}

func adminActor(id string) Actor {
	return Actor{ID: id, Roles: []Role{RoleMonasteryAdmin}}
}

func superActor(id string) Actor {
	return Actor{ID: id, Roles: []Role{RoleSuperAdmin}}
}

func ownAccess(donorID, adminID string) BookingAccess {
	return BookingAccess{DonorID: &donorID, MonasteryAdminID: adminID}
}

func TestAuthorizeTransition_HappyPath(t *testing.T) {
	access := ownAccess("d1", "a1")

	role, err := AuthorizeTransition(TransitionApprove, BookingStatusPending, adminActor("a1"), access)
	require.NoError(t, err)
	assert.Equal(t, RoleMonasteryAdmin, role)

	role, err = AuthorizeTransition(TransitionConfirm, BookingStatusMonasteryApproved, donorActor("d1"), access)
	require.NoError(t, err)
	assert.Equal(t, RoleDonor, role)

	role, err = AuthorizeTransition(TransitionMarkDelivered, BookingStatusConfirmed, adminActor("a1"), access)
	require.NoError(t, err)
	assert.Equal(t, RoleMonasteryAdmin, role)
}

func TestAuthorizeTransition_UnknownTransition(t *testing.T) {
	_, err := AuthorizeTransition("teleport", BookingStatusPending, superActor("s1"), ownAccess("d1", "a1"))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestAuthorizeTransition_DonorCannotApprove(t *testing.T) {
	access := ownAccess("d1", "a1")

	// role gate fires before the state gate, for every status
	for _, status := range []BookingStatus{
		BookingStatusPending,
		BookingStatusMonasteryApproved,
		BookingStatusConfirmed,
		BookingStatusCancelled,
	} {
		_, err := AuthorizeTransition(TransitionApprove, status, donorActor("d1"), access)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnauthorized)
	}
}

func TestAuthorizeTransition_WrongStatus(t *testing.T) {
	access := ownAccess("d1", "a1")

	// approving an already-approved booking is rejected
	_, err := AuthorizeTransition(TransitionApprove, BookingStatusMonasteryApproved, adminActor("a1"), access)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)

	// delivery cannot be recorded straight from pending
	_, err = AuthorizeTransition(TransitionMarkDelivered, BookingStatusPending, adminActor("a1"), access)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)

	_, err = AuthorizeTransition(TransitionMarkNotDelivered, BookingStatusPending, superActor("s1"), access)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)
}

func TestAuthorizeTransition_DonorOwnership(t *testing.T) {
	access := ownAccess("d1", "a1")

	_, err := AuthorizeTransition(TransitionCancel, BookingStatusPending, donorActor("d2"), access)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotYourBooking)

	// guest bookings have no donor to own them
	_, err = AuthorizeTransition(TransitionConfirm, BookingStatusMonasteryApproved, donorActor("d1"),
		BookingAccess{DonorID: nil, MonasteryAdminID: "a1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotYourBooking)
}

func TestAuthorizeTransition_MonasteryOwnership(t *testing.T) {
	access := ownAccess("d1", "a1")

	_, err := AuthorizeTransition(TransitionApprove, BookingStatusPending, adminActor("a2"), access)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotYourMonastery)

	// super admin bypasses the monastery ownership check
	role, err := AuthorizeTransition(TransitionApprove, BookingStatusPending, superActor("s1"), access)
	require.NoError(t, err)
	assert.Equal(t, RoleSuperAdmin, role)
}

func TestAuthorizeTransition_MultiRoleActorUsesHighestAllowedRole(t *testing.T) {
	// an admin who is also a donor cancels someone else's booking in their
	// monastery: the admin role applies, so the donor ownership rule must not
	access := ownAccess("d1", "a1")
	both := Actor{ID: "a1", Roles: []Role{RoleDonor, RoleMonasteryAdmin}}

	role, err := AuthorizeTransition(TransitionCancel, BookingStatusPending, both, access)
	require.NoError(t, err)
	assert.Equal(t, RoleMonasteryAdmin, role)

	// confirm is donor-only, so the same actor falls back to the donor rule
	_, err = AuthorizeTransition(TransitionConfirm, BookingStatusMonasteryApproved, both, access)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotYourBooking)
}

func TestAuthorizeTransition_ReopenOnlyFromCancelled(t *testing.T) {
	access := ownAccess("d1", "a1")

	role, err := AuthorizeTransition(TransitionReopen, BookingStatusCancelled, adminActor("a1"), access)
	require.NoError(t, err)
	assert.Equal(t, RoleMonasteryAdmin, role)

	_, err = AuthorizeTransition(TransitionReopen, BookingStatusPending, adminActor("a1"), access)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidStateTransition)

	_, err = AuthorizeTransition(TransitionReopen, BookingStatusCancelled, donorActor("d1"), access)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTransitionTable_DeliveredOnlyViaApproval(t *testing.T) {
	// no transition reaches a terminal delivery status from pending
	for name, rule := range transitionRules {
		if rule.To != BookingStatusDelivered && rule.To != BookingStatusNotDelivered {
			continue
		}
		for _, from := range rule.From {
			assert.NotEqual(t, BookingStatusPending, from,
				"transition %s must not leave pending", name)
			assert.NotEqual(t, BookingStatusCancelled, from,
				"transition %s must not leave cancelled", name)
		}
	}
}

func TestAvailableTransitions(t *testing.T) {
	access := ownAccess("d1", "a1")

	assert.Equal(t,
		[]TransitionName{TransitionApprove, TransitionCancel},
		AvailableTransitions(BookingStatusPending, adminActor("a1"), access),
	)

	assert.Equal(t,
		[]TransitionName{TransitionConfirm, TransitionCancel},
		AvailableTransitions(BookingStatusMonasteryApproved, donorActor("d1"), access),
	)

	assert.Equal(t,
		[]TransitionName{TransitionMarkDelivered, TransitionMarkNotDelivered, TransitionCancel},
		AvailableTransitions(BookingStatusConfirmed, superActor("s1"), access),
	)

	assert.Equal(t,
		[]TransitionName{TransitionReopen},
		AvailableTransitions(BookingStatusCancelled, adminActor("a1"), access),
	)

	// terminal delivery statuses offer nothing
	assert.Empty(t, AvailableTransitions(BookingStatusDelivered, superActor("s1"), access))
	assert.Empty(t, AvailableTransitions(BookingStatusNotDelivered, superActor("s1"), access))

	// a stranger donor sees no actions on someone else's booking
	assert.Empty(t, AvailableTransitions(BookingStatusPending, donorActor("d2"), access))
}
