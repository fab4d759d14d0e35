package domain

import "fmt"

type TransitionName string

const (
	TransitionApprove          TransitionName = "approve"
	TransitionConfirm          TransitionName = "confirm"
	TransitionMarkDelivered    TransitionName = "mark_delivered"
	TransitionMarkNotDelivered TransitionName = "mark_not_delivered"
	TransitionCancel           TransitionName = "cancel"
	TransitionReopen           TransitionName = "reopen"
)

// TransitionRule describes one row of the workflow table: which statuses a
// transition may leave from, where it lands, and which roles may request it.
type TransitionRule struct {
	From  []BookingStatus
	To    BookingStatus
	Roles []Role
}

var transitionRules = map[TransitionName]TransitionRule{
	TransitionApprove: {
		From:  []BookingStatus{BookingStatusPending},
		To:    BookingStatusMonasteryApproved,
		Roles: []Role{RoleMonasteryAdmin, RoleSuperAdmin},
	},
	TransitionConfirm: {
		From:  []BookingStatus{BookingStatusMonasteryApproved},
		To:    BookingStatusConfirmed,
		Roles: []Role{RoleDonor},
	},
	TransitionMarkDelivered: {
		From:  []BookingStatus{BookingStatusConfirmed, BookingStatusMonasteryApproved},
		To:    BookingStatusDelivered,
		Roles: []Role{RoleMonasteryAdmin, RoleSuperAdmin},
	},
	TransitionMarkNotDelivered: {
		From:  []BookingStatus{BookingStatusConfirmed, BookingStatusMonasteryApproved},
		To:    BookingStatusNotDelivered,
		Roles: []Role{RoleMonasteryAdmin, RoleSuperAdmin},
	},
	TransitionCancel: {
		From:  []BookingStatus{BookingStatusPending, BookingStatusMonasteryApproved, BookingStatusConfirmed},
		To:    BookingStatusCancelled,
		Roles: []Role{RoleDonor, RoleMonasteryAdmin, RoleSuperAdmin},
	},
	TransitionReopen: {
		From:  []BookingStatus{BookingStatusCancelled},
		To:    BookingStatusPending,
		Roles: []Role{RoleMonasteryAdmin, RoleSuperAdmin},
	},
}

// transitionOrder fixes the enumeration order for AvailableTransitions.
var transitionOrder = []TransitionName{
	TransitionApprove,
	TransitionConfirm,
	TransitionMarkDelivered,
	TransitionMarkNotDelivered,
	TransitionCancel,
	TransitionReopen,
}

func RuleFor(name TransitionName) (TransitionRule, bool) {
	rule, ok := transitionRules[name]
	return rule, ok
}

// BookingAccess holds the ownership references read alongside a booking:
// its donor and the admin of the slot's monastery.
type BookingAccess struct {
	DonorID          *string
	MonasteryAdminID string
}

// AuthorizeTransition decides whether actor may apply the named transition
// to a booking in the given status, returning the effective role the actor
// acts under. Checks run in fixed order: transition exists, role permitted,
// status permitted, ownership. For multi-role actors the effective role is
// the highest-priority role present in the transition's allowed set.
func AuthorizeTransition(name TransitionName, status BookingStatus, actor Actor, access BookingAccess) (Role, error) {
	rule, ok := transitionRules[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidTransition, name)
	}

	effective := Role("")
	best := 0
	for _, r := range rule.Roles {
		if actor.HasRole(r) && rolePriority[r] > best {
			best = rolePriority[r]
			effective = r
		}
	}
	if effective == "" {
		return "", fmt.Errorf("%w: role %s may not %s", ErrUnauthorized, PrimaryRole(actor.Roles), name)
	}

	allowedFrom := false
	for _, s := range rule.From {
		if s == status {
			allowedFrom = true
			break
		}
	}
	if !allowedFrom {
		return "", fmt.Errorf("%w: cannot %s a %s booking", ErrInvalidStateTransition, name, status)
	}

	switch effective {
	case RoleDonor:
		if access.DonorID == nil || *access.DonorID != actor.ID {
			return "", ErrNotYourBooking
		}
	case RoleMonasteryAdmin:
		if access.MonasteryAdminID != actor.ID {
			return "", ErrNotYourMonastery
		}
	}

	return effective, nil
}

// AvailableTransitions enumerates the transitions the actor could legally
// apply right now. It drives which actions a client offers and is never the
// sole gate: ExecuteTransition re-validates against fresh state.
func AvailableTransitions(status BookingStatus, actor Actor, access BookingAccess) []TransitionName {
	var names []TransitionName
	for _, name := range transitionOrder {
		if _, err := AuthorizeTransition(name, status, actor, access); err == nil {
			names = append(names, name)
		}
	}
	return names
}
