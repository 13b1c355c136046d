// Package lifecycle is the single source of truth for order status
// transitions: which action moves an order where, and which role may trigger
// it. Screens render buttons straight from ActionsFor instead of hardcoding
// status comparisons.
package lifecycle

import (
	"context"
	"errors"

	"tiendita/internal/api"
	"tiendita/internal/domain"
)

// Action is a user-visible operation on an order.
type Action string

const (
	ActionAccept        Action = "accept"
	ActionReject        Action = "reject"
	ActionMarkShipped   Action = "mark-shipped"
	ActionMarkDelayed   Action = "mark-delayed"
	ActionMarkDelivered Action = "mark-delivered"
	// Cancel and Delete remove the order record outright; they are not
	// status transitions and never appear in the transition table.
	ActionCancel Action = "cancel"
	ActionDelete Action = "delete"
)

var actionLabels = map[Action]string{
	ActionAccept:        "Aceptar",
	ActionReject:        "Rechazar",
	ActionMarkShipped:   "Enviado",
	ActionMarkDelayed:   "Atrasado",
	ActionMarkDelivered: "Entregado",
	ActionCancel:        "Cancelar",
	ActionDelete:        "Eliminar",
}

func (a Action) Label() string { return actionLabels[a] }

// IsRemoval reports whether the action deletes the order rather than moving
// it to another status.
func (a Action) IsRemoval() bool { return a == ActionCancel || a == ActionDelete }

// transitions maps (current status, action) to the next status. Removal
// actions are intentionally absent.
var transitions = map[domain.Status]map[Action]domain.Status{
	domain.StatusProcessing: {
		ActionAccept: domain.StatusPacking,
		ActionReject: domain.StatusRejected,
	},
	domain.StatusPacking: {
		ActionMarkShipped: domain.StatusShipped,
		ActionMarkDelayed: domain.StatusDelayed,
	},
	domain.StatusShipped: {
		ActionMarkDelivered: domain.StatusDelivered,
	},
	domain.StatusDelayed: {
		ActionMarkDelivered: domain.StatusDelivered,
	},
	// Delivered is terminal; Rejected only admits deletion.
}

// removals maps each status to the one removal action it admits. Every other
// status keeps its order record; only Processing can be cancelled and only
// Rejected can be deleted.
var removals = map[domain.Status]Action{
	domain.StatusProcessing: ActionCancel,
	domain.StatusRejected:   ActionDelete,
}

// ActionsFor returns the actions a role may take on an order in the given
// status, in render order. An unrecognized status yields the empty set rather
// than an error: the order still renders, just with no buttons.
func ActionsFor(status domain.Status, role domain.Role) []Action {
	switch domain.NormalizeStatus(string(status)) {
	case domain.StatusProcessing:
		switch role {
		case domain.RoleSeller:
			return []Action{ActionAccept, ActionReject}
		case domain.RoleCustomer:
			return []Action{ActionCancel}
		}
	case domain.StatusRejected:
		if role == domain.RoleSeller || role == domain.RoleCustomer {
			return []Action{ActionDelete}
		}
	case domain.StatusPacking:
		if role == domain.RoleSeller {
			return []Action{ActionMarkShipped, ActionMarkDelayed}
		}
	case domain.StatusShipped, domain.StatusDelayed:
		if role == domain.RoleSeller {
			return []Action{ActionMarkDelivered}
		}
	}
	return nil
}

// ErrInvalidTransition is returned when an action is not defined for the
// order's current status.
var ErrInvalidTransition = errors.New("invalid order transition")

// Controller executes lifecycle actions through the Order client. A change
// counts as committed only once the backend acknowledges it.
type Controller struct {
	Orders *api.OrderClient
}

// Apply moves the order along one transition. The full record is PUT with
// the new status; the caller refreshes its own order list afterward. On
// ErrInvalidTransition nothing is sent and the order is untouched.
func (c *Controller) Apply(ctx context.Context, order domain.Order, action Action) (domain.Order, error) {
	next, ok := transitions[domain.NormalizeStatus(order.StatusUuid)][action]
	if !ok {
		return domain.Order{}, ErrInvalidTransition
	}
	updated := order
	updated.StatusUuid = string(next)
	return c.Orders.Update(ctx, order.OrderUuid, updated)
}

// Remove deletes the order record for Cancel and Delete actions. The order's
// status must admit the removal; a Shipped or Delivered order is never
// deletable no matter what action the request carries.
func (c *Controller) Remove(ctx context.Context, order domain.Order, action Action) error {
	if !action.IsRemoval() {
		return ErrInvalidTransition
	}
	if removals[domain.NormalizeStatus(order.StatusUuid)] != action {
		return ErrInvalidTransition
	}
	return c.Orders.Delete(ctx, order.OrderUuid)
}
