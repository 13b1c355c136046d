package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tiendita/internal/domain"
	"tiendita/internal/lifecycle"
	applog "tiendita/internal/log"
	"tiendita/internal/validate"
)

// OrdersHandler is the seller's order board: every order with its permitted
// lifecycle actions.
type OrdersHandler struct {
	App *App
}

func (h *OrdersHandler) Board(c *fiber.Ctx) error {
	sid := ensureSID(c)
	views, err := h.App.ordersView(sid).Board(c.UserContext())
	if err != nil {
		applog.Error(c, "orders.board.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "No se pudieron cargar las órdenes"})
	}
	return render(c, "orders", fiber.Map{"Nav": h.App.nav(sid), "Orders": views})
}

// Act executes one lifecycle action on one order, then redirects back to the
// board so the list is refetched; there is no cached state to invalidate.
func (h *OrdersHandler) Act(c *fiber.Ctx) error {
	sid := ensureSID(c)
	oid, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing order id")
	}
	action := lifecycle.Action(c.FormValue("action"))

	order, err := h.findOrder(c, sid, oid)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Orden no encontrada"})
	}

	// Same gate the history screen applies for customers: the action must be
	// one the board actually offers for this status.
	allowed := false
	for _, a := range lifecycle.ActionsFor(domain.Status(order.StatusUuid), domain.RoleSeller) {
		if a == action {
			allowed = true
		}
	}
	if !allowed {
		applog.Info(c, "orders.action.invalid", map[string]any{"order": oid, "action": string(action), "status": order.StatusUuid})
		return c.Status(fiber.StatusBadRequest).SendString("acción no permitida")
	}

	ctrl := &lifecycle.Controller{Orders: h.App.clients(sid).Orders}
	if action.IsRemoval() {
		err = ctrl.Remove(c.UserContext(), order, action)
	} else {
		_, err = ctrl.Apply(c.UserContext(), order, action)
	}
	if err != nil {
		if errors.Is(err, lifecycle.ErrInvalidTransition) {
			applog.Info(c, "orders.action.invalid", map[string]any{"order": oid, "action": string(action), "status": order.StatusUuid})
			return c.Status(fiber.StatusBadRequest).SendString("transición no válida")
		}
		applog.Error(c, "orders.action.fail", err, map[string]any{"order": oid, "action": string(action)})
		return c.Status(fiber.StatusBadGateway).SendString("No se pudo actualizar la orden")
	}

	applog.Audit(c, "orders.action", map[string]any{"order": oid, "action": string(action)})
	return c.Redirect("/orders")
}

func (h *OrdersHandler) findOrder(c *fiber.Ctx, sid, orderUuid string) (domain.Order, error) {
	orders, err := h.App.clients(sid).Orders.ListByStatus(c.UserContext())
	if err != nil {
		return domain.Order{}, err
	}
	for _, o := range orders {
		if o.OrderUuid == orderUuid {
			return o, nil
		}
	}
	return domain.Order{}, errOrderNotFound
}
