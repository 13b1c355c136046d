package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"tiendita/internal/domain"
	"tiendita/internal/lifecycle"
	applog "tiendita/internal/log"
	"tiendita/internal/validate"
)

// HistoryHandler shows a customer their own orders and lets them cancel a
// Processing order or delete a Rejected one.
type HistoryHandler struct {
	App *App
}

func (h *HistoryHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	user, ok := h.App.authService(sid).CurrentUser(c.UserContext(), sid)
	if !ok {
		return c.Redirect("/")
	}
	views, err := h.App.ordersView(sid).History(c.UserContext(), user.Uuid)
	if err != nil {
		applog.Error(c, "history.list.fail", err, map[string]any{"user": user.Uuid})
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "No se pudieron cargar las órdenes"})
	}
	return render(c, "history", fiber.Map{"Nav": h.App.nav(sid), "User": user, "Orders": views})
}

// Remove handles Cancel (Processing) and Delete (Rejected). Both remove the
// order record; the distinction is only which status admits which action.
func (h *HistoryHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	oid, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing order id")
	}
	action := lifecycle.Action(c.FormValue("action"))

	user, okUser := h.App.authService(sid).CurrentUser(c.UserContext(), sid)
	if !okUser {
		return c.Redirect("/")
	}
	order, err := h.findOwnOrder(c, sid, user.Uuid, oid)
	if err != nil {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Orden no encontrada"})
	}

	allowed := false
	for _, a := range lifecycle.ActionsFor(domain.Status(order.StatusUuid), domain.RoleCustomer) {
		if a == action {
			allowed = true
		}
	}
	if !allowed {
		return c.Status(fiber.StatusBadRequest).SendString("acción no permitida")
	}

	ctrl := &lifecycle.Controller{Orders: h.App.clients(sid).Orders}
	if err := ctrl.Remove(c.UserContext(), order, action); err != nil {
		if errors.Is(err, lifecycle.ErrInvalidTransition) {
			return c.Status(fiber.StatusBadRequest).SendString("acción no permitida")
		}
		applog.Error(c, "history.remove.fail", err, map[string]any{"order": oid})
		return c.Status(fiber.StatusBadGateway).SendString("No se pudo eliminar la orden")
	}
	applog.Audit(c, "history.remove", map[string]any{"order": oid, "action": string(action)})
	return c.Redirect("/history")
}

func (h *HistoryHandler) findOwnOrder(c *fiber.Ctx, sid, userUuid, orderUuid string) (domain.Order, error) {
	orders, err := h.App.clients(sid).Orders.ListByUser(c.UserContext(), userUuid)
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

var errOrderNotFound = errors.New("order not found for user")
