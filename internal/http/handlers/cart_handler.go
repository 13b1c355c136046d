package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	applog "tiendita/internal/log"
	"tiendita/internal/validate"
)

type CartHandler struct {
	App *App
}

func (h *CartHandler) View(c *fiber.Ctx) error {
	sid := ensureSID(c)
	user, _ := h.App.authService(sid).CurrentUser(c.UserContext(), sid)
	return render(c, "cart", fiber.Map{
		"Nav":   h.App.nav(sid),
		"User":  user,
		"Lines": h.App.Cart.Lines(sid),
		"Total": h.App.Cart.Total(sid),
	})
}

func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	// Non-positive quantities are ignored by the store, not treated as
	// removals; the line keeps its previous quantity.
	qty, _ := strconv.Atoi(c.FormValue("qty"))
	if err := h.App.Cart.SetQuantity(sid, id, qty); err != nil {
		applog.Error(c, "cart.quantity.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusInternalServerError).SendString("No se pudo actualizar la cantidad")
	}
	return c.Redirect("/cart")
}

func (h *CartHandler) Remove(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	if err := h.App.Cart.Remove(sid, id); err != nil {
		applog.Error(c, "cart.remove.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusInternalServerError).SendString("No se pudo eliminar el producto")
	}
	return c.Redirect("/cart")
}

// Checkout submits the cart as a Processing order. On failure the cart stays
// intact and the user retries manually; nothing is optimistic here.
func (h *CartHandler) Checkout(c *fiber.Ctx) error {
	sid := ensureSID(c)
	user, ok := h.App.authService(sid).CurrentUser(c.UserContext(), sid)
	if !ok {
		return c.Redirect("/")
	}
	if len(h.App.Cart.Lines(sid)) == 0 {
		return c.Redirect("/cart")
	}

	orders := h.App.clients(sid).Orders
	created, err := h.App.Cart.Checkout(c.UserContext(), orders, sid, user)
	if err != nil {
		applog.Error(c, "cart.checkout.fail", err, map[string]any{"user": user.Uuid})
		return render(c, "cart", fiber.Map{
			"Nav":   h.App.nav(sid),
			"User":  user,
			"Lines": h.App.Cart.Lines(sid),
			"Total": h.App.Cart.Total(sid),
			"Err":   "Error al crear el pedido. Por favor, intente nuevamente.",
		})
	}
	applog.Audit(c, "cart.checkout", map[string]any{"order": created.OrderUuid, "total": created.TotalAmount})
	return c.Redirect("/history")
}
