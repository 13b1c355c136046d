package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "tiendita/internal/log"
	"tiendita/internal/validate"
)

// ShopHandler is the customer-facing product catalog.
type ShopHandler struct {
	App *App
}

func (h *ShopHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	products, err := h.App.clients(sid).Products.List(c.UserContext())
	if err != nil {
		applog.Error(c, "shop.products.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "No se pudieron cargar los productos"})
	}
	nav := h.App.nav(sid)
	return render(c, "shop", fiber.Map{"Nav": nav, "Products": products})
}

// AddToCart snapshots the product into the local cart. The product record is
// fetched fresh so the stored line carries current price and naming.
func (h *ShopHandler) AddToCart(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.FormValue("productId"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing productId")
	}
	p, err := h.App.clients(sid).Products.Get(c.UserContext(), id)
	if err != nil {
		applog.Error(c, "shop.cart.add.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusBadGateway).SendString("No se pudo agregar el producto")
	}
	if err := h.App.Cart.Add(sid, p); err != nil {
		applog.Error(c, "shop.cart.add.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusInternalServerError).SendString("No se pudo agregar el producto")
	}
	applog.Audit(c, "shop.cart.add", map[string]any{"product": id})
	return c.Redirect("/home")
}
