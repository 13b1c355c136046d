package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tiendita/internal/domain"
)

// NavLink is one header entry of a role's view set.
type NavLink struct {
	Href  string
	Label string
}

// ViewSet is the fixed set of screens a role may reach.
type ViewSet struct {
	Nav []NavLink
}

// ViewSetFor is the single role-to-views resolution point. An unrecognized
// role gets no view set at all: the caller renders nothing. That fail-closed
// default is deliberate and intentionally asymmetric with the lifecycle's
// fail-open action table.
func ViewSetFor(role domain.Role) (ViewSet, bool) {
	switch role {
	case domain.RoleCustomer:
		return ViewSet{Nav: []NavLink{
			{Href: "/home", Label: "Productos"},
			{Href: "/history", Label: "Historial"},
			{Href: "/cart", Label: "Carrito"},
			{Href: "/account", Label: "Cuenta"},
		}}, true
	case domain.RoleSeller:
		return ViewSet{Nav: []NavLink{
			{Href: "/products", Label: "Gestionar Productos"},
			{Href: "/home", Label: "Pedidos"},
			{Href: "/users", Label: "Gestionar Usuarios"},
			{Href: "/account", Label: "Cuenta"},
		}}, true
	case domain.RoleDashboardAdmin:
		return ViewSet{Nav: []NavLink{
			{Href: "/home", Label: "Dashboard"},
		}}, true
	default:
		return ViewSet{}, false
	}
}

// RequireToken redirects tokenless sessions to the login screen. Token
// validity is the backend's problem; presence is all that gates routes here.
func RequireToken(app *App) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sid := ensureSID(c)
		if _, ok := app.Auth.Tokens(sid).Token(); !ok {
			return c.Redirect("/")
		}
		return c.Next()
	}
}

// HomeHandler dispatches the role's home screen.
type HomeHandler struct {
	App    *App
	Shop   *ShopHandler
	Orders *OrdersHandler
}

func (h *HomeHandler) Home(c *fiber.Ctx) error {
	sid := ensureSID(c)
	ident, _ := h.App.Auth.Identity(sid)
	vs, ok := ViewSetFor(ident.Role)
	if !ok {
		// Unknown or absent role: render nothing.
		return c.SendStatus(fiber.StatusNoContent)
	}
	switch ident.Role {
	case domain.RoleCustomer:
		return h.Shop.List(c)
	case domain.RoleSeller:
		return h.Orders.Board(c)
	default:
		return render(c, "dashboard", fiber.Map{"Nav": vs.Nav})
	}
}
