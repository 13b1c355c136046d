package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"tiendita/internal/api"
	"tiendita/internal/auth"
	"tiendita/internal/cart"
	"tiendita/internal/config"
	"tiendita/internal/localstore"
	"tiendita/internal/services"
)

// App is the state every handler shares: config, the session-scoped local
// store (token + cart) and nothing else. Backend clients are rebuilt per
// request because the token source is per session.
type App struct {
	Cfg  config.Config
	Auth *auth.Manager
	Cart *cart.Store
}

// clients bundles the three resource clients bound to one session's token.
type clients struct {
	Products *api.ProductClient
	Orders   *api.OrderClient
	Users    *api.UserClient
}

func (a *App) clients(sid string) *clients {
	core := api.NewClient(a.Cfg.BaseURL, a.Auth.Tokens(sid))
	return &clients{
		Products: api.NewProductClient(core),
		Orders:   api.NewOrderClient(core),
		Users:    api.NewUserClient(core),
	}
}

func (a *App) authService(sid string) *services.AuthService {
	return &services.AuthService{Auth: a.Auth, Users: a.clients(sid).Users}
}

func (a *App) ordersView(sid string) *services.OrdersViewService {
	cl := a.clients(sid)
	return &services.OrdersViewService{Orders: cl.Orders, Users: cl.Users, Products: cl.Products}
}

// nav resolves the session's header links through the one role-to-views
// resolution point; unknown roles get none.
func (a *App) nav(sid string) []NavLink {
	ident, _ := a.Auth.Identity(sid)
	vs, _ := ViewSetFor(ident.Role)
	return vs.Nav
}

// ensureSID mints the browser session cookie that scopes the local store.
func ensureSID(c *fiber.Ctx) string {
	sid := c.Cookies("sid")
	if sid == "" {
		sid = uuid.NewString()
		c.Cookie(&fiber.Cookie{
			Name:     "sid",
			Value:    sid,
			Path:     "/",
			HTTPOnly: true,
			SameSite: fiber.CookieSameSiteLaxMode,
		})
	}
	return sid
}

// Deps wires the handler set for the route table.
type Deps struct {
	App      *App
	Auth     *AuthHandler
	Home     *HomeHandler
	Shop     *ShopHandler
	Cart     *CartHandler
	History  *HistoryHandler
	Orders   *OrdersHandler
	Products *ProductAdminHandler
	Users    *UserAdminHandler
	Account  *AccountHandler
}

func NewDeps(cfg config.Config, store *localstore.Store) *Deps {
	app := &App{Cfg: cfg, Auth: &auth.Manager{Store: store}, Cart: cart.NewStore(store)}
	d := &Deps{
		App:      app,
		Auth:     &AuthHandler{App: app},
		Home:     &HomeHandler{App: app},
		Shop:     &ShopHandler{App: app},
		Cart:     &CartHandler{App: app},
		History:  &HistoryHandler{App: app},
		Orders:   &OrdersHandler{App: app},
		Products: &ProductAdminHandler{App: app},
		Users:    &UserAdminHandler{App: app},
		Account:  &AccountHandler{App: app},
	}
	d.Home.Shop = d.Shop
	d.Home.Orders = d.Orders
	return d
}
