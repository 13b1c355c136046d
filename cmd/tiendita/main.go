package main

import (
	"io"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"

	"tiendita/internal/config"
	"tiendita/internal/http/handlers"
	"tiendita/internal/localstore"
	applog "tiendita/internal/log"
)

func main() {
	cfg := config.Load()

	// Optional file logging
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			log.Printf("[warn] could not open log file %s: %v", cfg.LogFile, err)
		} else {
			log.SetOutput(io.MultiWriter(os.Stdout, f))
		}
	}

	store, err := localstore.Open(cfg.DBDSN)
	if err != nil {
		log.Fatal(err)
	}

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			if rerr := c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{
				"Message": "Algo salió mal. Intente nuevamente.",
			}); rerr != nil {
				return c.Status(fiber.StatusInternalServerError).SendString("Algo salió mal. Intente nuevamente.")
			}
			return nil
		},
	})
	app.Server().MaxRequestBodySize = 5 << 20 // product images travel through here

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(csrf.New(csrf.Config{
		KeyLookup:      "form:csrf",
		CookieName:     "csrf_",
		CookieSameSite: "Lax",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "csrf.fail", err, nil)
			return c.Status(fiber.StatusForbidden).Render("notfound", fiber.Map{"Message": "La verificación de seguridad falló. Recargue la página."})
		},
	}))
	app.Use(func(c *fiber.Ctx) error {
		if tok := c.Locals("csrf"); tok != nil {
			c.Locals("CSRFToken", tok.(string))
		}
		return c.Next()
	})

	deps := handlers.NewDeps(cfg, store)
	guard := handlers.RequireToken(deps.App)

	// Login
	app.Get("/", deps.Auth.LoginForm)
	app.Post("/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Info(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).Render("login", fiber.Map{"Err": "Demasiados intentos. Intente más tarde."})
		},
	}), deps.Auth.Login)

	// Role-gated home
	app.Get("/home", guard, deps.Home.Home)

	// Customer screens
	app.Post("/cart/add", guard, deps.Shop.AddToCart)
	app.Get("/cart", guard, deps.Cart.View)
	app.Post("/cart/quantity", guard, deps.Cart.SetQuantity)
	app.Post("/cart/remove", guard, deps.Cart.Remove)
	app.Post("/cart/checkout", guard, deps.Cart.Checkout)
	app.Get("/history", guard, deps.History.List)
	app.Post("/history/:id/remove", guard, deps.History.Remove)

	// Seller screens
	app.Get("/orders", guard, deps.Orders.Board)
	app.Post("/orders/:id/action", guard, deps.Orders.Act)
	app.Get("/products", guard, deps.Products.List)
	app.Post("/products", guard, deps.Products.Create)
	app.Post("/products/:id", guard, deps.Products.Update)
	app.Post("/products/:id/delete", guard, deps.Products.Delete)
	app.Get("/users", guard, deps.Users.List)
	app.Post("/users", guard, deps.Users.Create)
	app.Post("/users/:id", guard, deps.Users.Update)
	app.Post("/users/:id/delete", guard, deps.Users.Delete)

	// Shared
	app.Get("/account", guard, deps.Account.Show)
	app.Post("/account", guard, deps.Account.Update)

	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).Render("notfound", fiber.Map{"Message": "Página no encontrada"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
