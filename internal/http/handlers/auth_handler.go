package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "tiendita/internal/log"
	"tiendita/internal/validate"
)

type AuthHandler struct {
	App *App
}

func (h *AuthHandler) LoginForm(c *fiber.Ctx) error {
	return render(c, "login", fiber.Map{"Err": ""})
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	sid := ensureSID(c)
	email := c.FormValue("email")
	password := c.FormValue("password")

	if _, ok := validate.Email(email); !ok {
		applog.Info(c, "auth.login.fail", map[string]any{"reason": "bad_email_format"})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Correo o contraseña inválidos"})
	}

	svc := h.App.authService(sid)
	if _, err := svc.Login(c.UserContext(), sid, email, password); err != nil {
		applog.Error(c, "auth.login.fail", err, map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).Render("login", fiber.Map{"Err": "Correo o contraseña inválidos"})
	}

	applog.Audit(c, "auth.login.success", map[string]any{"email": email})
	return c.Redirect("/home")
}
