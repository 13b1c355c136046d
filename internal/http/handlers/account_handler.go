package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "tiendita/internal/log"
	"tiendita/internal/validate"
)

// AccountHandler shows the logged-in user their own record and lets them
// update it.
type AccountHandler struct {
	App *App
}

func (h *AccountHandler) Show(c *fiber.Ctx) error {
	sid := ensureSID(c)
	user, ok := h.App.authService(sid).CurrentUser(c.UserContext(), sid)
	if !ok {
		return c.Redirect("/")
	}
	return render(c, "account", fiber.Map{"Nav": h.App.nav(sid), "User": user})
}

func (h *AccountHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	current, ok := h.App.authService(sid).CurrentUser(c.UserContext(), sid)
	if !ok {
		return c.Redirect("/")
	}

	phone := c.FormValue("phone")
	if !validate.Phone(phone) {
		return c.Status(fiber.StatusBadRequest).SendString("El número de teléfono no debe tener más de 8 dígitos.")
	}

	// Role and email stay what they were; the account screen edits only the
	// profile fields.
	updated := current
	updated.FullName = c.FormValue("fullName")
	updated.PhoneNumber = phone
	if pw := c.FormValue("password"); pw != "" {
		if !validate.Password(pw) {
			return c.Status(fiber.StatusBadRequest).SendString("La contraseña no cumple la política")
		}
		updated.PasswordHash = pw
	}

	if _, err := h.App.clients(sid).Users.Update(c.UserContext(), current.Uuid, updated); err != nil {
		applog.Error(c, "account.update.fail", err, map[string]any{"user": current.Uuid})
		return c.Status(fiber.StatusBadGateway).SendString("No se pudo actualizar la cuenta")
	}
	applog.Audit(c, "account.update", map[string]any{"user": current.Uuid})
	return c.Redirect("/account")
}
