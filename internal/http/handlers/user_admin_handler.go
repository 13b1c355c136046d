package handlers

import (
	"github.com/gofiber/fiber/v2"

	"tiendita/internal/domain"
	applog "tiendita/internal/log"
	"tiendita/internal/validate"
)

// UserAdminHandler is the seller's user management screen.
type UserAdminHandler struct {
	App *App
}

func (h *UserAdminHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	users, err := h.App.clients(sid).Users.List(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.users.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "No se pudieron cargar los usuarios"})
	}
	return render(c, "users", fiber.Map{"Nav": h.App.nav(sid), "Users": users})
}

func (h *UserAdminHandler) Create(c *fiber.Ctx) error {
	sid := ensureSID(c)
	user, msg := userFromForm(c, true)
	if msg != "" {
		applog.Info(c, "admin.users.validation.fail", map[string]any{"reason": msg})
		return c.Status(fiber.StatusBadRequest).SendString(msg)
	}
	if _, err := h.App.clients(sid).Users.Create(c.UserContext(), user); err != nil {
		applog.Error(c, "admin.users.create.fail", err, map[string]any{"email": user.Email})
		return c.Status(fiber.StatusBadGateway).SendString("No se pudo crear el usuario")
	}
	applog.Audit(c, "admin.users.create", map[string]any{"email": user.Email})
	return c.Redirect("/users")
}

func (h *UserAdminHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing user id")
	}
	user, msg := userFromForm(c, false)
	if msg != "" {
		applog.Info(c, "admin.users.validation.fail", map[string]any{"reason": msg})
		return c.Status(fiber.StatusBadRequest).SendString(msg)
	}
	if _, err := h.App.clients(sid).Users.Update(c.UserContext(), id, user); err != nil {
		applog.Error(c, "admin.users.update.fail", err, map[string]any{"user": id})
		return c.Status(fiber.StatusBadGateway).SendString("No se pudo actualizar el usuario")
	}
	applog.Audit(c, "admin.users.update", map[string]any{"user": id})
	return c.Redirect("/users")
}

func (h *UserAdminHandler) Delete(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing user id")
	}
	if err := h.App.clients(sid).Users.Delete(c.UserContext(), id); err != nil {
		applog.Error(c, "admin.users.delete.fail", err, map[string]any{"user": id})
		return c.Status(fiber.StatusBadGateway).SendString("No se pudo eliminar el usuario")
	}
	applog.Audit(c, "admin.users.delete", map[string]any{"user": id})
	return c.Redirect("/users")
}

// userFromForm validates the account preconditions before anything goes on
// the wire: well-formed email, at most 8 phone digits, adults only and the
// password policy (password only when required).
func userFromForm(c *fiber.Ctx, requirePassword bool) (domain.User, string) {
	email, ok := validate.Email(c.FormValue("email"))
	if !ok {
		return domain.User{}, "correo inválido"
	}
	phone := c.FormValue("phone")
	if !validate.Phone(phone) {
		return domain.User{}, "El número de teléfono no debe tener más de 8 dígitos."
	}
	birth := c.FormValue("birthDate")
	if !validate.Adult(birth) {
		return domain.User{}, "El usuario debe ser mayor de 18 años."
	}
	password := c.FormValue("password")
	if requirePassword || password != "" {
		if password != c.FormValue("confirmPassword") {
			return domain.User{}, "Las contraseñas no coinciden"
		}
		if !validate.Password(password) {
			return domain.User{}, "La contraseña debe tener al menos 8 caracteres, una mayúscula, un número y un carácter especial (.,@$!%*?&)"
		}
	}
	return domain.User{
		FullName:     c.FormValue("fullName"),
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: password,
		BirthDate:    birth,
		Rol:          c.FormValue("rol"),
	}, ""
}
