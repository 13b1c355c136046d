package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"tiendita/internal/api"
	"tiendita/internal/domain"
	applog "tiendita/internal/log"
	"tiendita/internal/validate"
)

// ProductAdminHandler is the seller's product management screen: list,
// create, update (both multipart with optional image) and delete.
type ProductAdminHandler struct {
	App *App
}

func (h *ProductAdminHandler) List(c *fiber.Ctx) error {
	sid := ensureSID(c)
	products, err := h.App.clients(sid).Products.List(c.UserContext())
	if err != nil {
		applog.Error(c, "admin.products.list.fail", err, nil)
		return c.Status(fiber.StatusInternalServerError).Render("notfound", fiber.Map{"Message": "No se pudieron cargar los productos"})
	}
	return render(c, "products_admin", fiber.Map{
		"Nav":        h.App.nav(sid),
		"Products":   products,
		"Categories": domain.Categories,
		"Statuses": []fiber.Map{
			{"Uuid": string(domain.StatusActive), "Name": "Activo"},
			{"Uuid": string(domain.StatusInactive), "Name": "Inactivo"},
		},
	})
}

func (h *ProductAdminHandler) Create(c *fiber.Ctx) error {
	sid := ensureSID(c)
	prod, image, err := productFromForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if _, err := h.App.clients(sid).Products.Create(c.UserContext(), prod, image); err != nil {
		applog.Error(c, "admin.products.create.fail", err, map[string]any{"name": prod.Name})
		return c.Status(fiber.StatusBadGateway).SendString("No se pudo crear el producto")
	}
	applog.Audit(c, "admin.products.create", map[string]any{"name": prod.Name})
	return c.Redirect("/products")
}

func (h *ProductAdminHandler) Update(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing product id")
	}
	prod, image, err := productFromForm(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if _, err := h.App.clients(sid).Products.Update(c.UserContext(), id, prod, image); err != nil {
		applog.Error(c, "admin.products.update.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusBadGateway).SendString("No se pudo actualizar el producto")
	}
	applog.Audit(c, "admin.products.update", map[string]any{"product": id})
	return c.Redirect("/products")
}

func (h *ProductAdminHandler) Delete(c *fiber.Ctx) error {
	sid := ensureSID(c)
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).SendString("missing product id")
	}
	if err := h.App.clients(sid).Products.Delete(c.UserContext(), id); err != nil {
		applog.Error(c, "admin.products.delete.fail", err, map[string]any{"product": id})
		return c.Status(fiber.StatusBadGateway).SendString("No se pudo eliminar el producto")
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product": id})
	return c.Redirect("/products")
}

// productFromForm reads the product fields plus the optional image upload.
// The image is forwarded to the backend as-is; only price and stock get
// client-side parsing.
func productFromForm(c *fiber.Ctx) (domain.Product, *api.ImageFile, error) {
	price, err := strconv.ParseFloat(c.FormValue("price"), 64)
	if err != nil || price < 0 {
		return domain.Product{}, nil, errBadPrice
	}
	stock, err := strconv.Atoi(c.FormValue("stock"))
	if err != nil || stock < 0 {
		return domain.Product{}, nil, errBadStock
	}
	prod := domain.Product{
		Code:     c.FormValue("code"),
		Name:     c.FormValue("name"),
		Brand:    c.FormValue("brand"),
		Price:    price,
		Stock:    stock,
		Category: c.FormValue("category"),
		Status:   c.FormValue("status"),
	}

	var image *api.ImageFile
	if fh, err := c.FormFile("image"); err == nil && fh != nil {
		f, err := fh.Open()
		if err != nil {
			return domain.Product{}, nil, err
		}
		// The API client closes the handle once the upload body is built.
		image = &api.ImageFile{Name: fh.Filename, Content: f}
	}
	return prod, image, nil
}

var (
	errBadPrice = fiber.NewError(fiber.StatusBadRequest, "precio inválido")
	errBadStock = fiber.NewError(fiber.StatusBadRequest, "stock inválido")
)
