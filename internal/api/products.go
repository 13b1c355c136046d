package api

import (
	"context"
	"net/http"
	"strconv"

	"tiendita/internal/domain"
)

type ProductClient struct{ core *Client }

func NewProductClient(core *Client) *ProductClient { return &ProductClient{core: core} }

func (p *ProductClient) List(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	if err := p.core.doJSON(ctx, http.MethodGet, "products", true, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (p *ProductClient) Get(ctx context.Context, uuid string) (domain.Product, error) {
	var out domain.Product
	if err := p.core.doJSON(ctx, http.MethodGet, "products/"+uuid, true, nil, &out); err != nil {
		return domain.Product{}, err
	}
	return out, nil
}

// Create sends the product as multipart form data, image included. The field
// names (lower-case stock/price among them) are what the backend expects.
func (p *ProductClient) Create(ctx context.Context, prod domain.Product, image *ImageFile) (domain.Product, error) {
	var out domain.Product
	if err := p.core.doMultipart(ctx, http.MethodPost, "products", productFields(prod), image, &out); err != nil {
		return domain.Product{}, err
	}
	return out, nil
}

func (p *ProductClient) Update(ctx context.Context, uuid string, prod domain.Product, image *ImageFile) (domain.Product, error) {
	var out domain.Product
	if err := p.core.doMultipart(ctx, http.MethodPut, "products/"+uuid, productFields(prod), image, &out); err != nil {
		return domain.Product{}, err
	}
	return out, nil
}

func (p *ProductClient) Delete(ctx context.Context, uuid string) error {
	return p.core.doJSON(ctx, http.MethodDelete, "products/"+uuid, true, nil, nil)
}

func productFields(prod domain.Product) map[string]string {
	return map[string]string{
		"Code":     prod.Code,
		"Name":     prod.Name,
		"Brand":    prod.Brand,
		"stock":    strconv.Itoa(prod.Stock),
		"price":    strconv.FormatFloat(prod.Price, 'f', -1, 64),
		"Category": prod.Category,
		"Status":   prod.Status,
	}
}
