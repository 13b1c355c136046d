package domain

// Field names mirror the backend wire contract: the API serves PascalCase
// JSON (Uuid, FullName, OrderUuid, ...) and the client must round-trip
// records unchanged on update.

type Product struct {
	Uuid     string  `json:"Uuid"`
	Code     string  `json:"Code"`
	Name     string  `json:"Name"`
	Brand    string  `json:"Brand"`
	Price    float64 `json:"Price"`
	Stock    int     `json:"Stock"`
	Image    string  `json:"Image"`
	Status   string  `json:"Status"`
	Category string  `json:"Category"`
}

type Order struct {
	OrderUuid    string        `json:"OrderUuid"`
	UserUuid     string        `json:"UserUuid"`
	TotalAmount  float64       `json:"TotalAmount"`
	StatusUuid   string        `json:"StatusUuid"`
	OrderDetails []OrderDetail `json:"OrderDetails"`
}

// OrderDetail subtotals are fixed at order time and never recomputed from a
// later product fetch.
type OrderDetail struct {
	ProductUuid string  `json:"ProductUuid"`
	Quantity    int     `json:"Quantity"`
	SubTotal    float64 `json:"SubTotal"`
}

// CartLine is a denormalized snapshot of the product at add time plus a
// quantity. The embedded product keeps the persisted form flat, the way the
// stored cart and the checkout payload expect it.
type CartLine struct {
	Product
	Quantity int `json:"quantity"`
}

func (l CartLine) SubTotal() float64 { return l.Price * float64(l.Quantity) }

// Category is one of the fixed backend category identifiers.
type Category struct {
	Uuid string
	Name string
}

// Categories lists every category the backend knows about. The set is fixed;
// there is no category CRUD.
var Categories = []Category{
	{Uuid: "0d380422-6a8a-43a0-8dbb-109b7240906e", Name: "Alimentos"},
	{Uuid: "2f215688-9652-474a-997a-7f70dcaf3d36", Name: "Electrónica"},
	{Uuid: "7405b220-d4c0-43f5-bd5b-8d89f5ddd7cb", Name: "Productos para Mascotas"},
	{Uuid: "bc46b937-32fc-4975-af7c-b1f7dc36b27e", Name: "Higiene Personal"},
	{Uuid: "0a01246a-1a13-4752-a0d6-ba71d4768eec", Name: "Papelería y Oficina"},
	{Uuid: "80dc1755-0b48-4f5e-a8f1-fbd41a734a45", Name: "Limpieza"},
}
