package drugstock

// DefaultTitle is used when the page has no product title heading.
const DefaultTitle = "Название не найдено"

// StockStatus reports whether a drugstore has the product on hand.
type StockStatus string

// StockStatus values.
const (
	InStock    StockStatus = "in_stock"
	OutOfStock StockStatus = "out_of_stock"
)

// Product is the structured data extracted from a product page.
// Field order matches the emitted JSON document.
type Product struct {
	Title      string  `json:"title"`
	ImageURL   *string `json:"image_url"`
	Price      *string `json:"price"` // Digits only, or the meta price verbatim
	Drugstores []Store `json:"drugstores"`
	ProductID  string  `json:"product_id"`
}

// Store is one drugstore listing for a product.
// String fields are empty when the page omits them.
type Store struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Address  string      `json:"address"`
	Quantity string      `json:"quantity"`
	Status   StockStatus `json:"status"`
}
