package drugstock

import "strings"

// Selectors for the product card layout.
const (
	productSelector        = ".js-product"
	productIDAttr          = "data-product-id"
	titleSelector          = "h1.product-card__title"
	imageSelector          = "img.product-card__image"
	ogImageSelector        = `meta[property="og:image"]`
	priceSelector          = "div.product-card__price"
	oldPriceSelector       = ".product-card__price-old"
	metaPriceSelector      = `meta[itemprop="price"]`
	storeListSelector      = "div.store-list"
	storeItemSelector      = "div.store-list__item"
	storeIDAttr            = "data-store-id"
	storeNameSelector      = "div.store-list__name"
	storeAddressSelector   = "div.store-list__address"
	storeQuantitySelector  = "div.store-list__quantity"
	storeStatusSelector    = "div.store-list__status"
	storeStatusEmptyMarker = "store-list__status_empty"
)

// ExtractProduct reads a Product from a parsed product page.
// Only a missing product ID fails the extraction; every other field falls
// back to its default.
func ExtractProduct(doc Node) (*Product, error) {
	id, ok := extractProductID(doc)
	if !ok {
		return nil, Errorf(EMISSINGID, "Product ID not found")
	}

	return &Product{
		Title:      extractTitle(doc),
		ImageURL:   extractImageURL(doc),
		Price:      extractPrice(doc),
		Drugstores: extractStores(doc),
		ProductID:  id,
	}, nil
}

func extractProductID(doc Node) (string, bool) {
	if container, ok := doc.Find(productSelector); ok {
		// A present attribute is authoritative, even when empty.
		if id, ok := container.Attr(productIDAttr); ok {
			return id, id != ""
		}
	}

	// Some layouts only expose the ID to inline scripts.
	for _, script := range doc.FindAll("script") {
		if id, ok := MatchProductID(script.Text()); ok {
			return id, true
		}
	}
	return "", false
}

func extractTitle(doc Node) string {
	if h, ok := doc.Find(titleSelector); ok {
		return strings.TrimSpace(h.Text())
	}
	return DefaultTitle
}

func extractImageURL(doc Node) *string {
	if img, ok := doc.Find(imageSelector); ok {
		if src, ok := img.Attr("src"); ok {
			return &src
		}
	}
	if meta, ok := doc.Find(ogImageSelector); ok {
		if content, ok := meta.Attr("content"); ok && content != "" {
			return &content
		}
	}
	return nil
}

func extractPrice(doc Node) *string {
	if container, ok := doc.Find(priceSelector); ok {
		// The struck-through old price shares the container with the
		// current one and would otherwise leak its digits.
		digits := DigitsOnly(container.Without(oldPriceSelector).Text())
		if digits != "" {
			return &digits
		}
	}
	if meta, ok := doc.Find(metaPriceSelector); ok {
		if content, ok := meta.Attr("content"); ok && content != "" {
			return &content
		}
	}
	return nil
}

func extractStores(doc Node) []Store {
	stores := make([]Store, 0)

	list, ok := doc.Find(storeListSelector)
	if !ok {
		return stores
	}

	for _, item := range list.Children(storeItemSelector) {
		id, _ := item.Attr(storeIDAttr)
		stores = append(stores, Store{
			ID:       id,
			Name:     childText(item, storeNameSelector),
			Address:  childText(item, storeAddressSelector),
			Quantity: childText(item, storeQuantitySelector),
			Status:   stockStatus(item),
		})
	}
	return stores
}

// stockStatus treats a missing status node as in stock.
func stockStatus(item Node) StockStatus {
	if status, ok := item.Find(storeStatusSelector); ok && status.HasClass(storeStatusEmptyMarker) {
		return OutOfStock
	}
	return InStock
}

func childText(n Node, selector string) string {
	if child, ok := n.Find(selector); ok {
		return strings.TrimSpace(child.Text())
	}
	return ""
}
