package lookup

import (
	"buddyfridge/domain"
	"buddyfridge/entities"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

type (
	// LookupService queries the Open Food Facts public API to prefill new
	// batch forms. Everything it returns is advisory.
	LookupService interface {
		SearchProducts(ctx context.Context, query string) ([]domain.ProductLookupResponse, error)
		FetchByBarcode(ctx context.Context, barcode string) (domain.ProductLookupResponse, error)
	}

	lookupService struct {
		baseURL    string
		httpClient *http.Client
	}

	offSearchResponse struct {
		Products []offProduct `json:"products"`
	}

	offBarcodeResponse struct {
		Status  int         `json:"status"`
		Product *offProduct `json:"product"`
	}

	offProduct struct {
		ProductName string `json:"product_name"`
		Categories  string `json:"categories"`
		Brands      string `json:"brands"`
	}
)

const defaultBaseURL = "https://world.openfoodfacts.org"

const searchPageSize = 5

func NewLookupService(baseURL string) LookupService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &lookupService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *lookupService) SearchProducts(ctx context.Context, query string) ([]domain.ProductLookupResponse, error) {
	// Very short queries return too much noise to be useful.
	if len(strings.TrimSpace(query)) <= 2 {
		return nil, nil
	}

	searchURL := fmt.Sprintf(
		"%s/cgi/search.pl?search_terms=%s&search_simple=1&action=process&json=1&page_size=%d",
		s.baseURL, url.QueryEscape(query), searchPageSize,
	)

	req, err := http.NewRequestWithContext(ctx, "GET", searchURL, nil)
	if err != nil {
		return nil, domain.ErrLookupFailed
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, domain.ErrLookupFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.ErrLookupFailed
	}

	var decoded offSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, domain.ErrLookupFailed
	}

	var results []domain.ProductLookupResponse
	for _, product := range decoded.Products {
		if converted, ok := convert(product); ok {
			results = append(results, converted)
		}
	}

	return results, nil
}

func (s *lookupService) FetchByBarcode(ctx context.Context, barcode string) (domain.ProductLookupResponse, error) {
	barcodeURL := fmt.Sprintf("%s/api/v0/product/%s.json", s.baseURL, url.PathEscape(barcode))

	req, err := http.NewRequestWithContext(ctx, "GET", barcodeURL, nil)
	if err != nil {
		return domain.ProductLookupResponse{}, domain.ErrLookupFailed
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return domain.ProductLookupResponse{}, domain.ErrLookupFailed
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domain.ProductLookupResponse{}, domain.ErrLookupFailed
	}

	var decoded offBarcodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return domain.ProductLookupResponse{}, domain.ErrLookupFailed
	}

	if decoded.Status != 1 || decoded.Product == nil {
		return domain.ProductLookupResponse{}, domain.ErrProductNotFound
	}

	converted, ok := convert(*decoded.Product)
	if !ok {
		return domain.ProductLookupResponse{}, domain.ErrProductNotFound
	}

	return converted, nil
}

func convert(product offProduct) (domain.ProductLookupResponse, bool) {
	if product.ProductName == "" {
		return domain.ProductLookupResponse{}, false
	}

	fullName := product.ProductName
	if product.Brands != "" {
		fullName = product.Brands + " " + product.ProductName
	}

	return domain.ProductLookupResponse{
		Name:              fullName,
		Emoji:             guessEmoji(product.Categories, product.ProductName),
		Category:          simplifyCategory(product.Categories),
		SuggestedLocation: string(suggestLocation(product.Categories)),
	}, true
}

// guessEmoji maps category keywords (with a few product-name fallbacks) to a
// display emoji. Order matters: earlier rules are more specific.
func guessEmoji(category, name string) string {
	cat := strings.ToLower(category)
	lowerName := strings.ToLower(name)

	rules := []struct {
		keywords []string
		emoji    string
	}{
		{[]string{"beverag", "water", "drink", "soda"}, "🥤"},
		{[]string{"biscuit", "cookie"}, "🍪"},
		{[]string{"milk", "yogurt", "dair"}, "🥛"},
		{[]string{"bread", "bakery"}, "🍞"},
		{[]string{"pasta", "spagh"}, "🍝"},
		{[]string{"meat", "ham", "salami", "chick"}, "🥩"},
		{[]string{"fish", "tuna", "sea"}, "🐟"},
		{[]string{"cheese"}, "🧀"},
		{[]string{"fruit", "apple", "banana"}, "🍎"},
		{[]string{"vegetable", "plant", "salad"}, "🥗"},
		{[]string{"sauce", "tomat"}, "🍅"},
		{[]string{"pizza"}, "🍕"},
		{[]string{"chocola", "cocoa"}, "🍫"},
		{[]string{"ice cream", "frozen"}, "🍦"},
	}

	for _, rule := range rules {
		for _, keyword := range rule.keywords {
			if strings.Contains(cat, keyword) {
				return rule.emoji
			}
		}
	}

	switch {
	case strings.Contains(lowerName, "egg"):
		return "🥚"
	case strings.Contains(lowerName, "wine"):
		return "🍷"
	case strings.Contains(lowerName, "beer"):
		return "🍺"
	}

	return "🛍️"
}

func simplifyCategory(category string) string {
	lower := strings.ToLower(category)
	switch {
	case strings.Contains(lower, "frozen"), strings.Contains(lower, "ice"):
		return "Frozen"
	case strings.Contains(lower, "fresh"), strings.Contains(lower, "cheese"),
		strings.Contains(lower, "meat"), strings.Contains(lower, "dairy"),
		strings.Contains(lower, "yogurt"):
		return "Fresh"
	}
	return "Pantry"
}

func suggestLocation(category string) entities.StorageLocation {
	switch simplifyCategory(category) {
	case "Frozen":
		return entities.LocationFreezer
	case "Fresh":
		return entities.LocationFridge
	}
	return entities.LocationPantry
}
