package feed

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"github.com/shopmix/catalog/pkg/types"
)

// Client talks to the upstream aggregated product feed. It owns nothing,
// products and reviews live upstream and are only read (reviews also
// written through).
type Client struct {
	BaseUrl string
	Http    *http.Client
}

func NewClient(baseUrl string) *Client {
	return &Client{
		BaseUrl: strings.TrimSuffix(baseUrl, "/"),
		Http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// ListParams mirrors the upstream query surface for GET /products/.
type ListParams struct {
	Search   string
	MinPrice string
	MaxPrice string
	Brand    string
	Category string
	Ordering string
	Page     int
	PerPage  int
}

func (p ListParams) values() url.Values {
	q := url.Values{}
	if p.Search != "" {
		q.Set("search", p.Search)
	}
	if p.MinPrice != "" {
		q.Set("min_price", p.MinPrice)
	}
	if p.MaxPrice != "" {
		q.Set("max_price", p.MaxPrice)
	}
	if p.Brand != "" {
		q.Set("brand", p.Brand)
	}
	if p.Category != "" {
		q.Set("category", p.Category)
	}
	if p.Ordering != "" {
		q.Set("ordering", p.Ordering)
	}
	if p.Page > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.PerPage > 0 {
		q.Set("perPage", strconv.Itoa(p.PerPage))
	}
	return q
}

// Page is one page of the upstream collection. HasMore is derived from the
// upstream "next" cursor.
type Page struct {
	Products []types.Product
	Count    int
	HasMore  bool
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	u := c.BaseUrl + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")
	res, err := c.Http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("feed: %s returned %d", path, res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return err
	}
	return sonic.Unmarshal(body, out)
}

// FetchPage pulls one page of products.
func (c *Client) FetchPage(ctx context.Context, params ListParams) (*Page, error) {
	var res listResponse
	if err := c.get(ctx, "/products/", params.values(), &res); err != nil {
		return nil, err
	}
	page := &Page{
		Products: make([]types.Product, 0, len(res.Data)),
		Count:    res.Count,
		HasMore:  res.Next != "",
	}
	for i := range res.Data {
		page.Products = append(page.Products, res.Data[i].toProduct())
	}
	return page, nil
}

// FetchAll walks the paginated collection until the upstream reports no next
// page. maxPages caps runaway feeds; 0 means no cap.
func (c *Client) FetchAll(ctx context.Context, perPage, maxPages int) ([]types.Product, error) {
	if perPage <= 0 {
		perPage = 200
	}
	all := make([]types.Product, 0, perPage)
	for pageNo := 1; maxPages <= 0 || pageNo <= maxPages; pageNo++ {
		page, err := c.FetchPage(ctx, ListParams{Page: pageNo, PerPage: perPage})
		if err != nil {
			return nil, err
		}
		all = append(all, page.Products...)
		if !page.HasMore || len(page.Products) == 0 {
			break
		}
	}
	return all, nil
}

// FetchProduct reads a single product by its handle. The upstream sometimes
// answers with a one-element array, both shapes are accepted.
func (c *Client) FetchProduct(ctx context.Context, handle string) (*types.Product, error) {
	u := fmt.Sprintf("%s/products/%s/", c.BaseUrl, url.PathEscape(handle))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	res, err := c.Http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("feed: product %s returned %d", handle, res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	var raw rawProduct
	if err := sonic.Unmarshal(body, &raw); err != nil {
		var list []rawProduct
		if err2 := sonic.Unmarshal(body, &list); err2 != nil || len(list) == 0 {
			return nil, err
		}
		raw = list[0]
	}
	p := raw.toProduct()
	return &p, nil
}

var ErrNotFound = fmt.Errorf("feed: not found")
