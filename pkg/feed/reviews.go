package feed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/bytedance/sonic"
)

// Reviews lists the reviews for a product. The reviews API is a sibling of
// the product feed and is passed through untouched, review storage is not
// this service's concern.
func (c *Client) Reviews(ctx context.Context, productId uint) ([]Review, error) {
	var out []Review
	err := c.get(ctx, fmt.Sprintf("/products/%d/reviews/", productId), nil, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PostReview submits a new review upstream and returns the stored record.
func (c *Client) PostReview(ctx context.Context, productId uint, review NewReview) (*Review, error) {
	payload, err := sonic.Marshal(review)
	if err != nil {
		return nil, err
	}
	u := fmt.Sprintf("%s/products/%d/reviews/", c.BaseUrl, productId)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	res, err := c.Http.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK && res.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("feed: post review returned %d", res.StatusCode)
	}
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}
	var stored Review
	if err := sonic.Unmarshal(body, &stored); err != nil {
		return nil, err
	}
	return &stored, nil
}
