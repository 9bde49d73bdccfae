package server

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/shopmix/catalog/pkg/catalog"
	"github.com/shopmix/catalog/pkg/common"
	"github.com/shopmix/catalog/pkg/feed"
	"github.com/shopmix/catalog/pkg/sorting"
	"github.com/shopmix/catalog/pkg/tracking"
	"github.com/shopmix/catalog/pkg/types"
	"github.com/shopmix/catalog/pkg/variant"
)

var (
	noSearches = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_searches_total",
		Help: "The total number of processed browse queries",
	})
	noFacetQueries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_facets_total",
		Help: "The total number of processed facet queries",
	})
	noVariantResolves = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_variant_resolves_total",
		Help: "The total number of variant resolutions",
	})
	noClickThroughs = promauto.NewCounter(prometheus.CounterOpts{
		Name: "catalog_clickthroughs_total",
		Help: "The total number of buy-from-source clicks",
	})
)

// WebServer serves the public browse API on top of the coordinator.
type WebServer struct {
	Catalog  *catalog.Coordinator
	Cache    *Cache
	Tracking tracking.Tracking
	ListTTL  time.Duration
}

func (ws *WebServer) ClientHandler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /products", common.JsonHandler(ws.Tracking, ws.ListProducts))
	mux.HandleFunc("GET /products/{handle}", common.JsonHandler(ws.Tracking, ws.ProductDetail))
	mux.HandleFunc("GET /products/{handle}/variant", common.JsonHandler(ws.Tracking, ws.ResolveVariant))
	mux.HandleFunc("GET /products/{id}/reviews", common.JsonHandler(ws.Tracking, ws.ListReviews))
	mux.HandleFunc("POST /products/{id}/reviews", common.JsonHandler(ws.Tracking, ws.PostReview))
	mux.HandleFunc("GET /facets", common.JsonHandler(ws.Tracking, ws.GetFacets))
	mux.HandleFunc("GET /sortings", common.JsonHandler(ws.Tracking, ws.GetSortings))
	mux.HandleFunc("POST /track/click", common.JsonHandler(ws.Tracking, ws.TrackClick))
	mux.HandleFunc("OPTIONS /", func(w http.ResponseWriter, r *http.Request) {
		common.RespondToOptions(w, r)
	})
	return mux
}

// ListProducts answers the main browse query: filtered, counted, sorted and
// paginated. Responses are cached by the canonical query string.
func (ws *WebServer) ListProducts(w http.ResponseWriter, r *http.Request, sessionId string) error {
	go noSearches.Inc()
	state := FilterStateFromQuery(r.URL.Query())
	cacheKey := "list:" + state.CacheKey()

	defaultHeaders(w, r, "120")

	if ws.Cache != nil {
		if data, err := ws.Cache.GetRaw(cacheKey); err == nil {
			w.WriteHeader(http.StatusOK)
			_, err = w.Write(data)
			return err
		}
	}

	result := ws.Catalog.Query(state)
	if ws.Tracking != nil {
		go ws.Tracking.TrackSearch(sessionId, state, result.TotalHits, r)
	}

	data, err := sonic.Marshal(result)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return err
	}
	if ws.Cache != nil {
		ttl := ws.ListTTL
		if ttl <= 0 {
			ttl = 5 * time.Minute
		}
		if err := ws.Cache.SetRaw(cacheKey, data, ttl); err != nil {
			log.Printf("Failed to cache list response: %v", err)
		}
	}
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(data)
	return err
}

// productDetailResponse carries everything the product page needs in one
// round trip. CanonicalQuery is the color/size query string the storefront
// should rewrite its URL to when the selection was defaulted.
type productDetailResponse struct {
	Product        *types.Product  `json:"product"`
	Variant        variant.Result  `json:"variant"`
	CanonicalQuery string          `json:"canonicalQuery,omitempty"`
	Related        []types.Product `json:"related,omitempty"`
}

func (ws *WebServer) ProductDetail(w http.ResponseWriter, r *http.Request, sessionId string) error {
	handle := r.PathValue("handle")
	p, err := ws.Catalog.Product(r.Context(), handle)
	if err != nil {
		if errors.Is(err, feed.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return nil
		}
		http.Error(w, err.Error(), http.StatusBadGateway)
		return err
	}

	res := variant.Evaluate(p, SelectionFromQuery(r.URL.Query()))
	response := productDetailResponse{
		Product: p,
		Variant: res,
		Related: ws.Catalog.Related(p, 4),
	}
	if res.Defaulted && len(res.Selection) > 0 {
		q := url.Values{}
		for _, option := range []string{variant.OptionColor, variant.OptionSize} {
			if v, ok := res.Selection[option]; ok {
				q.Set(option, v)
			}
		}
		response.CanonicalQuery = q.Encode()
	}

	defaultHeaders(w, r, "120")
	w.WriteHeader(http.StatusOK)
	return common.WriteJson(w, response)
}

// ResolveVariant recomputes the picker state for one option selection.
func (ws *WebServer) ResolveVariant(w http.ResponseWriter, r *http.Request, sessionId string) error {
	go noVariantResolves.Inc()
	handle := r.PathValue("handle")
	p, err := ws.Catalog.Product(r.Context(), handle)
	if err != nil {
		if errors.Is(err, feed.ErrNotFound) {
			http.Error(w, "product not found", http.StatusNotFound)
			return nil
		}
		http.Error(w, err.Error(), http.StatusBadGateway)
		return err
	}
	defaultHeaders(w, r, "120")
	w.WriteHeader(http.StatusOK)
	return common.WriteJson(w, variant.Evaluate(p, SelectionFromQuery(r.URL.Query())))
}

// GetFacets serves the sidebar only, for filter panels refreshed
// independently of the result list.
func (ws *WebServer) GetFacets(w http.ResponseWriter, r *http.Request, sessionId string) error {
	go noFacetQueries.Inc()
	state := FilterStateFromQuery(r.URL.Query())
	facets := catalog.FacetsFor(ws.Catalog.Snapshot(), state)
	defaultHeaders(w, r, "120")
	w.WriteHeader(http.StatusOK)
	return common.WriteJson(w, facets)
}

func (ws *WebServer) GetSortings(w http.ResponseWriter, r *http.Request, sessionId string) error {
	publicHeaders(w, r, "3600")
	w.WriteHeader(http.StatusOK)
	return common.WriteJson(w, sorting.Options)
}

func (ws *WebServer) ListReviews(w http.ResponseWriter, r *http.Request, sessionId string) error {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return nil
	}
	reviews, err := ws.Catalog.Feed.Reviews(r.Context(), uint(id))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return err
	}
	defaultHeaders(w, r, "60")
	w.WriteHeader(http.StatusOK)
	return common.WriteJson(w, reviews)
}

func (ws *WebServer) PostReview(w http.ResponseWriter, r *http.Request, sessionId string) error {
	id, err := strconv.ParseUint(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return nil
	}
	var review feed.NewReview
	if err := common.ReadJson(r, &review); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	if review.Rating < 1 || review.Rating > 5 || review.Body == "" {
		http.Error(w, "rating must be 1-5 and body non-empty", http.StatusBadRequest)
		return nil
	}
	stored, err := ws.Catalog.Feed.PostReview(r.Context(), uint(id), review)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return err
	}
	genericHeaders(w, r)
	w.WriteHeader(http.StatusCreated)
	return common.WriteJson(w, stored)
}

type clickRequest struct {
	ProductId uint   `json:"productId"`
	SourceUrl string `json:"sourceUrl"`
}

// TrackClick records a buy-from-source click-through.
func (ws *WebServer) TrackClick(w http.ResponseWriter, r *http.Request, sessionId string) error {
	go noClickThroughs.Inc()
	var click clickRequest
	if err := common.ReadJson(r, &click); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}
	if click.ProductId == 0 {
		http.Error(w, "productId required", http.StatusBadRequest)
		return nil
	}
	if ws.Tracking != nil {
		go ws.Tracking.TrackClickThrough(sessionId, click.ProductId, click.SourceUrl)
	}
	genericHeaders(w, r)
	w.WriteHeader(http.StatusAccepted)
	_, err := fmt.Fprint(w, `{"ok":true}`)
	return err
}
