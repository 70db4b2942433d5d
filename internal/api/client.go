package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/taipei-trip/trip-cli/internal/cache"
	"github.com/taipei-trip/trip-cli/internal/models"
)

const (
	defaultTimeout  = 10 * time.Second
	defaultCacheTTL = 10 * time.Minute
)

// Cache interface for caching HTTP responses
type Cache interface {
	Get(key string) ([]byte, bool)
	Set(key string, value []byte) error
}

// Client is the API client for the attraction backend
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	cache      Cache
}

// ClientOption configures the Client
type ClientOption func(*Client)

// WithTimeout sets the HTTP client timeout
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithBaseURL overrides the API base URL
func WithBaseURL(u string) ClientOption {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithToken sets the authentication token
func WithToken(token string) ClientOption {
	return func(c *Client) {
		c.token = token
	}
}

// WithCache enables caching with the provided cache implementation
func WithCache(cc Cache) ClientOption {
	return func(c *Client) {
		c.cache = cc
	}
}

// WithDefaultCache enables caching with the default file cache
func WithDefaultCache() ClientOption {
	return func(c *Client) {
		fc, err := cache.NewFileCache(cache.DefaultCacheDir(), defaultCacheTTL)
		if err == nil {
			c.cache = fc
		}
	}
}

// NewClient creates a new API client
func NewClient(opts ...ClientOption) (*Client, error) {
	c := &Client{
		httpClient: &http.Client{Timeout: defaultTimeout},
		baseURL:    DefaultBaseURL,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetToken replaces the authentication token (empty clears it).
func (c *Client) SetToken(token string) {
	c.token = token
}

// Token returns the current authentication token.
func (c *Client) Token() string {
	return c.token
}

// Authenticated reports whether a token is set.
func (c *Client) Authenticated() bool {
	return c.token != ""
}

// PageRequest contains parameters for one listing page fetch.
type PageRequest struct {
	Page    int    // pagination cursor
	Keyword string // empty means browse mode
}

// ListAttractions fetches one page of attractions. An empty page signals
// exhaustion, not an error.
func (c *Client) ListAttractions(ctx context.Context, req PageRequest) (*models.AttractionPage, error) {
	body, err := c.ListAttractionsRaw(ctx, req)
	if err != nil {
		return nil, err
	}

	var resp models.AttractionsResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse attractions response: %w", err)
	}
	return resp.ToPage(), nil
}

// ListAttractionsRaw fetches one listing page and returns raw JSON
func (c *Client) ListAttractionsRaw(ctx context.Context, req PageRequest) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(req.Page))
	if req.Keyword != "" {
		params.Set("keyword", req.Keyword)
	}
	// Listing pages are never cached: the cursor must observe live data.
	return c.doRequest(ctx, http.MethodGet, EndpointAttractions, params, nil, false)
}

// GetAttraction fetches one attraction by ID
func (c *Client) GetAttraction(ctx context.Context, id int) (*models.Attraction, error) {
	body, err := c.GetAttractionRaw(ctx, id)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data models.AttractionResponse `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse attraction response: %w", err)
	}
	return resp.Data.ToAttraction(), nil
}

// GetAttractionRaw fetches one attraction and returns raw JSON
func (c *Client) GetAttractionRaw(ctx context.Context, id int) (json.RawMessage, error) {
	path := fmt.Sprintf("%s/%d", EndpointAttraction, id)
	return c.doRequest(ctx, http.MethodGet, path, nil, nil, true)
}

// GetMRTs fetches the MRT station names for the quick-filter bar. The
// server returns either bare names or {"mrt": name} objects; both are
// accepted.
func (c *Client) GetMRTs(ctx context.Context) ([]string, error) {
	body, err := c.GetMRTsRaw(ctx)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse mrts response: %w", err)
	}

	stations := make([]string, 0, len(resp.Data))
	for _, entry := range resp.Data {
		var name string
		if err := json.Unmarshal(entry, &name); err == nil {
			if name != "" {
				stations = append(stations, name)
			}
			continue
		}
		var obj struct {
			MRT string `json:"mrt"`
		}
		if err := json.Unmarshal(entry, &obj); err == nil && obj.MRT != "" {
			stations = append(stations, obj.MRT)
		}
	}
	return stations, nil
}

// GetMRTsRaw fetches the MRT list and returns raw JSON
func (c *Client) GetMRTsRaw(ctx context.Context) (json.RawMessage, error) {
	return c.doRequest(ctx, http.MethodGet, EndpointMRTs, nil, nil, true)
}

// FavoriteSnapshot returns the current user's favorited attraction IDs.
// Without a token it returns an empty set without a network call; error or
// malformed responses also degrade to the empty set. It never fails.
func (c *Client) FavoriteSnapshot(ctx context.Context) models.FavoriteSet {
	if c.token == "" {
		return models.FavoriteSet{}
	}

	body, err := c.doRequest(ctx, http.MethodGet, EndpointFavorite, nil, nil, false)
	if err != nil {
		return models.FavoriteSet{}
	}

	var resp struct {
		Data json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return models.FavoriteSet{}
	}
	return models.ParseFavoriteSet(resp.Data)
}

// AddFavorite marks an attraction as favorite. The response body is not
// needed for UI correctness and is discarded.
func (c *Client) AddFavorite(ctx context.Context, attractionID int) error {
	return c.toggleFavorite(ctx, http.MethodPost, attractionID)
}

// RemoveFavorite removes an attraction from the favorites.
func (c *Client) RemoveFavorite(ctx context.Context, attractionID int) error {
	return c.toggleFavorite(ctx, http.MethodDelete, attractionID)
}

func (c *Client) toggleFavorite(ctx context.Context, method string, attractionID int) error {
	if c.token == "" {
		return ErrNoToken
	}
	params := url.Values{}
	params.Set("attractionId", strconv.Itoa(attractionID))
	_, err := c.doRequest(ctx, method, EndpointFavorite, params, nil, false)
	return err
}

// Login exchanges credentials for a token via PUT /api/user/auth.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" {
		return "", ErrMissingField("email")
	}
	if password == "" {
		return "", ErrMissingField("password")
	}

	body, err := c.doRequest(ctx, http.MethodPut, EndpointUserAuth, nil, map[string]string{
		"email":    email,
		"password": password,
	}, false)
	if err != nil {
		return "", err
	}

	var resp models.TokenResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", fmt.Errorf("failed to parse login response: %w", err)
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return resp.Token, nil
}

// Register creates an account via POST /api/user.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	if name == "" {
		return ErrMissingField("name")
	}
	if email == "" {
		return ErrMissingField("email")
	}
	if password == "" {
		return ErrMissingField("password")
	}

	_, err := c.doRequest(ctx, http.MethodPost, EndpointUser, nil, map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
	}, false)
	return err
}

// GetUser verifies the token and returns the signed-in user, or nil when
// the server rejects the token with a null payload.
func (c *Client) GetUser(ctx context.Context) (*models.User, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}

	body, err := c.doRequest(ctx, http.MethodGet, EndpointUserAuth, nil, nil, false)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data *models.User `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse user response: %w", err)
	}
	return resp.Data, nil
}

// CreateBooking creates or replaces the pending booking.
func (c *Client) CreateBooking(ctx context.Context, req models.BookingRequest) error {
	if c.token == "" {
		return ErrNoToken
	}
	if req.AttractionID <= 0 {
		return ErrInvalidValue("attractionId", req.AttractionID)
	}
	if req.Date == "" {
		return ErrMissingField("date")
	}
	if !validBookingTime(req.Time) {
		return ErrInvalidValue("time", req.Time)
	}

	_, err := c.doRequest(ctx, http.MethodPost, EndpointBooking, nil, req, false)
	return err
}

// GetBooking returns the pending booking, or nil when none exists.
func (c *Client) GetBooking(ctx context.Context) (*models.Booking, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}

	body, err := c.doRequest(ctx, http.MethodGet, EndpointBooking, nil, nil, false)
	if err != nil {
		return nil, err
	}

	var resp models.BookingResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse booking response: %w", err)
	}
	return resp.Data, nil
}

// DeleteBooking clears the pending booking.
func (c *Client) DeleteBooking(ctx context.Context) error {
	if c.token == "" {
		return ErrNoToken
	}
	_, err := c.doRequest(ctx, http.MethodDelete, EndpointBooking, nil, nil, false)
	return err
}

// CreateOrder submits an order along with the opaque payment prime.
func (c *Client) CreateOrder(ctx context.Context, req models.OrderRequest) (*models.Order, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}
	if req.Prime == "" {
		return nil, ErrMissingField("prime")
	}
	if req.Order.Contact.Name == "" {
		return nil, ErrMissingField("contact.name")
	}
	if req.Order.Contact.Email == "" {
		return nil, ErrMissingField("contact.email")
	}
	if req.Order.Contact.Phone == "" {
		return nil, ErrMissingField("contact.phone")
	}

	body, err := c.doRequest(ctx, http.MethodPost, EndpointOrders, nil, req, false)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data *models.Order `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("order response carried no data")
	}
	return resp.Data, nil
}

// GetOrder fetches an order by its number; nil when the number is unknown.
func (c *Client) GetOrder(ctx context.Context, number string) (*models.Order, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}
	if number == "" {
		return nil, ErrMissingField("number")
	}

	body, err := c.doRequest(ctx, http.MethodGet, EndpointOrder+"/"+url.PathEscape(number), nil, nil, false)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data *models.Order `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse order response: %w", err)
	}
	return resp.Data, nil
}

// GetMember fetches the member dashboard payload.
func (c *Client) GetMember(ctx context.Context) (*models.Member, error) {
	if c.token == "" {
		return nil, ErrNoToken
	}

	body, err := c.doRequest(ctx, http.MethodGet, EndpointMember, nil, nil, false)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data *models.Member `json:"data"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("failed to parse member response: %w", err)
	}
	if resp.Data == nil {
		return nil, ErrNotFound
	}
	return resp.Data, nil
}

func validBookingTime(t string) bool {
	for _, v := range BookingTimes {
		if t == v {
			return true
		}
	}
	return false
}

// doRequest performs one HTTP request. Only GETs may be cached; cacheable
// requests never carry the auth token.
func (c *Client) doRequest(ctx context.Context, method, path string, params url.Values, body interface{}, cacheable bool) ([]byte, error) {
	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	if cacheable && method == http.MethodGet && c.cache != nil {
		if data, ok := c.cache.Get(reqURL); ok {
			return data, nil
		}
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%w: %w", ErrTimeout, ctx.Err())
		}
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		if msg := serverMessage(respBody); msg != "" {
			return nil, NewAPIErrorWithMessage(resp.StatusCode, path, msg)
		}
		return nil, NewAPIError(resp.StatusCode, resp.Status, path)
	}

	if cacheable && method == http.MethodGet && c.cache != nil {
		_ = c.cache.Set(reqURL, respBody)
	}

	return respBody, nil
}

// serverMessage extracts the message from an {error:true, message} body.
func serverMessage(body []byte) string {
	var e struct {
		Error   bool   `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err != nil {
		return ""
	}
	return e.Message
}
