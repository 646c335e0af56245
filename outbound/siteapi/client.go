package siteapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"github.com/spf13/viper"
	"io"
	"log/slog"
	"masjid-events/common"
	"masjid-events/common/constant"
	"masjid-events/common/errs"
	"masjid-events/common/otel"
	"masjid-events/model"
	"net/http"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client talks to the institution's REST API, which owns all domain data:
// the event catalog, identities and orders. One bounded timeout covers
// every call; there are no automatic retries, a retried POST /orders would
// be a brand new order server-side.
type Client struct {
	BaseUrl string
	Http    *http.Client
}

func NewClient(cfg *viper.Viper) *Client {
	timeout := cfg.GetDuration("siteapi.timeout")
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		BaseUrl: cfg.GetString("siteapi.base_url"),
		Http:    &http.Client{Timeout: timeout},
	}
}

func (c *Client) ListEvents(ctx context.Context) ([]model.Event, error) {
	ctx, span := otel.Tracer.Start(ctx, "siteapi.ListEvents")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseUrl+"/events", nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.Http.Do(req)
	if err != nil {
		common.UtilSpanError(span, err)
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("list events: unexpected status %d", resp.StatusCode)
		common.UtilSpanError(span, err)
		return nil, err
	}

	var events []model.Event
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		common.UtilSpanError(span, err)
		return nil, err
	}

	return events, nil
}

func (c *Client) CurrentIdentity(ctx context.Context, token string) (model.Identity, error) {
	ctx, span := otel.Tracer.Start(ctx, "siteapi.CurrentIdentity")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseUrl+"/me", nil)
	if err != nil {
		return model.Identity{}, err
	}

	setAuth(req, token)

	resp, err := c.Http.Do(req)
	if err != nil {
		common.UtilSpanError(span, err)
		return model.Identity{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return model.Identity{}, errs.ErrUnauthenticated
	}

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("current identity: unexpected status %d", resp.StatusCode)
		common.UtilSpanError(span, err)
		return model.Identity{}, err
	}

	var identity model.Identity
	if err := json.NewDecoder(resp.Body).Decode(&identity); err != nil {
		common.UtilSpanError(span, err)
		return model.Identity{}, err
	}

	if identity.Id == "" {
		return model.Identity{}, errs.ErrUnauthenticated
	}

	return identity, nil
}

func (c *Client) CreateOrder(ctx context.Context, token string, orderReq model.OrderRequest) (model.OrderConfirmation, error) {
	ctx, span := otel.Tracer.Start(ctx, "siteapi.CreateOrder")
	defer span.End()

	traceIdAttr := common.ExtractTraceIDFromCtx(ctx)

	body, err := json.Marshal(orderReq)
	if err != nil {
		return model.OrderConfirmation{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseUrl+"/orders", bytes.NewReader(body))
	if err != nil {
		return model.OrderConfirmation{}, err
	}

	req.Header.Set("Content-Type", "application/json")
	setAuth(req, token)

	resp, err := c.Http.Do(req)
	if err != nil {
		slog.ErrorContext(ctx, "order request transport failure", traceIdAttr, slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return model.OrderConfirmation{}, &errs.SubmissionError{Message: "Order service unreachable"}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return model.OrderConfirmation{}, errs.ErrUnauthenticated
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := readServerError(resp.Body)
		slog.ErrorContext(ctx, "order rejected by server", traceIdAttr,
			slog.Int("status", resp.StatusCode), slog.String("message", message))
		common.UtilSpanError(span, fmt.Errorf("create order: status %d", resp.StatusCode))
		return model.OrderConfirmation{}, &errs.SubmissionError{Message: message}
	}

	var conf model.OrderConfirmation
	if err := json.NewDecoder(resp.Body).Decode(&conf); err != nil {
		common.UtilSpanError(span, err)
		return model.OrderConfirmation{}, &errs.SubmissionError{Message: "Invalid order service response"}
	}

	return conf, nil
}

func setAuth(req *http.Request, token string) {
	if token != "" {
		req.Header.Set("Authorization", token)
	}
}

// readServerError pulls the {error} payload out of a failed response,
// falling back to a generic message.
func readServerError(body io.Reader) string {
	var errResp model.ErrorResponse
	if err := json.NewDecoder(body).Decode(&errResp); err == nil && errResp.Error != "" {
		return errResp.Error
	}
	return "Order submission failed"
}
