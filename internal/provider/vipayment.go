package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/skydevhost/skyshop-gateway/internal/config"
	"github.com/skydevhost/skyshop-gateway/internal/entities"
)

// vipaymentGateway ходит в VIPayment. API форм-кодированный, оба вызова
// (создание и проверка) идут на один метод /game-feature и различаются
// полем type.
type vipaymentGateway struct {
	logger *slog.Logger
	client *http.Client
	uri    string
	key    string
	sign   string
}

func NewVipaymentGateway(logger *slog.Logger, cfg config.Vipayment) *vipaymentGateway {
	return &vipaymentGateway{
		logger: logger.With(slog.String("provider", "vipayment")),
		client: &http.Client{Timeout: 30 * time.Second},
		uri:    cfg.URI,
		key:    cfg.Key,
		sign:   cfg.Sign,
	}
}

type vipaymentCreateResponse struct {
	Result  bool   `json:"result"`
	Message string `json:"message"`
	Data    struct {
		TrxID string `json:"trxid"`
	} `json:"data"`
}

type vipaymentCheckResponse struct {
	Result bool `json:"result"`
	Data   []struct {
		Status string `json:"status"`
	} `json:"data"`
}

func (g *vipaymentGateway) CreateOrder(ctx context.Context, req entities.OrderRequest) (CreateResult, error) {
	form := url.Values{}
	form.Set("key", g.key)
	form.Set("sign", g.sign)
	form.Set("type", "order")
	form.Set("service", req.ProductCode)
	form.Set("data_no", req.UserID)
	form.Set("data_zone", req.ZoneID)

	raw, err := g.post(ctx, form)
	if err != nil {
		return CreateResult{}, err
	}

	var resp vipaymentCreateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return CreateResult{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if !resp.Result {
		g.logger.Warn("order was not created", "user_id", req.UserID, "message", resp.Message)
		return CreateResult{Raw: string(raw), Rejected: true}, nil
	}

	g.logger.Debug("order created", "user_id", req.UserID, "trxid", resp.Data.TrxID)
	return CreateResult{
		Ref:    entities.OrderRef{Provider: entities.ProviderVipayment, OrderID: resp.Data.TrxID},
		Status: entities.ProviderVipayment.InitialStatus(),
		Raw:    string(raw),
	}, nil
}

func (g *vipaymentGateway) CheckOrder(ctx context.Context, ref entities.OrderRef) (CheckResult, error) {
	form := url.Values{}
	form.Set("key", g.key)
	form.Set("sign", g.sign)
	form.Set("type", "status")
	form.Set("trxid", ref.OrderID)

	raw, err := g.post(ctx, form)
	if err != nil {
		return CheckResult{}, err
	}

	var resp vipaymentCheckResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return CheckResult{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if !resp.Result || len(resp.Data) == 0 {
		g.logger.Warn("order was not checked", "order_id", ref.OrderID)
		return CheckResult{Raw: string(raw), Rejected: true}, nil
	}

	return CheckResult{Status: entities.Status(resp.Data[0].Status), Raw: string(raw)}, nil
}

func (g *vipaymentGateway) post(ctx context.Context, form url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.uri+"/game-feature", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "curl/7.64.1")

	res, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return body, nil
}
