package provider

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/skydevhost/skyshop-gateway/internal/config"
	"github.com/skydevhost/skyshop-gateway/internal/entities"
)

// moogoldGateway ходит в MooGold. Каждый запрос подписывается
// HMAC-SHA256(body+timestamp+path) в заголовке auth, партнёрские реквизиты
// идут Basic-авторизацией. Подпись считается по тем же байтам, что уходят
// в теле.
type moogoldGateway struct {
	logger    *slog.Logger
	client    *http.Client
	uri       string
	secretKey string
	partnerID string
}

func NewMoogoldGateway(logger *slog.Logger, cfg config.Moogold) *moogoldGateway {
	return &moogoldGateway{
		logger:    logger.With(slog.String("provider", "moogold")),
		client:    &http.Client{Timeout: 30 * time.Second},
		uri:       cfg.URI,
		secretKey: cfg.SecretKey,
		partnerID: cfg.PartnerID,
	}
}

type moogoldCreateData struct {
	Category  string `json:"category"`
	ProductID string `json:"product-id"`
	Quantity  string `json:"quantity"`
	UserID    string `json:"User ID"`
	Server    string `json:"Server"`
}

type moogoldCreatePayload struct {
	Path string            `json:"path"`
	Data moogoldCreateData `json:"data"`
}

type moogoldCreateResponse struct {
	Status         bool `json:"status"`
	AccountDetails struct {
		OrderID json.Number `json:"order_id"`
	} `json:"account_details"`
}

type moogoldCheckPayload struct {
	Path    string      `json:"path"`
	OrderID json.Number `json:"order_id"`
}

type moogoldCheckResponse struct {
	OrderStatus string `json:"order_status"`
}

type moogoldListPayload struct {
	Path       string      `json:"path"`
	CategoryID json.Number `json:"category_id"`
}

type moogoldDetailPayload struct {
	Path      string      `json:"path"`
	ProductID json.Number `json:"product_id"`
}

func (g *moogoldGateway) CreateOrder(ctx context.Context, req entities.OrderRequest) (CreateResult, error) {
	// количество у MooGold всегда 1, тираж задаёт product-id
	payload := moogoldCreatePayload{
		Path: "order/create_order",
		Data: moogoldCreateData{
			Category:  "1",
			ProductID: req.ProductCode,
			Quantity:  "1",
			UserID:    req.UserID,
			Server:    req.ZoneID,
		},
	}

	raw, err := g.post(ctx, "order/create_order", payload)
	if err != nil {
		return CreateResult{}, err
	}

	var resp moogoldCreateResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return CreateResult{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if !resp.Status {
		g.logger.Warn("order was not created", "user_id", req.UserID)
		return CreateResult{Raw: string(raw), Rejected: true}, nil
	}

	orderID := resp.AccountDetails.OrderID.String()
	g.logger.Debug("order created", "user_id", req.UserID, "order_id", orderID)
	return CreateResult{
		Ref:    entities.OrderRef{Provider: entities.ProviderMoogold, OrderID: orderID},
		Status: entities.ProviderMoogold.InitialStatus(),
		Raw:    string(raw),
	}, nil
}

func (g *moogoldGateway) CheckOrder(ctx context.Context, ref entities.OrderRef) (CheckResult, error) {
	payload := moogoldCheckPayload{
		Path:    "order/order_detail",
		OrderID: json.Number(ref.OrderID),
	}

	raw, err := g.post(ctx, "order/order_detail", payload)
	if err != nil {
		return CheckResult{}, err
	}

	var resp moogoldCheckResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return CheckResult{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.OrderStatus == "" {
		g.logger.Warn("order was not checked", "order_id", ref.OrderID)
		return CheckResult{Raw: string(raw), Rejected: true}, nil
	}

	return CheckResult{Status: entities.Status(resp.OrderStatus), Raw: string(raw)}, nil
}

// ListProducts возвращает каталог категории как есть, без разбора.
func (g *moogoldGateway) ListProducts(ctx context.Context, categoryID string) (json.RawMessage, error) {
	payload := moogoldListPayload{
		Path:       "product/list_product",
		CategoryID: json.Number(categoryID),
	}
	return g.post(ctx, "product/list_product", payload)
}

// FindProduct возвращает карточку продукта как есть, без разбора.
func (g *moogoldGateway) FindProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	payload := moogoldDetailPayload{
		Path:      "product/product_detail",
		ProductID: json.Number(productID),
	}
	return g.post(ctx, "product/product_detail", payload)
}

func (g *moogoldGateway) post(ctx context.Context, apiMethod string, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	timestamp := strconv.FormatInt(time.Now().Unix(), 10)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.uri+apiMethod, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("timestamp", timestamp)
	req.Header.Set("auth", g.signature(body, timestamp, apiMethod))
	req.Header.Set("Authorization", "Basic "+g.basicToken())
	req.Header.Set("Content-Type", "application/json")

	res, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", res.StatusCode)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	return raw, nil
}

func (g *moogoldGateway) signature(body []byte, timestamp, apiMethod string) string {
	mac := hmac.New(sha256.New, []byte(g.secretKey))
	mac.Write(body)
	mac.Write([]byte(timestamp))
	mac.Write([]byte(apiMethod))
	return hex.EncodeToString(mac.Sum(nil))
}

func (g *moogoldGateway) basicToken() string {
	return base64.StdEncoding.EncodeToString([]byte(g.partnerID + ":" + g.secretKey))
}
