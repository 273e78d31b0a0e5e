package provider

import (
	"bytes"
	"context"
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"encoding/base64"
	"encoding/json"
	"encoding/pem"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/skydevhost/skyshop-gateway/internal/config"
	"github.com/skydevhost/skyshop-gateway/internal/entities"
)

const jollymaxSuccessCode = "APPLY_SUCCESS"

// jollymaxGateway ходит в JollyMax. Каждый запрос оборачивается в конверт
// с московским requestTime и подписывается RSA-SHA256 по байтам тела,
// подпись уходит в заголовке sign. Ключ перечитывается из PEM на каждый
// вызов, чтобы его можно было заменить без рестарта.
type jollymaxGateway struct {
	logger        *slog.Logger
	client        *http.Client
	uri           string
	merchantAppID string
	merchantNo    string
	keyPath       string
	location      *time.Location
}

func NewJollymaxGateway(logger *slog.Logger, cfg config.Jollymax) (*jollymaxGateway, error) {
	location, err := time.LoadLocation("Europe/Moscow")
	if err != nil {
		return nil, fmt.Errorf("failed to load location: %w", err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	if cfg.InsecureSkipVerify {
		client.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	return &jollymaxGateway{
		logger:        logger.With(slog.String("provider", "jollymax")),
		client:        client,
		uri:           cfg.URI,
		merchantAppID: cfg.MerchantAppID,
		merchantNo:    cfg.MerchantNo,
		keyPath:       cfg.PrivateKeyPath,
		location:      location,
	}, nil
}

type jollymaxEnvelope struct {
	RequestTime   string `json:"requestTime"`
	Version       string `json:"version"`
	KeyVersion    string `json:"keyVersion"`
	MerchantAppID string `json:"merchantAppId"`
	MerchantNo    string `json:"merchantNo"`
	Data          any    `json:"data"`
}

type jollymaxTradeInfo struct {
	UserID   string `json:"userId"`
	ServerID string `json:"serverId"`
	RoleID   string `json:"role_id"`
}

type jollymaxCreateData struct {
	OutOrderID string            `json:"outOrderId"`
	Code       string            `json:"code"`
	Quantity   int               `json:"quantity"`
	TradeInfo  jollymaxTradeInfo `json:"tradeInfo"`
	MessageID  string            `json:"messageId"`
}

type jollymaxQueryData struct {
	OutOrderID string `json:"outOrderId"`
	MessageID  string `json:"messageId"`
}

type jollymaxResponse struct {
	Code string `json:"code"`
	Data struct {
		Status  string          `json:"status"`
		Balance decimal.Decimal `json:"balance"`
	} `json:"data"`
}

func (g *jollymaxGateway) CreateOrder(ctx context.Context, req entities.OrderRequest) (CreateResult, error) {
	orderID := uniqueID("TM003400")
	messageID := uniqueID("")

	// количество у JollyMax всегда 1, тираж задаёт code
	data := jollymaxCreateData{
		OutOrderID: orderID,
		Code:       req.ProductCode,
		Quantity:   1,
		TradeInfo: jollymaxTradeInfo{
			UserID:   req.UserID,
			ServerID: req.ZoneID,
		},
		MessageID: messageID,
	}

	raw, err := g.post(ctx, "/distribute-order-create", data)
	if err != nil {
		return CreateResult{}, err
	}

	var resp jollymaxResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return CreateResult{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.Code != jollymaxSuccessCode {
		g.logger.Warn("order was not created", "user_id", req.UserID, "code", resp.Code)
		return CreateResult{Raw: string(raw), Rejected: true}, nil
	}

	g.logger.Debug("order created", "user_id", req.UserID, "order_id", orderID)
	return CreateResult{
		Ref: entities.OrderRef{
			Provider:  entities.ProviderJollymax,
			OrderID:   orderID,
			MessageID: messageID,
		},
		Status: entities.ProviderJollymax.InitialStatus(),
		Raw:    string(raw),
	}, nil
}

func (g *jollymaxGateway) CheckOrder(ctx context.Context, ref entities.OrderRef) (CheckResult, error) {
	data := jollymaxQueryData{OutOrderID: ref.OrderID, MessageID: ref.MessageID}

	raw, err := g.post(ctx, "/distribute-order-query", data)
	if err != nil {
		return CheckResult{}, err
	}

	var resp jollymaxResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return CheckResult{}, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.Code != jollymaxSuccessCode {
		g.logger.Warn("order was not checked", "order_id", ref.OrderID, "code", resp.Code)
		return CheckResult{Raw: string(raw), Rejected: true}, nil
	}

	return CheckResult{Status: entities.Status(resp.Data.Status), Raw: string(raw)}, nil
}

// Balance запрашивает остаток на мерчантском счёте.
func (g *jollymaxGateway) Balance(ctx context.Context) (decimal.Decimal, error) {
	raw, err := g.post(ctx, "/distribute-balance-query", struct{}{})
	if err != nil {
		return decimal.Zero, err
	}

	var resp jollymaxResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return decimal.Zero, fmt.Errorf("failed to decode response: %w", err)
	}

	if resp.Code != jollymaxSuccessCode {
		return decimal.Zero, fmt.Errorf("balance was not received: %s", resp.Code)
	}

	return resp.Data.Balance, nil
}

func (g *jollymaxGateway) post(ctx context.Context, apiMethod string, data any) ([]byte, error) {
	envelope := jollymaxEnvelope{
		RequestTime:   time.Now().In(g.location).Format("2006-01-02T15:04:05.000-07:00"),
		Version:       "1.0",
		KeyVersion:    "1",
		MerchantAppID: g.merchantAppID,
		MerchantNo:    g.merchantNo,
		Data:          data,
	}

	body, err := json.Marshal(envelope)
	if err != nil {
		return nil, fmt.Errorf("failed to encode payload: %w", err)
	}

	sign, err := g.signPayload(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.uri+apiMethod, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("sign", sign)

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

func (g *jollymaxGateway) signPayload(payload []byte) (string, error) {
	keyData, err := os.ReadFile(g.keyPath)
	if err != nil {
		return "", fmt.Errorf("failed to read private key: %w", err)
	}

	block, _ := pem.Decode(keyData)
	if block == nil {
		return "", fmt.Errorf("failed to decode private key pem")
	}

	key, err := parsePrivateKey(block.Bytes)
	if err != nil {
		return "", err
	}

	digest := sha256.Sum256(payload)
	signature, err := rsa.SignPKCS1v15(rand.Reader, key, crypto.SHA256, digest[:])
	if err != nil {
		return "", fmt.Errorf("failed to sign payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(signature), nil
}

func parsePrivateKey(der []byte) (*rsa.PrivateKey, error) {
	if key, err := x509.ParsePKCS1PrivateKey(der); err == nil {
		return key, nil
	}
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is not rsa")
	}
	return key, nil
}

// uniqueID собирает внешний идентификатор заказа: префикс, отметка времени
// и uuid без дефисов.
func uniqueID(prefix string) string {
	return prefix + time.Now().Format("20060102150405") + strings.ReplaceAll(uuid.NewString(), "-", "")
}
