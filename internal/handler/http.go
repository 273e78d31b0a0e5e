package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/skydevhost/skyshop-gateway/internal/entities"
	"github.com/skydevhost/skyshop-gateway/internal/service"
	"github.com/skydevhost/skyshop-gateway/pkg/utils"
)

type OrderService interface {
	PlaceOrder(ctx context.Context, req entities.OrderRequest) (*service.PlaceResult, error)
	Stats(ctx context.Context) (service.OrderStats, error)
	Summaries(ctx context.Context, p entities.Provider) ([]entities.OrderSummary, error)
	OrderByRef(ctx context.Context, ref entities.OrderRef) (entities.Order, error)
	DeleteOrder(ctx context.Context, ref entities.OrderRef) error
	Balance(ctx context.Context) (decimal.Decimal, error)
	Products(ctx context.Context, categoryID string) (json.RawMessage, error)
	ProductDetail(ctx context.Context, productID string) (json.RawMessage, error)
}

type HTTPHandler struct {
	logger   *slog.Logger
	validate *validator.Validate
	svc      OrderService
}

func NewHTTPHandler(logger *slog.Logger, svc OrderService) *HTTPHandler {
	return &HTTPHandler{
		logger:   logger.With(slog.String("handler", "http")),
		validate: validator.New(),
		svc:      svc,
	}
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/", h.Info)
		r.Post("/skyshop", h.CreateOrder)

		r.Route("/ops", func(r chi.Router) {
			r.Get("/stats", h.Stats)
			r.Get("/orders", h.Orders)
			r.Get("/orders/{provider}/{order_id}", h.OrderByID)
			r.Delete("/orders/{provider}/{order_id}", h.DeleteOrder)
			r.Get("/balance", h.Balance)
			r.Get("/products", h.Products)
			r.Get("/products/{product_id}", h.ProductDetail)
		})
	})
}

// Info возвращает сведения о сервисе.
// @Summary      Информация о сервисе
// @Tags         info
// @Success      200  {object}  InfoResponse
// @Router       /v1 [get]
func (h *HTTPHandler) Info(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, InfoResponse{
		Status:  "active",
		Name:    "Skyshop Service API",
		Ver:     "1.0.0",
		Message: "Main route",
		Docs:    "/swagger/index.html",
	}, http.StatusOK)
}

// CreateOrder создаёт заказ по витринному запросу.
// @Summary      Создать заказ
// @Description  Принимает витринный запрос, маршрутизирует его к провайдеру по коду сервиса и сохраняет заказ
// @Tags         orders
// @Param        request  body  SkyshopRequest  true  "Витринный запрос"
// @Success      200  {object}  utils.Response "Заказ создан"
// @Failure      400  {object}  utils.Response "Некорректный запрос"
// @Failure      422  {object}  utils.Response "Провайдер отклонил заказ"
// @Failure      502  {object}  utils.Response "Провайдер недоступен"
// @Router       /v1/skyshop [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		utils.WriteError(w, "request data", err.Error(), http.StatusInternalServerError)
		return
	}

	var req SkyshopRequest
	if err := json.Unmarshal(body, &req); err != nil {
		utils.WriteError(w, "request data", err.Error(), http.StatusInternalServerError)
		return
	}

	// технические запросы витрина шлёт с ключом test
	if req.Test != nil {
		utils.WriteSuccess(w, "testing request successfully", TestResponse{Test: req.Test})
		return
	}

	echo := json.RawMessage(body)
	if req.Input == "" || req.ZoneID == "" || req.Email == "" {
		utils.WriteError(w, "missing parameters", echo, http.StatusBadRequest)
		return
	}
	if len(req.Payment.Products) == 0 {
		utils.WriteError(w, "missing products", echo, http.StatusBadRequest)
		return
	}

	product := req.Payment.Products[0]
	if product.Name == "" || product.Quantity == 0 || product.Price.IsZero() {
		utils.WriteError(w, "missing product parameters", echo, http.StatusBadRequest)
		return
	}

	info := strings.Split(product.Name, "+")
	if len(info) < 3 {
		utils.WriteError(w, "missing product info", echo, http.StatusBadRequest)
		return
	}

	orderReq := entities.OrderRequest{
		ServiceCode: info[0],
		ProductCode: info[1],
		ProductName: info[2],
		UserID:      req.Input,
		ZoneID:      req.ZoneID,
		Email:       req.Email,
		Quantity:    product.Quantity,
		Price:       product.Price,
	}

	res, err := h.svc.PlaceOrder(ctx, orderReq)
	if errors.Is(err, entities.ErrUnknownService) {
		utils.WriteError(w, "Invalid service code", nil, http.StatusBadRequest)
		return
	}
	if errors.Is(err, entities.ErrProviderUnavailable) {
		h.logger.ErrorContext(ctx, "provider unavailable",
			slog.Any("error", err), slog.String("service", orderReq.ServiceCode))
		utils.WriteError(w, "provider unavailable", nil, http.StatusBadGateway)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to create order",
			slog.Any("error", err), slog.String("service", orderReq.ServiceCode))
		utils.WriteError(w, "create order", nil, http.StatusInternalServerError)
		return
	}
	if res.Rejected {
		ordersRejected.WithLabelValues(orderReq.ServiceCode).Inc()
		utils.WriteError(w, "order creation failed", json.RawMessage(res.Raw), http.StatusUnprocessableEntity)
		return
	}

	ordersCreated.WithLabelValues(orderReq.ServiceCode).Inc()
	utils.WriteSuccess(w, "order created", OrderCreatedResponse{
		OrderID:   res.Ref.OrderID,
		MessageID: res.Ref.MessageID,
	})
}

// Stats возвращает статистику по заказам.
// @Summary      Статистика заказов
// @Tags         ops
// @Success      200  {object}  utils.Response
// @Failure      500  {object}  utils.Response
// @Router       /v1/ops/stats [get]
func (h *HTTPHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.svc.Stats(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get stats", slog.Any("error", err))
		utils.WriteError(w, "internal server error", nil, http.StatusInternalServerError)
		return
	}

	providers := make(map[string]int, len(stats.ByProvider))
	for p, count := range stats.ByProvider {
		providers[string(p)] = count
	}
	utils.WriteSuccess(w, "orders statistics", StatsResponse{Total: stats.Total, Providers: providers})
}

// Orders возвращает краткий список заказов провайдера.
// @Summary      Список заказов провайдера
// @Tags         ops
// @Param        provider  query  string  true  "Код сервиса (VP, MG или JM)"
// @Success      200  {object}  utils.Response
// @Failure      400  {object}  utils.Response
// @Router       /v1/ops/orders [get]
func (h *HTTPHandler) Orders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	p, ok := entities.ProviderByCode(r.URL.Query().Get("provider"))
	if !ok {
		utils.WriteError(w, "Invalid service code", nil, http.StatusBadRequest)
		return
	}

	summaries, err := h.svc.Summaries(ctx, p)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get orders", slog.Any("error", err))
		utils.WriteError(w, "internal server error", nil, http.StatusInternalServerError)
		return
	}

	items := make([]OrderSummary, 0, len(summaries))
	for _, s := range summaries {
		items = append(items, OrderSummaryEntityToJSON(s))
	}
	utils.WriteSuccess(w, "orders list", items)
}

// OrderByID возвращает заказ по провайдерскому идентификатору.
// @Summary      Получить заказ
// @Tags         ops
// @Param        provider    path   string  true   "Код сервиса (VP, MG или JM)"
// @Param        order_id    path   string  true   "Идентификатор заказа у провайдера"
// @Param        message_id  query  string  false  "Идентификатор сообщения (только JollyMax)"
// @Success      200  {object}  utils.Response
// @Failure      404  {object}  utils.Response "Заказ не найден"
// @Router       /v1/ops/orders/{provider}/{order_id} [get]
func (h *HTTPHandler) OrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ref, ok := refFromRequest(r)
	if !ok {
		utils.WriteError(w, "Invalid service code", nil, http.StatusBadRequest)
		return
	}

	order, err := h.svc.OrderByRef(ctx, ref)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", nil, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get order",
			slog.Any("error", err), slog.String("order_id", ref.OrderID))
		utils.WriteError(w, "internal server error", nil, http.StatusInternalServerError)
		return
	}

	utils.WriteSuccess(w, "order found", OrderEntityToJSON(order))
}

// DeleteOrder удаляет заказ.
// @Summary      Удалить заказ
// @Tags         ops
// @Param        provider    path   string  true   "Код сервиса (VP, MG или JM)"
// @Param        order_id    path   string  true   "Идентификатор заказа у провайдера"
// @Param        message_id  query  string  false  "Идентификатор сообщения (только JollyMax)"
// @Success      200  {object}  utils.Response
// @Failure      404  {object}  utils.Response "Заказ не найден"
// @Router       /v1/ops/orders/{provider}/{order_id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	ref, ok := refFromRequest(r)
	if !ok {
		utils.WriteError(w, "Invalid service code", nil, http.StatusBadRequest)
		return
	}

	err := h.svc.DeleteOrder(ctx, ref)
	if errors.Is(err, entities.ErrOrderNotFound) {
		utils.WriteError(w, "order not found", nil, http.StatusNotFound)
		return
	}
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to delete order",
			slog.Any("error", err), slog.String("order_id", ref.OrderID))
		utils.WriteError(w, "internal server error", nil, http.StatusInternalServerError)
		return
	}

	utils.WriteSuccess(w, "order deleted", nil)
}

// Balance возвращает баланс мерчантского счёта JollyMax.
// @Summary      Баланс JollyMax
// @Tags         ops
// @Success      200  {object}  utils.Response
// @Failure      502  {object}  utils.Response "Провайдер недоступен"
// @Router       /v1/ops/balance [get]
func (h *HTTPHandler) Balance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	balance, err := h.svc.Balance(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get balance", slog.Any("error", err))
		utils.WriteError(w, "provider unavailable", nil, http.StatusBadGateway)
		return
	}

	utils.WriteSuccess(w, "balance received successfully", BalanceResponse{Balance: balance})
}

// Products возвращает каталог MooGold по категории.
// @Summary      Каталог продуктов
// @Tags         ops
// @Param        category_id  query  int  true  "Идентификатор категории"
// @Success      200  {object}  utils.Response
// @Failure      502  {object}  utils.Response "Провайдер недоступен"
// @Router       /v1/ops/products [get]
func (h *HTTPHandler) Products(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	categoryID := r.URL.Query().Get("category_id")
	if err := h.validate.Var(categoryID, "required,number"); err != nil {
		utils.WriteError(w, "invalid category id", nil, http.StatusBadRequest)
		return
	}

	products, err := h.svc.Products(ctx, categoryID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get products",
			slog.Any("error", err), slog.String("category_id", categoryID))
		utils.WriteError(w, "provider unavailable", nil, http.StatusBadGateway)
		return
	}

	utils.WriteSuccess(w, "list of products received successfully", products)
}

// ProductDetail возвращает карточку продукта MooGold.
// @Summary      Карточка продукта
// @Tags         ops
// @Param        product_id  path  int  true  "Идентификатор продукта"
// @Success      200  {object}  utils.Response
// @Failure      502  {object}  utils.Response "Провайдер недоступен"
// @Router       /v1/ops/products/{product_id} [get]
func (h *HTTPHandler) ProductDetail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	productID := chi.URLParam(r, "product_id")
	if err := h.validate.Var(productID, "required,number"); err != nil {
		utils.WriteError(w, "invalid product id", nil, http.StatusBadRequest)
		return
	}

	product, err := h.svc.ProductDetail(ctx, productID)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to get product",
			slog.Any("error", err), slog.String("product_id", productID))
		utils.WriteError(w, "provider unavailable", nil, http.StatusBadGateway)
		return
	}

	utils.WriteSuccess(w, "product received successfully", product)
}

func refFromRequest(r *http.Request) (entities.OrderRef, bool) {
	p, ok := entities.ProviderByCode(chi.URLParam(r, "provider"))
	if !ok {
		return entities.OrderRef{}, false
	}
	return entities.OrderRef{
		Provider:  p,
		OrderID:   chi.URLParam(r, "order_id"),
		MessageID: r.URL.Query().Get("message_id"),
	}, true
}
