package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"os/signal"
	"syscall"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type OrderMessage struct {
	ServiceCode string          `json:"service_code"`
	ProductCode string          `json:"product_code"`
	ProductName string          `json:"product_name"`
	UserID      string          `json:"user_id"`
	ZoneID      string          `json:"zone_id"`
	Email       string          `json:"email"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

var services = []struct {
	code     string
	products []string
}{
	{code: "VP", products: []string{"430", "880", "1765"}},
	{code: "MG", products: []string{"4233885", "4233886"}},
	{code: "JM", products: []string{"mlbb_86", "mlbb_172"}},
}

func generateRandomOrder() OrderMessage {
	svc := services[rand.Intn(len(services))]
	return OrderMessage{
		ServiceCode: svc.code,
		ProductCode: svc.products[rand.Intn(len(svc.products))],
		ProductName: "Diamonds",
		UserID:      fmt.Sprintf("%d", rand.Intn(999999999)),
		ZoneID:      fmt.Sprintf("%d", rand.Intn(9999)),
		Email:       fmt.Sprintf("user%d@example.com", rand.Intn(1000)),
		Quantity:    1,
		Price:       decimal.NewFromInt(int64(rand.Intn(5000) + 100)),
	}
}

func main() {
	addr := kafka.TCP("localhost:9092")

	writer := &kafka.Writer{
		Addr:  addr,
		Topic: "skyshop-orders",
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(2 * time.Second)
	for {
		select {
		case <-ticker.C:
			order := generateRandomOrder()
			data, _ := json.Marshal(order)
			writer.WriteMessages(context.Background(), kafka.Message{Value: data})
			log.Println("order generated", order.ServiceCode, order.UserID)
		case <-ctx.Done():
			return
		}
	}
}
