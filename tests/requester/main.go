package main

import (
	"fmt"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"
)

const baseURL = "http://localhost:8080/v1/skyshop"

var bodies = []string{
	`{"Input":"123456789","Zone_ID":"1234","Email":"user@example.com","payment":{"products":[{"name":"VP+430+Diamonds","quantity":1,"price":100}]}}`,
	`{"Input":"987654321","Zone_ID":"4321","Email":"user@example.com","payment":{"products":[{"name":"MG+4233885+Diamonds","quantity":1,"price":250}]}}`,
	`{"Input":"555555555","Zone_ID":"5555","Email":"user@example.com","payment":{"products":[{"name":"JM+mlbb_86+Diamonds","quantity":1,"price":86}]}}`,
	`{"test":{"ping":1}}`,
}

func main() {
	for {
		var wg sync.WaitGroup
		for range rand.Intn(10) {
			wg.Go(doRequest)
		}
		wg.Wait()
		time.Sleep(20 * time.Millisecond)
	}
}

func doRequest() {
	body := bodies[rand.Intn(len(bodies))]
	// изредка шлём неизвестный код сервиса
	if rand.Intn(5) == 0 {
		body = strings.Replace(bodies[0], "VP+", "XX+", 1)
	}

	resp, err := http.Post(baseURL, "application/json", strings.NewReader(body))
	if err != nil {
		fmt.Println("Ошибка запроса:", err)
	} else {
		fmt.Println("POST", baseURL, "->", resp.Status)
		resp.Body.Close()
	}
}
