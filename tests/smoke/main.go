// Manual smoke client: creates an order, adds a couple of items and
// fetches the total against a locally running service.
package main

import (
	"bytes"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const baseURL = "http://localhost:8080"

func main() {
	customerID := uuidV4()

	order := post("/orders", map[string]any{
		"customer_id": customerID,
		"currency":    "USD",
	})
	orderID := order["order_id"].(string)
	fmt.Println("created order", orderID)

	post("/orders/"+orderID+"/items", map[string]any{
		"sku":        "LAPTOP-15",
		"unit_price": 999.99,
		"currency":   "USD",
		"quantity":   2,
	})
	post("/orders/"+orderID+"/items", map[string]any{
		"sku":        "MOUSE-USB",
		"unit_price": 25.50,
		"currency":   "USD",
		"quantity":   1,
	})

	resp, err := http.Get(baseURL + "/orders/" + orderID + "/total")
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	fmt.Println("total:", string(body))
}

func post(path string, payload map[string]any) map[string]any {
	data, err := json.Marshal(payload)
	if err != nil {
		panic(err)
	}

	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader(data))
	if err != nil {
		panic(err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	fmt.Println("POST", path, "->", resp.Status, string(body))

	var result map[string]any
	json.Unmarshal(body, &result)
	return result
}

func uuidV4() string {
	b := make([]byte, 16)
	rand.Read(b)
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
