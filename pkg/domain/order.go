package domain

import "time"

// WorkOrderStatus is the state of a work order.
type WorkOrderStatus string

const (
	WorkOrderOpen      WorkOrderStatus = "Open"
	WorkOrderCompleted WorkOrderStatus = "Completed"
)

// Order is a sales order.
type Order struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	Product   string    `json:"product"`
	Qty       int       `json:"qty"`
	Due       string    `json:"due"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderInput is the payload for creating a sales order.
type OrderInput struct {
	Customer string `json:"customer"`
	Product  string `json:"product"`
	Qty      int    `json:"qty"`
	Due      string `json:"due"`
}

// WorkOrder is a production order created from a sales order.
type WorkOrder struct {
	ID        string          `json:"id"`
	Ref       string          `json:"ref"`
	Customer  string          `json:"customer"`
	Product   string          `json:"product"`
	Qty       int             `json:"qty"`
	Due       string          `json:"due"`
	Status    WorkOrderStatus `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
}
