package models

import "time"

// Invoice is the one-time financial record derived from a booking.
// BookingID carries a unique index: the single-invoice-per-booking rule is
// enforced by storage, not only by the pre-check in the issuing use case.
type Invoice struct {
	ID uint `gorm:"primaryKey" json:"id"`

	InvoiceNumber string `gorm:"size:30;uniqueIndex;not null" json:"invoice_number"`

	BookingID uint    `gorm:"uniqueIndex;not null" json:"booking_id"`
	Booking   Booking `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"-"`

	CustomerID uint     `gorm:"not null;index" json:"customer_id"`
	Customer   Customer `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"customer"`

	Subtotal    float64 `json:"subtotal"`
	TaxAmount   float64 `json:"tax_amount"`
	TotalAmount float64 `json:"total_amount"`

	Status string `gorm:"size:20;default:'PENDING'" json:"status"`

	IssuedAt time.Time  `json:"issued_at"`
	PaidAt   *time.Time `json:"paid_at"`

	Items []InvoiceLineItem `gorm:"foreignKey:InvoiceID" json:"items"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type InvoiceLineItem struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	InvoiceID uint `gorm:"not null;index" json:"invoice_id"`

	Description string  `gorm:"size:100;not null" json:"description"`
	Quantity    int     `gorm:"not null" json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

// InvoiceCounter holds one row per billing month; the sequence is bumped
// atomically inside the invoice-issuing transaction.
type InvoiceCounter struct {
	YearMonth string `gorm:"size:6;primaryKey"`
	Seq       int64  `gorm:"not null;default:0"`
}
