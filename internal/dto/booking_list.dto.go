package dto

import "time"

type BookingListDTO struct {
	ID           uint      `json:"id"`
	Date         time.Time `json:"date"`
	StartTime    time.Time `json:"start_time"`
	EndTime      time.Time `json:"end_time"`
	Status       string    `json:"status"`
	ServiceName  string    `json:"service_name"`
	StaffName    string    `json:"staff_name"`
	CustomerName string    `json:"customer_name"`
}
