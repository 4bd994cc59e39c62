package notify

import (
	"fmt"
	"log"
	"time"
)

// Message is a fire-and-forget customer notification. Delivery is stubbed:
// the worker logs what an SMS/WhatsApp gateway would send.
type Message struct {
	CustomerID uint
	BookingID  uint
	Body       string
}

type Dispatcher struct {
	queue chan Message
}

func NewDispatcher() *Dispatcher {
	d := &Dispatcher{
		queue: make(chan Message, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		log.Printf(
			"notify: customer=%d booking=%d %s",
			msg.CustomerID, msg.BookingID, msg.Body,
		)
	}
}

func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		// queue full, drop rather than block a request
		log.Println("notify queue full, dropping message")
	}
}

func (d *Dispatcher) BookingConfirmed(customerID, bookingID uint, start time.Time) {
	d.Dispatch(Message{
		CustomerID: customerID,
		BookingID:  bookingID,
		Body:       fmt.Sprintf("booking confirmed for %s", start.Format("2006-01-02 15:04")),
	})
}

func (d *Dispatcher) BookingCancelled(customerID, bookingID uint) {
	d.Dispatch(Message{
		CustomerID: customerID,
		BookingID:  bookingID,
		Body:       "booking cancelled",
	})
}
