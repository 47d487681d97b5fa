package notify

import (
	"log"

	"gorm.io/gorm"

	"github.com/GreenvaleServices/landscape-platform/internal/models"
)

// Sink persists one notification. Separated from the dispatcher so tests
// can observe deliveries without a database.
type Sink interface {
	Deliver(ev Event) error
}

type Event struct {
	RecipientID   uint
	RecipientRole string
	Kind          string
	Message       string
}

// GormSink writes notification rows.
type GormSink struct {
	db *gorm.DB
}

func NewGormSink(db *gorm.DB) *GormSink {
	return &GormSink{db: db}
}

func (s *GormSink) Deliver(ev Event) error {
	n := models.Notification{
		RecipientID:   ev.RecipientID,
		RecipientRole: ev.RecipientRole,
		Kind:          ev.Kind,
		Message:       ev.Message,
	}
	return s.db.Create(&n).Error
}

// Dispatcher delivers notifications off the request path. Delivery is
// best effort: a failed or dropped notification never fails the
// operation that produced it.
type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Deliver(ev); err != nil {
			log.Println("notify error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("notify queue full, dropping event")
	}
}
