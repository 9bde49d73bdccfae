package tracking

import (
	"log"
	"net/http"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/shopmix/catalog/pkg/common"
	"github.com/shopmix/catalog/pkg/messaging"
	"github.com/shopmix/catalog/pkg/types"
)

const trackingTopic = "tracking"
const trackingPrefix = "catalog"

type RabbitTracking struct {
	country    string
	connection *amqp.Connection
	queue      *common.QueueHandler[any]
}

func NewRabbitTracking(url, country string) (*RabbitTracking, error) {
	ret := RabbitTracking{country: country}
	if err := ret.connect(url); err != nil {
		return nil, err
	}
	ret.queue = common.NewQueueHandler(ret.sendBatch, 32)
	return &ret, nil
}

func (t *RabbitTracking) connect(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	t.connection = conn
	ch, err := conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()
	return messaging.DefineTopic(ch, trackingPrefix, trackingTopic)
}

func (t *RabbitTracking) Close() error {
	return t.connection.Close()
}

func (t *RabbitTracking) sendBatch(events []any) {
	for _, event := range events {
		if err := messaging.Publish(t.connection, trackingPrefix, trackingTopic, event); err != nil {
			log.Printf("Error sending tracking event: %v", err)
		}
	}
}

type BaseEvent struct {
	SessionId string `json:"session_id"`
	Country   string `json:"country,omitempty"`
	Event     uint16 `json:"event"`
}

type SessionEvent struct {
	*BaseEvent
	UserAgent string `json:"user_agent,omitempty"`
	Ip        string `json:"ip,omitempty"`
	Language  string `json:"language,omitempty"`
}

func (t *RabbitTracking) TrackSession(sessionId string, r *http.Request) {
	ip := r.Header.Get("X-Real-Ip")
	if ip == "" {
		ip = r.Header.Get("X-Forwarded-For")
	}
	if ip == "" {
		ip = r.RemoteAddr
	}
	t.queue.Add(SessionEvent{
		BaseEvent: &BaseEvent{Event: 0, SessionId: sessionId, Country: t.country},
		Language:  r.Header.Get("Accept-Language"),
		UserAgent: r.UserAgent(),
		Ip:        ip,
	})
}

type SearchEvent struct {
	*BaseEvent
	Query           string   `json:"query,omitempty"`
	Brands          []string `json:"brands,omitempty"`
	Category        string   `json:"category,omitempty"`
	Sizes           []string `json:"sizes,omitempty"`
	Colors          []string `json:"colors,omitempty"`
	Sort            string   `json:"sort,omitempty"`
	Page            int      `json:"page"`
	NumberOfResults int      `json:"noi"`
	Referer         string   `json:"referer,omitempty"`
}

func (t *RabbitTracking) TrackSearch(sessionId string, state types.FilterState, resultCount int, r *http.Request) {
	t.queue.Add(SearchEvent{
		BaseEvent:       &BaseEvent{Event: 1, SessionId: sessionId, Country: t.country},
		Query:           state.Query,
		Brands:          state.Brands,
		Category:        state.Category,
		Sizes:           state.Sizes,
		Colors:          state.Colors,
		Sort:            state.Sort,
		Page:            state.Page,
		NumberOfResults: resultCount,
		Referer:         r.Header.Get("Referer"),
	})
}

type ClickThroughEvent struct {
	*BaseEvent
	Item      uint   `json:"item"`
	SourceUrl string `json:"source_url,omitempty"`
}

func (t *RabbitTracking) TrackClickThrough(sessionId string, productId uint, sourceUrl string) {
	t.queue.Add(ClickThroughEvent{
		BaseEvent: &BaseEvent{Event: 2, SessionId: sessionId, Country: t.country},
		Item:      productId,
		SourceUrl: sourceUrl,
	})
}
