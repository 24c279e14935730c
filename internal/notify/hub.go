package notify

import (
	"encoding/json"
	"net/http"

	"freelance-market/utils"

	"github.com/gorilla/websocket"
)

// Event names pushed to subscribers
const (
	EventBidCreated       = "bid-created"
	EventBidStatusUpdated = "bid-status-updated"
)

// Publisher is the fan-out surface the bid service depends on. Delivery is
// fire-and-forget: a publish never blocks the caller and never reports
// failure back to it.
type Publisher interface {
	Publish(room, event string, payload any)
}

// Event is a named payload addressed to one room
type Event struct {
	Room    string
	Name    string
	Payload any
}

// envelope is the wire format written to subscribers
type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type joinRequest struct {
	client *Client
	room   string
}

// Hub owns the mapping from room id to the set of live connections. All maps
// are touched only by the run loop goroutine; the exported methods hand off
// through channels.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	joins      chan joinRequest
	events     chan Event

	rooms   map[string]map[*Client]struct{}
	members map[*Client]map[string]struct{} // rooms per client, for cleanup
}

// NewHub creates a hub and starts its run loop
func NewHub() *Hub {
	h := &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		joins:      make(chan joinRequest),
		events:     make(chan Event, 256),
		rooms:      make(map[string]map[*Client]struct{}),
		members:    make(map[*Client]map[string]struct{}),
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	for {
		select {
		case client := <-h.register:
			h.members[client] = make(map[string]struct{})

		case client := <-h.unregister:
			h.dropClient(client)

		case join := <-h.joins:
			h.joinRoom(join.client, join.room)

		case event := <-h.events:
			h.deliver(event)
		}
	}
}

// Publish queues an event for every connection currently joined to room.
// It drops the event when the hub is saturated rather than block the caller.
func (h *Hub) Publish(room, event string, payload any) {
	select {
	case h.events <- Event{Room: room, Name: event, Payload: payload}:
	default:
		utils.Warn("notification dropped, hub saturated", map[string]any{
			"room":  room,
			"event": event,
		})
	}
}

func (h *Hub) joinRoom(client *Client, room string) {
	if room == "" {
		return
	}
	if _, ok := h.members[client]; !ok {
		return // already unregistered
	}

	if h.rooms[room] == nil {
		h.rooms[room] = make(map[*Client]struct{})
	}
	h.rooms[room][client] = struct{}{}
	h.members[client][room] = struct{}{}

	utils.Info("subscriber joined room", map[string]any{"room": room})
}

func (h *Hub) dropClient(client *Client) {
	rooms, ok := h.members[client]
	if !ok {
		return
	}

	for room := range rooms {
		delete(h.rooms[room], client)
		if len(h.rooms[room]) == 0 {
			delete(h.rooms, room)
		}
	}
	delete(h.members, client)
	close(client.send)
}

func (h *Hub) deliver(event Event) {
	subscribers := h.rooms[event.Room]
	if len(subscribers) == 0 {
		return // nobody listening, nothing owed
	}

	message, err := json.Marshal(envelope{Event: event.Name, Data: event.Payload})
	if err != nil {
		utils.Error("failed to encode notification", map[string]any{
			"event": event.Name,
			"error": err.Error(),
		})
		return
	}

	for client := range subscribers {
		select {
		case client.send <- message:
		default:
			// Slow consumer: drop it rather than stall every room it is in.
			h.dropClient(client)
		}
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Cookie-based auth already gates the API; the socket carries no
		// state-changing operations.
		return true
	},
}

// HandleConnection upgrades an HTTP request to a websocket subscription
func (h *Hub) HandleConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		utils.Warn("websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		send: make(chan []byte, 64),
	}
	h.register <- client

	go client.writePump()
	go client.readPump()
}
