// Package liveserver exposes a Sheet over HTTP and WebSocket, broadcasting
// the full cell set to every connected client after each mutating request.
// It is ambient infrastructure around the core sheet package, not part of
// its API contract: the core stays single-threaded and synchronous, and
// this package is the thing that serializes remote access to it.
package liveserver

import (
	"encoding/json"
	"log"
	"net/http"
	"sort"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/kalexmills/cellsheet/internal/sheet"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Server guards one Sheet with a single mutex and fans out its state over
// WebSocket to every connected client. sheetMu serializes every read or
// mutation of Sheet across connection goroutines; clientsMu guards the
// client set separately so a broadcast never has to hold sheetMu while
// writing to a socket.
type Server struct {
	Sheet *sheet.Sheet

	sheetMu   sync.Mutex
	clientsMu sync.Mutex
	clients   map[*websocket.Conn]bool
}

// New wraps sheet for remote access. Passing a freshly-created sheet.New()
// is the common case.
func New(s *sheet.Sheet) *Server {
	return &Server{
		Sheet:   s,
		clients: make(map[*websocket.Conn]bool),
	}
}

// request is the shape of a client -> server WebSocket message.
type request struct {
	Type string `json:"type"`
	Pos  string `json:"pos,omitempty"`
	Raw  string `json:"raw,omitempty"`
}

// response is the shape of a server -> client WebSocket message.
type response struct {
	Type  string `json:"type"`
	Pos   string `json:"pos,omitempty"`
	Value string `json:"value,omitempty"`
}

// HandleWebSocket upgrades the connection and services it until the client
// disconnects or a read fails.
func (s *Server) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("upgrade error:", err)
		return
	}

	s.sheetMu.Lock()
	snapshot := s.snapshotLocked()
	s.sheetMu.Unlock()
	sendSnapshot(conn, snapshot)

	s.clientsMu.Lock()
	s.clients[conn] = true
	s.clientsMu.Unlock()

	defer func() {
		s.clientsMu.Lock()
		delete(s.clients, conn)
		s.clientsMu.Unlock()
		conn.Close()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var req request
		if err := json.Unmarshal(msg, &req); err != nil {
			log.Println("bad request:", err)
			continue
		}
		s.handle(req)
	}
}

func (s *Server) handle(req request) {
	s.sheetMu.Lock()
	switch req.Type {
	case "set_cell":
		if !s.Sheet.SetCell(req.Pos, req.Raw) {
			log.Printf("set cell %s failed: invalid position or formula", req.Pos)
		}
	case "clear":
		s.Sheet.Clear()
	}
	snapshot := s.snapshotLocked()
	s.sheetMu.Unlock()

	s.broadcastAll(snapshot)
}

// cellSnapshot is a point-in-time (position, rendered value) pair taken
// under sheetMu, so broadcasting never has to hold that lock while writing
// to sockets.
type cellSnapshot struct {
	pos string
	val string
}

// snapshotLocked reads every live cell's current value in sorted position
// order. Callers must hold sheetMu.
func (s *Server) snapshotLocked() []cellSnapshot {
	positions := s.Sheet.Positions()
	sort.Strings(positions)
	out := make([]cellSnapshot, 0, len(positions))
	for _, pos := range positions {
		out = append(out, cellSnapshot{pos: pos, val: renderValue(s.Sheet.GetValue(pos))})
	}
	return out
}

// broadcastAll pushes a reset marker followed by every cell in snapshot to
// every connected client, dropping clients whose connection has gone bad.
func (s *Server) broadcastAll(snapshot []cellSnapshot) {
	s.broadcast(response{Type: "reset"})
	for _, c := range snapshot {
		s.broadcast(response{Type: "update", Pos: c.pos, Value: c.val})
	}
}

// sendSnapshot writes a reset marker followed by every cell in snapshot
// directly to conn, ahead of that connection joining the broadcast set.
func sendSnapshot(conn *websocket.Conn, snapshot []cellSnapshot) {
	if err := conn.WriteJSON(response{Type: "reset"}); err != nil {
		return
	}
	for _, c := range snapshot {
		if err := conn.WriteJSON(response{Type: "update", Pos: c.pos, Value: c.val}); err != nil {
			return
		}
	}
}

func (s *Server) broadcast(resp response) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	for client := range s.clients {
		if err := client.WriteJSON(resp); err != nil {
			log.Printf("broadcast write failed: %v", err)
			client.Close()
			delete(s.clients, client)
		}
	}
}
