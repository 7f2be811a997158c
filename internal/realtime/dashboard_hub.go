package realtime

import "sync"

// DashboardHub держит живые подписки дашборда по кодам предложений.
// Каждый Register обязан быть закрыт ровно одним Unregister.
type DashboardHub struct {
	mu       sync.RWMutex
	watchers map[string]map[*Conn]struct{}
}

func NewDashboardHub() *DashboardHub {
	return &DashboardHub{
		watchers: make(map[string]map[*Conn]struct{}),
	}
}

func (h *DashboardHub) Register(offeringCode string, conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.watchers[offeringCode] == nil {
		h.watchers[offeringCode] = make(map[*Conn]struct{})
	}
	h.watchers[offeringCode][conn] = struct{}{}
}

func (h *DashboardHub) Unregister(offeringCode string, conn *Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if conns, ok := h.watchers[offeringCode]; ok {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.watchers, offeringCode)
		}
	}
	_ = conn.Close()
}

// Broadcast доставляет полный свежий агрегат каждому подписчику предложения.
func (h *DashboardHub) Broadcast(offeringCode string, payload interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for conn := range h.watchers[offeringCode] {
		_ = conn.WriteJSON(payload)
	}
}

// Watchers — текущее число подписчиков предложения.
func (h *DashboardHub) Watchers(offeringCode string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.watchers[offeringCode])
}
