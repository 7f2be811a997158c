package realtime

import (
	"encoding/json"
	"io"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pipeConn возвращает серверный Conn и клиентский конец трубы.
func pipeConn() (*Conn, net.Conn) {
	server, client := net.Pipe()
	return &Conn{conn: server}, client
}

// readTextFrame разбирает один короткий текстовый фрейм (длина < 126).
func readTextFrame(r io.Reader) ([]byte, error) {
	header := make([]byte, 2)
	if _, err := io.ReadFull(r, header); err != nil {
		return nil, err
	}
	if header[0] != 0x81 {
		return nil, io.ErrUnexpectedEOF
	}
	payload := make([]byte, int(header[1]&0x7F))
	if _, err := io.ReadFull(r, payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func TestHubRegisterUnregister(t *testing.T) {
	hub := NewDashboardHub()
	conn, client := pipeConn()
	defer client.Close()

	hub.Register("spacex", conn)
	assert.Equal(t, 1, hub.Watchers("spacex"))
	assert.Equal(t, 0, hub.Watchers("other"))

	go io.Copy(io.Discard, client) // дочитываем close-фрейм
	hub.Unregister("spacex", conn)
	assert.Equal(t, 0, hub.Watchers("spacex"))
}

func TestHubBroadcastDeliversPayload(t *testing.T) {
	hub := NewDashboardHub()
	conn, client := pipeConn()
	defer client.Close()

	hub.Register("spacex", conn)
	defer func() {
		go io.Copy(io.Discard, client)
		hub.Unregister("spacex", conn)
	}()

	type payload struct {
		LeadCount int `json:"lead_count"`
	}

	raws := make(chan []byte, 1)
	go func() {
		raw, err := readTextFrame(client)
		if err != nil {
			raw = nil
		}
		raws <- raw
	}()

	hub.Broadcast("spacex", payload{LeadCount: 7})
	raw := <-raws
	require.NotNil(t, raw)

	var got payload
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, 7, got.LeadCount)
}

func TestHubBroadcastIgnoresOtherOfferings(t *testing.T) {
	hub := NewDashboardHub()
	conn, client := pipeConn()
	defer client.Close()

	hub.Register("spacex", conn)

	// нет подписчиков этого предложения — пишущих нет, пайп не трогается
	hub.Broadcast("bond", map[string]int{"lead_count": 1})

	go io.Copy(io.Discard, client)
	hub.Unregister("spacex", conn)
	assert.Equal(t, 0, hub.Watchers("spacex"))
}
