package logging

import (
	"fmt"
	"net"
	"time"

	"github.com/sirupsen/logrus"
)

type LogstashConfig struct {
	Host string
	Port int
}

// LogstashHook ships every entry as one JSON datagram.
type LogstashHook struct {
	conn *net.UDPConn
	addr *net.UDPAddr
}

func NewLogstashClient(config LogstashConfig) (*net.UDPConn, error) {
	addr, err := net.ResolveUDPAddr("udp", fmt.Sprintf("%s:%d", config.Host, config.Port))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve UDP address: %w", err)
	}

	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("failed to dial UDP: %w", err)
	}

	return conn, nil
}

func NewLogstashHook(conn *net.UDPConn, addr *net.UDPAddr) *LogstashHook {
	return &LogstashHook{
		conn: conn,
		addr: addr,
	}
}

func (h *LogstashHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *LogstashHook) Fire(entry *logrus.Entry) error {
	data, err := document(entry, "@timestamp", entry.Time.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to encode log entry: %w", err)
	}

	// A lost datagram must not fail the log call.
	if _, err := h.conn.Write(data); err != nil {
		fmt.Printf("Failed to send log via UDP to %s: %v\n", h.addr, err)
	}

	return nil
}
