//go:build !tinygo

package touch

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"sync"

	"go.bug.st/serial"
)

const (
	// DefaultBaudRate is the baud rate of the touch bridge firmware.
	DefaultBaudRate = 115200
	// DefaultBufferSize is the default size for the reports channel buffer.
	DefaultBufferSize = 32
)

// ErrInvalidLine is returned for a malformed bridge line.
var ErrInvalidLine = errors.New("invalid touch line")

// Ensure Serial implements Device.
var _ Device = (*Serial)(nil)

// Port represents a serial port.
type Port struct {
	Name        string
	Description string
}

// Serial is a touch controller bridged over a serial port: a board streams
// one line per controller reading, "x,y,gesture,pressed", e.g. "120,200,1,1".
// An empty x/y pair ("-,-,0,0") means no point.
type Serial struct {
	port     string
	baudRate int

	conn      serial.Port
	reports   chan Report
	mu        sync.RWMutex
	ctx       context.Context
	cancel    context.CancelFunc
	connected bool

	current Report
}

// NewSerial creates a bridge for the given port.
func NewSerial(port string, baudRate int) *Serial {
	if baudRate == 0 {
		baudRate = DefaultBaudRate
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Serial{
		port:     port,
		baudRate: baudRate,
		reports:  make(chan Report, DefaultBufferSize),
		ctx:      ctx,
		cancel:   cancel,
	}
}

// Ports returns a list of available serial ports.
func Ports() ([]Port, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to list serial ports: %w", err)
	}

	result := make([]Port, 0, len(ports))
	for _, name := range ports {
		result = append(result, Port{Name: name, Description: name})
	}
	return result, nil
}

// Connect opens the serial port and starts reading reports.
func (d *Serial) Connect() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.connected {
		return fmt.Errorf("already connected")
	}

	port, err := serial.Open(d.port, &serial.Mode{BaudRate: d.baudRate})
	if err != nil {
		return fmt.Errorf("failed to open serial port %s: %w", d.port, err)
	}

	d.conn = port
	d.connected = true

	go d.readReports(port)

	return nil
}

// Close closes the port and stops reading.
func (d *Serial) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.connected {
		return nil
	}

	d.cancel()

	if d.conn != nil {
		if err := d.conn.Close(); err != nil {
			log.Printf("Error closing serial port: %v", err)
		}
		d.conn = nil
	}

	d.connected = false
	return nil
}

// IsConnected returns whether the port is open.
func (d *Serial) IsConnected() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.connected
}

// Refresh latches the most recent report received since the last tick.
// Without a new report the controller is considered released.
func (d *Serial) Refresh() {
	latest := Report{}
	for {
		select {
		case r := <-d.reports:
			latest = r
			continue
		default:
		}
		break
	}

	d.mu.Lock()
	d.current = latest
	d.mu.Unlock()
}

// DetectPresence reports whether the bridge is connected.
func (d *Serial) DetectPresence() bool {
	return d.IsConnected()
}

func (d *Serial) Point() (Point, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current.Point, d.current.HasPoint
}

func (d *Serial) Gesture() Gesture {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current.Gesture
}

func (d *Serial) Pressed() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.current.Pressed
}

// readReports reads lines from r until EOF or Close.
func (d *Serial) readReports(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for {
		select {
		case <-d.ctx.Done():
			return
		default:
		}

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil && d.ctx.Err() == nil {
				log.Printf("Error reading from serial port: %v", err)
			}
			return
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		report, err := parseLine(line)
		if err != nil {
			log.Printf("Failed to parse line '%s': %v", line, err)
			continue
		}

		select {
		case d.reports <- report:
		case <-d.ctx.Done():
			return
		default:
			log.Printf("Touch channel full, dropping report")
		}
	}
}

// parseLine parses a bridge line into a Report.
// Format: x,y,gesture,pressed
func parseLine(line string) (Report, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 4 {
		return Report{}, fmt.Errorf("%w: expected 4 comma-separated values, got %d", ErrInvalidLine, len(parts))
	}

	var rep Report
	if parts[0] != "-" || parts[1] != "-" {
		x, err := strconv.Atoi(parts[0])
		if err != nil {
			return Report{}, fmt.Errorf("%w: x: %w", ErrInvalidLine, err)
		}
		y, err := strconv.Atoi(parts[1])
		if err != nil {
			return Report{}, fmt.Errorf("%w: y: %w", ErrInvalidLine, err)
		}
		rep.Point = Point{X: x, Y: y}
		rep.HasPoint = true
	}

	g, err := strconv.ParseUint(parts[2], 10, 8)
	if err != nil {
		return Report{}, fmt.Errorf("%w: gesture: %w", ErrInvalidLine, err)
	}
	rep.Gesture = Gesture(g)

	switch parts[3] {
	case "1":
		rep.Pressed = true
	case "0":
	default:
		return Report{}, fmt.Errorf("%w: pressed must be 0 or 1, got %q", ErrInvalidLine, parts[3])
	}

	return rep, nil
}
