// Package stats submits usage statistics to InfluxDB.
package stats

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"reflect"
	"runtime"
	"sync"
	"syscall"
	"time"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"go.uber.org/zap"
)

// Client is an InfluxDB client. All methods are safe to call on a nil
// receiver, so callers never need to check whether metrics are enabled.
type Client struct {
	writer api.WriteAPI
	sugar  *zap.SugaredLogger

	mu       sync.Mutex
	queries  uint32
	commands uint32
	events   map[string]uint32

	// GuildCount is polled on every submit when set.
	GuildCount func() int
}

// New creates a new client and starts its submit loop.
func New(url, token, org, database string, sugar *zap.SugaredLogger) *Client {
	c := &Client{
		sugar:  sugar,
		events: make(map[string]uint32),
	}

	c.writer = influxdb2.NewClientWithOptions(url, token,
		influxdb2.DefaultOptions().SetBatchSize(20)).WriteAPI(org, database)

	go c.submit()

	return c
}

// HandleEvent counts a gateway event by its type name. It matches arikawa's
// catch-all handler signature, so it can be registered directly.
func (c *Client) HandleEvent(ev interface{}) {
	if c == nil {
		return
	}

	c.mu.Lock()
	c.events[reflect.ValueOf(ev).Elem().Type().Name()]++
	c.mu.Unlock()
}

// IncQuery increments the database query count by one.
func (c *Client) IncQuery() {
	if c == nil {
		return
	}

	c.mu.Lock()
	c.queries++
	c.mu.Unlock()
}

// IncCommand increments the command count by one.
func (c *Client) IncCommand() {
	if c == nil {
		return
	}

	c.mu.Lock()
	c.commands++
	c.mu.Unlock()
}

func (c *Client) submit() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	defer stop()

	ticker := time.NewTicker(time.Minute)

	for {
		select {
		case <-ticker.C:
			go c.submitInner()
		case <-ctx.Done():
			ticker.Stop()
			c.writer.Flush()
			return
		}
	}
}

func (c *Client) submitInner() {
	c.sugar.Debugf("Submitting metrics to InfluxDB")

	c.mu.Lock()
	queries := c.queries
	commands := c.commands
	c.queries = 0
	c.commands = 0

	var totalEvents uint32
	eventData := make(map[string]interface{}, len(c.events))
	for name, count := range c.events {
		totalEvents += count
		eventData[name] = count
		c.events[name] = 0
	}
	c.mu.Unlock()

	c.writer.WritePoint(influxdb2.NewPoint("events", nil, eventData, time.Now()))

	stats := runtime.MemStats{}
	runtime.ReadMemStats(&stats)

	data := map[string]interface{}{
		"queries":     queries,
		"commands":    commands,
		"events":      totalEvents,
		"alloc":       stats.Alloc,
		"sys":         stats.Sys,
		"total_alloc": stats.TotalAlloc,
		"goroutines":  runtime.NumGoroutine(),
	}

	if c.GuildCount != nil {
		data["guilds"] = c.GuildCount()
	}

	sysMem, err := mem.VirtualMemory()
	if err != nil {
		c.sugar.Errorf("Error getting system memory: %v", err)
	} else {
		data["total_sys"] = sysMem.Used
		data["total_sys_percent"] = sysMem.UsedPercent
	}

	cpuData, err := cpu.Percent(time.Minute, true)
	if err != nil {
		c.sugar.Errorf("Error getting cpu info: %v", err)
	} else {
		for i, d := range cpuData {
			data[fmt.Sprintf("cpu_%d", i)] = d
		}
	}

	c.writer.WritePoint(influxdb2.NewPoint("statistics", nil, data, time.Now()))
}
