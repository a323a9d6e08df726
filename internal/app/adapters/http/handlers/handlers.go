package handlers

import (
	"fmt"
	"github.com/gin-gonic/gin"
	"github.com/shirou/gopsutil/cpu"
	"net/http"
	"pitwall/internal/app/infrastructure/config"
	"pitwall/internal/app/ports"
	"pitwall/pkg/logger"
	"runtime"
	"time"
)

type Handlers struct {
	log     logger.Logger
	manager *config.Manager
	seen    ports.SeenPort

	startedAt time.Time
}

func New(log logger.Logger, manager *config.Manager, seen ports.SeenPort) *Handlers {
	return &Handlers{
		log:       log,
		manager:   manager,
		seen:      seen,
		startedAt: time.Now(),
	}
}

func (h *Handlers) StatusHandler(c *gin.Context) {
	cfg := h.manager.Get()

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	percent, _ := cpu.Percent(0, false)

	cpuLoad := 0.0
	if len(percent) > 0 {
		cpuLoad = percent[0]
	}

	c.JSON(http.StatusOK, gin.H{
		"uptime":        time.Since(h.startedAt).Truncate(time.Second).String(),
		"source_mode":   cfg.Source.Mode,
		"seen_messages": h.seen.Len(),
		"log_level":     h.log.GetLogLevel(),
		"cpu_percent":   fmt.Sprintf("%.2f", cpuLoad),
		"mem_mb":        m.Sys / 1024 / 1024,
	})
}
