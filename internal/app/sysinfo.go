package app

import (
	"fmt"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

const (
	sysinfoInterval = 500 * time.Millisecond
	cpuGraphWidth   = 10
)

var cpuBars = []rune("▁▂▃▄▅▆▇█")

// updateSysinfo samples CPU and RAM usage for the status bar. Sampling
// is rate limited so the idle tick does not hammer /proc.
func (d *Desktop) updateSysinfo() {
	now := time.Now()
	if now.Sub(d.lastSysinfo) < sysinfoInterval {
		return
	}
	d.lastSysinfo = now

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		if len(d.cpuHistory) >= cpuGraphWidth {
			d.cpuHistory = d.cpuHistory[1:]
		}
		d.cpuHistory = append(d.cpuHistory, percents[0])
	}

	if vm, err := mem.VirtualMemory(); err == nil {
		d.ramPercent = vm.UsedPercent
	}
}

// sysinfoLine returns a fixed-width CPU graph plus RAM percentage so
// the status bar never shifts as values change.
func (d *Desktop) sysinfoLine() string {
	current := 0.0
	if len(d.cpuHistory) > 0 {
		current = d.cpuHistory[len(d.cpuHistory)-1]
	}

	var graph strings.Builder
	if pad := cpuGraphWidth - len(d.cpuHistory); pad > 0 {
		graph.WriteString(strings.Repeat(" ", pad))
	}
	for i, usage := range d.cpuHistory {
		if i >= cpuGraphWidth {
			break
		}
		// 100/8 = 12.5 per bar step
		height := min(int(usage/12.5), len(cpuBars)-1)
		graph.WriteRune(cpuBars[height])
	}

	return fmt.Sprintf("CPU:%s %3.0f%% RAM:%3.0f%%", graph.String(), current, d.ramPercent)
}
