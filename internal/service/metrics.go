package service

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/Aquilabot/KreaPC-Builder/internal/compat"
)

const (
	sourceAdHoc = "adhoc"
	sourceBuild = "build"
)

var (
	// findingsTotal counts evaluated findings by rule and pass/fail status
	findingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kreapc",
		Subsystem: "compat",
		Name:      "findings_total",
		Help:      "Total compatibility findings by rule and status",
	}, []string{"rule", "status"})

	// reportsTotal counts compatibility reports served by source
	reportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "kreapc",
		Subsystem: "compat",
		Name:      "reports_total",
		Help:      "Total compatibility reports served by source",
	}, []string{"source"})
)

func init() {
	for _, rule := range compat.RuleNames() {
		findingsTotal.WithLabelValues(rule, "true")
		findingsTotal.WithLabelValues(rule, "false")
	}
}

func observeReport(source string, r compat.Report) {
	reportsTotal.WithLabelValues(source).Inc()
	for _, f := range r.Checks {
		findingsTotal.WithLabelValues(f.Name, strconv.FormatBool(f.Status)).Inc()
	}
}
