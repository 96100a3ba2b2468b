package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics definitions
var (
	ParseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "docuscan_parse_seconds",
		Help:    "Time spent scanning a source file.",
		Buckets: prometheus.DefBuckets,
	}, []string{"language"})

	FilesDocumented = promauto.NewCounter(prometheus.CounterOpts{
		Name: "docuscan_files_documented_total",
		Help: "Total number of source files scanned into a module document.",
	})

	LinesSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "docuscan_lines_skipped_total",
		Help: "Total number of significant lines no header reader recognized.",
	})

	DocumentsWritten = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "docuscan_documents_written_total",
		Help: "Total number of rendered documentation files written.",
	}, []string{"format"})

	WatcherEventsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "docuscan_watcher_events_total",
		Help: "Total number of file system events received by the watcher.",
	})

	RunDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "docuscan_run_seconds",
		Help:    "Time spent on a full documentation run.",
		Buckets: prometheus.DefBuckets,
	})
)
