package union

import (
	"sync"

	"github.com/buildbarn/bb-storage/pkg/clock"
	"github.com/buildbarn/bb-storage/pkg/util"
	"github.com/prometheus/client_golang/prometheus"

	"google.golang.org/grpc/status"
)

var (
	pathResolverPrometheusMetrics sync.Once

	pathResolverResolutionsDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "buildbarn",
			Subsystem: "unionfs",
			Name:      "path_resolver_resolutions_duration_seconds",
			Help:      "Amount of time spent per path resolution, in seconds.",
			Buckets:   util.DecimalExponentialBuckets(-3, 6, 2),
		},
		[]string{"outcome"})
	pathResolverCopyUpsCompleted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "buildbarn",
			Subsystem: "unionfs",
			Name:      "path_resolver_copy_ups_completed_total",
			Help:      "Number of resolutions that promoted a path to the read-write branch.",
		})
)

type metricsPathResolver struct {
	base  PathResolver
	clock clock.Clock
}

// NewMetricsPathResolver creates a decorator for PathResolver that
// exposes Prometheus metrics on the number and duration of
// resolutions, partitioned by the branch that served them or the
// status code with which they failed.
func NewMetricsPathResolver(base PathResolver, clock clock.Clock) PathResolver {
	pathResolverPrometheusMetrics.Do(func() {
		prometheus.MustRegister(pathResolverResolutionsDurationSeconds)
		prometheus.MustRegister(pathResolverCopyUpsCompleted)
	})

	return &metricsPathResolver{
		base:  base,
		clock: clock,
	}
}

func (pr *metricsPathResolver) Resolve(virtualPath string, flags ResolutionFlags) (ResolvedPath, error) {
	timeStart := pr.clock.Now()
	resolvedPath, err := pr.base.Resolve(virtualPath, flags)
	duration := pr.clock.Now().Sub(timeStart)

	if err != nil {
		pathResolverResolutionsDurationSeconds.WithLabelValues(status.Code(err).String()).Observe(duration.Seconds())
		return ResolvedPath{}, err
	}
	pathResolverResolutionsDurationSeconds.WithLabelValues(resolvedPath.Classification.String()).Observe(duration.Seconds())
	if resolvedPath.Classification == ClassificationReadWriteCopyUp {
		pathResolverCopyUpsCompleted.Inc()
	}
	return resolvedPath, nil
}
