package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/okian/hoopstat/pkg/metrics"
)

func TestManager(t *testing.T) {
	Convey("Given a metrics manager on a private registry", t, func() {
		reg := prometheus.NewRegistry()

		Convey("When creating it with options", func() {
			m := metrics.NewManager(
				metrics.WithNamespace("test"),
				metrics.WithSubsystem("unit"),
				metrics.WithHistogramBuckets([]float64{1, 10, 100}),
				metrics.WithPrometheusRegistry(reg),
			)

			Convey("Then construction succeeds and metrics register", func() {
				So(m, ShouldNotBeNil)

				families, err := reg.Gather()
				So(err, ShouldBeNil)
				So(len(families), ShouldBeGreaterThan, 0)
			})
		})
	})
}

func TestGlobalRecorders(t *testing.T) {
	Convey("Given the global metrics manager", t, func() {
		Convey("When recording business and HTTP metrics", func() {
			So(func() {
				metrics.RecordRunProcessed()
				metrics.RecordRunFailed("schema")
				metrics.RecordRowsValidated(3)
				metrics.RecordRowsDropped(1)
				metrics.RecordWarning("invalid_value")
				metrics.RecordPipelineDuration(12.5)
				metrics.SetStoredRuns(2)
				metrics.RecordHTTPRequest("/analyze", "POST", "201")
				metrics.RecordHTTPRequestDuration("/analyze", "POST", "201", 4.2)
				metrics.RecordErrorByEndpoint("/analyze", "POST", "client_error")
			}, ShouldNotPanic)
		})

		Convey("When gathering the exposition registry", func() {
			families, err := metrics.GetRegistry().Gather()
			So(err, ShouldBeNil)

			names := make(map[string]bool, len(families))
			for _, f := range families {
				names[f.GetName()] = true
			}

			Convey("Then the service metrics are present", func() {
				So(names["hoopstat_analyzer_runs_processed_total"], ShouldBeTrue)
				So(names["hoopstat_analyzer_stored_runs"], ShouldBeTrue)
				So(names["hoopstat_analyzer_http_requests_total"], ShouldBeTrue)
			})
		})
	})
}
