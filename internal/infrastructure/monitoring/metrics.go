package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type CalculationMetrics struct {
	SchedulesGeneratedTotal prometheus.Counter
	APRSolvesTotal          *prometheus.CounterVec
	PropertiesScoredTotal   prometheus.Counter
	EligibilityChecksTotal  *prometheus.CounterVec
	CalculationDuration     *prometheus.HistogramVec
}

var Calc = CalculationMetrics{
	SchedulesGeneratedTotal: promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fincalc_schedules_generated_total",
			Help: "Total number of amortization schedules generated.",
		},
	),
	APRSolvesTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fincalc_apr_solves_total",
			Help: "Total number of APR solves, labelled by cache outcome.",
		},
		[]string{"cache"},
	),
	PropertiesScoredTotal: promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "fincalc_properties_scored_total",
			Help: "Total number of property scoring runs.",
		},
	),
	EligibilityChecksTotal: promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fincalc_eligibility_checks_total",
			Help: "Total number of eligibility checks, labelled by verdict.",
		},
		[]string{"verdict"},
	),
	CalculationDuration: promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "fincalc_calculation_duration_seconds",
			Help:    "Histogram of calculation latencies by operation.",
			Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1},
		},
		[]string{"operation"},
	),
}

func RecordScheduleGenerated(duration time.Duration) {
	Calc.SchedulesGeneratedTotal.Inc()
	Calc.CalculationDuration.WithLabelValues("generate_schedule").Observe(duration.Seconds())
}

func RecordAPRSolve(cacheOutcome string, duration time.Duration) {
	Calc.APRSolvesTotal.WithLabelValues(cacheOutcome).Inc()
	Calc.CalculationDuration.WithLabelValues("solve_apr").Observe(duration.Seconds())
}

func RecordPropertyScored(duration time.Duration) {
	Calc.PropertiesScoredTotal.Inc()
	Calc.CalculationDuration.WithLabelValues("score_property").Observe(duration.Seconds())
}

func RecordEligibilityCheck(eligible bool, duration time.Duration) {
	verdict := "ineligible"
	if eligible {
		verdict = "eligible"
	}
	Calc.EligibilityChecksTotal.WithLabelValues(verdict).Inc()
	Calc.CalculationDuration.WithLabelValues("check_eligibility").Observe(duration.Seconds())
}
