package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robertof/go-ezo-rtd/response"
)

var (
	descTemperature = prometheus.NewDesc(
		"ezo_temperature",
		"Latest temperature reading, in the scale configured on the chip.",
		[]string{"scale"},
		nil,
	)

	descVccVoltage = prometheus.NewDesc(
		"ezo_vcc_volts",
		"Chip supply voltage as reported by the STATUS command.",
		nil,
		nil,
	)

	descRestartReason = prometheus.NewDesc(
		"ezo_restart_reason_info",
		"Reason for the chip's last restart. 0 = powered off, 1 = software reset, "+
			"2 = brownout, 3 = watchdog, 4 = unknown.",
		nil,
		nil,
	)
)

// ReadFailures counts collection attempts that ended in a protocol or
// bus error.
var ReadFailures = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "ezo_read_failures_total",
	Help: "Number of failed collection attempts.",
})

// Sample is the latest successfully collected chip state.
type Sample struct {
	Temperature response.Temperature
	Status      response.DeviceStatus
	HasStatus   bool
}

// CollectFunc returns the latest sample, the time it was taken, and
// whether a sample exists yet at all.
type CollectFunc func() (Sample, time.Time, bool)

type collector struct {
	CollectFunc
}

func (c *collector) Describe(ch chan<- *prometheus.Desc) {
	prometheus.DescribeByCollect(c, ch)
}

func (c *collector) Collect(ch chan<- prometheus.Metric) {
	sample, ts, ok := c.CollectFunc()

	if !ok {
		return
	}

	temperature := prometheus.MustNewConstMetric(
		descTemperature,
		prometheus.GaugeValue,
		sample.Temperature.Value,
		sample.Temperature.Scale.Unit(),
	)

	ch <- prometheus.NewMetricWithTimestamp(ts, temperature)

	if sample.HasStatus {
		voltage := prometheus.MustNewConstMetric(
			descVccVoltage,
			prometheus.GaugeValue,
			sample.Status.VccVoltage,
		)

		ch <- prometheus.NewMetricWithTimestamp(ts, voltage)

		restartReason := prometheus.MustNewConstMetric(
			descRestartReason,
			prometheus.GaugeValue,
			float64(sample.Status.RestartReason),
		)

		ch <- prometheus.NewMetricWithTimestamp(ts, restartReason)
	}
}

func RegisterCollector(f CollectFunc, reg prometheus.Registerer) {
	reg.MustRegister(&collector{f}, ReadFailures)
}
