package metrics

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gamebridge-labs/gamebridge/logging"
)

var (
	DefinedResourceTypesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bridge_defined_resource_types",
		Help: "Resource types ever defined on the bridge, including removed ones.",
	})

	ActiveResourceTypesGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bridge_active_resource_types",
		Help: "Resource types currently bridgeable.",
	})

	TerminatedGauge = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bridge_terminated",
		Help: "1 once the bridge has been terminated.",
	})

	ParcelsRegisteredCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bridge_parcels_registered_total",
		Help: "Inbound deposits registered as parcels.",
	})

	RejectedDepositsCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "bridge_rejected_deposits_total",
		Help: "Inbound deposits rejected, by reason.",
	}, []string{"reason"})

	OutboundTransfersCounter = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "bridge_outbound_transfers_total",
		Help: "Outbound transfers instructed on the economy ledger.",
	})

	MetricsItems = []prometheus.Collector{
		DefinedResourceTypesGauge,
		ActiveResourceTypesGauge,
		TerminatedGauge,
		ParcelsRegisteredCounter,
		RejectedDepositsCounter,
		OutboundTransfersCounter,
	}
)

const DefaultMetricsAddress = "0.0.0.0:9090"

type Metrics struct {
	httpAddress string
	registry    *prometheus.Registry
	httpServer  *http.Server
}

func NewMetrics(address string) *Metrics {
	if address == "" {
		address = DefaultMetricsAddress
	}
	return &Metrics{
		httpAddress: address,
		registry:    prometheus.NewRegistry(),
	}
}

func (m *Metrics) Start() {
	m.registry.MustRegister(MetricsItems...)
	go m.serve()
}

func (m *Metrics) serve() {
	router := mux.NewRouter()
	router.Path("/metrics").Handler(promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}))
	m.httpServer = &http.Server{
		Addr:    m.httpAddress,
		Handler: router,
	}
	if err := m.httpServer.ListenAndServe(); err != nil {
		logging.Logger.Errorf("failed to listen and serve, err=%s", err.Error())
		panic(err)
	}
}
