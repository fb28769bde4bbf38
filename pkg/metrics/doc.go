// Package metrics provides Prometheus instrumentation for feather streams.
//
// # Overview
//
// Streams are instrumented per stage. Stream.Instrument inserts a
// pass-through stage that records, for its stream_name label:
//   - every pull made on the stage
//   - every item the stage yielded
//   - the moment the stage became exhausted (counted once)
//
// No background goroutines or timers are started; counters move only when
// the stream is pulled.
//
// # Quick Start
//
//	s := stream.FromSlice(orders).
//		Filter(isPaid).
//		Instrument("paid_orders", nil) // nil uses DefaultRegistry
//
//	total := stream.Sum(stream.MapTo(s, amount))
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := metrics.Config{
//		Enabled:   true,
//		Registry:  prometheus.NewRegistry(),
//		Namespace: "billing",
//		Labels:    prometheus.Labels{"service": "invoicer"},
//	}.Build()
//
//	s := stream.FromSlice(orders).Instrument("orders", registry)
//
// Registering two registries on the same Prometheus registerer panics, as
// with any promauto collectors; build one Registry per registerer and share it.
//
// # Available Metrics
//
//   - feather_stream_pulls_total: Total number of pulls on instrumented stream stages
//   - feather_stream_items_total: Total number of items yielded by instrumented stream stages
//   - feather_stream_exhausted_total: Total number of instrumented stream stages that reached exhaustion
//
// # Labels
//
//   - stream_name: User-provided name passed to Stream.Instrument
package metrics
