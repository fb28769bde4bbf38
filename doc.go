/*
Package feather provides lazy, pull-based data streams for Go.

Streaming (pkg/streaming):
  - stream: Producers, chained intermediate stages, and terminal operations
  - redislist: A paged Redis list source

Observability (pkg/metrics):
  - Prometheus counters for pulls, elements, and exhaustions per named stage

Example usage:

	import (
		"github.com/vnykmshr/feather/pkg/streaming/stream"
	)

	sum := stream.Sum(
		stream.FromSlice([]int{1, 2, 3, 4}).
			Filter(func(x int) bool { return x%2 == 0 }).
			Map(func(x int) int { return x * x }),
	) // 20
*/
package feather
