// Command nthterm demonstrates the memoizing evaluator: it asks a machine
// for a batch of random indices and prints the terms, so cache hits, LRU
// evictions and age expirations show up in the logs and metrics.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/nthterm/nthterm"
	zaplog "github.com/nthterm/nthterm/log/zap"
	"github.com/nthterm/nthterm/metrics/prom"
	"github.com/nthterm/nthterm/seq"
)

func main() {
	var (
		sequence    = flag.String("seq", "fibonacci", "sequence to evaluate: fibonacci, primes or harmonic")
		capacity    = flag.Int("capacity", 128, "max cached entries")
		maxAge      = flag.Uint64("max-age", 50, "max access ticks before an entry expires")
		count       = flag.Int("count", 50, "number of random evaluations")
		maxN        = flag.Int64("max-n", 50, "indices are drawn from [first, first+max-n)")
		seed        = flag.Int64("seed", 0, "random seed; 0 uses a random one")
		metricsAddr = flag.String("metrics-addr", "", "serve Prometheus metrics on this address and block after the run")
		debug       = flag.Bool("debug", false, "log cache activity")
	)
	flag.Parse()

	logger := nthterm.Logger(nthterm.NopLogger{})
	if *debug {
		zl, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, "nthterm:", err)
			os.Exit(1)
		}
		defer zl.Sync()
		logger = zaplog.ZapLogger{L: zl}
	}

	rng := rand.New(rand.NewSource(*seed))
	if *seed == 0 {
		rng = rand.New(rand.NewSource(rand.Int63()))
	}

	var err error
	switch *sequence {
	case "fibonacci":
		err = run[uint64](seq.Fibonacci{}, 0, logger, rng, *capacity, *maxAge, *count, *maxN)
	case "primes":
		// primes are 1-indexed
		err = run[uint64](seq.Primes{}, 1, logger, rng, *capacity, *maxAge, *count, *maxN)
	case "harmonic":
		err = run[float64](seq.Harmonic{}, 0, logger, rng, *capacity, *maxAge, *count, *maxN)
	default:
		err = fmt.Errorf("unknown sequence %q", *sequence)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "nthterm:", err)
		os.Exit(1)
	}

	if *metricsAddr != "" {
		fmt.Printf("serving metrics on %s/metrics\n", *metricsAddr)
		if err := http.ListenAndServe(*metricsAddr, promhttp.Handler()); err != nil {
			fmt.Fprintln(os.Stderr, "nthterm:", err)
			os.Exit(1)
		}
	}
}

func run[V any](strategy seq.Strategy[V], first int64, logger nthterm.Logger, rng *rand.Rand, capacity int, maxAge uint64, count int, maxN int64) error {
	m, err := nthterm.New(nthterm.Options[V]{
		Strategy: strategy,
		Capacity: capacity,
		MaxAge:   maxAge,
		Logger:   logger,
		Metrics:  prom.New("nthterm", strategy.Name(), prometheus.DefaultRegisterer),
	})
	if err != nil {
		return err
	}

	for i := 0; i < count; i++ {
		n := first + rng.Int63n(maxN)
		v, err := m.Calculate(n)
		if err != nil {
			return err
		}
		fmt.Printf("%s(%2d) = %v\n", strategy.Name(), n, v)
	}
	fmt.Printf("cached entries: %d\n", m.Len())
	return nil
}
