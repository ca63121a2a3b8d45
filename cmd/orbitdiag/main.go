package main

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"os"
	"time"

	"github.com/anordal/celestia/internal/cache"
	"github.com/anordal/celestia/internal/catalog"
	"github.com/anordal/celestia/internal/propagation"
	"github.com/anordal/celestia/internal/transform"
	"github.com/dustin/go-humanize"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))

	cat := catalog.New(logger)
	if len(os.Args) > 1 {
		n, err := catalog.LoadFile(context.Background(), os.Args[1], cat, logger)
		if err != nil {
			fmt.Println("ERROR loading catalog:", err)
			os.Exit(1)
		}
		fmt.Printf("Loaded %d bodies from %s\n", n, os.Args[1])
	}

	earth, ok := cat.Lookup("vsop87-earth")
	if !ok {
		fmt.Println("ERROR: vsop87-earth not registered")
		os.Exit(1)
	}

	fmt.Println("Earth, heliocentric ecliptic J2000:")
	for _, jd := range []float64{transform.J2000, 2451545 + 91.3125, 2451545 + 182.625, 2460000.5} {
		p := earth.Position(jd)
		x, y, z := transform.FromEngineFrame(p.X, p.Y, p.Z)
		fmt.Printf("  jd=%.4f (%s) r=%.6f AU  x=%s y=%s z=%s km\n",
			jd, transform.TimeOf(jd).Format(time.RFC3339), p.Norm()/transform.KmPerAU,
			humanize.Comma(int64(x)), humanize.Comma(int64(y)), humanize.Comma(int64(z)))
	}

	// A stopped clock re-queries one instant; only the first query evaluates.
	c := cache.New(earth)
	for i := 0; i < 10; i++ {
		c.Position(transform.J2000)
	}
	s := c.Stats()
	fmt.Printf("\nPaused clock, 10 queries: %s hits, %s misses\n", humanize.Comma(s.Hits), humanize.Comma(s.Misses))

	prop := propagation.NewPropagator(cat, propagation.Config{Workers: 4}, logger)
	now := transform.JulianDay(time.Now())
	snap, err := prop.Snapshot(context.Background(), now, nil)
	if err != nil {
		fmt.Println("ERROR snapshot:", err)
		os.Exit(1)
	}
	fmt.Printf("\nSnapshot at jd=%.5f: %d of %d bodies\n", snap.JD, len(snap.Bodies), cat.Len())
	for _, b := range snap.Bodies {
		fmt.Printf("  %-24s |r|=%s km\n", b.Name, humanize.Commaf(math.Round(b.Position.Norm())))
	}
}
