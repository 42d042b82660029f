// Command hamtbench exercises a persistent hamt.Map[UUIDKey, string]
// with a configurable number of inserts followed by a lookup of every
// inserted key, and reports how long each phase took, the final size,
// and the size of a map derived by overwriting one key together with
// whether it shares the base map's root. It runs no removes and does
// not count shared inner nodes. It exists to give the
// core library's promised O(log32 N) update cost and structural sharing
// something concrete to demonstrate, as a standalone command rather than
// buried inside a test.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	hamt "github.com/lleo/go-hamt-persistent"
)

var logger = log.New(os.Stderr, "[hamtbench] ", log.Lshortfile)

func main() {
	app := &cli.App{
		Name:  "hamtbench",
		Usage: "benchmark and demonstrate the persistent HAMT map",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "profile",
				Aliases: []string{"p"},
				Usage:   "path to a YAML benchmark profile",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colorized summary output",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable the hamt package's diagnostic logger",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		logger.Fatalf("%+v", err)
	}
}

func run(c *cli.Context) error {
	p, err := loadProfile(c.String("profile"))
	if err != nil {
		return errors.Wrap(err, "loading profile")
	}
	if c.Bool("debug") {
		hamt.EnableDebugLogging()
	}
	if c.Bool("no-color") {
		color.NoColor = true
	}

	logger.Printf("profile %q: keys=%d valueSize=%d seed=%d", p.Label, p.Keys, p.ValueSize, p.Seed)

	keys, err := randomKeys(p.Keys, p.Seed)
	if err != nil {
		return errors.Wrap(err, "generating random keys")
	}

	insertStart := time.Now()
	b := hamt.NewBuilder[hamt.UUIDKey, string]()
	for _, k := range keys {
		b.Put(k, randomValue(p.ValueSize))
	}
	m := b.Build()
	insertElapsed := time.Since(insertStart)

	lookupStart := time.Now()
	hits := 0
	for _, k := range keys {
		if _, ok := m.Get(k); ok {
			hits++
		}
	}
	lookupElapsed := time.Since(lookupStart)

	derived := m.Insert(keys[0], "overwritten-to-show-sharing")

	printSummary(summary{
		label:         p.Label,
		keys:          len(keys),
		insertElapsed: insertElapsed,
		lookupElapsed: lookupElapsed,
		hits:          hits,
		size:          m.Size(),
		derivedIsSame: m.Same(derived),
		derivedSize:   derived.Size(),
	})

	return nil
}

func randomKeys(n int, seed int64) ([]hamt.UUIDKey, error) {
	r := rand.New(rand.NewSource(seed))
	keys := make([]hamt.UUIDKey, n)
	for i := range keys {
		raw := make([]byte, 16)
		for j := range raw {
			raw[j] = byte(r.Intn(256))
		}
		id, err := uuid.FromBytes(raw)
		if err != nil {
			return nil, errors.Wrap(err, "building UUID key from random bytes")
		}
		keys[i] = hamt.UUIDKey(id)
	}
	return keys, nil
}

func randomValue(size int) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	buf := make([]byte, size)
	for i := range buf {
		buf[i] = alphabet[rand.Intn(len(alphabet))]
	}
	return string(buf)
}

type summary struct {
	label         string
	keys          int
	insertElapsed time.Duration
	lookupElapsed time.Duration
	hits          int
	size          int
	derivedIsSame bool
	derivedSize   int
}

func printSummary(s summary) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Printf("%s %s\n", bold("profile:"), s.label)
	fmt.Printf("  %s %d\n", bold("keys inserted:"), s.keys)
	fmt.Printf("  %s %s\n", bold("insert phase:"), s.insertElapsed)
	fmt.Printf("  %s %s (%d/%d hits)\n", bold("lookup phase:"), s.lookupElapsed, s.hits, s.keys)
	fmt.Printf("  %s %d\n", bold("final size:"), s.size)
	fmt.Printf("  %s %d (same root as base: %v)\n", bold("derived map size:"), s.derivedSize, s.derivedIsSame)
}
