package hopgo_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/hopgo"
	"github.com/hupe1980/hopgo/pattern"
)

func Example() {
	net, err := hopgo.New(4, hopgo.WithSeed(42))
	if err != nil {
		log.Fatal(err)
	}

	if err := net.Train(pattern.FromBits(1, 1, 1, 0)); err != nil {
		log.Fatal(err)
	}

	out, err := net.Recall(context.Background(), pattern.FromBits(0, 0, 1, 0))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(out)
	// Output:
	// [1 1 1 0]
}

func Example_identify() {
	net, err := hopgo.New(6, hopgo.WithSeed(42))
	if err != nil {
		log.Fatal(err)
	}

	if err := net.Train(
		pattern.FromBits(1, 1, 1, 0, 0, 0),
		pattern.FromBits(0, 0, 0, 1, 1, 1),
	); err != nil {
		log.Fatal(err)
	}

	id, dist, err := net.Identify(pattern.FromBits(0, 0, 1, 1, 1, 1))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("pattern %d at distance %d\n", id, dist)
	// Output:
	// pattern 1 at distance 1
}

func ExampleNetwork_BatchRecall() {
	net, err := hopgo.New(4, hopgo.WithSeed(42), hopgo.WithMaxBatchWorkers(2))
	if err != nil {
		log.Fatal(err)
	}

	if err := net.Train(pattern.FromBits(1, 1, 1, 0)); err != nil {
		log.Fatal(err)
	}

	cues := []pattern.Pattern{
		pattern.FromBits(0, 0, 1, 0),
		pattern.FromBits(1, 0, 1, 0),
	}

	results, err := net.BatchRecall(context.Background(), cues)
	if err != nil {
		log.Fatal(err)
	}

	for _, out := range results {
		fmt.Println(out)
	}
	// Output:
	// [1 1 1 0]
	// [1 1 1 0]
}
