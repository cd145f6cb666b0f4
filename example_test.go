package vecrank_test

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/vecrank"
	"github.com/hupe1980/vecrank/model"
)

// Example_rank demonstrates ranking with the package-level helper.
func Example_rank() {
	ds := model.Dataset{
		{ID: "A", Vector: []float32{0, 0}},
		{ID: "B", Vector: []float32{1, 1}},
		{ID: "C", Vector: []float32{5, 5}},
	}

	ids, err := vecrank.Rank(ds, "A", "sum-of-squared-difference", 1)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(ids)
	// Output: [B]
}

// Example_rankMatches demonstrates retrieving scores with a configured Ranker.
func Example_rankMatches() {
	ds := model.Dataset{
		{ID: "A", Vector: []float32{0.5, 0.5}},
		{ID: "B", Vector: []float32{0.4, 0.6}},
		{ID: "C", Vector: []float32{0.1, 0.9}},
	}

	r := vecrank.New(vecrank.WithWorkers(2))
	matches, err := r.RankMatches(context.Background(), ds, "A", "rgb-hist", 2)
	if err != nil {
		log.Fatal(err)
	}

	for _, m := range matches {
		fmt.Printf("%s %.1f\n", m.ID, m.Score)
	}
	// Output:
	// B 0.9
	// C 0.6
}
