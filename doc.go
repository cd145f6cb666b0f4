// Package vecrank retrieves the N feature vectors most similar to a query
// vector from a precomputed collection.
//
// Ranking is exhaustive: every entry of the dataset is scored against the
// query with a named metric from the distance package, the scores are stably
// sorted in the metric's native direction and the first N identifiers are
// returned. Ties keep the dataset order, so results are reproducible.
//
// # Quick Start
//
//	ds := model.Dataset{
//	    {ID: "a.jpg", Vector: []float32{0, 0}},
//	    {ID: "b.jpg", Vector: []float32{1, 1}},
//	    {ID: "c.jpg", Vector: []float32{5, 5}},
//	}
//	ids, err := vecrank.Rank(ds, "a.jpg", "ssd", 1) // ["b.jpg"]
//
// # Loading Feature Files
//
// The dataset package reads the CSV feature files written by feature
// extractors from any blobstore:
//
//	ds, _ := dataset.Load(ctx, blobstore.NewLocalStore("./features"), "rgb.csv.zst")
//
// # Parallel Scoring
//
// Scoring can be split across workers. Results are identical to sequential
// ranking, including the order of ties:
//
//	r := vecrank.New(vecrank.WithWorkers(runtime.GOMAXPROCS(0)))
//	ids, _ := r.Rank(ctx, ds, "a.jpg", "histogram-intersection", 10)
//
// # Errors
//
// Every failure is a distinct, identifiable error:
//
//   - ErrInvalidN: N is not positive
//   - ErrEmptyDataset: the dataset has no entries
//   - ErrUnknownMetric: the metric name is not registered
//   - ErrQueryNotFound: the query identifier is absent
//   - *ErrDimensionMismatch: an entry's vector length differs from the query's
//
// Returning fewer than N identifiers is not an error.
package vecrank
