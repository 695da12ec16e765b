// Package dataprocessing holds the in-memory dataset the server answers
// from and the column aggregations computed over it.
//
// # Loading
//
// LoadStore reads the product, competitor, revenue and penetration tables
// exported by the ingestor. Each table is checked against the columns the
// dashboard needs; a missing file or column stops startup:
//
//	store, err := dataprocessing.LoadStore(ctx, paths, cfg.Dataset, logger)
//	if err != nil {
//	    return err // STARTUP_LOAD
//	}
//
// # Aggregations
//
// Mean, Max, LastNumber and DistinctCount work on raw column values. Cells
// that do not parse as numbers are ignored by the numeric aggregations, and
// a column without any numeric cell yields nil:
//
//	avg := dataprocessing.Mean(store.Products.Column(dataprocessing.ColSalePrice))
//	if avg == nil {
//	    // no prices
//	}
//
// Tables are read only after loading and can be shared between goroutines.
package dataprocessing
