// Package exporter writes the cleaned per-sheet tables produced by the
// ingestor as flat CSV files.
//
// Example usage:
//
//	w := exporter.NewCSVWriter(logger)
//	err := w.WriteCSV(paths.TablePath("Annual revenue"), exporter.WriteOptions{
//		Headers: []string{"Year", "Revenue ($bn)"},
//		Records: [][]string{{"2021", "365.8"}},
//	})
package exporter
