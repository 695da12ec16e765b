// Package ingest produces the local, queryable copy of the remote workbook.
//
// It runs in two steps. Fetcher downloads the workbook once and caches it
// in the data directory. SheetExporter then splits every sheet into a
// cleaned CSV table whose file name is derived with files.SheetFileName.
//
// Failures are typed: download problems are FETCH errors and undecodable
// workbooks or sheets are PARSE errors (see internal/errors). Nothing is
// rolled back; tables written before a failure stay on disk.
package ingest
