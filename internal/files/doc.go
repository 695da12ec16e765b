// Package files holds the file system conventions shared by the ingestor and
// the server: how a sheet name maps to a table file, atomic writes for
// downloaded payloads and discovery of exported tables.
package files
