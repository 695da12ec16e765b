package domain

import "time"

// HealthStatus is returned by the health endpoint
type HealthStatus struct {
	Status    string        `json:"status"`
	Timestamp time.Time     `json:"timestamp"`
	Version   string        `json:"version"`
	Uptime    string        `json:"uptime"`
	Tables    []TableStatus `json:"tables"`
	Exported  int           `json:"exported_tables"`
}

// TableStatus describes one loaded table
type TableStatus struct {
	Sheet   string `json:"sheet"`
	File    string `json:"file"`
	Rows    int    `json:"rows"`
	Columns int    `json:"columns"`
}
