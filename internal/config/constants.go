package config

import "time"

// Application constants
const (
	AppName = "iRevolution"

	DefaultPort         = 5000
	DefaultDataDir      = "data"
	DefaultLogsDir      = "logs"
	DefaultWorkbookFile = "apple_products.xlsx"
	DefaultFetchTimeout = 60 * time.Second

	// Google Sheets export of the Apple iPhone India dataset
	DefaultWorkbookURL = "https://docs.google.com/spreadsheets/d/1p1ZWaYcEuFl5UNFcmNvpkXi3JnoHamut/export?format=xlsx"
)

// Sheets the server builds its datasets from
const (
	SheetProducts          = "apple_products"
	SheetCompetitors       = "Flipkart_smartphone"
	SheetAnnualRevenue     = "Annual revenue"
	SheetMarketPenetration = "Market penetration (iPhone)"
)

// ExpectedSheets is the documented sheet list of the workbook. The ingestor
// only warns about missing entries; the sheet set is read from the file.
var ExpectedSheets = []string{
	SheetProducts,
	SheetCompetitors,
	SheetAnnualRevenue,
	SheetMarketPenetration,
	"Country wise share",
	"Quarterly-share",
	"Model-wise share",
}
