package files

import "strings"

// TableExt is the extension of every exported sheet table
const TableExt = ".csv"

var sheetNameReplacer = strings.NewReplacer(" ", "_", "(", "", ")", "")

// SheetFileName maps a workbook sheet name to the file name of its exported
// table: spaces become underscores and parentheses are removed.
//
//	"Market penetration (iPhone)" -> "Market_penetration_iPhone.csv"
func SheetFileName(sheet string) string {
	return sheetNameReplacer.Replace(sheet) + TableExt
}
