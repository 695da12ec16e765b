package domain

// KPISet is the headline figure set of the dashboard. Aggregates that have
// no numeric input are nil and encode as JSON null; every field is always
// present in the encoded object.
type KPISet struct {
	TotalProducts       int      `json:"totalProducts"`
	AvgPrice            *int64   `json:"avgPrice"`
	AvgRating           *float64 `json:"avgRating"`
	LatestRevenue       *float64 `json:"latestRevenue"`
	TotalBrands         int      `json:"totalBrands"`
	TotalModelsFlipkart int      `json:"totalModelsFlipkart"`
	MaxUnitsSold        *float64 `json:"maxUnitsSold"`
	MaxActiveUsers      *float64 `json:"maxActiveUsers"`
}

// ProductRecord is one row of the product catalog. Numeric cells hold a
// float64, everything else a string; missing cells are "".
type ProductRecord struct {
	ProductName        any `json:"Product Name"`
	SalePrice          any `json:"Sale Price"`
	Mrp                any `json:"Mrp"`
	DiscountPercentage any `json:"Discount Percentage"`
	NumberOfRatings    any `json:"Number Of Ratings"`
	StarRating         any `json:"Star Rating"`
	Ram                any `json:"Ram"`
}
