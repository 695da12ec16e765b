package dataprocessing

// Column names the server reads from the exported tables
const (
	ColProductName        = "Product Name"
	ColSalePrice          = "Sale Price"
	ColMrp                = "Mrp"
	ColDiscountPercentage = "Discount Percentage"
	ColNumberOfRatings    = "Number Of Ratings"
	ColStarRating         = "Star Rating"
	ColRam                = "Ram"

	ColBrand = "brand"
	ColModel = "model"

	ColRevenue = "Revenue ($bn)"

	ColUnitsSold   = "Units sold (mm)"
	ColActiveUsers = "Active Users (mm)"
)

// ProductColumns is the product projection, in output order
var ProductColumns = []string{
	ColProductName,
	ColSalePrice,
	ColMrp,
	ColDiscountPercentage,
	ColNumberOfRatings,
	ColStarRating,
	ColRam,
}

// Required columns per table role
var (
	productsSchema    = ProductColumns
	competitorsSchema = []string{ColBrand, ColModel}
	revenueSchema     = []string{ColRevenue}
	penetrationSchema = []string{ColUnitsSold, ColActiveUsers}
)
