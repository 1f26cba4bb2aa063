package seed

// DepartmentSpec は生成対象の部署とその職位一覧です。
type DepartmentSpec struct {
	Name        string
	Description string
	Positions   []string
}

// Catalog は部署・職位の固定カタログです。
type Catalog []DepartmentSpec

// DefaultCatalog は標準の 5 部署 25 職位です。
var DefaultCatalog = Catalog{
	{
		Name:        "Technology",
		Description: "Responsible for company technology R&D and product innovation",
		Positions:   []string{"CTO", "Senior Engineer", "Software Engineer", "Junior Engineer", "Test Engineer"},
	},
	{
		Name:        "Marketing",
		Description: "Responsible for market promotion and brand building",
		Positions:   []string{"CMO", "Marketing Manager", "Marketing Specialist", "Brand Manager", "Media Specialist"},
	},
	{
		Name:        "Sales",
		Description: "Responsible for product sales and customer relationship maintenance",
		Positions:   []string{"Sales Director", "Sales Manager", "Sales Representative", "Account Manager", "Sales Assistant"},
	},
	{
		Name:        "Human Resources",
		Description: "Responsible for human resource management and corporate culture building",
		Positions:   []string{"HR Director", "HR Manager", "Recruitment Specialist", "Training Specialist", "Compensation Specialist"},
	},
	{
		Name:        "Finance",
		Description: "Responsible for company financial management and accounting",
		Positions:   []string{"CFO", "Finance Manager", "Accountant", "Cashier", "Financial Analyst"},
	},
}
