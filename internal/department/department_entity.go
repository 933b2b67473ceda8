package department

// Department is one of the fixed organisational units known to ELMS.
type Department struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	LegacyID string `json:"-"`
}

var catalog = []Department{
	{Code: "HR", Name: "Human Resources", LegacyID: "1"},
	{Code: "IT", Name: "Information Technology", LegacyID: "2"},
	{Code: "Finance", Name: "Finance", LegacyID: "3"},
	{Code: "Marketing", Name: "Marketing"},
}
