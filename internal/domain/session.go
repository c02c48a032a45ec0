package domain

// UserSettings carries the profile details returned alongside the token.
type UserSettings struct {
	UserName         string `json:"userName"`
	FirstName        string `json:"firstName"`
	LastName         string `json:"lastName"`
	OrganizationName string `json:"organizationName"`
	OrganizationID   string `json:"organizationId"`
	EmailAddress     string `json:"emailAddress"`
	BranchName       string `json:"branchName"`
	BaseCurrencyCode string `json:"baseCurrencyCode"`
}

// Session is the authenticated capability used for every gateway call.
// It is created once at process start and never refreshed mid-workflow.
type Session struct {
	Token            string
	CustomerID       string
	ExpiresInMinutes int
	Settings         UserSettings
}
