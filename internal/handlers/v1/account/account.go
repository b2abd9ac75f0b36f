package account

// Account is the API response model for an account.
type Account struct {
	ID        string `json:"id" doc:"Account UUID"`
	Name      string `json:"name" doc:"Account name"`
	Balance   string `json:"balance" doc:"Decimal balance"`
	CreatedAt string `json:"createdAt" doc:"RFC3339 creation time"`
}
