package transaction

// Transaction is the API response model for a recorded purchase.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID         string `json:"id" doc:"Transaction UUID"`
	ItemName   string `json:"itemName" doc:"Name of the purchased item"`
	Kind       string `json:"kind" doc:"regular or special"`
	AmountPaid string `json:"amountPaid" doc:"Decimal payment applied to the purchase"`
	Change     string `json:"change" doc:"Decimal change disbursed"`
	CreatedAt  string `json:"createdAt" doc:"RFC3339 creation time"`
}
