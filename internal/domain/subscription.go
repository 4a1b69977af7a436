package domain

// Plan identifiers, in tier order.
const (
	PlanFree          = "free"
	PlanBasic         = "basic"
	PlanAdvanced      = "advanced"
	PlanComprehensive = "comprehensive"
)

// SubscriptionPlan describes one of the fixed plan tiers. Plans are never
// persisted.
type SubscriptionPlan struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Price         int      `json:"price"`
	Features      []string `json:"features"`
	HasAnatomy    bool     `json:"has_anatomy"`
	HasVideoSwipe bool     `json:"has_video_swipe"`
}

// PaymentRequest carries the card details submitted on the payment page.
// None of the fields are validated.
type PaymentRequest struct {
	PlanName   string `json:"plan_name"`
	CardNumber string `json:"card_number"`
	CardName   string `json:"card_name"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// ActivationResult is returned by plan activation.
type ActivationResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Plan    string `json:"plan"`
}
