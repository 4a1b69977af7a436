package domain

// DefaultSubscriptionPlan is the plan name every new account starts on.
const DefaultSubscriptionPlan = "Ücretsiz"

// User represents a registered account.
// The id is an opaque UUID string; Mongo's own _id never leaves the store.
type User struct {
	ID               string    `bson:"id" json:"id"`
	Email            string    `bson:"email" json:"email"` // Unique
	FullName         string    `bson:"full_name" json:"full_name"`
	CreatedAt        Timestamp `bson:"created_at" json:"created_at"`
	SubscriptionPlan string    `bson:"subscription_plan" json:"subscription_plan"`
	PasswordHash     string    `bson:"password_hash,omitempty" json:"-"` // Never expose this via JSON
}

// Plan returns the subscription plan name, falling back to the free tier for
// documents written before the field existed.
func (u *User) Plan() string {
	if u.SubscriptionPlan == "" {
		return DefaultSubscriptionPlan
	}
	return u.SubscriptionPlan
}
