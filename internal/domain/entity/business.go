package entity

import "time"

// Business is the central entity of the directory: a listing registered by an
// owner into a category and moderated by admins through the pending/approved
// workflow.
type Business struct {
	ID          ID     `json:"id"`          // Unique identifier of the listing.
	OwnerID     ID     `json:"owner_id"`    // The User who registered and controls this listing.
	CategoryID  ID     `json:"category_id"` // The Category this listing belongs to.
	Name        string `json:"name"`        // Display name; a critical field for re-approval.
	Description string `json:"description"` // Free-form description; a critical field for re-approval.
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	Pincode     string `json:"pincode"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Website     string `json:"website"`
	Image       string `json:"image"`  // URL of the listing image; upload handling lives outside this service.
	Status      Status `json:"status"` // Moderation state, computed by the approval workflow.

	// AvgRating is derived from reviews by a database trigger. Application
	// code never writes it.
	AvgRating float64 `json:"avg_rating"`

	// DateAdded is set once at creation and never updated.
	DateAdded time.Time `json:"date_added"`

	// Enrichment fields populated by list queries; zero-valued elsewhere.
	// The counts serialize even at zero so a dashboard row with no
	// favorites reads as 0 rather than a missing field.
	CategoryName  string `json:"category_name,omitempty"`
	FavoriteCount int64  `json:"favorite_count"`
	ReviewCount   int64  `json:"review_count"`
}

// Category groups businesses; every listing references exactly one.
type Category struct {
	ID          ID     `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Review is a rating plus comment left by a user on a business. The listing's
// AvgRating aggregation happens in the database, not here.
type Review struct {
	ID         ID        `json:"id"`
	UserID     ID        `json:"user_id"`
	BusinessID ID        `json:"business_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`

	// UserName is joined in for display; zero-valued outside list queries.
	UserName string `json:"user_name,omitempty"`
}

// Favorite links a user to a business they bookmarked, unique per pair.
type Favorite struct {
	ID         ID `json:"id"`
	UserID     ID `json:"user_id"`
	BusinessID ID `json:"business_id"`

	// Listing summary joined in for the favorites page.
	BusinessName string  `json:"business_name,omitempty"`
	City         string  `json:"city,omitempty"`
	State        string  `json:"state,omitempty"`
	Image        string  `json:"image,omitempty"`
	AvgRating    float64 `json:"avg_rating"`
	CategoryName string  `json:"category_name,omitempty"`
}
