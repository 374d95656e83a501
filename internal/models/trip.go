package models

// DateLayout is the format of Trip.StartDate and Trip.EndDate.
const DateLayout = "2006-01-02"

// Trip represents a trip other users can ask to join.
type Trip struct {
	ID          int64  `db:"id"`
	Location    string `db:"location"`
	StartDate   string `db:"start_date"`
	EndDate     string `db:"end_date"`
	Description string `db:"description"`

	// CreatedBy is the owning user's ID. It is immutable after creation.
	CreatedBy int64 `db:"created_by"`

	// InterestIDs are the tags attached to the trip. Loaded separately.
	InterestIDs []int64 `db:"-"`

	CreatedAt int64 `db:"created_at"`
	UpdatedAt int64 `db:"updated_at"`
}

// TripImage is a picture the owner attached to a trip.
type TripImage struct {
	ID     int64 `db:"id"`
	TripID int64 `db:"trip_id"`

	// ImagePath is the blob store path of the file.
	ImagePath string `db:"image_path"`

	CreatedAt int64 `db:"created_at"`
}

// Interest is a tag such as "Hiking" or "Food".
type Interest struct {
	ID   int64  `db:"id"`
	Name string `db:"name"`
}

// UserTrip is one entry of a user's trip list: the trip plus their membership.
type UserTrip struct {
	TripID       int64
	Location     string
	StartDate    string
	EndDate      string
	Description  string
	MembershipID int64
	Status       string
	Role         string
}
