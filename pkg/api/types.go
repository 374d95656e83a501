package api

// User is the public view of an account. Credentials are never sent.
type User struct {
	ID             int64   `json:"id"`
	Username       string  `json:"username"`
	Email          string  `json:"email"`
	Name           string  `json:"name,omitempty"`
	Phone          string  `json:"phone,omitempty"`
	Nationality    string  `json:"nationality,omitempty"`
	Languages      string  `json:"languages,omitempty"`
	Age            int     `json:"age,omitempty"`
	Sex            string  `json:"sex,omitempty"`
	Bio            string  `json:"bio,omitempty"`
	Interests      string  `json:"interests,omitempty"`
	ProfilePicture string  `json:"profile_picture,omitempty"`
	ReviewScore    float64 `json:"review_score"`
	Federated      bool    `json:"federated"`
	CreatedAt      int64   `json:"created_at"`
}

type Trip struct {
	ID          int64   `json:"id"`
	Location    string  `json:"location"`
	StartDate   string  `json:"start_date"`
	EndDate     string  `json:"end_date"`
	Description string  `json:"description,omitempty"`
	CreatedBy   int64   `json:"created_by"`
	InterestIDs []int64 `json:"interest_ids"`
	CreatedAt   int64   `json:"created_at"`
	UpdatedAt   int64   `json:"updated_at"`
}

type Interest struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type Membership struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	TripID    int64  `json:"trip_id"`
	Role      string `json:"role"`
	Status    string `json:"status"`
	CreatedAt int64  `json:"created_at"`
	UpdatedAt int64  `json:"updated_at"`
}

// TripRequest is a membership as the trip owner sees it.
type TripRequest struct {
	MembershipID int64  `json:"membership_id"`
	UserID       int64  `json:"user_id"`
	Username     string `json:"username"`
	Status       string `json:"status"`
}

// UserTrip is a trip as one of its members sees it.
type UserTrip struct {
	TripID       int64  `json:"trip_id"`
	Location     string `json:"location"`
	StartDate    string `json:"start_date"`
	EndDate      string `json:"end_date"`
	Description  string `json:"description,omitempty"`
	MembershipID int64  `json:"membership_id"`
	Status       string `json:"status"`
	Role         string `json:"role"`
}

// TripImage is a picture attached to a trip by its owner.
type TripImage struct {
	ID        int64  `json:"id"`
	TripID    int64  `json:"trip_id"`
	ImagePath string `json:"image_path"`
	CreatedAt int64  `json:"created_at"`
}

type Post struct {
	ID           int64  `json:"id"`
	MembershipID int64  `json:"membership_id"`
	Caption      string `json:"caption,omitempty"`
	ImagePath    string `json:"image_path,omitempty"`
	CreatedAt    int64  `json:"created_at"`
}

type Review struct {
	ID         int64  `json:"id"`
	ReviewerID int64  `json:"reviewer_id"`
	RevieweeID *int64 `json:"reviewee_id,omitempty"`
	TripID     *int64 `json:"trip_id,omitempty"`
	PostID     int64  `json:"post_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  int64  `json:"created_at"`
}

type Notification struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"user_id"`
	Status    string `json:"status"`
	Content   string `json:"content"`
	CreatedAt int64  `json:"created_at"`
}
