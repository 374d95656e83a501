package api

// AuthService

type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name,omitempty" validate:"max=100"`
}

type RegisterResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

// FederatedSignInRequest carries an identity already verified by the
// external provider.
type FederatedSignInRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name,omitempty" validate:"max=100"`
}

type FederatedSignInResponse struct {
	User    *User  `json:"user"`
	Token   string `json:"token"`
	Created bool   `json:"created"`
}

type GetCurrentUserRequest struct{}

type GetCurrentUserResponse struct {
	User *User `json:"user"`
}

// UserService

type GetUserRequest struct {
	UserID int64 `json:"user_id" validate:"required,gt=0"`
}

type GetUserResponse struct {
	User *User `json:"user"`
}

type UpdateProfileRequest struct {
	Name           string `json:"name" validate:"max=100"`
	Phone          string `json:"phone" validate:"max=32"`
	Nationality    string `json:"nationality" validate:"max=64"`
	Languages      string `json:"languages" validate:"max=255"`
	Age            int    `json:"age" validate:"gte=0,lte=150"`
	Sex            string `json:"sex" validate:"max=32"`
	Bio            string `json:"bio" validate:"max=2000"`
	Interests      string `json:"interests" validate:"max=1000"`
	ProfilePicture string `json:"profile_picture" validate:"max=512"`
}

type UpdateProfileResponse struct {
	User *User `json:"user"`
}

// ListUserTripsRequest lists the trips of the caller when Email is empty.
type ListUserTripsRequest struct {
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

type ListUserTripsResponse struct {
	Trips []*UserTrip `json:"trips"`
}

// TripService

type CreateTripRequest struct {
	Location    string  `json:"location" validate:"required,max=200"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Description string  `json:"description" validate:"max=5000"`
	InterestIDs []int64 `json:"interest_ids" validate:"dive,gt=0"`
}

type CreateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type GetTripRequest struct {
	TripID int64 `json:"trip_id" validate:"required,gt=0"`
}

type GetTripResponse struct {
	Trip *Trip `json:"trip"`
}

type UpdateTripRequest struct {
	TripID      int64   `json:"trip_id" validate:"required,gt=0"`
	Location    string  `json:"location" validate:"required,max=200"`
	StartDate   string  `json:"start_date" validate:"required,datetime=2006-01-02"`
	EndDate     string  `json:"end_date" validate:"required,datetime=2006-01-02"`
	Description string  `json:"description" validate:"max=5000"`
	InterestIDs []int64 `json:"interest_ids" validate:"dive,gt=0"`
}

type UpdateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type DeleteTripRequest struct {
	TripID int64 `json:"trip_id" validate:"required,gt=0"`
}

type DeleteTripResponse struct{}

type ListInterestsRequest struct{}

type ListInterestsResponse struct {
	Interests []*Interest `json:"interests"`
}

type AddTripImageRequest struct {
	TripID   int64  `json:"trip_id" validate:"required,gt=0"`
	Image    []byte `json:"image" validate:"required,max=10485760"`
	Filename string `json:"filename" validate:"required,max=255"`
}

type AddTripImageResponse struct {
	Image *TripImage `json:"image"`
}

type ListTripImagesRequest struct {
	TripID int64 `json:"trip_id" validate:"required,gt=0"`
}

type ListTripImagesResponse struct {
	Images []*TripImage `json:"images"`
}

// MembershipService

type RequestJoinRequest struct {
	TripID int64 `json:"trip_id" validate:"required,gt=0"`
	// Status is Pending when empty.
	Status string `json:"status,omitempty"`
}

type RequestJoinResponse struct {
	Membership *Membership `json:"membership"`
}

// UpdateMembershipStatusRequest names the membership either by
// MembershipID or by the UserID and TripID pair. MembershipID wins when
// both are set.
type UpdateMembershipStatusRequest struct {
	MembershipID int64  `json:"membership_id,omitempty" validate:"omitempty,gt=0"`
	UserID       int64  `json:"user_id,omitempty" validate:"omitempty,gt=0"`
	TripID       int64  `json:"trip_id,omitempty" validate:"omitempty,gt=0"`
	Status       string `json:"status" validate:"required"`
}

type UpdateMembershipStatusResponse struct {
	Membership *Membership `json:"membership"`
}

type ListTripRequestsRequest struct {
	TripID int64 `json:"trip_id" validate:"required,gt=0"`
}

type ListTripRequestsResponse struct {
	Requests []*TripRequest `json:"requests"`
}

// PostService

type CreatePostRequest struct {
	TripID        int64  `json:"trip_id" validate:"required,gt=0"`
	Caption       string `json:"caption" validate:"max=2000"`
	Image         []byte `json:"image,omitempty" validate:"max=10485760"`
	ImageFilename string `json:"image_filename,omitempty" validate:"max=255"`
}

type CreatePostResponse struct {
	Post *Post `json:"post"`
}

type ListTripPostsRequest struct {
	TripID int64 `json:"trip_id" validate:"required,gt=0"`
}

type ListTripPostsResponse struct {
	Posts []*Post `json:"posts"`
}

// ReviewService

type CreateReviewRequest struct {
	PostID     int64  `json:"post_id" validate:"required,gt=0"`
	RevieweeID *int64 `json:"reviewee_id,omitempty" validate:"omitempty,gt=0"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment" validate:"max=2000"`
}

type CreateReviewResponse struct {
	Review *Review `json:"review"`
}

type SetTripUserRatingRequest struct {
	TripID int64 `json:"trip_id" validate:"required,gt=0"`
	UserID int64 `json:"user_id" validate:"required,gt=0"`
	Rating int   `json:"rating"`
}

type SetTripUserRatingResponse struct {
	User *User `json:"user"`
}

// NotificationService

type ListNotificationsRequest struct{}

type ListNotificationsResponse struct {
	Notifications []*Notification `json:"notifications"`
}

type MarkNotificationReadRequest struct {
	NotificationID int64 `json:"notification_id" validate:"required,gt=0"`
}

type MarkNotificationReadResponse struct {
	Notification *Notification `json:"notification"`
}
