package apiconnect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/travelbuddy/pkg/api"
)

// Fully-qualified service names.
const (
	AuthServiceName         = "travelbuddy.v1.AuthService"
	UserServiceName         = "travelbuddy.v1.UserService"
	TripServiceName         = "travelbuddy.v1.TripService"
	MembershipServiceName   = "travelbuddy.v1.MembershipService"
	PostServiceName         = "travelbuddy.v1.PostService"
	ReviewServiceName       = "travelbuddy.v1.ReviewService"
	NotificationServiceName = "travelbuddy.v1.NotificationService"
)

// Procedure paths. They are the HTTP paths handlers are mounted under.
const (
	AuthServiceRegisterProcedure                     = "/" + AuthServiceName + "/Register"
	AuthServiceLoginProcedure                        = "/" + AuthServiceName + "/Login"
	AuthServiceFederatedSignInProcedure              = "/" + AuthServiceName + "/FederatedSignIn"
	AuthServiceGetCurrentUserProcedure               = "/" + AuthServiceName + "/GetCurrentUser"
	UserServiceGetUserProcedure                      = "/" + UserServiceName + "/GetUser"
	UserServiceUpdateProfileProcedure                = "/" + UserServiceName + "/UpdateProfile"
	UserServiceListUserTripsProcedure                = "/" + UserServiceName + "/ListUserTrips"
	TripServiceCreateTripProcedure                   = "/" + TripServiceName + "/CreateTrip"
	TripServiceGetTripProcedure                      = "/" + TripServiceName + "/GetTrip"
	TripServiceUpdateTripProcedure                   = "/" + TripServiceName + "/UpdateTrip"
	TripServiceDeleteTripProcedure                   = "/" + TripServiceName + "/DeleteTrip"
	TripServiceListInterestsProcedure                = "/" + TripServiceName + "/ListInterests"
	TripServiceAddTripImageProcedure                 = "/" + TripServiceName + "/AddTripImage"
	TripServiceListTripImagesProcedure               = "/" + TripServiceName + "/ListTripImages"
	MembershipServiceRequestJoinProcedure            = "/" + MembershipServiceName + "/RequestJoin"
	MembershipServiceUpdateMembershipStatusProcedure = "/" + MembershipServiceName + "/UpdateMembershipStatus"
	MembershipServiceListTripRequestsProcedure       = "/" + MembershipServiceName + "/ListTripRequests"
	PostServiceCreatePostProcedure                   = "/" + PostServiceName + "/CreatePost"
	PostServiceListTripPostsProcedure                = "/" + PostServiceName + "/ListTripPosts"
	ReviewServiceCreateReviewProcedure               = "/" + ReviewServiceName + "/CreateReview"
	ReviewServiceSetTripUserRatingProcedure          = "/" + ReviewServiceName + "/SetTripUserRating"
	NotificationServiceListNotificationsProcedure    = "/" + NotificationServiceName + "/ListNotifications"
	NotificationServiceMarkNotificationReadProcedure = "/" + NotificationServiceName + "/MarkNotificationRead"
)

// AuthServiceHandler serves AuthService: password accounts, federated
// sign-in and the current session.
type AuthServiceHandler interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	FederatedSignIn(context.Context, *connect.Request[api.FederatedSignInRequest]) (*connect.Response[api.FederatedSignInResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

// NewAuthServiceHandler returns the path to mount the service on and its handler.
func NewAuthServiceHandler(svc AuthServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(AuthServiceRegisterProcedure, connect.NewUnaryHandler(AuthServiceRegisterProcedure, svc.Register, opts...))
	mux.Handle(AuthServiceLoginProcedure, connect.NewUnaryHandler(AuthServiceLoginProcedure, svc.Login, opts...))
	mux.Handle(AuthServiceFederatedSignInProcedure, connect.NewUnaryHandler(AuthServiceFederatedSignInProcedure, svc.FederatedSignIn, opts...))
	mux.Handle(AuthServiceGetCurrentUserProcedure, connect.NewUnaryHandler(AuthServiceGetCurrentUserProcedure, svc.GetCurrentUser, opts...))
	return "/" + AuthServiceName + "/", mux
}

// AuthServiceClient calls AuthService.
type AuthServiceClient interface {
	Register(context.Context, *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error)
	Login(context.Context, *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error)
	FederatedSignIn(context.Context, *connect.Request[api.FederatedSignInRequest]) (*connect.Response[api.FederatedSignInResponse], error)
	GetCurrentUser(context.Context, *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error)
}

// NewAuthServiceClient creates a client for the service at baseURL.
func NewAuthServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) AuthServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &authServiceClient{
		register:        connect.NewClient[api.RegisterRequest, api.RegisterResponse](httpClient, baseURL+AuthServiceRegisterProcedure, opts...),
		login:           connect.NewClient[api.LoginRequest, api.LoginResponse](httpClient, baseURL+AuthServiceLoginProcedure, opts...),
		federatedSignIn: connect.NewClient[api.FederatedSignInRequest, api.FederatedSignInResponse](httpClient, baseURL+AuthServiceFederatedSignInProcedure, opts...),
		getCurrentUser:  connect.NewClient[api.GetCurrentUserRequest, api.GetCurrentUserResponse](httpClient, baseURL+AuthServiceGetCurrentUserProcedure, opts...),
	}
}

type authServiceClient struct {
	register        *connect.Client[api.RegisterRequest, api.RegisterResponse]
	login           *connect.Client[api.LoginRequest, api.LoginResponse]
	federatedSignIn *connect.Client[api.FederatedSignInRequest, api.FederatedSignInResponse]
	getCurrentUser  *connect.Client[api.GetCurrentUserRequest, api.GetCurrentUserResponse]
}

func (c *authServiceClient) Register(ctx context.Context, req *connect.Request[api.RegisterRequest]) (*connect.Response[api.RegisterResponse], error) {
	return c.register.CallUnary(ctx, req)
}

func (c *authServiceClient) Login(ctx context.Context, req *connect.Request[api.LoginRequest]) (*connect.Response[api.LoginResponse], error) {
	return c.login.CallUnary(ctx, req)
}

func (c *authServiceClient) FederatedSignIn(ctx context.Context, req *connect.Request[api.FederatedSignInRequest]) (*connect.Response[api.FederatedSignInResponse], error) {
	return c.federatedSignIn.CallUnary(ctx, req)
}

func (c *authServiceClient) GetCurrentUser(ctx context.Context, req *connect.Request[api.GetCurrentUserRequest]) (*connect.Response[api.GetCurrentUserResponse], error) {
	return c.getCurrentUser.CallUnary(ctx, req)
}

// UserServiceHandler serves profiles and per-user trip lists.
type UserServiceHandler interface {
	GetUser(context.Context, *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
	ListUserTrips(context.Context, *connect.Request[api.ListUserTripsRequest]) (*connect.Response[api.ListUserTripsResponse], error)
}

// NewUserServiceHandler returns the path to mount the service on and its handler.
func NewUserServiceHandler(svc UserServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(UserServiceGetUserProcedure, connect.NewUnaryHandler(UserServiceGetUserProcedure, svc.GetUser, opts...))
	mux.Handle(UserServiceUpdateProfileProcedure, connect.NewUnaryHandler(UserServiceUpdateProfileProcedure, svc.UpdateProfile, opts...))
	mux.Handle(UserServiceListUserTripsProcedure, connect.NewUnaryHandler(UserServiceListUserTripsProcedure, svc.ListUserTrips, opts...))
	return "/" + UserServiceName + "/", mux
}

// UserServiceClient calls UserService.
type UserServiceClient interface {
	GetUser(context.Context, *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error)
	UpdateProfile(context.Context, *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error)
	ListUserTrips(context.Context, *connect.Request[api.ListUserTripsRequest]) (*connect.Response[api.ListUserTripsResponse], error)
}

// NewUserServiceClient creates a client for the service at baseURL.
func NewUserServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) UserServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &userServiceClient{
		getUser:       connect.NewClient[api.GetUserRequest, api.GetUserResponse](httpClient, baseURL+UserServiceGetUserProcedure, opts...),
		updateProfile: connect.NewClient[api.UpdateProfileRequest, api.UpdateProfileResponse](httpClient, baseURL+UserServiceUpdateProfileProcedure, opts...),
		listUserTrips: connect.NewClient[api.ListUserTripsRequest, api.ListUserTripsResponse](httpClient, baseURL+UserServiceListUserTripsProcedure, opts...),
	}
}

type userServiceClient struct {
	getUser       *connect.Client[api.GetUserRequest, api.GetUserResponse]
	updateProfile *connect.Client[api.UpdateProfileRequest, api.UpdateProfileResponse]
	listUserTrips *connect.Client[api.ListUserTripsRequest, api.ListUserTripsResponse]
}

func (c *userServiceClient) GetUser(ctx context.Context, req *connect.Request[api.GetUserRequest]) (*connect.Response[api.GetUserResponse], error) {
	return c.getUser.CallUnary(ctx, req)
}

func (c *userServiceClient) UpdateProfile(ctx context.Context, req *connect.Request[api.UpdateProfileRequest]) (*connect.Response[api.UpdateProfileResponse], error) {
	return c.updateProfile.CallUnary(ctx, req)
}

func (c *userServiceClient) ListUserTrips(ctx context.Context, req *connect.Request[api.ListUserTripsRequest]) (*connect.Response[api.ListUserTripsResponse], error) {
	return c.listUserTrips.CallUnary(ctx, req)
}

// TripServiceHandler serves trips. Mutations are restricted to the owner.
type TripServiceHandler interface {
	CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error)
	UpdateTrip(context.Context, *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error)
	DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error)
	ListInterests(context.Context, *connect.Request[api.ListInterestsRequest]) (*connect.Response[api.ListInterestsResponse], error)
	AddTripImage(context.Context, *connect.Request[api.AddTripImageRequest]) (*connect.Response[api.AddTripImageResponse], error)
	ListTripImages(context.Context, *connect.Request[api.ListTripImagesRequest]) (*connect.Response[api.ListTripImagesResponse], error)
}

// NewTripServiceHandler returns the path to mount the service on and its handler.
func NewTripServiceHandler(svc TripServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(TripServiceCreateTripProcedure, connect.NewUnaryHandler(TripServiceCreateTripProcedure, svc.CreateTrip, opts...))
	mux.Handle(TripServiceGetTripProcedure, connect.NewUnaryHandler(TripServiceGetTripProcedure, svc.GetTrip, opts...))
	mux.Handle(TripServiceUpdateTripProcedure, connect.NewUnaryHandler(TripServiceUpdateTripProcedure, svc.UpdateTrip, opts...))
	mux.Handle(TripServiceDeleteTripProcedure, connect.NewUnaryHandler(TripServiceDeleteTripProcedure, svc.DeleteTrip, opts...))
	mux.Handle(TripServiceListInterestsProcedure, connect.NewUnaryHandler(TripServiceListInterestsProcedure, svc.ListInterests, opts...))
	mux.Handle(TripServiceAddTripImageProcedure, connect.NewUnaryHandler(TripServiceAddTripImageProcedure, svc.AddTripImage, opts...))
	mux.Handle(TripServiceListTripImagesProcedure, connect.NewUnaryHandler(TripServiceListTripImagesProcedure, svc.ListTripImages, opts...))
	return "/" + TripServiceName + "/", mux
}

// TripServiceClient calls TripService.
type TripServiceClient interface {
	CreateTrip(context.Context, *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error)
	UpdateTrip(context.Context, *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error)
	DeleteTrip(context.Context, *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error)
	ListInterests(context.Context, *connect.Request[api.ListInterestsRequest]) (*connect.Response[api.ListInterestsResponse], error)
	AddTripImage(context.Context, *connect.Request[api.AddTripImageRequest]) (*connect.Response[api.AddTripImageResponse], error)
	ListTripImages(context.Context, *connect.Request[api.ListTripImagesRequest]) (*connect.Response[api.ListTripImagesResponse], error)
}

// NewTripServiceClient creates a client for the service at baseURL.
func NewTripServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TripServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &tripServiceClient{
		createTrip:     connect.NewClient[api.CreateTripRequest, api.CreateTripResponse](httpClient, baseURL+TripServiceCreateTripProcedure, opts...),
		getTrip:        connect.NewClient[api.GetTripRequest, api.GetTripResponse](httpClient, baseURL+TripServiceGetTripProcedure, opts...),
		updateTrip:     connect.NewClient[api.UpdateTripRequest, api.UpdateTripResponse](httpClient, baseURL+TripServiceUpdateTripProcedure, opts...),
		deleteTrip:     connect.NewClient[api.DeleteTripRequest, api.DeleteTripResponse](httpClient, baseURL+TripServiceDeleteTripProcedure, opts...),
		listInterests:  connect.NewClient[api.ListInterestsRequest, api.ListInterestsResponse](httpClient, baseURL+TripServiceListInterestsProcedure, opts...),
		addTripImage:   connect.NewClient[api.AddTripImageRequest, api.AddTripImageResponse](httpClient, baseURL+TripServiceAddTripImageProcedure, opts...),
		listTripImages: connect.NewClient[api.ListTripImagesRequest, api.ListTripImagesResponse](httpClient, baseURL+TripServiceListTripImagesProcedure, opts...),
	}
}

type tripServiceClient struct {
	createTrip     *connect.Client[api.CreateTripRequest, api.CreateTripResponse]
	getTrip        *connect.Client[api.GetTripRequest, api.GetTripResponse]
	updateTrip     *connect.Client[api.UpdateTripRequest, api.UpdateTripResponse]
	deleteTrip     *connect.Client[api.DeleteTripRequest, api.DeleteTripResponse]
	listInterests  *connect.Client[api.ListInterestsRequest, api.ListInterestsResponse]
	addTripImage   *connect.Client[api.AddTripImageRequest, api.AddTripImageResponse]
	listTripImages *connect.Client[api.ListTripImagesRequest, api.ListTripImagesResponse]
}

func (c *tripServiceClient) CreateTrip(ctx context.Context, req *connect.Request[api.CreateTripRequest]) (*connect.Response[api.CreateTripResponse], error) {
	return c.createTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) GetTrip(ctx context.Context, req *connect.Request[api.GetTripRequest]) (*connect.Response[api.GetTripResponse], error) {
	return c.getTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) UpdateTrip(ctx context.Context, req *connect.Request[api.UpdateTripRequest]) (*connect.Response[api.UpdateTripResponse], error) {
	return c.updateTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) DeleteTrip(ctx context.Context, req *connect.Request[api.DeleteTripRequest]) (*connect.Response[api.DeleteTripResponse], error) {
	return c.deleteTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) ListInterests(ctx context.Context, req *connect.Request[api.ListInterestsRequest]) (*connect.Response[api.ListInterestsResponse], error) {
	return c.listInterests.CallUnary(ctx, req)
}

func (c *tripServiceClient) AddTripImage(ctx context.Context, req *connect.Request[api.AddTripImageRequest]) (*connect.Response[api.AddTripImageResponse], error) {
	return c.addTripImage.CallUnary(ctx, req)
}

func (c *tripServiceClient) ListTripImages(ctx context.Context, req *connect.Request[api.ListTripImagesRequest]) (*connect.Response[api.ListTripImagesResponse], error) {
	return c.listTripImages.CallUnary(ctx, req)
}

// MembershipServiceHandler serves join requests and their decisions.
type MembershipServiceHandler interface {
	RequestJoin(context.Context, *connect.Request[api.RequestJoinRequest]) (*connect.Response[api.RequestJoinResponse], error)
	UpdateMembershipStatus(context.Context, *connect.Request[api.UpdateMembershipStatusRequest]) (*connect.Response[api.UpdateMembershipStatusResponse], error)
	ListTripRequests(context.Context, *connect.Request[api.ListTripRequestsRequest]) (*connect.Response[api.ListTripRequestsResponse], error)
}

// NewMembershipServiceHandler returns the path to mount the service on and its handler.
func NewMembershipServiceHandler(svc MembershipServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(MembershipServiceRequestJoinProcedure, connect.NewUnaryHandler(MembershipServiceRequestJoinProcedure, svc.RequestJoin, opts...))
	mux.Handle(MembershipServiceUpdateMembershipStatusProcedure, connect.NewUnaryHandler(MembershipServiceUpdateMembershipStatusProcedure, svc.UpdateMembershipStatus, opts...))
	mux.Handle(MembershipServiceListTripRequestsProcedure, connect.NewUnaryHandler(MembershipServiceListTripRequestsProcedure, svc.ListTripRequests, opts...))
	return "/" + MembershipServiceName + "/", mux
}

// MembershipServiceClient calls MembershipService.
type MembershipServiceClient interface {
	RequestJoin(context.Context, *connect.Request[api.RequestJoinRequest]) (*connect.Response[api.RequestJoinResponse], error)
	UpdateMembershipStatus(context.Context, *connect.Request[api.UpdateMembershipStatusRequest]) (*connect.Response[api.UpdateMembershipStatusResponse], error)
	ListTripRequests(context.Context, *connect.Request[api.ListTripRequestsRequest]) (*connect.Response[api.ListTripRequestsResponse], error)
}

// NewMembershipServiceClient creates a client for the service at baseURL.
func NewMembershipServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) MembershipServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &membershipServiceClient{
		requestJoin:            connect.NewClient[api.RequestJoinRequest, api.RequestJoinResponse](httpClient, baseURL+MembershipServiceRequestJoinProcedure, opts...),
		updateMembershipStatus: connect.NewClient[api.UpdateMembershipStatusRequest, api.UpdateMembershipStatusResponse](httpClient, baseURL+MembershipServiceUpdateMembershipStatusProcedure, opts...),
		listTripRequests:       connect.NewClient[api.ListTripRequestsRequest, api.ListTripRequestsResponse](httpClient, baseURL+MembershipServiceListTripRequestsProcedure, opts...),
	}
}

type membershipServiceClient struct {
	requestJoin            *connect.Client[api.RequestJoinRequest, api.RequestJoinResponse]
	updateMembershipStatus *connect.Client[api.UpdateMembershipStatusRequest, api.UpdateMembershipStatusResponse]
	listTripRequests       *connect.Client[api.ListTripRequestsRequest, api.ListTripRequestsResponse]
}

func (c *membershipServiceClient) RequestJoin(ctx context.Context, req *connect.Request[api.RequestJoinRequest]) (*connect.Response[api.RequestJoinResponse], error) {
	return c.requestJoin.CallUnary(ctx, req)
}

func (c *membershipServiceClient) UpdateMembershipStatus(ctx context.Context, req *connect.Request[api.UpdateMembershipStatusRequest]) (*connect.Response[api.UpdateMembershipStatusResponse], error) {
	return c.updateMembershipStatus.CallUnary(ctx, req)
}

func (c *membershipServiceClient) ListTripRequests(ctx context.Context, req *connect.Request[api.ListTripRequestsRequest]) (*connect.Response[api.ListTripRequestsResponse], error) {
	return c.listTripRequests.CallUnary(ctx, req)
}

// PostServiceHandler serves trip posts.
type PostServiceHandler interface {
	CreatePost(context.Context, *connect.Request[api.CreatePostRequest]) (*connect.Response[api.CreatePostResponse], error)
	ListTripPosts(context.Context, *connect.Request[api.ListTripPostsRequest]) (*connect.Response[api.ListTripPostsResponse], error)
}

// NewPostServiceHandler returns the path to mount the service on and its handler.
func NewPostServiceHandler(svc PostServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(PostServiceCreatePostProcedure, connect.NewUnaryHandler(PostServiceCreatePostProcedure, svc.CreatePost, opts...))
	mux.Handle(PostServiceListTripPostsProcedure, connect.NewUnaryHandler(PostServiceListTripPostsProcedure, svc.ListTripPosts, opts...))
	return "/" + PostServiceName + "/", mux
}

// PostServiceClient calls PostService.
type PostServiceClient interface {
	CreatePost(context.Context, *connect.Request[api.CreatePostRequest]) (*connect.Response[api.CreatePostResponse], error)
	ListTripPosts(context.Context, *connect.Request[api.ListTripPostsRequest]) (*connect.Response[api.ListTripPostsResponse], error)
}

// NewPostServiceClient creates a client for the service at baseURL.
func NewPostServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) PostServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &postServiceClient{
		createPost:    connect.NewClient[api.CreatePostRequest, api.CreatePostResponse](httpClient, baseURL+PostServiceCreatePostProcedure, opts...),
		listTripPosts: connect.NewClient[api.ListTripPostsRequest, api.ListTripPostsResponse](httpClient, baseURL+PostServiceListTripPostsProcedure, opts...),
	}
}

type postServiceClient struct {
	createPost    *connect.Client[api.CreatePostRequest, api.CreatePostResponse]
	listTripPosts *connect.Client[api.ListTripPostsRequest, api.ListTripPostsResponse]
}

func (c *postServiceClient) CreatePost(ctx context.Context, req *connect.Request[api.CreatePostRequest]) (*connect.Response[api.CreatePostResponse], error) {
	return c.createPost.CallUnary(ctx, req)
}

func (c *postServiceClient) ListTripPosts(ctx context.Context, req *connect.Request[api.ListTripPostsRequest]) (*connect.Response[api.ListTripPostsResponse], error) {
	return c.listTripPosts.CallUnary(ctx, req)
}

// ReviewServiceHandler serves reviews and review scores.
type ReviewServiceHandler interface {
	CreateReview(context.Context, *connect.Request[api.CreateReviewRequest]) (*connect.Response[api.CreateReviewResponse], error)
	SetTripUserRating(context.Context, *connect.Request[api.SetTripUserRatingRequest]) (*connect.Response[api.SetTripUserRatingResponse], error)
}

// NewReviewServiceHandler returns the path to mount the service on and its handler.
func NewReviewServiceHandler(svc ReviewServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(ReviewServiceCreateReviewProcedure, connect.NewUnaryHandler(ReviewServiceCreateReviewProcedure, svc.CreateReview, opts...))
	mux.Handle(ReviewServiceSetTripUserRatingProcedure, connect.NewUnaryHandler(ReviewServiceSetTripUserRatingProcedure, svc.SetTripUserRating, opts...))
	return "/" + ReviewServiceName + "/", mux
}

// ReviewServiceClient calls ReviewService.
type ReviewServiceClient interface {
	CreateReview(context.Context, *connect.Request[api.CreateReviewRequest]) (*connect.Response[api.CreateReviewResponse], error)
	SetTripUserRating(context.Context, *connect.Request[api.SetTripUserRatingRequest]) (*connect.Response[api.SetTripUserRatingResponse], error)
}

// NewReviewServiceClient creates a client for the service at baseURL.
func NewReviewServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) ReviewServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &reviewServiceClient{
		createReview:      connect.NewClient[api.CreateReviewRequest, api.CreateReviewResponse](httpClient, baseURL+ReviewServiceCreateReviewProcedure, opts...),
		setTripUserRating: connect.NewClient[api.SetTripUserRatingRequest, api.SetTripUserRatingResponse](httpClient, baseURL+ReviewServiceSetTripUserRatingProcedure, opts...),
	}
}

type reviewServiceClient struct {
	createReview      *connect.Client[api.CreateReviewRequest, api.CreateReviewResponse]
	setTripUserRating *connect.Client[api.SetTripUserRatingRequest, api.SetTripUserRatingResponse]
}

func (c *reviewServiceClient) CreateReview(ctx context.Context, req *connect.Request[api.CreateReviewRequest]) (*connect.Response[api.CreateReviewResponse], error) {
	return c.createReview.CallUnary(ctx, req)
}

func (c *reviewServiceClient) SetTripUserRating(ctx context.Context, req *connect.Request[api.SetTripUserRatingRequest]) (*connect.Response[api.SetTripUserRatingResponse], error) {
	return c.setTripUserRating.CallUnary(ctx, req)
}

// NotificationServiceHandler serves the caller's notifications.
type NotificationServiceHandler interface {
	ListNotifications(context.Context, *connect.Request[api.ListNotificationsRequest]) (*connect.Response[api.ListNotificationsResponse], error)
	MarkNotificationRead(context.Context, *connect.Request[api.MarkNotificationReadRequest]) (*connect.Response[api.MarkNotificationReadResponse], error)
}

// NewNotificationServiceHandler returns the path to mount the service on and its handler.
func NewNotificationServiceHandler(svc NotificationServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = handlerOptions(opts)
	mux := http.NewServeMux()
	mux.Handle(NotificationServiceListNotificationsProcedure, connect.NewUnaryHandler(NotificationServiceListNotificationsProcedure, svc.ListNotifications, opts...))
	mux.Handle(NotificationServiceMarkNotificationReadProcedure, connect.NewUnaryHandler(NotificationServiceMarkNotificationReadProcedure, svc.MarkNotificationRead, opts...))
	return "/" + NotificationServiceName + "/", mux
}

// NotificationServiceClient calls NotificationService.
type NotificationServiceClient interface {
	ListNotifications(context.Context, *connect.Request[api.ListNotificationsRequest]) (*connect.Response[api.ListNotificationsResponse], error)
	MarkNotificationRead(context.Context, *connect.Request[api.MarkNotificationReadRequest]) (*connect.Response[api.MarkNotificationReadResponse], error)
}

// NewNotificationServiceClient creates a client for the service at baseURL.
func NewNotificationServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) NotificationServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = clientOptions(opts)
	return &notificationServiceClient{
		listNotifications:    connect.NewClient[api.ListNotificationsRequest, api.ListNotificationsResponse](httpClient, baseURL+NotificationServiceListNotificationsProcedure, opts...),
		markNotificationRead: connect.NewClient[api.MarkNotificationReadRequest, api.MarkNotificationReadResponse](httpClient, baseURL+NotificationServiceMarkNotificationReadProcedure, opts...),
	}
}

type notificationServiceClient struct {
	listNotifications    *connect.Client[api.ListNotificationsRequest, api.ListNotificationsResponse]
	markNotificationRead *connect.Client[api.MarkNotificationReadRequest, api.MarkNotificationReadResponse]
}

func (c *notificationServiceClient) ListNotifications(ctx context.Context, req *connect.Request[api.ListNotificationsRequest]) (*connect.Response[api.ListNotificationsResponse], error) {
	return c.listNotifications.CallUnary(ctx, req)
}

func (c *notificationServiceClient) MarkNotificationRead(ctx context.Context, req *connect.Request[api.MarkNotificationReadRequest]) (*connect.Response[api.MarkNotificationReadResponse], error) {
	return c.markNotificationRead.CallUnary(ctx, req)
}
