package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/travelbuddy/internal/auth"
	"github.com/mmynk/travelbuddy/internal/middleware"
	"github.com/mmynk/travelbuddy/internal/storage/blob"
	"github.com/mmynk/travelbuddy/internal/storage/sqlite"
	"github.com/mmynk/travelbuddy/internal/travel"
	"github.com/mmynk/travelbuddy/pkg/api"
	"github.com/mmynk/travelbuddy/pkg/api/apiconnect"
)

const testFederationKey = "gateway-key"

// clients bundles one client per service.
type clients struct {
	auth          apiconnect.AuthServiceClient
	users         apiconnect.UserServiceClient
	trips         apiconnect.TripServiceClient
	memberships   apiconnect.MembershipServiceClient
	posts         apiconnect.PostServiceClient
	reviews       apiconnect.ReviewServiceClient
	notifications apiconnect.NotificationServiceClient
}

// setupTestServer starts every service against a temporary database.
func setupTestServer(t *testing.T) *clients {
	t.Helper()

	store, err := sqlite.New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}

	blobs, err := blob.NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("failed to create blob store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	core := travel.NewService(store, travel.WithLogger(logger), travel.WithBlobStore(blobs))
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	interceptors := connect.WithInterceptors(
		middleware.RequireAuth(jwtManager,
			apiconnect.AuthServiceRegisterProcedure,
			apiconnect.AuthServiceLoginProcedure,
			apiconnect.AuthServiceFederatedSignInProcedure,
		),
		middleware.LoggingInterceptor(logger),
	)

	mux := http.NewServeMux()
	mux.Handle(apiconnect.NewAuthServiceHandler(NewAuthService(
		auth.NewPasswordAuthenticator(store),
		auth.NewFederatedAuthenticator(store),
		testFederationKey,
		jwtManager,
		core,
		logger,
	), interceptors))
	mux.Handle(apiconnect.NewUserServiceHandler(NewUserService(core, logger), interceptors))
	mux.Handle(apiconnect.NewTripServiceHandler(NewTripService(core, logger), interceptors))
	mux.Handle(apiconnect.NewMembershipServiceHandler(NewMembershipService(core, logger), interceptors))
	mux.Handle(apiconnect.NewPostServiceHandler(NewPostService(core, logger), interceptors))
	mux.Handle(apiconnect.NewReviewServiceHandler(NewReviewService(core, logger), interceptors))
	mux.Handle(apiconnect.NewNotificationServiceHandler(NewNotificationService(core, logger), interceptors))

	server := httptest.NewServer(mux)
	t.Cleanup(func() {
		server.Close()
		store.Close()
	})

	return &clients{
		auth:          apiconnect.NewAuthServiceClient(http.DefaultClient, server.URL),
		users:         apiconnect.NewUserServiceClient(http.DefaultClient, server.URL),
		trips:         apiconnect.NewTripServiceClient(http.DefaultClient, server.URL),
		memberships:   apiconnect.NewMembershipServiceClient(http.DefaultClient, server.URL),
		posts:         apiconnect.NewPostServiceClient(http.DefaultClient, server.URL),
		reviews:       apiconnect.NewReviewServiceClient(http.DefaultClient, server.URL),
		notifications: apiconnect.NewNotificationServiceClient(http.DefaultClient, server.URL),
	}
}

// session is a registered user and their token.
type session struct {
	user  *api.User
	token string
}

func register(t *testing.T, c *clients, username, email string) session {
	t.Helper()
	resp, err := c.auth.Register(context.Background(), connect.NewRequest(&api.RegisterRequest{
		Username: username,
		Email:    email,
		Password: "password123",
	}))
	if err != nil {
		t.Fatalf("Register(%s) failed: %v", username, err)
	}
	return session{user: resp.Msg.User, token: resp.Msg.Token}
}

// as attaches the session token to a request.
func as[T any](s session, msg *T) *connect.Request[T] {
	req := connect.NewRequest(msg)
	req.Header().Set("Authorization", "Bearer "+s.token)
	return req
}

func assertCode(t *testing.T, err error, want connect.Code) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v error, got nil", want)
	}
	if got := connect.CodeOf(err); got != want {
		t.Fatalf("expected code %v, got %v (%v)", want, got, err)
	}
}

func createTrip(t *testing.T, c *clients, owner session, location string) *api.Trip {
	t.Helper()
	resp, err := c.trips.CreateTrip(context.Background(), as(owner, &api.CreateTripRequest{
		Location:  location,
		StartDate: "2026-08-01",
		EndDate:   "2026-08-10",
	}))
	if err != nil {
		t.Fatalf("CreateTrip(%s) failed: %v", location, err)
	}
	return resp.Msg.Trip
}

func TestMembershipWorkflow(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	alice := register(t, c, "alice", "a@x.com")
	bob := register(t, c, "bob", "b@x.com")
	carol := register(t, c, "carol", "c@x.com")

	trip := createTrip(t, c, alice, "Patagonia")
	carolsTrip := createTrip(t, c, carol, "Iceland")

	joinResp, err := c.memberships.RequestJoin(ctx, as(bob, &api.RequestJoinRequest{TripID: trip.ID, Status: "Pending"}))
	if err != nil {
		t.Fatalf("RequestJoin failed: %v", err)
	}
	m := joinResp.Msg.Membership
	if m.UserID != bob.user.ID || m.TripID != trip.ID || m.Status != "Pending" {
		t.Fatalf("unexpected membership: %+v", m)
	}

	updResp, err := c.memberships.UpdateMembershipStatus(ctx, as(alice, &api.UpdateMembershipStatusRequest{
		MembershipID: m.ID,
		Status:       "Approved",
	}))
	if err != nil {
		t.Fatalf("UpdateMembershipStatus failed: %v", err)
	}
	if updResp.Msg.Membership.Status != "Approved" {
		t.Errorf("status: expected Approved, got %s", updResp.Msg.Membership.Status)
	}

	notes, err := c.notifications.ListNotifications(ctx, as(bob, &api.ListNotificationsRequest{}))
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(notes.Msg.Notifications) != 1 || notes.Msg.Notifications[0].Status != "unread" {
		t.Fatalf("expected one unread notification for bob, got %+v", notes.Msg.Notifications)
	}

	again, err := c.memberships.RequestJoin(ctx, as(bob, &api.RequestJoinRequest{TripID: trip.ID, Status: "Pending"}))
	if err != nil {
		t.Fatalf("second RequestJoin failed: %v", err)
	}
	if again.Msg.Membership.ID != m.ID || again.Msg.Membership.Status != "Pending" {
		t.Errorf("expected membership %d back to Pending, got %+v", m.ID, again.Msg.Membership)
	}

	reqs, err := c.memberships.ListTripRequests(ctx, as(alice, &api.ListTripRequestsRequest{TripID: trip.ID}))
	if err != nil {
		t.Fatalf("ListTripRequests failed: %v", err)
	}
	if len(reqs.Msg.Requests) != 2 {
		t.Errorf("expected organizer plus bob, got %d requests", len(reqs.Msg.Requests))
	}

	_, err = c.trips.DeleteTrip(ctx, as(alice, &api.DeleteTripRequest{TripID: carolsTrip.ID}))
	assertCode(t, err, connect.CodePermissionDenied)

	if _, err := c.trips.GetTrip(ctx, as(alice, &api.GetTripRequest{TripID: carolsTrip.ID})); err != nil {
		t.Errorf("trip should survive a forbidden delete: %v", err)
	}
}

func TestUpdateMembershipStatusErrors(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	alice := register(t, c, "alice", "a@x.com")
	bob := register(t, c, "bob", "b@x.com")
	trip := createTrip(t, c, alice, "Kyoto")

	joinResp, err := c.memberships.RequestJoin(ctx, as(bob, &api.RequestJoinRequest{TripID: trip.ID}))
	if err != nil {
		t.Fatalf("RequestJoin failed: %v", err)
	}
	m := joinResp.Msg.Membership

	tests := []struct {
		name  string
		actor session
		req   *api.UpdateMembershipStatusRequest
		want  connect.Code
	}{
		{"nonexistent membership", alice, &api.UpdateMembershipStatusRequest{MembershipID: 9999, Status: "Approved"}, connect.CodeNotFound},
		{"unknown pair", alice, &api.UpdateMembershipStatusRequest{UserID: 9999, TripID: trip.ID, Status: "Approved"}, connect.CodeNotFound},
		{"no target", alice, &api.UpdateMembershipStatusRequest{Status: "Approved"}, connect.CodeInvalidArgument},
		{"missing status", alice, &api.UpdateMembershipStatusRequest{MembershipID: m.ID}, connect.CodeInvalidArgument},
		{"unknown status", alice, &api.UpdateMembershipStatusRequest{MembershipID: m.ID, Status: "Perhaps"}, connect.CodeInvalidArgument},
		{"member approving self", bob, &api.UpdateMembershipStatusRequest{MembershipID: m.ID, Status: "Approved"}, connect.CodePermissionDenied},
		{"organizer leaving own trip", alice, &api.UpdateMembershipStatusRequest{UserID: alice.user.ID, TripID: trip.ID, Status: "Cancelled"}, connect.CodePermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.memberships.UpdateMembershipStatus(ctx, as(tt.actor, tt.req))
			assertCode(t, err, tt.want)
		})
	}

	t.Run("decided cannot revert", func(t *testing.T) {
		if _, err := c.memberships.UpdateMembershipStatus(ctx, as(alice, &api.UpdateMembershipStatusRequest{
			UserID: bob.user.ID, TripID: trip.ID, Status: "Rejected",
		})); err != nil {
			t.Fatalf("reject failed: %v", err)
		}
		_, err := c.memberships.UpdateMembershipStatus(ctx, as(alice, &api.UpdateMembershipStatusRequest{
			MembershipID: m.ID, Status: "Approved",
		}))
		assertCode(t, err, connect.CodeFailedPrecondition)
	})
}

func TestAuthRequired(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	_, err := c.trips.CreateTrip(ctx, connect.NewRequest(&api.CreateTripRequest{
		Location: "Nowhere", StartDate: "2026-01-01", EndDate: "2026-01-02",
	}))
	assertCode(t, err, connect.CodeUnauthenticated)

	req := connect.NewRequest(&api.GetCurrentUserRequest{})
	req.Header().Set("Authorization", "Bearer not-a-token")
	_, err = c.auth.GetCurrentUser(ctx, req)
	assertCode(t, err, connect.CodeUnauthenticated)
}

func TestRegisterAndLogin(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	alice := register(t, c, "alice", "alice@x.com")
	if alice.token == "" || alice.user.ID == 0 {
		t.Fatalf("expected token and user, got %+v", alice)
	}

	t.Run("duplicates", func(t *testing.T) {
		_, err := c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Username: "alice", Email: "other@x.com", Password: "password123",
		}))
		assertCode(t, err, connect.CodeAlreadyExists)

		_, err = c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Username: "alice2", Email: "alice@x.com", Password: "password123",
		}))
		assertCode(t, err, connect.CodeAlreadyExists)
	})

	t.Run("validation", func(t *testing.T) {
		_, err := c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Username: "bob", Email: "not-an-email", Password: "password123",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)

		_, err = c.auth.Register(ctx, connect.NewRequest(&api.RegisterRequest{
			Username: "bob", Email: "bob@x.com", Password: "short",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("login", func(t *testing.T) {
		resp, err := c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Email: "alice@x.com", Password: "password123"}))
		if err != nil {
			t.Fatalf("Login failed: %v", err)
		}
		me, err := c.auth.GetCurrentUser(ctx, as(session{token: resp.Msg.Token}, &api.GetCurrentUserRequest{}))
		if err != nil {
			t.Fatalf("GetCurrentUser failed: %v", err)
		}
		if me.Msg.User.ID != alice.user.ID {
			t.Errorf("current user %d, want %d", me.Msg.User.ID, alice.user.ID)
		}

		_, err = c.auth.Login(ctx, connect.NewRequest(&api.LoginRequest{Email: "alice@x.com", Password: "wrong-password"}))
		assertCode(t, err, connect.CodeUnauthenticated)
	})
}

func TestFederatedSignIn(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()

	signIn := func(key string) (*connect.Response[api.FederatedSignInResponse], error) {
		req := connect.NewRequest(&api.FederatedSignInRequest{Email: "gina@mail.test", Name: "Gina"})
		if key != "" {
			req.Header().Set(FederationKeyHeader, key)
		}
		return c.auth.FederatedSignIn(ctx, req)
	}

	_, err := signIn("")
	assertCode(t, err, connect.CodeUnauthenticated)
	_, err = signIn("wrong")
	assertCode(t, err, connect.CodeUnauthenticated)

	first, err := signIn(testFederationKey)
	if err != nil {
		t.Fatalf("FederatedSignIn failed: %v", err)
	}
	if !first.Msg.Created || !first.Msg.User.Federated || first.Msg.User.Username != "gina" {
		t.Errorf("unexpected first sign-in: %+v", first.Msg)
	}

	second, err := signIn(testFederationKey)
	if err != nil {
		t.Fatalf("second FederatedSignIn failed: %v", err)
	}
	if second.Msg.Created || second.Msg.User.ID != first.Msg.User.ID {
		t.Errorf("expected existing account, got %+v", second.Msg)
	}
}

func TestTrips(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	alice := register(t, c, "alice", "a@x.com")
	bob := register(t, c, "bob", "b@x.com")

	interests, err := c.trips.ListInterests(ctx, as(alice, &api.ListInterestsRequest{}))
	if err != nil {
		t.Fatalf("ListInterests failed: %v", err)
	}
	if len(interests.Msg.Interests) == 0 {
		t.Fatal("expected seeded interests")
	}
	tag := interests.Msg.Interests[0].ID

	resp, err := c.trips.CreateTrip(ctx, as(alice, &api.CreateTripRequest{
		Location:    "Dolomites",
		StartDate:   "2026-07-01",
		EndDate:     "2026-07-09",
		InterestIDs: []int64{tag},
	}))
	if err != nil {
		t.Fatalf("CreateTrip failed: %v", err)
	}
	trip := resp.Msg.Trip
	if trip.CreatedBy != alice.user.ID || len(trip.InterestIDs) != 1 {
		t.Errorf("unexpected trip: %+v", trip)
	}

	t.Run("end before start", func(t *testing.T) {
		_, err := c.trips.CreateTrip(ctx, as(alice, &api.CreateTripRequest{
			Location: "Alps", StartDate: "2026-07-09", EndDate: "2026-07-01",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := c.trips.CreateTrip(ctx, as(alice, &api.CreateTripRequest{
			Location: "Alps", StartDate: "July 1st", EndDate: "2026-07-01",
		}))
		assertCode(t, err, connect.CodeInvalidArgument)
	})

	t.Run("non-owner update", func(t *testing.T) {
		_, err := c.trips.UpdateTrip(ctx, as(bob, &api.UpdateTripRequest{
			TripID: trip.ID, Location: "Elsewhere", StartDate: "2026-07-01", EndDate: "2026-07-02",
		}))
		assertCode(t, err, connect.CodePermissionDenied)
	})

	t.Run("owner update", func(t *testing.T) {
		upd, err := c.trips.UpdateTrip(ctx, as(alice, &api.UpdateTripRequest{
			TripID: trip.ID, Location: "Dolomiti", StartDate: "2026-07-01", EndDate: "2026-07-12",
		}))
		if err != nil {
			t.Fatalf("UpdateTrip failed: %v", err)
		}
		if upd.Msg.Trip.Location != "Dolomiti" || len(upd.Msg.Trip.InterestIDs) != 0 {
			t.Errorf("unexpected trip after update: %+v", upd.Msg.Trip)
		}
	})

	t.Run("trip images", func(t *testing.T) {
		_, err := c.trips.AddTripImage(ctx, as(bob, &api.AddTripImageRequest{TripID: trip.ID, Image: []byte("png"), Filename: "peak.png"}))
		assertCode(t, err, connect.CodePermissionDenied)

		_, err = c.trips.AddTripImage(ctx, as(alice, &api.AddTripImageRequest{TripID: trip.ID, Image: []byte("png"), Filename: "peak.txt"}))
		assertCode(t, err, connect.CodeInvalidArgument)

		added, err := c.trips.AddTripImage(ctx, as(alice, &api.AddTripImageRequest{TripID: trip.ID, Image: []byte("png"), Filename: "peak.png"}))
		if err != nil {
			t.Fatalf("AddTripImage failed: %v", err)
		}
		if added.Msg.Image.TripID != trip.ID || added.Msg.Image.ImagePath == "" {
			t.Errorf("unexpected image: %+v", added.Msg.Image)
		}

		list, err := c.trips.ListTripImages(ctx, as(bob, &api.ListTripImagesRequest{TripID: trip.ID}))
		if err != nil {
			t.Fatalf("ListTripImages failed: %v", err)
		}
		if len(list.Msg.Images) != 1 || list.Msg.Images[0].ID != added.Msg.Image.ID {
			t.Errorf("unexpected images: %+v", list.Msg.Images)
		}
	})

	t.Run("user trips", func(t *testing.T) {
		list, err := c.users.ListUserTrips(ctx, as(alice, &api.ListUserTripsRequest{}))
		if err != nil {
			t.Fatalf("ListUserTrips failed: %v", err)
		}
		if len(list.Msg.Trips) != 1 || list.Msg.Trips[0].Role != "organizer" {
			t.Errorf("unexpected trips: %+v", list.Msg.Trips)
		}

		_, err = c.users.ListUserTrips(ctx, as(alice, &api.ListUserTripsRequest{Email: "ghost@x.com"}))
		assertCode(t, err, connect.CodeNotFound)
	})

	t.Run("owner delete", func(t *testing.T) {
		if _, err := c.trips.DeleteTrip(ctx, as(alice, &api.DeleteTripRequest{TripID: trip.ID})); err != nil {
			t.Fatalf("DeleteTrip failed: %v", err)
		}
		_, err := c.trips.GetTrip(ctx, as(alice, &api.GetTripRequest{TripID: trip.ID}))
		assertCode(t, err, connect.CodeNotFound)
	})
}

func TestPostsAndReviews(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	alice := register(t, c, "alice", "a@x.com")
	bob := register(t, c, "bob", "b@x.com")
	trip := createTrip(t, c, alice, "Lisbon")

	_, err := c.posts.CreatePost(ctx, as(bob, &api.CreatePostRequest{TripID: trip.ID, Caption: "hi"}))
	assertCode(t, err, connect.CodePermissionDenied)

	postResp, err := c.posts.CreatePost(ctx, as(alice, &api.CreatePostRequest{TripID: trip.ID, Caption: "Pastéis"}))
	if err != nil {
		t.Fatalf("CreatePost failed: %v", err)
	}
	post := postResp.Msg.Post

	list, err := c.posts.ListTripPosts(ctx, as(bob, &api.ListTripPostsRequest{TripID: trip.ID}))
	if err != nil || len(list.Msg.Posts) != 1 {
		t.Fatalf("ListTripPosts = %v, %v; want one post", list, err)
	}

	reviewee := alice.user.ID
	_, err = c.reviews.CreateReview(ctx, as(bob, &api.CreateReviewRequest{PostID: post.ID, RevieweeID: &reviewee, Rating: 1}))
	assertCode(t, err, connect.CodePermissionDenied)

	if _, err := c.memberships.RequestJoin(ctx, as(bob, &api.RequestJoinRequest{TripID: trip.ID})); err != nil {
		t.Fatalf("RequestJoin failed: %v", err)
	}
	if _, err := c.memberships.UpdateMembershipStatus(ctx, as(alice, &api.UpdateMembershipStatusRequest{
		UserID: bob.user.ID, TripID: trip.ID, Status: "Approved",
	})); err != nil {
		t.Fatalf("UpdateMembershipStatus failed: %v", err)
	}

	rev, err := c.reviews.CreateReview(ctx, as(bob, &api.CreateReviewRequest{
		PostID: post.ID, RevieweeID: &reviewee, Rating: 4, Comment: "Great host",
	}))
	if err != nil {
		t.Fatalf("CreateReview failed: %v", err)
	}
	if rev.Msg.Review.ReviewerID != bob.user.ID || rev.Msg.Review.TripID == nil || *rev.Msg.Review.TripID != trip.ID {
		t.Errorf("unexpected review: %+v", rev.Msg.Review)
	}

	_, err = c.reviews.CreateReview(ctx, as(bob, &api.CreateReviewRequest{PostID: post.ID, Rating: 5}))
	assertCode(t, err, connect.CodeAlreadyExists)

	_, err = c.reviews.CreateReview(ctx, as(bob, &api.CreateReviewRequest{PostID: 9999, Rating: 5}))
	assertCode(t, err, connect.CodeNotFound)

	_, err = c.reviews.CreateReview(ctx, as(alice, &api.CreateReviewRequest{PostID: post.ID, Rating: 9}))
	assertCode(t, err, connect.CodeInvalidArgument)

	me, err := c.users.GetUser(ctx, as(bob, &api.GetUserRequest{UserID: alice.user.ID}))
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if me.Msg.User.ReviewScore != 4 {
		t.Errorf("review score: expected 4, got %v", me.Msg.User.ReviewScore)
	}

	t.Run("set trip user rating", func(t *testing.T) {
		carol := register(t, c, "carol", "c@x.com")
		_, err := c.reviews.SetTripUserRating(ctx, as(bob, &api.SetTripUserRatingRequest{TripID: trip.ID, UserID: carol.user.ID, Rating: 3}))
		assertCode(t, err, connect.CodeNotFound)

		resp, err := c.reviews.SetTripUserRating(ctx, as(bob, &api.SetTripUserRatingRequest{TripID: trip.ID, UserID: alice.user.ID, Rating: 2}))
		if err != nil {
			t.Fatalf("SetTripUserRating failed: %v", err)
		}
		if resp.Msg.User.ReviewScore != 2 {
			t.Errorf("review score: expected 2, got %v", resp.Msg.User.ReviewScore)
		}
	})
}

func TestNotifications(t *testing.T) {
	c := setupTestServer(t)
	ctx := context.Background()
	alice := register(t, c, "alice", "a@x.com")
	bob := register(t, c, "bob", "b@x.com")
	trip := createTrip(t, c, alice, "Porto")

	if _, err := c.memberships.RequestJoin(ctx, as(bob, &api.RequestJoinRequest{TripID: trip.ID})); err != nil {
		t.Fatalf("RequestJoin failed: %v", err)
	}

	list, err := c.notifications.ListNotifications(ctx, as(alice, &api.ListNotificationsRequest{}))
	if err != nil {
		t.Fatalf("ListNotifications failed: %v", err)
	}
	if len(list.Msg.Notifications) != 1 {
		t.Fatalf("expected the owner to be notified of the request, got %d", len(list.Msg.Notifications))
	}
	n := list.Msg.Notifications[0]

	_, err = c.notifications.MarkNotificationRead(ctx, as(bob, &api.MarkNotificationReadRequest{NotificationID: n.ID}))
	assertCode(t, err, connect.CodeNotFound)

	for i := 0; i < 2; i++ {
		resp, err := c.notifications.MarkNotificationRead(ctx, as(alice, &api.MarkNotificationReadRequest{NotificationID: n.ID}))
		if err != nil {
			t.Fatalf("MarkNotificationRead #%d failed: %v", i+1, err)
		}
		if resp.Msg.Notification.Status != "read" {
			t.Errorf("status: expected read, got %s", resp.Msg.Notification.Status)
		}
	}
}

func TestToConnectErrorHidesInternals(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	err := toConnectError(logger, "Op", errors.New("disk I/O error at /var/db"))

	var ce *connect.Error
	if !errors.As(err, &ce) {
		t.Fatalf("expected *connect.Error, got %T", err)
	}
	if ce.Code() != connect.CodeInternal || ce.Message() != "internal error" {
		t.Errorf("got %v %q, want internal/internal error", ce.Code(), ce.Message())
	}
}
