package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/bistroboss/bistro-api/internal/auth"
	"github.com/bistroboss/bistro-api/internal/middleware"
	"github.com/bistroboss/bistro-api/internal/models"
)

const testSecret = "test-signing-secret-32-characters"

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeUserService is an in-memory stand-in for the users collection.
// mutations counts every write so guard tests can assert rejected
// requests never touch the store.
type fakeUserService struct {
	byID      map[primitive.ObjectID]*models.User
	lookups   int
	mutations int
}

func newFakeUserService() *fakeUserService {
	return &fakeUserService{byID: map[primitive.ObjectID]*models.User{}}
}

// seed performs an operator-level direct store write, bypassing the API.
func (f *fakeUserService) seed(user models.User) primitive.ObjectID {
	id := primitive.NewObjectID()
	user.ID = id
	f.byID[id] = &user
	return id
}

func (f *fakeUserService) findByEmail(email string) *models.User {
	for _, u := range f.byID {
		if u.Email == email {
			return u
		}
	}
	return nil
}

func (f *fakeUserService) RegisterUser(ctx context.Context, user models.User) (*models.InsertAck, error) {
	if existing := f.findByEmail(user.Email); existing != nil {
		return &models.InsertAck{Message: "User already exist", InsertedID: nil}, nil
	}
	f.mutations++
	id := f.seed(user)
	return &models.InsertAck{InsertedID: id.Hex()}, nil
}

func (f *fakeUserService) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	f.lookups++
	return f.findByEmail(email), nil
}

func (f *fakeUserService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users := []models.User{}
	for _, u := range f.byID {
		users = append(users, *u)
	}
	return users, nil
}

func (f *fakeUserService) MakeAdmin(ctx context.Context, id primitive.ObjectID) (*models.UpdateAck, error) {
	f.mutations++
	user, ok := f.byID[id]
	if !ok {
		return &models.UpdateAck{MatchedCount: 0, ModifiedCount: 0}, nil
	}
	modified := int64(0)
	if user.Role != models.RoleAdmin {
		user.Role = models.RoleAdmin
		modified = 1
	}
	return &models.UpdateAck{MatchedCount: 1, ModifiedCount: modified}, nil
}

func (f *fakeUserService) DeleteUser(ctx context.Context, id primitive.ObjectID) (*models.DeleteAck, error) {
	f.mutations++
	if _, ok := f.byID[id]; !ok {
		return &models.DeleteAck{DeletedCount: 0}, nil
	}
	delete(f.byID, id)
	return &models.DeleteAck{DeletedCount: 1}, nil
}

// fakeMenuService is an in-memory stand-in for the menus collection.
type fakeMenuService struct {
	items     map[primitive.ObjectID]*models.MenuItem
	mutations int
}

func newFakeMenuService() *fakeMenuService {
	return &fakeMenuService{items: map[primitive.ObjectID]*models.MenuItem{}}
}

func (f *fakeMenuService) seed(item models.MenuItem) primitive.ObjectID {
	id := primitive.NewObjectID()
	item.ID = id
	f.items[id] = &item
	return id
}

func (f *fakeMenuService) GetAllItems(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	for _, it := range f.items {
		items = append(items, *it)
	}
	return items, nil
}

func (f *fakeMenuService) GetItemByID(ctx context.Context, id primitive.ObjectID) (*models.MenuItem, error) {
	item, ok := f.items[id]
	if !ok {
		return nil, nil
	}
	return item, nil
}

func (f *fakeMenuService) CreateItem(ctx context.Context, item models.MenuItem) (*models.InsertAck, error) {
	f.mutations++
	id := f.seed(item)
	return &models.InsertAck{InsertedID: id.Hex()}, nil
}

func (f *fakeMenuService) UpdateItem(ctx context.Context, id primitive.ObjectID, item models.MenuItem) (*models.UpdateAck, error) {
	f.mutations++
	existing, ok := f.items[id]
	if !ok {
		return &models.UpdateAck{MatchedCount: 0, ModifiedCount: 0}, nil
	}
	existing.Name = item.Name
	existing.Recipe = item.Recipe
	existing.Image = item.Image
	existing.Category = item.Category
	existing.Price = item.Price
	return &models.UpdateAck{MatchedCount: 1, ModifiedCount: 1}, nil
}

func (f *fakeMenuService) DeleteItem(ctx context.Context, id primitive.ObjectID) (*models.DeleteAck, error) {
	f.mutations++
	if _, ok := f.items[id]; !ok {
		return &models.DeleteAck{DeletedCount: 0}, nil
	}
	delete(f.items, id)
	return &models.DeleteAck{DeletedCount: 1}, nil
}

// fakeReviewService serves a fixed review list.
type fakeReviewService struct {
	reviews []models.Review
}

func (f *fakeReviewService) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	if f.reviews == nil {
		return []models.Review{}, nil
	}
	return f.reviews, nil
}

// fakeCartService mimics the owner-scoped delete filter of the real store.
type fakeCartService struct {
	entries   map[primitive.ObjectID]*models.CartEntry
	mutations int
}

func newFakeCartService() *fakeCartService {
	return &fakeCartService{entries: map[primitive.ObjectID]*models.CartEntry{}}
}

func (f *fakeCartService) seed(entry models.CartEntry) primitive.ObjectID {
	id := primitive.NewObjectID()
	entry.ID = id
	f.entries[id] = &entry
	return id
}

func (f *fakeCartService) GetEntriesByEmail(ctx context.Context, email string) ([]models.CartEntry, error) {
	entries := []models.CartEntry{}
	for _, e := range f.entries {
		if e.Email == email {
			entries = append(entries, *e)
		}
	}
	return entries, nil
}

func (f *fakeCartService) AddEntry(ctx context.Context, entry models.CartEntry) (*models.InsertAck, error) {
	f.mutations++
	id := f.seed(entry)
	return &models.InsertAck{InsertedID: id.Hex()}, nil
}

func (f *fakeCartService) DeleteEntry(ctx context.Context, id primitive.ObjectID, ownerEmail string) (*models.DeleteAck, error) {
	f.mutations++
	entry, ok := f.entries[id]
	if !ok || (ownerEmail != "" && entry.Email != ownerEmail) {
		return &models.DeleteAck{DeletedCount: 0}, nil
	}
	delete(f.entries, id)
	return &models.DeleteAck{DeletedCount: 1}, nil
}

// fakeGateway records the forwarded amount instead of calling Stripe.
type fakeGateway struct {
	amount   int64
	currency string
	calls    int
	err      error
}

func (f *fakeGateway) CreateIntent(ctx context.Context, amount int64, currency string) (string, error) {
	f.calls++
	f.amount = amount
	f.currency = currency
	if f.err != nil {
		return "", f.err
	}
	return "pi_test_secret_123", nil
}

// testEnv wires the controllers behind the same guard chains the server
// mounts, backed by the in-memory fakes.
type testEnv struct {
	users   *fakeUserService
	menu    *fakeMenuService
	reviews *fakeReviewService
	carts   *fakeCartService
	gateway *fakeGateway
	issuer  *auth.TokenIssuer
	router  *gin.Engine
}

func newTestEnv() *testEnv {
	env := &testEnv{
		users:   newFakeUserService(),
		menu:    newFakeMenuService(),
		reviews: &fakeReviewService{},
		carts:   newFakeCartService(),
		gateway: &fakeGateway{},
		issuer:  auth.NewTokenIssuer(testSecret, time.Hour),
	}

	authController := NewAuthController(env.issuer)
	userController := NewUserController(env.users)
	menuController := NewMenuController(env.menu)
	reviewController := NewReviewController(env.reviews)
	cartController := NewCartController(env.carts)
	paymentController := NewPaymentController(env.gateway)

	verifyToken := middleware.JWTAuth([]byte(testSecret))
	verifyAdmin := middleware.RequireAdmin(env.users)

	router := gin.New()
	router.POST("/jwt", authController.CreateToken)
	router.POST("/users", userController.Register)
	router.GET("/allusers/checkAdmin/:email", verifyToken, userController.CheckAdmin)
	router.PATCH("/allusers/makeAdmin/:id", verifyToken, verifyAdmin, userController.MakeAdmin)
	router.GET("/allusers", verifyToken, verifyAdmin, userController.GetAllUsers)
	router.DELETE("/allusers/:id", verifyToken, verifyAdmin, userController.DeleteUser)
	router.GET("/menu", menuController.GetAllItems)
	router.GET("/menu/:id", menuController.GetItemByID)
	router.POST("/menu", verifyToken, verifyAdmin, menuController.CreateItem)
	router.PATCH("/menu/:id", verifyToken, verifyAdmin, menuController.UpdateItem)
	router.DELETE("/menu/:id", verifyToken, verifyAdmin, menuController.DeleteItem)
	router.GET("/reviews", reviewController.GetAllReviews)
	router.GET("/getallCard", cartController.GetEntries)
	router.POST("/addToCard", cartController.AddEntry)
	router.DELETE("/deleteitemfromMycart/:id", verifyToken, cartController.DeleteEntry)
	router.POST("/create-payment-intent", verifyToken, paymentController.CreatePaymentIntent)

	env.router = router
	return env
}

// tokenFor issues a valid token for the given email.
func (e *testEnv) tokenFor(t *testing.T, email string) string {
	t.Helper()
	token, err := e.issuer.Issue(map[string]interface{}{"email": email})
	require.NoError(t, err)
	return token
}

// do performs a request against the test router. A non-empty token is
// sent as a bearer Authorization header.
func (e *testEnv) do(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Buffer
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(raw)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
