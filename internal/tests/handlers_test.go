package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	httpapi "github.com/cahfua/restaurant-api/internal/api/http"
	"github.com/cahfua/restaurant-api/internal/domain"
	"github.com/cahfua/restaurant-api/internal/mocks"
	"github.com/cahfua/restaurant-api/internal/service"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

type testHandler struct {
	restaurants *mocks.ResourceServiceInterface
	menuItems   *mocks.ResourceServiceInterface
	orders      *mocks.ResourceServiceInterface
	users       *mocks.ResourceServiceInterface
	auth        *mocks.AuthServiceInterface
	router      *mux.Router
}

func setupTestRouter(t *testing.T) *testHandler {
	th := &testHandler{
		restaurants: mocks.NewResourceServiceInterface(t),
		menuItems:   mocks.NewResourceServiceInterface(t),
		orders:      mocks.NewResourceServiceInterface(t),
		users:       mocks.NewResourceServiceInterface(t),
		auth:        mocks.NewAuthServiceInterface(t),
	}

	handler := &httpapi.Handler{
		Restaurants:   th.restaurants,
		MenuItems:     th.menuItems,
		Orders:        th.orders,
		Users:         th.users,
		Auth:          th.auth,
		PublicBaseURL: "http://localhost:3000",
		LoginRedirect: "/",
		SessionTTL:    time.Hour,
	}

	th.router = mux.NewRouter()
	handler.RegisterRoutes(th.router)
	return th
}

func (th *testHandler) do(method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	recorder := httptest.NewRecorder()
	th.router.ServeHTTP(recorder, req)
	return recorder
}

func TestHandler_ListRestaurants(t *testing.T) {
	th := setupTestRouter(t)

	th.restaurants.On("List", mock.Anything).
		Return([]bson.M{{"name": "Joe's"}}, nil).Once()

	recorder := th.do("GET", "/restaurants", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"name":"Joe's"`)
}

func TestHandler_GetRestaurant_StatusMapping(t *testing.T) {
	th := setupTestRouter(t)

	tests := []struct {
		name         string
		id           string
		prepareMocks func()
		expectedCode int
		expectedBody string
	}{
		{
			name: "invalid_id",
			id:   "bad",
			prepareMocks: func() {
				th.restaurants.On("Get", mock.Anything, "bad").
					Return(nil, service.ErrInvalidID).Once()
			},
			expectedCode: http.StatusBadRequest,
			expectedBody: "Invalid id.",
		},
		{
			name: "not_found",
			id:   knownRestaurantID,
			prepareMocks: func() {
				th.restaurants.On("Get", mock.Anything, knownRestaurantID).
					Return(nil, service.ErrNotFound).Once()
			},
			expectedCode: http.StatusNotFound,
			expectedBody: "Restaurant not found.",
		},
		{
			name: "internal_error_is_generic",
			id:   knownRestaurantID,
			prepareMocks: func() {
				th.restaurants.On("Get", mock.Anything, knownRestaurantID).
					Return(nil, assert.AnError).Once()
			},
			expectedCode: http.StatusInternalServerError,
			expectedBody: "Failed to fetch restaurant.",
		},
		{
			name: "found",
			id:   knownRestaurantID,
			prepareMocks: func() {
				th.restaurants.On("Get", mock.Anything, knownRestaurantID).
					Return(bson.M{"name": "Joe's"}, nil).Once()
			},
			expectedCode: http.StatusOK,
			expectedBody: "Joe's",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			recorder := th.do("GET", "/restaurants/"+testCase.id, "")
			assert.Equal(t, testCase.expectedCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), testCase.expectedBody)
		})
	}
}

func TestHandler_CreateRestaurant(t *testing.T) {
	th := setupTestRouter(t)

	th.restaurants.On("Create", mock.Anything, mock.Anything).
		Return(map[string]any{"_id": knownRestaurantID, "name": "Joe's"}, nil).Once()

	recorder := th.do("POST", "/restaurants", `{"name":"Joe's","location":"Main St","phone":"555-0100","hours":"9-5"}`)

	assert.Equal(t, http.StatusCreated, recorder.Code)
	assert.Contains(t, recorder.Body.String(), knownRestaurantID)
}

func TestHandler_CreateRestaurant_ValidationErrorsListed(t *testing.T) {
	th := setupTestRouter(t)

	th.restaurants.On("Create", mock.Anything, mock.Anything).
		Return(nil, &service.ValidationError{Errors: []string{
			"name is required (string)",
			"location is required (string)",
		}}).Once()

	recorder := th.do("POST", "/restaurants", `{}`)

	assert.Equal(t, http.StatusBadRequest, recorder.Code)

	var body map[string][]string
	json.NewDecoder(recorder.Body).Decode(&body)
	assert.Len(t, body["errors"], 2)
}

func TestHandler_CreateRestaurant_BadJSON(t *testing.T) {
	th := setupTestRouter(t)

	recorder := th.do("POST", "/restaurants", `not json`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}

func TestHandler_UpdateAndDelete(t *testing.T) {
	th := setupTestRouter(t)

	th.restaurants.On("Update", mock.Anything, knownRestaurantID, mock.Anything).
		Return(nil).Once()
	recorder := th.do("PUT", "/restaurants/"+knownRestaurantID, `{"name":"Joe's"}`)
	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Empty(t, recorder.Body.String())

	th.restaurants.On("Delete", mock.Anything, knownRestaurantID).
		Return(service.ErrNotFound).Once()
	recorder = th.do("DELETE", "/restaurants/"+knownRestaurantID, "")
	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHandler_ProtectedRoutes_RejectAnonymousBeforeService(t *testing.T) {
	th := setupTestRouter(t)

	// the guard consults the session, the resource service is never touched
	th.auth.On("CurrentUser", mock.Anything, "").
		Return(domain.User{}, false, nil).Times(3)

	for _, route := range []struct{ method, path string }{
		{"POST", "/menuItems"},
		{"PUT", "/menuItems/" + knownRestaurantID},
		{"POST", "/users"},
	} {
		recorder := th.do(route.method, route.path, `{"name":"x"}`)
		assert.Equal(t, http.StatusUnauthorized, recorder.Code, route.method+" "+route.path)
	}
}

func TestHandler_ProtectedRoute_SessionStoreOutageIs401(t *testing.T) {
	th := setupTestRouter(t)

	th.auth.On("CurrentUser", mock.Anything, "").
		Return(domain.User{}, false, assert.AnError).Once()

	recorder := th.do("POST", "/menuItems", `{"name":"Burger"}`)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHandler_ProtectedRoute_PassesAuthenticatedUser(t *testing.T) {
	th := setupTestRouter(t)

	th.auth.On("CurrentUser", mock.Anything, "").
		Return(domain.User{Name: "Ann"}, true, nil).Once()
	th.menuItems.On("Create", mock.Anything, mock.Anything).
		Return(map[string]any{"name": "Burger"}, nil).Once()

	recorder := th.do("POST", "/menuItems", `{"name":"Burger"}`)
	assert.Equal(t, http.StatusCreated, recorder.Code)
}

func TestHandler_PublicMutations(t *testing.T) {
	th := setupTestRouter(t)

	// orders and restaurants mutate without a session
	th.orders.On("Create", mock.Anything, mock.Anything).
		Return(map[string]any{"status": "pending"}, nil).Once()
	recorder := th.do("POST", "/orders", `{"status":"pending"}`)
	assert.Equal(t, http.StatusCreated, recorder.Code)

	th.users.On("Delete", mock.Anything, knownRestaurantID).Return(nil).Once()
	recorder = th.do("DELETE", "/users/"+knownRestaurantID, "")
	assert.Equal(t, http.StatusNoContent, recorder.Code)
}

func TestHandler_MenuItem_UnknownRestaurantIs400(t *testing.T) {
	th := setupTestRouter(t)

	th.auth.On("CurrentUser", mock.Anything, "").
		Return(domain.User{Name: "Ann"}, true, nil).Once()
	th.menuItems.On("Create", mock.Anything, mock.Anything).
		Return(nil, service.ErrUnknownRestaurant).Once()

	recorder := th.do("POST", "/menuItems", `{"name":"Burger"}`)
	assert.Equal(t, http.StatusBadRequest, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "restaurantId does not match an existing restaurant.")
}

func TestHandler_Liveness(t *testing.T) {
	th := setupTestRouter(t)

	recorder := th.do("GET", "/", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "API running", recorder.Body.String())
}

func TestHandler_OrderQRCode(t *testing.T) {
	th := setupTestRouter(t)

	th.orders.On("Get", mock.Anything, knownRestaurantID).
		Return(bson.M{"status": "pending"}, nil).Once()

	recorder := th.do("GET", "/orders/"+knownRestaurantID+"/qrcode", "")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "image/png", recorder.Header().Get("Content-Type"))
	assert.NotEmpty(t, recorder.Body.Bytes())
}
