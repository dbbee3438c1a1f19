package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"bookie/middleware"
	"bookie/models"
	"bookie/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockBookingService struct {
	mock.Mock
}

func (m *mockBookingService) Create(details models.BookingCreate, user models.User) (string, error) {
	args := m.Called(details, user)
	return args.String(0), args.Error(1)
}
func (m *mockBookingService) Update(bookingID string, details models.BookingUpdate) error {
	return m.Called(bookingID, details).Error(0)
}
func (m *mockBookingService) Delete(bookingID string) error {
	return m.Called(bookingID).Error(0)
}
func (m *mockBookingService) DeleteMany(bookingIDs []string) error {
	return m.Called(bookingIDs).Error(0)
}
func (m *mockBookingService) Get(bookingID string) (*models.Booking, error) {
	args := m.Called(bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}
func (m *mockBookingService) GetAll(user string) ([]models.Booking, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

var testUser = models.User{
	ID:    strings.Repeat("a", 32),
	Email: "alice@example.com",
}

// bookingRouter mounts the handler with a stub that injects the
// authenticated user, standing in for the auth middleware.
func bookingRouter(svc *mockBookingService) *gin.Engine {
	h := NewBookingHandler(svc, zap.NewNop())
	router := gin.New()
	asUser := func(c *gin.Context) {
		user := testUser
		c.Set(middleware.AuthUserKey, &user)
	}
	router.GET("/bookings", h.GetBookings)
	router.GET("/bookings/:id", h.GetBooking)
	router.POST("/bookings", asUser, h.CreateBooking)
	router.PUT("/bookings/:id", asUser, h.UpdateBooking)
	router.DELETE("/bookings", asUser, h.DeleteBookings)
	router.DELETE("/bookings/:id", asUser, h.DeleteBooking)
	return router
}

func do(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestCreateBookingEndpoint(t *testing.T) {
	roomID := strings.Repeat("b", 32)
	bookingID := strings.Repeat("c", 32)

	t.Run("Created", func(t *testing.T) {
		svc := &mockBookingService{}
		svc.On("Create", mock.MatchedBy(func(d models.BookingCreate) bool {
			return d.Room == roomID && d.Duration == 1.5
		}), testUser).Return(bookingID, nil)

		w := do(bookingRouter(svc), http.MethodPost, "/bookings",
			`{"room":"`+roomID+`","start":"2030-06-01T10:00:00Z","duration":1.5}`)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, bookingID, decodeBody(t, w)["id"])
	})

	t.Run("MalformedPayload", func(t *testing.T) {
		svc := &mockBookingService{}
		w := do(bookingRouter(svc), http.MethodPost, "/bookings", `{"room":"short"}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, utils.MsgValidationError, decodeBody(t, w)["message"])
		svc.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("ServiceErrorPassedThrough", func(t *testing.T) {
		svc := &mockBookingService{}
		svc.On("Create", mock.Anything, mock.Anything).
			Return("", utils.NewValidationError(utils.MsgBookingOverlaps, nil))

		w := do(bookingRouter(svc), http.MethodPost, "/bookings",
			`{"room":"`+roomID+`","start":"2030-06-01T10:00:00Z","duration":1}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, utils.MsgBookingOverlaps, decodeBody(t, w)["message"])
	})
}

func TestGetBookingsEndpoint(t *testing.T) {
	t.Run("All", func(t *testing.T) {
		svc := &mockBookingService{}
		svc.On("GetAll", "").Return([]models.Booking{
			{ID: strings.Repeat("c", 32), Start: time.Date(2030, 6, 1, 10, 0, 0, 0, time.UTC)},
		}, nil)

		w := do(bookingRouter(svc), http.MethodGet, "/bookings", "")

		assert.Equal(t, http.StatusOK, w.Code)
		var bookings []models.Booking
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &bookings))
		assert.Len(t, bookings, 1)
	})

	t.Run("FilteredByUser", func(t *testing.T) {
		svc := &mockBookingService{}
		svc.On("GetAll", testUser.ID).Return([]models.Booking{}, nil)

		w := do(bookingRouter(svc), http.MethodGet, "/bookings?user="+testUser.ID, "")

		assert.Equal(t, http.StatusOK, w.Code)
		svc.AssertExpectations(t)
	})

	t.Run("NotFoundEnvelope", func(t *testing.T) {
		svc := &mockBookingService{}
		id := strings.Repeat("0", 32)
		svc.On("Get", id).Return(nil, utils.NewNotFoundError(utils.MsgBookingNotFound,
			map[string]interface{}{"booking": map[string]interface{}{"id": id}}))

		w := do(bookingRouter(svc), http.MethodGet, "/bookings/"+id, "")

		assert.Equal(t, http.StatusNotFound, w.Code)
		body := decodeBody(t, w)
		assert.Equal(t, utils.MsgBookingNotFound, body["message"])
		assert.Contains(t, body, "request")
	})
}

func TestUpdateBookingEndpoint(t *testing.T) {
	bookingID := strings.Repeat("c", 32)

	t.Run("NoContent", func(t *testing.T) {
		svc := &mockBookingService{}
		svc.On("Update", bookingID, mock.MatchedBy(func(d models.BookingUpdate) bool {
			return d.HasDuration && d.Duration != nil && *d.Duration == 2
		})).Return(nil)

		w := do(bookingRouter(svc), http.MethodPut, "/bookings/"+bookingID, `{"duration":2}`)

		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Body.Bytes())
	})

	t.Run("ServiceRejection", func(t *testing.T) {
		svc := &mockBookingService{}
		svc.On("Update", bookingID, mock.Anything).
			Return(utils.NewValidationError(utils.MsgBookingUpdateError, nil))

		w := do(bookingRouter(svc), http.MethodPut, "/bookings/"+bookingID, `{"start":null}`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, utils.MsgBookingUpdateError, decodeBody(t, w)["message"])
	})
}

func TestDeleteBookingEndpoints(t *testing.T) {
	bookingID := strings.Repeat("c", 32)

	t.Run("SingleNoContent", func(t *testing.T) {
		svc := &mockBookingService{}
		svc.On("Delete", bookingID).Return(nil)

		w := do(bookingRouter(svc), http.MethodDelete, "/bookings/"+bookingID, "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	})

	t.Run("SingleNotFound", func(t *testing.T) {
		svc := &mockBookingService{}
		svc.On("Delete", bookingID).Return(utils.NewNotFoundError(utils.MsgBookingNotFound, nil))

		w := do(bookingRouter(svc), http.MethodDelete, "/bookings/"+bookingID, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("BulkQueryParams", func(t *testing.T) {
		svc := &mockBookingService{}
		other := strings.Repeat("d", 32)
		svc.On("DeleteMany", []string{bookingID, other}).Return(nil)

		w := do(bookingRouter(svc), http.MethodDelete,
			"/bookings?booking="+bookingID+"&booking="+other, "")

		assert.Equal(t, http.StatusNoContent, w.Code)
		svc.AssertExpectations(t)
	})
}
