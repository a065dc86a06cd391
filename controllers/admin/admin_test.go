package adminController

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/HemanthA0921/Ecommerce-React/models"
	"github.com/HemanthA0921/Ecommerce-React/services"
)

type fakeCheckoutRepo struct {
	mock.Mock
}

func (m *fakeCheckoutRepo) FindAll(ctx context.Context) ([]models.Checkout, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Checkout), args.Error(1)
}

func (m *fakeCheckoutRepo) FindByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Checkout, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Checkout), args.Error(1)
}

func (m *fakeCheckoutRepo) FindByProductIDs(ctx context.Context, productIDs []primitive.ObjectID) ([]models.Checkout, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Checkout), args.Error(1)
}

func (m *fakeCheckoutRepo) Insert(ctx context.Context, checkout *models.Checkout) (primitive.ObjectID, error) {
	args := m.Called(ctx, checkout)
	return args.Get(0).(primitive.ObjectID), args.Error(1)
}

func (m *fakeCheckoutRepo) SalesTotals(ctx context.Context, start, end time.Time) ([]models.SalesBucket, error) {
	args := m.Called(ctx, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.SalesBucket), args.Error(1)
}

type fakeMailer struct {
	mock.Mock
}

func (m *fakeMailer) Send(to, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

func salesRouter(checkouts *fakeCheckoutRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	reports := services.NewReportingService(checkouts, nil, nil, nil, nil)
	r := gin.New()
	r.GET("/api/admin/sales/:period", SalesByPeriod(reports))
	return r
}

func TestSalesByPeriod_ReturnsLabelsAndData(t *testing.T) {
	checkouts := new(fakeCheckoutRepo)
	checkouts.On("SalesTotals", mock.Anything, mock.Anything, mock.Anything).
		Return([]models.SalesBucket{
			{Date: "2026-08-27", TotalSales: 120.5},
			{Date: "2026-08-28", TotalSales: 90},
		}, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/sales/week", nil)
	salesRouter(checkouts).ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"labels":["2026-08-27","2026-08-28"],"data":[120.5,90]}`, w.Body.String())
}

func TestSalesByPeriod_InvalidPeriod(t *testing.T) {
	checkouts := new(fakeCheckoutRepo)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/sales/decade", nil)
	salesRouter(checkouts).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid time period")
	checkouts.AssertNotCalled(t, "SalesTotals", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendEmail_RepliesToQuery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := new(fakeMailer)
	m.On("Send", "asha@user.test", "Reply to your query", "Your order ships tomorrow.").Return(nil).Once()

	r := gin.New()
	r.POST("/api/admin/sendemail", SendEmail(m))

	w := httptest.NewRecorder()
	body := `{"to":"asha@user.test","text":"Your order ships tomorrow."}`
	req := httptest.NewRequest(http.MethodPost, "/api/admin/sendemail", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	m.AssertExpectations(t)
}

func TestSendEmail_RejectsBadAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := new(fakeMailer)

	r := gin.New()
	r.POST("/api/admin/sendemail", SendEmail(m))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/sendemail", strings.NewReader(`{"to":"nope","text":"hi"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	m.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything)
}
