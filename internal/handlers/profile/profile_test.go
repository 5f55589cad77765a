package profile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"teleshop/internal/domain"
	"teleshop/internal/dto"
	"teleshop/internal/service/profileservice"
)

func NewMock(t *testing.T) (*ProfileHandler, *MockService) {
	ctrl := gomock.NewController(t)
	service := NewMockService(ctrl)
	handler := New(service)
	defer ctrl.Finish()
	return handler, service
}

func newRequest(method, target, param, value, body string) *http.Request {
	r := httptest.NewRequest(method, target, bytes.NewBufferString(body))
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(param, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func TestRegisterHandler(t *testing.T) {
	tests := []struct {
		name          string
		body          string
		prepareMock   func(service *MockService)
		expectedCode  int
		expectedError string
	}{
		{
			name: "Registers with a referrer",
			body: `{"id":42,"ref_id":100}`,
			prepareMock: func(service *MockService) {
				refID := int64(100)
				service.EXPECT().GetOrCreate(gomock.Any(), int64(42), &refID).
					Return(&domain.User{ID: 42, RefID: &refID}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name: "Registers without a referrer",
			body: `{"id":42}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().GetOrCreate(gomock.Any(), int64(42), (*int64)(nil)).
					Return(&domain.User{ID: 42}, nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:          "Missing id",
			body:          `{"ref_id":100}`,
			prepareMock:   func(service *MockService) {},
			expectedCode:  http.StatusBadRequest,
			expectedError: "Invalid request body",
		},
		{
			name: "Internal server error",
			body: `{"id":42}`,
			prepareMock: func(service *MockService) {
				service.EXPECT().GetOrCreate(gomock.Any(), int64(42), (*int64)(nil)).
					Return(nil, errors.New("database error"))
			},
			expectedCode:  http.StatusInternalServerError,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, service := NewMock(t)
			tt.prepareMock(service)

			r := httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString(tt.body))
			w := httptest.NewRecorder()

			handler.Register(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			if tt.expectedError != "" {
				assert.Contains(t, w.Body.String(), tt.expectedError)
			}
			if tt.expectedCode == http.StatusOK {
				var body dto.ProfileResponseDTO
				assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
				assert.Equal(t, int64(42), body.ID)
			}
		})
	}
}

func TestGetProfileHandler(t *testing.T) {
	t.Run("Full profile", func(t *testing.T) {
		handler, service := NewMock(t)

		service.EXPECT().GetProfile(gomock.Any(), int64(42)).Return(&profileservice.Profile{
			User:           &domain.User{ID: 42, Balance: 12.5, DiscountPercent: 25},
			PurchasesCount: 3,
			ReferralsCount: 2,
			Earnings:       4.5,
		}, nil)

		r := newRequest(http.MethodGet, "/api/users/42/profile", "userID", "42", "")
		w := httptest.NewRecorder()

		handler.GetProfile(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body dto.ProfileResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Equal(t, dto.ProfileResponseDTO{
			ID:              42,
			Balance:         12.5,
			DiscountPercent: 25,
			PurchasesCount:  3,
			ReferralsCount:  2,
			Earnings:        4.5,
		}, body)
	})

	t.Run("Unknown user", func(t *testing.T) {
		handler, service := NewMock(t)

		service.EXPECT().GetProfile(gomock.Any(), int64(99)).Return(nil, profileservice.ErrUserNotFound)

		r := newRequest(http.MethodGet, "/api/users/99/profile", "userID", "99", "")
		w := httptest.NewRecorder()

		handler.GetProfile(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Invalid user id", func(t *testing.T) {
		handler, _ := NewMock(t)

		r := newRequest(http.MethodGet, "/api/users/abc/profile", "userID", "abc", "")
		w := httptest.NewRecorder()

		handler.GetProfile(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestListReferralsHandler(t *testing.T) {
	t.Run("Referred users with earnings", func(t *testing.T) {
		handler, service := NewMock(t)

		service.EXPECT().ListReferrals(gomock.Any(), int64(42)).Return([]domain.Referral{
			{UserID: 43, RefUserID: 42, Earnings: 4.5},
			{UserID: 44, RefUserID: 42, Earnings: 0},
		}, nil)

		r := newRequest(http.MethodGet, "/api/users/42/referrals", "userID", "42", "")
		w := httptest.NewRecorder()

		handler.ListReferrals(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		var body []dto.ReferralResponseDTO
		assert.NoError(t, json.NewDecoder(w.Body).Decode(&body))
		assert.Len(t, body, 2)
		assert.Equal(t, int64(43), body[0].UserID)
		assert.InDelta(t, 4.5, body[0].Earnings, 1e-9)
	})

	t.Run("Internal server error", func(t *testing.T) {
		handler, service := NewMock(t)

		service.EXPECT().ListReferrals(gomock.Any(), int64(42)).Return(nil, errors.New("database error"))

		r := newRequest(http.MethodGet, "/api/users/42/referrals", "userID", "42", "")
		w := httptest.NewRecorder()

		handler.ListReferrals(w, r)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
