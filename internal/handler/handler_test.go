package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/readspace/library-portal/internal/handler"
	"github.com/readspace/library-portal/internal/model"
	"github.com/readspace/library-portal/pkg/auth"
	"github.com/readspace/library-portal/pkg/validate"

	service_mocks "github.com/readspace/library-portal/internal/handler/mocks"
)

func mustDate(s string) model.Date {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		panic(err)
	}
	return model.Date{Time: t}
}

func TestHandler_GetBooks(t *testing.T) {
	t.Parallel()
	type input struct {
		page, size int
		showAll    bool
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockPortalService, req input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockPortalService, req input) {
				r.EXPECT().
					ListBooks(context.Background(), req.showAll, req.page, req.size).
					Return(model.ListBooks{
						Paging: model.Paging{
							Page:          req.page,
							PageSize:      req.size,
							TotalElements: 1,
						},
						Items: []model.Book{
							{
								BookUid:        "f7cdc58f-2caf-4b15-9727-f89dcc629b27",
								Title:          "The Go Programming Language",
								Author:         "Alan A. A. Donovan",
								Genre:          "Reference",
								AvailableCount: 2,
							},
						},
					}, nil)
			},
			input: input{
				page:    1,
				size:    10,
				showAll: false,
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"page":1,"pageSize":10,"totalElements":1,"items":[{"bookUid":"f7cdc58f-2caf-4b15-9727-f89dcc629b27","title":"The Go Programming Language","author":"Alan A. A. Donovan","genre":"Reference","availableCount":2}]}`,
			},
			wantErr: false,
		},
		{
			name: "err. internal",
			mockBehavior: func(r *service_mocks.MockPortalService, inp input) {
				r.EXPECT().
					ListBooks(context.Background(), inp.showAll, inp.page, inp.size).
					Return(model.ListBooks{}, errors.New("db internal"))
			},
			input: input{
				page: 1,
				size: 10,
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockPortalService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/books", h.GetBooks)

			r := httptest.NewRequest(
				http.MethodGet, fmt.Sprintf("/books?page=%d&size=%d&showAll=%v", tt.input.page, tt.input.size, tt.input.showAll), http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_GetLoans(t *testing.T) {
	t.Parallel()
	type input struct {
		userEmail string
		userRole  string
	}
	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockPortalService, req input)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		input        input
		response     response
		wantErr      bool
	}{
		{
			name: "ok",
			mockBehavior: func(r *service_mocks.MockPortalService, req input) {
				r.EXPECT().
					ListLoans(gomock.Any(), req.userEmail).
					Return([]model.LoanView{
						{
							Loan: model.Loan{
								LoanUid:    "8a9bcf0e-94c6-4628-a0a8-6e3b95ddf551",
								BookTitle:  "The Go Programming Language",
								BookAuthor: "Alan A. A. Donovan",
								UserEmail:  req.userEmail,
								Status:     model.LoanBorrowed,
							},
							DisplayStatus:       model.LoanBorrowed,
							EffectiveBorrowDate: mustDate("2024-11-01"),
							IsOverdue:           true,
						},
					}, nil)
			},
			input: input{
				userEmail: "reader@example.com",
				userRole:  auth.RoleReader,
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[{"loanUid":"8a9bcf0e-94c6-4628-a0a8-6e3b95ddf551","bookTitle":"The Go Programming Language","bookAuthor":"Alan A. A. Donovan","userEmail":"reader@example.com","status":"borrowed","displayStatus":"borrowed","effectiveBorrowDate":"2024-11-01","isOverdue":true}]`,
			},
			wantErr: false,
		},
		{
			name: "admin sees all loans",
			mockBehavior: func(r *service_mocks.MockPortalService, req input) {
				r.EXPECT().
					ListLoans(gomock.Any(), "").
					Return([]model.LoanView{}, nil)
			},
			input: input{
				userEmail: "librarian@example.com",
				userRole:  auth.RoleAdmin,
			},
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `[]`,
			},
			wantErr: false,
		},
		{
			name:         "err. no auth context",
			mockBehavior: func(r *service_mocks.MockPortalService, inp input) {},
			input:        input{},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"user name is missing in context"}`,
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockPortalService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.Validator = validate.NewCustomValidator()
			e.GET("/loans", h.GetLoans)

			r := httptest.NewRequest(http.MethodGet, "/loans", http.NoBody)
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.input.userEmail != "" {
				r = r.WithContext(auth.SetAuthContext(r.Context(), tt.input.userEmail, tt.input.userRole))
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc, tt.input)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}
