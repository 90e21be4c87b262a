package handlers_test

import (
	"net/http"
	"time"

	"github.com/SscSPs/product_pricing_app/internal/apperrors"
	"github.com/SscSPs/product_pricing_app/internal/core/domain"
	"github.com/SscSPs/product_pricing_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

func sampleEventLog() domain.EventLog {
	userID := testUserID
	resourceID := int64(10)
	ip := "192.0.2.1"
	return domain.EventLog{
		EventLogID:   1,
		UserID:       &userID,
		EventType:    domain.EventTypeCreate,
		ResourceType: domain.ResourceProductPrice.String(),
		ResourceID:   &resourceID,
		Endpoint:     "api/v1/products/10/prices",
		Method:       http.MethodPost,
		Data: map[string]any{
			"payload":          map[string]any{"currency_id": 2},
			"calculated_price": "92.4600",
		},
		IPAddress:  &ip,
		Timestamps: domain.Timestamps{CreatedAt: time.Date(2026, 2, 4, 12, 0, 0, 0, time.UTC)},
		User:       &domain.User{UserID: userID, Name: "Ada", Email: "ada@example.com"},
	}
}

func (suite *HandlerTestSuite) TestListEventLogs_Success() {
	matchFilter := mock.MatchedBy(func(f domain.EventLogFilter) bool {
		return f.EventType == domain.EventTypeCreate && f.ResourceType == "ProductPrice" &&
			f.UserID != nil && *f.UserID == testUserID && f.SortBy == domain.EventLogSortID && f.SortOrder == domain.SortAsc
	})
	suite.eventLogService.On("ListEventLogs", mock.Anything, matchFilter).Return(&domain.EventLogPage{
		EventLogs: []domain.EventLog{sampleEventLog()},
		Total:     1,
		Page:      1,
		PerPage:   15,
	}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/event-logs?event_type=POST&resource_type=ProductPrice&user_id=7&sort_by=id&sort_order=asc", nil)

	suite.Equal(http.StatusOK, w.Code)
	env := suite.decode(w)
	suite.Equal("Event logs retrieved successfully", env.Message)
	var data dto.EventLogListResponse
	suite.decodeData(env, &data)
	suite.Require().Len(data.Data, 1)
	suite.Equal(1, data.LastPage)
	item := data.Data[0]
	suite.Equal("POST", item.EventType)
	suite.Require().NotNil(item.User)
	suite.Equal("ada@example.com", item.User.Email)
	suite.Equal("92.4600", item.Data["calculated_price"])
	suite.Contains(item.Data, "payload")
}

func (suite *HandlerTestSuite) TestListEventLogs_InvalidEventType() {
	w := suite.do(http.MethodGet, "/api/v1/event-logs?event_type=PATCH", nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal([]string{"The selected event type is invalid."}, suite.decode(w).Errors["event_type"])
}

func (suite *HandlerTestSuite) TestGetEventLog() {
	entry := sampleEventLog()
	suite.eventLogService.On("GetEventLogByID", mock.Anything, int64(1)).Return(&entry, nil).Once()
	suite.eventLogService.On("GetEventLogByID", mock.Anything, int64(2)).
		Return(nil, apperrors.NewNotFoundError("Event log not found")).Once()

	found := suite.do(http.MethodGet, "/api/v1/event-logs/1", nil)
	suite.Equal(http.StatusOK, found.Code)
	suite.Equal("Event log retrieved successfully", suite.decode(found).Message)

	missing := suite.do(http.MethodGet, "/api/v1/event-logs/2", nil)
	suite.Equal(http.StatusNotFound, missing.Code)
	suite.Equal("Event log not found", suite.decode(missing).Message)
}

func (suite *HandlerTestSuite) TestExportEventLogs_WithRange() {
	matchRange := mock.MatchedBy(func(r domain.DateRange) bool {
		return r.Start != nil && r.Start.Format(time.DateOnly) == "2026-02-01" &&
			r.End != nil && r.End.Format(time.DateOnly) == "2026-02-04"
	})
	suite.eventLogService.On("ListEventLogsForExport", mock.Anything, matchRange).
		Return([]domain.EventLog{sampleEventLog()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/v1/event-logs/export?start_date=2026-02-01&end_date=2026-02-04", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Disposition"), "event_logs_2026-02-01_to_2026-02-04_")
}

func (suite *HandlerTestSuite) TestExportEventLogs_EndBeforeStart() {
	w := suite.do(http.MethodGet, "/api/v1/event-logs/export?start_date=2026-02-04&end_date=2026-02-01", nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Contains(suite.decode(w).Errors, "end_date")
}

func (suite *HandlerTestSuite) TestExportEventLogs_BadDateFormat() {
	w := suite.do(http.MethodGet, "/api/v1/event-logs/export?start_date=04/02/2026", nil)

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	suite.Equal([]string{"The start date field must match the format Y-m-d."}, suite.decode(w).Errors["start_date"])
}
