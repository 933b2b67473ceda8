package head_test

import (
	"context"
	"testing"
	"time"

	elmsapierrors "elms-portal/internal/elmsapi/errors"
	elmsapiMock "elms-portal/internal/elmsapi/mock"
	"elms-portal/internal/head"
	headerrors "elms-portal/internal/head/errors"
	"elms-portal/internal/leave"
	"elms-portal/internal/session"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var (
	fixedNow = func() time.Time { return time.Date(2024, 1, 20, 9, 0, 0, 0, time.UTC) }
	grace    = session.Identity{Role: session.RoleHead, EmployeeID: "DH001", Department: "IT", Name: "Grace"}
)

func allRecords() []leave.Record {
	return []leave.Record{
		{ID: "7", EmployeeID: "EMP001", Department: "IT", Type: "Sick Leave", StartDate: "2024-01-10", EndDate: "2024-01-12", Status: "pending"},
		{ID: "8", EmployeeID: "EMP002", Department: "HR", Type: "Sick Leave", StartDate: "2024-01-10", EndDate: "2024-01-10", Status: "Pending"},
		{ID: "9", EmployeeID: "EMP003", Department: "IT", Type: "Personal Leave", StartDate: "2024-01-15", EndDate: "2024-01-15", Status: "Approved", Reason: "wedding"},
		{ID: "10", EmployeeID: "EMP004", Department: "it", Type: "Sick Leave", StartDate: "2024-01-15", EndDate: "2024-01-15", Status: "Pending"},
	}
}

func loaded(t *testing.T) (*head.Dashboard, *elmsapiMock.MockClient) {
	ctrl := gomock.NewController(t)
	api := elmsapiMock.NewMockClient(ctrl)
	d := head.NewDashboard(api, leave.NewBoard(), grace, fixedNow)

	api.EXPECT().ListLeaves(gomock.Any()).Return(allRecords(), nil).Times(1)
	assert.NoError(t, d.Refresh(context.Background()))
	return d, api
}

func statusOf(views []leave.View, id string) leave.Status {
	for _, v := range views {
		if v.ID == id {
			return v.Status
		}
	}
	return ""
}

func TestDashboard_Refresh(t *testing.T) {
	d, _ := loaded(t)

	ov := d.Overview(head.Filter{})

	assert.Len(t, ov.Requests, 2)
	assert.Equal(t, "7", ov.Requests[0].ID)
	assert.Equal(t, "9", ov.Requests[1].ID)
	assert.Equal(t, 2, ov.Stats.Employees)
	assert.Equal(t, 1, ov.Stats.Pending)
	assert.Equal(t, 1, ov.Stats.ApprovedThisMonth)
	assert.Equal(t, "Grace", ov.Profile.Name)
}

func TestDashboard_Overview_Filter(t *testing.T) {
	d, _ := loaded(t)

	assert.Len(t, d.Overview(head.Filter{Status: "approved"}).Requests, 1)
	assert.Len(t, d.Overview(head.Filter{Search: "WEDD"}).Requests, 1)
	assert.Len(t, d.Overview(head.Filter{Search: "emp00"}).Requests, 2)
	assert.Empty(t, d.Overview(head.Filter{Search: "nobody"}).Requests)
}

func TestDashboard_Approve(t *testing.T) {
	ctx := context.Background()

	t.Run("success - id 7 becomes Approved locally", func(t *testing.T) {
		d, api := loaded(t)
		api.EXPECT().UpdateLeaveStatus(gomock.Any(), "7", leave.StatusApproved).Return(nil)

		view, err := d.Approve(ctx, "7")

		assert.NoError(t, err)
		assert.Equal(t, leave.StatusApproved, view.Status)
		assert.Equal(t, leave.StatusApproved, statusOf(d.Overview(head.Filter{}).Requests, "7"))
	})

	t.Run("negative - failed call leaves id 7 Pending", func(t *testing.T) {
		d, api := loaded(t)
		api.EXPECT().UpdateLeaveStatus(gomock.Any(), "7", leave.StatusApproved).
			Return(elmsapierrors.Upstream(elmsapierrors.MsgUpdateStatusFailed, 500))

		_, err := d.Approve(ctx, "7")

		assert.EqualError(t, err, elmsapierrors.MsgUpdateStatusFailed)
		assert.Equal(t, leave.StatusPending, statusOf(d.Overview(head.Filter{}).Requests, "7"))
	})

	t.Run("negative - other department's request is refused", func(t *testing.T) {
		d, api := loaded(t)
		api.EXPECT().ListLeaves(gomock.Any()).Return(allRecords(), nil)

		_, err := d.Reject(ctx, "8")

		assert.ErrorIs(t, err, headerrors.ErrLeaveNotInDepartment)
	})

	t.Run("negative - blank id", func(t *testing.T) {
		d, _ := loaded(t)

		_, err := d.Approve(ctx, " ")

		assert.ErrorIs(t, err, headerrors.ErrInvalidLeaveID)
	})
}

func TestDashboard_StaleFetchKeepsDecision(t *testing.T) {
	ctx := context.Background()
	d, api := loaded(t)

	api.EXPECT().UpdateLeaveStatus(gomock.Any(), "7", leave.StatusRejected).Return(nil)
	api.EXPECT().ListLeaves(gomock.Any()).DoAndReturn(func(context.Context) ([]leave.Record, error) {
		// the decision lands while this list is in flight
		_, err := d.Reject(ctx, "7")
		assert.NoError(t, err)
		return allRecords(), nil
	})

	assert.NoError(t, d.Refresh(ctx))

	assert.Equal(t, leave.StatusRejected, statusOf(d.Overview(head.Filter{}).Requests, "7"))
}

func TestDashboard_IgnoresOtherDepartmentsOnTheBoard(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	api := elmsapiMock.NewMockClient(ctrl)

	// a board filled for someone else, e.g. an employee in HR
	board := leave.NewBoard()
	board.Replace(board.Begin(), leave.DeriveAll([]leave.Record{
		{ID: "42", EmployeeID: "EMP009", Department: "HR", Type: "Sick Leave", StartDate: "2024-01-10", EndDate: "2024-01-10", Status: "Pending"},
	}))
	d := head.NewDashboard(api, board, grace, fixedNow)

	assert.Empty(t, d.Overview(head.Filter{}).Requests)

	api.EXPECT().ListLeaves(gomock.Any()).Return(allRecords(), nil)
	api.EXPECT().UpdateLeaveStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	_, err := d.Approve(ctx, "42")

	assert.ErrorIs(t, err, headerrors.ErrLeaveNotInDepartment)
}

func TestDashboard_Anonymous(t *testing.T) {
	ctrl := gomock.NewController(t)
	api := elmsapiMock.NewMockClient(ctrl)
	d := head.NewDashboard(api, leave.NewBoard(), session.Anonymous(), fixedNow)

	assert.NoError(t, d.Refresh(context.Background()))
	_, err := d.Approve(context.Background(), "7")
	assert.ErrorIs(t, err, headerrors.ErrNoDepartment)
}
