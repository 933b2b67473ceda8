package admin_test

import (
	"context"
	"testing"
	"time"

	"elms-portal/internal/admin"
	"elms-portal/internal/audit"
	"elms-portal/internal/elmsapi"
	elmsapierrors "elms-portal/internal/elmsapi/errors"
	elmsapiMock "elms-portal/internal/elmsapi/mock"
	"elms-portal/internal/events"
	"elms-portal/internal/session"
	"elms-portal/internal/shared/sessioncache"
	"elms-portal/internal/validation"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

var sysAdmin = session.Identity{Role: session.RoleAdmin, Name: "System Admin"}

type recordingAudit struct {
	entries []audit.Entry
}

func (r *recordingAudit) Log(_ context.Context, e audit.Entry) {
	r.entries = append(r.entries, e)
}

func setupServiceTest(t *testing.T) (admin.Service, *elmsapiMock.MockClient, *recordingAudit) {
	ctrl := gomock.NewController(t)
	api := elmsapiMock.NewMockClient(ctrl)
	rec := &recordingAudit{}
	rosters := sessioncache.New(time.Hour, admin.NewRoster)
	return admin.NewService(api, rosters, rec), api, rec
}

func TestService_ToggleStatus(t *testing.T) {
	ctx := context.Background()
	svc, api, rec := setupServiceTest(t)

	api.EXPECT().ListHeads(gomock.Any()).Return(heads(), nil)
	api.EXPECT().ToggleHeadStatus(gomock.Any(), "1").
		Return(elmsapi.DepartmentHead{ID: "1", Status: elmsapi.HeadInactive}, nil)

	head, err := svc.ToggleStatus(ctx, "sid-1", sysAdmin, "1")

	assert.NoError(t, err)
	assert.Equal(t, elmsapi.HeadInactive, head.Status)
	assert.Equal(t, events.EventHeadStatusToggled, rec.entries[0].Action)
	assert.Equal(t, "1", rec.entries[0].Subject)
	assert.Equal(t, "Inactive", rec.entries[0].Meta["status"])

	ov, err := svc.Overview(ctx, "sid-1", admin.Filter{}, false)
	assert.NoError(t, err)
	assert.Equal(t, 0, ov.Stats.ActiveDepartmentHeads)
}

func TestService_CreateHead(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, api, rec := setupServiceTest(t)
		api.EXPECT().CreateHead(gomock.Any(), gomock.Any()).Return(nil)
		api.EXPECT().ListHeads(gomock.Any()).Return(heads(), nil)

		ov, err := svc.CreateHead(ctx, "sid-1", sysAdmin, validation.CreateHeadForm{
			EmployeeID: "DH004", Name: "Barbara", Department: "Marketing", Password: "secret1", ConfirmPassword: "secret1",
		})

		assert.NoError(t, err)
		assert.Len(t, ov.Heads, 3)
		assert.Equal(t, events.EventHeadCreated, rec.entries[0].Action)
		assert.Equal(t, audit.OutcomeSuccess, rec.entries[0].Outcome)
	})

	t.Run("success - reload failure after create is audited as success", func(t *testing.T) {
		svc, api, rec := setupServiceTest(t)
		api.EXPECT().CreateHead(gomock.Any(), gomock.Any()).Return(nil)
		api.EXPECT().ListHeads(gomock.Any()).Return(nil, elmsapierrors.ErrNoResponse)

		ov, err := svc.CreateHead(ctx, "sid-1", sysAdmin, validation.CreateHeadForm{
			EmployeeID: "DH004", Name: "Barbara", Department: "Marketing", Password: "secret1", ConfirmPassword: "secret1",
		})

		assert.NoError(t, err)
		assert.Len(t, ov.Heads, 1)
		assert.Equal(t, "DH004", ov.Heads[0].EmployeeID)
		assert.Equal(t, audit.OutcomeSuccess, rec.entries[0].Outcome)
	})

	t.Run("negative - invalid form is not audited", func(t *testing.T) {
		svc, _, rec := setupServiceTest(t)

		_, err := svc.CreateHead(ctx, "sid-1", sysAdmin, validation.CreateHeadForm{})

		assert.Error(t, err)
		assert.Empty(t, rec.entries)
	})
}
