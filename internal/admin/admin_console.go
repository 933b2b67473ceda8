package admin

import (
	"context"
	"strings"

	adminerrors "elms-portal/internal/admin/errors"
	"elms-portal/internal/department"
	"elms-portal/internal/elmsapi"
	"elms-portal/internal/leave"
	"elms-portal/internal/validation"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// LocalIDPrefix marks heads known only to this session.
const LocalIDPrefix = "local-"

// Console is the system admin's view over department head accounts.
type Console struct {
	api    elmsapi.Client
	roster *Roster
	logger *zap.Logger
}

func NewConsole(api elmsapi.Client, roster *Roster, logger ...*zap.Logger) *Console {
	l := zap.L().Named("admin.console")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("admin.console")
	}
	return &Console{api: api, roster: roster, logger: l}
}

// Refresh reloads every head. A head without a status counts as inactive.
func (c *Console) Refresh(ctx context.Context) error {
	heads, err := c.api.ListHeads(ctx)
	if err != nil {
		c.logger.Warn("refresh department heads failed", zap.Error(err))
		return err
	}
	for i := range heads {
		if heads[i].Status == "" {
			heads[i].Status = elmsapi.HeadInactive
		}
	}
	c.roster.Replace(heads)
	return nil
}

// Overview reports stats over every head and the heads matching f.
func (c *Console) Overview(f Filter) Overview {
	heads := c.roster.Snapshot()
	return Overview{
		Heads:       filterHeads(heads, f),
		Stats:       summarize(heads),
		Departments: department.Codes(),
	}
}

// CreateHead validates form, creates the account and reloads the list. Once
// the account exists a failed reload is not an error: the new head is added
// locally under a temporary id until the next refresh.
func (c *Console) CreateHead(ctx context.Context, form validation.CreateHeadForm) error {
	if err := validation.Check(form); err != nil {
		return err
	}

	req := elmsapi.CreateHeadRequest{
		EmployeeID: strings.TrimSpace(form.EmployeeID),
		Name:       strings.TrimSpace(form.Name),
		Department: form.Department,
		Password:   form.Password,
	}
	if err := c.api.CreateHead(ctx, req); err != nil {
		c.logger.Warn("create department head failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return err
	}

	if err := c.Refresh(ctx); err != nil {
		c.logger.Warn("reload after create failed, keeping the head locally",
			zap.String("employee_id", req.EmployeeID),
			zap.Error(err),
		)
		c.roster.Upsert(elmsapi.DepartmentHead{
			ID:         leave.ID(LocalIDPrefix + uuid.NewString()),
			EmployeeID: req.EmployeeID,
			Name:       req.Name,
			Department: req.Department,
			Status:     elmsapi.HeadInactive,
		})
	}
	return nil
}

func (c *Console) UpdateHead(ctx context.Context, id string, form validation.UpdateHeadForm) (elmsapi.DepartmentHead, error) {
	current, err := c.lookup(ctx, id)
	if err != nil {
		return elmsapi.DepartmentHead{}, err
	}
	if err := validation.Check(form); err != nil {
		return elmsapi.DepartmentHead{}, err
	}

	req := elmsapi.UpdateHeadRequest{
		EmployeeID: strings.TrimSpace(form.EmployeeID),
		Name:       strings.TrimSpace(form.Name),
		Department: form.Department,
		Password:   form.Password,
		Status:     current.Status,
	}
	if err := c.api.UpdateHead(ctx, id, req); err != nil {
		c.logger.Warn("update department head failed", zap.String("head_id", id), zap.Error(err))
		return elmsapi.DepartmentHead{}, err
	}

	current.EmployeeID = req.EmployeeID
	current.Name = req.Name
	current.Department = req.Department
	c.roster.Upsert(current)
	return current, nil
}

func (c *Console) DeleteHead(ctx context.Context, id string) error {
	if _, err := c.lookup(ctx, id); err != nil {
		return err
	}
	if err := c.api.DeleteHead(ctx, id); err != nil {
		c.logger.Warn("delete department head failed", zap.String("head_id", id), zap.Error(err))
		return err
	}
	c.roster.Remove(id)
	return nil
}

// ToggleStatus flips a head between Active and Inactive. The API's answer
// wins; when it carries no head the local entry is flipped instead.
func (c *Console) ToggleStatus(ctx context.Context, id string) (elmsapi.DepartmentHead, error) {
	current, err := c.lookup(ctx, id)
	if err != nil {
		return elmsapi.DepartmentHead{}, err
	}

	updated, err := c.api.ToggleHeadStatus(ctx, id)
	if err != nil {
		c.logger.Warn("toggle department head failed", zap.String("head_id", id), zap.Error(err))
		return elmsapi.DepartmentHead{}, err
	}
	if updated.ID == "" {
		updated = current
		updated.Status = current.Status.Toggled()
	}
	c.roster.Upsert(updated)
	return updated, nil
}

// lookup finds id in the roster, reloading once when it is not there.
func (c *Console) lookup(ctx context.Context, id string) (elmsapi.DepartmentHead, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return elmsapi.DepartmentHead{}, adminerrors.ErrInvalidHeadID
	}
	if h, ok := c.roster.Find(id); ok {
		return h, nil
	}
	if err := c.Refresh(ctx); err != nil {
		return elmsapi.DepartmentHead{}, err
	}
	if h, ok := c.roster.Find(id); ok {
		return h, nil
	}
	return elmsapi.DepartmentHead{}, adminerrors.ErrHeadNotFound
}

func summarize(heads []elmsapi.DepartmentHead) Stats {
	st := Stats{
		TotalDepartmentHeads: len(heads),
		TotalDepartments:     department.Count(),
	}
	for _, h := range heads {
		switch h.Status {
		case elmsapi.HeadActive:
			st.ActiveDepartmentHeads++
		case elmsapi.HeadInactive:
			st.InactiveDepartmentHeads++
		}
	}
	return st
}

func filterHeads(heads []elmsapi.DepartmentHead, f Filter) []elmsapi.DepartmentHead {
	q := strings.ToLower(strings.TrimSpace(f.Search))
	out := make([]elmsapi.DepartmentHead, 0, len(heads))
	for _, h := range heads {
		if f.Department != "" && h.Department != f.Department {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(h.Name), q) &&
			!strings.Contains(strings.ToLower(h.EmployeeID), q) {
			continue
		}
		out = append(out, h)
	}
	return out
}
