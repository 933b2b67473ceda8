package rbac

// Resources and actions guarded by the portal.
const (
	ResourceOwnLeave        = "own_leave"
	ResourceLeaveReport     = "leave_report"
	ResourceDepartmentLeave = "department_leave"
	ResourceHead            = "department_head"
	ResourcePermission      = "permission"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionDecide = "decide"
	ActionManage = "manage"
)

type RolePermissionRow struct {
	Role     string
	Resource string
	Action   string
}

type Repository interface {
	GetRolePermissions() ([]RolePermissionRow, error)
}

type staticRepository struct {
	rows []RolePermissionRow
}

// NewRepository returns the built-in portal policy.
func NewRepository() Repository {
	return &staticRepository{rows: []RolePermissionRow{
		{Role: "employee", Resource: ResourceOwnLeave, Action: ActionRead},
		{Role: "employee", Resource: ResourceOwnLeave, Action: ActionCreate},
		{Role: "employee", Resource: ResourceLeaveReport, Action: ActionRead},
		{Role: "employee", Resource: ResourcePermission, Action: ActionRead},

		{Role: "head", Resource: ResourceDepartmentLeave, Action: ActionRead},
		{Role: "head", Resource: ResourceDepartmentLeave, Action: ActionDecide},
		{Role: "head", Resource: ResourcePermission, Action: ActionRead},

		{Role: "admin", Resource: ResourceHead, Action: ActionRead},
		{Role: "admin", Resource: ResourceHead, Action: ActionManage},
		{Role: "admin", Resource: ResourcePermission, Action: ActionRead},
	}}
}

func (r *staticRepository) GetRolePermissions() ([]RolePermissionRow, error) {
	out := make([]RolePermissionRow, len(r.rows))
	copy(out, r.rows)
	return out, nil
}
