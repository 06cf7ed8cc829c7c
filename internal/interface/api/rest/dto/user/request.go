package user

type UpdateRoleRequest struct {
	Role string `json:"role"`
}
