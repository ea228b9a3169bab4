package request

import (
	"library-admin/internal/usecase/commands"
)

type CreateUserRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"required"`
	Gender    string `json:"gender"`
	Address   string `json:"address"`
}

func (r CreateUserRequest) ToInput() commands.AddUserInput {
	return commands.AddUserInput(r)
}

type UpdateUserRequest struct {
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
	Username  *string `json:"username,omitempty"`
	Email     *string `json:"email,omitempty"`
	Gender    *string `json:"gender,omitempty"`
	Address   *string `json:"address,omitempty"`
}

func (r UpdateUserRequest) ToInput() commands.UpdateUserInput {
	return commands.UpdateUserInput(r)
}

type SetFlagRequest struct {
	Flagged *bool `json:"flagged" binding:"required"`
}

// PageQuery binds an optional 1-based page. A pointer lets page=0 reach
// the min rule instead of reading as absent.
type PageQuery struct {
	Page *int `form:"page" binding:"omitempty,min=1"`
}

func (q PageQuery) PageNumber() int { return deref(q.Page) }

func deref(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}

type SearchUsersQuery struct {
	Value string `form:"value" binding:"required"`
}
