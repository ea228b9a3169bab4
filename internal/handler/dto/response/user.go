package response

import (
	"time"

	"library-admin/internal/usecase/commands"
	"library-admin/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID            uuid.UUID   `json:"id"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	Username      string      `json:"username"`
	Email         string      `json:"email"`
	Gender        string      `json:"gender"`
	Address       string      `json:"address"`
	ViolationFlag bool        `json:"violationFlag"`
	IssuedBookIDs []uuid.UUID `json:"issuedBookIds"`
	JoinedAt      time.Time   `json:"joinedAt"`
}

type UserPageResponse struct {
	Users []*UserResponse `json:"users"`
	Page  PageResponse    `json:"page"`
}

type UserProfileResponse struct {
	User       *UserResponse       `json:"user"`
	Issues     []*IssueResponse    `json:"issues"`
	Activities []*ActivityResponse `json:"activities"`
}

// CreatedUserResponse is the only place the initial password is returned.
type CreatedUserResponse struct {
	ID              uuid.UUID `json:"id"`
	Username        string    `json:"username"`
	InitialPassword string    `json:"initialPassword"`
}

type FlagResponse struct {
	UserID  uuid.UUID `json:"userId"`
	Flagged bool      `json:"flagged"`
}

type DeletedUserResponse struct {
	IssuesClosed      int64 `json:"issuesClosed"`
	ActivitiesRemoved int64 `json:"activitiesRemoved"`
}

func FromUserView(v *queries.UserView) *UserResponse {
	r := copyInto[UserResponse](v)
	if r.IssuedBookIDs == nil {
		r.IssuedBookIDs = []uuid.UUID{}
	}
	return r
}

func FromUserViews(vs []*queries.UserView) []*UserResponse {
	out := make([]*UserResponse, 0, len(vs))
	for _, v := range vs {
		out = append(out, FromUserView(v))
	}
	return out
}

func FromUserPage(p *queries.UserPage) *UserPageResponse {
	return &UserPageResponse{
		Users: FromUserViews(p.Items),
		Page:  PageResponse(p.Page),
	}
}

func FromUserProfile(p *queries.UserProfileView) *UserProfileResponse {
	return &UserProfileResponse{
		User:       FromUserView(p.User),
		Issues:     FromIssueViews(p.Issues),
		Activities: FromActivityViews(p.Activities),
	}
}

func FromUserResult(r *commands.UserResult) *CreatedUserResponse {
	return &CreatedUserResponse{
		ID:              r.UserID,
		Username:        r.Username,
		InitialPassword: r.InitialPassword,
	}
}

func FromFlagResult(r *commands.FlagResult) *FlagResponse {
	return &FlagResponse{UserID: r.UserID, Flagged: r.Flagged}
}

func FromDeleteUserResult(r *commands.DeleteUserResult) *DeletedUserResponse {
	return &DeletedUserResponse{IssuesClosed: r.IssuesClosed, ActivitiesRemoved: r.ActivitiesRemoved}
}
