package rest

import (
	"go-courses-api/internal/core/domain/account"
	"go-courses-api/internal/core/domain/courses"
)

// userResponse is the public projection of an account. The password hash
// has no field here, so it cannot leak through any response path.
type userResponse struct {
	ID           string `json:"id"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	EmailAddress string `json:"emailAddress"`
}

func toUserResponse(u account.User) userResponse {
	return userResponse{
		ID:           u.ID,
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		EmailAddress: u.EmailAddress,
	}
}

// courseResponse inlines the owner's public fields with the course.
type courseResponse struct {
	ID              string       `json:"id"`
	Title           string       `json:"title"`
	Description     string       `json:"description"`
	EstimatedTime   string       `json:"estimatedTime,omitzero"`
	MaterialsNeeded string       `json:"materialsNeeded,omitzero"`
	UserID          string       `json:"userId"`
	User            userResponse `json:"user"`
}

func toCourseResponse(c courses.Course) courseResponse {
	return courseResponse{
		ID:              c.ID,
		Title:           c.Title,
		Description:     c.Description,
		EstimatedTime:   c.EstimatedTime,
		MaterialsNeeded: c.MaterialsNeeded,
		UserID:          c.UserID,
		User:            toUserResponse(c.Owner),
	}
}

func toCourseResponses(list []courses.Course) []courseResponse {
	out := make([]courseResponse, 0, len(list))
	for _, c := range list {
		out = append(out, toCourseResponse(c))
	}
	return out
}

// createCourseRequest accepts the caller-editable fields. UserID is decoded
// so a client sending it gets no error, but it is never read: ownership
// always comes from the authenticated principal.
type createCourseRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	EstimatedTime   string `json:"estimatedTime"`
	MaterialsNeeded string `json:"materialsNeeded"`
	UserID          string `json:"userId"`
}

func (r createCourseRequest) toCourse() courses.Course {
	return courses.Course{
		Title:           r.Title,
		Description:     r.Description,
		EstimatedTime:   r.EstimatedTime,
		MaterialsNeeded: r.MaterialsNeeded,
	}
}
