package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	users UserService
}

func NewUserHandler(users UserService) *UserHandler {
	return &UserHandler{users: users}
}

// Me godoc
// @Summary  The authenticated user
// @Tags     Users
// @Produce  json
// @Success  200  {object}  UserResponse
// @Security BearerAuth
// @Router   /me [get]
func (h *UserHandler) Me(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	user, err := h.users.Me(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, "User", "retrieve user")
		return
	}
	c.JSON(http.StatusOK, toUserResponse(user))
}

// Members godoc
// @Summary  Members of the caller's organization
// @Tags     Users
// @Produce  json
// @Success  200  {array}  MemberResponse
// @Security BearerAuth
// @Router   /organization/members [get]
func (h *UserHandler) Members(c *gin.Context) {
	caller, ok := callerOrAbort(c)
	if !ok {
		return
	}

	members, err := h.users.Members(c.Request.Context(), caller)
	if err != nil {
		respondError(c, err, "Organization", "retrieve members")
		return
	}

	response := make([]MemberResponse, len(members))
	for i, m := range members {
		response[i] = MemberResponse{
			UserResponse: *toUserResponse(&m.User),
			Role:         string(m.Role),
		}
	}
	c.JSON(http.StatusOK, response)
}
