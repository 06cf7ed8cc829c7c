package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-storage-api/internal/application/ports"
	domainUser "file-storage-api/internal/domain/user"
	"file-storage-api/internal/interface/api/rest/dto/file"
	"file-storage-api/internal/interface/api/rest/dto/user"
	"file-storage-api/internal/interface/api/rest/middleware"
	"file-storage-api/internal/interface/api/rest/validator"
)

type UserController struct {
	logger      *zap.Logger
	userService ports.UserService
}

func NewUserController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	authMW gin.HandlerFunc,
) *UserController {
	uc := &UserController{
		logger:      logger,
		userService: userService,
	}

	r.GET(RouteUserMe, authMW, uc.GetMeHandler)
	r.POST(RouteUserAvatar, authMW, uc.UploadAvatarHandler)

	adminOnly := middleware.RequireRole(domainUser.RoleAdmin)
	r.GET(RouteUsers, authMW, adminOnly, uc.GetUsersHandler)
	r.PATCH(RouteUserRole, authMW, adminOnly, uc.UpdateUserRoleHandler)
	r.DELETE(RouteUser, authMW, adminOnly, uc.DeleteUserHandler)

	return uc
}

func (uc *UserController) GetMeHandler(c *gin.Context) {
	userUUID, ok := userUUIDFromCtx(c)
	if !ok {
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), userUUID)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	avatarURL, err := uc.userService.GetAvatarURL(c.Request.Context(), userUUID)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	resp := user.ToResponseUser(*u)
	resp.AvatarURL = avatarURL

	c.JSON(http.StatusOK, resp)
}

func (uc *UserController) UploadAvatarHandler(c *gin.Context) {
	userUUID, ok := userUUIDFromCtx(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, "file is required")
		return
	}

	url, err := uc.userService.UploadAvatar(c.Request.Context(), userUUID, fh)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, file.URLResponse{URL: url})
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	page, ok := validator.ValidatePage(c.Query("page"))
	if !ok {
		respondBadRequest(c, "page must be an integer")
		return
	}

	users, err := uc.userService.FindUsers(c.Request.Context(), page)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Data: user.ToResponseUsers(users),
	})
}

func (uc *UserController) UpdateUserRoleHandler(c *gin.Context) {
	ok, userUUID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		respondBadRequest(c, "user_id must be a valid UUID")
		return
	}

	var req user.UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}

	u, err := uc.userService.UpdateUserRole(c.Request.Context(), userUUID, req.Role)
	if err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	ok, userUUID := validator.IsUUID(c.Param("user_id"))
	if !ok {
		respondBadRequest(c, "user_id must be a valid UUID")
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), userUUID); err != nil {
		respondError(c, uc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
