package rest

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"file-storage-api/internal/application/ports"
	domainFile "file-storage-api/internal/domain/file"
	"file-storage-api/internal/interface/api/rest/dto/file"
	"file-storage-api/internal/interface/api/rest/validator"
)

type ActionController struct {
	logger        *zap.Logger
	actionService ports.ActionService
}

func NewActionController(
	r *gin.Engine,
	logger *zap.Logger,
	actionService ports.ActionService,
	authMW gin.HandlerFunc,
) *ActionController {
	ac := &ActionController{
		logger:        logger,
		actionService: actionService,
	}

	r.POST(RouteUpload, authMW, ac.UploadHandler)
	r.GET(RouteListMe, authMW, ac.ListMeHandler)
	r.GET(RouteDownload, authMW, ac.DownloadPresignedHandler)
	r.POST(RouteMoveToTrash, authMW, ac.MoveToTrashHandler)
	r.GET(RouteTrash, authMW, ac.TrashHandler)
	r.POST(RouteRestoreFile, authMW, ac.RestoreHandler)
	r.DELETE(RouteDeleteFile, authMW, ac.DeleteHandler)

	return ac
}

func (ac *ActionController) UploadHandler(c *gin.Context) {
	userUUID, ok := userUUIDFromCtx(c)
	if !ok {
		return
	}

	fh, err := c.FormFile("file")
	if err != nil {
		respondBadRequest(c, "file is required")
		return
	}

	ref, err := ac.actionService.Upload(c.Request.Context(), userUUID, fh)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusCreated, file.ToResponseObject(*ref))
}

func (ac *ActionController) ListMeHandler(c *gin.Context) {
	ac.listHandler(c, ac.actionService.FindFiles)
}

func (ac *ActionController) TrashHandler(c *gin.Context) {
	ac.listHandler(c, ac.actionService.FindTrash)
}

func (ac *ActionController) listHandler(
	c *gin.Context,
	list func(ctx context.Context, userUUID uuid.UUID, page, limit int) (*domainFile.Listing, error),
) {
	userUUID, ok := userUUIDFromCtx(c)
	if !ok {
		return
	}

	page, ok := validator.ValidatePage(c.Query("page"))
	if !ok {
		respondBadRequest(c, "page must be an integer")
		return
	}
	limit, ok := validator.ValidateLimit(c.Query("limit"))
	if !ok {
		respondBadRequest(c, "limit must be an integer")
		return
	}

	out, err := list(c.Request.Context(), userUUID, page, limit)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, file.ToResponseListing(*out))
}

func (ac *ActionController) DownloadPresignedHandler(c *gin.Context) {
	userUUID, fileName, ok := ac.fileNameParam(c)
	if !ok {
		return
	}

	url, err := ac.actionService.PresignDownload(c.Request.Context(), userUUID, fileName)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, file.URLResponse{URL: url})
}

func (ac *ActionController) MoveToTrashHandler(c *gin.Context) {
	userUUID, fileName, ok := ac.fileNameParam(c)
	if !ok {
		return
	}

	if err := ac.actionService.MoveToTrash(c.Request.Context(), userUUID, fileName); err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "file moved to trash"})
}

func (ac *ActionController) RestoreHandler(c *gin.Context) {
	userUUID, fileName, ok := ac.fileNameParam(c)
	if !ok {
		return
	}

	if err := ac.actionService.Restore(c.Request.Context(), userUUID, fileName); err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "file restored"})
}

func (ac *ActionController) DeleteHandler(c *gin.Context) {
	userUUID, fileName, ok := ac.fileNameParam(c)
	if !ok {
		return
	}

	if err := ac.actionService.Delete(c.Request.Context(), userUUID, fileName); err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "file deleted"})
}

func (ac *ActionController) fileNameParam(c *gin.Context) (uuid.UUID, string, bool) {
	userUUID, ok := userUUIDFromCtx(c)
	if !ok {
		return uuid.Nil, "", false
	}

	fileName := c.Param("fileName")
	if !validator.ValidateFileName(fileName) {
		respondBadRequest(c, "invalid file name")
		return uuid.Nil, "", false
	}

	return userUUID, fileName, true
}
