package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-storage-api/internal/application/ports"
	"file-storage-api/internal/interface/api/rest/dto/file"
)

type SearchController struct {
	logger        *zap.Logger
	searchService ports.SearchService
}

func NewSearchController(
	r *gin.Engine,
	logger *zap.Logger,
	searchService ports.SearchService,
	authMW gin.HandlerFunc,
) *SearchController {
	sc := &SearchController{
		logger:        logger,
		searchService: searchService,
	}

	r.GET(RouteSearchName, authMW, sc.SearchNameHandler)
	r.GET(RouteSearchExtension, authMW, sc.SearchExtensionHandler)

	return sc
}

func (sc *SearchController) SearchNameHandler(c *gin.Context) {
	userUUID, ok := userUUIDFromCtx(c)
	if !ok {
		return
	}

	// the query length guard lives in the service
	refs, err := sc.searchService.SearchByName(c.Request.Context(), userUUID, c.Query("query"))
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}

	c.JSON(http.StatusOK, file.ResponseData{Data: file.ToResponseObjects(refs)})
}

func (sc *SearchController) SearchExtensionHandler(c *gin.Context) {
	userUUID, ok := userUUIDFromCtx(c)
	if !ok {
		return
	}

	refs, err := sc.searchService.SearchByExtension(c.Request.Context(), userUUID, c.Query("query"))
	if err != nil {
		respondError(c, sc.logger, err)
		return
	}

	c.JSON(http.StatusOK, file.ResponseData{Data: file.ToResponseObjects(refs)})
}
