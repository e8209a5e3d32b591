package controllers

import (
	"net/http"

	"github.com/fincontrol/backend/pkg/httputil"
	"github.com/fincontrol/backend/pkg/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// editable is implemented by all request bodies that create or update resources.
type editable interface {
	validate() error
}

// bindEditable binds the request body to e and validates it. On failure, the
// error response is written and false is returned.
func bindEditable(c *gin.Context, e editable) bool {
	err := httputil.BindData(c, e)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return false
	}

	err = e.validate()
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return false
	}

	return true
}

// bindFilter binds the query string to the filter.
func bindFilter(c *gin.Context, filter any) bool {
	if err := c.ShouldBindQuery(filter); err != nil {
		httputil.NewError(c, http.StatusBadRequest, httputil.ErrInvalidQueryString)
		return false
	}
	return true
}

// getOwned returns the resource with the ID from the path if it belongs to the
// authenticated user.
func getOwned[T models.Model](c *gin.Context, co Controller) (resource T, ok bool) {
	id, err := httputil.UUIDFromString(c.Param("id"))
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return
	}

	err = co.owned(c).First(&resource, "id = ?", id).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	return resource, true
}

// listOwned executes the query with the pagination from the query string.
// The query must already be limited to the user's resources.
func listOwned[T models.Model](c *gin.Context, q *gorm.DB) ([]T, *Pagination, bool) {
	offset, limit, err := httputil.Pagination(c.Request.URL, defaultLimit, maxLimit)
	if err != nil {
		httputil.NewError(c, http.StatusBadRequest, err)
		return nil, nil, false
	}

	q = q.Session(&gorm.Session{})

	var total int64
	var model T
	err = q.Model(&model).Count(&total).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return nil, nil, false
	}

	resources := make([]T, 0)
	err = q.Offset(offset).Limit(limit).Find(&resources).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return nil, nil, false
	}

	return resources, &Pagination{
		Count:  len(resources),
		Total:  total,
		Offset: offset,
		Limit:  limit,
	}, true
}

// create stores a new resource.
func create(c *gin.Context, co Controller, resource any) bool {
	err := co.db(c).Create(resource).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return false
	}
	return true
}

// save updates all fields of an existing resource.
func save(c *gin.Context, co Controller, resource any) bool {
	err := co.db(c).Save(resource).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return false
	}
	return true
}

// deleteOwned deletes the resource with the ID from the path.
func deleteOwned[T models.Model](c *gin.Context, co Controller) {
	resource, ok := getOwned[T](c, co)
	if !ok {
		return
	}

	err := co.db(c).Delete(&resource).Error
	if err != nil {
		httputil.NewError(c, status(err), err)
		return
	}

	c.Status(http.StatusNoContent)
}

// optionsDetail returns the allowed HTTP methods for an existing resource.
func optionsDetail[T models.Model](c *gin.Context, co Controller) {
	_, ok := getOwned[T](c, co)
	if !ok {
		return
	}

	httputil.OptionsGetPatchDelete(c)
}
