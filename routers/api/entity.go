package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/thoas/go-funk"
	"github.com/unknwon/com"

	"github.com/go-points/components/database"
	"github.com/go-points/components/entity"
	"github.com/go-points/components/entity/models"
	"github.com/go-points/utils"
	"github.com/go-points/utils/validate"
	"github.com/go-points/validators/query"
)

func (h *Handler) List(c *gin.Context) {
	r, ok := h.resource(c)
	if !ok {
		return
	}
	name := r.EntityName()

	qp, err := query.Parse(c, h.pageSize)
	if err == nil {
		err = r.ValidateOrders(qp.Orders)
	}
	if err != nil {
		h.fail(c, http.StatusBadRequest, name, ErrKeyQueryInvalid, err.Error())
		return
	}

	list, err := h.store.List(c.Request.Context(), r.New, &qp.Pagination, qp.Orders)
	if err != nil {
		h.internalError(c, name, err)
		return
	}

	c.Header(TotalCountHeader, strconv.FormatUint(uint64(qp.TotalCount), 10))
	c.JSON(http.StatusOK, list)
}

func (h *Handler) Get(c *gin.Context) {
	r, ok := h.resource(c)
	if !ok {
		return
	}
	name := r.EntityName()
	id, ok := h.id(c, name)
	if !ok {
		return
	}

	e := r.New()
	if err := h.store.Find(c.Request.Context(), e, id); err != nil {
		h.storeError(c, name, id, err)
		return
	}
	c.JSON(http.StatusOK, e)
}

func (h *Handler) Create(c *gin.Context) {
	r, ok := h.resource(c)
	if !ok {
		return
	}
	name := r.EntityName()

	e := r.New()
	if err := c.ShouldBindJSON(e); err != nil {
		h.fail(c, http.StatusBadRequest, name, ErrKeyBodyInvalid, err.Error())
		return
	}
	if e.GetID() != 0 {
		h.fail(c, http.StatusBadRequest, name, ErrKeyIDExists, "A new "+name+" cannot already have an ID")
		return
	}
	if !h.check(c, name, e) {
		return
	}

	if err := h.store.Create(c.Request.Context(), e); err != nil {
		h.internalError(c, name, err)
		return
	}

	id := strconv.FormatUint(e.GetID(), 10)
	h.alerts.CreateEntityCreationAlert(name, id).Render(c)
	c.Header("Location", "/api/"+r.Path+"/"+id)
	c.JSON(http.StatusCreated, e)
}

func (h *Handler) Update(c *gin.Context) {
	r, ok := h.resource(c)
	if !ok {
		return
	}
	name := r.EntityName()
	id, ok := h.id(c, name)
	if !ok {
		return
	}

	e := r.New()
	if err := c.ShouldBindJSON(e); err != nil {
		h.fail(c, http.StatusBadRequest, name, ErrKeyBodyInvalid, err.Error())
		return
	}
	if e.GetID() != 0 && e.GetID() != id {
		h.fail(c, http.StatusBadRequest, name, ErrKeyIDMismatch,
			fmt.Sprintf("body id %d does not match path id %d", e.GetID(), id))
		return
	}
	e.SetID(id)
	if !h.check(c, name, e) {
		return
	}

	if err := h.store.Save(c.Request.Context(), e); err != nil {
		h.storeError(c, name, id, err)
		return
	}

	h.alerts.CreateEntityUpdateAlert(name, strconv.FormatUint(id, 10)).Render(c)
	c.JSON(http.StatusOK, e)
}

// Patch updates the fields present in the body and keeps the others.
func (h *Handler) Patch(c *gin.Context) {
	r, ok := h.resource(c)
	if !ok {
		return
	}
	name := r.EntityName()
	id, ok := h.id(c, name)
	if !ok {
		return
	}

	e := r.New()
	if err := h.store.Find(c.Request.Context(), e, id); err != nil {
		h.storeError(c, name, id, err)
		return
	}

	var values map[string]interface{}
	if err := c.ShouldBindJSON(&values); err != nil {
		h.fail(c, http.StatusBadRequest, name, ErrKeyBodyInvalid, err.Error())
		return
	}
	if err := entity.Patch(e, values); err != nil {
		h.fail(c, http.StatusBadRequest, name, ErrKeyBodyInvalid, err.Error())
		return
	}
	if !h.check(c, name, e) {
		return
	}

	if err := h.store.Save(c.Request.Context(), e); err != nil {
		h.storeError(c, name, id, err)
		return
	}

	h.alerts.CreateEntityUpdateAlert(name, strconv.FormatUint(id, 10)).Render(c)
	c.JSON(http.StatusOK, e)
}

func (h *Handler) Delete(c *gin.Context) {
	r, ok := h.resource(c)
	if !ok {
		return
	}
	name := r.EntityName()
	id, ok := h.id(c, name)
	if !ok {
		return
	}

	if err := h.store.Delete(c.Request.Context(), r.New(), id); err != nil {
		h.storeError(c, name, id, err)
		return
	}

	h.alerts.CreateEntityDeletionAlert(name, strconv.FormatUint(id, 10)).Render(c)
	c.Status(http.StatusOK)
}

// DeleteMany deletes every id of ?ids=1,2,3, or none of them when one is
// malformed or missing.
func (h *Handler) DeleteMany(c *gin.Context) {
	r, ok := h.resource(c)
	if !ok {
		return
	}
	name := r.EntityName()

	ids, err := utils.SplitUInt64(c.Query(idsQuery), idsSeparator)
	if err != nil {
		h.fail(c, http.StatusBadRequest, name, ErrKeyIDsInvalid, err.Error())
		return
	}
	if len(ids) == 0 {
		h.fail(c, http.StatusBadRequest, name, ErrKeyIDsInvalid, "ids must list at least one id")
		return
	}
	ids = funk.Uniq(ids).([]uint64)

	ctx := c.Request.Context()
	for _, id := range ids {
		if err := h.store.Find(ctx, r.New(), id); err != nil {
			h.storeError(c, name, id, err)
			return
		}
	}
	for _, id := range ids {
		if err := h.store.Delete(ctx, r.New(), id); err != nil {
			h.storeError(c, name, id, err)
			return
		}
	}

	h.alerts.CreateEntityDeletionAlert(name, utils.JoinUInt64(ids, idsSeparator)).Render(c)
	c.Status(http.StatusOK)
}

func (h *Handler) resource(c *gin.Context) (entity.Resource, bool) {
	path := c.Param(resourceParam)
	r, ok := entity.Lookup(path)
	if !ok {
		h.fail(c, http.StatusNotFound, path, ErrKeyUnknown, fmt.Sprintf("unknown resource %q", path))
	}
	return r, ok
}

func (h *Handler) id(c *gin.Context, entityName string) (uint64, bool) {
	id, err := com.StrTo(c.Param(idParam)).Int64()
	if err != nil || id <= 0 {
		h.fail(c, http.StatusBadRequest, entityName, ErrKeyIDInvalid, "id must be a positive integer")
		return 0, false
	}
	return uint64(id), true
}

func (h *Handler) check(c *gin.Context, entityName string, e models.Entity) bool {
	err := validate.StructParam(e)
	if err == nil {
		return true
	}
	key := ErrKeyBodyInvalid
	if verr, ok := err.(*validate.Error); ok {
		key = verr.Key
	}
	h.fail(c, http.StatusBadRequest, entityName, key, err.Error())
	return false
}

func (h *Handler) storeError(c *gin.Context, entityName string, id uint64, err error) {
	if database.IsNotFound(err) {
		h.fail(c, http.StatusNotFound, entityName, entityName+notFoundSuffix,
			fmt.Sprintf("%s %d not found", entityName, id))
		return
	}
	h.internalError(c, entityName, err)
}
