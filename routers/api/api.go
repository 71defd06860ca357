package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/go-points/iface/store"
	"github.com/go-points/pkg/logging"
	"github.com/go-points/utils/header"
)

const (
	ErrKeyBodyInvalid  = "body.invalid"
	ErrKeyQueryInvalid = "query.invalid"
	ErrKeyIDInvalid    = "id.invalid"
	ErrKeyIDMismatch   = "id.mismatch"
	ErrKeyIDExists     = "idexists"
	ErrKeyIDsInvalid   = "ids.invalid"
	ErrKeyUnknown      = "resource.unknown"
	ErrKeyInternal     = "internal"

	TotalCountHeader = "X-Total-Count"

	notFoundSuffix = ".notfound"
	resourceParam  = "resource"
	idParam        = "id"
	idsQuery       = "ids"
	idsSeparator   = ","
)

type Handler struct {
	store    store.Store
	alerts   header.Builder
	pageSize uint32
	log      *logrus.Entry
}

func NewHandler(s store.Store, alerts header.Builder, pageSize uint32) *Handler {
	return &Handler{
		store:    s,
		alerts:   alerts,
		pageSize: pageSize,
		log:      logging.NewLogger("api"),
	}
}

// Fail aborts the request with status and a failure alert. The message is
// returned in the body only.
func Fail(c *gin.Context, alerts header.Builder, status int, entityName, errorKey, message string) {
	alerts.CreateFailureAlert(entityName, errorKey, message).Render(c)
	c.AbortWithStatusJSON(status, gin.H{
		"error":   "error." + errorKey,
		"message": message,
	})
}

func (h *Handler) fail(c *gin.Context, status int, entityName, errorKey, message string) {
	Fail(c, h.alerts, status, entityName, errorKey, message)
}

func (h *Handler) internalError(c *gin.Context, entityName string, err error) {
	h.log.WithError(err).WithField("entity", entityName).Error("request failed")
	h.fail(c, http.StatusInternalServerError, entityName, ErrKeyInternal, "internal server error")
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
