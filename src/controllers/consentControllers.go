package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/kedeea/kedeea-consent-api/src/dtos"
	"github.com/kedeea/kedeea-consent-api/src/middleware"
	"github.com/kedeea/kedeea-consent-api/src/models"
	"github.com/kedeea/kedeea-consent-api/src/services"
)

const (
	invalidAccessCodeDetail = "Invalid access code"
	persistenceFailedDetail = "Could not save consent"
)

type ConsentController struct {
	store        services.ConsentStore
	guard        *services.AccessGuard
	exposeErrors bool
	today        func() models.Date
}

// NewConsentController creates the handler for consent submissions.
// With exposeErrors set, store error text is returned to the caller in 500 replies.
func NewConsentController(store services.ConsentStore, guard *services.AccessGuard, exposeErrors bool) *ConsentController {
	registerValidators()
	return &ConsentController{
		store:        store,
		guard:        guard,
		exposeErrors: exposeErrors,
		today:        models.Today,
	}
}

// CreateConsent handles POST requests carrying a filled consent form
func (c *ConsentController) CreateConsent(ctx *gin.Context) {
	var req dtos.ConsentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, validationErrorResponse(err))
		return
	}

	if !c.guard.Allow(req.Code()) {
		ctx.JSON(http.StatusForbidden, dtos.ErrorResponse{Detail: invalidAccessCodeDetail})
		return
	}

	participant, consent := req.ToModels(c.today())
	participantID, err := c.store.Submit(ctx.Request.Context(), participant, consent)
	if err != nil {
		entry := log.WithError(err).WithField("request_id", ctx.GetString(middleware.RequestIDKey))
		var perr *services.PersistenceError
		if errors.As(err, &perr) {
			entry = entry.WithField("op", perr.Op)
		}
		entry.Error("failed to store consent")

		ctx.JSON(http.StatusInternalServerError, dtos.ErrorResponse{Detail: c.errorDetail(err)})
		return
	}

	log.WithFields(log.Fields{
		"request_id":  ctx.GetString(middleware.RequestIDKey),
		"participant": participantID,
	}).Info("consent stored")

	ctx.JSON(http.StatusOK, dtos.ConsentResponse{Status: "ok", ParticipantID: participantID})
}

func (c *ConsentController) errorDetail(err error) string {
	if c.exposeErrors {
		return err.Error()
	}
	return persistenceFailedDetail
}
