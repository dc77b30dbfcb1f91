package handlers

import (
	"errors"
	"net/http"
	"strings"

	"flicktickets/internal/domain"
	"flicktickets/internal/http/middleware"

	"github.com/gin-gonic/gin"
)

func requestID(c *gin.Context) string {
	return middleware.GetRequestID(c)
}

// respondError writes the storefront's {success:false, message} envelope.
func respondError(c *gin.Context, status int, message, detail string) {
	payload := gin.H{
		"success": false,
		"message": message,
	}
	if detail != "" {
		payload["detail"] = detail
	}
	if rid := requestID(c); rid != "" {
		payload["request_id"] = rid
	}
	c.JSON(status, payload)
}

// RespondDomainError maps domain errors to HTTP responses. fallback is the
// message used for anything that is not the client's fault.
func RespondDomainError(c *gin.Context, err error, fallback string) {
	switch {
	case domain.IsValidation(err):
		respondError(c, http.StatusBadRequest, clientMessage(err), "")
	case domain.IsNotFound(err):
		respondError(c, http.StatusNotFound, clientMessage(err), "")
	case domain.IsConflict(err):
		respondError(c, http.StatusConflict, clientMessage(err), "")
	default:
		_ = c.Error(err)
		respondError(c, http.StatusInternalServerError, fallback, "")
	}
}

// clientMessage is the text a domain error shows to the storefront, without
// the field prefixes used in logs.
func clientMessage(err error) string {
	var verr domain.ValidationError
	if errors.As(err, &verr) && verr.Msg != "" {
		return verr.Msg
	}
	var cerr domain.ConflictError
	if errors.As(err, &cerr) && cerr.Msg != "" {
		return cerr.Msg
	}
	var nerr domain.NotFoundError
	if errors.As(err, &nerr) && nerr.Resource != "" {
		r := nerr.Resource
		return strings.ToUpper(r[:1]) + r[1:] + " not found."
	}
	return err.Error()
}
