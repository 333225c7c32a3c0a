package http

import (
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// processSendMessageReq binds and validates the send message body.
func (h *handler) processSendMessageReq(c *gin.Context) (sendMessageReq, error) {
	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, bindingError(err)
	}
	return req, req.validate()
}

// processHistoryReq binds and validates the session id path parameter.
func (h *handler) processHistoryReq(c *gin.Context) (historyReq, error) {
	var req historyReq
	if err := c.ShouldBindUri(&req); err != nil {
		return req, errSessionIDInvalid
	}
	return req, nil
}

// bindingError turns JSON decoding and validator failures into the client
// facing validation errors.
func bindingError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "sessionId" {
			return errSessionIDType
		}
		return errMessageRequired
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Field() {
		case "SessionID":
			return errSessionIDInvalid
		case "Message":
			return errMessageRequired
		}
	}

	return errMessageRequired
}
