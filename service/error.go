package service

import (
	"errors"

	"github.com/gamebridge-labs/gamebridge/bridge"
)

// HTTPStatus maps a bridge failure to the status the read API reports it
// under.
func HTTPStatus(err error) int {
	var bridgeErr bridge.Err
	if !errors.As(err, &bridgeErr) {
		return 500
	}
	switch bridgeErr.Code {
	case bridge.ErrNotFound.Code, bridge.ErrResourceNotDefined.Code:
		return 404
	case bridge.ErrUnauthorized.Code:
		return 403
	default:
		return 400
	}
}
