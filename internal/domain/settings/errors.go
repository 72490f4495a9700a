package settings

import "errors"

var ErrInvalidWebhookURL = errors.New("webhook URL must be a valid absolute http(s) URL")
