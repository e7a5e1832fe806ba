package handler

// Generic HTTP error messages for client responses.
// These intentionally do not expose internal error details.
const (
	ErrMsgMethodNotAllowed    = "Method not allowed"
	ErrMsgInvalidRequest      = "Invalid request body"
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgMissingQueryParam   = "Missing %s query parameter"
	ErrMsgHandleMessageFailed = "Failed to handle message"
	ErrMsgLeaderboardFailed   = "Failed to retrieve leaderboard"
)
