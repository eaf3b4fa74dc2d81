package models

// Response is the uniform envelope wrapping every API reply.
// Handled failures carry Success=false and a human-readable message;
// successes additionally carry the operation's payload in Data.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// SignInResponse is the Data payload of a successful sign-in: the sanitized
// user plus the freshly minted bearer token.
type SignInResponse struct {
	User
	Token string `json:"token"`
}

// PageMeta describes one page of a paginated listing.
// TotalPages is ceil(Total/Limit).
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// DocumentPage is the Data payload of GET /documents/list.
type DocumentPage struct {
	Data []Document `json:"data"`
	Meta PageMeta   `json:"meta"`
}
