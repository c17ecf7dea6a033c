package auditlog

// ActorRef is the populated actor fragment on a log entry.
type ActorRef struct {
	ID       string `json:"id"`
	Name     string `json:"userName"`
	FullName string `json:"userFullName"`
}

type LogResponse struct {
	ID         string    `json:"id"`
	Actor      *ActorRef `json:"logUser,omitempty"`
	Action     string    `json:"logAction"`
	Resource   string    `json:"logResource"`
	ResourceID string    `json:"logResourceId,omitempty"`
	Details    string    `json:"logDetails,omitempty"`
	IPAddress  string    `json:"logIpAddress,omitempty"`
	UserAgent  string    `json:"logUserAgent,omitempty"`
	CreatedAt  string    `json:"createdAt"`
}

// ListFilter narrows the audit listing; zero values mean "any".
type ListFilter struct {
	Action   string
	Resource string
	UserID   string
	Limit    int
}
