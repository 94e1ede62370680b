package models

// Session is the in-memory record of who is currently using the app. Loading
// is true only while the initial restore from persistent storage is running;
// it stays false for the rest of the process lifetime. User is only
// meaningful while Token is present.
type Session struct {
	Token   string       `json:"token,omitempty"`
	User    *UserProfile `json:"user,omitempty"`
	Loading bool         `json:"-"`
}

func (s Session) Authenticated() bool {
	return s.Token != ""
}
