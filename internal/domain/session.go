package domain

type Role string

const (
	RoleAdmin     Role = "admin"
	RoleManager   Role = "manager"
	RoleFinance   Role = "finance"
	RoleMarketing Role = "marketing"
	RoleArtist    Role = "artist"
	RoleViewer    Role = "viewer"
)

// rolePrecedence orders roles from most to least privileged.
var rolePrecedence = []Role{RoleAdmin, RoleManager, RoleFinance, RoleMarketing, RoleArtist, RoleViewer}

// Session is the caller identity of one request. It is built once by the
// transport layer and passed explicitly to the services.
type Session struct {
	UserID      string
	Roles       map[Role]struct{}
	PrimaryRole Role
	IsAdmin     bool
}

// NewSession builds a session from the role names stored for the user.
// Unknown names are ignored; a user without roles is a viewer.
func NewSession(userID string, roles []string) Session {
	s := Session{UserID: userID, Roles: make(map[Role]struct{}, len(roles))}
	for _, r := range roles {
		for _, known := range rolePrecedence {
			if Role(r) == known {
				s.Roles[known] = struct{}{}
			}
		}
	}
	if len(s.Roles) == 0 {
		s.Roles[RoleViewer] = struct{}{}
	}
	for _, r := range rolePrecedence {
		if _, ok := s.Roles[r]; ok {
			s.PrimaryRole = r
			break
		}
	}
	s.IsAdmin = s.Has(RoleAdmin)
	return s
}

func (s Session) Has(r Role) bool {
	_, ok := s.Roles[r]
	return ok
}

func (s Session) HasAny(roles ...Role) bool {
	for _, r := range roles {
		if s.Has(r) {
			return true
		}
	}
	return false
}

// CanManageLicenses reports whether the caller may write sync licenses.
func (s Session) CanManageLicenses() bool {
	return s.IsAdmin || s.Has(RoleManager)
}

// ActorID returns a pointer to the user id for audit columns, nil when anonymous.
func (s Session) ActorID() *string {
	if s.UserID == "" {
		return nil
	}
	id := s.UserID
	return &id
}
