package entities

type SessionState string

const (
	SessionUnauthenticated SessionState = "unauthenticated"
	SessionAuthenticating  SessionState = "authenticating"
	SessionProfileLoading  SessionState = "profile_loading"
	SessionReady           SessionState = "ready"
	SessionDegraded        SessionState = "degraded"
)

func (s SessionState) String() string {
	return string(s)
}

// Principal аутентифицированный пользователь запроса.
// В состоянии degraded профиля нет, известны только id и email из токена.
type Principal struct {
	UserID  int64
	Email   string
	State   SessionState
	Profile *Courier
}

func (p *Principal) Role() CourierRole {
	if p == nil || p.Profile == nil {
		return ""
	}
	return p.Profile.Role
}

func (p *Principal) IsAdmin() bool {
	return p.State == SessionReady && p.Role() == RoleAdmin
}

// CanAccess админ видит все, курьер только активные заказы, назначенные на него.
func (p *Principal) CanAccess(order *Order) bool {
	if p == nil || order == nil {
		return false
	}
	if p.IsAdmin() {
		return true
	}
	if order.Archived || order.AssignedCourierID == nil {
		return false
	}
	return *order.AssignedCourierID == p.UserID
}
