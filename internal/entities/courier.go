package entities

import (
	"time"
)

type Courier struct {
	ID        int64
	Name      string
	Email     string
	Role      CourierRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CourierRole string

const (
	RoleAdmin   CourierRole = "admin"
	RoleCourier CourierRole = "courier"
)

const DefaultRole = RoleCourier

func (r CourierRole) String() string {
	return string(r)
}

func (r CourierRole) IsValid() bool {
	return r == RoleAdmin || r == RoleCourier
}

type CourierModify struct {
	ID    *int64
	Name  *string
	Email *string
	Role  *CourierRole
}
