package courier

import "time"

type CourierDB struct {
	ID        int64
	Name      string
	Email     string
	Role      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type CourierModifyDB struct {
	ID    *int64
	Name  *string
	Email *string
	Role  *string
}
