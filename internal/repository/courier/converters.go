package courier

import (
	"strings"

	"courierdesk/internal/entities"
)

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}

	return &entities.Courier{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		Role:      entities.CourierRole(c.Role),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func FromDomainModify(courierModify *entities.CourierModify) *CourierModifyDB {
	if courierModify == nil {
		return nil
	}
	courierDB := &CourierModifyDB{
		ID:   courierModify.ID,
		Name: courierModify.Name,
	}

	if courierModify.Email != nil {
		// уникальность email проверяется без учета регистра
		email := strings.ToLower(strings.TrimSpace(*courierModify.Email))
		courierDB.Email = &email
	}
	if courierModify.Role != nil {
		role := courierModify.Role.String()
		courierDB.Role = &role
	}

	return courierDB
}

func ToDomainList(couriersDB []CourierDB) []entities.Courier {
	result := make([]entities.Courier, len(couriersDB))
	for i := range couriersDB {
		result[i] = *ToDomain(&couriersDB[i])
	}
	return result
}
