package entity

import (
	coreEntity "slotswapper/core/entity"
)

type User struct {
	Name      string  `db:"name" json:"name"`
	Email     string  `db:"email" json:"email"`
	Password  string  `db:"password" json:"-"`
	AvatarURL *string `db:"avatar_url" json:"avatar_url,omitempty"`
	coreEntity.BaseEntity
}
