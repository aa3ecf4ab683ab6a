package models

import "time"

type User struct {
	ID        int64 `chela:"primaryKey;autoIncrement"`
	Name      string
	Email     string `chela:"column:email"`
	Active    bool
	CreatedAt time.Time
	Orders    []Order `chela:"hasMany;foreignKey:user_id"`
}
