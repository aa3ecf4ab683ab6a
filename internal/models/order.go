package models

import "github.com/google/uuid"

type Order struct {
	ID        int64     `chela:"primaryKey;autoIncrement"`
	UserID    int64     `chela:"belongsTo;table:users;foreignKey:id"`
	Reference uuid.UUID
	Amount    float64
	Note      string `chela:"type:text"`
}
