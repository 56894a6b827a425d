package models

import "time"

// VerificationToken pendiente de consumo para verificar un correo.
// Se elimina al verificar la cuenta o se rechaza si expiró.
type VerificationToken struct {
	Identifier string    `gorm:"size:150;not null;index" json:"identifier"` // email del usuario
	Token      string    `gorm:"size:100;primaryKey" json:"token"`
	Expires    time.Time `gorm:"not null" json:"expires"`
}
