package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DatabaseConnection 外部数据库连接
type DatabaseConnection struct {
	ID            string    `json:"id" gorm:"type:varchar(36);primaryKey"`
	UserID        string    `json:"user_id" gorm:"type:varchar(255);not null"`
	DBType        string    `json:"db_type" gorm:"type:varchar(20);not null"`
	DBName        string    `json:"db_name" gorm:"type:varchar(255);not null"`
	Username      string    `json:"username" gorm:"type:varchar(255);not null"`
	Password      string    `json:"password" gorm:"type:varchar(255);not null"`
	Host          string    `json:"host" gorm:"type:varchar(255);not null"`
	Port          string    `json:"port" gorm:"type:varchar(10);not null"`
	TableName_    string    `json:"table_name" gorm:"type:varchar(255);not null;column:table_name"`
	ConnectionURI string    `json:"connection_uri" gorm:"type:varchar(1024)"`
	CreatedAt     time.Time `json:"created_at"`
}

// BeforeCreate GORM 钩子，创建前生成 UUID
func (c *DatabaseConnection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}

// TableName 指定表名
func (DatabaseConnection) TableName() string {
	return "graphmates_database_connections"
}
