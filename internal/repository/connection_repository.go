package repository

import (
	"github.com/graphmates/graphmates-api/internal/model"
	"gorm.io/gorm"
)

// ConnectionRepository 外部数据库连接仓库
type ConnectionRepository struct {
	db *gorm.DB
}

// NewConnectionRepository 创建外部数据库连接仓库
func NewConnectionRepository(db *gorm.DB) *ConnectionRepository {
	return &ConnectionRepository{db: db}
}

// Create 创建连接记录
func (r *ConnectionRepository) Create(conn *model.DatabaseConnection) error {
	return r.db.Create(conn).Error
}

// GetByID 根据ID获取连接记录
func (r *ConnectionRepository) GetByID(id string) (*model.DatabaseConnection, error) {
	var conn model.DatabaseConnection
	err := r.db.Where("id = ?", id).First(&conn).Error
	if err != nil {
		return nil, err
	}
	return &conn, nil
}
