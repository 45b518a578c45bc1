package ingest

import (
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/sha3"
	"gorm.io/gorm"

	"github.com/graphmates/graphmates-api/internal/apierr"
	"github.com/graphmates/graphmates-api/internal/model"
	"github.com/graphmates/graphmates-api/internal/service/dataset"
	"github.com/graphmates/graphmates-api/internal/storage"
	"github.com/graphmates/graphmates-api/internal/tabular"
)

// 允许上传的文件扩展名
var allowedExtensions = map[string]bool{
	"csv":  true,
	"xlsx": true,
	"xls":  true,
}

// Service 入库编排服务
type Service struct {
	db           *gorm.DB
	store        storage.Storage
	storageType  storage.Type
	materializer *Materializer
	enricher     *dataset.Enricher
	dbType       string
}

// NewService 创建入库服务
func NewService(db *gorm.DB, store storage.Storage, storageType storage.Type, enricher *dataset.Enricher, dbType string) *Service {
	return &Service{
		db:           db,
		store:        store,
		storageType:  storageType,
		materializer: NewMaterializer(db),
		enricher:     enricher,
		dbType:       dbType,
	}
}

// UploadInput 上传请求
type UploadInput struct {
	FileName string
	MimeType string
	Content  []byte
	// RelationID 可选，为空时新建数据集关系
	RelationID string
	UserID     string
}

// Upload 执行完整的文件入库流程
// 返回数据集描述，附带 dataset_relation_id、table_name 与 db_type
// 建表成功后任何失败都会尽力删除已写入的 blob，并回滚关系型事务
func (s *Service) Upload(ctx context.Context, input *UploadInput) (model.JSON, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(input.FileName), "."))
	if !allowedExtensions[ext] {
		return nil, apierr.ErrUnsupportedFileType
	}

	ds, err := s.decode(ctx, input.Content, ext)
	if err != nil {
		return nil, apierr.ErrDatabaseTransaction.WithMessage(err.Error())
	}
	normalizeColumns(ds)

	schema := tabular.Infer(ds)

	base := strings.ToLower(strings.TrimSuffix(input.FileName, "."+ext))
	tableName := GenerateTableName(base, time.Now())

	if _, err := s.materializer.Materialize(ctx, tableName, schema, ds.Rows); err != nil {
		return nil, apierr.ErrDatabaseTransaction.WithMessage(err.Error())
	}

	fileKey := fmt.Sprintf("upload_files/%s.%s", strings.ReplaceAll(uuid.New().String(), "-", "_"), ext)
	if err := s.store.Save(ctx, fileKey, input.Content); err != nil {
		return nil, apierr.ErrDatabaseTransaction.WithMessage(err.Error())
	}

	result, err := s.persist(ctx, input, ds, fileKey, ext, tableName)
	if err != nil {
		s.cleanupBlob(fileKey)

		var ae *apierr.Error
		if errors.As(err, &ae) {
			return nil, err
		}
		return nil, apierr.ErrDatabaseTransaction.WithMessage(err.Error())
	}

	return result, nil
}

// cleanupBlob 尽力删除已写入的 blob
// 不继承请求上下文：请求被取消时清理仍要完成
func (s *Service) cleanupBlob(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.store.Delete(ctx, key); err != nil {
		log.Printf("failed to clean up blob %s: %v", key, err)
	}
}

// persist 在单个事务内写入文件记录、数据集描述与关系挂接
func (s *Service) persist(ctx context.Context, input *UploadInput, ds *tabular.Dataset, fileKey, ext, tableName string) (model.JSON, error) {
	hash := sha3.Sum256(input.Content)
	file := &model.UploadFile{
		StorageType: string(s.storageType),
		Key:         fileKey,
		Name:        input.FileName,
		Extension:   ext,
		MimeType:    input.MimeType,
		Hash:        hex.EncodeToString(hash[:]),
	}

	var result model.JSON
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(file).Error; err != nil {
			return err
		}

		description, err := s.enricher.Enrich(ctx, tx, tabular.Digest(ds), file, tableName, input.UserID)
		if err != nil {
			return err
		}

		datasetID, _ := description["datasetId"].(string)
		relation, err := s.attachToRelation(tx, input.RelationID, input.UserID, datasetID)
		if err != nil {
			return err
		}

		description["dataset_relation_id"] = relation.ID
		description["table_name"] = tableName
		description["db_type"] = s.dbType
		result = description
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// attachToRelation 将数据集挂到已有关系，或新建一个关系
func (s *Service) attachToRelation(tx *gorm.DB, relationID, userID, datasetID string) (*model.DatasetRelation, error) {
	if relationID == "" {
		relation := &model.DatasetRelation{
			UserID:     userID,
			DatasetIDs: model.StringList{datasetID},
		}
		if err := tx.Create(relation).Error; err != nil {
			return nil, err
		}
		return relation, nil
	}

	var relation model.DatasetRelation
	if err := tx.Where("id = ?", relationID).First(&relation).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierr.ErrDatasetDescNotFound
		}
		return nil, err
	}

	if relation.AppendDatasetID(datasetID) {
		if err := tx.Save(&relation).Error; err != nil {
			return nil, err
		}
	}
	return &relation, nil
}

func (s *Service) decode(ctx context.Context, content []byte, ext string) (*tabular.Dataset, error) {
	if ext == "csv" {
		return tabular.DecodeCSV(bytes.NewReader(content))
	}
	return tabular.DecodeExcel(ctx, content, "."+ext)
}

// normalizeColumns 列名小写化并以下划线替换空格
func normalizeColumns(ds *tabular.Dataset) {
	for i, name := range ds.Columns {
		ds.Columns[i] = strings.ReplaceAll(strings.ToLower(name), " ", "_")
	}
}
