package entity

import (
	"time"

	"gorm.io/datatypes"
)

// AnalysisBatch 分析批次实体（包含分析结果）
type AnalysisBatch struct {
	// 基础字段
	ID      string `gorm:"column:id;primaryKey;type:varchar(64)"`
	BatchNo int64  `gorm:"column:batch_no;not null;uniqueIndex:uk_batch_no"`
	OrgID   string `gorm:"column:org_id;type:varchar(64);not null;index:idx_org_status"`

	// 分析状态与结果
	Status         string         `gorm:"column:status;type:varchar(16);not null;default:'ANALYZING';index:idx_org_status"`
	AnalysisResult datatypes.JSON `gorm:"column:analysis_result;type:json"`
	OrderCount     int            `gorm:"column:order_count;not null;default:0"`
	ErrorMessage   string         `gorm:"column:error_message;type:varchar(512)"`

	// 时间戳
	CreatedAt time.Time `gorm:"column:created_at;not null;index:idx_created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null"`
}

// TableName 指定表名
func (AnalysisBatch) TableName() string {
	return "analysis_batches"
}

// 批次状态常量
const (
	BatchStatusAnalyzing = "ANALYZING"
	BatchStatusAnalyzed  = "ANALYZED"
	BatchStatusFailed    = "FAILED"
)
