package reports

import "github.com/mahirr476/Paragon-procurement-App-sub000/internal/services/svreport"

// ReportHandler 报表 HTTP 处理器
type ReportHandler struct {
	reportService *svreport.ReportService
}

// NewReportHandler 创建报表处理器实例
func NewReportHandler(reportService *svreport.ReportService) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}
